package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"fstruct/internal/config"
	"fstruct/internal/domain"
	"fstruct/internal/logging"
	"fstruct/internal/services"
	"fstruct/internal/state"
)

const readyStatus = "Live preview updates as you type"

type Model struct {
	state                 *state.State
	builder               services.Builder
	logger                *slog.Logger
	cfg                   config.Config
	inputs                []textinput.Model
	keys                  KeyMap
	showHelp              bool
	status                string
	creating              bool
	completionSuggestions []string
	width                 int
	height                int
}

type ConfigProvider interface {
	ConfigSnapshot() config.Config
}

func NewModel(appState *state.State, builder services.Builder, cfg config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = logging.NewNop()
	}
	inputs := make([]textinput.Model, 0, len(state.Fields()))
	for _, field := range state.Fields() {
		input := textinput.New()
		input.Prompt = "› "
		input.Placeholder = field.Placeholder()
		input.CharLimit = 512
		input.SetValue(appState.Value(field))
		if field == appState.Focus {
			input.Focus()
		}
		inputs = append(inputs, input)
	}
	return Model{
		state:   appState,
		builder: builder,
		logger:  logger,
		cfg:     cfg,
		inputs:  inputs,
		keys:    DefaultKeyMap(),
		status:  readyStatus,
		width:   100,
		height:  30,
	}
}

func (model Model) WithStatus(message string) Model {
	if message != "" {
		model.status = message
	}
	return model
}

func (model Model) ConfigSnapshot() config.Config {
	return model.state.Snapshot(model.cfg)
}

func (model Model) Init() tea.Cmd {
	return textinput.Blink
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return model.handleKey(typed)
	case tea.WindowSizeMsg:
		model.width = typed.Width
		model.height = typed.Height
		return model, nil
	case createResultMsg:
		return model.finishCreate(typed)
	default:
		return model.updateFocused(msg)
	}
}

func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Quit):
		return model, tea.Quit
	case key.Matches(msg, model.keys.Help):
		model.showHelp = !model.showHelp
		return model, nil
	case model.showHelp:
		return model, nil
	case key.Matches(msg, model.keys.Theme):
		theme := model.state.ToggleTheme()
		model.status = fmt.Sprintf("Theme: %s", theme)
		return model, nil
	case key.Matches(msg, model.keys.Next):
		return model.focus(model.state.FocusNext())
	case key.Matches(msg, model.keys.Prev):
		return model.focus(model.state.FocusPrev())
	case key.Matches(msg, model.keys.Complete):
		return model.completeBasePath()
	case key.Matches(msg, model.keys.Create):
		return model.beginCreate()
	default:
		return model.updateFocused(msg)
	}
}

// updateFocused forwards msg to the focused input and syncs its value into
// state, which recomputes the preview.
func (model Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	index := int(model.state.Focus)
	if index < 0 || index >= len(model.inputs) {
		return model, nil
	}
	var cmd tea.Cmd
	model.inputs[index], cmd = model.inputs[index].Update(msg)
	field := model.state.Focus
	value := model.inputs[index].Value()
	if value != model.state.Value(field) {
		model.state.Set(field, value)
		model.completionSuggestions = nil
	}
	return model, cmd
}

func (model Model) focus(field state.Field) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for index := range model.inputs {
		if state.Field(index) == field {
			cmd = model.inputs[index].Focus()
			continue
		}
		model.inputs[index].Blur()
	}
	model.completionSuggestions = nil
	return model, cmd
}

func (model Model) completeBasePath() (tea.Model, tea.Cmd) {
	if model.state.Focus != state.FieldBase {
		model.status = "Path completion works in the Base Path field"
		return model, nil
	}
	index := int(state.FieldBase)
	completed, suggestions := completePath(model.inputs[index].Value())
	model.inputs[index].SetValue(completed)
	model.inputs[index].CursorEnd()
	model.state.Set(state.FieldBase, completed)
	model.completionSuggestions = suggestions
	if len(suggestions) == 0 {
		model.status = "No matching directories"
	} else {
		model.status = fmt.Sprintf("%d matching directories", len(suggestions))
	}
	return model, nil
}

func (model Model) beginCreate() (tea.Model, tea.Cmd) {
	if model.creating {
		model.status = "Create already running"
		return model, nil
	}
	request := model.state.Request()
	if err := request.Validate(); err != nil {
		model.status = capitalize(err.Error())
		return model, nil
	}
	base, err := config.ExpandPath(request.BasePath)
	if err != nil {
		model.status = fmt.Sprintf("Failed to create folders: %v", err)
		return model, nil
	}
	request.BasePath = base
	model.creating = true
	model.status = fmt.Sprintf("Creating %s/%s...", request.Identity.Show, request.Identity.Shot)
	return model, model.createCmd(request)
}

func (model Model) createCmd(request services.CreateRequest) tea.Cmd {
	builder := model.builder
	return func() tea.Msg {
		result, err := builder.CreateShotTree(context.Background(), request)
		return createResultMsg{request: request, result: result, err: err}
	}
}

func (model Model) finishCreate(msg createResultMsg) (tea.Model, tea.Cmd) {
	model.creating = false
	identity := msg.request.Identity
	if msg.err != nil {
		model.logger.Error("create shot tree failed",
			slog.String("show", identity.Show),
			slog.String("shot", identity.Shot),
			slog.Bool("filesystem", domain.IsFilesystem(msg.err)),
			slog.Any("error", msg.err),
		)
		model.status = fmt.Sprintf("Failed to create folders: %v", msg.err)
		if errors.Is(msg.err, services.ErrVersionLimit) {
			model.status += " (raise max_version in config)"
		}
		return model, nil
	}
	model.logger.Info("shot tree created",
		slog.String("show", identity.Show),
		slog.String("shot", identity.Shot),
		slog.String("version", msg.result.Version.String()),
		slog.String("path", msg.result.VersionPath),
		slog.Int("created", len(msg.result.Created)),
	)
	model.state.RecordResult(msg.result)
	model.status = fmt.Sprintf("Project created: %s  OUT: %s", filepath.Dir(msg.result.VersionPath), msg.result.VersionName())
	return model, nil
}

func capitalize(message string) string {
	if message == "" {
		return message
	}
	return strings.ToUpper(message[:1]) + message[1:]
}
