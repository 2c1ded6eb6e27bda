package state

import (
	"strings"

	"fstruct/internal/config"
	"fstruct/internal/domain"
	"fstruct/internal/services"
)

type Field int

const (
	FieldBase Field = iota
	FieldShow
	FieldShot
	FieldArtist
	fieldCount
)

func (field Field) Label() string {
	switch field {
	case FieldBase:
		return domain.FieldBasePath
	case FieldShow:
		return "Show Name"
	case FieldShot:
		return "Shot Name"
	case FieldArtist:
		return "Artist Name"
	default:
		return ""
	}
}

func (field Field) Placeholder() string {
	switch field {
	case FieldBase:
		return "Choose base save path (e.g., ~/VFX_Project)"
	case FieldShow:
		return "SHOW01"
	case FieldShot:
		return "SHOT_010"
	case FieldArtist:
		return "ArtistName"
	default:
		return ""
	}
}

func Fields() []Field {
	return []Field{FieldBase, FieldShow, FieldShot, FieldArtist}
}

type State struct {
	values     [fieldCount]string
	Focus      Field
	Theme      string
	Preview    *domain.Node
	LastResult *services.CreateResult
}

func NewState(cfg config.Config) *State {
	appState := &State{
		Focus: FieldBase,
		Theme: cfg.Theme,
	}
	appState.values[FieldBase] = cfg.BasePath
	appState.values[FieldArtist] = cfg.Artist
	if cfg.BasePath != "" {
		appState.Focus = FieldShow
	}
	appState.RefreshPreview()
	return appState
}

func (appState *State) Value(field Field) string {
	if field < 0 || field >= fieldCount {
		return ""
	}
	return appState.values[field]
}

// Set stores value and recomputes the preview when a name field changes.
func (appState *State) Set(field Field, value string) {
	if field < 0 || field >= fieldCount || appState.values[field] == value {
		return
	}
	appState.values[field] = value
	if field != FieldBase {
		appState.RefreshPreview()
	}
}

// RefreshPreview replaces the preview with a fresh projection.
func (appState *State) RefreshPreview() {
	appState.Preview = services.PreviewTree(
		appState.values[FieldShow],
		appState.values[FieldShot],
		appState.values[FieldArtist],
	)
}

func (appState *State) VisibleNodes() []domain.FlatNode {
	return appState.Preview.Flatten()
}

func (appState *State) Request() services.CreateRequest {
	return services.NewCreateRequest(
		strings.TrimSpace(appState.values[FieldBase]),
		appState.values[FieldShow],
		appState.values[FieldShot],
		appState.values[FieldArtist],
	)
}

func (appState *State) FocusNext() Field {
	appState.Focus = (appState.Focus + 1) % fieldCount
	return appState.Focus
}

func (appState *State) FocusPrev() Field {
	appState.Focus = (appState.Focus + fieldCount - 1) % fieldCount
	return appState.Focus
}

func (appState *State) ToggleTheme() string {
	appState.Theme = config.ToggleTheme(appState.Theme)
	return appState.Theme
}

func (appState *State) RecordResult(result services.CreateResult) {
	appState.LastResult = &result
	appState.RefreshPreview()
}

// Snapshot folds the values worth remembering back into cfg.
func (appState *State) Snapshot(cfg config.Config) config.Config {
	cfg.BasePath = strings.TrimSpace(appState.values[FieldBase])
	cfg.Artist = strings.TrimSpace(appState.values[FieldArtist])
	cfg.Theme = appState.Theme
	return cfg
}
