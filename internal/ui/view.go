package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"fstruct/internal/config"
	"fstruct/internal/domain"
	"fstruct/internal/services"
	"fstruct/internal/state"
)

const (
	appTitle    = "FStruct"
	appSubtitle = "Studio folder initializer"
)

type uiStyles struct {
	titleStyle    lipgloss.Style
	subtitleStyle lipgloss.Style
	labelStyle    lipgloss.Style
	focusStyle    lipgloss.Style
	mutedStyle    lipgloss.Style
	textStyle     lipgloss.Style
	warnStyle     lipgloss.Style
	okStyle       lipgloss.Style
	panelBorder   lipgloss.Style
}

func stylesFor(theme string) uiStyles {
	if strings.ToLower(theme) == config.ThemeLight {
		return uiStyles{
			titleStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0b66d0")),
			subtitleStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#5a6b7a")),
			labelStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#202328")),
			focusStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0b66d0")),
			mutedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#5a6b7a")),
			textStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#202328")),
			warnStyle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("124")),
			okStyle:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("28")),
			panelBorder:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#c4ccd4")).Padding(0, 1),
		}
	}
	return uiStyles{
		titleStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffcc00")),
		subtitleStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#a9a9a9")),
		labelStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f3f0e6")),
		focusStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffcc00")),
		mutedStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#a9a9a9")),
		textStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("#f3f0e6")),
		warnStyle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204")),
		okStyle:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		panelBorder:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	}
}

func (model Model) View() string {
	styles := stylesFor(model.state.Theme)
	if model.showHelp {
		return renderHelpView(model, styles)
	}
	body := renderBody(model, styles)
	footer := renderFooter(model, styles)
	return strings.Join([]string{body, footer}, "\n")
}

func renderBody(model Model, styles uiStyles) string {
	bodyHeight := maxInt(model.height-4, 8)
	leftWidth, rightWidth, sideBySide := splitPanels(model.width)
	form := renderFormPanel(model, styles, leftWidth, bodyHeight)
	if !sideBySide {
		return lipgloss.JoinVertical(lipgloss.Left, form, renderPreviewPanel(model, styles, leftWidth, bodyHeight))
	}
	preview := renderPreviewPanel(model, styles, rightWidth, bodyHeight)
	return lipgloss.JoinHorizontal(lipgloss.Top, form, " ", preview)
}

func renderFormPanel(model Model, styles uiStyles, width, height int) string {
	contentWidth := maxInt(width-4, 20)
	lines := []string{
		styles.titleStyle.Render(appTitle),
		styles.subtitleStyle.Render(appSubtitle),
		"",
	}
	for index, field := range state.Fields() {
		label := styles.labelStyle.Render(field.Label())
		if field == model.state.Focus {
			label = styles.focusStyle.Render(field.Label())
		}
		input := model.inputs[index]
		input.Width = maxInt(contentWidth-4, 10)
		lines = append(lines, label, input.View(), "")
	}
	if len(model.completionSuggestions) > 1 {
		lines = append(lines, styles.mutedStyle.Render("Matches:"))
		for index, suggestion := range model.completionSuggestions {
			if index == 5 {
				lines = append(lines, styles.mutedStyle.Render(fmt.Sprintf("  … %d more", len(model.completionSuggestions)-5)))
				break
			}
			lines = append(lines, styles.mutedStyle.Render("  "+suggestion))
		}
	}
	if result := model.state.LastResult; result != nil {
		lines = append(lines, styles.okStyle.Render("Last created"), styles.textStyle.Render(trimLeft(result.VersionPath, contentWidth)))
	}
	content := lipgloss.NewStyle().Width(contentWidth).Height(height).Render(strings.Join(lines, "\n"))
	return styles.panelBorder.Width(contentWidth).Render(content)
}

func renderPreviewPanel(model Model, styles uiStyles, width, height int) string {
	contentWidth := maxInt(width-4, 20)
	header := styles.subtitleStyle.Render("Preview")
	if count := folderCount(model.state); count > 0 {
		header = padLine(header, styles.mutedStyle.Render(fmt.Sprintf("%d folders", count)), contentWidth)
	}
	lines := []string{header}
	tree := treeLines(model.state.Preview)
	limit := maxInt(height-1, 1)
	if len(tree) > limit {
		tree = append(tree[:limit-1], "…")
	}
	for _, line := range tree {
		lines = append(lines, styles.textStyle.Render(trimRight(line, contentWidth)))
	}
	content := lipgloss.NewStyle().Width(contentWidth).Height(height).Render(strings.Join(lines, "\n"))
	return styles.panelBorder.Width(contentWidth).Render(content)
}

func renderFooter(model Model, styles uiStyles) string {
	statusStyle := styles.mutedStyle
	lower := strings.ToLower(model.status)
	switch {
	case strings.Contains(lower, "failed") || strings.Contains(lower, "missing") || strings.Contains(lower, "error"):
		statusStyle = styles.warnStyle
	case strings.HasPrefix(lower, "project created"):
		statusStyle = styles.okStyle
	}
	statusLine := statusStyle.Render(trimRight(model.status, model.width))
	keys := "tab next  shift+tab prev  enter create  ctrl+f complete  ctrl+t theme  f1 help  esc quit"
	if model.creating {
		keys = "creating folders..."
	}
	return strings.Join([]string{statusLine, styles.mutedStyle.Render(trimRight(keys, model.width))}, "\n")
}

func renderHelpView(model Model, styles uiStyles) string {
	bindings := []key.Binding{
		model.keys.Next,
		model.keys.Prev,
		model.keys.Create,
		model.keys.Complete,
		model.keys.Theme,
		model.keys.Help,
		model.keys.Quit,
	}
	lines := []string{styles.titleStyle.Render(appTitle + " Help"), ""}
	lines = append(lines, styles.labelStyle.Render("Fill Base Path, Show, Shot and Artist, then press enter."))
	lines = append(lines, styles.labelStyle.Render("Each create adds the next free out/<shot>_roto_vNNN version."))
	lines = append(lines, styles.labelStyle.Render("The preview always shows v001 and never reads the disk."), "")
	for _, binding := range bindings {
		lines = append(lines, fmt.Sprintf("%-18s %s", strings.Join(binding.Keys(), ", "), binding.Help().Desc))
	}
	lines = append(lines, "", "Press f1 to close help")
	width := model.width
	if width <= 0 {
		width = 80
	}
	return styles.panelBorder.Width(maxInt(width-4, 10)).Render(strings.Join(lines, "\n"))
}

// treeLines draws node with box-drawing connectors, one entry per line.
func treeLines(root *domain.Node) []string {
	if root == nil {
		return nil
	}
	lines := []string{root.Name}
	appendTreeLines(&lines, root.Children, "")
	return lines
}

func appendTreeLines(lines *[]string, children []*domain.Node, prefix string) {
	for index, child := range children {
		connector, indent := "├── ", "│   "
		if index == len(children)-1 {
			connector, indent = "└── ", "    "
		}
		*lines = append(*lines, prefix+connector+child.Name)
		appendTreeLines(lines, child.Children, prefix+indent)
	}
}

func folderCount(appState *state.State) int {
	if appState.Preview == nil || appState.Preview.Name == services.EmptyPreviewMessage {
		return 0
	}
	return len(appState.VisibleNodes())
}

func padLine(left, right string, width int) string {
	if width <= 0 {
		return left
	}
	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", space) + right
}

func splitPanels(width int) (int, int, bool) {
	if width < 80 {
		return width, 0, false
	}
	left := int(float64(width) * 0.42)
	if left < 40 {
		left = 40
	}
	right := width - left - 1
	if right < 36 {
		return width, 0, false
	}
	return left, right, true
}

func trimRight(message string, width int) string {
	runes := []rune(message)
	if width <= 4 || len(runes) <= width {
		return message
	}
	return string(runes[:width-1]) + "…"
}

func trimLeft(message string, width int) string {
	runes := []rune(message)
	if width <= 4 || len(runes) <= width {
		return message
	}
	return "…" + string(runes[len(runes)-width+1:])
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
