// Command tui is a terminal front-end for the Sentinel demo: pick a
// scenario, watch the loading stage, then explore the layered knowledge
// graph and ask the canned questions, all against the same core logic the
// HTTP server uses.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/causify-ai/sentinel-kg/pkg/catalog"
	"github.com/causify-ai/sentinel-kg/pkg/graph"
	"github.com/causify-ai/sentinel-kg/pkg/query"
	"github.com/causify-ai/sentinel-kg/pkg/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f59e0b")).
			MarginTop(1).
			MarginLeft(2)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")).
			MarginLeft(2)

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e2e8f0")).
			Background(lipgloss.Color("#334155")).
			Padding(0, 1).
			MarginRight(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ef4444")).
			Bold(true).
			MarginLeft(2)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#475569")).
			Padding(1, 2).
			MarginLeft(2)

	redirectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10b981")).
			Bold(true).
			MarginLeft(2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#64748b")).
			MarginLeft(2).
			MarginTop(1)
)

// categoryColors mirrors the catalog style table for terminal swatches.
var categoryColors = map[catalog.Category]lipgloss.Color{
	catalog.CategoryRaw:         lipgloss.Color("#3b82f6"),
	catalog.CategoryPhysics:     lipgloss.Color("#10b981"),
	catalog.CategoryStatistical: lipgloss.Color("#8b5cf6"),
	catalog.CategoryAnomaly:     lipgloss.Color("#ef4444"),
	catalog.CategoryOutcome:     lipgloss.Color("#f59e0b"),
}

type keyMap struct {
	Submit   key.Binding
	Settings key.Binding
	Physics  key.Binding
	Stats    key.Binding
	Anomaly  key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Settings: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "settings")),
	Physics:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "toggle physics")),
	Stats:    key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle statistical")),
	Anomaly:  key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "toggle anomaly")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Physics, k.Stats, k.Anomaly, k.Settings, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type loadingDoneMsg struct{}

type infoTickMsg struct{}

type model struct {
	sess     *session.Session
	builder  *graph.Builder
	elements graph.Elements

	scenarioInput textinput.Model
	questionInput textinput.Model
	spin          spinner.Model
	help          help.Model

	advisory string
	redirect string
	noticed  string
}

func newModel() model {
	scenario := textinput.New()
	scenario.Placeholder = "Type or select a scenario below"
	scenario.Focus()
	scenario.CharLimit = 120
	scenario.Width = 50

	question := textinput.New()
	question.Placeholder = query.SupportedQuery
	question.CharLimit = 200
	question.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))

	sess := session.New()
	return model{
		sess:          sess,
		builder:       graph.NewBuilder(catalog.Default()),
		scenarioInput: scenario,
		questionInput: question,
		spin:          sp,
		help:          help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func infoTick() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg { return infoTickMsg{} })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		switch m.sess.Stage() {
		case session.StageSelect:
			return m.updateSelect(msg)
		case session.StageGraph:
			return m.updateGraph(msg)
		}
		return m, nil

	case loadingDoneMsg:
		m.sess.CompleteLoading()
		m.elements = m.builder.Build(m.sess.Toggles())
		return m, infoTick()

	case infoTickMsg:
		if m.sess.Stage() == session.StageGraph {
			m.sess.RotateInfo()
			return m, infoTick()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) updateSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Submit):
		result := m.sess.SubmitScenario(m.scenarioInput.Value())
		m.advisory = result.Message
		if result.Stage == session.StageLoading {
			delay := session.DefaultLoadingDelay
			return m, tea.Batch(
				m.spin.Tick,
				tea.Tick(delay, func(time.Time) tea.Msg { return loadingDoneMsg{} }),
			)
		}
		return m, nil
	case msg.String() == "1" || msg.String() == "2" || msg.String() == "3" || msg.String() == "4":
		// Digits pick a scenario chip unless the user is mid-sentence.
		if m.scenarioInput.Value() == "" {
			chips := session.Scenarios()
			idx := int(msg.Runes[0] - '1')
			if idx >= 0 && idx < len(chips) {
				m.scenarioInput.SetValue(chips[idx].Label)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.scenarioInput, cmd = m.scenarioInput.Update(msg)
	return m, cmd
}

func (m model) updateGraph(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Settings):
		m.sess.OpenSettings()
		m.advisory = ""
		m.redirect = ""
		m.scenarioInput.SetValue("")
		m.scenarioInput.Focus()
		return m, nil
	case key.Matches(msg, keys.Physics):
		m.toggleLayer("physics")
		return m, nil
	case key.Matches(msg, keys.Stats):
		m.toggleLayer("statistical")
		return m, nil
	case key.Matches(msg, keys.Anomaly):
		m.toggleLayer("anomaly")
		return m, nil
	case key.Matches(msg, keys.Submit):
		text := m.questionInput.Value()
		decision := query.Decide(text)
		if decision.Match {
			m.redirect = decision.Redirect
			m.noticed = ""
		} else {
			m.redirect = ""
			m.noticed = "No supported analysis for that question."
		}
		return m, nil
	}

	if !m.questionInput.Focused() {
		m.questionInput.Focus()
	}
	var cmd tea.Cmd
	m.questionInput, cmd = m.questionInput.Update(msg)
	return m, cmd
}

func (m *model) toggleLayer(layer string) {
	toggles := m.sess.Toggles()
	out := toggles[:0]
	found := false
	for _, t := range toggles {
		if t == layer {
			found = true
			continue
		}
		out = append(out, t)
	}
	if !found {
		out = append(out, layer)
	}
	m.sess.SetToggles(out)
	m.elements = m.builder.Build(m.sess.Toggles())
}

func (m model) View() string {
	switch m.sess.Stage() {
	case session.StageSelect:
		return m.viewSelect()
	case session.StageLoading:
		return m.viewLoading()
	default:
		return m.viewGraph()
	}
}

func (m model) viewSelect() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sentinel — Build Your Causal Knowledge Graph"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Select a scenario to analyze"))
	b.WriteString("\n\n  ")
	b.WriteString(m.scenarioInput.View())
	b.WriteString("\n\n  ")
	for i, sc := range session.Scenarios() {
		b.WriteString(chipStyle.Render(fmt.Sprintf("%d %s", i+1, sc.Label)))
	}
	b.WriteString("\n")
	if m.advisory != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.advisory))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter: generate graph • 1-4: pick a chip • ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m model) viewLoading() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Generating Your Knowledge Graph"))
	b.WriteString("\n\n  ")
	b.WriteString(m.spin.View())
	b.WriteString(" ")
	b.WriteString(session.LoadingStatus)
	b.WriteString("\n")
	return b.String()
}

func (m model) viewGraph() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Knowledge Graph Explorer"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(m.sess.Scenario()))
	b.WriteString("\n\n")

	enabled := make(map[string]bool)
	for _, t := range m.sess.Toggles() {
		enabled[t] = true
	}

	var layers strings.Builder
	for _, c := range []catalog.Category{
		catalog.CategoryRaw,
		catalog.CategoryPhysics,
		catalog.CategoryStatistical,
		catalog.CategoryAnomaly,
		catalog.CategoryOutcome,
	} {
		mark := "●"
		if c.Optional() && !enabled[string(c)] {
			mark = "○"
		}
		swatch := lipgloss.NewStyle().Foreground(categoryColors[c]).Render(mark)
		layers.WriteString(fmt.Sprintf("%s %s (%d)  ", swatch, c, countCategory(m.elements, c)))
	}
	b.WriteString(panelStyle.Render(fmt.Sprintf(
		"%s\n\n%d nodes • %d edges",
		layers.String(), len(m.elements.Nodes), len(m.elements.Edges),
	)))
	b.WriteString("\n\n")

	panel := session.InfoPanelAt(m.sess.InfoIndex())
	b.WriteString(panelStyle.Render(renderPanel(panel)))
	b.WriteString("\n\n  Ask the model about your turbines:\n  ")
	b.WriteString(m.questionInput.View())
	b.WriteString("\n")
	if m.redirect != "" {
		b.WriteString("\n")
		b.WriteString(redirectStyle.Render("→ " + m.redirect))
		b.WriteString("\n")
	} else if m.noticed != "" {
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render(m.noticed))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}

func renderPanel(p session.InfoPanel) string {
	var b strings.Builder
	b.WriteString(p.Title)
	b.WriteString("\n")
	for _, metric := range p.Metrics {
		b.WriteString(fmt.Sprintf("\n%-22s %3.0f%% %s", metric.Name, metric.Score*100, trendArrow(metric.Trend)))
	}
	for _, ov := range p.Overview {
		b.WriteString(fmt.Sprintf("\n%-18s %s", ov.Label, ov.Value))
	}
	for _, insight := range p.Insights {
		b.WriteString("\n• " + insight)
	}
	for _, alert := range p.Alerts {
		b.WriteString(fmt.Sprintf("\n[%s] %s\n  %s", strings.ToUpper(alert.Priority), alert.Title, alert.Detail))
	}
	if p.Footer != "" {
		b.WriteString("\n\n" + p.Footer)
	}
	return b.String()
}

func trendArrow(trend string) string {
	switch trend {
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return "→"
}

func countCategory(e graph.Elements, c catalog.Category) int {
	n := 0
	for _, node := range e.Nodes {
		if node.Category == c {
			n++
		}
	}
	return n
}

func main() {
	if _, err := tea.NewProgram(newModel(), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
