package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"margin-optimizer/controller"
	"margin-optimizer/core/types"
	coreui "margin-optimizer/core/ui"
	"margin-optimizer/core/view"
	"margin-optimizer/internal/config"
	"margin-optimizer/internal/errors"
)

// Backend is the API surface the dashboard drives.
type Backend interface {
	controller.Backend
	VendorSuggestions(ctx context.Context, query string) ([]string, error)
}

type tab int

const (
	tabService tab = iota
	tabRenewal
	tabVendor
)

var tabNames = []string{"Service Analysis", "Renewal Analysis", "Vendor History"}

// Messages

type analysisMsg struct {
	seq int
	doc *view.Document
	err error
}

// sessionMsg carries the session state a successful service analysis leaves
// behind for strategy requests. It is sequence-tagged like analysisMsg so a
// superseded analysis cannot overwrite the session either.
type sessionMsg struct {
	seq        int
	serviceID  string
	vplOptions []types.VPLVendor
}

// Autocomplete panel messages, sent into the event loop by programPanel.

type panelShowMsg struct {
	vendors    []string
	selectable bool
}

type panelHideMsg struct{}

type vendorPickedMsg struct {
	vendor string
}

// programPanel bridges the autocomplete controller into the bubbletea event
// loop. The controller's debounce timer fires on its own goroutine, so panel
// updates travel through Program.Send, which bubbletea serializes with the
// rest of the loop.
type programPanel struct {
	program atomic.Pointer[tea.Program]
}

func (pp *programPanel) send(msg tea.Msg) {
	if p := pp.program.Load(); p != nil {
		p.Send(msg)
	}
}

func (pp *programPanel) ShowSuggestions(vendors []string, selectable bool) {
	pp.send(panelShowMsg{vendors: vendors, selectable: selectable})
}

func (pp *programPanel) HideSuggestions() {
	pp.send(panelHideMsg{})
}

func (pp *programPanel) SetInput(value string) {
	pp.send(vendorPickedMsg{vendor: value})
}

// Model is the dashboard's bubbletea model.
type Model struct {
	client Backend
	cfg    *config.Config
	log    *zap.Logger

	tab      tab
	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	loading bool
	errMsg  string
	content string

	// vendor autocomplete
	auto            *controller.Autocomplete
	panel           *programPanel
	showSuggestions bool
	selectable      bool
	suggestions     []string
	suggestionIdx   int

	// strategy prompt, armed after a service analysis
	strategyPrompt bool
	sessionService string
	sessionVPL     []types.VPLVendor

	requestSeq int
	width      int
	height     int
	ready      bool
}

// NewDashboard creates the dashboard model.
func NewDashboard(client Backend, cfg *config.Config, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "Service ID"
	ti.Focus()
	ti.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorAccent)

	panel := &programPanel{}
	auto := controller.NewAutocomplete(client, panel, cfg.Autocomplete.Debounce(), log)
	auto.MinChars = cfg.Autocomplete.MinChars
	// Select already routes the chosen vendor through SetInput; the panel
	// message submits, so no extra OnSelect hook is needed here.

	return Model{
		client:  client,
		cfg:     cfg,
		log:     log,
		input:   ti,
		spinner: sp,
		auto:    auto,
		panel:   panel,
	}
}

// SetProgram hands the running program to the autocomplete panel bridge.
// Call it after tea.NewProgram and before Run.
func (m Model) SetProgram(p *tea.Program) {
	m.panel.program.Store(p)
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - 8
		if contentHeight < 3 {
			contentHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, contentHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = contentHeight
		}
		m.viewport.SetContent(m.content)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case analysisMsg:
		if msg.seq != m.requestSeq {
			// A newer request superseded this one.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = errors.UserMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.content = renderDocument(msg.doc, m.cfg.Output.NoColor)
		if m.ready {
			m.viewport.SetContent(m.content)
			m.viewport.GotoTop()
		}
		return m, nil

	case sessionMsg:
		if msg.seq != m.requestSeq {
			return m, nil
		}
		m.sessionService = msg.serviceID
		m.sessionVPL = msg.vplOptions
		return m, nil

	case panelShowMsg:
		m.showSuggestions = true
		m.selectable = msg.selectable
		m.suggestions = msg.vendors
		m.suggestionIdx = 0
		return m, nil

	case panelHideMsg:
		m.showSuggestions = false
		m.suggestions = nil
		m.suggestionIdx = 0
		return m, nil

	case vendorPickedMsg:
		m.input.SetValue(msg.vendor)
		m.input.CursorEnd()
		return m.submit(msg.vendor)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.showSuggestions {
			m.auto.Dismiss()
			m.showSuggestions = false
			m.suggestions = nil
			return m, nil
		}
		if m.strategyPrompt {
			m.leaveStrategyPrompt()
			return m, nil
		}
		return m, tea.Quit

	case "tab":
		m.switchTab((m.tab + 1) % 3)
		return m, nil

	case "shift+tab":
		m.switchTab((m.tab + 2) % 3)
		return m, nil

	case "up":
		if m.showSuggestions && m.selectable {
			if m.suggestionIdx > 0 {
				m.suggestionIdx--
			}
			return m, nil
		}

	case "down":
		if m.showSuggestions && m.selectable {
			if m.suggestionIdx < len(m.suggestions)-1 {
				m.suggestionIdx++
			}
			return m, nil
		}

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case "ctrl+s":
		if m.tab == tabService && m.sessionService != "" && !m.strategyPrompt {
			m.strategyPrompt = true
			m.input.SetValue("")
			m.input.Placeholder = "Quote ID"
			return m, nil
		}

	case "enter":
		return m.handleEnter()
	}

	return m.handleInput(msg)
}

func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.showSuggestions && m.selectable {
		// Select routes the vendor back through the panel as a
		// vendorPickedMsg, which fills the input and submits.
		m.auto.Select(m.suggestions[m.suggestionIdx])
		m.showSuggestions = false
		m.suggestions = nil
		return m, nil
	}
	if m.showSuggestions {
		// The no-results row is not selectable.
		return m, nil
	}
	return m.submit(m.input.Value())
}

// handleInput forwards the keystroke into the text input, then feeds the new
// value to the autocomplete controller on the vendor tab.
func (m Model) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.tab == tabVendor && !m.strategyPrompt && m.input.Value() != before {
		m.auto.Input(context.Background(), m.input.Value())
	}
	return m, cmd
}

func (m Model) submit(raw string) (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return m, nil
	}

	m.requestSeq++
	seq := m.requestSeq
	m.loading = true
	m.errMsg = ""

	var fetch tea.Cmd
	switch {
	case m.strategyPrompt:
		vqID, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			m.loading = false
			m.errMsg = fmt.Sprintf("Invalid quote ID: %s", value)
			return m, nil
		}
		serviceID, vpl := m.sessionService, m.sessionVPL
		m.leaveStrategyPrompt()
		fetch = func() tea.Msg {
			payload, err := m.client.FetchStrategy(context.Background(), serviceID, vqID, vpl)
			if err != nil {
				return analysisMsg{seq: seq, err: err}
			}
			return analysisMsg{seq: seq, doc: view.BuildStrategy(payload)}
		}

	case m.tab == tabService:
		fetch = func() tea.Msg {
			payload, err := m.client.AnalyzeService(context.Background(), value)
			if err != nil {
				return analysisMsg{seq: seq, err: err}
			}
			return tea.BatchMsg{
				func() tea.Msg { return sessionMsg{seq: seq, serviceID: value, vplOptions: payload.VPLOptions} },
				func() tea.Msg { return analysisMsg{seq: seq, doc: view.BuildServiceAnalysis(payload)} },
			}
		}

	case m.tab == tabRenewal:
		fetch = func() tea.Msg {
			payload, err := m.client.AnalyzeRenewal(context.Background(), value)
			if err != nil {
				return analysisMsg{seq: seq, err: err}
			}
			return tea.BatchMsg{
				func() tea.Msg { return sessionMsg{seq: seq, serviceID: value, vplOptions: payload.VPLOptions} },
				func() tea.Msg { return analysisMsg{seq: seq, doc: view.BuildRenewalAnalysis(payload)} },
			}
		}

	default:
		fetch = func() tea.Msg {
			payload, err := m.client.AnalyzeVendor(context.Background(), value)
			if err != nil {
				return analysisMsg{seq: seq, err: err}
			}
			return analysisMsg{seq: seq, doc: view.BuildVendorHistory(payload)}
		}
	}

	return m, tea.Batch(m.spinner.Tick, fetch)
}

func (m *Model) switchTab(t tab) {
	if m.tab == t {
		return
	}
	m.tab = t
	m.auto.Dismiss()
	m.showSuggestions = false
	m.suggestions = nil
	m.suggestionIdx = 0
	m.leaveStrategyPrompt()
	m.errMsg = ""
	m.input.SetValue("")
	switch t {
	case tabVendor:
		m.input.Placeholder = "Vendor name"
	default:
		m.input.Placeholder = "Service ID"
	}
}

func (m *Model) leaveStrategyPrompt() {
	if !m.strategyPrompt {
		return
	}
	m.strategyPrompt = false
	m.input.SetValue("")
	m.input.Placeholder = "Service ID"
}

// View implements tea.Model
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Margin Optimizer"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	prompt := m.input.View()
	if m.strategyPrompt {
		prompt = "Strategy for quote: " + prompt
	}
	b.WriteString(inputBoxStyle.Width(m.width - 4).Render(prompt))
	b.WriteString("\n")

	if m.showSuggestions {
		b.WriteString(m.renderSuggestions())
		b.WriteString("\n")
	}

	switch {
	case m.loading:
		b.WriteString(contentStyle.Render(m.spinner.View() + " Analyzing..."))
	case m.errMsg != "":
		b.WriteString(errorBannerStyle.Render(m.errMsg))
	default:
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n")

	help := "tab: switch view · enter: analyze · esc: quit"
	if m.tab == tabService && m.sessionService != "" {
		help = "tab: switch view · enter: analyze · ctrl+s: strategy · esc: quit"
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m Model) renderTabs() string {
	rendered := make([]string, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == m.tab {
			rendered[i] = activeTabStyle.Render(name)
		} else {
			rendered[i] = tabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderSuggestions() string {
	var b strings.Builder
	for i, s := range m.suggestions {
		style := suggestionStyle
		if !m.selectable {
			style = noResultsStyle
		} else if i == m.suggestionIdx {
			style = selectedSuggestionStyle
		}
		b.WriteString(style.Render(s))
		if i < len(m.suggestions)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderDocument renders a view document into the viewport's content string.
func renderDocument(doc *view.Document, noColor bool) string {
	var sb strings.Builder
	w := coreui.NewWriter(&sb, noColor)
	coreui.Render(w, doc)
	return sb.String()
}
