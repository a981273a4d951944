// Package tui holds the interactive import review screen.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/networth/internal/service"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	excludedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	exactStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	fuzzyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	newStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Review is the mapping confirmation screen shown between parsing and
// commit. It owns the caller-held mapping collection while open; edits are
// local and synchronous.
type Review struct {
	mappings        []service.AccountMapping
	cursor          int
	defaultCurrency string
	symbol          string
	status          string
	committed       bool
}

// NewReview builds the review screen over a reconciled mapping set.
func NewReview(mappings []service.AccountMapping, defaultCurrency, symbol string) *Review {
	return &Review{mappings: mappings, defaultCurrency: defaultCurrency, symbol: symbol}
}

// Mappings returns the (possibly edited) mapping set.
func (r *Review) Mappings() []service.AccountMapping { return r.mappings }

// Committed reports whether the user confirmed the import.
func (r *Review) Committed() bool { return r.committed }

func (r *Review) Init() tea.Cmd { return nil }

func (r *Review) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	r.status = ""
	switch key.String() {
	case "ctrl+c", "q", "esc":
		return r, tea.Quit
	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}
	case "down", "j":
		if r.cursor < len(r.mappings)-1 {
			r.cursor++
		}
	case " ":
		m := &r.mappings[r.cursor]
		m.Include = !m.Include
	case "enter", "right", "l", "tab":
		r.cycleSelection()
	case "c":
		if !service.Summarize(r.mappings).Ready {
			r.status = "cannot commit: resolve or exclude fuzzy matches first"
			break
		}
		r.committed = true
		return r, tea.Quit
	}
	return r, nil
}

// cycleSelection steps the current mapping through its fuzzy candidates
// and the treat-as-new option.
func (r *Review) cycleSelection() {
	m := &r.mappings[r.cursor]
	if len(m.Candidates) == 0 {
		return
	}
	switch {
	case m.SelectedID == "" && m.MatchType == service.MatchFuzzy:
		m.SelectMatch(m.Candidates[0].Account.ID, r.defaultCurrency)
	case m.MatchType == service.MatchNew:
		m.SelectMatch(m.Candidates[0].Account.ID, r.defaultCurrency)
	default:
		next := -1
		for i := range m.Candidates {
			if m.Candidates[i].Account.ID == m.SelectedID {
				next = i + 1
				break
			}
		}
		if next < 0 || next >= len(m.Candidates) {
			m.SelectMatch("", r.defaultCurrency) // treat as new
		} else {
			m.SelectMatch(m.Candidates[next].Account.ID, r.defaultCurrency)
		}
	}
}

func (r *Review) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Import review"))
	b.WriteString("\n")

	s := service.Summarize(r.mappings)
	b.WriteString(fmt.Sprintf("%d exact, %d fuzzy, %d new | assets %s%s liabilities %s%s\n\n",
		s.Exact, s.Fuzzy, s.New,
		r.symbol, s.Assets.StringFixed(2),
		r.symbol, s.Liabilities.StringFixed(2)))

	for i := range r.mappings {
		marker := "  "
		if i == r.cursor {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString(marker + r.renderRow(&r.mappings[i]) + "\n")
	}

	b.WriteString("\n")
	if r.status != "" {
		b.WriteString(statusStyle.Render(r.status) + "\n")
	}
	gate := "ready"
	if !s.Ready {
		gate = "not ready"
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"space include | enter cycle match | c commit (%s) | q abort", gate)))
	return b.String()
}

func (r *Review) renderRow(m *service.AccountMapping) string {
	line := fmt.Sprintf("[%s] %-28s %12s  %s",
		includeMark(m.Include), m.Parsed.Name,
		r.symbol+fmt.Sprintf("%.2f", m.Parsed.Balance), r.decision(m))
	if !m.Include {
		return excludedStyle.Render(line)
	}
	return line
}

func (r *Review) decision(m *service.AccountMapping) string {
	switch m.MatchType {
	case service.MatchExact:
		return exactStyle.Render("= " + m.Matched.Name)
	case service.MatchFuzzy:
		if m.SelectedID != "" {
			return fuzzyStyle.Render(fmt.Sprintf("~ %s (%.0f%%)", m.Matched.Name, selectedScore(m)*100))
		}
		return fuzzyStyle.Render(fmt.Sprintf("? %d candidates, best %q", len(m.Candidates), m.Candidates[0].Account.Name))
	default:
		return newStyle.Render(fmt.Sprintf("+ new %s/%s", m.Category, m.AccessType))
	}
}

func selectedScore(m *service.AccountMapping) float64 {
	for i := range m.Candidates {
		if m.Candidates[i].Account.ID == m.SelectedID {
			return m.Candidates[i].Score
		}
	}
	return 0
}

func includeMark(include bool) string {
	if include {
		return "x"
	}
	return " "
}
