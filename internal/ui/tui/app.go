package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/more-shubham/resume/internal/domain"
	"github.com/more-shubham/resume/internal/usecase"
)

type screen int

const (
	screenLoading screen = iota
	screenOutline
	screenDetail
	screenIssues
	screenError
)

type model struct {
	theme Theme
	deps  Deps

	scr     screen
	outline list.Model
	issues  list.Model
	detail  string

	comp  usecase.Composition
	err   error
	toast string

	generating bool
}

// Run opens the read-only preview of the resume at deps.InputPath.
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	newList := func(title string) list.Model {
		l := list.New(nil, list.NewDefaultDelegate(), 80, 20)
		l.Title = title
		l.SetShowStatusBar(false)
		l.SetFilteringEnabled(true)
		l.SetShowHelp(false)
		return l
	}

	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		scr:     screenLoading,
		outline: newList("Outline"),
		issues:  newList("Validation issues"),
	}
}

func (m model) Init() tea.Cmd { return cmdCompose(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.outline.SetSize(w-4, h-10)
		m.issues.SetSize(w-4, h-10)
		return m, nil

	case composedMsg:
		return m.applyComposed(msg), nil

	case generatedMsg:
		m.generating = false
		if msg.err != nil {
			m.toast = m.errorText(msg.err)
		} else {
			m.toast = "Wrote " + msg.res.OutputPath
		}
		return m, nil

	case tea.KeyMsg:
		if m.filtering() {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "r":
			m.scr = screenLoading
			m.toast = ""
			return m, cmdCompose(m.deps)

		case "g":
			if m.scr == screenOutline && !m.generating {
				m.generating = true
				m.toast = "Generating…"
				return m, cmdGenerate(m.deps)
			}
			return m, nil

		case "enter":
			if m.scr == screenOutline {
				if it, ok := m.outline.SelectedItem().(outlineItem); ok {
					m.detail = describeBlock(it.block)
					m.scr = screenDetail
				}
				return m, nil
			}

		case "esc", "b":
			if m.scr == screenDetail {
				m.scr = screenOutline
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenOutline:
		m.outline, cmd = m.outline.Update(msg)
	case screenIssues:
		m.issues, cmd = m.issues.Update(msg)
	}
	return m, cmd
}

func (m model) applyComposed(msg composedMsg) model {
	m.err = msg.err
	m.comp = msg.comp

	if msg.err == nil {
		items := outline(msg.comp.Document)
		li := make([]list.Item, 0, len(items))
		for _, it := range items {
			li = append(li, it)
		}
		m.outline.SetItems(li)
		m.scr = screenOutline
		return m
	}

	var ve *domain.ValidationError
	if errors.As(msg.err, &ve) {
		li := make([]list.Item, 0, len(ve.Issues))
		for _, is := range ve.Issues {
			li = append(li, issueItem{issue: is})
		}
		m.issues.SetItems(li)
		m.scr = screenIssues
		return m
	}

	m.scr = screenError
	return m
}

func (m model) filtering() bool {
	switch m.scr {
	case screenOutline:
		return m.outline.SettingFilter()
	case screenIssues:
		return m.issues.SettingFilter()
	}
	return false
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	title := "Resume preview"
	if name := m.comp.Resume.Contact.Name; name != "" && m.err == nil {
		title += " • " + name
	}
	header := m.theme.Title.Render(title) + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("%s → %s", m.deps.InputPath, m.deps.OutputPath)) + "\n"

	footer := ""
	if m.toast != "" {
		footer = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenLoading:
		return wrap.Render(header + "\n" + m.theme.Help.Render("Loading…"))

	case screenOutline:
		help := m.theme.Help.Render("↑/↓ navigate • enter inspect • / search • g generate PDF • r reload • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.outline.View()) + "\n" + help + footer)

	case screenDetail:
		card := m.theme.Card.Render(m.detail + "\n" + m.theme.Help.Render("esc/b back • q quit"))
		return wrap.Render(header + "\n" + card + footer)

	case screenIssues:
		banner := m.theme.Warn.Render(fmt.Sprintf("⚠ %d validation issue(s). Fix the source and press r.", len(m.issues.Items())))
		help := m.theme.Help.Render("↑/↓ navigate • / search • r reload • q quit")
		return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(m.issues.View()) + "\n" + help + footer)

	case screenError:
		card := m.theme.Card.Render(
			m.theme.Warn.Render(m.errorText(m.err)) + "\n\n" + m.theme.Help.Render("r reload • q quit"),
		)
		return wrap.Render(header + "\n" + card + footer)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
