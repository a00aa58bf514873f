package canvas

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/zclarity/internal/adapters/i18n"
	"github.com/bnema/zclarity/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	render func(styles) string
	styles styles
	output string
}

func newModel(render func(styles) string) model {
	return model{
		render: render,
		styles: newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = m.render(m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func run(render func(styles) string) (string, error) {
	p := tea.NewProgram(
		newModel(render),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

// Render draws the working canvas of one session: intent, discussion
// topics, outcome and closing summary, with localized labels.
func Render(session domain.Session, msgs i18n.Messages) (string, error) {
	return run(func(s styles) string {
		return renderCanvas(session, msgs, s)
	})
}

// RenderHistory draws the session history list, newest first, marking the
// active session.
func RenderHistory(sessions []domain.Session, activeID domain.SessionID, msgs i18n.Messages) (string, error) {
	return run(func(s styles) string {
		return renderHistory(sessions, activeID, msgs, s)
	})
}
