// Package tui hosts the quote wizard in a terminal. The model keeps no wizard state of its
// own: every key press becomes a session service call and the screen is re-rendered from
// the returned session.
package tui

import (
	"context"
	"errors"
	"time"

	"festquote/models"
	"festquote/services/catalog"
	"festquote/services/dispatch"
	"festquote/services/session"
	"festquote/services/steps"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type referenceLoadedMsg struct {
	notice *models.Notice
	err    error
}

type submittedMsg struct {
	receipt *dispatch.Receipt
	err     error
}

// Model is the bubbletea model of one wizard session.
type Model struct {
	ctx   context.Context
	svc   session.QuoteSessionService
	auth  catalog.AuthSession
	today func() time.Time

	sess   *models.QuoteSession
	view   steps.View
	cursor int

	input   textinput.Model
	editing func(value string) tea.Cmd

	loading    bool
	submitting bool
	notice     *models.Notice
	link       string
	done       bool
	closed     bool
	width      int
}

// New opens a wizard session. Reference data is loaded by the command returned from Init.
func New(ctx context.Context, svc session.QuoteSessionService, auth catalog.AuthSession) (*Model, error) {
	sess, err := svc.Open(ctx)
	if err != nil {
		return nil, err
	}
	ti := textinput.New()
	ti.CharLimit = 200
	m := &Model{
		ctx:     ctx,
		svc:     svc,
		auth:    auth,
		today:   time.Now,
		sess:    sess,
		input:   ti,
		loading: true,
	}
	m.render()
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	id := m.sess.ID
	return func() tea.Msg {
		_, notice, err := m.svc.LoadReference(m.ctx, id, m.auth)
		return referenceLoadedMsg{notice: notice, err: err}
	}
}

// Link is the deep link of a completed submission.
func (m *Model) Link() string { return m.link }

// Done reports whether the request was submitted.
func (m *Model) Done() bool { return m.done }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case referenceLoadedMsg:
		m.loading = false
		if m.closed || errors.Is(msg.err, session.ErrSessionNotFound) {
			return m, nil
		}
		if msg.err != nil {
			n := catalog.LoadFailedNotice
			m.notice = &n
			return m, nil
		}
		m.notice = msg.notice
		m.reload()
		return m, nil

	case submittedMsg:
		m.submitting = false
		if msg.err != nil {
			m.notice = failureNotice(msg.err)
			m.reload()
			return m, nil
		}
		m.done = true
		m.link = msg.receipt.Link
		m.notice = &msg.receipt.Notice
		m.sess = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.editing != nil {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.close()
		return m, tea.Quit
	}

	if m.editing != nil {
		switch msg.Type {
		case tea.KeyEnter:
			commit := m.editing
			m.stopEditing()
			return m, commit(m.input.Value())
		case tea.KeyEsc:
			m.stopEditing()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if m.done {
		switch msg.String() {
		case "esc", "enter", "q":
			m.closed = true
			return m, tea.Quit
		}
		return m, nil
	}

	if msg.String() == "esc" {
		m.close()
		return m, tea.Quit
	}
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "left":
		m.apply(m.svc.Retreat)
	case "right":
		m.apply(m.svc.Advance)
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down":
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
	case " ":
		rows := m.rows()
		if m.cursor < len(rows) && rows[m.cursor].activate != nil {
			return m, rows[m.cursor].activate()
		}
	case "enter":
		if m.sess.Step == models.MaxStep {
			return m, m.submit()
		}
		m.apply(m.svc.Advance)
	case "1", "2", "3", "4", "5", "6", "7":
		step := models.Step(msg.Runes[0] - '0')
		m.goTo(step)
	}
	return m, nil
}

// apply runs one session operation and re-renders from its result.
func (m *Model) apply(op func(ctx context.Context, id string) (*models.QuoteSession, error)) {
	sess, err := op(m.ctx, m.sess.ID)
	if err != nil {
		m.notice = failureNotice(err)
		return
	}
	m.setSession(sess)
}

func (m *Model) goTo(step models.Step) {
	m.apply(func(ctx context.Context, id string) (*models.QuoteSession, error) {
		return m.svc.GoTo(ctx, id, step)
	})
}

func (m *Model) submit() tea.Cmd {
	if m.view.Contact == nil {
		return nil
	}
	if state := m.view.Contact.Submit; !state.Enabled {
		m.notice = &models.Notice{Kind: models.NoticeInfo, Title: "Dados incompletos", Message: state.Hint}
		return nil
	}
	m.submitting = true
	m.notice = nil
	id := m.sess.ID
	return func() tea.Msg {
		receipt, err := m.svc.Submit(m.ctx, id)
		return submittedMsg{receipt: receipt, err: err}
	}
}

// close discards the session. A reference load still in flight then has nothing to apply to.
func (m *Model) close() {
	if m.closed {
		return
	}
	m.closed = true
	if m.sess != nil {
		_ = m.svc.Close(m.ctx, m.sess.ID)
	}
}

func (m *Model) reload() {
	if m.sess == nil {
		return
	}
	sess, err := m.svc.Get(m.ctx, m.sess.ID)
	if err != nil {
		m.notice = failureNotice(err)
		return
	}
	m.setSession(sess)
}

func (m *Model) setSession(sess *models.QuoteSession) {
	if sess.Step != m.sess.Step {
		m.cursor = 0
	}
	m.sess = sess
	m.render()
	if n := len(m.rows()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *Model) render() {
	m.view = steps.Render(m.sess.Step, m.sess.Draft, m.sess.Reference, m.today())
}

func (m *Model) startEditing(initial string, commit func(value string) tea.Cmd) tea.Cmd {
	m.editing = commit
	m.input.SetValue(initial)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) stopEditing() {
	m.editing = nil
	m.input.Blur()
	m.input.Reset()
}

func failureNotice(err error) *models.Notice {
	var de *dispatch.Error
	if errors.As(err, &de) {
		n := de.Notice
		return &n
	}
	return &models.Notice{Kind: models.NoticeError, Title: "Erro", Message: err.Error()}
}
