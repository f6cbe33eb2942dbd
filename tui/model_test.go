package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"festquote/models"
	"festquote/services/catalog"
	"festquote/services/dispatch"
	"festquote/services/session"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubLoader struct {
	errs []*catalog.FetchError
}

func (s stubLoader) Load(context.Context, catalog.AuthSession) (models.ReferenceDataSet, []*catalog.FetchError) {
	return models.ReferenceDataSet{
		EventTypes: []models.EventType{
			{ID: "aniversario-infantil", Name: "Aniversário Infantil", Icon: "🎂"},
			{ID: "batizado", Name: "Batizado"},
		},
		Equipment: []models.Equipment{{ID: "pula-pula", Name: "Pula-pula", AgeRange: "3-10 anos"}},
		Services:  []models.AdditionalService{{ID: "fotografia", Name: "Fotografia"}},
	}, s.errs
}

func newTestModel(t *testing.T, opener dispatch.LinkOpener, loader session.ReferenceLoader) *Model {
	t.Helper()
	d, err := dispatch.NewDispatcher("wa.me", "5511999999999", opener, zap.NewNop())
	require.NoError(t, err)
	svc := session.NewService(session.NewMemoryStore(0), loader, d, zap.NewNop())
	m, err := New(context.Background(), svc, catalog.AuthSession{})
	require.NoError(t, err)
	m.today = func() time.Time { return time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC) }
	m.render()
	return m
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func loaded(t *testing.T, m *Model) *Model {
	t.Helper()
	m.Update(m.Init()())
	require.False(t, m.loading)
	return m
}

func okOpener(link *string) dispatch.LinkOpener {
	return dispatch.OpenerFunc(func(_ context.Context, l string) error {
		*link = l
		return nil
	})
}

func TestInitLoadsReference(t *testing.T) {
	m := newTestModel(t, dispatch.ClientOpener{}, stubLoader{})
	assert.Contains(t, m.View(), "Carregando opções...")

	loaded(t, m)
	view := m.View()
	assert.Contains(t, view, "Passo 1 de 7")
	assert.Contains(t, view, "Aniversário Infantil")
	assert.Nil(t, m.notice)
}

func TestInitReportsPartialLoad(t *testing.T) {
	m := newTestModel(t, dispatch.ClientOpener{}, stubLoader{errs: []*catalog.FetchError{{Collection: catalog.CollectionServices}}})
	loaded(t, m)
	require.NotNil(t, m.notice)
	assert.Equal(t, catalog.LoadFailedNotice.Title, m.notice.Title)
	assert.Contains(t, m.View(), "Erro ao carregar dados")
}

func TestCloseBeforeLoadIsNoop(t *testing.T) {
	m := newTestModel(t, dispatch.ClientOpener{}, stubLoader{})
	load := m.Init()

	cmd := press(m, "esc")
	require.NotNil(t, cmd)
	assert.True(t, m.closed)

	m.Update(load())
	assert.Nil(t, m.notice)
	assert.Empty(t, m.View())
}

func TestAdvanceBlockedUntilSelection(t *testing.T) {
	m := loaded(t, newTestModel(t, dispatch.ClientOpener{}, stubLoader{}))

	press(m, "right")
	assert.Equal(t, models.StepEventType, m.sess.Step)

	press(m, "down", "space", "right")
	assert.Equal(t, "batizado", m.sess.Draft.EventTypeID)
	assert.Equal(t, models.StepLocation, m.sess.Step)
	assert.Equal(t, 0, m.cursor)

	press(m, "left")
	assert.Equal(t, models.StepEventType, m.sess.Step)
}

func TestJumpAndToggle(t *testing.T) {
	m := loaded(t, newTestModel(t, dispatch.ClientOpener{}, stubLoader{}))

	press(m, "3", "space")
	assert.Equal(t, models.StepEquipment, m.sess.Step)
	assert.Equal(t, []string{"pula-pula"}, m.sess.Draft.SelectedEquipmentIDs)
	assert.Contains(t, m.View(), "[x] ")

	press(m, "space")
	assert.Empty(t, m.sess.Draft.SelectedEquipmentIDs)
}

func TestDetailsEditing(t *testing.T) {
	m := loaded(t, newTestModel(t, dispatch.ClientOpener{}, stubLoader{}))
	press(m, "4")

	press(m, "space")
	assert.Equal(t, 5, m.sess.Draft.DurationHours)

	press(m, "down", "down", "space")
	require.NotNil(t, m.editing)
	m.input.SetValue("")
	press(m, "999", "enter")
	require.NotNil(t, m.notice)
	assert.Equal(t, "Número inválido", m.notice.Title)
	assert.Equal(t, 50, m.sess.Draft.GuestCount)

	press(m, "space")
	m.input.SetValue("")
	press(m, "120", "enter")
	assert.Equal(t, 120, m.sess.Draft.GuestCount)

	press(m, "down", "space", "2025-11-19", "enter")
	assert.Empty(t, m.sess.Draft.EventDate)
	assert.Equal(t, "Data inválida", m.notice.Title)

	press(m, "space", "2025-12-01", "enter")
	assert.Equal(t, "2025-12-01", m.sess.Draft.EventDate)
	assert.Contains(t, m.View(), "Data: 01/12/2025")
}

func TestEditCancelledWithEsc(t *testing.T) {
	m := loaded(t, newTestModel(t, dispatch.ClientOpener{}, stubLoader{}))
	press(m, "7", "space", "Ana", "esc")
	assert.Nil(t, m.editing)
	assert.Empty(t, m.sess.Draft.Contact.Name)
	assert.False(t, m.closed)
}

func fillWizard(t *testing.T, m *Model) {
	t.Helper()
	press(m, "space", "right")       // event type
	press(m, "space", "right")       // location
	press(m, "right")                // equipment
	press(m, "down", "down", "down") // date row
	press(m, "space", "2025-12-01", "enter", "right")
	press(m, "right", "right") // services, summary
	require.Equal(t, models.StepContact, m.sess.Step)

	press(m, "space", "Ana", "enter")
	press(m, "down", "down", "space", "11987654321", "enter")
	require.Equal(t, "11 98765-4321", m.sess.Draft.Contact.Phone)
}

func TestSubmitCopiesLink(t *testing.T) {
	var link string
	m := loaded(t, newTestModel(t, okOpener(&link), stubLoader{}))
	fillWizard(t, m)

	cmd := press(m, "enter")
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)
	m.Update(cmd())

	assert.True(t, m.Done())
	assert.Equal(t, link, m.Link())
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511999999999?text="))
	assert.Contains(t, m.View(), "Solicitação enviada!")

	cmd = press(m, "enter")
	require.NotNil(t, cmd)
	assert.True(t, m.closed)
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	failing := dispatch.OpenerFunc(func(context.Context, string) error { return errors.New("no clipboard") })
	m := loaded(t, newTestModel(t, failing, stubLoader{}))
	fillWizard(t, m)

	cmd := press(m, "enter")
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.False(t, m.Done())
	require.NotNil(t, m.notice)
	assert.Equal(t, dispatch.FailureNotice.Title, m.notice.Title)
	assert.Equal(t, "Ana", m.sess.Draft.Contact.Name)
	assert.Equal(t, models.PhaseIdle, m.sess.Phase)
}

func TestSubmitBlockedShowsHint(t *testing.T) {
	m := loaded(t, newTestModel(t, dispatch.ClientOpener{}, stubLoader{}))
	cmd := press(m, "7", "enter")
	assert.Nil(t, cmd)
	require.NotNil(t, m.notice)
	assert.Equal(t, "Preencha nome e telefone para enviar sua solicitação", m.notice.Message)
}

func TestSummaryShowsPreviewAndEditTargets(t *testing.T) {
	m := loaded(t, newTestModel(t, dispatch.ClientOpener{}, stubLoader{}))
	press(m, "space", "6")

	view := m.View()
	assert.Contains(t, view, "Olá! Gostaria de solicitar um orçamento:")
	assert.Contains(t, view, "Tipo de Evento")

	press(m, "space")
	assert.Equal(t, models.StepEventType, m.sess.Step)
}
