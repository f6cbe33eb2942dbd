package message

import (
	"strings"
	"testing"

	"festquote/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reference() models.ReferenceDataSet {
	return models.ReferenceDataSet{
		EventTypes: []models.EventType{
			{ID: "aniversario-infantil", Name: "Aniversário Infantil", Icon: "🎂"},
			{ID: "casamento", Name: "Casamento"},
		},
		Equipment: []models.Equipment{
			{ID: "pula-pula", Name: "Pula-pula"},
			{ID: "piscina", Name: "Piscina de Bolinhas"},
		},
		Services: []models.AdditionalService{
			{ID: "fotografia", Name: "Fotografia Profissional"},
		},
	}
}

func scenarioDraft() models.QuoteDraft {
	d := models.NewQuoteDraft()
	d.EventTypeID = "aniversario-infantil"
	d.Location = models.LocationOurSpace
	d.DurationHours = 4
	d.GuestCount = 50
	d.EventDate = "2025-12-01"
	d.Contact = models.Contact{Name: "Maria", Phone: "81 98888-7777"}
	return d
}

func TestComposeScenario(t *testing.T) {
	out := Compose(scenarioDraft(), reference())

	for _, want := range []string{"Aniversário Infantil", "Nosso Espaço", "4 horas", "50", "01/12/2025"} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.HasPrefix(out, "Olá! Gostaria de solicitar um orçamento:\n\n• Nome: Maria\n"))
	assert.Contains(t, out, "• Telefone: 81 98888-7777 (81988887777)\n")
	assert.NotContains(t, out, "Email")
	assert.NotContains(t, out, "Equipamentos")
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestComposeFullLayout(t *testing.T) {
	d := scenarioDraft()
	d.Contact.Email = "maria@example.com"
	d.Contact.Message = "Tema fundo do mar"
	d.Location = models.LocationClientSpace
	d.GuestCount = 12000
	d.SelectedEquipmentIDs = []string{"piscina", "pula-pula"}
	d.SelectedServiceIDs = []string{"fotografia"}

	want := strings.Join([]string{
		"Olá! Gostaria de solicitar um orçamento:",
		"",
		"• Nome: Maria",
		"• Telefone: 81 98888-7777 (81988887777)",
		"• Email: maria@example.com",
		"• Mensagem adicional: Tema fundo do mar",
		"",
		"• Tipo de evento: Aniversário Infantil",
		"• Local do Evento: Seu Espaço",
		"• Duração: 4 horas",
		"• Convidados: 12.000",
		"• Data: 01/12/2025",
		"",
		"• Equipamentos:",
		"- Piscina de Bolinhas",
		"- Pula-pula",
		"",
		"• Serviços adicionais:",
		"- Fotografia Profissional",
	}, "\n")
	assert.Equal(t, want, Compose(d, reference()))
}

func TestComposeToleratesUnresolvedIDs(t *testing.T) {
	d := scenarioDraft()
	d.EventTypeID = "removed-type"
	d.SelectedEquipmentIDs = []string{"gone", "pula-pula"}
	d.SelectedServiceIDs = []string{"gone-too"}

	out := Compose(d, reference())
	assert.NotContains(t, out, "Tipo de evento")
	assert.Contains(t, out, "- Pula-pula")
	assert.NotContains(t, out, "gone")
	assert.NotContains(t, out, "Serviços adicionais")
}

func TestComposeWithEmptyReference(t *testing.T) {
	d := scenarioDraft()
	d.SelectedEquipmentIDs = []string{"pula-pula"}
	out := Compose(d, models.NewReferenceDataSet())
	assert.NotContains(t, out, "Tipo de evento")
	assert.NotContains(t, out, "Equipamentos")
	assert.Contains(t, out, "• Local do Evento: Nosso Espaço")
}

func TestComposeUnsetValues(t *testing.T) {
	out := Compose(models.NewQuoteDraft(), reference())
	assert.Contains(t, out, "• Local do Evento: Não definido")
	assert.Contains(t, out, "• Data: Não definida")
}

func TestComposeIsPure(t *testing.T) {
	d1, d2 := scenarioDraft(), scenarioDraft()
	d1.SelectedEquipmentIDs = []string{"pula-pula"}
	d2.SelectedEquipmentIDs = []string{"pula-pula"}

	first := Compose(d1, reference())
	require.Equal(t, first, Compose(d2, reference()))
	require.Equal(t, first, Compose(d1, reference()))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "01/12/2025", FormatDate("2025-12-01"))
	assert.Equal(t, "29/02/2028", FormatDate("2028-02-29T00:00:00Z"))
	assert.Equal(t, "Não definida", FormatDate(""))
	assert.Equal(t, "amanhã", FormatDate("amanhã"))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "50", FormatCount(50))
	assert.Equal(t, "12.000", FormatCount(12000))
}
