// Package message turns a quote draft into the plain-text summary sent through the
// messaging channel. Composition is pure: no I/O and no dependence on the clock.
package message

import (
	"strings"
	"time"

	"festquote/models"
	"festquote/services/quote"

	"golang.org/x/text/language"
	textmsg "golang.org/x/text/message"
)

const (
	greeting    = "Olá! Gostaria de solicitar um orçamento:"
	bullet      = "• "
	subBullet   = "- "
	isoDate     = "2006-01-02"
	displayDate = "02/01/2006"
	noDate      = "Não definida"
)

var printer = textmsg.NewPrinter(language.BrazilianPortuguese)

// Compose renders draft against ref. Ids that do not resolve in ref are left out.
func Compose(draft models.QuoteDraft, ref models.ReferenceDataSet) string {
	var b strings.Builder
	b.WriteString(greeting)
	b.WriteString("\n\n")

	writeContact(&b, draft.Contact)
	b.WriteString("\n")
	writeEvent(&b, draft, ref)

	writeList(&b, "Equipamentos:", equipmentNames(draft.SelectedEquipmentIDs, ref))
	writeList(&b, "Serviços adicionais:", serviceNames(draft.SelectedServiceIDs, ref))

	return strings.TrimSpace(b.String())
}

func writeContact(b *strings.Builder, c models.Contact) {
	line(b, "Nome: "+c.Name)
	line(b, "Telefone: "+c.Phone+" ("+quote.PhoneDigits(c.Phone)+")")
	if c.Email != "" {
		line(b, "Email: "+c.Email)
	}
	if c.Message != "" {
		line(b, "Mensagem adicional: "+c.Message)
	}
}

func writeEvent(b *strings.Builder, d models.QuoteDraft, ref models.ReferenceDataSet) {
	if et, ok := ref.EventType(d.EventTypeID); ok {
		line(b, "Tipo de evento: "+et.Name)
	}
	line(b, "Local do Evento: "+d.Location.Label())
	line(b, printer.Sprintf("Duração: %d horas", d.DurationHours))
	line(b, printer.Sprintf("Convidados: %d", d.GuestCount))
	line(b, "Data: "+FormatDate(d.EventDate))
}

func writeList(b *strings.Builder, title string, names []string) {
	if len(names) == 0 {
		return
	}
	b.WriteString("\n")
	line(b, title)
	for _, name := range names {
		b.WriteString(subBullet)
		b.WriteString(name)
		b.WriteString("\n")
	}
}

func line(b *strings.Builder, text string) {
	b.WriteString(bullet)
	b.WriteString(text)
	b.WriteString("\n")
}

func equipmentNames(ids []string, ref models.ReferenceDataSet) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if eq, ok := ref.EquipmentItem(id); ok {
			names = append(names, eq.Name)
		}
	}
	return names
}

func serviceNames(ids []string, ref models.ReferenceDataSet) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if s, ok := ref.Service(id); ok {
			names = append(names, s.Name)
		}
	}
	return names
}

// FormatDate renders an ISO calendar date as DD/MM/YYYY. Unset dates render as "Não definida";
// values that do not parse are returned unchanged.
func FormatDate(iso string) string {
	if iso == "" {
		return noDate
	}
	day := iso
	if len(day) > len(isoDate) {
		day = day[:len(isoDate)]
	}
	t, err := time.Parse(isoDate, day)
	if err != nil {
		return iso
	}
	return t.Format(displayDate)
}

// FormatCount renders n with pt-BR digit grouping.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}
