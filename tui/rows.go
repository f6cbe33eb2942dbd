package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"festquote/models"
	"festquote/services/message"
	"festquote/services/quote"
	"festquote/services/steps"

	tea "github.com/charmbracelet/bubbletea"
)

// row is one selectable line of the current step.
type row struct {
	label    string
	detail   string
	mark     string
	activate func() tea.Cmd
}

func radio(selected bool) string {
	if selected {
		return "(•)"
	}
	return "( )"
}

func check(selected bool) string {
	if selected {
		return "[x]"
	}
	return "[ ]"
}

func (m *Model) rows() []row {
	v := m.view
	switch {
	case v.EventType != nil:
		return m.eventTypeRows(v.EventType)
	case v.Location != nil:
		return m.locationRows(v.Location)
	case v.Equipment != nil:
		return m.equipmentRows(v.Equipment)
	case v.Details != nil:
		return m.detailRows(v.Details)
	case v.Services != nil:
		return m.serviceRows(v.Services)
	case v.Summary != nil:
		return m.summaryRows(v.Summary)
	case v.Contact != nil:
		return m.contactRows(v.Contact)
	}
	return nil
}

func (m *Model) setField(field quote.Field, value interface{}) tea.Cmd {
	m.apply(func(ctx context.Context, id string) (*models.QuoteSession, error) {
		return m.svc.UpdateField(ctx, id, field, value)
	})
	return nil
}

func (m *Model) eventTypeRows(v *steps.EventTypeView) []row {
	rows := make([]row, 0, len(v.Options))
	for _, opt := range v.Options {
		id := opt.ID
		label := opt.Label
		if opt.Icon != "" {
			label = opt.Icon + " " + label
		}
		rows = append(rows, row{
			label:    label,
			detail:   opt.Description,
			mark:     radio(opt.Selected),
			activate: func() tea.Cmd { return m.setField(quote.FieldEventTypeID, id) },
		})
	}
	return rows
}

func (m *Model) locationRows(v *steps.LocationView) []row {
	rows := make([]row, 0, len(v.Options))
	for _, opt := range v.Options {
		loc := opt.Value
		rows = append(rows, row{
			label:    opt.Label,
			detail:   opt.Description + " " + strings.Join(opt.Features, " · "),
			mark:     radio(opt.Selected),
			activate: func() tea.Cmd { return m.setField(quote.FieldLocation, loc) },
		})
	}
	return rows
}

func (m *Model) equipmentRows(v *steps.EquipmentView) []row {
	rows := make([]row, 0, len(v.Items))
	for _, item := range v.Items {
		id := item.ID
		var details []string
		if item.AgeRange != "" {
			details = append(details, item.AgeRange)
		}
		if item.Capacity != "" {
			details = append(details, item.Capacity)
		}
		rows = append(rows, row{
			label:  item.Name,
			detail: strings.Join(details, " · "),
			mark:   check(item.Selected),
			activate: func() tea.Cmd {
				m.apply(func(ctx context.Context, sid string) (*models.QuoteSession, error) {
					return m.svc.ToggleEquipment(ctx, sid, id)
				})
				return nil
			},
		})
	}
	return rows
}

func (m *Model) serviceRows(v *steps.ServicesView) []row {
	rows := make([]row, 0, len(v.Items))
	for _, item := range v.Items {
		id := item.ID
		rows = append(rows, row{
			label:  item.Label,
			detail: item.Description,
			mark:   check(item.Selected),
			activate: func() tea.Cmd {
				m.apply(func(ctx context.Context, sid string) (*models.QuoteSession, error) {
					return m.svc.ToggleService(ctx, sid, id)
				})
				return nil
			},
		})
	}
	return rows
}

// nextChoice cycles to the option after the selected one, or the first when none is selected.
func nextChoice(choices []steps.Choice) int {
	for i, c := range choices {
		if c.Selected {
			return choices[(i+1)%len(choices)].Value
		}
	}
	return choices[0].Value
}

func durationLabel(c steps.Choice) string {
	if c.Badge != "" {
		return fmt.Sprintf("%dh (%s)", c.Value, c.Badge)
	}
	return fmt.Sprintf("%dh", c.Value)
}

func (m *Model) detailRows(v *steps.DetailsView) []row {
	durations := make([]string, 0, len(v.DurationOptions))
	for _, c := range v.DurationOptions {
		durations = append(durations, durationLabel(c))
	}
	return []row{
		{
			label:    fmt.Sprintf("Duração: %d horas", v.DurationHours),
			detail:   strings.Join(durations, " / "),
			activate: func() tea.Cmd { return m.setField(quote.FieldDurationHours, nextChoice(v.DurationOptions)) },
		},
		{
			label:    "Convidados: " + message.FormatCount(v.GuestCount),
			detail:   "espaço para alternar entre as opções",
			activate: func() tea.Cmd { return m.setField(quote.FieldGuestCount, nextChoice(v.GuestOptions)) },
		},
		{
			label:  "Outro número de convidados",
			detail: fmt.Sprintf("de %d a %d", v.MinGuests, v.MaxGuests),
			activate: func() tea.Cmd {
				return m.startEditing(strconv.Itoa(v.GuestCount), func(value string) tea.Cmd {
					n, err := strconv.Atoi(strings.TrimSpace(value))
					if err != nil || n < v.MinGuests || n > v.MaxGuests {
						m.notice = &models.Notice{
							Kind:    models.NoticeError,
							Title:   "Número inválido",
							Message: fmt.Sprintf("Informe entre %d e %d convidados.", v.MinGuests, v.MaxGuests),
						}
						return nil
					}
					return m.setField(quote.FieldGuestCount, n)
				})
			},
		},
		{
			label:  "Data: " + message.FormatDate(v.EventDate),
			detail: "AAAA-MM-DD",
			activate: func() tea.Cmd {
				return m.startEditing(v.EventDate, func(value string) tea.Cmd {
					value = strings.TrimSpace(value)
					d, err := time.Parse("2006-01-02", value)
					if err != nil || value < v.MinDate {
						m.notice = &models.Notice{
							Kind:    models.NoticeError,
							Title:   "Data inválida",
							Message: "Informe uma data a partir de hoje no formato AAAA-MM-DD.",
						}
						return nil
					}
					return m.setField(quote.FieldEventDate, d.Format("2006-01-02"))
				})
			},
		},
	}
}

func (m *Model) summaryRows(v *steps.SummaryView) []row {
	rows := make([]row, 0, len(v.Sections))
	for _, s := range v.Sections {
		target := s.Edit
		rows = append(rows, row{
			label:  s.Title,
			detail: strings.Join(s.Lines, ", "),
			mark:   "✎",
			activate: func() tea.Cmd {
				m.goTo(target)
				return nil
			},
		})
	}
	return rows
}

func (m *Model) contactRows(v *steps.ContactView) []row {
	field := func(label string, f quote.ContactField, value string) row {
		shown := value
		if shown == "" {
			shown = "(vazio)"
		}
		return row{
			label: label + ": " + shown,
			activate: func() tea.Cmd {
				return m.startEditing(value, func(input string) tea.Cmd {
					m.apply(func(ctx context.Context, id string) (*models.QuoteSession, error) {
						return m.svc.UpdateContact(ctx, id, f, input)
					})
					return nil
				})
			},
		}
	}
	return []row{
		field("Nome *", quote.ContactName, v.Contact.Name),
		field("Email", quote.ContactEmail, v.Contact.Email),
		field("Telefone *", quote.ContactPhone, v.Contact.Phone),
		field("Mensagem", quote.ContactMessage, v.Contact.Message),
	}
}
