// Package steps maps a wizard position to the view of that step. It holds no state:
// every view is derived from the draft and the session's reference snapshot.
package steps

import (
	"fmt"
	"time"

	"festquote/models"
	"festquote/services/message"
	"festquote/services/quote"
)

var (
	durationOptions = []int{2, 3, 4, 5, 6, 8}
	guestOptions    = []int{20, 30, 50, 80, 100, 150, 200}
	durationBadges  = map[int]string{2: "Básico", 4: "Popular", 6: "Completo", 8: "Premium"}
)

const (
	MinGuests = 1
	MaxGuests = 500
)

var locationOptions = []LocationOption{
	{
		Value:       models.LocationOurSpace,
		Label:       models.LocationOurSpace.Label(),
		Description: "Realize sua festa em nosso espaço completo e equipado, com toda a infraestrutura necessária.",
		Features:    []string{"Equipamentos inclusos", "Estacionamento gratuito", "Limpeza inclusa"},
	},
	{
		Value:       models.LocationClientSpace,
		Label:       models.LocationClientSpace.Label(),
		Description: "Levamos toda a festa até você! Montamos tudo no local de sua preferência.",
		Features:    []string{"Montagem no local", "Transporte incluso", "Equipe especializada", "Desmontagem inclusa"},
	},
}

var summaryLocationText = map[models.Location]string{
	models.LocationOurSpace:    "Festa realizada em nosso espaço completo e equipado",
	models.LocationClientSpace: "Montagem completa no local de sua preferência",
}

type renderFunc func(v *View, draft models.QuoteDraft, ref models.ReferenceDataSet, today time.Time)

var renderers = map[models.Step]renderFunc{
	models.StepEventType: renderEventType,
	models.StepLocation:  renderLocation,
	models.StepEquipment: renderEquipment,
	models.StepDetails:   renderDetails,
	models.StepServices:  renderServices,
	models.StepSummary:   renderSummary,
	models.StepContact:   renderContact,
}

// Render builds the view for step. Out of range steps fall back to the first step.
func Render(step models.Step, draft models.QuoteDraft, ref models.ReferenceDataSet, today time.Time) View {
	if !step.Valid() {
		step = models.MinStep
	}
	info := step.Info()
	v := View{
		Step:        step,
		Title:       info.Title,
		Description: info.Description,
		Total:       int(models.MaxStep),
		CanAdvance:  step < models.MaxStep && quote.CanAdvance(step, draft),
		CanRetreat:  step > models.MinStep,
		Progress:    progress(step),
	}
	renderers[step](&v, draft, ref, today)
	return v
}

func progress(current models.Step) []ProgressMark {
	marks := make([]ProgressMark, 0, int(models.MaxStep))
	for _, info := range models.Steps() {
		marks = append(marks, ProgressMark{
			Step:    info.ID,
			Title:   info.Title,
			Done:    info.ID < current,
			Current: info.ID == current,
		})
	}
	return marks
}

func renderEventType(v *View, d models.QuoteDraft, ref models.ReferenceDataSet, _ time.Time) {
	opts := make([]Option, 0, len(ref.EventTypes))
	for _, et := range ref.EventTypes {
		opts = append(opts, Option{
			ID:          et.ID,
			Label:       et.Name,
			Description: et.Description,
			Icon:        et.Icon,
			Selected:    et.ID == d.EventTypeID,
		})
	}
	v.EventType = &EventTypeView{Options: opts}
}

func renderLocation(v *View, d models.QuoteDraft, _ models.ReferenceDataSet, _ time.Time) {
	opts := make([]LocationOption, len(locationOptions))
	for i, o := range locationOptions {
		o.Features = append([]string{}, o.Features...)
		o.Selected = o.Value == d.Location
		opts[i] = o
	}
	v.Location = &LocationView{Options: opts}
}

func renderEquipment(v *View, d models.QuoteDraft, ref models.ReferenceDataSet, _ time.Time) {
	selected := idSet(d.SelectedEquipmentIDs)
	cards := make([]EquipmentCard, 0, len(ref.Equipment))
	for _, eq := range ref.Equipment {
		cards = append(cards, EquipmentCard{
			ID:          eq.ID,
			Name:        eq.Name,
			Description: eq.Description,
			Image:       eq.Image,
			AgeRange:    eq.AgeRange,
			Capacity:    eq.Capacity,
			Selected:    selected[eq.ID],
		})
	}
	v.Equipment = &EquipmentView{Items: cards, SelectedCount: len(d.SelectedEquipmentIDs)}
}

func renderDetails(v *View, d models.QuoteDraft, _ models.ReferenceDataSet, today time.Time) {
	durations := make([]Choice, 0, len(durationOptions))
	for _, h := range durationOptions {
		durations = append(durations, Choice{Value: h, Badge: durationBadges[h], Selected: h == d.DurationHours})
	}
	guests := make([]Choice, 0, len(guestOptions))
	for _, n := range guestOptions {
		guests = append(guests, Choice{Value: n, Selected: n == d.GuestCount})
	}
	v.Details = &DetailsView{
		DurationOptions: durations,
		GuestOptions:    guests,
		DurationHours:   d.DurationHours,
		GuestCount:      d.GuestCount,
		MinGuests:       MinGuests,
		MaxGuests:       MaxGuests,
		EventDate:       d.EventDate,
		MinDate:         today.Format("2006-01-02"),
	}
}

func renderServices(v *View, d models.QuoteDraft, ref models.ReferenceDataSet, _ time.Time) {
	selected := idSet(d.SelectedServiceIDs)
	items := make([]Option, 0, len(ref.Services))
	for _, s := range ref.Services {
		items = append(items, Option{ID: s.ID, Label: s.Name, Description: s.Description, Selected: selected[s.ID]})
	}
	v.Services = &ServicesView{Items: items, SelectedCount: len(d.SelectedServiceIDs)}
}

// renderSummary recomputes the message on every render, so it always matches the current draft.
func renderSummary(v *View, d models.QuoteDraft, ref models.ReferenceDataSet, _ time.Time) {
	var sections []SummarySection

	if et, ok := ref.EventType(d.EventTypeID); ok {
		line := et.Name
		if et.Icon != "" {
			line = et.Icon + " " + et.Name
		}
		sections = append(sections, SummarySection{Title: "Tipo de Evento", Lines: []string{line}, Edit: models.StepEventType})
	}
	if d.Location.Valid() {
		sections = append(sections, SummarySection{
			Title: "Local do Evento",
			Lines: []string{d.Location.Label(), summaryLocationText[d.Location]},
			Edit:  models.StepLocation,
		})
	}
	sections = append(sections, SummarySection{
		Title: "Detalhes do Evento",
		Lines: []string{
			fmt.Sprintf("%d horas", d.DurationHours),
			message.FormatCount(d.GuestCount) + " convidados",
			message.FormatDate(d.EventDate),
		},
		Edit: models.StepDetails,
	})

	var equipment []string
	for _, id := range d.SelectedEquipmentIDs {
		if eq, ok := ref.EquipmentItem(id); ok {
			equipment = append(equipment, eq.Name)
		}
	}
	if len(equipment) > 0 {
		sections = append(sections, SummarySection{
			Title: fmt.Sprintf("Equipamentos Selecionados (%d)", len(equipment)),
			Lines: equipment,
			Edit:  models.StepEquipment,
		})
	}

	var services []string
	for _, id := range d.SelectedServiceIDs {
		if s, ok := ref.Service(id); ok {
			services = append(services, s.Name)
		}
	}
	if len(services) > 0 {
		sections = append(sections, SummarySection{
			Title: fmt.Sprintf("Serviços Adicionais (%d)", len(services)),
			Lines: services,
			Edit:  models.StepServices,
		})
	}

	v.Summary = &SummaryView{Sections: sections, Message: message.Compose(d, ref)}
}

func renderContact(v *View, d models.QuoteDraft, _ models.ReferenceDataSet, _ time.Time) {
	v.Contact = &ContactView{Contact: d.Contact, Submit: quote.SubmitGate(d.Contact)}
}

// NormalizeContactInput applies the input mask of a contact field before it reaches the store.
func NormalizeContactInput(field quote.ContactField, value string) string {
	if field == quote.ContactPhone {
		return quote.FormatPhoneNumber(value)
	}
	return value
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
