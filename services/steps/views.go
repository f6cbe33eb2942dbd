package steps

import (
	"festquote/models"
	"festquote/services/quote"
)

// View is the input surface of exactly one wizard step, bound to the current draft.
// Only the payload matching Step is set.
type View struct {
	Step        models.Step    `json:"step"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Total       int            `json:"total"`
	CanAdvance  bool           `json:"canAdvance"`
	CanRetreat  bool           `json:"canRetreat"`
	Progress    []ProgressMark `json:"progress"`

	EventType *EventTypeView `json:"eventType,omitempty"`
	Location  *LocationView  `json:"location,omitempty"`
	Equipment *EquipmentView `json:"equipment,omitempty"`
	Details   *DetailsView   `json:"details,omitempty"`
	Services  *ServicesView  `json:"services,omitempty"`
	Summary   *SummaryView   `json:"summary,omitempty"`
	Contact   *ContactView   `json:"contact,omitempty"`
}

// ProgressMark is one dot of the progress bar; every mark is a goTo target.
type ProgressMark struct {
	Step    models.Step `json:"step"`
	Title   string      `json:"title"`
	Done    bool        `json:"done"`
	Current bool        `json:"current"`
}

type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Selected    bool   `json:"selected"`
}

type EventTypeView struct {
	Options []Option `json:"options"`
}

type LocationOption struct {
	Value       models.Location `json:"value"`
	Label       string          `json:"label"`
	Description string          `json:"description"`
	Features    []string        `json:"features"`
	Selected    bool            `json:"selected"`
}

type LocationView struct {
	Options []LocationOption `json:"options"`
}

type EquipmentCard struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	AgeRange    string `json:"ageRange,omitempty"`
	Capacity    string `json:"capacity,omitempty"`
	Selected    bool   `json:"selected"`
}

type EquipmentView struct {
	Items         []EquipmentCard `json:"items"`
	SelectedCount int             `json:"selectedCount"`
}

// Choice is a preset number (hours or guests).
type Choice struct {
	Value    int    `json:"value"`
	Badge    string `json:"badge,omitempty"`
	Selected bool   `json:"selected"`
}

type DetailsView struct {
	DurationOptions []Choice `json:"durationOptions"`
	GuestOptions    []Choice `json:"guestOptions"`
	DurationHours   int      `json:"durationHours"`
	GuestCount      int      `json:"guestCount"`
	MinGuests       int      `json:"minGuests"`
	MaxGuests       int      `json:"maxGuests"`
	EventDate       string   `json:"eventDate,omitempty"`
	MinDate         string   `json:"minDate"`
}

type ServicesView struct {
	Items         []Option `json:"items"`
	SelectedCount int      `json:"selectedCount"`
}

// SummarySection is one reviewable block of the summary; Edit is the step that changes it.
type SummarySection struct {
	Title string      `json:"title"`
	Lines []string    `json:"lines"`
	Edit  models.Step `json:"edit"`
}

type SummaryView struct {
	Sections []SummarySection `json:"sections"`
	Message  string           `json:"message"`
}

type ContactView struct {
	Contact models.Contact    `json:"contact"`
	Submit  quote.SubmitState `json:"submit"`
}
