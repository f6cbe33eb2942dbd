package models

// Location identifies where the event takes place.
type Location string

const (
	LocationUnset       Location = ""
	LocationOurSpace    Location = "our-space"
	LocationClientSpace Location = "client-space"
)

// Valid reports whether the location is one of the two selectable places.
func (l Location) Valid() bool {
	return l == LocationOurSpace || l == LocationClientSpace
}

// Label returns the customer facing name of the location.
func (l Location) Label() string {
	switch l {
	case LocationOurSpace:
		return "Nosso Espaço"
	case LocationClientSpace:
		return "Seu Espaço"
	default:
		return "Não definido"
	}
}

const (
	DefaultDurationHours = 4
	DefaultGuestCount    = 50
)

// Contact holds the personal data collected on the last step.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone"`
	Message string `json:"message,omitempty"`
}

// QuoteDraft is the in-progress, unsubmitted quote request.
type QuoteDraft struct {
	EventTypeID          string   `json:"eventTypeId"`
	Location             Location `json:"location"`
	SelectedEquipmentIDs []string `json:"selectedEquipmentIds"`
	DurationHours        int      `json:"durationHours"`
	GuestCount           int      `json:"guestCount"`
	EventDate            string   `json:"eventDate,omitempty"` // YYYY-MM-DD
	SelectedServiceIDs   []string `json:"selectedServiceIds"`
	Contact              Contact  `json:"contact"`
}

// NewQuoteDraft returns a draft populated with the wizard defaults.
func NewQuoteDraft() QuoteDraft {
	return QuoteDraft{
		SelectedEquipmentIDs: []string{},
		DurationHours:        DefaultDurationHours,
		GuestCount:           DefaultGuestCount,
		SelectedServiceIDs:   []string{},
	}
}

// Clone returns a deep copy so id slices are never shared between drafts.
func (d QuoteDraft) Clone() QuoteDraft {
	out := d
	out.SelectedEquipmentIDs = append([]string{}, d.SelectedEquipmentIDs...)
	out.SelectedServiceIDs = append([]string{}, d.SelectedServiceIDs...)
	return out
}
