package quote

import (
	"strings"

	"festquote/models"
)

// CanAdvance is the per-step gate. The contact step is terminal; its submit predicate is SubmitGate.
func CanAdvance(step models.Step, draft models.QuoteDraft) bool {
	switch step {
	case models.StepEventType:
		return draft.EventTypeID != ""
	case models.StepLocation:
		return draft.Location.Valid()
	case models.StepEquipment:
		return true
	case models.StepDetails:
		return draft.DurationHours > 0 && draft.GuestCount > 0 && draft.EventDate != ""
	case models.StepServices:
		return true
	case models.StepSummary:
		return true
	default:
		return false
	}
}

const (
	HintMissingNameOrPhone = "Preencha nome e telefone para enviar sua solicitação"
	HintInvalidPhone       = "Digite um telefone válido para continuar"
	HintRequiredFields     = "Preencha os campos obrigatórios"
)

// SubmitState drives the enabled state of the submit control and its explanatory text.
// Hint is empty exactly when Enabled is true.
type SubmitState struct {
	Enabled    bool   `json:"enabled"`
	PhoneValid bool   `json:"phoneValid"`
	Hint       string `json:"hint,omitempty"`
}

// SubmitGate evaluates the final submission predicate for contact.
func SubmitGate(contact models.Contact) SubmitState {
	name := strings.TrimSpace(contact.Name)
	phone := strings.TrimSpace(contact.Phone)
	phoneValid := ValidatePhoneNumber(contact.Phone)

	st := SubmitState{
		Enabled:    name != "" && phone != "" && phoneValid,
		PhoneValid: phoneValid,
	}
	switch {
	case st.Enabled:
	case name == "" || phone == "":
		st.Hint = HintMissingNameOrPhone
	case !phoneValid:
		st.Hint = HintInvalidPhone
	default:
		st.Hint = HintRequiredFields
	}
	return st
}
