package quote

import "festquote/models"

// Wizard is the state store of one wizard session: the current step and the draft.
// It performs no I/O. Callers holding a Wizard across goroutines must serialise access.
type Wizard struct {
	Step  models.Step       `json:"step"`
	Draft models.QuoteDraft `json:"draft"`
}

// NewWizard returns a wizard on the first step with a default draft.
func NewWizard() *Wizard {
	return &Wizard{Step: models.MinStep, Draft: models.NewQuoteDraft()}
}

// FromSession rebuilds a wizard around a stored position and draft.
func FromSession(step models.Step, draft models.QuoteDraft) *Wizard {
	if !step.Valid() {
		step = models.MinStep
	}
	return &Wizard{Step: step, Draft: draft.Clone()}
}

// UpdateField replaces one top-level field of the draft without validating its value.
func (w *Wizard) UpdateField(field Field, value interface{}) error {
	return setField(&w.Draft, field, value)
}

// UpdateContactField replaces one field of the nested contact object.
func (w *Wizard) UpdateContactField(field ContactField, value string) error {
	return setContactField(&w.Draft.Contact, field, value)
}

func (w *Wizard) ToggleEquipment(id string) {
	w.Draft.SelectedEquipmentIDs = toggle(w.Draft.SelectedEquipmentIDs, id)
}

func (w *Wizard) ToggleService(id string) {
	w.Draft.SelectedServiceIDs = toggle(w.Draft.SelectedServiceIDs, id)
}

// CanAdvance reports whether the gate for the current step is open.
func (w *Wizard) CanAdvance() bool {
	return w.Step < models.MaxStep && CanAdvance(w.Step, w.Draft)
}

// Advance moves one step forward when the current step's gate is open.
// It reports whether the step changed.
func (w *Wizard) Advance() bool {
	if !w.CanAdvance() {
		return false
	}
	w.Step++
	return true
}

// Retreat moves one step back unless already on the first step.
func (w *Wizard) Retreat() bool {
	if w.Step <= models.MinStep {
		return false
	}
	w.Step--
	return true
}

// GoTo jumps directly to step; out of range targets are ignored.
func (w *Wizard) GoTo(step models.Step) bool {
	if !step.Valid() {
		return false
	}
	w.Step = step
	return true
}

// Reset restores the first step and the default draft.
func (w *Wizard) Reset() {
	w.Step = models.MinStep
	w.Draft = models.NewQuoteDraft()
}
