package quote

import (
	"testing"

	"festquote/models"

	"github.com/stretchr/testify/assert"
)

func TestCanAdvancePolicy(t *testing.T) {
	valid := readyDetails()

	cases := []struct {
		name   string
		step   models.Step
		mutate func(*models.QuoteDraft)
		want   bool
	}{
		{"event type set", models.StepEventType, nil, true},
		{"event type empty", models.StepEventType, func(d *models.QuoteDraft) { d.EventTypeID = "" }, false},
		{"location our space", models.StepLocation, nil, true},
		{"location client space", models.StepLocation, func(d *models.QuoteDraft) { d.Location = models.LocationClientSpace }, true},
		{"location unset", models.StepLocation, func(d *models.QuoteDraft) { d.Location = models.LocationUnset }, false},
		{"location unknown", models.StepLocation, func(d *models.QuoteDraft) { d.Location = "garden" }, false},
		{"equipment empty", models.StepEquipment, func(d *models.QuoteDraft) { d.SelectedEquipmentIDs = nil }, true},
		{"details valid", models.StepDetails, nil, true},
		{"details duration zero", models.StepDetails, func(d *models.QuoteDraft) { d.DurationHours = 0 }, false},
		{"details duration one", models.StepDetails, func(d *models.QuoteDraft) { d.DurationHours = 1 }, true},
		{"details guests zero", models.StepDetails, func(d *models.QuoteDraft) { d.GuestCount = 0 }, false},
		{"details guests one", models.StepDetails, func(d *models.QuoteDraft) { d.GuestCount = 1 }, true},
		{"details guests negative", models.StepDetails, func(d *models.QuoteDraft) { d.GuestCount = -5 }, false},
		{"details date unset", models.StepDetails, func(d *models.QuoteDraft) { d.EventDate = "" }, false},
		{"services empty", models.StepServices, nil, true},
		{"summary", models.StepSummary, func(d *models.QuoteDraft) { *d = models.NewQuoteDraft() }, true},
		{"contact is terminal", models.StepContact, nil, false},
		{"step zero", 0, nil, false},
		{"step eight", 8, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := valid.Clone()
			if tc.mutate != nil {
				tc.mutate(&d)
			}
			assert.Equal(t, tc.want, CanAdvance(tc.step, d))
		})
	}
}

func TestSubmitGateHints(t *testing.T) {
	cases := []struct {
		name    string
		contact models.Contact
		enabled bool
		hint    string
	}{
		{"empty name", models.Contact{Name: "", Phone: "81 99999-9999"}, false, HintMissingNameOrPhone},
		{"blank name", models.Contact{Name: "   ", Phone: "81 99999-9999"}, false, HintMissingNameOrPhone},
		{"empty phone", models.Contact{Name: "Maria"}, false, HintMissingNameOrPhone},
		{"short phone", models.Contact{Name: "Maria", Phone: "81 9999-999"}, false, HintInvalidPhone},
		{"long phone", models.Contact{Name: "Maria", Phone: "81 99999-99999"}, false, HintInvalidPhone},
		{"mobile", models.Contact{Name: "Maria", Phone: "81 99999-9999"}, true, ""},
		{"landline", models.Contact{Name: "Maria", Phone: "81 3333-4444"}, true, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := SubmitGate(tc.contact)
			assert.Equal(t, tc.enabled, st.Enabled)
			assert.Equal(t, tc.hint, st.Hint)
		})
	}
}

func TestPhoneHelpers(t *testing.T) {
	assert.False(t, ValidatePhoneNumber("81 9999-999"))
	assert.True(t, ValidatePhoneNumber("81 99999-9999"))
	assert.True(t, ValidatePhoneNumber("(81) 3333-4444"))
	assert.False(t, ValidatePhoneNumber(""))

	assert.Equal(t, "81988887777", PhoneDigits("81 98888-7777"))

	assert.Equal(t, "8", FormatPhoneNumber("8"))
	assert.Equal(t, "81", FormatPhoneNumber("81"))
	assert.Equal(t, "81 9999", FormatPhoneNumber("819999"))
	assert.Equal(t, "81 99999", FormatPhoneNumber("8199999"))
	assert.Equal(t, "81 99999-9", FormatPhoneNumber("81999999"))
	assert.Equal(t, "81 99999-9999", FormatPhoneNumber("(81) 99999-99999999"))
	assert.Equal(t, "", FormatPhoneNumber("abc"))
}
