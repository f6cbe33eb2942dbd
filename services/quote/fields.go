package quote

import (
	"fmt"
	"math"

	"festquote/models"
)

// Field names a top-level draft field, using the draft's JSON names.
type Field string

const (
	FieldEventTypeID          Field = "eventTypeId"
	FieldLocation             Field = "location"
	FieldSelectedEquipmentIDs Field = "selectedEquipmentIds"
	FieldDurationHours        Field = "durationHours"
	FieldGuestCount           Field = "guestCount"
	FieldEventDate            Field = "eventDate"
	FieldSelectedServiceIDs   Field = "selectedServiceIds"
)

// ContactField names a field of the nested contact object.
type ContactField string

const (
	ContactName    ContactField = "name"
	ContactEmail   ContactField = "email"
	ContactPhone   ContactField = "phone"
	ContactMessage ContactField = "message"
)

// setField replaces one top-level field of d. Values decoded from JSON (float64, []interface{})
// are accepted alongside native Go types.
func setField(d *models.QuoteDraft, field Field, value interface{}) error {
	switch field {
	case FieldEventTypeID:
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		d.EventTypeID = s
	case FieldLocation:
		if l, ok := value.(models.Location); ok {
			d.Location = l
			return nil
		}
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		d.Location = models.Location(s)
	case FieldEventDate:
		s, err := asString(field, value)
		if err != nil {
			return err
		}
		d.EventDate = s
	case FieldDurationHours:
		n, err := asInt(field, value)
		if err != nil {
			return err
		}
		d.DurationHours = n
	case FieldGuestCount:
		n, err := asInt(field, value)
		if err != nil {
			return err
		}
		d.GuestCount = n
	case FieldSelectedEquipmentIDs:
		ids, err := asIDSet(field, value)
		if err != nil {
			return err
		}
		d.SelectedEquipmentIDs = ids
	case FieldSelectedServiceIDs:
		ids, err := asIDSet(field, value)
		if err != nil {
			return err
		}
		d.SelectedServiceIDs = ids
	default:
		return newFieldError(string(field), "unknown field")
	}
	return nil
}

func setContactField(c *models.Contact, field ContactField, value string) error {
	switch field {
	case ContactName:
		c.Name = value
	case ContactEmail:
		c.Email = value
	case ContactPhone:
		c.Phone = value
	case ContactMessage:
		c.Message = value
	default:
		return newFieldError(string(field), "unknown contact field")
	}
	return nil
}

func asString(field Field, value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	default:
		return "", newFieldError(string(field), fmt.Sprintf("expected string, got %T", value))
	}
}

func asInt(field Field, value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, newFieldError(string(field), "number out of range")
		}
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, newFieldError(string(field), "expected whole number")
		}
		if v < math.MinInt || v >= -math.MinInt {
			return 0, newFieldError(string(field), "number out of range")
		}
		return int(v), nil
	default:
		return 0, newFieldError(string(field), fmt.Sprintf("expected integer, got %T", value))
	}
}

// asIDSet converts value to an id list with duplicates dropped, keeping first occurrence order.
func asIDSet(field Field, value interface{}) ([]string, error) {
	var raw []string
	switch v := value.(type) {
	case []string:
		raw = v
	case []interface{}:
		raw = make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, newFieldError(string(field), fmt.Sprintf("expected string ids, got %T", item))
			}
			raw = append(raw, s)
		}
	case nil:
	default:
		return nil, newFieldError(string(field), fmt.Sprintf("expected id list, got %T", value))
	}

	seen := make(map[string]struct{}, len(raw))
	ids := make([]string, 0, len(raw))
	for _, id := range raw {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// toggle returns ids with id removed when present, appended otherwise.
func toggle(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			out := make([]string, 0, len(ids)-1)
			out = append(out, ids[:i]...)
			return append(out, ids[i+1:]...)
		}
	}
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids...)
	return append(out, id)
}
