package parcel

import (
	"fmt"
	"sort"
	"time"

	"github.com/tendant/simple-parcel/pkg/user"
)

// Field names recognized by the update schema. Keys outside this set are
// dropped before they can reach storage or the response.
const (
	FieldStatus       = "status"
	FieldSchedule     = "schedule"
	FieldDropoffPerms = "dropoffPerms"
)

var updatableFields = []string{FieldDropoffPerms, FieldSchedule, FieldStatus}

// roleAllowlist maps a role to the set of fields it may update. Admins are
// not listed: the allowlist check is skipped for them entirely.
var roleAllowlist = map[user.Role]map[string]bool{
	user.RoleUser: {
		FieldDropoffPerms: true,
	},
	user.RoleDriver: {
		FieldSchedule: true,
		FieldStatus:   true,
	},
}

// UpdateFields is the validated subset of an update payload. A nil field
// was not present in the payload and must be left untouched by the store.
type UpdateFields struct {
	Status       *Status
	Schedule     *time.Time
	DropoffPerms *string
}

// IsEmpty reports whether no field is set. An empty update is still a
// valid update; it returns the current record unchanged.
func (f UpdateFields) IsEmpty() bool {
	return f.Status == nil && f.Schedule == nil && f.DropoffPerms == nil
}

// Validate checks a raw partial-update payload against the canonical field
// schema and the role's allowlist. It is a pure function: no I/O, no
// mutation of the payload.
//
// Every recognized field present must pass its shape check, then every
// recognized field present must be in the role's allowlist (admins skip the
// allowlist). Unrecognized keys are silently dropped. On success the
// returned UpdateFields holds exactly the recognized, permitted fields.
func Validate(role user.Role, payload map[string]any) (UpdateFields, error) {
	var fields UpdateFields
	var issues []Issue

	for _, name := range updatableFields {
		raw, ok := payload[name]
		if !ok {
			continue
		}

		switch name {
		case FieldStatus:
			s, ok := raw.(string)
			if !ok {
				issues = append(issues, invalidType(name, "string", raw))
				continue
			}
			status := Status(s)
			if !status.Valid() {
				issues = append(issues, Issue{
					Code:    "invalid_enum_value",
					Message: fmt.Sprintf("Invalid enum value. Expected 'NEW' | 'SCHEDULED' | 'IN_DELIVERY' | 'DELIVERED', received '%s'", s),
					Path:    name,
				})
				continue
			}
			fields.Status = &status
		case FieldSchedule:
			s, ok := raw.(string)
			if !ok {
				issues = append(issues, invalidType(name, "string", raw))
				continue
			}
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				issues = append(issues, Issue{
					Code:    "invalid_string",
					Message: "Invalid datetime",
					Path:    name,
				})
				continue
			}
			fields.Schedule = &t
		case FieldDropoffPerms:
			s, ok := raw.(string)
			if !ok {
				issues = append(issues, invalidType(name, "string", raw))
				continue
			}
			fields.DropoffPerms = &s
		}
	}

	if len(issues) > 0 {
		return UpdateFields{}, newShapeError(issues)
	}

	if role == user.RoleAdmin {
		return fields, nil
	}

	allowed, ok := roleAllowlist[role]
	if !ok {
		return UpdateFields{}, ValidationError{
			Name: "BadRequest",
			Issues: []Issue{{
				Code:    "invalid_role",
				Message: fmt.Sprintf("unknown role %d", role),
			}},
		}
	}

	var forbidden []string
	for _, name := range updatableFields {
		if _, ok := payload[name]; ok && !allowed[name] {
			forbidden = append(forbidden, name)
		}
	}
	if len(forbidden) > 0 {
		sort.Strings(forbidden)
		issues := make([]Issue, len(forbidden))
		for i, name := range forbidden {
			issues[i] = Issue{
				Code:    "unrecognized_keys",
				Message: fmt.Sprintf("field '%s' may not be updated by role %s", name, role),
				Path:    name,
			}
		}
		return UpdateFields{}, newForbiddenFieldError(issues)
	}

	return fields, nil
}

func invalidType(path, expected string, raw any) Issue {
	received := "null"
	if raw != nil {
		switch raw.(type) {
		case bool:
			received = "boolean"
		case float64:
			received = "number"
		case string:
			received = "string"
		case []any:
			received = "array"
		case map[string]any:
			received = "object"
		default:
			received = fmt.Sprintf("%T", raw)
		}
	}
	return Issue{
		Code:    "invalid_type",
		Message: fmt.Sprintf("Expected %s, received %s", expected, received),
		Path:    path,
	}
}
