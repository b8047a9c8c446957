package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"promissa/internal/intake/models"
	"promissa/internal/sequence"
	id "promissa/pkg/domain"
	dErrors "promissa/pkg/domain-errors"
)

// timelineRequirements lists the per-entry detail fields each history
// timeline must carry before it counts as complete.
var timelineRequirements = map[string][]string{
	"sponsorAddressHistory":        {"street", "city", "country"},
	"beneficiaryAddressHistory":    {"street", "city", "country"},
	"sponsorEmploymentHistory":     {"employer", "occupation"},
	"beneficiaryEmploymentHistory": {"employer", "occupation"},
}

// SetAnswer validates and records one answer, clearing any dependent detail
// answers the change invalidates, and persists the session.
func (s *Service) SetAnswer(ctx context.Context, sessionID id.SessionID, fieldID string, value any) (*models.Session, error) {
	field, ok := s.catalog.FieldByID(fieldID)
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnknownField, fmt.Sprintf("unknown field: %s", fieldID))
	}

	normalized, err := s.validateAnswer(field, value)
	if err != nil {
		return nil, err
	}

	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.Answers.Set(fieldID, normalized)
	sess.Touch(s.now())
	if err := s.store.Update(ctx, sess); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist answer")
	}

	if s.metrics != nil {
		s.metrics.IncrementAnswersRecorded(s.sectionOf(fieldID))
	}
	return sess, nil
}

// ClearAnswer removes one answer and its dependents.
func (s *Service) ClearAnswer(ctx context.Context, sessionID id.SessionID, fieldID string) (*models.Session, error) {
	if _, ok := s.catalog.FieldByID(fieldID); !ok {
		return nil, dErrors.New(dErrors.CodeUnknownField, fmt.Sprintf("unknown field: %s", fieldID))
	}
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess.Answers.Delete(fieldID)
	sess.Touch(s.now())
	if err := s.store.Update(ctx, sess); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist answer")
	}
	return sess, nil
}

// validateAnswer checks a raw answer value against the field's kind and
// returns the value to store.
func (s *Service) validateAnswer(field sequence.Field, value any) (any, error) {
	switch field.Kind {
	case "boolean":
		if _, ok := value.(bool); !ok {
			return nil, dErrors.New(dErrors.CodeInvalidAnswer, "answer must be true or false")
		}
		return value, nil

	case "text":
		str, ok := value.(string)
		if !ok {
			return nil, dErrors.New(dErrors.CodeInvalidAnswer, "answer must be a string")
		}
		return str, nil

	case "date":
		str, ok := value.(string)
		if !ok {
			return nil, dErrors.New(dErrors.CodeInvalidAnswer, "answer must be a YYYY-MM-DD string")
		}
		if _, err := time.Parse("2006-01-02", str); err != nil {
			return nil, dErrors.New(dErrors.CodeInvalidAnswer, "answer must be a YYYY-MM-DD string")
		}
		return str, nil

	case "select":
		str, ok := value.(string)
		if !ok {
			return nil, dErrors.New(dErrors.CodeInvalidAnswer, "answer must be a string")
		}
		// select fields without declared options accept any string; the
		// marriage-state field is validated against the jurisdiction table
		// at evaluation time instead.
		if len(field.Options) == 0 {
			return str, nil
		}
		for _, opt := range field.Options {
			if str == opt {
				return str, nil
			}
		}
		return nil, dErrors.New(dErrors.CodeInvalidAnswer, fmt.Sprintf("answer must be one of %v", field.Options))

	case "address":
		addr, raw, err := decodeAddress(value)
		if err != nil {
			return nil, err
		}
		addr.Normalize()
		if err := addr.Validate(); err != nil {
			return nil, err
		}
		return raw, nil

	case "timeline":
		entries, err := models.TimelineFromAnswer(value)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if err := e.Validate(); err != nil {
				return nil, err
			}
		}
		return value, nil

	case "info":
		return nil, dErrors.New(dErrors.CodeInvalidAnswer, "informational fields do not take answers")

	default:
		return nil, dErrors.New(dErrors.CodeInvalidAnswer, "unsupported field kind")
	}
}

// decodeAddress round-trips the raw value through JSON into the Address
// model. The raw map is what gets stored; the struct exists for validation.
func decodeAddress(value any) (*models.Address, any, error) {
	m, ok := value.(map[string]any)
	if !ok {
		return nil, nil, dErrors.New(dErrors.CodeInvalidAnswer, "address answer must be an object")
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, nil, dErrors.New(dErrors.CodeInvalidAnswer, "address answer must be an object")
	}
	var addr models.Address
	if err := json.Unmarshal(data, &addr); err != nil {
		return nil, nil, dErrors.New(dErrors.CodeInvalidAnswer, "address answer has the wrong shape")
	}
	return &addr, m, nil
}

// sectionOf locates the section a field belongs to, for metrics labels.
func (s *Service) sectionOf(fieldID string) string {
	for _, sec := range s.catalog.Sections {
		for _, sub := range sec.Subsections {
			for _, f := range sub.Fields {
				if f.ID == fieldID {
					return sec.ID
				}
			}
		}
	}
	return "unknown"
}
