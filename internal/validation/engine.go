// Package validation derives per-field rules from the question registry and
// applies them to a submission. Evaluation is total: every field is checked
// and all violations come back in one ValidationError, never fail-fast.
package validation

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/coverly/intake/internal/apperr"
	"github.com/coverly/intake/internal/model"
)

// Validation messages are part of the external contract and must not drift.
const (
	msgRequired      = "This field is required."
	msgNumeric       = "Please enter a valid number."
	msgInvalidOption = "Please select a valid option."
	msgEmail         = "Please enter a valid email address."
	msgEmailTaken    = "This email has already been used."
	msgInvalidUser   = "The selected user is invalid."
)

// ApplicationInput is the raw submission before any normalization.
type ApplicationInput struct {
	Name           string
	Email          string
	Status         string
	AssignedUserID *uint
	Answers        map[string]string
}

// LookupSource answers the two existence questions validation needs from
// storage: email uniqueness (self-excluding) and assignee existence.
type LookupSource interface {
	EmailTaken(email string, excludeID uint) (bool, error)
	UserExists(id uint) (bool, error)
}

type Engine struct {
	validate *validator.Validate
}

func NewEngine() *Engine {
	return &Engine{validate: validator.New()}
}

// ValidateApplication checks the top-level fields plus every registry
// question against the submitted answers. excludeID is the application being
// updated (0 on create) and exempts its own email from the uniqueness rule.
//
// On success it returns the normalized answer map: only keys present in the
// registry survive, unknown keys are silently dropped.
func (e *Engine) ValidateApplication(questions []model.Question, in ApplicationInput, excludeID uint, lookup LookupSource) (map[string]string, error) {
	fields := map[string]string{}

	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = msgRequired
	}

	if strings.TrimSpace(in.Email) == "" {
		fields["email"] = msgRequired
	} else if err := e.validate.Var(in.Email, "email"); err != nil {
		fields["email"] = msgEmail
	} else {
		taken, err := lookup.EmailTaken(in.Email, excludeID)
		if err != nil {
			return nil, &apperr.PersistenceError{Op: "check email uniqueness", Err: err}
		}
		if taken {
			fields["email"] = msgEmailTaken
		}
	}

	if strings.TrimSpace(in.Status) == "" {
		fields["status"] = msgRequired
	} else if !model.Status(in.Status).IsValid() {
		fields["status"] = msgInvalidOption
	}

	if in.AssignedUserID != nil {
		exists, err := lookup.UserExists(*in.AssignedUserID)
		if err != nil {
			return nil, &apperr.PersistenceError{Op: "check assigned user", Err: err}
		}
		if !exists {
			fields["assigned_user_id"] = msgInvalidUser
		}
	}

	normalized := make(map[string]string, len(questions))
	for _, q := range questions {
		value, present := in.Answers[q.Key]
		path := "answers." + q.Key

		if strings.TrimSpace(value) == "" {
			if q.IsRequired {
				fields[path] = msgRequired
			} else if present {
				normalized[q.Key] = value
			}
			continue
		}

		if msg := checkType(q, value); msg != "" {
			fields[path] = msg
			continue
		}
		normalized[q.Key] = value
	}

	if len(fields) > 0 {
		return nil, &apperr.ValidationError{Fields: fields}
	}
	return normalized, nil
}

func checkType(q model.Question, value string) string {
	switch q.Type {
	case model.QuestionNumber:
		if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
			return msgNumeric
		}
	case model.QuestionSelect:
		// A select with no options degrades to free text, matching the
		// registry's normalization contract.
		if len(q.Options) == 0 {
			return ""
		}
		for _, opt := range q.Options {
			if value == opt {
				return ""
			}
		}
		return msgInvalidOption
	}
	return ""
}

// NormalizeOptions parses a raw comma-separated option string into a
// trimmed, ordered list of non-empty options. Non-select types always get
// nil regardless of input.
func NormalizeOptions(qType model.QuestionType, raw string) model.StringList {
	if qType != model.QuestionSelect {
		return nil
	}
	var opts model.StringList
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			opts = append(opts, trimmed)
		}
	}
	return opts
}
