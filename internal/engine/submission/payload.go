package submission

import (
	"fmt"
	"strings"
	"time"

	apperrors "submitr/internal/pkg/errors"
	"submitr/internal/platform/config"
)

// Environment variables carrying the applicant fields.
const (
	EnvName           = "SUBMITR_NAME"
	EnvEmail          = "SUBMITR_EMAIL"
	EnvResumeLink     = "SUBMITR_RESUME_LINK"
	EnvRepositoryLink = "SUBMITR_REPOSITORY_LINK"
	EnvActionRunLink  = "SUBMITR_ACTION_RUN_LINK"
)

// timestampLayout is ISO 8601 UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Payload is the submission entity. It is constructed fresh per run, signed
// once, and discarded after the request completes.
type Payload struct {
	Timestamp      string
	Name           string
	Email          string
	ResumeLink     string
	RepositoryLink string
	ActionRunLink  string
}

// NewTimestamp formats now for the payload's timestamp field.
func NewTimestamp(now time.Time) string {
	return now.UTC().Format(timestampLayout)
}

// FromEnv builds a payload from the applicant environment variables, stamped
// at now. Every field is required; a missing field aborts the run before any
// network call.
func FromEnv(now time.Time) (*Payload, error) {
	p := &Payload{Timestamp: NewTimestamp(now)}

	fields := []struct {
		env string
		dst *string
	}{
		{EnvName, &p.Name},
		{EnvEmail, &p.Email},
		{EnvResumeLink, &p.ResumeLink},
		{EnvRepositoryLink, &p.RepositoryLink},
		{EnvActionRunLink, &p.ActionRunLink},
	}
	for _, f := range fields {
		value, err := config.RequireEnv(f.env)
		if err != nil {
			return nil, err
		}
		*f.dst = value
	}

	if err := ValidateEmail(p.Email); err != nil {
		return nil, err
	}

	return p, nil
}

// ValidateEmail checks the local@domain shape. No DNS lookups: the one
// network call of a run is the submission itself.
func ValidateEmail(email string) error {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return apperrors.Config(fmt.Sprintf("invalid email format: %q", email))
	}
	if !strings.Contains(parts[1], ".") {
		return apperrors.Config(fmt.Sprintf("invalid email domain: %q", parts[1]))
	}
	return nil
}

// Canonical returns the deterministic byte encoding of the payload. These are
// the bytes that get signed and sent.
func (p *Payload) Canonical() ([]byte, error) {
	return Marshal(map[string]any{
		"timestamp":       p.Timestamp,
		"name":            p.Name,
		"email":           p.Email,
		"resume_link":     p.ResumeLink,
		"repository_link": p.RepositoryLink,
		"action_run_link": p.ActionRunLink,
	})
}
