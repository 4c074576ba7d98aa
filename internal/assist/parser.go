// Package assist turns one free-text sentence into a structured task
// draft via an external language-model service. The service is untrusted:
// its output is validated against the closed enumerations before a draft
// is accepted, and every failure mode collapses to ErrNoResult.
package assist

import (
	"context"
	"errors"
	"strings"

	"github.com/sandeepkv93/taskdash/internal/model"
)

// ErrNoResult is the single failure outcome surfaced to callers. No
// distinguished error codes cross this boundary.
var ErrNoResult = errors.New("assist: no draft produced")

// Draft is the structured result of a successful parse. It is not a
// task; the composer merges it into its fields for review before commit.
type Draft struct {
	Title       string
	Description string
	Time        string
	Priority    model.Priority
	Category    model.Category
}

type Parser interface {
	Parse(ctx context.Context, sentence string) (Draft, error)
}

// validateDraft gates the external response. Title, priority, and
// category are required and must match the closed enums; a malformed
// time is dropped rather than failing the whole draft.
func validateDraft(d Draft) (Draft, error) {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return Draft{}, ErrNoResult
	}
	if !d.Priority.IsValid() {
		return Draft{}, ErrNoResult
	}
	if !d.Category.IsValid() {
		return Draft{}, ErrNoResult
	}
	if d.Time != "" && !model.ValidTime(d.Time) {
		d.Time = ""
	}
	return d, nil
}
