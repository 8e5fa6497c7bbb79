// Package store persists scenario inputs per client.
package store

import (
	"context"
	"regexp"
	"time"

	"github.com/rgehrsitz/rpgo-intake/internal/domain"
)

// Record is a client's saved scenario inputs.
type Record struct {
	Inputs    domain.ScenarioInputs `json:"inputs" yaml:"inputs"`
	UpdatedAt time.Time             `json:"updatedAt" yaml:"updated_at"`
}

// Store loads and saves scenario inputs by client ID. Get on a client that
// has never been saved returns an empty Record and no error.
type Store interface {
	Get(ctx context.Context, clientID string) (Record, error)
	Save(ctx context.Context, clientID string, inputs domain.ScenarioInputs) (Record, error)
}

var clientIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

func validateClientID(id string) error {
	if !clientIDPattern.MatchString(id) {
		return domain.Errorf(domain.KindInvalidInput, "invalid client id %q", id)
	}
	return nil
}

// compact drops empty values so a saved record never stores blanks.
func compact(inputs domain.ScenarioInputs) domain.ScenarioInputs {
	out := make(domain.ScenarioInputs, len(inputs))
	for _, k := range inputs.Keys() {
		out[k] = inputs[k]
	}
	return out
}
