package ports

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// ResultStore persists the outcome of finished runs.
// Only final results are stored; a run can never be resumed from a record.
type ResultStore interface {
	// Save persists the record under record.ID, replacing any previous record.
	Save(ctx context.Context, record *domain.RunRecord) error

	// Load retrieves a record.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, runID string) (*domain.RunRecord, error)

	// Delete removes a record. Deleting an unknown run is not an error.
	Delete(ctx context.Context, runID string) error

	// List returns the IDs of all stored runs.
	List(ctx context.Context) ([]string, error)
}
