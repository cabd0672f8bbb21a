package patient

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a patient id has no record in the store.
var ErrNotFound = errors.New("patient not found")

// Repository stores patients in a stable order. The in-memory implementation
// is the only one today; the interface keeps the storage seam open.
type Repository interface {
	// List returns deep copies of all patients in store order.
	List(ctx context.Context) ([]*Patient, error)
	// GetByID returns a deep copy, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*Patient, error)
	// Insert places the patient at the head of the store order.
	Insert(ctx context.Context, p *Patient) error
	// Replace swaps the record with the same id, preserving its position.
	// Returns ErrNotFound if the id is absent.
	Replace(ctx context.Context, p *Patient) error
}
