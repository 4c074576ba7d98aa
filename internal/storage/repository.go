package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Repository is the persistence collaborator for the task collection.
// Persistence is whole-collection: SaveTasks atomically replaces
// everything previously stored, and LoadTasks returns the collection in
// saved order. A store with no prior save reports ErrNotFound.
type Repository interface {
	LoadTasks(ctx context.Context) ([]Task, error)
	SaveTasks(ctx context.Context, tasks []Task) error
}
