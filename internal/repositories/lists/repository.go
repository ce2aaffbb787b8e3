// Package lists defines the interface for army list persistence
package lists

//go:generate mockgen -destination=mock/mock_repository.go -package=listrepomock github.com/KirkDiggler/crusade-api/internal/repositories/lists Repository

import (
	"context"
	"sort"

	"github.com/KirkDiggler/crusade-api/internal/entities/armylist"
	"github.com/KirkDiggler/crusade-api/internal/errors"
)

// Repository defines the interface for army list persistence.
// Lists are stored whole; the engine owns every derived field.
type Repository interface {
	// Get retrieves a list by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the list doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces a list
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete deletes a list by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the list doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner returns an owner's lists, most recently updated first
	// Returns errors.InvalidArgument for an empty owner ID
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}

// GetInput defines the input for getting a list
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a list
type GetOutput struct {
	List *armylist.List
}

// SaveInput defines the input for saving a list
type SaveInput struct {
	List *armylist.List
}

// SaveOutput defines the output for saving a list
type SaveOutput struct{}

// DeleteInput defines the input for deleting a list
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a list
type DeleteOutput struct{}

// ListByOwnerInput defines the input for listing an owner's lists
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing an owner's lists
type ListByOwnerOutput struct {
	Lists []*armylist.List
}

const (
	errListNil     = "list cannot be nil"
	errListIDEmpty = "list ID cannot be empty"
	errOwnerEmpty  = "owner ID cannot be empty"
	errNameEmpty   = "list name cannot be empty"
)

func validateList(l *armylist.List) error {
	if l == nil {
		return errors.InvalidArgument(errListNil)
	}
	if l.ID == "" {
		return errors.InvalidArgument(errListIDEmpty)
	}
	if l.OwnerID == "" {
		return errors.InvalidArgument(errOwnerEmpty)
	}
	if l.Name == "" {
		return errors.InvalidArgument(errNameEmpty)
	}
	return nil
}

// sortByRecent orders lists newest first, breaking ties by ID so the
// order is stable across stores
func sortByRecent(out []*armylist.List) {
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].UpdatedAt != out[j].UpdatedAt {
			return out[i].UpdatedAt > out[j].UpdatedAt
		}
		return out[i].ID < out[j].ID
	})
}
