// Package store provides persistence for named layout snapshots.
//
// A snapshot pairs a manifest with the solved document it produced, so a
// layout can be retrieved later without re-solving. Two backends are
// provided:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for API deployments
//
// # Usage
//
//	snap := store.New("dashboard", manifestText, doc)
//	if err := st.Put(ctx, snap); err != nil {
//	    return err
//	}
//
//	got, err := st.Get(ctx, snap.ID)
//	if errors.Is(err, errors.ErrCodeSnapshotNotFound) {
//	    // Snapshot does not exist
//	}
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/boxflow/pkg/render"
)

// Snapshot is a named solved layout.
type Snapshot struct {
	ID        string          `json:"id" bson:"_id"`
	Name      string          `json:"name" bson:"name"`
	Manifest  string          `json:"manifest" bson:"manifest"`
	Document  render.Document `json:"document" bson:"document"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
}

// New creates a snapshot with a fresh ID and creation time.
func New(name, manifest string, doc render.Document) *Snapshot {
	return &Snapshot{
		ID:        uuid.NewString(),
		Name:      name,
		Manifest:  manifest,
		Document:  doc,
		CreatedAt: time.Now().UTC(),
	}
}

// Store is the interface for snapshot storage backends.
type Store interface {
	// Put stores a snapshot, replacing any existing snapshot with the same ID.
	Put(ctx context.Context, snap *Snapshot) error

	// Get retrieves a snapshot by ID.
	// Returns an error with code SNAPSHOT_NOT_FOUND if it doesn't exist.
	Get(ctx context.Context, id string) (*Snapshot, error)

	// List returns snapshots ordered newest first. A non-positive limit
	// returns all snapshots.
	List(ctx context.Context, limit int) ([]*Snapshot, error)

	// Delete removes a snapshot. Deleting a missing snapshot is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
