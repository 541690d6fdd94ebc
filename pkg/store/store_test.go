package store

import (
	"context"
	"testing"
	"time"

	"github.com/matzehuels/boxflow/pkg/errors"
	"github.com/matzehuels/boxflow/pkg/render"
)

func testDocument() render.Document {
	return render.Document{
		FrameWidth:  640,
		FrameHeight: 480,
		Blocks: []render.Block{
			{ID: "1", Kind: "leaf", Label: "solo", Width: 640, Height: 480},
		},
	}
}

func TestNewSnapshot(t *testing.T) {
	snap := New("dashboard", "kind = \"leaf\"", testDocument())

	if snap.ID == "" {
		t.Error("ID should be assigned")
	}
	if snap.Name != "dashboard" {
		t.Errorf("Name = %q, want dashboard", snap.Name)
	}
	if snap.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	other := New("dashboard", "kind = \"leaf\"", testDocument())
	if other.ID == snap.ID {
		t.Error("IDs should be unique")
	}
}

func TestMemoryStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	snap := New("dashboard", "kind = \"leaf\"", testDocument())
	if err := st.Put(ctx, snap); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := st.Get(ctx, snap.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != snap.Name || len(got.Document.Blocks) != 1 {
		t.Errorf("Get = %+v, want stored snapshot", got)
	}

	// Mutating the returned snapshot must not affect the store.
	got.Name = "changed"
	again, err := st.Get(ctx, snap.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if again.Name != "dashboard" {
		t.Errorf("stored Name = %q, want dashboard", again.Name)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	st := NewMemoryStore()

	_, err := st.Get(context.Background(), "nope")
	if !errors.Is(err, errors.ErrCodeSnapshotNotFound) {
		t.Errorf("Get error = %v, want SNAPSHOT_NOT_FOUND", err)
	}
}

func TestMemoryStorePutRequiresID(t *testing.T) {
	st := NewMemoryStore()

	err := st.Put(context.Background(), &Snapshot{Name: "anonymous"})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Put error = %v, want INVALID_INPUT", err)
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	base := time.Now().UTC()
	for i, name := range []string{"oldest", "middle", "newest"} {
		snap := New(name, "", testDocument())
		snap.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := st.Put(ctx, snap); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}

	all, err := st.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(List) = %d, want 3", len(all))
	}
	if all[0].Name != "newest" || all[2].Name != "oldest" {
		t.Errorf("List order = %q, %q, %q, want newest first",
			all[0].Name, all[1].Name, all[2].Name)
	}

	limited, err := st.List(ctx, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(limited) != 2 || limited[0].Name != "newest" {
		t.Errorf("List(2) = %d items starting with %q", len(limited), limited[0].Name)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	snap := New("temp", "", testDocument())
	if err := st.Put(ctx, snap); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := st.Delete(ctx, snap.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := st.Get(ctx, snap.ID); !errors.Is(err, errors.ErrCodeSnapshotNotFound) {
		t.Errorf("Get after delete = %v, want SNAPSHOT_NOT_FOUND", err)
	}

	// Deleting again is not an error.
	if err := st.Delete(ctx, snap.ID); err != nil {
		t.Errorf("repeat Delete: %v", err)
	}
}
