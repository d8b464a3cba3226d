package sessions

import (
	"context"
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/go-cmp/cmp"
)

func TestStore(t *testing.T) {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	store := NewStore(db)

	inserted := New("2018to19")
	inserted.Query.Department = "COMPSCI"
	inserted.View.Select(3, "#ffffff")

	ctx := context.Background()
	if err := store.Insert(ctx, inserted); err != nil {
		t.Fatal(err)
	}

	found, err := store.FindByID(ctx, inserted.ID)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(inserted, found); diff != "" {
		t.Fatalf("inserted != found (-inserted +found):\n%s", diff)
	}

	if err := store.Delete(ctx, inserted.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := store.FindByID(ctx, inserted.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected %q, got %q", ErrNotFound, err)
	}
}

func TestFindMissing(t *testing.T) {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if _, err := NewStore(db).FindByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected %q, got %q", ErrNotFound, err)
	}
}
