package database_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pathakanu/medReminder/internal/database/databasetest"
	"github.com/pathakanu/medReminder/internal/model"
)

func TestAddStoresFieldsUnchanged(t *testing.T) {
	t.Parallel()
	store := databasetest.NewStore(t)
	ctx := context.Background()

	in := &model.Reminder{MedicineName: "Paracetamol", Dosage: "500mg", Time: "09:00", HealthCheck: "none"}
	if err := store.Add(ctx, in); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if in.ID == 0 {
		t.Fatalf("expected an assigned ID")
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []model.Reminder{{ID: in.ID, MedicineName: "Paracetamol", Dosage: "500mg", Time: "09:00", HealthCheck: "none"}}
	if diff := cmp.Diff(want, all); diff != "" {
		t.Fatalf("stored rows mismatch (-want +got):\n%s", diff)
	}
}

func TestAddAcceptsUnvalidatedTime(t *testing.T) {
	t.Parallel()
	store := databasetest.NewStore(t)
	ctx := context.Background()

	if err := store.Add(ctx, &model.Reminder{MedicineName: "Ibuprofen", Time: "9am"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	due, err := store.ListDue(ctx, "9am")
	if err != nil {
		t.Fatalf("ListDue: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("expected the raw time string to match, got %d rows", len(due))
	}
}

func TestListDueExactMinute(t *testing.T) {
	t.Parallel()
	store := databasetest.NewStore(t)
	ctx := context.Background()

	paracetamol := &model.Reminder{MedicineName: "Paracetamol", Dosage: "500mg", Time: "09:00", HealthCheck: "none"}
	if err := store.Add(ctx, paracetamol); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.Add(ctx, &model.Reminder{MedicineName: "Vitamin D", Dosage: "1 tab", Time: "21:30"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	due, err := store.ListDue(ctx, "09:00")
	if err != nil {
		t.Fatalf("ListDue: %v", err)
	}
	if diff := cmp.Diff([]model.Reminder{*paracetamol}, due); diff != "" {
		t.Fatalf("due at 09:00 mismatch (-want +got):\n%s", diff)
	}

	due, err = store.ListDue(ctx, "09:01")
	if err != nil {
		t.Fatalf("ListDue: %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("expected nothing due at 09:01, got %+v", due)
	}
}

func TestListDueIdempotentWithDuplicates(t *testing.T) {
	t.Parallel()
	store := databasetest.NewStore(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := store.Add(ctx, &model.Reminder{MedicineName: "Metformin", Dosage: "850mg", Time: "08:15"}); err != nil {
			t.Fatalf("Add %d: %v", i, err)
		}
	}

	first, err := store.ListDue(ctx, "08:15")
	if err != nil {
		t.Fatalf("ListDue: %v", err)
	}
	second, err := store.ListDue(ctx, "08:15")
	if err != nil {
		t.Fatalf("ListDue: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected both inserted rows, got %d", len(first))
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated ListDue differs (-first +second):\n%s", diff)
	}
	if first[0].ID == first[1].ID {
		t.Fatalf("duplicate reminders must keep distinct IDs")
	}
}

func TestListEmpty(t *testing.T) {
	t.Parallel()
	store := databasetest.NewStore(t)

	all, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty store, got %d rows", len(all))
	}
}
