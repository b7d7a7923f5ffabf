package database_test

import (
	"context"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/pathakanu/medReminder/internal/database"
	"github.com/pathakanu/medReminder/internal/model"
)

func TestPackageDoesNotLinkTesting(t *testing.T) {
	t.Parallel()

	entries, err := os.ReadDir(".")
	if err != nil {
		t.Fatalf("read package dir: %v", err)
	}

	fset := token.NewFileSet()
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		file, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		for _, imp := range file.Imports {
			path, _ := strconv.Unquote(imp.Path.Value)
			if path == "testing" {
				t.Fatalf("%s imports testing; test fixtures belong in databasetest", name)
			}
		}
	}
}

func TestOpenSQLitePersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "medicine_reminder.db")

	store, err := database.Open("", path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Add(context.Background(), &model.Reminder{MedicineName: "Paracetamol", Dosage: "500mg", Time: "09:00", HealthCheck: "none"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := database.Open("", path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	due, err := reopened.ListDue(context.Background(), "09:00")
	if err != nil {
		t.Fatalf("ListDue: %v", err)
	}
	if len(due) != 1 || due[0].MedicineName != "Paracetamol" {
		t.Fatalf("expected the stored reminder after reopen, got %+v", due)
	}
}

func TestOpenReportsBackendFailure(t *testing.T) {
	t.Parallel()

	_, err := database.Open("", filepath.Join(t.TempDir(), "missing", "dir", "reminders.db"))
	if err == nil {
		t.Fatalf("expected an error for an unreachable database file")
	}
}
