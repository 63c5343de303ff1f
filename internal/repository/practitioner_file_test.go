package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	pgvector "github.com/pgvector/pgvector-go"

	"jar-rating/internal/domain"
)

func newFileRepo(t *testing.T) *FilePractitionerRepository {
	t.Helper()
	return NewFilePractitionerRepository(filepath.Join(t.TempDir(), "saved_practitioners.json"))
}

func sampleRecord(name string) domain.PractitionerRecord {
	return domain.PractitionerRecord{
		Name:        name,
		Belt:        "Blue",
		Age:         30,
		Weight:      170,
		Fitness:     60,
		Sessions:    3,
		Competition: "None",
	}
}

func TestFilePractitionerRepository_SaveAndGet(t *testing.T) {
	repo := newFileRepo(t)
	ctx := context.Background()

	saved, err := repo.Save(ctx, sampleRecord("Ana"), pgvector.NewVector([]float32{200, 1, 1, 1, 1, 1, 1}))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if saved.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}

	got, err := repo.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Ana" || got.Belt != "Blue" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestFilePractitionerRepository_GetMissing(t *testing.T) {
	repo := newFileRepo(t)
	if _, err := repo.GetByID(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFilePractitionerRepository_SaveKeepsExistingID(t *testing.T) {
	repo := newFileRepo(t)
	ctx := context.Background()

	record := sampleRecord("Ana")
	record.ID = "fixed-id"
	saved, err := repo.Save(ctx, record, pgvector.NewVector(nil))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.ID != "fixed-id" {
		t.Fatalf("expected ID preserved, got %q", saved.ID)
	}

	// Guardar con el mismo ID reemplaza el registro.
	record.Name = "Ana Maria"
	if _, err := repo.Save(ctx, record, pgvector.NewVector(nil)); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err := repo.GetByID(ctx, "fixed-id")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Ana Maria" {
		t.Fatalf("expected upsert, got %+v", got)
	}
	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected a single record, got %d", len(records))
	}
}

func TestFilePractitionerRepository_ListAndDelete(t *testing.T) {
	repo := newFileRepo(t)
	ctx := context.Background()

	a, err := repo.Save(ctx, sampleRecord("Ana"), pgvector.NewVector(nil))
	if err != nil {
		t.Fatalf("save a: %v", err)
	}
	if _, err := repo.Save(ctx, sampleRecord("Bruno"), pgvector.NewVector(nil)); err != nil {
		t.Fatalf("save b: %v", err)
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
	records, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if len(records) != 1 || records[0].Name != "Bruno" {
		t.Fatalf("unexpected records after delete: %+v", records)
	}
}

func TestFilePractitionerRepository_ListSimilar(t *testing.T) {
	repo := newFileRepo(t)
	ctx := context.Background()

	ref, err := repo.Save(ctx, sampleRecord("Ref"), pgvector.NewVector([]float32{200, 1, 1, 1, 1, 1, 1}))
	if err != nil {
		t.Fatalf("save ref: %v", err)
	}
	near, err := repo.Save(ctx, sampleRecord("Near"), pgvector.NewVector([]float32{210, 1, 1, 1, 1, 1, 1}))
	if err != nil {
		t.Fatalf("save near: %v", err)
	}
	far, err := repo.Save(ctx, sampleRecord("Far"), pgvector.NewVector([]float32{800, 1, 1, 1, 1, 1, 1}))
	if err != nil {
		t.Fatalf("save far: %v", err)
	}

	similar, err := repo.ListSimilar(ctx, ref.ID, 2)
	if err != nil {
		t.Fatalf("list similar: %v", err)
	}
	if len(similar) != 2 {
		t.Fatalf("expected 2 neighbors, got %d", len(similar))
	}
	if similar[0].ID != near.ID || similar[1].ID != far.ID {
		t.Fatalf("expected nearest-first ordering, got %+v", similar)
	}

	top, err := repo.ListSimilar(ctx, ref.ID, 1)
	if err != nil {
		t.Fatalf("list similar k=1: %v", err)
	}
	if len(top) != 1 || top[0].ID != near.ID {
		t.Fatalf("expected only the nearest neighbor, got %+v", top)
	}

	if _, err := repo.ListSimilar(ctx, "missing", 3); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown reference, got %v", err)
	}
}

func TestFilePractitionerRepository_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_practitioners.json")
	ctx := context.Background()

	first := NewFilePractitionerRepository(path)
	saved, err := first.Save(ctx, sampleRecord("Ana"), pgvector.NewVector(nil))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	second := NewFilePractitionerRepository(path)
	got, err := second.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get from fresh instance: %v", err)
	}
	if got.Name != "Ana" {
		t.Fatalf("unexpected record: %+v", got)
	}
}
