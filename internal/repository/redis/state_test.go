package redis

import (
	"context"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
)

func setupTestRedis(t *testing.T) (*StateRepository, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	repo, err := NewStateRepository("redis://"+s.Addr(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("failed to create redis repository: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo, s
}

func TestNewStateRepository_BadURL(t *testing.T) {
	if _, err := NewStateRepository("not a url", slog.Default()); err == nil {
		t.Fatal("expected error for invalid url")
	}
}

func TestLoad_Missing(t *testing.T) {
	repo, _ := setupTestRedis(t)

	state, err := repo.Load(context.Background(), "publishing-storage")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if state != nil {
		t.Errorf("expected nil state, got %+v", state)
	}
}

func TestSaveAndLoad(t *testing.T) {
	repo, s := setupTestRedis(t)
	ctx := context.Background()

	selected := "draft-2"
	want := &console.PersistedState{
		SelectedLevel:  console.LevelDraftContent,
		SelectedNodeID: &selected,
		TreeData: []console.TreeNode{
			{
				ID:         "work-1",
				Type:       console.LevelWork,
				Title:      "Contract Law",
				IsExpanded: true,
				Children: []console.TreeNode{
					{ID: "edition-1", Type: console.LevelEdition, Title: "Second Edition"},
				},
			},
		},
		SidebarCollapsed: true,
	}

	if err := repo.Save(ctx, "publishing-storage", want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !s.Exists(keyPrefix + "publishing-storage") {
		t.Fatalf("expected key %s to exist", keyPrefix+"publishing-storage")
	}

	got, err := repo.Load(ctx, "publishing-storage")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestDelete(t *testing.T) {
	repo, s := setupTestRedis(t)
	ctx := context.Background()

	if err := repo.Save(ctx, "k", &console.PersistedState{SelectedLevel: console.LevelWork}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if s.Exists(keyPrefix + "k") {
		t.Error("expected key to be removed")
	}
	if err := repo.Delete(ctx, "k"); err != nil {
		t.Errorf("deleting a missing key should succeed, got %v", err)
	}
}

func TestLoad_CorruptValue(t *testing.T) {
	repo, s := setupTestRedis(t)
	if err := s.Set(keyPrefix+"broken", "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := repo.Load(context.Background(), "broken"); err == nil {
		t.Error("expected decode error")
	}
}
