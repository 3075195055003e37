package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
)

func TestStateRepository_RoundTrip(t *testing.T) {
	repo := NewStateRepository()
	ctx := context.Background()

	got, err := repo.Load(ctx, "publishing-storage")
	if err != nil || got != nil {
		t.Fatalf("Load on empty repo = %v, %v; want nil, nil", got, err)
	}

	id := "work-1"
	state := &console.PersistedState{SelectedLevel: console.LevelWork, SelectedNodeID: &id, SidebarCollapsed: true}
	if err := repo.Save(ctx, "publishing-storage", state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Mutating the saved value must not leak into the repository
	*state.SelectedNodeID = "changed"

	got, err = repo.Load(ctx, "publishing-storage")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.SelectedNodeID == nil || *got.SelectedNodeID != "work-1" {
		t.Errorf("SelectedNodeID = %v, want work-1", got.SelectedNodeID)
	}
	if !got.SidebarCollapsed || got.SelectedLevel != console.LevelWork {
		t.Errorf("unexpected state %+v", got)
	}

	if err := repo.Delete(ctx, "publishing-storage"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got, _ := repo.Load(ctx, "publishing-storage"); got != nil {
		t.Errorf("expected nil after delete, got %+v", got)
	}
}

func TestFileVersionRepository(t *testing.T) {
	now := time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)
	repo := NewFileVersionRepository([]console.FileVersion{
		{ID: "f1", DraftID: "draft-1", Filename: "chapter_01_intro_v1.docx", UploadDate: now},
		{ID: "f2", DraftID: "draft-2", Filename: "foreword_v1.docx", UploadDate: now},
	})
	ctx := context.Background()

	t.Run("list by draft", func(t *testing.T) {
		files, err := repo.ListByDraft(ctx, "draft-1")
		if err != nil {
			t.Fatalf("ListByDraft failed: %v", err)
		}
		if len(files) != 1 || files[0].ID != "f1" {
			t.Errorf("ListByDraft = %+v", files)
		}

		empty, err := repo.ListByDraft(ctx, "nope")
		if err != nil || len(empty) != 0 || empty == nil {
			t.Errorf("expected empty non-nil slice, got %v, %v", empty, err)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		f, err := repo.GetByID(ctx, "f2")
		if err != nil || f.DraftID != "draft-2" {
			t.Fatalf("GetByID = %+v, %v", f, err)
		}
		if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("replace draft error leaves files untouched", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := repo.ReplaceDraft(ctx, "draft-1", func(files []console.FileVersion) ([]console.FileVersion, error) {
			files[0].Filename = "mutated"
			return nil, boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		f, _ := repo.GetByID(ctx, "f1")
		if f.Filename != "chapter_01_intro_v1.docx" {
			t.Errorf("filename changed to %q", f.Filename)
		}
	})

	t.Run("concurrent replace serialises per draft", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = repo.ReplaceDraft(ctx, "draft-3", func(files []console.FileVersion) ([]console.FileVersion, error) {
					return append(files, console.FileVersion{ID: "x", UploadDate: now}), nil
				})
			}()
		}
		wg.Wait()

		files, _ := repo.ListByDraft(ctx, "draft-3")
		if len(files) != 50 {
			t.Errorf("expected 50 files, got %d", len(files))
		}
		for _, f := range files {
			if f.DraftID != "draft-3" {
				t.Errorf("DraftID = %q, want draft-3", f.DraftID)
			}
		}
	})
}

func TestDraftRepository(t *testing.T) {
	repo := NewDraftRepository([]console.Draft{
		{ID: "draft-2", Name: "Main Draft v3.2", Status: console.DraftStatusPublished},
		{ID: "draft-1", Name: "Older Draft v3.1", Status: console.DraftStatusDraft},
	})
	ctx := context.Background()

	d, err := repo.GetByID(ctx, "draft-2")
	if err != nil || !d.IsPublished() {
		t.Fatalf("GetByID = %+v, %v", d, err)
	}
	if _, err := repo.GetByID(ctx, "draft-9"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	list, _ := repo.List(ctx)
	if len(list) != 2 || list[0].ID != "draft-1" {
		t.Errorf("List = %+v, want sorted by id", list)
	}
}
