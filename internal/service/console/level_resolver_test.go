package console

import (
	"context"
	"testing"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	consoleSvc "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/services/console"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/store"
)

func newTestLevelResolver(t *testing.T) (consoleSvc.LevelResolver, consoleSvc.TreeService) {
	t.Helper()
	deps := newFixtureDeps(t)
	st := store.New(deps.fixture.InitialState())
	versions := NewVersionService(deps.files, deps.drafts, deps.logger)
	return NewLevelResolver(st, deps.drafts, deps.logger), NewTreeService(st, versions, deps.logger)
}

func TestLevelResolver_CurrentLevelInfo(t *testing.T) {
	resolver, _ := newTestLevelResolver(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		level  console.LevelType
		nodeID *string
		want   console.LevelInfo
	}{
		{
			name:  "no selection",
			level: console.LevelPublisher,
			want:  console.LevelInfo{Title: "Select an item", Subtitle: "Choose from the navigation tree", IconName: "FileText"},
		},
		{
			name:   "empty node id",
			level:  console.LevelWork,
			nodeID: strPtr(""),
			want:   console.LevelInfo{Title: "Select an item", Subtitle: "Choose from the navigation tree", IconName: "FileText"},
		},
		{
			name:   "unknown node",
			level:  console.LevelWork,
			nodeID: strPtr("work-404"),
			want:   console.LevelInfo{Title: "Item not found", IconName: "AlertCircle"},
		},
		{
			name:   "work",
			level:  console.LevelWork,
			nodeID: strPtr("work-1"),
			want: console.LevelInfo{
				Title: "Indigenous Justice Handbook", IconName: "Book",
				Status: StatusPublished, EditLabel: "Edit Overview",
			},
		},
		{
			name:   "edition",
			level:  console.LevelEdition,
			nodeID: strPtr("edition-1"),
			want: console.LevelInfo{
				Title: "2024 Edition", IconName: "BookOpen",
				Status: StatusPublished, EditLabel: "Edit Edition",
			},
		},
		{
			name:   "draft with registry entry",
			level:  console.LevelDraft,
			nodeID: strPtr("draft-2"),
			want: console.LevelInfo{
				Title: "Main Draft v3.2", Subtitle: "Working draft version",
				IconName: "Folder", Metadata: "Last updated Feb 22",
			},
		},
		{
			name:   "published draft content",
			level:  console.LevelDraftContent,
			nodeID: strPtr("draft-2"),
			want:   console.LevelInfo{Title: "Main Draft v3.2", IconName: "Folder", Status: StatusPublished},
		},
		{
			name:   "unpublished draft content",
			level:  console.LevelDraftContent,
			nodeID: strPtr("draft-1"),
			want:   console.LevelInfo{Title: "Older Draft v3.1", IconName: "Folder"},
		},
		{
			name:   "level without a branch",
			level:  console.LevelPublisher,
			nodeID: strPtr("work-2"),
			want: console.LevelInfo{
				Title: "National Domestic and Family Violence Bench Book",
				IconName: "FileText", EditLabel: "Edit",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.CurrentLevelInfo(ctx, tt.level, tt.nodeID)
			if got != tt.want {
				t.Errorf("CurrentLevelInfo() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLevelResolver_PartAndDocx(t *testing.T) {
	resolver, tree := newTestLevelResolver(t)
	ctx := context.Background()

	if _, err := tree.SyncDraftChapters(ctx, "draft-2"); err != nil {
		t.Fatalf("SyncDraftChapters() error = %v", err)
	}

	part := resolver.CurrentLevelInfo(ctx, console.LevelPart, strPtr(ChapterNodeID("draft-2", "chapter_01")))
	want := console.LevelInfo{
		Title:     "Chapter 1: Intro",
		Subtitle:  "Currently using: chapter_01_intro_v3.docx",
		IconName:  "Layers",
		Status:    StatusUnderReview,
		EditLabel: "Edit Section",
		Metadata:  "4 versions",
	}
	if part != want {
		t.Errorf("part info = %+v, want %+v", part, want)
	}

	docx := resolver.CurrentLevelInfo(ctx, console.LevelDocx, strPtr("file-3"))
	if docx.Title != "chapter_01_intro_v4.docx" || docx.Subtitle != "Document File" || docx.Status != StatusDraft {
		t.Errorf("docx info = %+v", docx)
	}

	actions := resolver.LevelActions(ctx, console.LevelPart, strPtr(ChapterNodeID("draft-2", "chapter_01")))
	if actions.Primary == nil || actions.Primary.Action != "approve_part" {
		t.Errorf("part primary = %+v", actions.Primary)
	}
	if actions.Secondary == nil || actions.Secondary.Action != "request_changes" {
		t.Errorf("part secondary = %+v", actions.Secondary)
	}
}

func TestLevelResolver_LevelActions(t *testing.T) {
	resolver, _ := newTestLevelResolver(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		level         console.LevelType
		nodeID        *string
		wantPrimary   string
		wantSecondary string
		wantPreview   string
	}{
		{
			name:        "no selection",
			level:       console.LevelWork,
			wantPreview: "No item selected",
		},
		{
			name:        "published work offers unpublish",
			level:       console.LevelWork,
			nodeID:      strPtr("work-1"),
			wantPrimary: "unpublish_work",
			wantPreview: "Preview complete work as end users will see it",
		},
		{
			name:        "missing work offers publish",
			level:       console.LevelWork,
			nodeID:      strPtr("work-404"),
			wantPrimary: "publish_work",
			wantPreview: "Preview complete work as end users will see it",
		},
		{
			name:        "published edition",
			level:       console.LevelEdition,
			nodeID:      strPtr("edition-1"),
			wantPrimary: "unpublish_edition",
			wantPreview: "Preview this edition formatting and content",
		},
		{
			name:          "draft",
			level:         console.LevelDraft,
			nodeID:        strPtr("draft-1"),
			wantPrimary:   "promote_draft",
			wantSecondary: "archive_draft",
			wantPreview:   "Preview draft content and formatting",
		},
		{
			name:        "published draft content",
			level:       console.LevelDraftContent,
			nodeID:      strPtr("draft-2"),
			wantPrimary: "unpublish_draft",
			wantPreview: "Preview draft content and formatting",
		},
		{
			name:        "unpublished draft content",
			level:       console.LevelDraftContent,
			nodeID:      strPtr("draft-5"),
			wantPrimary: "publish_draft",
			wantPreview: "Preview draft content and formatting",
		},
		{
			name:        "docx",
			level:       console.LevelDocx,
			nodeID:      strPtr("file-1"),
			wantPrimary: "set_current_version",
			wantPreview: "Preview document content",
		},
		{
			name:        "publisher",
			level:       console.LevelPublisher,
			nodeID:      strPtr("work-1"),
			wantPreview: "Preview content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.LevelActions(ctx, tt.level, tt.nodeID)

			primary, secondary := "", ""
			if got.Primary != nil {
				primary = got.Primary.Action
			}
			if got.Secondary != nil {
				secondary = got.Secondary.Action
			}
			if primary != tt.wantPrimary {
				t.Errorf("primary = %q, want %q", primary, tt.wantPrimary)
			}
			if secondary != tt.wantSecondary {
				t.Errorf("secondary = %q, want %q", secondary, tt.wantSecondary)
			}
			if got.Preview.Label != "Preview" || got.Preview.Description != tt.wantPreview {
				t.Errorf("preview = %+v", got.Preview)
			}
		})
	}
}

func TestLevelResolver_Variants(t *testing.T) {
	resolver, _ := newTestLevelResolver(t)
	ctx := context.Background()

	unpublish := resolver.LevelActions(ctx, console.LevelDraftContent, strPtr("draft-2"))
	if unpublish.Primary.Variant != console.VariantDanger {
		t.Errorf("unpublish variant = %s", unpublish.Primary.Variant)
	}
	publish := resolver.LevelActions(ctx, console.LevelDraftContent, strPtr("draft-1"))
	if publish.Primary.Variant != console.VariantPrimary {
		t.Errorf("publish variant = %s", publish.Primary.Variant)
	}
}
