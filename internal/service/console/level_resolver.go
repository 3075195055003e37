package console

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	consoleRepo "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/repositories/console"
	consoleSvc "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/services/console"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/store"
)

// Header statuses
const (
	StatusPublished   = "published"
	StatusUnderReview = "under_review"
	StatusDraft       = "draft"
)

// levelResolver implements the LevelResolver interface. It reads the tree
// from the store snapshot and draft status from the draft registry.
type levelResolver struct {
	store     *store.Store
	draftRepo consoleRepo.DraftRepository
	logger    *slog.Logger
}

// NewLevelResolver creates a new level resolver
func NewLevelResolver(st *store.Store, draftRepo consoleRepo.DraftRepository, logger *slog.Logger) consoleSvc.LevelResolver {
	return &levelResolver{
		store:     st,
		draftRepo: draftRepo,
		logger:    logger,
	}
}

// CurrentLevelInfo returns the header bundle for the selection
func (r *levelResolver) CurrentLevelInfo(ctx context.Context, level console.LevelType, nodeID *string) console.LevelInfo {
	if nodeID == nil || *nodeID == "" {
		return console.LevelInfo{
			Title:    "Select an item",
			Subtitle: "Choose from the navigation tree",
			IconName: "FileText",
		}
	}

	node, ok := store.Find(r.store.Snapshot().TreeData, *nodeID)
	if !ok {
		return console.LevelInfo{
			Title:    "Item not found",
			IconName: "AlertCircle",
		}
	}

	switch level {
	case console.LevelWork:
		return console.LevelInfo{
			Title:     node.Title,
			IconName:  "Book",
			Status:    StatusPublished,
			EditLabel: "Edit Overview",
		}

	case console.LevelEdition:
		return console.LevelInfo{
			Title:     node.Title,
			IconName:  "BookOpen",
			Status:    StatusPublished,
			EditLabel: "Edit Edition",
		}

	case console.LevelDraft:
		info := console.LevelInfo{
			Title:    node.Title,
			Subtitle: "Working draft version",
			IconName: "Folder",
		}
		if draft := r.lookupDraft(ctx, node.ID); draft != nil {
			info.Metadata = "Last updated " + draft.LastModified.UTC().Format("Jan 2")
		}
		return info

	case console.LevelDraftContent:
		info := console.LevelInfo{
			Title:    node.Title,
			IconName: "Folder",
		}
		if r.isDraftPublished(ctx, node.ID) {
			info.Status = StatusPublished
		}
		return info

	case console.LevelPart:
		info := console.LevelInfo{
			Title:     node.Title,
			IconName:  "Layers",
			Status:    StatusUnderReview,
			EditLabel: "Edit Section",
		}
		if selected, ok := node.Metadata[MetaSelectedFilename].(string); ok && selected != "" {
			info.Subtitle = "Currently using: " + selected
		}
		if count, ok := metadataInt(node.Metadata, MetaVersionCount); ok {
			info.Metadata = pluralVersions(count)
		} else if len(node.Children) > 0 {
			info.Metadata = pluralVersions(len(node.Children))
		}
		return info

	case console.LevelDocx:
		return console.LevelInfo{
			Title:     node.Title,
			Subtitle:  "Document File",
			IconName:  "FileType",
			Status:    StatusDraft,
			EditLabel: "Edit File",
		}

	default:
		return console.LevelInfo{
			Title:     node.Title,
			IconName:  "FileText",
			EditLabel: "Edit",
		}
	}
}

// LevelActions returns the context actions for the selection.
// Publish actions flip to their unpublish form when the item is live.
func (r *levelResolver) LevelActions(ctx context.Context, level console.LevelType, nodeID *string) console.LevelActions {
	if nodeID == nil || *nodeID == "" {
		return console.LevelActions{
			Preview: console.PreviewAction{Label: "Preview", Description: "No item selected"},
		}
	}

	info := r.CurrentLevelInfo(ctx, level, nodeID)

	switch level {
	case console.LevelWork:
		return console.LevelActions{
			Primary: publishToggle(info.Status == StatusPublished,
				&console.LevelAction{
					Label:       "Unpublish Work",
					Action:      "unpublish_work",
					Description: "Remove entire work from public portal",
					Variant:     console.VariantDanger,
				},
				&console.LevelAction{
					Label:       "Publish Work",
					Action:      "publish_work",
					Description: "Make entire work available on public portal",
					Variant:     console.VariantPrimary,
				},
			),
			Preview: console.PreviewAction{Label: "Preview", Description: "Preview complete work as end users will see it"},
		}

	case console.LevelEdition:
		return console.LevelActions{
			Primary: publishToggle(info.Status == StatusPublished,
				&console.LevelAction{
					Label:       "Unpublish Edition",
					Action:      "unpublish_edition",
					Description: "Remove this edition from public access",
					Variant:     console.VariantDanger,
				},
				&console.LevelAction{
					Label:       "Publish Edition",
					Action:      "publish_edition",
					Description: "Make this edition available to users",
					Variant:     console.VariantPrimary,
				},
			),
			Preview: console.PreviewAction{Label: "Preview", Description: "Preview this edition formatting and content"},
		}

	case console.LevelDraft:
		return console.LevelActions{
			Primary: &console.LevelAction{
				Label:       "Promote to Edition",
				Action:      "promote_draft",
				Description: "Convert draft to published edition",
				Variant:     console.VariantDefault,
			},
			Secondary: &console.LevelAction{
				Label:       "Archive Draft",
				Action:      "archive_draft",
				Description: "Archive this draft version",
				Variant:     console.VariantSecondary,
			},
			Preview: console.PreviewAction{Label: "Preview", Description: "Preview draft content and formatting"},
		}

	case console.LevelDraftContent:
		return console.LevelActions{
			Primary: publishToggle(r.isDraftPublished(ctx, *nodeID),
				&console.LevelAction{
					Label:       "Unpublish Draft",
					Action:      "unpublish_draft",
					Description: "Remove draft from published state",
					Variant:     console.VariantDanger,
				},
				&console.LevelAction{
					Label:       "Publish Draft",
					Action:      "publish_draft",
					Description: "Make draft available for publication",
					Variant:     console.VariantPrimary,
				},
			),
			Preview: console.PreviewAction{Label: "Preview", Description: "Preview draft content and formatting"},
		}

	case console.LevelPart:
		primary := &console.LevelAction{
			Label:       "Submit for Review",
			Action:      "submit_review",
			Description: "Submit chapter for editorial review",
			Variant:     console.VariantPrimary,
		}
		if info.Status == StatusUnderReview {
			primary = &console.LevelAction{
				Label:       "Approve Chapter",
				Action:      "approve_part",
				Description: "Mark chapter as approved for publication",
				Variant:     console.VariantPrimary,
			}
		}
		return console.LevelActions{
			Primary: primary,
			Secondary: &console.LevelAction{
				Label:       "Request Changes",
				Action:      "request_changes",
				Description: "Send back to author with feedback",
				Variant:     console.VariantSecondary,
			},
			Preview: console.PreviewAction{Label: "Preview", Description: "Preview chapter content and formatting"},
		}

	case console.LevelDocx:
		return console.LevelActions{
			Primary: &console.LevelAction{
				Label:       "Set as Current",
				Action:      "set_current_version",
				Description: "Use this version for the chapter",
				Variant:     console.VariantDefault,
			},
			Preview: console.PreviewAction{Label: "Preview", Description: "Preview document content"},
		}

	default:
		return console.LevelActions{
			Preview: console.PreviewAction{Label: "Preview", Description: "Preview content"},
		}
	}
}

func (r *levelResolver) lookupDraft(ctx context.Context, draftID string) *console.Draft {
	draft, err := r.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		r.logger.Debug("draft not in registry", "draft_id", draftID, "error", err)
		return nil
	}
	return draft
}

func (r *levelResolver) isDraftPublished(ctx context.Context, draftID string) bool {
	draft := r.lookupDraft(ctx, draftID)
	return draft != nil && draft.IsPublished()
}

func publishToggle(live bool, unpublish, publish *console.LevelAction) *console.LevelAction {
	if live {
		return unpublish
	}
	return publish
}

// metadataInt reads a count that may have come back from JSON as a float
func metadataInt(meta map[string]any, key string) (int, bool) {
	switch v := meta[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func pluralVersions(n int) string {
	if n == 1 {
		return "1 version"
	}
	return fmt.Sprintf("%d versions", n)
}
