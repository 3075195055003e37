package console

import (
	"context"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
)

// Upload modes offered by the upload dialog
const (
	UploadNewChapter    = "new-chapter"
	UploadAddToExisting = "add-to-existing"
)

// VersionService manages the uploaded file versions of drafts
type VersionService interface {
	// ListDrafts returns the draft registry
	ListDrafts(ctx context.Context) ([]console.Draft, error)

	// GetDraft returns one registry entry
	GetDraft(ctx context.Context, draftID string) (*console.Draft, error)

	// ListChapters groups a draft's files into ordered chapter groups
	ListChapters(ctx context.Context, draftID string) ([]console.ChapterGroup, error)

	// ListFiles returns a draft's files, optionally filtered by part type
	ListFiles(ctx context.Context, draftID, partType string) ([]console.FileVersion, error)

	// PartTypes returns the distinct part types present in a draft
	PartTypes(ctx context.Context, draftID string) ([]string, error)

	// UploadVersion records a new file version (metadata only)
	UploadVersion(ctx context.Context, req *UploadVersionRequest) (*console.FileVersion, error)

	// SelectVersion makes a file the selected version of its chapter.
	// Any other selected file in the same chapter is deselected.
	SelectVersion(ctx context.Context, fileID string) (*console.ChapterGroup, error)

	// UpdateFile edits a file's filename, comment or description
	UpdateFile(ctx context.Context, fileID string, req *UpdateFileRequest) (*console.FileVersion, error)

	// ChapterNodes derives part nodes (with docx leaves) for a draft
	ChapterNodes(ctx context.Context, draftID string) ([]console.TreeNode, error)
}

// UploadVersionRequest represents an upload of a new file version
type UploadVersionRequest struct {
	DraftID       string  `json:"-"` // Set by handler from the URL
	Filename      string  `json:"filename"`
	UploadedBy    string  `json:"uploaded_by"`
	UploadComment string  `json:"upload_comment"`
	FileSize      *int64  `json:"file_size,omitempty"`
	Description   *string `json:"description,omitempty"`

	// UploadType is new-chapter or add-to-existing. TargetChapterID is
	// required for add-to-existing, NewChapterTitle for new-chapter.
	UploadType      string `json:"upload_type"`
	TargetChapterID string `json:"target_chapter_id,omitempty"`
	NewChapterTitle string `json:"new_chapter_title,omitempty"`
}

// UpdateFileRequest represents a partial file metadata update
type UpdateFileRequest struct {
	Filename      *string      `json:"filename,omitempty"`
	UploadComment *string      `json:"upload_comment,omitempty"`
	Description   OptionalText `json:"-"` // Tri-state, mapped from handler DTO
}
