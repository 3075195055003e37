package console

import "time"

// Part types recognised by the filename convention
const (
	PartForeword     = "foreword"
	PartPreface      = "preface"
	PartIntroduction = "introduction"
	PartChapter      = "chapter"
	PartAppendix     = "appendix"
	PartConclusion   = "conclusion"
)

// FileVersion is one uploaded revision of a draft part.
// The filename encodes part type, number, title and version.
type FileVersion struct {
	ID            string    `json:"id" yaml:"id"`
	DraftID       string    `json:"draftId" yaml:"-"`
	Filename      string    `json:"filename" yaml:"filename"`
	UploadDate    time.Time `json:"uploadDate" yaml:"uploadDate"`
	UploadedBy    string    `json:"uploadedBy" yaml:"uploadedBy"`
	UploadComment string    `json:"uploadComment" yaml:"uploadComment"`
	IsLatest      bool      `json:"isLatest" yaml:"isLatest"`
	IsSelected    bool      `json:"isSelected" yaml:"isSelected"`
	FileSize      *int64    `json:"fileSize,omitempty" yaml:"fileSize,omitempty"`
	Description   *string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// FileMetadata is the structured form of a conventional filename
type FileMetadata struct {
	PartType  string  `json:"partType"`
	Number    *string `json:"number"`
	Title     string  `json:"title"`
	Version   string  `json:"version"`
	Extension string  `json:"extension"`
}

// ChapterGroup collects the versions of one chapter-like part.
// It is derived from a file list and never stored.
type ChapterGroup struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	PartType        string        `json:"partType"`
	Number          *string       `json:"number"`
	SortKey         string        `json:"sortKey"`
	Versions        []FileVersion `json:"versions"`
	LatestVersion   *FileVersion  `json:"latestVersion,omitempty"`
	SelectedVersion *FileVersion  `json:"selectedVersion,omitempty"`
	Description     *string       `json:"description,omitempty"`
}

// DraftStatus is the publication status of a draft
type DraftStatus string

const (
	DraftStatusPublished   DraftStatus = "published"
	DraftStatusUnpublished DraftStatus = "unpublished"
	DraftStatusDraft       DraftStatus = "draft"
)

// Draft is the editorial record behind a draft-content tree node
type Draft struct {
	ID                   string      `json:"id" yaml:"id"`
	EditionID            string      `json:"editionId" yaml:"editionId"`
	Name                 string      `json:"name" yaml:"name"`
	Status               DraftStatus `json:"status" yaml:"status"`
	LastModified         time.Time   `json:"lastModified" yaml:"lastModified"`
	CompletionPercentage int         `json:"completionPercentage" yaml:"completionPercentage"`
}

// IsPublished reports whether the draft is live on the portal
func (d Draft) IsPublished() bool {
	return d.Status == DraftStatusPublished
}
