package console

// LevelType identifies a node's position in the publishing hierarchy
type LevelType string

const (
	LevelPublisher    LevelType = "publisher"
	LevelWork         LevelType = "work"
	LevelEdition      LevelType = "edition"
	LevelDraft        LevelType = "draft"
	LevelDraftContent LevelType = "draft-content"
	LevelPart         LevelType = "part"
	LevelDocx         LevelType = "docx"
)

// AllLevels lists every level in hierarchy order
var AllLevels = []LevelType{
	LevelPublisher,
	LevelWork,
	LevelEdition,
	LevelDraft,
	LevelDraftContent,
	LevelPart,
	LevelDocx,
}

// hierarchy maps each level to the only level allowed beneath it.
// draft-content children are the chapter (part) nodes derived from uploaded files.
var hierarchy = map[LevelType]LevelType{
	LevelPublisher:    LevelWork,
	LevelWork:         LevelEdition,
	LevelEdition:      LevelDraftContent,
	LevelDraft:        LevelDraftContent,
	LevelDraftContent: LevelPart,
	LevelPart:         LevelDocx,
}

// Valid reports whether l is one of the known levels
func (l LevelType) Valid() bool {
	for _, known := range AllLevels {
		if l == known {
			return true
		}
	}
	return false
}

// ChildType returns the level permitted for children of l.
// ok is false for leaf levels.
func (l LevelType) ChildType() (child LevelType, ok bool) {
	child, ok = hierarchy[l]
	return child, ok
}

// TreeNode is a node in the publishing hierarchy.
// Children is nil or empty for leaves.
type TreeNode struct {
	ID         string         `json:"id" yaml:"id"`
	Type       LevelType      `json:"type" yaml:"type"`
	Title      string         `json:"title" yaml:"title"`
	Children   []TreeNode     `json:"children,omitempty" yaml:"children,omitempty"`
	IsExpanded bool           `json:"isExpanded" yaml:"isExpanded"`
	Metadata   map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// HasChildren reports whether the node has at least one child
func (n TreeNode) HasChildren() bool {
	return len(n.Children) > 0
}

// NodeUpdate is a shallow patch for a TreeNode. Nil fields are left untouched.
// A non-nil Metadata replaces the whole metadata map.
type NodeUpdate struct {
	Title      *string        `json:"title,omitempty"`
	IsExpanded *bool          `json:"isExpanded,omitempty"`
	Children   *[]TreeNode    `json:"children,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Empty reports whether the update would change nothing
func (u NodeUpdate) Empty() bool {
	return u.Title == nil && u.IsExpanded == nil && u.Children == nil && u.Metadata == nil
}
