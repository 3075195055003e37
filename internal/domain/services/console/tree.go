package console

import (
	"context"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
)

// TreeService validates and applies navigation tree and UI state changes
type TreeService interface {
	// State returns the current console state snapshot
	State() console.State

	// SetTreeData replaces the whole forest
	SetTreeData(ctx context.Context, nodes []console.TreeNode) (console.State, error)

	// Select moves navigation focus. nodeID is not required to exist.
	Select(ctx context.Context, req *SelectRequest) (console.State, error)

	// AddNode creates a child under an existing parent and returns it
	AddNode(ctx context.Context, req *AddNodeRequest) (*console.TreeNode, error)

	// UpdateNode shallow-merges fields into an existing node
	UpdateNode(ctx context.Context, nodeID string, req *UpdateNodeRequest) (*console.TreeNode, error)

	// DeleteNode removes a node and its subtree
	DeleteNode(ctx context.Context, nodeID string) error

	// ToggleNode flips a node's expanded flag
	ToggleNode(ctx context.Context, nodeID string) (*console.TreeNode, error)

	ToggleSidebar(ctx context.Context) console.State
	ToggleEditMode(ctx context.Context) console.State

	// SetEditingField sets or clears the inline editing field
	SetEditingField(ctx context.Context, field *string) (console.State, error)

	// SyncDraftChapters rebuilds a draft-content node's chapter children from its files
	SyncDraftChapters(ctx context.Context, draftID string) (*console.TreeNode, error)
}

// OptionalText tracks tri-state semantics for nullable text updates (RFC 7396 PATCH).
// Transport-agnostic; handlers map from httputil.OptionalString.
//   - Present=false: field absent from request (don't change)
//   - Present=true, Value=nil: field is null (clear)
//   - Present=true, Value=&"text": field has value
type OptionalText struct {
	Present bool
	Value   *string
}

// SelectRequest represents a navigation change
type SelectRequest struct {
	Level  console.LevelType `json:"level"`
	NodeID *string           `json:"node_id"`
}

// AddNodeRequest represents a node creation request.
// ID is optional; a fresh one is generated when empty.
type AddNodeRequest struct {
	ParentID string            `json:"parent_id"`
	ID       string            `json:"id,omitempty"`
	Type     console.LevelType `json:"type"`
	Title    string            `json:"title"`
	Metadata map[string]any    `json:"metadata,omitempty"`
}

// UpdateNodeRequest represents a partial node update
type UpdateNodeRequest struct {
	Title      *string        `json:"title,omitempty"`
	IsExpanded *bool          `json:"is_expanded,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}
