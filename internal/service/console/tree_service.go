package console

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/config"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	consoleSvc "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/services/console"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/store"
)

// treeService implements the TreeService interface on top of a store.
// The store itself is fail-soft; this layer reports unknown ids and
// hierarchy violations as errors.
type treeService struct {
	store    *store.Store
	versions consoleSvc.VersionService
	logger   *slog.Logger
}

// NewTreeService creates a new tree service
func NewTreeService(
	st *store.Store,
	versions consoleSvc.VersionService,
	logger *slog.Logger,
) consoleSvc.TreeService {
	return &treeService{
		store:    st,
		versions: versions,
		logger:   logger,
	}
}

func (s *treeService) State() console.State {
	return s.store.Snapshot()
}

// SetTreeData replaces the forest after checking ids, levels and nesting
func (s *treeService) SetTreeData(ctx context.Context, nodes []console.TreeNode) (console.State, error) {
	if nodes == nil {
		nodes = []console.TreeNode{}
	}
	if err := validateForest(nodes); err != nil {
		return console.State{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	state := s.store.SetTreeData(nodes)
	s.logger.Info("tree replaced", "root_count", len(nodes))
	return state, nil
}

func (s *treeService) Select(ctx context.Context, req *consoleSvc.SelectRequest) (console.State, error) {
	if err := validateSelectRequest(req); err != nil {
		return console.State{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	state := s.store.Navigate(req.Level, req.NodeID)

	s.logger.Debug("selection changed", "level", req.Level, "node_id", req.NodeID)
	return state, nil
}

// AddNode appends a new child to an existing parent. The child's level must
// be the one the parent's level permits.
func (s *treeService) AddNode(ctx context.Context, req *consoleSvc.AddNodeRequest) (*console.TreeNode, error) {
	if err := validateAddNodeRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	snapshot := s.store.Snapshot()
	parent, ok := store.Find(snapshot.TreeData, req.ParentID)
	if !ok {
		return nil, domain.NewNotFound("node", req.ParentID)
	}

	childType, ok := parent.Type.ChildType()
	if !ok {
		return nil, fmt.Errorf("%w: %s nodes cannot have children", domain.ErrValidation, parent.Type)
	}
	if req.Type != childType {
		return nil, fmt.Errorf("%w: %s nodes only accept %s children, got %s",
			domain.ErrValidation, parent.Type, childType, req.Type)
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	node := console.TreeNode{
		ID:       id,
		Type:     req.Type,
		Title:    strings.TrimSpace(req.Title),
		Metadata: req.Metadata,
	}
	state, added := s.store.AddUniqueNode(req.ParentID, node)
	if !added {
		if !store.Contains(state.TreeData, req.ParentID) {
			// Parent was deleted between the lookup and the dispatch
			return nil, domain.NewNotFound("node", req.ParentID)
		}
		return nil, &domain.ConflictError{
			Message:      fmt.Sprintf("node %s already exists", id),
			ResourceType: "node",
			ResourceID:   id,
		}
	}

	created, _ := store.Find(state.TreeData, id)

	s.logger.Info("node added",
		"id", id,
		"type", req.Type,
		"parent_id", req.ParentID,
	)
	return &created, nil
}

func (s *treeService) UpdateNode(ctx context.Context, nodeID string, req *consoleSvc.UpdateNodeRequest) (*console.TreeNode, error) {
	if err := validateUpdateNodeRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if !store.Contains(s.store.Snapshot().TreeData, nodeID) {
		return nil, domain.NewNotFound("node", nodeID)
	}

	update := console.NodeUpdate{
		IsExpanded: req.IsExpanded,
		Metadata:   req.Metadata,
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		update.Title = &title
	}

	state := s.store.UpdateNode(nodeID, update)
	updated, ok := store.Find(state.TreeData, nodeID)
	if !ok {
		return nil, domain.NewNotFound("node", nodeID)
	}

	s.logger.Info("node updated", "id", nodeID)
	return &updated, nil
}

func (s *treeService) DeleteNode(ctx context.Context, nodeID string) error {
	if !store.Contains(s.store.Snapshot().TreeData, nodeID) {
		return domain.NewNotFound("node", nodeID)
	}

	state := s.store.DeleteNode(nodeID)
	if state.SelectedNodeID != nil && !store.Contains(state.TreeData, *state.SelectedNodeID) {
		s.store.SetSelectedNodeID(nil)
	}

	s.logger.Info("node deleted", "id", nodeID)
	return nil
}

func (s *treeService) ToggleNode(ctx context.Context, nodeID string) (*console.TreeNode, error) {
	if !store.Contains(s.store.Snapshot().TreeData, nodeID) {
		return nil, domain.NewNotFound("node", nodeID)
	}

	state := s.store.ToggleNodeExpansion(nodeID)
	node, ok := store.Find(state.TreeData, nodeID)
	if !ok {
		return nil, domain.NewNotFound("node", nodeID)
	}
	return &node, nil
}

func (s *treeService) ToggleSidebar(ctx context.Context) console.State {
	return s.store.ToggleSidebar()
}

func (s *treeService) ToggleEditMode(ctx context.Context) console.State {
	state := s.store.ToggleEditMode()
	if !state.EditMode && state.EditingField != nil {
		state = s.store.SetEditingField(nil)
	}
	return state
}

func (s *treeService) SetEditingField(ctx context.Context, field *string) (console.State, error) {
	if field != nil {
		trimmed := strings.TrimSpace(*field)
		if trimmed == "" || len(trimmed) > config.MaxEditingFieldLength {
			return console.State{}, fmt.Errorf("%w: editing field must be 1-%d characters",
				domain.ErrValidation, config.MaxEditingFieldLength)
		}
		field = &trimmed
	}
	return s.store.SetEditingField(field), nil
}

// SyncDraftChapters replaces the children of a draft-content node with the
// chapter nodes derived from the draft's files. Expansion state of chapters
// that already existed is kept.
func (s *treeService) SyncDraftChapters(ctx context.Context, draftID string) (*console.TreeNode, error) {
	current, ok := store.Find(s.store.Snapshot().TreeData, draftID)
	if !ok {
		return nil, domain.NewNotFound("node", draftID)
	}
	if current.Type != console.LevelDraftContent {
		return nil, fmt.Errorf("%w: node %s is a %s, not a draft", domain.ErrValidation, draftID, current.Type)
	}

	chapters, err := s.versions.ChapterNodes(ctx, draftID)
	if err != nil {
		return nil, err
	}

	expanded := make(map[string]bool)
	for _, child := range current.Children {
		expanded[child.ID] = child.IsExpanded
	}
	for i := range chapters {
		chapters[i].IsExpanded = expanded[chapters[i].ID]
	}

	state := s.store.UpdateNode(draftID, console.NodeUpdate{Children: &chapters})
	synced, ok := store.Find(state.TreeData, draftID)
	if !ok {
		return nil, domain.NewNotFound("node", draftID)
	}

	s.logger.Info("draft chapters synced",
		"draft_id", draftID,
		"chapter_count", len(chapters),
	)
	return &synced, nil
}

// validateForest checks a replacement forest: known levels, unique ids,
// bounded depth and children of the permitted level only
func validateForest(nodes []console.TreeNode) error {
	seen := make(map[string]bool)
	var walk func(nodes []console.TreeNode, parent *console.TreeNode, depth int) error
	walk = func(nodes []console.TreeNode, parent *console.TreeNode, depth int) error {
		if depth > config.MaxTreeDepth {
			return fmt.Errorf("tree deeper than %d levels", config.MaxTreeDepth)
		}
		for i := range nodes {
			n := &nodes[i]
			if n.ID == "" {
				return fmt.Errorf("node without id under %s", parentLabel(parent))
			}
			if seen[n.ID] {
				return fmt.Errorf("duplicate node id %s", n.ID)
			}
			seen[n.ID] = true
			if !n.Type.Valid() {
				return fmt.Errorf("node %s has unknown type %q", n.ID, n.Type)
			}
			if parent != nil {
				if want, ok := parent.Type.ChildType(); !ok || want != n.Type {
					return fmt.Errorf("node %s of type %s cannot be a child of %s", n.ID, n.Type, parent.Type)
				}
			}
			if err := walk(n.Children, n, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(nodes, nil, 1)
}

func parentLabel(parent *console.TreeNode) string {
	if parent == nil {
		return "root"
	}
	return parent.ID
}
