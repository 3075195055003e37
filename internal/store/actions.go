package store

import "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"

// Action is a state transition dispatched to a Store.
// apply must return a new State and leave its argument untouched.
type Action interface {
	Type() string
	apply(console.State) console.State
}

// SetTreeData replaces the whole forest
type SetTreeData struct {
	Nodes []console.TreeNode
}

// SetSelectedNodeID moves navigation focus. The id is not checked against the tree.
type SetSelectedNodeID struct {
	ID *string
}

// SetSelectedLevel changes the selected hierarchy level
type SetSelectedLevel struct {
	Level console.LevelType
}

// ToggleNodeExpansion flips a node's expanded flag
type ToggleNodeExpansion struct {
	NodeID string
}

// AddNode appends a child to a parent and expands the parent
type AddNode struct {
	ParentID string
	Node     console.TreeNode
}

// AddUniqueNode is AddNode that only applies when the parent exists and the
// node's id is not yet in the tree. Added reports whether it applied.
type AddUniqueNode struct {
	ParentID string
	Node     console.TreeNode
	Added    *bool
}

// Navigate sets the selected level and node together
type Navigate struct {
	Level  console.LevelType
	NodeID *string
}

// UpdateNode shallow-merges fields into a node
type UpdateNode struct {
	NodeID  string
	Updates console.NodeUpdate
}

// DeleteNode removes a node and its subtree
type DeleteNode struct {
	NodeID string
}

// ToggleSidebar flips the sidebar collapsed flag
type ToggleSidebar struct{}

// ToggleEditMode flips global edit mode
type ToggleEditMode struct{}

// SetEditingField sets or clears the field being edited inline
type SetEditingField struct {
	Field *string
}

func (SetTreeData) Type() string         { return "setTreeData" }
func (SetSelectedNodeID) Type() string   { return "setSelectedNodeId" }
func (SetSelectedLevel) Type() string    { return "setSelectedLevel" }
func (ToggleNodeExpansion) Type() string { return "toggleNodeExpansion" }
func (AddNode) Type() string             { return "addNode" }
func (AddUniqueNode) Type() string       { return "addNode" }
func (Navigate) Type() string            { return "navigate" }
func (UpdateNode) Type() string          { return "updateNode" }
func (DeleteNode) Type() string          { return "deleteNode" }
func (ToggleSidebar) Type() string       { return "toggleSidebar" }
func (ToggleEditMode) Type() string      { return "toggleEditMode" }
func (SetEditingField) Type() string     { return "setEditingField" }

func (a SetTreeData) apply(s console.State) console.State {
	s.TreeData = Clone(a.Nodes)
	return s
}

func (a SetSelectedNodeID) apply(s console.State) console.State {
	s.SelectedNodeID = copyString(a.ID)
	return s
}

func (a SetSelectedLevel) apply(s console.State) console.State {
	s.SelectedLevel = a.Level
	return s
}

func (a ToggleNodeExpansion) apply(s console.State) console.State {
	s.TreeData = ToggleExpansion(s.TreeData, a.NodeID)
	return s
}

func (a AddNode) apply(s console.State) console.State {
	s.TreeData = Add(s.TreeData, a.ParentID, a.Node)
	return s
}

func (a AddUniqueNode) apply(s console.State) console.State {
	ok := Contains(s.TreeData, a.ParentID) && !Contains(s.TreeData, a.Node.ID)
	if a.Added != nil {
		*a.Added = ok
	}
	if !ok {
		return s
	}
	s.TreeData = Add(s.TreeData, a.ParentID, a.Node)
	return s
}

func (a Navigate) apply(s console.State) console.State {
	s.SelectedLevel = a.Level
	s.SelectedNodeID = copyString(a.NodeID)
	return s
}

func (a UpdateNode) apply(s console.State) console.State {
	s.TreeData = Update(s.TreeData, a.NodeID, a.Updates)
	return s
}

func (a DeleteNode) apply(s console.State) console.State {
	s.TreeData = Delete(s.TreeData, a.NodeID)
	return s
}

func (ToggleSidebar) apply(s console.State) console.State {
	s.SidebarCollapsed = !s.SidebarCollapsed
	return s
}

func (ToggleEditMode) apply(s console.State) console.State {
	s.EditMode = !s.EditMode
	return s
}

func (a SetEditingField) apply(s console.State) console.State {
	s.EditingField = copyString(a.Field)
	return s
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
