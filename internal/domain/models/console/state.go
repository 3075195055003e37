package console

// State is the whole console state held by the tree store
type State struct {
	SelectedLevel    LevelType  `json:"selectedLevel"`
	SelectedNodeID   *string    `json:"selectedNodeId"`
	TreeData         []TreeNode `json:"treeData"`
	EditMode         bool       `json:"editMode"`
	EditingField     *string    `json:"editingField"`
	SidebarCollapsed bool       `json:"sidebarCollapsed"`
}

// PersistedState is the subset of State that survives across sessions.
// Edit mode and the inline editing field are never persisted.
type PersistedState struct {
	SelectedLevel    LevelType  `json:"selectedLevel"`
	SelectedNodeID   *string    `json:"selectedNodeId"`
	TreeData         []TreeNode `json:"treeData"`
	SidebarCollapsed bool       `json:"sidebarCollapsed"`
}

// Persisted extracts the persisted subset
func (s State) Persisted() PersistedState {
	return PersistedState{
		SelectedLevel:    s.SelectedLevel,
		SelectedNodeID:   s.SelectedNodeID,
		TreeData:         s.TreeData,
		SidebarCollapsed: s.SidebarCollapsed,
	}
}

// ToState expands a persisted snapshot into a full State with edit state reset
func (p PersistedState) ToState() State {
	return State{
		SelectedLevel:    p.SelectedLevel,
		SelectedNodeID:   p.SelectedNodeID,
		TreeData:         p.TreeData,
		SidebarCollapsed: p.SidebarCollapsed,
	}
}
