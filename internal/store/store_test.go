package store

import (
	"reflect"
	"sync"
	"testing"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
)

func TestDefaultState(t *testing.T) {
	s := New(DefaultState())
	got := s.Snapshot()

	if got.SelectedLevel != console.LevelPublisher {
		t.Errorf("SelectedLevel = %q, want publisher", got.SelectedLevel)
	}
	if got.SelectedNodeID != nil || got.EditingField != nil || got.EditMode || got.SidebarCollapsed {
		t.Errorf("unexpected non-zero fields: %+v", got)
	}
	if got.TreeData == nil || len(got.TreeData) != 0 {
		t.Errorf("TreeData = %#v, want empty slice", got.TreeData)
	}
}

func TestStore_Actions(t *testing.T) {
	id := "draft-2"
	field := "title"

	tests := []struct {
		name   string
		action Action
		check  func(t *testing.T, st console.State)
	}{
		{
			name:   "select node",
			action: SetSelectedNodeID{ID: &id},
			check: func(t *testing.T, st console.State) {
				if st.SelectedNodeID == nil || *st.SelectedNodeID != "draft-2" {
					t.Errorf("SelectedNodeID = %v", st.SelectedNodeID)
				}
			},
		},
		{
			name:   "select unknown node is allowed",
			action: SetSelectedNodeID{ID: strPtr("does-not-exist")},
			check: func(t *testing.T, st console.State) {
				if *st.SelectedNodeID != "does-not-exist" {
					t.Errorf("SelectedNodeID = %v", *st.SelectedNodeID)
				}
			},
		},
		{
			name:   "select level",
			action: SetSelectedLevel{Level: console.LevelEdition},
			check: func(t *testing.T, st console.State) {
				if st.SelectedLevel != console.LevelEdition {
					t.Errorf("SelectedLevel = %q", st.SelectedLevel)
				}
			},
		},
		{
			name:   "toggle sidebar",
			action: ToggleSidebar{},
			check: func(t *testing.T, st console.State) {
				if !st.SidebarCollapsed {
					t.Error("sidebar not collapsed")
				}
			},
		},
		{
			name:   "toggle edit mode",
			action: ToggleEditMode{},
			check: func(t *testing.T, st console.State) {
				if !st.EditMode {
					t.Error("edit mode not enabled")
				}
			},
		},
		{
			name:   "set editing field",
			action: SetEditingField{Field: &field},
			check: func(t *testing.T, st console.State) {
				if st.EditingField == nil || *st.EditingField != "title" {
					t.Errorf("EditingField = %v", st.EditingField)
				}
			},
		},
		{
			name:   "toggle node",
			action: ToggleNodeExpansion{NodeID: "work-1"},
			check: func(t *testing.T, st console.State) {
				n, _ := Find(st.TreeData, "work-1")
				if !n.IsExpanded {
					t.Error("work-1 not expanded")
				}
			},
		},
		{
			name:   "add node",
			action: AddNode{ParentID: "work-2", Node: console.TreeNode{ID: "edition-9", Type: console.LevelEdition}},
			check: func(t *testing.T, st console.State) {
				if !Contains(st.TreeData, "edition-9") {
					t.Error("edition-9 not added")
				}
			},
		},
		{
			name:   "update node",
			action: UpdateNode{NodeID: "work-2", Updates: console.NodeUpdate{Title: strPtr("Tort Law")}},
			check: func(t *testing.T, st console.State) {
				n, _ := Find(st.TreeData, "work-2")
				if n.Title != "Tort Law" {
					t.Errorf("title = %q", n.Title)
				}
			},
		},
		{
			name:   "delete node",
			action: DeleteNode{NodeID: "edition-1"},
			check: func(t *testing.T, st console.State) {
				if Contains(st.TreeData, "draft-1") {
					t.Error("draft-1 survived subtree delete")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := DefaultState()
			initial.TreeData = sampleTree()
			s := New(initial)
			before := s.Snapshot()

			got := s.Dispatch(tt.action)
			tt.check(t, got)

			if !reflect.DeepEqual(got, s.Snapshot()) {
				t.Error("Dispatch result differs from Snapshot")
			}
			if !reflect.DeepEqual(before.TreeData, sampleTree()) {
				t.Error("earlier snapshot observed the mutation")
			}
		})
	}
}

func TestStore_ConvenienceMethods(t *testing.T) {
	s := New(DefaultState())
	s.SetTreeData(sampleTree())
	s.SetSelectedLevel(console.LevelDraftContent)
	s.SetSelectedNodeID(strPtr("draft-1"))
	s.ToggleNodeExpansion("work-1")
	s.AddNode("draft-1", console.TreeNode{ID: "part-1", Type: console.LevelPart, Title: "Foreword"})
	s.UpdateNode("part-1", console.NodeUpdate{Title: strPtr("Preface")})
	s.ToggleSidebar()
	s.ToggleEditMode()
	s.SetEditingField(strPtr("subtitle"))
	st := s.DeleteNode("work-2")

	if st.SelectedLevel != console.LevelDraftContent || *st.SelectedNodeID != "draft-1" {
		t.Errorf("navigation = %q / %v", st.SelectedLevel, st.SelectedNodeID)
	}
	part, ok := Find(st.TreeData, "part-1")
	if !ok || part.Title != "Preface" {
		t.Errorf("part-1 = %+v, %v", part, ok)
	}
	if Contains(st.TreeData, "work-2") {
		t.Error("work-2 not deleted")
	}
	if !st.SidebarCollapsed || !st.EditMode || *st.EditingField != "subtitle" {
		t.Errorf("ui state = %+v", st)
	}

	st = s.SetEditingField(nil)
	if st.EditingField != nil {
		t.Error("editing field not cleared")
	}
}

func TestStore_SetTreeDataCopiesInput(t *testing.T) {
	nodes := sampleTree()
	s := New(DefaultState())
	s.SetTreeData(nodes)

	nodes[0].Title = "mutated"
	if s.Snapshot().TreeData[0].Title != "Contract Law" {
		t.Error("store aliases caller's slice")
	}
}

func TestStore_Subscribe(t *testing.T) {
	s := New(DefaultState())

	var order []string
	unsubA := s.Subscribe(func(st console.State) { order = append(order, "a") })
	var seen []bool
	s.Subscribe(func(st console.State) {
		order = append(order, "b")
		seen = append(seen, st.SidebarCollapsed)
	})

	s.ToggleSidebar()
	if !reflect.DeepEqual(order, []string{"a", "b"}) {
		t.Errorf("order = %v", order)
	}
	if !reflect.DeepEqual(seen, []bool{true}) {
		t.Errorf("listener saw %v, want the new state", seen)
	}

	unsubA()
	unsubA()
	order = nil
	s.ToggleSidebar()
	if !reflect.DeepEqual(order, []string{"b"}) {
		t.Errorf("after unsubscribe order = %v", order)
	}
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	initial := DefaultState()
	initial.TreeData = sampleTree()
	s := New(initial)

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.ToggleNodeExpansion("work-2")
		}()
		go func() {
			defer wg.Done()
			snap := s.Snapshot()
			if len(snap.TreeData) != 2 {
				t.Errorf("torn read: %d roots", len(snap.TreeData))
			}
		}()
	}
	wg.Wait()

	n2, _ := Find(s.Snapshot().TreeData, "work-2")
	if n2.IsExpanded {
		t.Error("even number of toggles should leave work-2 collapsed")
	}
}

func TestStore_AddUniqueNode(t *testing.T) {
	initial := DefaultState()
	initial.TreeData = sampleTree()

	tests := []struct {
		name      string
		parentID  string
		nodeID    string
		wantAdded bool
	}{
		{name: "new id", parentID: "edition-2", nodeID: "draft-9", wantAdded: true},
		{name: "id already in tree", parentID: "edition-2", nodeID: "draft-1"},
		{name: "missing parent", parentID: "edition-404", nodeID: "draft-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(initial)
			node := console.TreeNode{ID: tt.nodeID, Type: console.LevelDraftContent, Title: "Draft"}

			st, added := s.AddUniqueNode(tt.parentID, node)
			if added != tt.wantAdded {
				t.Fatalf("added = %v, want %v", added, tt.wantAdded)
			}
			if !tt.wantAdded && !reflect.DeepEqual(st.TreeData, sampleTree()) {
				t.Error("rejected add changed the tree")
			}
			if tt.wantAdded {
				parent, _ := Find(st.TreeData, tt.parentID)
				if !parent.IsExpanded || len(parent.Children) != 1 {
					t.Errorf("parent = %+v", parent)
				}
			}
		})
	}
}

func TestStore_AddUniqueNodeConcurrent(t *testing.T) {
	initial := DefaultState()
	initial.TreeData = sampleTree()
	s := New(initial)

	const n = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, added := s.AddUniqueNode("edition-2", console.TreeNode{ID: "draft-9", Type: console.LevelDraftContent, Title: "Draft"})
			if added {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("%d adds succeeded, want 1", wins)
	}
	parent, _ := Find(s.Snapshot().TreeData, "edition-2")
	if len(parent.Children) != 1 {
		t.Errorf("edition-2 has %d children, want 1", len(parent.Children))
	}
}

func TestStore_NavigateSingleDispatch(t *testing.T) {
	s := New(DefaultState())
	s.SetSelectedNodeID(strPtr("work-1"))

	var seen []console.State
	s.Subscribe(func(st console.State) { seen = append(seen, st) })

	id := "draft-2"
	s.Navigate(console.LevelDraftContent, &id)
	id = "changed"

	if len(seen) != 1 {
		t.Fatalf("listeners notified %d times, want 1", len(seen))
	}
	got := seen[0]
	if got.SelectedLevel != console.LevelDraftContent || got.SelectedNodeID == nil || *got.SelectedNodeID != "draft-2" {
		t.Errorf("navigation = %q / %v", got.SelectedLevel, got.SelectedNodeID)
	}

	st := s.Navigate(console.LevelPublisher, nil)
	if st.SelectedLevel != console.LevelPublisher || st.SelectedNodeID != nil {
		t.Errorf("clearing navigation = %q / %v", st.SelectedLevel, st.SelectedNodeID)
	}
}

func strPtr(s string) *string { return &s }
