package store

import (
	"reflect"
	"testing"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
)

func sampleTree() []console.TreeNode {
	return []console.TreeNode{
		{
			ID:    "work-1",
			Type:  console.LevelWork,
			Title: "Contract Law",
			Children: []console.TreeNode{
				{
					ID:         "edition-1",
					Type:       console.LevelEdition,
					Title:      "Second Edition",
					IsExpanded: true,
					Children: []console.TreeNode{
						{ID: "draft-2", Type: console.LevelDraftContent, Title: "Main Draft v3.2", Metadata: map[string]any{"status": "published"}},
						{ID: "draft-1", Type: console.LevelDraftContent, Title: "Older Draft v3.1"},
					},
				},
			},
		},
		{
			ID:    "work-2",
			Type:  console.LevelWork,
			Title: "Torts",
			Children: []console.TreeNode{
				{ID: "edition-2", Type: console.LevelEdition, Title: "First Edition"},
			},
		},
	}
}

// collect flattens the forest into id -> node (children stripped)
func collect(nodes []console.TreeNode, out map[string]console.TreeNode) map[string]console.TreeNode {
	if out == nil {
		out = make(map[string]console.TreeNode)
	}
	for _, n := range nodes {
		flat := n
		flat.Children = nil
		out[n.ID] = flat
		collect(n.Children, out)
	}
	return out
}

func TestToggleExpansion_FlipsOnlyTarget(t *testing.T) {
	for id := range collect(sampleTree(), nil) {
		t.Run(id, func(t *testing.T) {
			before := sampleTree()
			after := ToggleExpansion(before, id)

			b := collect(before, nil)
			a := collect(after, nil)
			if len(a) != len(b) {
				t.Fatalf("node count changed: %d -> %d", len(b), len(a))
			}
			for nodeID, old := range b {
				got := a[nodeID]
				if nodeID == id {
					if got.IsExpanded == old.IsExpanded {
						t.Errorf("%s: isExpanded not flipped", nodeID)
					}
					got.IsExpanded = old.IsExpanded
				}
				if !reflect.DeepEqual(got, old) {
					t.Errorf("%s changed: %+v -> %+v", nodeID, old, got)
				}
			}
			if !reflect.DeepEqual(before, sampleTree()) {
				t.Error("input tree was mutated")
			}
		})
	}
}

func TestMutations_MissingIDIsNoop(t *testing.T) {
	title := "x"
	ops := []struct {
		name string
		fn   func([]console.TreeNode) []console.TreeNode
	}{
		{"toggle", func(n []console.TreeNode) []console.TreeNode { return ToggleExpansion(n, "missing") }},
		{"add", func(n []console.TreeNode) []console.TreeNode {
			return Add(n, "missing", console.TreeNode{ID: "new", Type: console.LevelPart})
		}},
		{"update", func(n []console.TreeNode) []console.TreeNode {
			return Update(n, "missing", console.NodeUpdate{Title: &title})
		}},
		{"delete", func(n []console.TreeNode) []console.TreeNode { return Delete(n, "missing") }},
	}

	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			got := op.fn(sampleTree())
			if !reflect.DeepEqual(got, sampleTree()) {
				t.Errorf("expected deep-equal tree, got %+v", got)
			}
		})
	}
}

func TestDelete_RemovesSubtree(t *testing.T) {
	got := Delete(sampleTree(), "edition-1")
	remaining := collect(got, nil)

	for _, id := range []string{"edition-1", "draft-1", "draft-2"} {
		if _, ok := remaining[id]; ok {
			t.Errorf("%s still reachable after delete", id)
		}
	}
	for _, id := range []string{"work-1", "work-2", "edition-2"} {
		if _, ok := remaining[id]; !ok {
			t.Errorf("%s should survive delete", id)
		}
	}
}

func TestDelete_Root(t *testing.T) {
	got := Delete(sampleTree(), "work-1")
	if len(got) != 1 || got[0].ID != "work-2" {
		t.Errorf("Delete root = %+v", got)
	}
}

func TestAdd_AppendsAndExpands(t *testing.T) {
	tests := []struct {
		name     string
		parentID string
	}{
		{"parent with children", "edition-1"},
		{"collapsed parent", "work-2"},
		{"leaf parent", "draft-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child := console.TreeNode{ID: "new-node", Type: console.LevelPart, Title: "Chapter 9"}
			got := Add(sampleTree(), tt.parentID, child)

			parent, ok := Find(got, tt.parentID)
			if !ok {
				t.Fatalf("parent %s not found", tt.parentID)
			}
			if !parent.IsExpanded {
				t.Error("parent not expanded")
			}
			last := parent.Children[len(parent.Children)-1]
			if !reflect.DeepEqual(last, child) {
				t.Errorf("last child = %+v, want %+v", last, child)
			}
		})
	}
}

func TestUpdate_ShallowMerge(t *testing.T) {
	title := "Renamed"
	got := Update(sampleTree(), "draft-2", console.NodeUpdate{Title: &title})

	node, _ := Find(got, "draft-2")
	if node.Title != "Renamed" {
		t.Errorf("title = %q", node.Title)
	}
	if node.Metadata["status"] != "published" {
		t.Errorf("metadata lost: %+v", node.Metadata)
	}
	if node.Type != console.LevelDraftContent {
		t.Errorf("type changed to %q", node.Type)
	}
}

func TestMutations_ShareNothingWithInput(t *testing.T) {
	before := sampleTree()
	after := ToggleExpansion(before, "work-2")

	after[0].Children[0].Children[0].Metadata["status"] = "changed"
	after[0].Children[0].Title = "changed"

	if before[0].Children[0].Children[0].Metadata["status"] != "published" {
		t.Error("metadata map shared between input and output")
	}
	if before[0].Children[0].Title != "Second Edition" {
		t.Error("children slice shared between input and output")
	}
}

func TestParentChain(t *testing.T) {
	tests := []struct {
		id   string
		want []string
	}{
		{"draft-1", []string{"work-1", "edition-1"}},
		{"edition-2", []string{"work-2"}},
		{"work-1", []string{}},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			chain := ParentChain(sampleTree(), tt.id)
			if tt.want == nil {
				if chain != nil {
					t.Errorf("expected nil chain, got %+v", chain)
				}
				return
			}
			ids := make([]string, 0, len(chain))
			for _, n := range chain {
				ids = append(ids, n.ID)
				if n.Children != nil {
					t.Errorf("%s: children should be omitted", n.ID)
				}
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("ParentChain(%s) = %v, want %v", tt.id, ids, tt.want)
			}
		})
	}
}
