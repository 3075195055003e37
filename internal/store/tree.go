package store

import "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"

// The functions in this file rebuild the whole forest on every call. The
// returned forest shares no slices or metadata maps with the input, so a
// previously published snapshot can never observe a later mutation.
// Unknown ids are no-ops that return a deep-equal copy.

// Clone deep-copies a forest. nil and empty child slices are preserved as is.
func Clone(nodes []console.TreeNode) []console.TreeNode {
	if nodes == nil {
		return nil
	}
	out := make([]console.TreeNode, len(nodes))
	for i, n := range nodes {
		out[i] = cloneNode(n)
	}
	return out
}

// ToggleExpansion flips IsExpanded on every node with the given id
func ToggleExpansion(nodes []console.TreeNode, nodeID string) []console.TreeNode {
	return rewrite(nodes, nodeID, func(n console.TreeNode) console.TreeNode {
		n.IsExpanded = !n.IsExpanded
		return n
	})
}

// Add appends child to the parent's children and expands the parent
func Add(nodes []console.TreeNode, parentID string, child console.TreeNode) []console.TreeNode {
	return rewrite(nodes, parentID, func(n console.TreeNode) console.TreeNode {
		n.Children = append(n.Children, cloneNode(child))
		n.IsExpanded = true
		return n
	})
}

// Update shallow-merges the non-nil fields of upd into the node
func Update(nodes []console.TreeNode, nodeID string, upd console.NodeUpdate) []console.TreeNode {
	return rewrite(nodes, nodeID, func(n console.TreeNode) console.TreeNode {
		if upd.Title != nil {
			n.Title = *upd.Title
		}
		if upd.IsExpanded != nil {
			n.IsExpanded = *upd.IsExpanded
		}
		if upd.Children != nil {
			n.Children = Clone(*upd.Children)
		}
		if upd.Metadata != nil {
			n.Metadata = cloneMetadata(upd.Metadata)
		}
		return n
	})
}

// Delete removes every node with the given id together with its subtree
func Delete(nodes []console.TreeNode, nodeID string) []console.TreeNode {
	if nodes == nil {
		return nil
	}
	out := make([]console.TreeNode, 0, len(nodes))
	for _, n := range nodes {
		if n.ID == nodeID {
			continue
		}
		n.Metadata = cloneMetadata(n.Metadata)
		n.Children = Delete(n.Children, nodeID)
		out = append(out, n)
	}
	return out
}

// Find returns a copy of the first node with the given id (depth-first)
func Find(nodes []console.TreeNode, nodeID string) (console.TreeNode, bool) {
	for _, n := range nodes {
		if n.ID == nodeID {
			return cloneNode(n), true
		}
		if found, ok := Find(n.Children, nodeID); ok {
			return found, true
		}
	}
	return console.TreeNode{}, false
}

// Contains reports whether any node in the forest has the given id
func Contains(nodes []console.TreeNode, nodeID string) bool {
	_, ok := Find(nodes, nodeID)
	return ok
}

// ParentChain returns the ancestors of the node, root first and direct parent
// last. Children are omitted from the returned nodes. A root node has an
// empty chain; nil means the id was not found.
func ParentChain(nodes []console.TreeNode, nodeID string) []console.TreeNode {
	chain := []console.TreeNode{}
	if !findParentChain(nodes, nodeID, &chain) {
		return nil
	}
	return chain
}

func findParentChain(nodes []console.TreeNode, nodeID string, chain *[]console.TreeNode) bool {
	for _, n := range nodes {
		if n.ID == nodeID {
			return true
		}
		if len(n.Children) == 0 {
			continue
		}
		ancestor := n
		ancestor.Children = nil
		ancestor.Metadata = cloneMetadata(n.Metadata)
		*chain = append(*chain, ancestor)
		if findParentChain(n.Children, nodeID, chain) {
			return true
		}
		*chain = (*chain)[:len(*chain)-1]
	}
	return false
}

// rewrite copies the forest, replacing every node whose id matches with fn
// applied to a fresh copy of it. Matched nodes are not descended into.
func rewrite(nodes []console.TreeNode, nodeID string, fn func(console.TreeNode) console.TreeNode) []console.TreeNode {
	if nodes == nil {
		return nil
	}
	out := make([]console.TreeNode, len(nodes))
	for i, n := range nodes {
		if n.ID == nodeID {
			out[i] = fn(cloneNode(n))
			continue
		}
		n.Metadata = cloneMetadata(n.Metadata)
		n.Children = rewrite(n.Children, nodeID, fn)
		out[i] = n
	}
	return out
}

func cloneNode(n console.TreeNode) console.TreeNode {
	n.Children = Clone(n.Children)
	n.Metadata = cloneMetadata(n.Metadata)
	return n
}

func cloneMetadata(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
