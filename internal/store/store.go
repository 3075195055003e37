// Package store holds the console's navigation tree and UI state.
//
// A Store is an explicit state container: it is created with an initial
// state, mutated only through Dispatch, and observed through Snapshot or
// Subscribe. Every dispatch produces a brand-new State value (the tree is
// rebuilt, never patched), and the swap happens under a single lock, so a
// reader holding an older snapshot never sees a half-applied mutation.
package store

import (
	"sync"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
)

// Listener receives the state produced by each dispatch.
// Listeners must not call Dispatch on the same store.
type Listener func(console.State)

type subscription struct {
	id int
	fn Listener
}

// Store is the shared console state container
type Store struct {
	mu    sync.RWMutex
	state console.State

	// dispatchMu orders dispatches and their notifications so listeners
	// see states in the same order they were produced.
	dispatchMu sync.Mutex
	subs       []subscription
	nextSubID  int
}

// DefaultState is the state of a fresh console: publisher level, nothing selected
func DefaultState() console.State {
	return console.State{
		SelectedLevel: console.LevelPublisher,
		TreeData:      []console.TreeNode{},
	}
}

// New creates a store seeded with initial
func New(initial console.State) *Store {
	initial.TreeData = Clone(initial.TreeData)
	initial.SelectedNodeID = copyString(initial.SelectedNodeID)
	initial.EditingField = copyString(initial.EditingField)
	return &Store{state: initial}
}

// Snapshot returns the current state. The returned value must be treated as
// read-only; it is never modified by later dispatches.
func (s *Store) Snapshot() console.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies the action, publishes the new state and notifies listeners
func (s *Store) Dispatch(action Action) console.State {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.RLock()
	current := s.state
	s.mu.RUnlock()

	next := action.apply(current)

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()

	for _, sub := range s.subs {
		sub.fn(next)
	}
	return next
}

// Subscribe registers fn for every future dispatch and returns a function
// that removes it
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.dispatchMu.Lock()
			defer s.dispatchMu.Unlock()
			kept := make([]subscription, 0, len(s.subs))
			for _, sub := range s.subs {
				if sub.id != id {
					kept = append(kept, sub)
				}
			}
			s.subs = kept
		})
	}
}

func (s *Store) SetTreeData(nodes []console.TreeNode) console.State {
	return s.Dispatch(SetTreeData{Nodes: nodes})
}

func (s *Store) SetSelectedNodeID(id *string) console.State {
	return s.Dispatch(SetSelectedNodeID{ID: id})
}

func (s *Store) SetSelectedLevel(level console.LevelType) console.State {
	return s.Dispatch(SetSelectedLevel{Level: level})
}

func (s *Store) ToggleNodeExpansion(nodeID string) console.State {
	return s.Dispatch(ToggleNodeExpansion{NodeID: nodeID})
}

func (s *Store) AddNode(parentID string, node console.TreeNode) console.State {
	return s.Dispatch(AddNode{ParentID: parentID, Node: node})
}

// AddUniqueNode adds node under parentID in one dispatch unless the parent is
// missing or the id is taken; the bool reports whether it was added
func (s *Store) AddUniqueNode(parentID string, node console.TreeNode) (console.State, bool) {
	var added bool
	state := s.Dispatch(AddUniqueNode{ParentID: parentID, Node: node, Added: &added})
	return state, added
}

func (s *Store) Navigate(level console.LevelType, nodeID *string) console.State {
	return s.Dispatch(Navigate{Level: level, NodeID: nodeID})
}

func (s *Store) UpdateNode(nodeID string, updates console.NodeUpdate) console.State {
	return s.Dispatch(UpdateNode{NodeID: nodeID, Updates: updates})
}

func (s *Store) DeleteNode(nodeID string) console.State {
	return s.Dispatch(DeleteNode{NodeID: nodeID})
}

func (s *Store) ToggleSidebar() console.State {
	return s.Dispatch(ToggleSidebar{})
}

func (s *Store) ToggleEditMode() console.State {
	return s.Dispatch(ToggleEditMode{})
}

func (s *Store) SetEditingField(field *string) console.State {
	return s.Dispatch(SetEditingField{Field: field})
}
