package handler

import (
	"log/slog"
	"net/http"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	consoleSvc "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/services/console"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/httputil"
)

// TreeHandler handles HTTP requests for the navigation tree and UI state
type TreeHandler struct {
	treeService consoleSvc.TreeService
	logger      *slog.Logger
}

// NewTreeHandler creates a new tree handler
func NewTreeHandler(treeService consoleSvc.TreeService, logger *slog.Logger) *TreeHandler {
	return &TreeHandler{
		treeService: treeService,
		logger:      logger,
	}
}

// GetState returns the full console state
// GET /api/state
func (h *TreeHandler) GetState(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.treeService.State())
}

type replaceTreeBody struct {
	TreeData []console.TreeNode `json:"treeData"`
}

// ReplaceTree replaces the whole forest
// PUT /api/tree
func (h *TreeHandler) ReplaceTree(w http.ResponseWriter, r *http.Request) {
	var body replaceTreeBody
	if err := httputil.ParseJSON(w, r, &body); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := h.treeService.SetTreeData(r.Context(), body.TreeData)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, state)
}

// AddNode creates a child node
// POST /api/tree/nodes
func (h *TreeHandler) AddNode(w http.ResponseWriter, r *http.Request) {
	var req consoleSvc.AddNodeRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	node, err := h.treeService.AddNode(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, node)
}

// UpdateNode shallow-merges fields into a node
// PATCH /api/tree/nodes/{id}
func (h *TreeHandler) UpdateNode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req consoleSvc.UpdateNodeRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	node, err := h.treeService.UpdateNode(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, node)
}

// DeleteNode removes a node and its subtree
// DELETE /api/tree/nodes/{id}
func (h *TreeHandler) DeleteNode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.treeService.DeleteNode(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondNoContent(w)
}

// ToggleNode flips a node's expanded flag
// POST /api/tree/nodes/{id}/toggle
func (h *TreeHandler) ToggleNode(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	node, err := h.treeService.ToggleNode(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, node)
}

// SyncDraft rebuilds a draft's chapter nodes from its uploaded files
// POST /api/drafts/{id}/sync-tree
func (h *TreeHandler) SyncDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	node, err := h.treeService.SyncDraftChapters(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, node)
}

// Navigate sets the selected level and node
// PUT /api/navigation
func (h *TreeHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req consoleSvc.SelectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := h.treeService.Select(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, state)
}

// ToggleSidebar collapses or expands the sidebar
// POST /api/ui/sidebar/toggle
func (h *TreeHandler) ToggleSidebar(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.treeService.ToggleSidebar(r.Context()))
}

// ToggleEditMode switches edit mode on or off
// POST /api/ui/edit-mode/toggle
func (h *TreeHandler) ToggleEditMode(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.treeService.ToggleEditMode(r.Context()))
}

type editingFieldBody struct {
	Field httputil.OptionalString `json:"field"`
}

// SetEditingField sets the inline editing field, or clears it with null
// PUT /api/ui/editing-field
func (h *TreeHandler) SetEditingField(w http.ResponseWriter, r *http.Request) {
	var body editingFieldBody
	if err := httputil.ParseJSON(w, r, &body); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !body.Field.Present {
		httputil.RespondError(w, http.StatusBadRequest, "field is required (use null to clear)")
		return
	}

	state, err := h.treeService.SetEditingField(r.Context(), body.Field.Value)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, state)
}
