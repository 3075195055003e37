package handler

import (
	"log/slog"
	"net/http"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	consoleSvc "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/services/console"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/httputil"
)

// LevelHandler serves the header info and context actions for a selection
type LevelHandler struct {
	resolver    consoleSvc.LevelResolver
	treeService consoleSvc.TreeService
	logger      *slog.Logger
}

// NewLevelHandler creates a new level handler
func NewLevelHandler(resolver consoleSvc.LevelResolver, treeService consoleSvc.TreeService, logger *slog.Logger) *LevelHandler {
	return &LevelHandler{
		resolver:    resolver,
		treeService: treeService,
		logger:      logger,
	}
}

type levelResponse struct {
	Level   console.LevelType    `json:"level"`
	NodeID  *string              `json:"nodeId"`
	Info    console.LevelInfo    `json:"info"`
	Actions console.LevelActions `json:"actions"`
}

// GetLevel resolves info and actions. Without query parameters the
// current selection from the console state is used.
// GET /api/level?level=&node_id=
func (h *LevelHandler) GetLevel(w http.ResponseWriter, r *http.Request) {
	state := h.treeService.State()
	level, nodeID := state.SelectedLevel, state.SelectedNodeID

	if q := httputil.QueryString(r, "level"); q != nil {
		level = console.LevelType(*q)
		if !level.Valid() {
			httputil.RespondError(w, http.StatusBadRequest, "unknown level "+*q)
			return
		}
		nodeID = httputil.QueryString(r, "node_id")
	} else if q := httputil.QueryString(r, "node_id"); q != nil {
		nodeID = q
	}

	httputil.RespondJSON(w, http.StatusOK, levelResponse{
		Level:   level,
		NodeID:  nodeID,
		Info:    h.resolver.CurrentLevelInfo(r.Context(), level, nodeID),
		Actions: h.resolver.LevelActions(r.Context(), level, nodeID),
	})
}
