package handler

import "net/http"

// Handlers groups every HTTP handler the server mounts
type Handlers struct {
	Health  *HealthHandler
	Tree    *TreeHandler
	Level   *LevelHandler
	Version *VersionHandler
}

// RegisterRoutes mounts the console API on mux (Go 1.22+ patterns)
func RegisterRoutes(mux *http.ServeMux, h Handlers) {
	mux.HandleFunc("GET /health", h.Health.HealthCheck)

	// Console state and navigation tree
	mux.HandleFunc("GET /api/state", h.Tree.GetState)
	mux.HandleFunc("PUT /api/tree", h.Tree.ReplaceTree)
	mux.HandleFunc("POST /api/tree/nodes", h.Tree.AddNode)
	mux.HandleFunc("PATCH /api/tree/nodes/{id}", h.Tree.UpdateNode)
	mux.HandleFunc("DELETE /api/tree/nodes/{id}", h.Tree.DeleteNode)
	mux.HandleFunc("POST /api/tree/nodes/{id}/toggle", h.Tree.ToggleNode)

	// Selection and UI flags
	mux.HandleFunc("PUT /api/navigation", h.Tree.Navigate)
	mux.HandleFunc("POST /api/ui/sidebar/toggle", h.Tree.ToggleSidebar)
	mux.HandleFunc("POST /api/ui/edit-mode/toggle", h.Tree.ToggleEditMode)
	mux.HandleFunc("PUT /api/ui/editing-field", h.Tree.SetEditingField)

	// Header info and context actions
	mux.HandleFunc("GET /api/level", h.Level.GetLevel)

	// Drafts and file versions
	mux.HandleFunc("GET /api/drafts", h.Version.ListDrafts)
	mux.HandleFunc("GET /api/drafts/{id}", h.Version.GetDraft)
	mux.HandleFunc("GET /api/drafts/{id}/chapters", h.Version.ListChapters)
	mux.HandleFunc("GET /api/drafts/{id}/files", h.Version.ListFiles)
	mux.HandleFunc("GET /api/drafts/{id}/part-types", h.Version.PartTypes)
	mux.HandleFunc("POST /api/drafts/{id}/files", h.Version.UploadVersion)
	mux.HandleFunc("POST /api/drafts/{id}/sync-tree", h.Tree.SyncDraft)
	mux.HandleFunc("PATCH /api/files/{id}", h.Version.UpdateFile)
	mux.HandleFunc("POST /api/files/{id}/select", h.Version.SelectVersion)
}
