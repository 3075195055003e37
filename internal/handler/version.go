package handler

import (
	"log/slog"
	"net/http"

	consoleSvc "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/services/console"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/httputil"
)

// VersionHandler handles draft, chapter and file version requests
type VersionHandler struct {
	versionService consoleSvc.VersionService
	logger         *slog.Logger
}

// NewVersionHandler creates a new version handler
func NewVersionHandler(versionService consoleSvc.VersionService, logger *slog.Logger) *VersionHandler {
	return &VersionHandler{
		versionService: versionService,
		logger:         logger,
	}
}

// ListDrafts returns the draft registry
// GET /api/drafts
func (h *VersionHandler) ListDrafts(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.versionService.ListDrafts(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, drafts)
}

// GetDraft returns one draft
// GET /api/drafts/{id}
func (h *VersionHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	draft, err := h.versionService.GetDraft(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, draft)
}

// ListChapters returns a draft's files grouped by chapter
// GET /api/drafts/{id}/chapters
func (h *VersionHandler) ListChapters(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	groups, err := h.versionService.ListChapters(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, groups)
}

// ListFiles returns a draft's files, newest first
// GET /api/drafts/{id}/files?part_type=
func (h *VersionHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	partType := ""
	if q := httputil.QueryString(r, "part_type"); q != nil {
		partType = *q
	}

	files, err := h.versionService.ListFiles(r.Context(), id, partType)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, files)
}

// PartTypes returns the part types present in a draft
// GET /api/drafts/{id}/part-types
func (h *VersionHandler) PartTypes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	types, err := h.versionService.PartTypes(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, types)
}

// UploadVersion records a new file version
// POST /api/drafts/{id}/files
func (h *VersionHandler) UploadVersion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req consoleSvc.UploadVersionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.DraftID = id

	file, err := h.versionService.UploadVersion(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, file)
}

// SelectVersion makes a file the selected version of its chapter
// POST /api/files/{id}/select
func (h *VersionHandler) SelectVersion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	group, err := h.versionService.SelectVersion(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, group)
}

// updateFileBody is the PATCH DTO. Description distinguishes absent from null.
type updateFileBody struct {
	Filename      *string                 `json:"filename"`
	UploadComment *string                 `json:"upload_comment"`
	Description   httputil.OptionalString `json:"description"`
}

// UpdateFile edits file metadata
// PATCH /api/files/{id}
func (h *VersionHandler) UpdateFile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var body updateFileBody
	if err := httputil.ParseJSON(w, r, &body); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req := consoleSvc.UpdateFileRequest{
		Filename:      body.Filename,
		UploadComment: body.UploadComment,
		Description: consoleSvc.OptionalText{
			Present: body.Description.Present,
			Value:   body.Description.Value,
		},
	}

	file, err := h.versionService.UpdateFile(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}
