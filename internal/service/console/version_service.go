package console

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	consoleRepo "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/repositories/console"
	consoleSvc "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/services/console"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/filemeta"
)

// versionService implements the VersionService interface
type versionService struct {
	fileRepo  consoleRepo.FileVersionRepository
	draftRepo consoleRepo.DraftRepository
	logger    *slog.Logger
	now       func() time.Time
}

// NewVersionService creates a new version service
func NewVersionService(
	fileRepo consoleRepo.FileVersionRepository,
	draftRepo consoleRepo.DraftRepository,
	logger *slog.Logger,
) consoleSvc.VersionService {
	return &versionService{
		fileRepo:  fileRepo,
		draftRepo: draftRepo,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *versionService) ListDrafts(ctx context.Context) ([]console.Draft, error) {
	return s.draftRepo.List(ctx)
}

func (s *versionService) GetDraft(ctx context.Context, draftID string) (*console.Draft, error) {
	return s.draftRepo.GetByID(ctx, draftID)
}

func (s *versionService) ListChapters(ctx context.Context, draftID string) ([]console.ChapterGroup, error) {
	files, err := s.draftFiles(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return GroupFilesByChapter(files), nil
}

// ListFiles returns files newest first. An empty partType returns every file.
func (s *versionService) ListFiles(ctx context.Context, draftID, partType string) ([]console.FileVersion, error) {
	files, err := s.draftFiles(ctx, draftID)
	if err != nil {
		return nil, err
	}
	files = canonicalOrder(files)
	if partType == "" {
		return files, nil
	}
	return FilterByPartType(files, partType), nil
}

func (s *versionService) PartTypes(ctx context.Context, draftID string) ([]string, error) {
	files, err := s.draftFiles(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return UniquePartTypes(files), nil
}

// UploadVersion records a new file version. The new file becomes the latest
// version of its chapter and is selected only if the chapter had no
// selected version yet.
func (s *versionService) UploadVersion(ctx context.Context, req *consoleSvc.UploadVersionRequest) (*console.FileVersion, error) {
	if err := validateUploadRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if _, err := s.draftRepo.GetByID(ctx, req.DraftID); err != nil {
		return nil, err
	}

	filename := strings.TrimSpace(req.Filename)
	key := GroupKey(filemeta.Parse(filename))

	file := console.FileVersion{
		ID:            uuid.NewString(),
		DraftID:       req.DraftID,
		Filename:      filename,
		UploadDate:    s.now(),
		UploadedBy:    strings.TrimSpace(req.UploadedBy),
		UploadComment: strings.TrimSpace(req.UploadComment),
		FileSize:      copyInt64(req.FileSize),
		Description:   copyString(req.Description),
	}
	if req.UploadType == consoleSvc.UploadNewChapter {
		title := strings.TrimSpace(req.NewChapterTitle)
		file.Description = &title
	}

	var created console.FileVersion
	_, err := s.fileRepo.ReplaceDraft(ctx, req.DraftID, func(files []console.FileVersion) ([]console.FileVersion, error) {
		exists, hasSelected, targetExists := false, false, false
		for _, f := range files {
			fileKey := GroupKey(filemeta.Parse(f.Filename))
			if fileKey == key {
				exists = true
				hasSelected = hasSelected || f.IsSelected
			}
			if fileKey == req.TargetChapterID {
				targetExists = true
			}
		}

		switch req.UploadType {
		case consoleSvc.UploadNewChapter:
			if exists {
				return nil, &domain.ConflictError{
					Message:      fmt.Sprintf("chapter %s already exists in draft %s", key, req.DraftID),
					ResourceType: "chapter",
					ResourceID:   key,
				}
			}
		case consoleSvc.UploadAddToExisting:
			if !targetExists {
				return nil, domain.NewNotFound("chapter", req.TargetChapterID)
			}
			if key != req.TargetChapterID {
				return nil, fmt.Errorf("%w: filename %q belongs to chapter %s, not %s",
					domain.ErrValidation, filename, key, req.TargetChapterID)
			}
		}

		file.IsSelected = !hasSelected
		next := RecomputeLatest(append(files, file))
		created = next[len(next)-1]
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("file version uploaded",
		"draft_id", req.DraftID,
		"file_id", created.ID,
		"chapter", key,
		"upload_type", req.UploadType,
		"selected", created.IsSelected,
	)

	return &created, nil
}

// SelectVersion marks fileID as the selected version of its chapter and
// clears the flag on its siblings in one atomic draft update
func (s *versionService) SelectVersion(ctx context.Context, fileID string) (*console.ChapterGroup, error) {
	target, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	files, err := s.fileRepo.ReplaceDraft(ctx, target.DraftID, func(files []console.FileVersion) ([]console.FileVersion, error) {
		next, ok := SelectVersion(files, fileID)
		if !ok {
			return nil, domain.NewNotFound("file", fileID)
		}
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	key := GroupKey(filemeta.Parse(target.Filename))
	for _, group := range GroupFilesByChapter(files) {
		if group.ID == key {
			s.logger.Info("file version selected",
				"draft_id", target.DraftID,
				"file_id", fileID,
				"chapter", key,
			)
			return &group, nil
		}
	}
	return nil, domain.NewNotFound("chapter", key)
}

// UpdateFile edits file metadata. Renaming a file can move it to another
// chapter, so latest flags are recomputed afterwards.
func (s *versionService) UpdateFile(ctx context.Context, fileID string, req *consoleSvc.UpdateFileRequest) (*console.FileVersion, error) {
	if err := validateUpdateFileRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	target, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	var updated console.FileVersion
	_, err = s.fileRepo.ReplaceDraft(ctx, target.DraftID, func(files []console.FileVersion) ([]console.FileVersion, error) {
		idx := -1
		for i := range files {
			if files[i].ID == fileID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, domain.NewNotFound("file", fileID)
		}

		f := &files[idx]
		if req.Filename != nil {
			f.Filename = strings.TrimSpace(*req.Filename)
		}
		if req.UploadComment != nil {
			f.UploadComment = strings.TrimSpace(*req.UploadComment)
		}
		if req.Description.Present {
			f.Description = copyString(req.Description.Value)
		}

		next := RecomputeLatest(files)
		if req.Filename != nil {
			next = ensureSingleSelected(next, fileID)
		}
		updated = next[idx]
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("file version updated",
		"file_id", fileID,
		"draft_id", target.DraftID,
		"renamed", req.Filename != nil,
		"description_changed", req.Description.Present,
	)

	return &updated, nil
}

// ChapterNodes derives the part nodes of a draft: one per chapter group in
// chapter order, each holding one docx leaf per version (newest first)
func (s *versionService) ChapterNodes(ctx context.Context, draftID string) ([]console.TreeNode, error) {
	files, err := s.draftFiles(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return buildChapterNodes(draftID, GroupFilesByChapter(files)), nil
}

func (s *versionService) draftFiles(ctx context.Context, draftID string) ([]console.FileVersion, error) {
	if _, err := s.draftRepo.GetByID(ctx, draftID); err != nil {
		return nil, err
	}
	return s.fileRepo.ListByDraft(ctx, draftID)
}

// ensureSingleSelected keeps the at-most-one-selected rule after a rename
// moved fileID into a group that already had a selected version. The moved
// file keeps its flag only if it was the group's sole selection.
func ensureSingleSelected(files []console.FileVersion, fileID string) []console.FileVersion {
	var moved *console.FileVersion
	for i := range files {
		if files[i].ID == fileID {
			moved = &files[i]
			break
		}
	}
	if moved == nil || !moved.IsSelected {
		return files
	}

	key := GroupKey(filemeta.Parse(moved.Filename))
	for _, f := range files {
		if f.ID != fileID && f.IsSelected && GroupKey(filemeta.Parse(f.Filename)) == key {
			moved.IsSelected = false
			break
		}
	}
	return files
}
