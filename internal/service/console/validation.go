package console

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/config"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	consoleSvc "github.com/seanleeopenlaw/DelambeAdmin/internal/domain/services/console"
)

var (
	validLevels = func() []interface{} {
		out := make([]interface{}, len(console.AllLevels))
		for i, l := range console.AllLevels {
			out[i] = l
		}
		return out
	}()

	// notBlank rejects whitespace-only text. Nil pointers pass; pair it with
	// Required where absence is also an error.
	notBlank = validation.By(func(value interface{}) error {
		v, isNil := validation.Indirect(value)
		if isNil {
			return nil
		}
		s, _ := v.(string)
		if strings.TrimSpace(s) == "" {
			return errors.New("cannot be blank")
		}
		return nil
	})
)

func validateAddNodeRequest(req *consoleSvc.AddNodeRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ParentID, validation.Required),
		validation.Field(&req.Type, validation.Required, validation.In(validLevels...)),
		validation.Field(&req.Title,
			validation.Required,
			notBlank,
			validation.Length(1, config.MaxNodeTitleLength),
		),
	)
}

func validateUpdateNodeRequest(req *consoleSvc.UpdateNodeRequest) error {
	if req.Title == nil && req.IsExpanded == nil && req.Metadata == nil {
		return errors.New("no fields to update")
	}
	return validation.ValidateStruct(req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(1, config.MaxNodeTitleLength)),
	)
}

func validateSelectRequest(req *consoleSvc.SelectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Level, validation.Required, validation.In(validLevels...)),
		validation.Field(&req.NodeID, validation.NilOrNotEmpty),
	)
}

func validateUploadRequest(req *consoleSvc.UploadVersionRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.DraftID, validation.Required),
		validation.Field(&req.Filename,
			validation.Required,
			notBlank,
			validation.Length(1, config.MaxFilenameLength),
		),
		validation.Field(&req.UploadedBy, validation.Required, notBlank, validation.Length(1, config.MaxUploaderLength)),
		validation.Field(&req.UploadComment, validation.Required, notBlank, validation.Length(1, config.MaxUploadCommentLength)),
		validation.Field(&req.Description, validation.NilOrNotEmpty, validation.Length(1, config.MaxDescriptionLength)),
		validation.Field(&req.FileSize, validation.Min(int64(0))),
		validation.Field(&req.UploadType,
			validation.Required,
			validation.In(consoleSvc.UploadNewChapter, consoleSvc.UploadAddToExisting),
		),
		validation.Field(&req.TargetChapterID,
			validation.When(req.UploadType == consoleSvc.UploadAddToExisting, validation.Required),
		),
		validation.Field(&req.NewChapterTitle,
			validation.When(req.UploadType == consoleSvc.UploadNewChapter, validation.Required, notBlank),
			validation.Length(0, config.MaxDescriptionLength),
		),
	)
}

func validateUpdateFileRequest(req *consoleSvc.UpdateFileRequest) error {
	if req.Filename == nil && req.UploadComment == nil && !req.Description.Present {
		return errors.New("no fields to update")
	}
	if req.Description.Present && req.Description.Value != nil {
		if err := validation.Validate(*req.Description.Value, validation.Length(0, config.MaxDescriptionLength)); err != nil {
			return validation.Errors{"description": err}
		}
	}
	return validation.ValidateStruct(req,
		validation.Field(&req.Filename, validation.NilOrNotEmpty, notBlank, validation.Length(1, config.MaxFilenameLength)),
		validation.Field(&req.UploadComment, validation.NilOrNotEmpty, notBlank, validation.Length(1, config.MaxUploadCommentLength)),
	)
}
