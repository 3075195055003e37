package config

const (
	// MaxNodeTitleLength is the maximum length for tree node titles.
	// Matches the VARCHAR(255) convention used for names elsewhere.
	MaxNodeTitleLength = 255

	// MaxFilenameLength is the maximum length for uploaded filenames.
	MaxFilenameLength = 255

	// MaxUploaderLength is the maximum length for the uploadedBy field.
	MaxUploaderLength = 120

	// MaxUploadCommentLength is the maximum length for upload comments.
	// Long enough for a detailed revision note.
	MaxUploadCommentLength = 2000

	// MaxDescriptionLength is the maximum length for file descriptions,
	// which double as chapter titles.
	MaxDescriptionLength = 500

	// MaxEditingFieldLength is the maximum length for the inline editing field name.
	MaxEditingFieldLength = 100

	// MaxTreeDepth bounds nesting when a whole tree is replaced.
	// The hierarchy has seven levels; anything deeper is malformed.
	MaxTreeDepth = 8
)
