package console

import (
	"context"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
)

// LevelResolver maps the current selection to header info and actions
type LevelResolver interface {
	CurrentLevelInfo(ctx context.Context, level console.LevelType, nodeID *string) console.LevelInfo
	LevelActions(ctx context.Context, level console.LevelType, nodeID *string) console.LevelActions
}
