package console

import (
	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/filemeta"
)

// SelectVersion returns a copy of files in which fileID is the only selected
// file of its chapter group. Files in other groups are untouched. ok is false
// when fileID is not in the list.
func SelectVersion(files []console.FileVersion, fileID string) ([]console.FileVersion, bool) {
	targetKey := ""
	for _, f := range files {
		if f.ID == fileID {
			targetKey = GroupKey(filemeta.Parse(f.Filename))
			break
		}
	}
	if targetKey == "" {
		return copyFiles(files), false
	}

	out := copyFiles(files)
	for i := range out {
		if GroupKey(filemeta.Parse(out[i].Filename)) != targetKey {
			continue
		}
		out[i].IsSelected = out[i].ID == fileID
	}
	return out, true
}

// RecomputeLatest returns a copy of files with isLatest set on exactly the
// newest file of every chapter group
func RecomputeLatest(files []console.FileVersion) []console.FileVersion {
	newest := make(map[string]console.FileVersion)
	for _, f := range files {
		key := GroupKey(filemeta.Parse(f.Filename))
		if cur, ok := newest[key]; !ok || newerThan(f, cur) {
			newest[key] = f
		}
	}

	out := copyFiles(files)
	for i := range out {
		key := GroupKey(filemeta.Parse(out[i].Filename))
		out[i].IsLatest = newest[key].ID == out[i].ID
	}
	return out
}

func copyFiles(files []console.FileVersion) []console.FileVersion {
	out := make([]console.FileVersion, len(files))
	for i, f := range files {
		f.FileSize = copyInt64(f.FileSize)
		f.Description = copyString(f.Description)
		out[i] = f
	}
	return out
}

func copyInt64(n *int64) *int64 {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}
