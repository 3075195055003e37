package console

import (
	"sort"
	"strings"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/filemeta"
)

// GroupKey identifies the chapter group a parsed file belongs to
func GroupKey(meta console.FileMetadata) string {
	number := "none"
	if meta.Number != nil {
		number = *meta.Number
	}
	return meta.PartType + "_" + number
}

// GroupFilesByChapter groups a flat file list into chapter groups.
//
// The result does not depend on input order: files are visited newest first
// (ties broken by id), so a group's title and description come from its
// newest file. The title is that file's description, or the parsed display
// title when it has none; older files are not consulted. Versions are ordered
// newest first and groups by sort key.
func GroupFilesByChapter(files []console.FileVersion) []console.ChapterGroup {
	ordered := canonicalOrder(files)

	groups := make(map[string]*console.ChapterGroup)
	keys := make([]string, 0)

	for _, file := range ordered {
		meta := filemeta.Parse(file.Filename)
		key := GroupKey(meta)

		group, ok := groups[key]
		if !ok {
			title := filemeta.DisplayTitle(meta)
			if file.Description != nil && *file.Description != "" {
				title = *file.Description
			}
			group = &console.ChapterGroup{
				ID:          key,
				Title:       title,
				PartType:    meta.PartType,
				Number:      copyString(meta.Number),
				SortKey:     filemeta.SortKey(meta),
				Versions:    []console.FileVersion{},
				Description: copyString(file.Description),
			}
			groups[key] = group
			keys = append(keys, key)
		}

		group.Versions = append(group.Versions, file)
		if file.IsLatest && group.LatestVersion == nil {
			latest := file
			group.LatestVersion = &latest
		}
		if file.IsSelected && group.SelectedVersion == nil {
			selected := file
			group.SelectedVersion = &selected
		}
	}

	result := make([]console.ChapterGroup, 0, len(keys))
	for _, key := range keys {
		result = append(result, *groups[key])
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].SortKey != result[j].SortKey {
			return result[i].SortKey < result[j].SortKey
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// UniquePartTypes returns the part types present, in chapter order
func UniquePartTypes(files []console.FileVersion) []string {
	seen := make(map[string]bool)
	types := make([]string, 0)
	for _, group := range GroupFilesByChapter(files) {
		if !seen[group.PartType] {
			seen[group.PartType] = true
			types = append(types, group.PartType)
		}
	}
	return types
}

// FilterByPartType keeps the files whose parsed part type matches, in input order
func FilterByPartType(files []console.FileVersion, partType string) []console.FileVersion {
	out := make([]console.FileVersion, 0, len(files))
	for _, f := range files {
		if filemeta.Parse(f.Filename).PartType == partType {
			out = append(out, f)
		}
	}
	return out
}

// VersionDisplayName renders "v3 - Feb 20, 2024 by Name"
func VersionDisplayName(file console.FileVersion) string {
	var b strings.Builder
	b.WriteString(filemeta.VersionFromFilename(file.Filename))
	b.WriteString(" - ")
	b.WriteString(file.UploadDate.UTC().Format("Jan 2, 2006"))
	b.WriteString(" by ")
	b.WriteString(file.UploadedBy)
	return b.String()
}

// canonicalOrder returns a copy sorted by upload date descending, then id
func canonicalOrder(files []console.FileVersion) []console.FileVersion {
	out := make([]console.FileVersion, len(files))
	copy(out, files)
	sort.SliceStable(out, func(i, j int) bool {
		return newerThan(out[i], out[j])
	})
	return out
}

func newerThan(a, b console.FileVersion) bool {
	if !a.UploadDate.Equal(b.UploadDate) {
		return a.UploadDate.After(b.UploadDate)
	}
	return a.ID < b.ID
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
