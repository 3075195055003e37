package console

import (
	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
	"github.com/seanleeopenlaw/DelambeAdmin/internal/filemeta"
)

// Metadata keys set on derived chapter and file nodes
const (
	MetaDraftID          = "draftId"
	MetaGroupID          = "groupId"
	MetaPartType         = "partType"
	MetaSortKey          = "sortKey"
	MetaVersionCount     = "versionCount"
	MetaSelectedFilename = "selectedFilename"
	MetaLatestFilename   = "latestFilename"
	MetaVersion          = "version"
	MetaUploadedBy       = "uploadedBy"
	MetaIsLatest         = "isLatest"
	MetaIsSelected       = "isSelected"
)

// ChapterNodeID is the tree id of a derived chapter node.
// Group ids repeat across drafts, so the draft id is part of it.
func ChapterNodeID(draftID, groupID string) string {
	return draftID + "/" + groupID
}

// buildChapterNodes turns ordered chapter groups into part nodes with docx leaves
func buildChapterNodes(draftID string, groups []console.ChapterGroup) []console.TreeNode {
	nodes := make([]console.TreeNode, 0, len(groups))

	for _, group := range groups {
		meta := map[string]any{
			MetaDraftID:      draftID,
			MetaGroupID:      group.ID,
			MetaPartType:     group.PartType,
			MetaSortKey:      group.SortKey,
			MetaVersionCount: len(group.Versions),
		}
		if group.SelectedVersion != nil {
			meta[MetaSelectedFilename] = group.SelectedVersion.Filename
		}
		if group.LatestVersion != nil {
			meta[MetaLatestFilename] = group.LatestVersion.Filename
		}

		part := console.TreeNode{
			ID:       ChapterNodeID(draftID, group.ID),
			Type:     console.LevelPart,
			Title:    group.Title,
			Children: make([]console.TreeNode, 0, len(group.Versions)),
			Metadata: meta,
		}

		for _, file := range group.Versions {
			part.Children = append(part.Children, console.TreeNode{
				ID:    file.ID,
				Type:  console.LevelDocx,
				Title: file.Filename,
				Metadata: map[string]any{
					MetaDraftID:    draftID,
					MetaGroupID:    group.ID,
					MetaVersion:    filemeta.VersionFromFilename(file.Filename),
					MetaUploadedBy: file.UploadedBy,
					MetaIsLatest:   file.IsLatest,
					MetaIsSelected: file.IsSelected,
				},
			})
		}

		nodes = append(nodes, part)
	}

	return nodes
}
