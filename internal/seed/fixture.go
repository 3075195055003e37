// Package seed loads the console's startup fixture: the navigation tree, the
// draft registry and the file history of every draft.
package seed

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/seanleeopenlaw/DelambeAdmin/internal/domain/models/console"
)

//go:embed data/*.yaml
var dataFiles embed.FS

const defaultFixture = "data/console.yaml"

// Fixture is the decoded startup data
type Fixture struct {
	Tree   []console.TreeNode
	Drafts []console.Draft
	Files  []console.FileVersion
}

type fixtureFile struct {
	Tree     []console.TreeNode `yaml:"tree"`
	Editions []fixtureEdition   `yaml:"editions"`
}

type fixtureEdition struct {
	ID     string         `yaml:"id"`
	Name   string         `yaml:"name"`
	Drafts []fixtureDraft `yaml:"drafts"`
}

type fixtureDraft struct {
	console.Draft `yaml:",inline"`
	Files         []console.FileVersion `yaml:"files"`
}

// Load decodes the embedded fixture
func Load() (*Fixture, error) {
	data, err := dataFiles.ReadFile(defaultFixture)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", defaultFixture, err)
	}
	return Parse(data)
}

// Parse decodes a fixture document. Drafts inherit the edition they are
// listed under and files inherit their draft.
func Parse(data []byte) (*Fixture, error) {
	var raw fixtureFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fixture: %w", err)
	}

	fx := &Fixture{
		Tree:   raw.Tree,
		Drafts: make([]console.Draft, 0),
		Files:  make([]console.FileVersion, 0),
	}
	if fx.Tree == nil {
		fx.Tree = []console.TreeNode{}
	}

	seenFiles := make(map[string]bool)
	for _, edition := range raw.Editions {
		for _, d := range edition.Drafts {
			draft := d.Draft
			draft.EditionID = edition.ID
			if draft.Status == "" {
				draft.Status = console.DraftStatusDraft
			}
			fx.Drafts = append(fx.Drafts, draft)

			for _, f := range d.Files {
				if seenFiles[f.ID] {
					return nil, fmt.Errorf("duplicate file id %s in draft %s", f.ID, draft.ID)
				}
				seenFiles[f.ID] = true
				f.DraftID = draft.ID
				fx.Files = append(fx.Files, f)
			}
		}
	}

	return fx, nil
}

// InitialState is the console state a fresh installation starts from
func (f *Fixture) InitialState() console.State {
	return console.State{
		SelectedLevel: console.LevelPublisher,
		TreeData:      f.Tree,
	}
}
