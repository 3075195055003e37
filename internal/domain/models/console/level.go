package console

// LevelInfo is the header display bundle for the current selection
type LevelInfo struct {
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	IconName  string `json:"iconName"`
	Status    string `json:"status"`
	Metadata  string `json:"metadata,omitempty"`
	EditLabel string `json:"editLabel"`
}

// ActionVariant is the visual weight of an action button
type ActionVariant string

const (
	VariantDefault   ActionVariant = "default"
	VariantPrimary   ActionVariant = "primary"
	VariantSecondary ActionVariant = "secondary"
	VariantGhost     ActionVariant = "ghost"
	VariantDanger    ActionVariant = "danger"
)

// LevelAction describes one context action offered for a level
type LevelAction struct {
	Label       string        `json:"label"`
	Action      string        `json:"action"`
	Description string        `json:"description"`
	Variant     ActionVariant `json:"variant"`
}

// PreviewAction describes the preview button for a level
type PreviewAction struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// LevelActions is the set of actions available for the current selection
type LevelActions struct {
	Primary   *LevelAction  `json:"primary,omitempty"`
	Secondary *LevelAction  `json:"secondary,omitempty"`
	Preview   PreviewAction `json:"preview"`
}
