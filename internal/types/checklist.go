package types

// ChecklistItem is a single packable thing. Checked defaults to false and
// is only ever flipped by an explicit user toggle, never by the parser.
type ChecklistItem struct {
  Label     string      `json:"label"`
  Checked   bool        `json:"checked"`
}

// ChecklistSection is a titled group of checklist items derived from one
// heading-like line of generated text. Title is the canonical field name
// for the heading everywhere in this codebase.
type ChecklistSection struct {
  Title     string            `json:"title"`
  Items     []ChecklistItem   `json:"items"`
  Expanded  bool              `json:"expanded"`
}

// Activity is a suggested thing to do at the destination. Description may
// be empty when the suggestion came from unstructured text.
type Activity struct {
  Name          string      `json:"name"`
  Description   string      `json:"description"`
}
