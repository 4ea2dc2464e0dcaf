package checklist

import (
  "fmt"

  "github.com/yungbote/tripwise-backend/internal/types"
)

// ToggleItem returns a new sections slice with the checked flag of one
// item flipped. The input slice is left untouched so stale references
// never observe the mutation.
func ToggleItem(sections []types.ChecklistSection, sectionIdx, itemIdx int) ([]types.ChecklistSection, error) {
  if sectionIdx < 0 || sectionIdx >= len(sections) {
    return nil, fmt.Errorf("section index %d out of range", sectionIdx)
  }
  if itemIdx < 0 || itemIdx >= len(sections[sectionIdx].Items) {
    return nil, fmt.Errorf("item index %d out of range", itemIdx)
  }
  out := make([]types.ChecklistSection, len(sections))
  copy(out, sections)
  items := make([]types.ChecklistItem, len(sections[sectionIdx].Items))
  copy(items, sections[sectionIdx].Items)
  items[itemIdx].Checked = !items[itemIdx].Checked
  out[sectionIdx].Items = items
  return out, nil
}
