package checklist

import (
  "strings"

  "github.com/yungbote/tripwise-backend/internal/types"
)

// leadingMarkers is the set of characters that may prefix an item line:
// bullets, numbering and the dot after a number.
const leadingMarkers = "-*•0123456789."

// Parse converts free-form packing-list text into ordered sections of
// items. This is a best-effort heuristic over loosely formatted model
// output, not a formal grammar: heading detection wins over item
// detection, lines before the first heading are dropped, and malformed
// input degrades to an empty result rather than an error.
func Parse(text string) []types.ChecklistSection {
  lines := SplitLines(text)
  sections := []types.ChecklistSection{}
  for _, line := range lines {
    if isHeading(line) {
      title := normalizeTitle(line)
      if title == "" {
        // A bare emphasis marker normalizes to nothing; no section
        // without a title.
        continue
      }
      sections = append(sections, types.ChecklistSection{
        Title:    title,
        Items:    []types.ChecklistItem{},
        Expanded: true,
      })
      continue
    }
    if len(sections) == 0 {
      continue
    }
    current := &sections[len(sections)-1]
    current.Items = append(current.Items, types.ChecklistItem{
      Label:   normalizeLabel(line),
      Checked: false,
    })
  }
  return sections
}

// isHeading reports whether a trimmed, non-empty line opens a new section.
func isHeading(line string) bool {
  if strings.Contains(strings.ToLower(line), "packing list") {
    return true
  }
  if strings.HasSuffix(line, ":") {
    return true
  }
  if strings.HasSuffix(line, ":**") {
    return true
  }
  return strings.Contains(line, "**")
}

// normalizeTitle strips emphasis markers and a single trailing colon.
func normalizeTitle(line string) string {
  title := strings.ReplaceAll(line, "*", "")
  title = strings.TrimSpace(title)
  title = strings.TrimSuffix(title, ":")
  return strings.TrimSpace(title)
}

// normalizeLabel strips the leading run of bullet/number markers.
func normalizeLabel(line string) string {
  return strings.TrimSpace(strings.TrimLeft(line, leadingMarkers))
}

// ExpandedByIndex builds the initial per-section visibility map keyed by
// 0-based position. Every section starts expanded.
func ExpandedByIndex(sections []types.ChecklistSection) map[int]bool {
  expanded := make(map[int]bool, len(sections))
  for i := range sections {
    expanded[i] = true
  }
  return expanded
}
