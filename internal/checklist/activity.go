package checklist

import (
  "strings"

  "github.com/yungbote/tripwise-backend/internal/types"
)

// NormalizeActivities produces a uniform activity list from either shape
// the generator returns. A structured payload passes through unchanged;
// free text is segmented line by line, cleaned of bullet runs and
// emphasis markers, and lines that normalize to nothing are dropped.
// Source order is preserved and nothing is deduplicated. The function is
// total: malformed or empty input yields an empty list.
func NormalizeActivities(structured []types.Activity, raw string) []types.Activity {
  if structured != nil {
    return structured
  }
  lines := SplitLines(raw)
  activities := make([]types.Activity, 0, len(lines))
  for _, line := range lines {
    name := strings.TrimSpace(strings.ReplaceAll(normalizeLabel(line), "*", ""))
    if name == "" {
      continue
    }
    activities = append(activities, types.Activity{Name: name, Description: ""})
  }
  return activities
}
