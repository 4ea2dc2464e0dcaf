package checklist

import (
  "strings"
)

// SplitLines splits raw model output into trimmed, non-empty lines,
// preserving order. Empty input yields an empty slice, never an error.
func SplitLines(text string) []string {
  if text == "" {
    return []string{}
  }
  raw := strings.Split(text, "\n")
  lines := make([]string, 0, len(raw))
  for _, l := range raw {
    trimmed := strings.TrimSpace(l)
    if trimmed == "" {
      continue
    }
    lines = append(lines, trimmed)
  }
  return lines
}
