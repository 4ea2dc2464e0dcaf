package checklist

import (
	"testing"

	"github.com/yungbote/tripwise-backend/internal/types"
)

func TestNormalizeActivitiesStructuredPassthrough(t *testing.T) {
	structured := []types.Activity{
		{Name: "Hike", Description: "Trail walk"},
		{Name: "Museum Visit", Description: ""},
	}
	got := NormalizeActivities(structured, "ignored text")
	if len(got) != 2 {
		t.Fatalf("got %d activities, want 2", len(got))
	}
	for i := range structured {
		if got[i] != structured[i] {
			t.Fatalf("activity %d changed: %+v, want %+v", i, got[i], structured[i])
		}
	}
}

func TestNormalizeActivitiesFromText(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []types.Activity
	}{
		{
			name: "bullets_and_emphasis",
			raw:  "- Hike\n**Museum Visit**",
			want: []types.Activity{
				{Name: "Hike", Description: ""},
				{Name: "Museum Visit", Description: ""},
			},
		},
		{
			name: "numbered_list",
			raw:  "1. Beach day\n2. Street food tour",
			want: []types.Activity{
				{Name: "Beach day", Description: ""},
				{Name: "Street food tour", Description: ""},
			},
		},
		{
			name: "drops_lines_that_normalize_away",
			raw:  "- Hike\n***\n- \nKayaking",
			want: []types.Activity{
				{Name: "Hike", Description: ""},
				{Name: "Kayaking", Description: ""},
			},
		},
		{
			name: "empty_text",
			raw:  "",
			want: []types.Activity{},
		},
		{
			name: "whitespace_only",
			raw:  "  \n\n",
			want: []types.Activity{},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeActivities(nil, tc.raw)
			if len(got) != len(tc.want) {
				t.Fatalf("NormalizeActivities(nil, %q) returned %d activities, want %d: %+v", tc.raw, len(got), len(tc.want), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("activity %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestNormalizeActivitiesPreservesDuplicates(t *testing.T) {
	got := NormalizeActivities(nil, "- Hike\n- Hike")
	if len(got) != 2 {
		t.Fatalf("duplicates must be preserved, got %d activities", len(got))
	}
}
