package checklist

import "testing"

func TestSplitLines(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty_string",
			text: "",
			want: []string{},
		},
		{
			name: "whitespace_only",
			text: "   \n\n\t\n",
			want: []string{},
		},
		{
			name: "trims_and_drops_blanks",
			text: "  one  \n\n two\n\t\nthree ",
			want: []string{"one", "two", "three"},
		},
		{
			name: "preserves_order",
			text: "b\na\nc",
			want: []string{"b", "a", "c"},
		},
		{
			name: "windows_line_endings",
			text: "one\r\ntwo\r\n",
			want: []string{"one", "two"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitLines(tc.text)
			if len(got) != len(tc.want) {
				t.Fatalf("SplitLines(%q) returned %d lines, want %d: %v", tc.text, len(got), len(tc.want), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("SplitLines(%q)[%d]=%q, want %q", tc.text, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestSplitLinesNeverEmptyEntries(t *testing.T) {
	inputs := []string{"a\n \nb", "\n\n\n", "  x  ", "", "- item\n\n**Head**"}
	for _, in := range inputs {
		for i, line := range SplitLines(in) {
			if line == "" {
				t.Fatalf("SplitLines(%q)[%d] is empty", in, i)
			}
		}
	}
}
