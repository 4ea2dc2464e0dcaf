package checklist

import (
	"testing"

	"github.com/yungbote/tripwise-backend/internal/types"
)

func TestParseEndToEnd(t *testing.T) {
	text := "Clothing:\n- 3 T-shirts\n- 1 jacket\nEssentials:\n- Passport\n- Wallet"

	sections := Parse(text)
	if len(sections) != 2 {
		t.Fatalf("Parse returned %d sections, want 2: %+v", len(sections), sections)
	}
	if sections[0].Title != "Clothing" {
		t.Fatalf("sections[0].Title=%q, want %q", sections[0].Title, "Clothing")
	}
	if sections[1].Title != "Essentials" {
		t.Fatalf("sections[1].Title=%q, want %q", sections[1].Title, "Essentials")
	}
	wantItems := [][]string{
		{"3 T-shirts", "1 jacket"},
		{"Passport", "Wallet"},
	}
	for si, want := range wantItems {
		if len(sections[si].Items) != len(want) {
			t.Fatalf("sections[%d] has %d items, want %d", si, len(sections[si].Items), len(want))
		}
		for ii, label := range want {
			item := sections[si].Items[ii]
			if item.Label != label {
				t.Fatalf("sections[%d].Items[%d].Label=%q, want %q", si, ii, item.Label, label)
			}
			if item.Checked {
				t.Fatalf("sections[%d].Items[%d] is checked, parser must never check items", si, ii)
			}
		}
	}

	expanded := ExpandedByIndex(sections)
	if len(expanded) != 2 || !expanded[0] || !expanded[1] {
		t.Fatalf("ExpandedByIndex=%v, want {0:true, 1:true}", expanded)
	}
}

func TestParseDropsOrphanItems(t *testing.T) {
	sections := Parse("item one\nSection:\nitem two")
	if len(sections) != 1 {
		t.Fatalf("Parse returned %d sections, want 1", len(sections))
	}
	if sections[0].Title != "Section" {
		t.Fatalf("title=%q, want %q", sections[0].Title, "Section")
	}
	if len(sections[0].Items) != 1 || sections[0].Items[0].Label != "item two" {
		t.Fatalf("items=%+v, want exactly [item two]", sections[0].Items)
	}
}

func TestParseHeadingPrecedence(t *testing.T) {
	// Emphasis markers always win over item detection, even when the line
	// also starts with bullet characters.
	cases := []struct {
		name  string
		text  string
		title string
	}{
		{name: "emphasised_colon", text: "**Clothing:**", title: "Clothing"},
		{name: "bullet_then_emphasis", text: "- **Toiletries**", title: "- Toiletries"},
		{name: "packing_list_phrase", text: "Here is your Packing List for Rome", title: "Here is your Packing List for Rome"},
		{name: "plain_colon", text: "Tech:", title: "Tech"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sections := Parse(tc.text)
			if len(sections) != 1 {
				t.Fatalf("Parse(%q) returned %d sections, want 1", tc.text, len(sections))
			}
			if sections[0].Title != tc.title {
				t.Fatalf("Parse(%q) title=%q, want %q", tc.text, sections[0].Title, tc.title)
			}
			if len(sections[0].Items) != 0 {
				t.Fatalf("Parse(%q) has %d items, want 0", tc.text, len(sections[0].Items))
			}
		})
	}
}

func TestParseConsecutiveHeadings(t *testing.T) {
	sections := Parse("Clothing:\nEssentials:\n- Passport")
	if len(sections) != 2 {
		t.Fatalf("Parse returned %d sections, want 2", len(sections))
	}
	if len(sections[0].Items) != 0 {
		t.Fatalf("first section has %d items, want 0", len(sections[0].Items))
	}
	if len(sections[1].Items) != 1 {
		t.Fatalf("second section has %d items, want 1", len(sections[1].Items))
	}
}

func TestParseGarbageInput(t *testing.T) {
	for _, text := range []string{"", "   \n\n", "no headings here\njust items\n- loose bullet"} {
		sections := Parse(text)
		if len(sections) != 0 {
			t.Fatalf("Parse(%q) returned %d sections, want 0", text, len(sections))
		}
		if expanded := ExpandedByIndex(sections); len(expanded) != 0 {
			t.Fatalf("ExpandedByIndex for %q = %v, want empty", text, expanded)
		}
	}
}

func TestParseIdempotentStructure(t *testing.T) {
	text := "**Packing List**\nClothing:\n- 2 shirts\n1. Socks\nEssentials:\n- Charger"
	first := Parse(text)
	second := Parse(text)
	if len(first) != len(second) {
		t.Fatalf("section counts differ between runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Title != second[i].Title {
			t.Fatalf("titles differ at %d: %q vs %q", i, first[i].Title, second[i].Title)
		}
		if len(first[i].Items) != len(second[i].Items) {
			t.Fatalf("item counts differ at %d", i)
		}
		for j := range first[i].Items {
			if first[i].Items[j] != second[i].Items[j] {
				t.Fatalf("items differ at %d/%d: %+v vs %+v", i, j, first[i].Items[j], second[i].Items[j])
			}
			if first[i].Items[j].Checked {
				t.Fatalf("parser produced a checked item at %d/%d", i, j)
			}
		}
	}
}

func TestParseSkipsBareEmphasisHeading(t *testing.T) {
	// "**" alone classifies as a heading but normalizes to an empty title;
	// no section is created for it.
	sections := Parse("**\nClothing:\n- Hat")
	if len(sections) != 1 || sections[0].Title != "Clothing" {
		t.Fatalf("sections=%+v, want single Clothing section", sections)
	}
}

func TestNormalizeLabel(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "bullet_space_digit", in: "- 3 shirts", want: "3 shirts"},
		{name: "numbered", in: "2. Passport", want: "Passport"},
		{name: "unicode_bullet", in: "• Sunscreen", want: "Sunscreen"},
		{name: "asterisk_bullet", in: "* Toothbrush", want: "Toothbrush"},
		{name: "no_marker", in: "Wallet", want: "Wallet"},
		{name: "interior_markers_kept", in: "- USB-C cable", want: "USB-C cable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeLabel(tc.in); got != tc.want {
				t.Fatalf("normalizeLabel(%q)=%q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeTitle(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "emphasis_and_colon", in: "**Clothing:**", want: "Clothing"},
		{name: "trailing_colon", in: "Essentials:", want: "Essentials"},
		{name: "emphasis_only", in: "**Tech**", want: "Tech"},
		{name: "plain", in: "Toiletries", want: "Toiletries"},
		{name: "single_trailing_colon_only", in: "Misc::", want: "Misc:"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := normalizeTitle(tc.in); got != tc.want {
				t.Fatalf("normalizeTitle(%q)=%q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestToggleItemImmutable(t *testing.T) {
	sections := Parse("Clothing:\n- Hat\n- Scarf")

	toggled, err := ToggleItem(sections, 0, 1)
	if err != nil {
		t.Fatalf("ToggleItem returned error: %v", err)
	}
	if !toggled[0].Items[1].Checked {
		t.Fatalf("toggled item not checked")
	}
	if sections[0].Items[1].Checked {
		t.Fatalf("original slice was mutated")
	}

	back, err := ToggleItem(toggled, 0, 1)
	if err != nil {
		t.Fatalf("ToggleItem returned error: %v", err)
	}
	if back[0].Items[1].Checked {
		t.Fatalf("double toggle did not restore unchecked state")
	}
}

func TestToggleItemOutOfRange(t *testing.T) {
	sections := []types.ChecklistSection{
		{Title: "Clothing", Items: []types.ChecklistItem{{Label: "Hat"}}, Expanded: true},
	}
	if _, err := ToggleItem(sections, 1, 0); err == nil {
		t.Fatalf("expected error for section index out of range")
	}
	if _, err := ToggleItem(sections, 0, 5); err == nil {
		t.Fatalf("expected error for item index out of range")
	}
	if _, err := ToggleItem(sections, -1, 0); err == nil {
		t.Fatalf("expected error for negative section index")
	}
}
