package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/yungbote/tripwise-backend/internal/logger"
	"github.com/yungbote/tripwise-backend/internal/types"
)

type fakeGemini struct {
	text string
	err  error

	calls   int
	prompts []string
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New failed: %v", err)
	}
	return log
}

func TestExtractJSONArray(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare_array",
			text: `[{"name":"Hike"}]`,
			want: `[{"name":"Hike"}]`,
		},
		{
			name: "fenced_with_prose",
			text: "Here you go:\n```json\n[{\"name\":\"Hike\"}]\n```\nEnjoy!",
			want: `[{"name":"Hike"}]`,
		},
		{
			name: "multiline_array",
			text: "[\n {\"name\": \"A\"},\n {\"name\": \"B\"}\n]",
			want: "[\n {\"name\": \"A\"},\n {\"name\": \"B\"}\n]",
		},
		{
			name: "no_array",
			text: "1. Hike\n2. Swim",
			want: "",
		},
		{
			name: "unbalanced",
			text: "]flipped[",
			want: "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSONArray(tc.text); got != tc.want {
				t.Fatalf("extractJSONArray(%q)=%q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestNormalizeSuggestionResponseStructured(t *testing.T) {
	text := `[{"name":"Hike","description":"Trail walk"},{"name":"","description":"nameless"},{"name":"Museum Visit","description":""}]`
	got := normalizeSuggestionResponse(text)
	if got.Format != FormatStructured {
		t.Fatalf("format=%q, want %q", got.Format, FormatStructured)
	}
	// The nameless record is dropped, order is preserved.
	if len(got.Activities) != 2 {
		t.Fatalf("got %d activities, want 2: %+v", len(got.Activities), got.Activities)
	}
	want := []types.Activity{
		{Name: "Hike", Description: "Trail walk"},
		{Name: "Museum Visit", Description: ""},
	}
	for i := range want {
		if got.Activities[i] != want[i] {
			t.Fatalf("activity %d = %+v, want %+v", i, got.Activities[i], want[i])
		}
	}
}

func TestNormalizeSuggestionResponseTextFallback(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{name: "plain_list", text: "- Hike\n- Museum Visit"},
		{name: "broken_json", text: "[{\"name\": oops]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizeSuggestionResponse(tc.text)
			if got.Format != FormatText {
				t.Fatalf("format=%q, want %q", got.Format, FormatText)
			}
			if got.Suggestions != tc.text {
				t.Fatalf("suggestions=%q, want raw text passed through", got.Suggestions)
			}
			if len(got.Activities) != 0 {
				t.Fatalf("text fallback must not carry activities, got %+v", got.Activities)
			}
		})
	}
}

func TestGenerateChecklistValidation(t *testing.T) {
	log := newTestLogger(t)
	fake := &fakeGemini{text: "Clothing:\n- Hat"}
	gs := NewGenerationService(nil, log, fake, nil, time.Minute)

	cases := []struct {
		name        string
		destination string
		dateRange   string
		purpose     string
	}{
		{name: "missing_destination", destination: "", dateRange: "2026-06-01 to 2026-06-08", purpose: "Leisure"},
		{name: "missing_date_range", destination: "Rome", dateRange: "", purpose: "Leisure"},
		{name: "missing_purpose", destination: "Rome", dateRange: "2026-06-01 to 2026-06-08", purpose: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := gs.GenerateChecklist(context.Background(), tc.destination, tc.dateRange, tc.purpose, ""); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
	if fake.calls != 0 {
		t.Fatalf("generator was called %d times for invalid input, want 0", fake.calls)
	}
}

func TestGenerateChecklistParsesResponse(t *testing.T) {
	log := newTestLogger(t)
	fake := &fakeGemini{text: "Clothing:\n- 3 T-shirts\nEssentials:\n- Passport"}
	gs := NewGenerationService(nil, log, fake, nil, time.Minute)

	got, err := gs.GenerateChecklist(context.Background(), "Rome", "2026-06-01 to 2026-06-08", "Leisure", "")
	if err != nil {
		t.Fatalf("GenerateChecklist returned error: %v", err)
	}
	if got.Checklist != fake.text {
		t.Fatalf("raw checklist text not passed through")
	}
	if len(got.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(got.Sections))
	}
	if !got.Expanded[0] || !got.Expanded[1] || len(got.Expanded) != 2 {
		t.Fatalf("expanded map = %v, want {0:true 1:true}", got.Expanded)
	}
	if len(fake.prompts) != 1 {
		t.Fatalf("generator called %d times, want 1", len(fake.prompts))
	}
	prompt := fake.prompts[0]
	for _, fragment := range []string{"Rome", "2026-06-01 to 2026-06-08", "Leisure", "Weather: Mild."} {
		if !strings.Contains(prompt, fragment) {
			t.Fatalf("prompt missing %q:\n%s", fragment, prompt)
		}
	}
}

func TestSuggestActivitiesRequiresDestination(t *testing.T) {
	log := newTestLogger(t)
	fake := &fakeGemini{text: "[]"}
	gs := NewGenerationService(nil, log, fake, nil, time.Minute)

	if _, err := gs.SuggestActivities(context.Background(), ""); err == nil {
		t.Fatalf("expected validation error")
	}
	if fake.calls != 0 {
		t.Fatalf("generator was called for missing destination")
	}
}

func TestSuggestActivitiesStructured(t *testing.T) {
	log := newTestLogger(t)
	fake := &fakeGemini{text: `[{"name":"Hike","description":"Trail walk"}]`}
	gs := NewGenerationService(nil, log, fake, nil, time.Minute)

	got, err := gs.SuggestActivities(context.Background(), "Rome")
	if err != nil {
		t.Fatalf("SuggestActivities returned error: %v", err)
	}
	if got.Format != FormatStructured {
		t.Fatalf("format=%q, want structured", got.Format)
	}
	if len(got.Activities) != 1 || got.Activities[0].Name != "Hike" {
		t.Fatalf("activities=%+v", got.Activities)
	}
}

func TestSuggestActivitiesSurfacesGeneratorFailure(t *testing.T) {
	log := newTestLogger(t)
	fake := &fakeGemini{err: fmt.Errorf("boom")}
	gs := NewGenerationService(nil, log, fake, nil, time.Minute)

	if _, err := gs.SuggestActivities(context.Background(), "Rome"); err == nil {
		t.Fatalf("expected terminal failure to surface")
	}
}
