package services

import (
  "context"
  "encoding/json"
  "fmt"
  "strings"
  "time"

  "gorm.io/gorm"

  "github.com/yungbote/tripwise-backend/internal/checklist"
  redisclient "github.com/yungbote/tripwise-backend/internal/clients/redis"
  "github.com/yungbote/tripwise-backend/internal/logger"
  "github.com/yungbote/tripwise-backend/internal/types"
)

const (
  FormatStructured = "structured"
  FormatText       = "text"

  defaultWeather = "Mild"
)

// ChecklistGeneration is the outcome of one checklist request: the raw
// model text plus its parsed form and the initial section visibility map.
type ChecklistGeneration struct {
  Checklist   string                    `json:"checklist"`
  Sections    []types.ChecklistSection  `json:"sections"`
  Expanded    map[int]bool              `json:"expanded"`
}

// ActivitySuggestion carries either shape the generator produced.
// Format is "structured" when Activities is authoritative and "text"
// when Suggestions holds free text for the client to render.
type ActivitySuggestion struct {
  Activities    []types.Activity    `json:"activities,omitempty"`
  Suggestions   string              `json:"suggestions,omitempty"`
  Format        string              `json:"format"`
}

type GenerationService interface {
  GenerateChecklist(ctx context.Context, destination, dateRange, purpose, weather string) (*ChecklistGeneration, error)
  SuggestActivities(ctx context.Context, destination string) (*ActivitySuggestion, error)
}

type generationService struct {
  db              *gorm.DB
  log             *logger.Logger
  gemini          GeminiClient
  suggestionCache redisclient.SuggestionCache
  cacheTTL        time.Duration
}

// NewGenerationService wires the generator. The suggestion cache is
// optional; a nil cache just means every request hits the model.
func NewGenerationService(
  db *gorm.DB,
  baseLog *logger.Logger,
  gemini GeminiClient,
  suggestionCache redisclient.SuggestionCache,
  cacheTTL time.Duration,
) GenerationService {
  serviceLog := baseLog.With("service", "GenerationService")
  return &generationService{
    db:              db,
    log:             serviceLog,
    gemini:          gemini,
    suggestionCache: suggestionCache,
    cacheTTL:        cacheTTL,
  }
}

func (gs *generationService) GenerateChecklist(ctx context.Context, destination, dateRange, purpose, weather string) (*ChecklistGeneration, error) {
  if destination == "" || dateRange == "" || purpose == "" {
    return nil, fmt.Errorf("Missing required fields: destination, dateRange, purpose")
  }
  if weather == "" {
    weather = defaultWeather
  }

  text, err := gs.gemini.GenerateText(ctx, checklistPrompt(destination, dateRange, purpose, weather))
  if err != nil {
    gs.log.Error("Checklist generation failed", "error", err)
    return nil, fmt.Errorf("Checklist generation failed: %w", err)
  }

  sections := checklist.Parse(text)
  return &ChecklistGeneration{
    Checklist: text,
    Sections:  sections,
    Expanded:  checklist.ExpandedByIndex(sections),
  }, nil
}

func (gs *generationService) SuggestActivities(ctx context.Context, destination string) (*ActivitySuggestion, error) {
  if destination == "" {
    return nil, fmt.Errorf("Missing required field: destination")
  }

  if gs.suggestionCache != nil {
    cached, hit, err := gs.suggestionCache.Get(ctx, destination)
    if err != nil {
      gs.log.Warn("Suggestion cache read failed", "error", err)
    } else if hit {
      gs.log.Debug("Suggestion cache hit", "destination", destination)
      return &ActivitySuggestion{Activities: cached, Format: FormatStructured}, nil
    }
  }

  text, err := gs.gemini.GenerateText(ctx, activitiesPrompt(destination))
  if err != nil {
    gs.log.Error("Activity generation failed", "error", err)
    return nil, fmt.Errorf("Failed to generate activity suggestions: %w", err)
  }

  suggestion := normalizeSuggestionResponse(text)
  gs.cacheSuggestions(ctx, destination, suggestion)
  return suggestion, nil
}

func (gs *generationService) cacheSuggestions(ctx context.Context, destination string, suggestion *ActivitySuggestion) {
  if gs.suggestionCache == nil {
    return
  }
  activities := suggestion.Activities
  if suggestion.Format == FormatText {
    activities = checklist.NormalizeActivities(nil, suggestion.Suggestions)
  }
  if len(activities) == 0 {
    return
  }
  if err := gs.suggestionCache.Set(ctx, destination, activities, gs.cacheTTL); err != nil {
    gs.log.Warn("Suggestion cache write failed", "error", err)
  }
}

// normalizeSuggestionResponse prefers the structured shape: if the text
// holds a decodable JSON array it becomes the activity list, otherwise
// the raw text is passed through as the fallback format.
func normalizeSuggestionResponse(text string) *ActivitySuggestion {
  if span := extractJSONArray(text); span != "" {
    var decoded []types.Activity
    if err := json.Unmarshal([]byte(span), &decoded); err == nil {
      activities := make([]types.Activity, 0, len(decoded))
      for _, a := range decoded {
        if strings.TrimSpace(a.Name) == "" {
          continue
        }
        activities = append(activities, a)
      }
      return &ActivitySuggestion{Activities: activities, Format: FormatStructured}
    }
  }
  return &ActivitySuggestion{Suggestions: text, Format: FormatText}
}

// extractJSONArray returns the widest bracketed span of the text, or ""
// when no array is present.
func extractJSONArray(text string) string {
  start := strings.Index(text, "[")
  end := strings.LastIndex(text, "]")
  if start == -1 || end == -1 || end < start {
    return ""
  }
  return text[start : end+1]
}

func checklistPrompt(destination, dateRange, purpose, weather string) string {
  return fmt.Sprintf(`Create a categorized travel packing checklist for a %s trip to %s from %s.
Weather: %s.
Categories: Clothing, Essentials, Toiletries, Tech.
Return as plain text.`, purpose, destination, dateRange, weather)
}

func activitiesPrompt(destination string) string {
  return fmt.Sprintf(`You are a travel expert. Suggest 5 unique and memorable activities for a trip to %s.

For each activity, provide:
- A clear activity name
- A brief description (1-2 sentences) explaining what it is and why it's worth doing

Format your response as a JSON array with objects containing "name" and "description" fields.
Example format:
[
  {"name": "Visit the Eiffel Tower", "description": "Iconic landmark offering stunning panoramic views of Paris from its observation decks."},
  {"name": "Seine River Cruise", "description": "Relaxing boat tour showcasing Paris's beautiful architecture and bridges."}
]

Only return the JSON array, no additional text.`, destination)
}
