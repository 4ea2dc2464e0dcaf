package services

import (
  "context"
  "fmt"
  "math/rand"
  "os"
  "strconv"
  "strings"
  "time"

  "google.golang.org/genai"

  "github.com/yungbote/tripwise-backend/internal/logger"
)

// GeminiClient is the text-generation collaborator. Callers get back the
// final text or a terminal error; all retrying happens inside.
type GeminiClient interface {
  GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
  log            *logger.Logger
  client         *genai.Client
  model          string
  maxRetries     int
  initialBackoff time.Duration
}

func NewGeminiClient(log *logger.Logger, model string) (GeminiClient, error) {
  apiKey := os.Getenv("GEMINI_API_KEY")
  if apiKey == "" {
    return nil, fmt.Errorf("missing GEMINI_API_KEY")
  }

  if model == "" {
    model = "gemini-2.0-flash"
  }

  maxRetries := 3
  if v := os.Getenv("GEMINI_MAX_RETRIES"); v != "" {
    if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed > 0 {
      maxRetries = parsed
    }
  }

  client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
    APIKey: apiKey,
  })
  if err != nil {
    return nil, fmt.Errorf("Failed to create Gemini client: %w", err)
  }

  return &geminiClient{
    log:            log.With("service", "GeminiClient"),
    client:         client,
    model:          model,
    maxRetries:     maxRetries,
    initialBackoff: 1 * time.Second,
  }, nil
}

// GenerateText calls the model with exponential backoff: 1s, 2s, 4s...
// A canceled context stops the loop immediately; exhaustion returns the
// last error.
func (c *geminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
  backoff := c.initialBackoff
  var lastErr error

  for attempt := 0; attempt < c.maxRetries; attempt++ {
    if ctx.Err() != nil {
      return "", ctx.Err()
    }

    text, err := c.generateOnce(ctx, prompt)
    if err == nil {
      return text, nil
    }
    lastErr = err

    if attempt == c.maxRetries-1 {
      break
    }

    sleepFor := jitterSleep(backoff)
    c.log.Warn("Gemini request retrying",
      "attempt", attempt+1,
      "max_retries", c.maxRetries,
      "sleep", sleepFor.String(),
      "error", err.Error(),
    )
    select {
    case <-time.After(sleepFor):
    case <-ctx.Done():
      return "", ctx.Err()
    }
    backoff *= 2
  }

  return "", lastErr
}

func (c *geminiClient) generateOnce(ctx context.Context, prompt string) (string, error) {
  contents := []*genai.Content{
    genai.NewContentFromText(prompt, genai.RoleUser),
  }
  result, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
  if err != nil {
    return "", fmt.Errorf("gemini generate: %w", err)
  }
  text := result.Text()
  if strings.TrimSpace(text) == "" {
    return "", fmt.Errorf("empty model response")
  }
  return text, nil
}

func jitterSleep(base time.Duration) time.Duration {
  // +/- 20%
  if base <= 0 {
    return 0
  }
  j := 0.2
  delta := base.Seconds() * j
  low := base.Seconds() - delta
  high := base.Seconds() + delta
  if low < 0 {
    low = 0
  }
  v := low + rand.Float64()*(high-low)
  return time.Duration(v * float64(time.Second))
}
