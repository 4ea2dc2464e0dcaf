package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/tripwise-backend/internal/logger"
  "github.com/yungbote/tripwise-backend/internal/services"
)

type GenerateHandler struct {
  log                 *logger.Logger
  generationService   services.GenerationService
}

func NewGenerateHandler(log *logger.Logger, generationService services.GenerationService) *GenerateHandler {
  return &GenerateHandler{
    log:                log.With("handler", "GenerateHandler"),
    generationService:  generationService,
  }
}

// GenerateChecklist answers with the raw model text plus its parsed
// sections and initial expanded map. Missing fields fail fast with 400;
// a generation failure after retries is a 500 with a generic message.
func (gh *GenerateHandler) GenerateChecklist(c *gin.Context) {
  var req struct {
    Destination   string      `json:"destination"`
    DateRange     string      `json:"dateRange"`
    Purpose       string      `json:"purpose"`
    Weather       string      `json:"weather"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  if req.Destination == "" || req.DateRange == "" || req.Purpose == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: destination, dateRange, purpose"})
    return
  }
  result, err := gh.generationService.GenerateChecklist(c.Request.Context(), req.Destination, req.DateRange, req.Purpose, req.Weather)
  if err != nil {
    gh.log.Error("Checklist generation failed", "error", err)
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Checklist generation failed. Please try again."})
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "checklist": result.Checklist,
    "sections":  result.Sections,
    "expanded":  result.Expanded,
  })
}

// SuggestActivities answers in whichever shape the generator produced:
// structured activities or fallback text.
func (gh *GenerateHandler) SuggestActivities(c *gin.Context) {
  var req struct {
    Destination   string      `json:"destination"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  if req.Destination == "" {
    c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: destination"})
    return
  }
  result, err := gh.generationService.SuggestActivities(c.Request.Context(), req.Destination)
  if err != nil {
    gh.log.Error("Activity suggestion failed", "error", err)
    c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate activity suggestions. Please try again."})
    return
  }
  if result.Format == services.FormatStructured {
    c.JSON(http.StatusOK, gin.H{"activities": result.Activities, "format": result.Format})
    return
  }
  c.JSON(http.StatusOK, gin.H{"suggestions": result.Suggestions, "format": result.Format})
}
