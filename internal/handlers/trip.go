package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/yungbote/tripwise-backend/internal/logger"
  "github.com/yungbote/tripwise-backend/internal/services"
  "github.com/yungbote/tripwise-backend/internal/types"
)

type TripHandler struct {
  log           *logger.Logger
  tripService   services.TripService
}

func NewTripHandler(log *logger.Logger, tripService services.TripService) *TripHandler {
  return &TripHandler{
    log:          log.With("handler", "TripHandler"),
    tripService:  tripService,
  }
}

func (th *TripHandler) CreateTrip(c *gin.Context) {
  var req struct {
    Destination   string      `json:"destination"`
    Purpose       string      `json:"purpose"`
    DateRange     string      `json:"date_range"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  trip, err := th.tripService.CreateTrip(c.Request.Context(), req.Destination, req.Purpose, req.DateRange)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "create_trip_failed", err)
    return
  }
  RespondOK(c, gin.H{"trip": trip})
}

func (th *TripHandler) ListUserTrips(c *gin.Context) {
  trips, err := th.tripService.GetUserTrips(c.Request.Context())
  if err != nil {
    th.log.Error("ListUserTrips failed", "error", err)
    RespondError(c, http.StatusInternalServerError, "load_trips_failed", err)
    return
  }
  RespondOK(c, gin.H{"trips": trips})
}

func (th *TripHandler) GetTrip(c *gin.Context) {
  tripID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_trip_id", err)
    return
  }
  trip, err := th.tripService.GetTripByID(c.Request.Context(), tripID)
  if err != nil {
    RespondError(c, http.StatusNotFound, "trip_not_found", err)
    return
  }
  RespondOK(c, gin.H{"trip": trip})
}

// ReplaceChecklist swaps the stored checklist for the supplied one. A
// generated checklist always replaces prior state in full.
func (th *TripHandler) ReplaceChecklist(c *gin.Context) {
  tripID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_trip_id", err)
    return
  }
  var req struct {
    Checklist     []types.ChecklistSection      `json:"checklist"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  if err := th.tripService.ReplaceChecklist(c.Request.Context(), tripID, req.Checklist); err != nil {
    th.log.Error("ReplaceChecklist failed", "error", err, "trip_id", tripID)
    RespondError(c, http.StatusBadRequest, "update_checklist_failed", err)
    return
  }
  RespondOK(c, gin.H{"success": "true"})
}

func (th *TripHandler) ToggleChecklistItem(c *gin.Context) {
  tripID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_trip_id", err)
    return
  }
  var req struct {
    SectionIndex  *int      `json:"section_index"`
    ItemIndex     *int      `json:"item_index"`
  }
  if err := c.ShouldBindJSON(&req); err != nil || req.SectionIndex == nil || req.ItemIndex == nil {
    RespondError(c, http.StatusBadRequest, "invalid_body", err)
    return
  }
  updated, err := th.tripService.ToggleChecklistItem(c.Request.Context(), tripID, *req.SectionIndex, *req.ItemIndex)
  if err != nil {
    RespondError(c, http.StatusBadRequest, "toggle_item_failed", err)
    return
  }
  RespondOK(c, gin.H{"checklist": updated})
}

func (th *TripHandler) DeleteTrip(c *gin.Context) {
  tripID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_trip_id", err)
    return
  }
  if err := th.tripService.DeleteTrip(c.Request.Context(), tripID); err != nil {
    RespondError(c, http.StatusBadRequest, "delete_trip_failed", err)
    return
  }
  RespondOK(c, gin.H{"success": "true"})
}
