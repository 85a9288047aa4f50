package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vowsync/vowsync/internal/models"
	"github.com/vowsync/vowsync/internal/storage"
)

// weddingResponse uses the snake_case keys the mobile clients were built
// against. The fetch endpoint wraps it in a weddingDetails list so the
// not-yet-onboarded case is an empty list rather than a 404.
type weddingResponse struct {
	BrideName   string `json:"bride_name"`
	GroomName   string `json:"groom_name"`
	WeddingDate string `json:"wedding_date"`
	Location    string `json:"location"`
	Venue       string `json:"venue"`
	Time        string `json:"time"`
	GuestCount  int    `json:"guest_count"`
	DressCode   string `json:"dress_code"`
}

func toWeddingResponse(d models.WeddingDetails) weddingResponse {
	return weddingResponse{
		BrideName:   d.BrideName,
		GroomName:   d.GroomName,
		WeddingDate: d.WeddingDate,
		Location:    d.Location,
		Venue:       d.Venue,
		Time:        d.Time,
		GuestCount:  d.GuestCount,
		DressCode:   d.DressCode,
	}
}

func (s *Server) getWeddingDetails(c *gin.Context) {
	details, err := s.store.GetWeddingDetails(c.Request.Context(), userID(c))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"weddingDetails": []weddingResponse{}})
			return
		}
		slog.Error("get wedding details failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch wedding details"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"weddingDetails": []weddingResponse{toWeddingResponse(*details)}})
}

func (s *Server) submitWeddingDetails(c *gin.Context) {
	var req struct {
		BrideName   string `json:"brideName"`
		GroomName   string `json:"groomName"`
		WeddingDate string `json:"weddingDate"`
		Location    string `json:"location"`
		Venue       string `json:"venue"`
		Time        string `json:"time"`
		GuestCount  int    `json:"guestCount"`
		DressCode   string `json:"dressCode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.BrideName == "" && req.GroomName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one partner name is required"})
		return
	}
	if req.WeddingDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "weddingDate is required"})
		return
	}

	details := models.WeddingDetails{
		BrideName:   req.BrideName,
		GroomName:   req.GroomName,
		WeddingDate: req.WeddingDate,
		Location:    req.Location,
		Venue:       req.Venue,
		Time:        req.Time,
		GuestCount:  req.GuestCount,
		DressCode:   req.DressCode,
	}
	if err := s.store.UpsertWeddingDetails(c.Request.Context(), userID(c), &details); err != nil {
		slog.Error("submit wedding details failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save wedding details"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"weddingDetails": toWeddingResponse(details)})
}
