package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vowsync/vowsync/internal/models"
)

type guestResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

func toGuestResponse(g models.Guest) guestResponse {
	return guestResponse{ID: g.ID, Name: g.Name, Email: g.Email, Status: string(g.Status)}
}

func (s *Server) listGuests(c *gin.Context) {
	guests, err := s.store.ListGuests(c.Request.Context(), userID(c))
	if err != nil {
		slog.Error("list guests failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch guests"})
		return
	}

	resp := make([]guestResponse, len(guests))
	for i, g := range guests {
		resp[i] = toGuestResponse(g)
	}
	c.JSON(http.StatusOK, gin.H{"guests": resp})
}

func (s *Server) addGuest(c *gin.Context) {
	var req struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	guest := models.Guest{Name: req.Name, Email: req.Email, Status: models.GuestStatus(req.Status)}
	if err := s.store.CreateGuest(c.Request.Context(), userID(c), &guest); err != nil {
		slog.Error("add guest failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add guest"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"guest": toGuestResponse(guest)})
}
