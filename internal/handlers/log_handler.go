package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthmatch/healthmatch-api/internal/models"
)

// GetLogs returns the system log, newest first. Admin only.
func (h *Handler) GetLogs(c *gin.Context) {
	_, role := currentUser(c)
	if role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
		return
	}
	c.JSON(http.StatusOK, h.Audit.Logs())
}

// ClearLogs empties the system log. Admin only.
func (h *Handler) ClearLogs(c *gin.Context) {
	_, role := currentUser(c)
	if role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
		return
	}
	if err := h.Audit.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear logs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logs cleared"})
}
