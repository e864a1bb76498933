package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthmatch/healthmatch-api/internal/models"
)

// ResetAppData discards the persisted document and restores the
// factory demo dataset. Admin only.
func (h *Handler) ResetAppData(c *gin.Context) {
	adminID, role := currentUser(c)
	if role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
		return
	}

	if err := h.Data.Reset(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset application data"})
		return
	}

	admin := h.Data.FindUserByID(adminID)
	h.Audit.Add("Demo data restored", actorFor(admin))

	c.JSON(http.StatusOK, gin.H{"message": "Demo data restored"})
}
