package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthmatch/healthmatch-api/internal/models"
)

// ListUsers returns all users, optionally filtered by role
// (e.g. /api/users?role=doctor). Admin only.
func (h *Handler) ListUsers(c *gin.Context) {
	_, role := currentUser(c)
	if role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
		return
	}

	filter := models.UserRole(c.Query("role"))
	if filter != "" && !filter.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	users := h.Data.Users(filter)
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Sanitized())
	}
	c.JSON(http.StatusOK, out)
}

// UpdateUser replaces a user record wholesale. Admin only.
func (h *Handler) UpdateUser(c *gin.Context) {
	_, role := currentUser(c)
	if role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
		return
	}

	existing := h.Data.FindUserByID(c.Param("id"))
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var req struct {
		Name  string          `json:"name"`
		Email string          `json:"email"`
		Role  models.UserRole `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated := *existing
	if req.Name != "" {
		updated.Name = req.Name
	}
	if req.Email != "" {
		updated.Email = req.Email
	}
	if req.Role != "" {
		if !req.Role.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
			return
		}
		updated.Role = req.Role
	}

	if err := h.Data.UpdateUser(updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, updated.Sanitized())
}

// RemoveUser deletes a user and everything that hangs off it: the
// doctor profile, the patient record, and every appointment naming it
// as patient or doctor. Admin only.
func (h *Handler) RemoveUser(c *gin.Context) {
	adminID, role := currentUser(c)
	if role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
		return
	}

	id := c.Param("id")
	removed := h.Data.FindUserByID(id)
	if err := h.Data.RemoveUser(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove user"})
		return
	}

	if removed != nil {
		admin := h.Data.FindUserByID(adminID)
		h.Audit.Add(fmt.Sprintf("User %s (%s) removed", removed.Name, removed.Email), actorFor(admin))
	}

	c.JSON(http.StatusOK, gin.H{"message": "User removed successfully"})
}
