package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/healthmatch/healthmatch-api/internal/audit"
	"github.com/healthmatch/healthmatch-api/internal/datastore"
	"github.com/healthmatch/healthmatch-api/internal/models"
)

// Handler carries the collaborators every route needs: the document
// repository and the system log sink.
type Handler struct {
	Data  *datastore.DataStore
	Audit *audit.Logger
}

func NewHandler(data *datastore.DataStore, auditLog *audit.Logger) *Handler {
	return &Handler{
		Data:  data,
		Audit: auditLog,
	}
}

// currentUser pulls the id/role the auth middleware stored in the
// request context.
func currentUser(c *gin.Context) (id string, role models.UserRole) {
	if v, ok := c.Get("userID"); ok {
		id, _ = v.(string)
	}
	if v, ok := c.Get("userRole"); ok {
		if s, ok := v.(string); ok {
			role = models.UserRole(s)
		}
	}
	return id, role
}

func actorFor(u *models.User) *models.LogActor {
	if u == nil {
		return nil
	}
	return &models.LogActor{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
