package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthmatch/healthmatch-api/internal/datastore"
	"github.com/healthmatch/healthmatch-api/internal/models"
)

// doctorView is a doctor profile joined with the owning user's name,
// computed at read time.
type doctorView struct {
	models.DoctorProfile
	Name string `json:"name,omitempty"`
}

func (h *Handler) doctorViews(profiles []models.DoctorProfile) []doctorView {
	out := make([]doctorView, 0, len(profiles))
	for _, p := range profiles {
		view := doctorView{DoctorProfile: p}
		if u := h.Data.FindUserByID(p.UserID); u != nil {
			view.Name = u.Name
		}
		out = append(out, view)
	}
	return out
}

// ListDoctors returns every doctor profile with the doctor's name.
func (h *Handler) ListDoctors(c *gin.Context) {
	c.JSON(http.StatusOK, h.doctorViews(h.Data.DoctorProfiles()))
}

// SearchDoctors matches profiles by specialization, case-insensitively
// (e.g. /api/doctors/search?specialization=cardiologist).
func (h *Handler) SearchDoctors(c *gin.Context) {
	label := c.Query("specialization")
	if label == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "specialization query parameter required"})
		return
	}
	c.JSON(http.StatusOK, h.doctorViews(h.Data.DoctorsBySpecialization(label)))
}

// GetDoctorProfile returns one doctor's profile.
func (h *Handler) GetDoctorProfile(c *gin.Context) {
	profile := h.Data.DoctorProfile(c.Param("id"))
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor profile not found"})
		return
	}
	views := h.doctorViews([]models.DoctorProfile{*profile})
	c.JSON(http.StatusOK, views[0])
}

type doctorProfileRequest struct {
	Specialization    string `json:"specialization" binding:"required"`
	Availability      string `json:"availability"`
	Bio               string `json:"bio"`
	ProfilePictureURL string `json:"profilePictureUrl"`
}

// CreateDoctorProfile sets up the profile for a doctor user. Admin
// only; a second profile for the same user is a 409.
func (h *Handler) CreateDoctorProfile(c *gin.Context) {
	_, role := currentUser(c)
	if role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
		return
	}

	userID := c.Param("id")
	user := h.Data.FindUserByID(userID)
	if user == nil || user.Role != models.RoleDoctor {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User is not a doctor"})
		return
	}

	var req doctorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := models.DoctorProfile{
		UserID:            userID,
		Specialization:    req.Specialization,
		Availability:      req.Availability,
		Bio:               req.Bio,
		ProfilePictureURL: req.ProfilePictureURL,
	}
	if err := h.Data.AddDoctorProfile(profile); err != nil {
		if errors.Is(err, datastore.ErrProfileExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Doctor profile already exists for this user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor profile"})
		return
	}

	h.Audit.Add("Doctor profile created for "+user.Name, actorFor(user))
	c.JSON(http.StatusCreated, profile)
}

// UpdateDoctorProfile replaces a profile. The doctor themselves or an
// admin may do this.
func (h *Handler) UpdateDoctorProfile(c *gin.Context) {
	callerID, role := currentUser(c)
	userID := c.Param("id")
	if role != models.RoleAdmin && callerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
		return
	}

	if h.Data.DoctorProfile(userID) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor profile not found"})
		return
	}

	var req doctorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := models.DoctorProfile{
		UserID:            userID,
		Specialization:    req.Specialization,
		Availability:      req.Availability,
		Bio:               req.Bio,
		ProfilePictureURL: req.ProfilePictureURL,
	}
	if err := h.Data.UpdateDoctorProfile(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update doctor profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
