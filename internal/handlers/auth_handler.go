package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthmatch/healthmatch-api/internal/datastore"
	"github.com/healthmatch/healthmatch-api/internal/models"
	"github.com/healthmatch/healthmatch-api/internal/utils"
)

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// RegisterUser creates an account. Patients also get an empty health
// record so the symptom log is ready for their first entry.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := models.UserRole(req.Role)
	if req.Role == "" {
		role = models.RolePatient
	}
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user, err := h.Data.AddUser(models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     role,
	})
	if err != nil {
		if errors.Is(err, datastore.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	if role == models.RolePatient {
		if err := h.Data.AddPatientData(models.PatientData{UserID: user.ID, SymptomsLog: []models.SymptomEntry{}}); err != nil {
			log.Printf("RegisterUser: could not create patient data for %s: %v", user.ID, err)
		}
	}
	// Doctor profiles are created later through the admin flow.

	h.Audit.Add("User registered", actorFor(&user))

	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user.Sanitized()})
}

// Login checks credentials and issues a JWT.
func (h *Handler) Login(c *gin.Context) {
	var loginReq struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user := h.Data.FindUserByEmail(loginReq.Email)
	if user == nil || !utils.CheckPassword(loginReq.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	h.Audit.Add("User logged in", actorFor(user))

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user.Sanitized()})
}

// GetCurrentUser returns the profile of the authenticated user.
func (h *Handler) GetCurrentUser(c *gin.Context) {
	userID, _ := currentUser(c)
	user := h.Data.FindUserByID(userID)
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user.Sanitized())
}

// UpdateCurrentUser lets a user change their own display name.
func (h *Handler) UpdateCurrentUser(c *gin.Context) {
	userID, _ := currentUser(c)

	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update fields provided"})
		return
	}

	user := h.Data.FindUserByID(userID)
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updated := *user
	updated.Name = req.Name
	if err := h.Data.UpdateUser(updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user profile"})
		return
	}

	c.JSON(http.StatusOK, updated.Sanitized())
}
