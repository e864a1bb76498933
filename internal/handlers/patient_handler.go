package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthmatch/healthmatch-api/internal/models"
)

// canAccessPatient gates a patient record to its owner, the assigned
// doctor, or an admin.
func (h *Handler) canAccessPatient(c *gin.Context, record *models.PatientData) bool {
	callerID, role := currentUser(c)
	if role == models.RoleAdmin || callerID == record.UserID {
		return true
	}
	return role == models.RoleDoctor && record.AssignedDoctorID == callerID
}

// GetPatientData returns one patient's health record.
func (h *Handler) GetPatientData(c *gin.Context) {
	record := h.Data.PatientData(c.Param("id"))
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient data not found"})
		return
	}
	if !h.canAccessPatient(c, record) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdatePatientData replaces a patient record, e.g. to assign a
// doctor after a specialist match.
func (h *Handler) UpdatePatientData(c *gin.Context) {
	userID := c.Param("id")
	record := h.Data.PatientData(userID)
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient data not found"})
		return
	}
	if !h.canAccessPatient(c, record) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
		return
	}

	var req models.PatientData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	req.UserID = userID // the path owns the identity
	if req.SymptomsLog == nil {
		req.SymptomsLog = record.SymptomsLog
	}

	if err := h.Data.UpdatePatientData(req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update patient data"})
		return
	}
	c.JSON(http.StatusOK, req)
}

// AddSymptomEntry appends to the patient's symptoms log.
func (h *Handler) AddSymptomEntry(c *gin.Context) {
	userID := c.Param("id")
	record := h.Data.PatientData(userID)
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Patient data not found"})
		return
	}
	if !h.canAccessPatient(c, record) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
		return
	}

	var req struct {
		Symptoms          string `json:"symptoms" binding:"required"`
		MatchedSpecialist string `json:"matchedSpecialist"`
		Date              string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.Data.AddSymptomEntry(userID, models.SymptomEntry{
		Date:              req.Date,
		Symptoms:          req.Symptoms,
		MatchedSpecialist: req.MatchedSpecialist,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add symptom entry"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}
