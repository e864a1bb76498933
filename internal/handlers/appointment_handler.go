package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/healthmatch/healthmatch-api/internal/datastore"
	"github.com/healthmatch/healthmatch-api/internal/models"
)

// GetAppointments lists appointments with patient/doctor names and the
// doctor's specialization joined in. Patients are always scoped to
// their own appointments; doctors default to theirs but may widen via
// query; admins see everything.
// Query: /api/appointments?patientId=...&doctorId=...&status=confirmed
func (h *Handler) GetAppointments(c *gin.Context) {
	callerID, role := currentUser(c)

	filters := datastore.AppointmentFilters{
		PatientID: c.Query("patientId"),
		DoctorID:  c.Query("doctorId"),
		Status:    models.AppointmentStatus(c.Query("status")),
	}
	if filters.Status != "" && !filters.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
		return
	}

	switch role {
	case models.RolePatient:
		filters.PatientID = callerID
	case models.RoleDoctor:
		if filters.PatientID == "" && filters.DoctorID == "" {
			filters.DoctorID = callerID
		}
	}

	c.JSON(http.StatusOK, h.Data.Appointments(filters))
}

// GetAppointment returns one denormalized appointment.
func (h *Handler) GetAppointment(c *gin.Context) {
	appt := h.Data.AppointmentByID(c.Param("id"))
	if appt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	callerID, role := currentUser(c)
	if role == models.RolePatient && appt.PatientID != callerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
		return
	}

	c.JSON(http.StatusOK, appt)
}

type createAppointmentRequest struct {
	PatientID string `json:"patientId"`
	DoctorID  string `json:"doctorId" binding:"required"`
	DateTime  string `json:"dateTime" binding:"required"`
	Reason    string `json:"reason"`
}

// CreateAppointment books an appointment. Patients book for
// themselves; admins may book on a patient's behalf.
func (h *Handler) CreateAppointment(c *gin.Context) {
	callerID, role := currentUser(c)

	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if _, err := time.Parse(time.RFC3339, req.DateTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time format, use RFC3339"})
		return
	}

	patientID := req.PatientID
	switch role {
	case models.RolePatient:
		patientID = callerID
	case models.RoleAdmin:
		if patientID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "patientId required"})
			return
		}
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "Only patients or admins can book appointments."})
		return
	}

	appt, err := h.Data.AddAppointment(models.Appointment{
		PatientID: patientID,
		DoctorID:  req.DoctorID,
		DateTime:  req.DateTime,
		Status:    models.StatusPending,
		Reason:    req.Reason,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}

	booker := h.Data.FindUserByID(callerID)
	h.Audit.Add(fmt.Sprintf("Appointment %s booked with doctor %s", appt.ID, appt.DoctorID), actorFor(booker))

	c.JSON(http.StatusCreated, appt)
}

// UpdateAppointment lets the doctor or an admin change status, notes,
// prescription or reschedule.
func (h *Handler) UpdateAppointment(c *gin.Context) {
	callerID, role := currentUser(c)

	existing := h.Data.AppointmentByID(c.Param("id"))
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if role != models.RoleAdmin && !(role == models.RoleDoctor && existing.DoctorID == callerID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
		return
	}

	var req struct {
		DateTime     *string `json:"dateTime,omitempty"`
		Status       *string `json:"status,omitempty"`
		Notes        *string `json:"notes,omitempty"`
		Prescription *string `json:"prescription,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	updated := *existing
	if req.DateTime != nil {
		if _, err := time.Parse(time.RFC3339, *req.DateTime); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time format, use RFC3339"})
			return
		}
		updated.DateTime = *req.DateTime
	}
	if req.Status != nil {
		status := models.AppointmentStatus(*req.Status)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
			return
		}
		updated.Status = status
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}
	if req.Prescription != nil {
		updated.Prescription = *req.Prescription
	}

	if err := h.Data.UpdateAppointment(updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment updated successfully"})
}

// CancelAppointment sets the status to cancelled. The patient, the
// doctor or an admin may cancel.
func (h *Handler) CancelAppointment(c *gin.Context) {
	callerID, role := currentUser(c)

	appt := h.Data.AppointmentByID(c.Param("id"))
	if appt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}
	if role != models.RoleAdmin && appt.PatientID != callerID && appt.DoctorID != callerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
		return
	}

	if err := h.Data.CancelAppointment(appt.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel appointment"})
		return
	}

	caller := h.Data.FindUserByID(callerID)
	h.Audit.Add(fmt.Sprintf("Appointment %s cancelled", appt.ID), actorFor(caller))

	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled successfully"})
}
