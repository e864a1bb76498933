package datastore

import (
	"github.com/healthmatch/healthmatch-api/internal/models"
)

// The factory dataset: a fixed set of demo records every fresh
// deployment starts from. Built by functions rather than package vars
// so callers always get their own copies of the slices.

func seedUsers() []models.User {
	return []models.User{
		{ID: "admin001", Email: "admin@healthmatch.direct", Password: "adminpassword", Name: "Admin User", Role: models.RoleAdmin},
		{ID: "doc001", Email: "cardio@healthmatch.direct", Password: "password123", Name: "Dr. Eve Heartwell", Role: models.RoleDoctor},
		{ID: "doc002", Email: "derma@healthmatch.direct", Password: "password123", Name: "Dr. Adam Skinnerton", Role: models.RoleDoctor},
		{ID: "doc003", Email: "gp@healthmatch.direct", Password: "password123", Name: "Dr. John Citizen", Role: models.RoleDoctor},
		{ID: "doc004", Email: "alan@healthmatch.direct", Password: "password123", Name: "Dr. Alan Smith", Role: models.RoleDoctor},
		{ID: "pat001", Email: "patient@healthmatch.direct", Password: "password123", Name: "Sarah Johnson", Role: models.RolePatient},
		{ID: "pat002", Email: "james@healthmatch.direct", Password: "password123", Name: "James Carter", Role: models.RolePatient},
		{ID: "pat003", Email: "linda@healthmatch.direct", Password: "password123", Name: "Linda Martinez", Role: models.RolePatient},
	}
}

func seedDoctorProfiles() []models.DoctorProfile {
	return []models.DoctorProfile{
		{UserID: "doc001", Specialization: "Cardiologist", Bio: "Expert in heart-related issues.", ProfilePictureURL: "https://placehold.co/100x100.png", Availability: "Mon, Wed, Fri 9am-5pm"},
		{UserID: "doc002", Specialization: "Dermatologist", Bio: "Specializes in skin conditions.", ProfilePictureURL: "https://placehold.co/100x100.png", Availability: "Tue, Thu 10am-6pm"},
		{UserID: "doc003", Specialization: "General Physician", Bio: "Provides general medical care.", ProfilePictureURL: "https://placehold.co/100x100.png", Availability: "Mon-Fri 8am-4pm"},
	}
}

func seedPatientData() []models.PatientData {
	return []models.PatientData{
		{
			UserID: "pat001",
			SymptomsLog: []models.SymptomEntry{
				{ID: "sym001", Date: "2024-03-15T10:00:00Z", Symptoms: "Chest pain, shortness of breath, elevated blood pressure", MatchedSpecialist: "Cardiologist"},
				{ID: "sym002", Date: "2024-03-20T14:30:00Z", Symptoms: "Acute chest pain, dizziness", MatchedSpecialist: "Cardiologist"},
			},
			AssignedDoctorID: "doc001",
		},
		{
			UserID: "pat002",
			SymptomsLog: []models.SymptomEntry{
				{ID: "sym003", Date: "2024-03-18T09:00:00Z", Symptoms: "Palpitations, mild chest discomfort", MatchedSpecialist: "Cardiologist"},
			},
			AssignedDoctorID: "doc001",
		},
		{
			UserID: "pat003",
			SymptomsLog: []models.SymptomEntry{
				{ID: "sym004", Date: "2024-03-22T11:30:00Z", Symptoms: "Shortness of breath during exercise", MatchedSpecialist: "Cardiologist"},
			},
			AssignedDoctorID: "doc001",
		},
	}
}

func seedAppointments() []models.Appointment {
	return []models.Appointment{
		// Sarah Johnson
		{ID: "appt001", PatientID: "pat001", DoctorID: "doc001", DateTime: "2024-03-15T10:00:00Z", Status: models.StatusCompleted,
			Reason:       "Initial consultation for heart condition",
			Notes:        "Patient presents with symptoms of hypertension. ECG shows normal rhythm. Prescribed beta blockers.",
			Prescription: "Beta blockers - 25mg daily"},
		{ID: "appt002", PatientID: "pat001", DoctorID: "doc001", DateTime: "2024-03-20T14:30:00Z", Status: models.StatusCompleted,
			Reason:       "Emergency visit for chest pain",
			Notes:        "Patient reported acute chest pain. ECG shows slight abnormality. Adjusted medication dosage.",
			Prescription: "Beta blockers - 50mg daily"},
		{ID: "appt003", PatientID: "pat001", DoctorID: "doc001", DateTime: "2024-04-01T11:00:00Z", Status: models.StatusConfirmed,
			Reason: "Follow-up appointment for medication effectiveness check"},
		// James Carter
		{ID: "appt004", PatientID: "pat002", DoctorID: "doc001", DateTime: "2024-03-19T10:30:00Z", Status: models.StatusCompleted,
			Reason:       "Consultation for palpitations",
			Notes:        "Patient describes palpitations and mild discomfort. Recommended Holter monitor.",
			Prescription: "Holter monitor for 24 hours"},
		{ID: "appt005", PatientID: "pat002", DoctorID: "doc001", DateTime: "2024-03-26T09:00:00Z", Status: models.StatusConfirmed,
			Reason: "Follow-up for Holter results"},
		// Linda Martinez
		{ID: "appt006", PatientID: "pat003", DoctorID: "doc001", DateTime: "2024-03-23T13:00:00Z", Status: models.StatusCompleted,
			Reason:       "Shortness of breath during exercise",
			Notes:        "Patient reports shortness of breath. Scheduled stress test.",
			Prescription: "Stress test scheduled"},
		{ID: "appt007", PatientID: "pat003", DoctorID: "doc001", DateTime: "2024-03-30T10:00:00Z", Status: models.StatusConfirmed,
			Reason: "Review stress test results"},
	}
}

// DefaultAppData returns a fresh copy of the factory dataset.
func DefaultAppData() models.AppData {
	return models.AppData{
		Users:          seedUsers(),
		DoctorProfiles: seedDoctorProfiles(),
		PatientData:    seedPatientData(),
		Appointments:   seedAppointments(),
	}
}

// Bootstrap reconciles the factory dataset with whatever is already
// persisted: any seed record whose identifying key is missing gets
// appended, and nothing already persisted is ever overwritten. Users
// merge by email, doctor profiles and patient records by userId,
// appointments by id. Runs on every process start and is idempotent.
func (d *DataStore) Bootstrap() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.load()

	emails := make(map[string]bool, len(doc.Users))
	for _, u := range doc.Users {
		emails[u.Email] = true
	}
	for _, u := range seedUsers() {
		if !emails[u.Email] {
			doc.Users = append(doc.Users, u)
		}
	}

	profileIDs := make(map[string]bool, len(doc.DoctorProfiles))
	for _, p := range doc.DoctorProfiles {
		profileIDs[p.UserID] = true
	}
	for _, p := range seedDoctorProfiles() {
		if !profileIDs[p.UserID] {
			doc.DoctorProfiles = append(doc.DoctorProfiles, p)
		}
	}

	patientIDs := make(map[string]bool, len(doc.PatientData))
	for _, p := range doc.PatientData {
		patientIDs[p.UserID] = true
	}
	for _, p := range seedPatientData() {
		if !patientIDs[p.UserID] {
			doc.PatientData = append(doc.PatientData, p)
		}
	}

	apptIDs := make(map[string]bool, len(doc.Appointments))
	for _, a := range doc.Appointments {
		apptIDs[a.ID] = true
	}
	for _, a := range seedAppointments() {
		if !apptIDs[a.ID] {
			doc.Appointments = append(doc.Appointments, a)
		}
	}

	return d.save(doc)
}

// Reset discards whatever is persisted and restores the factory
// dataset outright.
func (d *DataStore) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.store.Remove(appDataKey); err != nil {
		return err
	}
	return d.save(DefaultAppData())
}
