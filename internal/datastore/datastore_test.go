package datastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthmatch/healthmatch-api/internal/models"
	"github.com/healthmatch/healthmatch-api/internal/storage"
)

func newTestStore(t *testing.T) (*DataStore, *storage.MemStore) {
	t.Helper()
	mem := storage.NewMemStore()
	return New(mem), mem
}

func TestAddUserAssignsStableID(t *testing.T) {
	d, _ := newTestStore(t)

	added, err := d.AddUser(models.User{Email: "new@x.com", Password: "pw", Name: "New User", Role: models.RolePatient})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	found := d.FindUserByID(added.ID)
	require.NotNil(t, found)
	assert.Equal(t, added, *found)

	// stable across subsequent reads
	again := d.FindUserByID(added.ID)
	require.NotNil(t, again)
	assert.Equal(t, added.ID, again.ID)
}

func TestAddUserRejectsDuplicateEmail(t *testing.T) {
	d, _ := newTestStore(t)

	_, err := d.AddUser(models.User{Email: "admin@healthmatch.direct", Name: "Imposter", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestFindUserByEmail(t *testing.T) {
	d, _ := newTestStore(t)

	u := d.FindUserByEmail("cardio@healthmatch.direct")
	require.NotNil(t, u)
	assert.Equal(t, "doc001", u.ID)

	assert.Nil(t, d.FindUserByEmail("nobody@healthmatch.direct"))
	// matching is case-sensitive
	assert.Nil(t, d.FindUserByEmail("CARDIO@healthmatch.direct"))
}

func TestUsersRoleFilterPreservesOrder(t *testing.T) {
	d, _ := newTestStore(t)

	doctors := d.Users(models.RoleDoctor)
	require.Len(t, doctors, 4)
	assert.Equal(t, "doc001", doctors[0].ID)
	assert.Equal(t, "doc004", doctors[3].ID)

	all := d.Users("")
	assert.Len(t, all, 8)
}

func TestUpdateUserUnknownIDIsNoop(t *testing.T) {
	d, _ := newTestStore(t)

	before := d.AppData()
	require.NoError(t, d.UpdateUser(models.User{ID: "ghost", Email: "g@x.com", Name: "Ghost", Role: models.RolePatient}))
	assert.Equal(t, before.Users, d.AppData().Users)
}

func TestRemoveUserCascades(t *testing.T) {
	d, _ := newTestStore(t)

	require.NoError(t, d.RemoveUser("doc001"))

	assert.Nil(t, d.FindUserByID("doc001"))
	assert.Nil(t, d.DoctorProfile("doc001"))
	assert.Empty(t, d.Appointments(AppointmentFilters{DoctorID: "doc001"}))

	doc := d.AppData()
	for _, a := range doc.Appointments {
		assert.NotEqual(t, "doc001", a.DoctorID)
		assert.NotEqual(t, "doc001", a.PatientID)
	}

	// idempotent: a second removal never fails
	require.NoError(t, d.RemoveUser("doc001"))
}

func TestRemoveUserDropsPatientData(t *testing.T) {
	d, _ := newTestStore(t)

	require.NotNil(t, d.PatientData("pat001"))
	require.NoError(t, d.RemoveUser("pat001"))

	assert.Nil(t, d.PatientData("pat001"))
	assert.Empty(t, d.Appointments(AppointmentFilters{PatientID: "pat001"}))
}

func TestAddDoctorProfileDuplicateIsRejected(t *testing.T) {
	d, _ := newTestStore(t)

	// doc004 has no profile in the factory dataset
	p := models.DoctorProfile{UserID: "doc004", Specialization: "Neurologist"}
	require.NoError(t, d.AddDoctorProfile(p))

	err := d.AddDoctorProfile(models.DoctorProfile{UserID: "doc004", Specialization: "Oncologist"})
	assert.ErrorIs(t, err, ErrProfileExists)

	count := 0
	for _, dp := range d.DoctorProfiles() {
		if dp.UserID == "doc004" {
			count++
			assert.Equal(t, "Neurologist", dp.Specialization)
		}
	}
	assert.Equal(t, 1, count)
}

func TestAddPatientDataDuplicateIsRejected(t *testing.T) {
	d, _ := newTestStore(t)

	err := d.AddPatientData(models.PatientData{UserID: "pat001"})
	assert.ErrorIs(t, err, ErrPatientDataExists)
}

func TestAppointmentsFilterAndDenormalize(t *testing.T) {
	d, _ := newTestStore(t)

	appts := d.Appointments(AppointmentFilters{DoctorID: "doc001"})
	require.NotEmpty(t, appts)
	for _, a := range appts {
		assert.Equal(t, "doc001", a.DoctorID)
		assert.Equal(t, "Dr. Eve Heartwell", a.DoctorName)
		assert.Equal(t, "Cardiologist", a.DoctorSpecialization)
		assert.NotEmpty(t, a.PatientName)
	}

	confirmed := d.Appointments(AppointmentFilters{PatientID: "pat001", Status: models.StatusConfirmed})
	require.Len(t, confirmed, 1)
	assert.Equal(t, "appt003", confirmed[0].ID)
}

func TestAppointmentsDanglingReferencesYieldEmptyNames(t *testing.T) {
	d, _ := newTestStore(t)

	added, err := d.AddAppointment(models.Appointment{
		PatientID: "ghost-patient",
		DoctorID:  "ghost-doctor",
		DateTime:  "2024-05-01T09:00:00Z",
		Status:    models.StatusPending,
	})
	require.NoError(t, err)

	got := d.AppointmentByID(added.ID)
	require.NotNil(t, got)
	assert.Empty(t, got.PatientName)
	assert.Empty(t, got.DoctorName)
	assert.Empty(t, got.DoctorSpecialization)
}

func TestDenormalizedFieldsAreNotPersisted(t *testing.T) {
	d, _ := newTestStore(t)

	_, err := d.AddAppointment(models.Appointment{
		PatientID:   "pat001",
		DoctorID:    "doc001",
		PatientName: "should be discarded",
		DateTime:    "2024-05-01T09:00:00Z",
		Status:      models.StatusPending,
	})
	require.NoError(t, err)

	for _, a := range d.AppData().Appointments {
		assert.Empty(t, a.PatientName)
		assert.Empty(t, a.DoctorName)
		assert.Empty(t, a.DoctorSpecialization)
	}
}

func TestCancelAppointment(t *testing.T) {
	d, _ := newTestStore(t)

	added, err := d.AddAppointment(models.Appointment{
		PatientID: "pat001",
		DoctorID:  "doc001",
		DateTime:  "2024-01-01T00:00:00Z",
		Status:    models.StatusPending,
	})
	require.NoError(t, err)

	require.NoError(t, d.CancelAppointment(added.ID))

	got := d.AppointmentByID(added.ID)
	require.NotNil(t, got)
	assert.Equal(t, models.StatusCancelled, got.Status)

	// unknown id is a no-op, not an error
	require.NoError(t, d.CancelAppointment("nope"))
}

func TestDoctorsBySpecializationCaseInsensitive(t *testing.T) {
	d, _ := newTestStore(t)

	matches := d.DoctorsBySpecialization("cardiologist")
	require.Len(t, matches, 1)
	assert.Equal(t, "doc001", matches[0].UserID)

	assert.Empty(t, d.DoctorsBySpecialization("Cardio")) // exact match only
}

func TestSaveAppDataRoundTrip(t *testing.T) {
	d, _ := newTestStore(t)

	doc := d.AppData()
	doc.Users = append(doc.Users, models.User{ID: "x1", Email: "x@x.com", Name: "X", Role: models.RolePatient})
	require.NoError(t, d.SaveAppData(doc))

	assert.Equal(t, doc, d.AppData())
}

func TestAddSymptomEntry(t *testing.T) {
	d, _ := newTestStore(t)

	entry, err := d.AddSymptomEntry("pat002", models.SymptomEntry{Symptoms: "Headache", MatchedSpecialist: "Neurologist"})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.NotEmpty(t, entry.Date)

	record := d.PatientData("pat002")
	require.NotNil(t, record)
	require.Len(t, record.SymptomsLog, 2)
	assert.Equal(t, entry, record.SymptomsLog[1]) // appended, chronological order kept

	_, err = d.AddSymptomEntry("ghost", models.SymptomEntry{Symptoms: "n/a"})
	assert.Error(t, err)
}

func TestSignupScenario(t *testing.T) {
	d, _ := newTestStore(t)

	tess, err := d.AddUser(models.User{Name: "Tess", Email: "tess@x.com", Role: models.RolePatient})
	require.NoError(t, err)

	require.NoError(t, d.AddPatientData(models.PatientData{UserID: tess.ID, SymptomsLog: []models.SymptomEntry{}}))

	record := d.PatientData(tess.ID)
	require.NotNil(t, record)
	assert.Empty(t, record.SymptomsLog)
	assert.Empty(t, record.AssignedDoctorID)
}

func TestCorruptSlotFallsBackToDefault(t *testing.T) {
	d, mem := newTestStore(t)

	mem.Corrupt("healthMatchDirectData")
	assert.Equal(t, DefaultAppData(), d.AppData())
}
