package datastore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthmatch/healthmatch-api/internal/models"
)

func counts(doc models.AppData) [4]int {
	return [4]int{len(doc.Users), len(doc.DoctorProfiles), len(doc.PatientData), len(doc.Appointments)}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	d, _ := newTestStore(t)

	require.NoError(t, d.Bootstrap())
	once := counts(d.AppData())

	require.NoError(t, d.Bootstrap())
	assert.Equal(t, once, counts(d.AppData()))
}

func TestBootstrapMergesMissingSeedRecords(t *testing.T) {
	d, _ := newTestStore(t)

	// Persist a document missing one seed record from each collection.
	doc := DefaultAppData()
	doc.Users = doc.Users[:len(doc.Users)-1] // drop pat003
	doc.DoctorProfiles = doc.DoctorProfiles[:2]
	doc.PatientData = doc.PatientData[:2]
	doc.Appointments = doc.Appointments[:5]
	require.NoError(t, d.SaveAppData(doc))

	require.NoError(t, d.Bootstrap())

	merged := d.AppData()
	assert.Equal(t, counts(DefaultAppData()), counts(merged))
	assert.NotNil(t, d.FindUserByEmail("linda@healthmatch.direct"))
	assert.NotNil(t, d.DoctorProfile("doc003"))
	assert.NotNil(t, d.PatientData("pat003"))
	assert.NotNil(t, d.AppointmentByID("appt007"))
}

func TestBootstrapNeverOverwritesPersistedRecords(t *testing.T) {
	d, _ := newTestStore(t)

	doc := DefaultAppData()
	doc.Users[0].Name = "Renamed Admin"
	require.NoError(t, d.SaveAppData(doc))

	require.NoError(t, d.Bootstrap())

	admin := d.FindUserByEmail("admin@healthmatch.direct")
	require.NotNil(t, admin)
	assert.Equal(t, "Renamed Admin", admin.Name)
}

func TestBootstrapKeepsNonSeedRecords(t *testing.T) {
	d, _ := newTestStore(t)

	added, err := d.AddUser(models.User{Email: "keep@x.com", Name: "Keeper", Role: models.RolePatient})
	require.NoError(t, err)

	require.NoError(t, d.Bootstrap())

	assert.NotNil(t, d.FindUserByID(added.ID))
	assert.Len(t, d.Users(""), len(seedUsers())+1)
}

func TestResetRestoresFactoryDataset(t *testing.T) {
	d, _ := newTestStore(t)

	_, err := d.AddUser(models.User{Email: "gone@x.com", Name: "Gone", Role: models.RolePatient})
	require.NoError(t, err)

	require.NoError(t, d.Reset())
	assert.Equal(t, DefaultAppData(), d.AppData())
}
