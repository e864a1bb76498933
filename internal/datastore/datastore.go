// Package datastore is the data-access core: a repository over a single
// JSON document holding users, doctor profiles, patient records and
// appointments. Every operation reads the whole document, derives or
// mutates in memory, and (for mutations) writes the whole document
// back, so cascading changes land in one atomic slot write.
package datastore

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/healthmatch/healthmatch-api/internal/models"
	"github.com/healthmatch/healthmatch-api/internal/storage"
)

const appDataKey = "healthMatchDirectData"

var (
	ErrEmailTaken        = errors.New("a user with this email already exists")
	ErrProfileExists     = errors.New("doctor profile already exists for this user")
	ErrPatientDataExists = errors.New("patient data already exists for this user")
)

// DataStore serializes every read-modify-write cycle on its document
// behind one mutex, so concurrent callers in the same process cannot
// lose updates to each other. It is the only writer to its slot.
type DataStore struct {
	store storage.Store
	mu    sync.Mutex
}

func New(store storage.Store) *DataStore {
	return &DataStore{store: store}
}

// load returns the persisted document, or the factory dataset when the
// slot is empty or unreadable.
func (d *DataStore) load() models.AppData {
	var doc models.AppData
	if !d.store.Read(appDataKey, &doc) {
		return DefaultAppData()
	}
	return doc
}

func (d *DataStore) save(doc models.AppData) error {
	return d.store.Write(appDataKey, doc)
}

// AppData returns the full document, materializing the factory dataset
// if nothing is persisted yet.
func (d *DataStore) AppData() models.AppData {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load()
}

// SaveAppData overwrites the whole document in a single slot write.
func (d *DataStore) SaveAppData(doc models.AppData) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.save(doc)
}

// newID builds the opaque record ids the document uses: a type prefix,
// the creation time in unix millis, and a random suffix.
func newID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}

// --- Users ---

// FindUserByEmail returns the first user with an exact email match, or
// nil. Matching is case-sensitive.
func (d *DataStore) FindUserByEmail(email string) *models.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return findUserByEmail(d.load(), email)
}

// FindUserByID returns the user with the given id, or nil.
func (d *DataStore) FindUserByID(id string) *models.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	return findUserByID(d.load(), id)
}

// AddUser assigns a fresh id, appends the user and persists. The
// supplied ID field is ignored. A duplicate email is rejected with
// ErrEmailTaken.
func (d *DataStore) AddUser(u models.User) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.load()
	if findUserByEmail(doc, u.Email) != nil {
		return models.User{}, ErrEmailTaken
	}
	u.ID = newID("user")
	doc.Users = append(doc.Users, u)
	if err := d.save(doc); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// UpdateUser replaces the matching-id record in place. Unknown ids are
// a no-op, not an error.
func (d *DataStore) UpdateUser(u models.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.load()
	for i := range doc.Users {
		if doc.Users[i].ID == u.ID {
			doc.Users[i] = u
		}
	}
	return d.save(doc)
}

// Users returns all users in insertion order, or just those with the
// given role when role is non-empty.
func (d *DataStore) Users(role models.UserRole) []models.User {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.load()
	if role == "" {
		return doc.Users
	}
	out := make([]models.User, 0, len(doc.Users))
	for _, u := range doc.Users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// RemoveUser deletes the user and cascades: its doctor profile, its
// patient record, and every appointment where it appears as patient or
// doctor all go in the same document write. Calling it again for an
// already-absent id is a no-op.
func (d *DataStore) RemoveUser(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.load()

	users := doc.Users[:0:0]
	for _, u := range doc.Users {
		if u.ID != id {
			users = append(users, u)
		}
	}
	doc.Users = users

	profiles := doc.DoctorProfiles[:0:0]
	for _, p := range doc.DoctorProfiles {
		if p.UserID != id {
			profiles = append(profiles, p)
		}
	}
	doc.DoctorProfiles = profiles

	patients := doc.PatientData[:0:0]
	for _, p := range doc.PatientData {
		if p.UserID != id {
			patients = append(patients, p)
		}
	}
	doc.PatientData = patients

	appts := doc.Appointments[:0:0]
	for _, a := range doc.Appointments {
		if a.PatientID != id && a.DoctorID != id {
			appts = append(appts, a)
		}
	}
	doc.Appointments = appts

	return d.save(doc)
}

// --- Doctor profiles ---

// DoctorProfile returns the profile for userID, or nil.
func (d *DataStore) DoctorProfile(userID string) *models.DoctorProfile {
	d.mu.Lock()
	defer d.mu.Unlock()
	return findDoctorProfile(d.load(), userID)
}

func (d *DataStore) DoctorProfiles() []models.DoctorProfile {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.load().DoctorProfiles
}

// AddDoctorProfile appends the profile unless one already exists for
// that user, in which case it logs and returns ErrProfileExists
// without touching the document.
func (d *DataStore) AddDoctorProfile(p models.DoctorProfile) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.load()
	if findDoctorProfile(doc, p.UserID) != nil {
		log.Printf("datastore: doctor profile already exists for user %s", p.UserID)
		return ErrProfileExists
	}
	doc.DoctorProfiles = append(doc.DoctorProfiles, p)
	return d.save(doc)
}

// UpdateDoctorProfile replaces the profile with a matching userId.
// Unknown userIds are a no-op.
func (d *DataStore) UpdateDoctorProfile(p models.DoctorProfile) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.load()
	for i := range doc.DoctorProfiles {
		if doc.DoctorProfiles[i].UserID == p.UserID {
			doc.DoctorProfiles[i] = p
		}
	}
	return d.save(doc)
}

// DoctorsBySpecialization returns every profile whose specialization
// equals label, compared case-insensitively.
func (d *DataStore) DoctorsBySpecialization(label string) []models.DoctorProfile {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.load()
	out := make([]models.DoctorProfile, 0)
	for _, p := range doc.DoctorProfiles {
		if strings.EqualFold(p.Specialization, label) {
			out = append(out, p)
		}
	}
	return out
}

// --- Patient data ---

// PatientData returns the record for userID, or nil.
func (d *DataStore) PatientData(userID string) *models.PatientData {
	d.mu.Lock()
	defer d.mu.Unlock()
	return findPatientData(d.load(), userID)
}

// AddPatientData appends the record unless one already exists for that
// user (ErrPatientDataExists).
func (d *DataStore) AddPatientData(p models.PatientData) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.load()
	if findPatientData(doc, p.UserID) != nil {
		log.Printf("datastore: patient data already exists for user %s", p.UserID)
		return ErrPatientDataExists
	}
	doc.PatientData = append(doc.PatientData, p)
	return d.save(doc)
}

// UpdatePatientData replaces the record with a matching userId.
// Unknown userIds are a no-op.
func (d *DataStore) UpdatePatientData(p models.PatientData) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.load()
	for i := range doc.PatientData {
		if doc.PatientData[i].UserID == p.UserID {
			doc.PatientData[i] = p
		}
	}
	return d.save(doc)
}

// AddSymptomEntry assigns the entry an id and appends it to the
// patient's symptoms log, keeping insertion order chronological. The
// patient record must exist.
func (d *DataStore) AddSymptomEntry(userID string, entry models.SymptomEntry) (models.SymptomEntry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.load()
	for i := range doc.PatientData {
		if doc.PatientData[i].UserID == userID {
			entry.ID = newID("sym")
			if entry.Date == "" {
				entry.Date = time.Now().UTC().Format(time.RFC3339)
			}
			doc.PatientData[i].SymptomsLog = append(doc.PatientData[i].SymptomsLog, entry)
			return entry, d.save(doc)
		}
	}
	return models.SymptomEntry{}, fmt.Errorf("no patient data for user %s", userID)
}

// --- Appointments ---

// AppointmentFilters narrows an appointment listing. Zero-value fields
// are ignored.
type AppointmentFilters struct {
	PatientID string
	DoctorID  string
	Status    models.AppointmentStatus
}

// Appointments returns the filtered list with patientName, doctorName
// and doctorSpecialization joined in from the current users and doctor
// profiles. Dangling references simply leave those fields empty.
func (d *DataStore) Appointments(f AppointmentFilters) []models.Appointment {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.load()
	out := make([]models.Appointment, 0, len(doc.Appointments))
	for _, a := range doc.Appointments {
		if f.PatientID != "" && a.PatientID != f.PatientID {
			continue
		}
		if f.DoctorID != "" && a.DoctorID != f.DoctorID {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		out = append(out, denormalize(doc, a))
	}
	return out
}

// AppointmentByID returns the denormalized appointment, or nil.
func (d *DataStore) AppointmentByID(id string) *models.Appointment {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.load()
	for _, a := range doc.Appointments {
		if a.ID == id {
			a = denormalize(doc, a)
			return &a
		}
	}
	return nil
}

// AddAppointment assigns a fresh id, appends and persists. Any
// denormalized display fields on the input are discarded.
func (d *DataStore) AddAppointment(a models.Appointment) (models.Appointment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.load()
	a.ID = newID("appt")
	a = stripDenormalized(a)
	doc.Appointments = append(doc.Appointments, a)
	if err := d.save(doc); err != nil {
		return models.Appointment{}, err
	}
	return a, nil
}

// UpdateAppointment replaces the matching-id record. Unknown ids are a
// no-op. Denormalized display fields are discarded before persisting.
func (d *DataStore) UpdateAppointment(a models.Appointment) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	a = stripDenormalized(a)
	doc := d.load()
	for i := range doc.Appointments {
		if doc.Appointments[i].ID == a.ID {
			doc.Appointments[i] = a
		}
	}
	return d.save(doc)
}

// CancelAppointment sets the status to cancelled in place. Unknown ids
// are a no-op.
func (d *DataStore) CancelAppointment(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.load()
	for i := range doc.Appointments {
		if doc.Appointments[i].ID == id {
			doc.Appointments[i].Status = models.StatusCancelled
			return d.save(doc)
		}
	}
	return nil
}

// --- document-local lookups ---

func findUserByEmail(doc models.AppData, email string) *models.User {
	for i := range doc.Users {
		if doc.Users[i].Email == email {
			return &doc.Users[i]
		}
	}
	return nil
}

func findUserByID(doc models.AppData, id string) *models.User {
	for i := range doc.Users {
		if doc.Users[i].ID == id {
			return &doc.Users[i]
		}
	}
	return nil
}

func findDoctorProfile(doc models.AppData, userID string) *models.DoctorProfile {
	for i := range doc.DoctorProfiles {
		if doc.DoctorProfiles[i].UserID == userID {
			return &doc.DoctorProfiles[i]
		}
	}
	return nil
}

func findPatientData(doc models.AppData, userID string) *models.PatientData {
	for i := range doc.PatientData {
		if doc.PatientData[i].UserID == userID {
			return &doc.PatientData[i]
		}
	}
	return nil
}

func denormalize(doc models.AppData, a models.Appointment) models.Appointment {
	if patient := findUserByID(doc, a.PatientID); patient != nil {
		a.PatientName = patient.Name
	}
	if doctor := findUserByID(doc, a.DoctorID); doctor != nil {
		a.DoctorName = doctor.Name
	}
	if profile := findDoctorProfile(doc, a.DoctorID); profile != nil {
		a.DoctorSpecialization = profile.Specialization
	}
	return a
}

func stripDenormalized(a models.Appointment) models.Appointment {
	a.PatientName = ""
	a.DoctorName = ""
	a.DoctorSpecialization = ""
	return a
}
