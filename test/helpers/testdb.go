package helpers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"petwork_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// RegisterAndLogin creates an account through the API and logs it in,
// returning the session token and the stored user row.
func RegisterAndLogin(t *testing.T, ts *TestServer, email, password string, roles []string) (string, *models.User) {
	registerBody := map[string]interface{}{
		"email":         email,
		"password":      password,
		"first_name":    "Test",
		"last_name":     "User",
		"user_type":     roles,
		"date_of_birth": "1999-04-12",
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/api/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "registration should succeed: "+body)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	res, body = ts.SendRequest(t, http.MethodPost, "/api/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed: "+body)

	session := ts.SessionCookie(res)
	require.NotEmpty(t, session, "login should set the session cookie")

	var user models.User
	require.NoError(t, ts.DB.Where("email = ?", email).First(&user).Error)

	return session, &user
}

// CreateAndLoginOwner registers an owner with a unique email.
func CreateAndLoginOwner(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("owner_%d@example.com", time.Now().UnixNano())
	return RegisterAndLogin(t, ts, email, "password123", []string{"owner"})
}

// CreateAndLoginSitter registers a sitter with a unique campus email.
func CreateAndLoginSitter(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("sitter_%d@nyu.edu", time.Now().UnixNano())
	return RegisterAndLogin(t, ts, email, "password123", []string{"sitter"})
}

// CreateTestPet inserts a pet directly.
func CreateTestPet(t *testing.T, db *gorm.DB, ownerID, name string) *models.Pet {
	pet := &models.Pet{
		OwnerID: ownerID,
		Name:    name,
		Breed:   "Corgi",
		Weight:  "12kg",
	}
	require.NoError(t, db.Create(pet).Error)
	return pet
}

// CreateTestLocation inserts a location directly.
func CreateTestLocation(t *testing.T, db *gorm.DB, userID, address string) *models.Location {
	location := &models.Location{
		UserID:  userID,
		Address: address,
		City:    "New York City",
		Country: "USA",
	}
	require.NoError(t, db.Create(location).Error)
	return location
}

// CreateTestJob inserts an open job directly.
func CreateTestJob(t *testing.T, db *gorm.DB, posterID, petID, locationID string) *models.Job {
	job := &models.Job{
		UserID:     posterID,
		PetID:      petID,
		LocationID: locationID,
		Status:     models.JobStatusOpen,
		Pay:        45.50,
		Start:      time.Now().Add(24 * time.Hour),
		End:        time.Now().Add(48 * time.Hour),
	}
	require.NoError(t, db.Create(job).Error)
	return job
}

// CreateJobForOwner provisions pet, location and job for a poster in
// one call. The suffix keeps unique columns apart between tests.
func CreateJobForOwner(t *testing.T, db *gorm.DB, ownerID, suffix string) *models.Job {
	pet := CreateTestPet(t, db, ownerID, "Pet "+suffix)
	location := CreateTestLocation(t, db, ownerID, "Address "+suffix)
	return CreateTestJob(t, db, ownerID, pet.ID, location.ID)
}
