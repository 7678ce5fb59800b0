package services

import (
	"testing"
	"time"

	"petwork_backend/internal/models"
	"petwork_backend/internal/services/dto"
	"petwork_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobServiceFixture() (*JobService, *models.User, *models.Pet, *models.Location) {
	owner := &models.User{
		Email:    "owner@example.com",
		UserType: []string{"owner"},
	}
	userRepo := newFakeUserRepo(owner)

	pet := &models.Pet{OwnerID: owner.ID, Name: "Biscuit", Breed: "Corgi", Weight: "12kg"}
	petRepo := newFakePetRepo(pet)

	location := &models.Location{
		UserID: owner.ID, Address: "12 W 4th St", City: "New York City", Country: "USA",
	}
	locationRepo := newFakeLocationRepo(location)

	svc := NewJobService(newFakeJobRepo(), petRepo, locationRepo, userRepo)
	return svc, owner, pet, location
}

func validJobRequest(pet *models.Pet, location *models.Location) *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		PetID:      pet.ID,
		LocationID: location.ID,
		Pay:        55,
		Start:      time.Now().Add(24 * time.Hour),
		End:        time.Now().Add(48 * time.Hour),
	}
}

func TestJobService_Create(t *testing.T) {
	svc, owner, pet, location := newJobServiceFixture()

	job, err := svc.Create(nil, owner.ID, validJobRequest(pet, location))
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.Equal(t, owner.ID, job.UserID)
}

func TestJobService_CreateRequiresOwnerRole(t *testing.T) {
	svc, _, pet, location := newJobServiceFixture()

	sitter := &models.User{Email: "sitter@nyu.edu", UserType: []string{"sitter"}}
	require.NoError(t, svc.userRepo.Create(nil, sitter))

	_, err := svc.Create(nil, sitter.ID, validJobRequest(pet, location))
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}

func TestJobService_CreateRejectsForeignPetAndLocation(t *testing.T) {
	svc, _, pet, location := newJobServiceFixture()

	other := &models.User{Email: "other@example.com", UserType: []string{"owner"}}
	require.NoError(t, svc.userRepo.Create(nil, other))

	// Someone else's pet.
	_, err := svc.Create(nil, other.ID, validJobRequest(pet, location))
	assert.ErrorIs(t, err, apperrors.ErrNotPetOwner)

	// Someone else's location.
	foreignPet := &models.Pet{OwnerID: other.ID, Name: "Ghost", Breed: "Husky", Weight: "20kg"}
	require.NoError(t, svc.petRepo.Create(nil, foreignPet))

	_, err = svc.Create(nil, other.ID, validJobRequest(foreignPet, location))
	assert.ErrorIs(t, err, apperrors.ErrNotLocationOwner)
}

func TestJobService_CreateRejectsInvertedWindow(t *testing.T) {
	svc, owner, pet, location := newJobServiceFixture()

	req := validJobRequest(pet, location)
	req.Start, req.End = req.End, req.Start

	_, err := svc.Create(nil, owner.ID, req)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestJobService_ListSplitsByRole(t *testing.T) {
	svc, owner, pet, location := newJobServiceFixture()

	_, err := svc.Create(nil, owner.ID, validJobRequest(pet, location))
	require.NoError(t, err)

	sitter := &models.User{Email: "sitter@nyu.edu", UserType: []string{"sitter"}}
	require.NoError(t, svc.userRepo.Create(nil, sitter))

	ownerView, err := svc.List(nil, owner.ID)
	require.NoError(t, err)
	assert.Len(t, ownerView.OwnerJobs, 1)
	assert.Empty(t, ownerView.SitterOpenJobs)

	sitterView, err := svc.List(nil, sitter.ID)
	require.NoError(t, err)
	assert.Empty(t, sitterView.OwnerJobs)
	assert.Len(t, sitterView.SitterOpenJobs, 1)
}

func TestJobService_GetUnknownJob(t *testing.T) {
	svc, _, _, _ := newJobServiceFixture()

	_, err := svc.Get(nil, "missing")
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}
