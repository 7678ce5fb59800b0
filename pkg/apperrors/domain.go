package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

// ErrNotFound converts a lookup miss (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict reports a state-machine precondition failure. The
// original API surfaced these as 400, and clients depend on that.
func ErrConflict(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusBadRequest)
}

// Auth & users

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"A user with this email already exists",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

var ErrNotAuthenticated = New(
	CodeUnauthorized,
	"auth",
	"You're not logged in.",
	http.StatusUnauthorized,
)

var ErrInvalidResetToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired password reset token",
	http.StatusUnauthorized,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// Jobs & applications

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

var ErrNotASitter = New(
	CodeForbidden,
	"job",
	"Only pet sitters can apply for jobs",
	http.StatusForbidden,
)

var ErrJobNotAvailable = New(
	CodeConflict,
	"job",
	"This job is no longer available",
	http.StatusBadRequest,
)

var ErrOwnJobApplication = New(
	CodeConflict,
	"job",
	"You cannot apply to your own job",
	http.StatusBadRequest,
)

var ErrAlreadyApplied = New(
	CodeConflict,
	"application",
	"You have already applied for this job",
	http.StatusBadRequest,
)

var ErrJobNotOpenForUpdate = New(
	CodeConflict,
	"application",
	"The job status must be 'open' to update the application.",
	http.StatusBadRequest,
)

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

var ErrMissingApplicationStatus = New(
	CodeValidationFailed,
	"application",
	"New status is required for the update",
	http.StatusBadRequest,
)

var ErrNotJobPoster = New(
	CodeForbidden,
	"job",
	"Only the user who posted the job can perform this action",
	http.StatusForbidden,
)

var ErrDuplicateJob = New(
	CodeConflict,
	"job",
	"A job for this pet, location and time window already exists",
	http.StatusBadRequest,
)

// Pets & locations

var ErrPetNotFound = New(
	CodeNotFound,
	"pet",
	"Pet not found",
	http.StatusNotFound,
)

var ErrNotPetOwner = New(
	CodeForbidden,
	"pet",
	"You do not own this pet",
	http.StatusForbidden,
)

var ErrDuplicatePetName = New(
	CodeConflict,
	"pet",
	"You already have a pet with this name",
	http.StatusBadRequest,
)

var ErrLocationNotFound = New(
	CodeNotFound,
	"location",
	"Location not found",
	http.StatusNotFound,
)

var ErrNotLocationOwner = New(
	CodeForbidden,
	"location",
	"You do not own this location",
	http.StatusForbidden,
)

var ErrUnsupportedArea = New(
	CodeValidationFailed,
	"location",
	"Service is only available in New York City, USA",
	http.StatusBadRequest,
)

var ErrDuplicateLocation = New(
	CodeConflict,
	"location",
	"This address has already been registered",
	http.StatusBadRequest,
)

// Uploads

var ErrFileTooLarge = New(
	CodeValidationFailed,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
