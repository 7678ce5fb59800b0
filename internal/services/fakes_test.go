package services

import (
	"petwork_backend/internal/models"
	"petwork_backend/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repositories for service tests. The db argument is ignored
// so tests can pass nil.

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ *gorm.DB, userID, passwordHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) UpdateProfilePicture(_ *gorm.DB, userID, key string) error {
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.ProfilePicture = key
	return nil
}

func (r *fakeUserRepo) Delete(_ *gorm.DB, userID string) error {
	if _, ok := r.users[userID]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.users, userID)
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*models.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*models.Session{}}
}

func (r *fakeSessionRepo) Create(_ *gorm.DB, session *models.Session) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	r.sessions[session.Token] = session
	return nil
}

func (r *fakeSessionRepo) FindByToken(_ *gorm.DB, token string) (*models.Session, error) {
	if s, ok := r.sessions[token]; ok {
		return s, nil
	}
	return nil, repositories.ErrSessionNotFound
}

func (r *fakeSessionRepo) Delete(_ *gorm.DB, token string) error {
	if _, ok := r.sessions[token]; !ok {
		return repositories.ErrSessionNotFound
	}
	delete(r.sessions, token)
	return nil
}

func (r *fakeSessionRepo) DeleteByUser(_ *gorm.DB, userID string) error {
	for token, s := range r.sessions {
		if s.UserID == userID {
			delete(r.sessions, token)
		}
	}
	return nil
}

func (r *fakeSessionRepo) CleanExpired(_ *gorm.DB) error { return nil }

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func newFakeJobRepo(jobs ...*models.Job) *fakeJobRepo {
	r := &fakeJobRepo{jobs: map[string]*models.Job{}}
	for _, j := range jobs {
		if j.ID == "" {
			j.ID = uuid.NewString()
		}
		r.jobs[j.ID] = j
	}
	return r
}

func (r *fakeJobRepo) Create(_ *gorm.DB, job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) FindByID(_ *gorm.DB, id string) (*models.Job, error) {
	if j, ok := r.jobs[id]; ok {
		return j, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindByIDForUpdate(db *gorm.DB, id string) (*models.Job, error) {
	return r.FindByID(db, id)
}

func (r *fakeJobRepo) FindByPoster(_ *gorm.DB, userID string) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if j.UserID == userID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) FindOpenExcludingPoster(_ *gorm.DB, userID string) ([]models.Job, error) {
	var out []models.Job
	for _, j := range r.jobs {
		if j.UserID != userID && j.Status == models.JobStatusOpen {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) UpdateStatus(_ *gorm.DB, jobID string, status models.JobStatus) error {
	j, ok := r.jobs[jobID]
	if !ok {
		return repositories.ErrJobNotFound
	}
	j.Status = status
	return nil
}

type fakeApplicationRepo struct {
	applications map[string]*models.Application
}

func newFakeApplicationRepo(applications ...*models.Application) *fakeApplicationRepo {
	r := &fakeApplicationRepo{applications: map[string]*models.Application{}}
	for _, a := range applications {
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		r.applications[a.ID] = a
	}
	return r
}

func (r *fakeApplicationRepo) Create(_ *gorm.DB, application *models.Application) error {
	for _, a := range r.applications {
		if a.JobID == application.JobID && a.UserID == application.UserID {
			return repositories.ErrApplicationAlreadyExists
		}
	}
	if application.ID == "" {
		application.ID = uuid.NewString()
	}
	r.applications[application.ID] = application
	return nil
}

func (r *fakeApplicationRepo) FindByID(_ *gorm.DB, id string) (*models.Application, error) {
	if a, ok := r.applications[id]; ok {
		return a, nil
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) FindByJob(_ *gorm.DB, jobID string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.applications {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByUser(_ *gorm.DB, userID string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range r.applications {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) ExistsForUserAndJob(_ *gorm.DB, userID, jobID string) (bool, error) {
	for _, a := range r.applications {
		if a.JobID == jobID && a.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) CountByJob(_ *gorm.DB, jobID string) (int64, error) {
	var count int64
	for _, a := range r.applications {
		if a.JobID == jobID {
			count++
		}
	}
	return count, nil
}

func (r *fakeApplicationRepo) ExistsAcceptedForJob(_ *gorm.DB, jobID string) (bool, error) {
	for _, a := range r.applications {
		if a.JobID == jobID && a.Status == models.ApplicationStatusAccepted {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ *gorm.DB, id string, status models.ApplicationStatus) error {
	a, ok := r.applications[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}

type fakePetRepo struct {
	pets map[string]*models.Pet
}

func newFakePetRepo(pets ...*models.Pet) *fakePetRepo {
	r := &fakePetRepo{pets: map[string]*models.Pet{}}
	for _, p := range pets {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		r.pets[p.ID] = p
	}
	return r
}

func (r *fakePetRepo) FindByID(_ *gorm.DB, id string) (*models.Pet, error) {
	if p, ok := r.pets[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrPetNotFound
}

func (r *fakePetRepo) FindByOwner(_ *gorm.DB, ownerID string) ([]models.Pet, error) {
	var out []models.Pet
	for _, p := range r.pets {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePetRepo) Create(_ *gorm.DB, pet *models.Pet) error {
	for _, p := range r.pets {
		if p.OwnerID == pet.OwnerID && p.Name == pet.Name {
			return repositories.ErrPetAlreadyExists
		}
	}
	if pet.ID == "" {
		pet.ID = uuid.NewString()
	}
	r.pets[pet.ID] = pet
	return nil
}

func (r *fakePetRepo) Update(_ *gorm.DB, pet *models.Pet) error {
	r.pets[pet.ID] = pet
	return nil
}

func (r *fakePetRepo) AppendPicture(_ *gorm.DB, petID, key string) error {
	p, ok := r.pets[petID]
	if !ok {
		return repositories.ErrPetNotFound
	}
	p.Pictures = append(p.Pictures, key)
	return nil
}

func (r *fakePetRepo) Delete(_ *gorm.DB, id string) error {
	if _, ok := r.pets[id]; !ok {
		return repositories.ErrPetNotFound
	}
	delete(r.pets, id)
	return nil
}

type fakeLocationRepo struct {
	locations map[string]*models.Location
}

func newFakeLocationRepo(locations ...*models.Location) *fakeLocationRepo {
	r := &fakeLocationRepo{locations: map[string]*models.Location{}}
	for _, l := range locations {
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
		r.locations[l.ID] = l
	}
	return r
}

func (r *fakeLocationRepo) FindByID(_ *gorm.DB, id string) (*models.Location, error) {
	if l, ok := r.locations[id]; ok {
		return l, nil
	}
	return nil, repositories.ErrLocationNotFound
}

func (r *fakeLocationRepo) FindByUser(_ *gorm.DB, userID string) ([]models.Location, error) {
	var out []models.Location
	for _, l := range r.locations {
		if l.UserID == userID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeLocationRepo) Create(_ *gorm.DB, location *models.Location) error {
	for _, l := range r.locations {
		if l.Address == location.Address && l.City == location.City && l.Country == location.Country {
			return repositories.ErrLocationAlreadyExists
		}
	}
	if location.ID == "" {
		location.ID = uuid.NewString()
	}
	r.locations[location.ID] = location
	return nil
}

func (r *fakeLocationRepo) Update(_ *gorm.DB, location *models.Location) error {
	r.locations[location.ID] = location
	return nil
}

func (r *fakeLocationRepo) Delete(_ *gorm.DB, id string) error {
	if _, ok := r.locations[id]; !ok {
		return repositories.ErrLocationNotFound
	}
	delete(r.locations, id)
	return nil
}

func (r *fakeLocationRepo) ClearDefaults(_ *gorm.DB, userID, exceptID string) error {
	for _, l := range r.locations {
		if l.UserID == userID && l.ID != exceptID {
			l.DefaultLocation = false
		}
	}
	return nil
}
