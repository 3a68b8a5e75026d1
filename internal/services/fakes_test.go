package services

import (
	"sort"
	"time"

	"travelrequests/internal/models"
)

// In-memory stands-ins for the postgres repositories.

type fakeUserRepo struct {
	users  map[int]*models.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(id int) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	u, _ := f.GetByEmail(email)
	return u != nil, nil
}

func (f *fakeUserRepo) List() ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeTravelRequestRepo struct {
	requests map[int]*models.TravelRequest
	nextID   int
}

func newFakeTravelRequestRepo() *fakeTravelRequestRepo {
	return &fakeTravelRequestRepo{requests: map[int]*models.TravelRequest{}, nextID: 1}
}

func (f *fakeTravelRequestRepo) Create(request *models.TravelRequest) error {
	request.ID = f.nextID
	f.nextID++
	f.requests[request.ID] = request
	return nil
}

func (f *fakeTravelRequestRepo) GetByID(id int) (*models.TravelRequest, error) {
	return f.requests[id], nil
}

func (f *fakeTravelRequestRepo) ListByUser(userID int) ([]*models.TravelRequest, error) {
	var out []*models.TravelRequest
	for _, r := range f.requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *fakeTravelRequestRepo) ListAll() ([]*models.TravelRequest, error) {
	out := make([]*models.TravelRequest, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, r)
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *fakeTravelRequestRepo) Update(request *models.TravelRequest) error {
	f.requests[request.ID] = request
	return nil
}

func sortNewestFirst(requests []*models.TravelRequest) {
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}

type fakeRecoveryCodeRepo struct {
	codes  map[int]*models.RecoveryCode
	nextID int
}

func newFakeRecoveryCodeRepo() *fakeRecoveryCodeRepo {
	return &fakeRecoveryCodeRepo{codes: map[int]*models.RecoveryCode{}, nextID: 1}
}

func (f *fakeRecoveryCodeRepo) Create(code *models.RecoveryCode) error {
	code.ID = f.nextID
	f.nextID++
	f.codes[code.ID] = code
	return nil
}

func (f *fakeRecoveryCodeRepo) ValidCode(email, code string) (*models.RecoveryCode, error) {
	for _, rc := range f.codes {
		if rc.Email == email && rc.Code == code &&
			rc.Active && !rc.Used && rc.ExpiresAt.After(time.Now()) {
			return rc, nil
		}
	}
	return nil, nil
}

func (f *fakeRecoveryCodeRepo) Update(code *models.RecoveryCode) error {
	f.codes[code.ID] = code
	return nil
}

func (f *fakeRecoveryCodeRepo) InvalidateAllForUser(userID int) error {
	for id, rc := range f.codes {
		if rc.UserID == userID {
			delete(f.codes, id)
		}
	}
	return nil
}
