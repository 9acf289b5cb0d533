// Package store holds the in-memory collections backing the API.
//
// Each store owns its records outright: values are copied on the way in and
// on the way out, so no caller ever holds a reference into the store's
// memory. An RWMutex serializes writers — chi serves requests concurrently,
// and ID assignment and the email uniqueness check must not race.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/xid"

	"github.com/sakif/property-listings/internal/apperror"
	"github.com/sakif/property-listings/internal/model"
)

// UserStore is an insertion-ordered in-memory collection of users.
type UserStore struct {
	mu    sync.RWMutex
	users []model.User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

// List returns all users in insertion order.
func (s *UserStore) List() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// GetByID returns the user with the given ID, or apperror.ErrNotFound.
func (s *UserStore) GetByID(id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, apperror.NotFound("User")
}

// Create assigns a fresh ID, stamps createdAt, and appends the user.
// The email uniqueness check runs under the same lock as the append, so two
// concurrent creates with the same email cannot both succeed.
func (s *UserStore) Create(req *model.CreateUserRequest) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailInUse(req.Email, "") {
		return nil, apperror.Conflict("Email already exists")
	}

	user := model.User{
		ID:        xid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.users = append(s.users, user)
	return &user, nil
}

// Update merges the fields present in req onto the stored user. ID and
// createdAt are never touched. A user may keep its own email; only a
// different user already holding it is a conflict.
func (s *UserStore) Update(id string, req *model.UpdateUserRequest) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.users {
		if s.users[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperror.NotFound("User")
	}

	if req.Email != nil && s.emailInUse(*req.Email, id) {
		return nil, apperror.Conflict("Email already exists")
	}

	if req.Name != nil {
		s.users[idx].Name = *req.Name
	}
	if req.Email != nil {
		s.users[idx].Email = *req.Email
	}

	user := s.users[idx]
	return &user, nil
}

// Delete removes and returns the user with the given ID.
func (s *UserStore) Delete(id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			s.users = append(s.users[:i], s.users[i+1:]...)
			return &user, nil
		}
	}
	return nil, apperror.NotFound("User")
}

// emailInUse reports whether any user other than excludeID holds the email.
// Stored emails are already normalized, but compare case-insensitively
// anyway so the invariant does not depend on the caller having normalized.
// Callers must hold at least the read lock.
func (s *UserStore) emailInUse(email, excludeID string) bool {
	for i := range s.users {
		if s.users[i].ID != excludeID && strings.EqualFold(s.users[i].Email, email) {
			return true
		}
	}
	return false
}
