// Package auth gates staff access. Admin accounts move through an approval
// state machine (PENDING then ACCEPTED or REJECTED) and only the single
// owner identity may decide other accounts.
package auth

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/malakstore/souq/internal/models"
	"github.com/malakstore/souq/internal/store"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("email or password incorrect")
	ErrOwnerOnly          = errors.New("only the store owner may manage admins")
	ErrAlreadyDecided     = errors.New("admin account already decided")
	ErrEmailTaken         = errors.New("email already registered")
	ErrBadToken           = errors.New("unknown or expired token")
)

// NotAuthorizedError reports a correct credential match on an account that
// is not ACCEPTED; it carries the current status so the UI can show it.
type NotAuthorizedError struct {
	Status models.AdminStatus
}

func (e *NotAuthorizedError) Error() string {
	return fmt.Sprintf("account not authorized (status: %s)", e.Status)
}

type Service struct {
	store      *store.Store
	ownerEmail string

	mu     sync.RWMutex
	tokens map[string]string // token -> admin id
}

// New builds the service and seeds the owner account: the one fixed admin
// identity which is always ACCEPTED and never created via registration.
func New(s *store.Store, ownerName, ownerEmail, ownerPassword string) (*Service, error) {
	svc := &Service{
		store:      s,
		ownerEmail: ownerEmail,
		tokens:     make(map[string]string),
	}

	if _, err := s.AdminByEmail(ownerEmail); errors.Is(err, store.ErrNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte(ownerPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash owner password: %w", err)
		}
		s.AddAdmin(models.User{
			ID:       uuid.NewString(),
			Name:     ownerName,
			Email:    ownerEmail,
			Password: string(hash),
			Role:     models.RoleAdmin,
			Status:   models.AdminStatusAccepted,
		})
	}
	return svc, nil
}

// Login authenticates a staff member. A missing account or wrong password
// is ErrInvalidCredentials; a matched account that is not ACCEPTED fails
// with its current status. Success issues an opaque session token.
func (s *Service) Login(email, password string) (models.User, string, error) {
	admin, err := s.store.AdminByEmail(email)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if admin.Status != models.AdminStatusAccepted {
		return models.User{}, "", &NotAuthorizedError{Status: admin.Status}
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = admin.ID
	s.mu.Unlock()
	return admin, token, nil
}

// Authenticate resolves a token to its admin, re-checking the approval
// status so a rejected account cannot keep using an old token.
func (s *Service) Authenticate(token string) (models.User, error) {
	s.mu.RLock()
	adminID, ok := s.tokens[token]
	s.mu.RUnlock()
	if !ok {
		return models.User{}, ErrBadToken
	}

	admin, err := s.store.Admin(adminID)
	if err != nil {
		return models.User{}, ErrBadToken
	}
	if admin.Status != models.AdminStatusAccepted {
		return models.User{}, &NotAuthorizedError{Status: admin.Status}
	}
	return admin, nil
}

// Logout revokes a token.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// Register creates a new staff account. Owner only, like every other
// admin-management operation; the account starts in the given status
// (PENDING by default). The owner email is reserved.
func (s *Service) Register(actor models.User, name, email, password string, status models.AdminStatus) (models.User, error) {
	if !s.IsOwner(actor) {
		return models.User{}, ErrOwnerOnly
	}
	if email == s.ownerEmail {
		return models.User{}, ErrEmailTaken
	}
	if _, err := s.store.AdminByEmail(email); err == nil {
		return models.User{}, ErrEmailTaken
	}
	if status == "" {
		status = models.AdminStatusPending
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     models.RoleAdmin,
		Status:   status,
	}
	s.store.AddAdmin(admin)
	return admin, nil
}

// IsOwner reports whether the user is the fixed owner identity.
func (s *Service) IsOwner(u models.User) bool {
	return u.Email == s.ownerEmail
}

func (s *Service) ownerUser() (models.User, error) {
	return s.store.AdminByEmail(s.ownerEmail)
}

// ListAdmins returns every staff account. Owner only.
func (s *Service) ListAdmins(actor models.User) ([]models.User, error) {
	if !s.IsOwner(actor) {
		return nil, ErrOwnerOnly
	}
	return s.store.Admins(), nil
}

// SetStatus decides a PENDING account. Owner only; decided accounts are
// not reversible and the owner itself can never be demoted.
func (s *Service) SetStatus(actor models.User, adminID string, status models.AdminStatus) (models.User, error) {
	if !s.IsOwner(actor) {
		return models.User{}, ErrOwnerOnly
	}
	if status != models.AdminStatusAccepted && status != models.AdminStatusRejected {
		return models.User{}, fmt.Errorf("cannot set status %q", status)
	}

	admin, err := s.store.Admin(adminID)
	if err != nil {
		return models.User{}, err
	}
	if admin.Email == s.ownerEmail || admin.Status != models.AdminStatusPending {
		return models.User{}, ErrAlreadyDecided
	}
	if err := s.store.SetAdminStatus(adminID, status); err != nil {
		return models.User{}, err
	}
	admin.Status = status
	return admin, nil
}
