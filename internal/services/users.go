package services

import (
	"github.com/projectpulse/projectpulse/internal/models"
	"github.com/projectpulse/projectpulse/internal/store"
	"github.com/projectpulse/projectpulse/internal/utils"
)

type UserService struct {
	store *store.Store
}

func NewUserService(s *store.Store) *UserService {
	return &UserService{store: s}
}

type CreateUserRequest struct {
	ID       int64  `json:"id"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=customer team_member admin"`
}

// UserFilter narrows List results. Zero fields are ignored.
type UserFilter struct {
	Role  string
	Email string
	IDs   []int64
}

// List returns users matching the filter, passwords included. Callers
// serving the public API must strip them (User.WithoutPassword).
func (s *UserService) List(f UserFilter) ([]models.User, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, err
	}

	idSet := map[int64]bool{}
	for _, id := range f.IDs {
		idSet[id] = true
	}

	out := make([]models.User, 0, len(doc.Users))
	for _, u := range doc.Users {
		if f.Role != "" && u.Role != f.Role {
			continue
		}
		if f.Email != "" && u.Email != f.Email {
			continue
		}
		if len(idSet) > 0 && !idSet[u.ID] {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// GetByID returns a single user (password included) or ErrNotFound.
func (s *UserService) GetByID(id int64) (*models.User, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Users {
		if doc.Users[i].ID == id {
			u := doc.Users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends a user record. The signup flow stamps its own time-based
// id client-side; a zero id gets one here.
func (s *UserService) Create(req *CreateUserRequest) (*models.User, error) {
	user := models.User{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
	if user.ID == 0 {
		user.ID = utils.NewID()
	}

	err := s.store.Update(func(doc *store.Document) error {
		doc.Users = append(doc.Users, user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Merge applies a shallow JSON merge to the stored user (the password-reset
// flow PUTs the whole record back with a new password).
func (s *UserService) Merge(id int64, patch []byte) (*models.User, error) {
	var updated models.User
	err := s.store.Update(func(doc *store.Document) error {
		for i := range doc.Users {
			if doc.Users[i].ID != id {
				continue
			}
			if err := mergeJSON(doc.Users[i], patch, &updated); err != nil {
				return err
			}
			doc.Users[i] = updated
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
