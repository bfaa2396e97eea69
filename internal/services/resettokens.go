package services

import (
	"github.com/projectpulse/projectpulse/internal/models"
	"github.com/projectpulse/projectpulse/internal/store"
	"github.com/projectpulse/projectpulse/internal/utils"
)

type ResetTokenService struct {
	store *store.Store
}

func NewResetTokenService(s *store.Store) *ResetTokenService {
	return &ResetTokenService{store: s}
}

type CreateResetTokenRequest struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"userId" binding:"required"`
	Token   string `json:"token" binding:"required"`
	Expires string `json:"expires" binding:"required"`
}

// List returns reset tokens, optionally narrowed to one token string.
func (s *ResetTokenService) List(token string) ([]models.ResetToken, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, err
	}

	if token == "" {
		return doc.ResetTokens, nil
	}

	out := make([]models.ResetToken, 0, 1)
	for _, rt := range doc.ResetTokens {
		if rt.Token == token {
			out = append(out, rt)
		}
	}
	return out, nil
}

// Create appends a reset-token record.
func (s *ResetTokenService) Create(req *CreateResetTokenRequest) (*models.ResetToken, error) {
	record := models.ResetToken{
		ID:      req.ID,
		UserID:  req.UserID,
		Token:   req.Token,
		Expires: req.Expires,
	}
	if record.ID == 0 {
		record.ID = utils.NewID()
	}

	err := s.store.Update(func(doc *store.Document) error {
		doc.ResetTokens = append(doc.ResetTokens, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete removes a consumed reset token. ErrNotFound if the id is absent.
func (s *ResetTokenService) Delete(id int64) error {
	return s.store.Update(func(doc *store.Document) error {
		for i := range doc.ResetTokens {
			if doc.ResetTokens[i].ID == id {
				doc.ResetTokens = append(doc.ResetTokens[:i], doc.ResetTokens[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}
