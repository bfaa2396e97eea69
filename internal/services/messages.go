package services

import (
	"github.com/projectpulse/projectpulse/internal/models"
	"github.com/projectpulse/projectpulse/internal/store"
	"github.com/projectpulse/projectpulse/internal/utils"
)

type MessageService struct {
	store *store.Store
}

func NewMessageService(s *store.Store) *MessageService {
	return &MessageService{store: s}
}

type CreateMessageRequest struct {
	ProjectID  int64  `json:"projectId" binding:"required"`
	SenderID   int64  `json:"senderId" binding:"required"`
	ReceiverID int64  `json:"receiverId" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// List returns messages, optionally narrowed to one project.
func (s *MessageService) List(projectID int64) ([]models.Message, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, err
	}

	if projectID == 0 {
		return doc.Messages, nil
	}

	out := make([]models.Message, 0, len(doc.Messages))
	for _, m := range doc.Messages {
		if m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	return out, nil
}

// Create appends a message, denormalizing the sender's name and role.
// Returns ErrNotFound when the sender id is unknown.
func (s *MessageService) Create(req *CreateMessageRequest) (*models.Message, error) {
	var message models.Message
	err := s.store.Update(func(doc *store.Document) error {
		var sender *models.User
		for i := range doc.Users {
			if doc.Users[i].ID == req.SenderID {
				sender = &doc.Users[i]
				break
			}
		}
		if sender == nil {
			return ErrNotFound
		}

		message = models.Message{
			ID:         utils.NewID(),
			ProjectID:  req.ProjectID,
			SenderID:   req.SenderID,
			SenderName: sender.Name,
			SenderRole: sender.Role,
			ReceiverID: req.ReceiverID,
			Content:    req.Content,
			CreatedAt:  utils.NowISO(),
			Read:       false,
		}
		doc.Messages = append(doc.Messages, message)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &message, nil
}
