package services

import (
	"errors"
	"testing"

	"github.com/projectpulse/projectpulse/internal/models"
	"github.com/projectpulse/projectpulse/internal/store"
)

func TestMessageCreateStampsSender(t *testing.T) {
	s := newTestStore(t)
	s.Update(func(doc *store.Document) error {
		doc.Users = append(doc.Users, models.User{
			ID: 1, Name: "Admin User", Email: "admin@example.com", Role: models.RoleAdmin,
		})
		return nil
	})

	svc := NewMessageService(s)
	msg, err := svc.Create(&CreateMessageRequest{
		ProjectID:  1001,
		SenderID:   1,
		ReceiverID: 3,
		Content:    "Proposal is ready for review",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if msg.SenderName != "Admin User" || msg.SenderRole != models.RoleAdmin {
		t.Errorf("sender stamp = %q/%q, want Admin User/admin", msg.SenderName, msg.SenderRole)
	}
	if msg.Read {
		t.Error("new message must start unread")
	}
	if msg.ID == 0 || msg.CreatedAt == "" {
		t.Error("id and createdAt must be stamped")
	}
}

func TestMessageCreateUnknownSender(t *testing.T) {
	s := newTestStore(t)
	svc := NewMessageService(s)
	_, err := svc.Create(&CreateMessageRequest{ProjectID: 1, SenderID: 99, ReceiverID: 1, Content: "hi"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	// A failed create must not leave a partial message behind.
	doc, _ := s.Read()
	if len(doc.Messages) != 0 {
		t.Fatalf("got %d messages after failed create, want 0", len(doc.Messages))
	}
}

func TestMessageListByProject(t *testing.T) {
	s := newTestStore(t)
	s.Update(func(doc *store.Document) error {
		doc.Messages = []models.Message{
			{ID: 1, ProjectID: 10},
			{ID: 2, ProjectID: 20},
			{ID: 3, ProjectID: 10},
		}
		return nil
	})

	svc := NewMessageService(s)
	got, _ := svc.List(10)
	if len(got) != 2 {
		t.Fatalf("got %d messages, want 2", len(got))
	}
	all, _ := svc.List(0)
	if len(all) != 3 {
		t.Fatalf("got %d messages unfiltered, want 3", len(all))
	}
}
