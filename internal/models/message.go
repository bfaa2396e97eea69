package models

// Message is an append-only chat record between two users on a project.
// Sender name and role are denormalized at creation time.
type Message struct {
	ID         int64  `json:"id"`
	ProjectID  int64  `json:"projectId"`
	SenderID   int64  `json:"senderId"`
	SenderName string `json:"senderName,omitempty"`
	SenderRole string `json:"senderRole,omitempty"`
	ReceiverID int64  `json:"receiverId"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt"`
	Read       bool   `json:"read"`
}
