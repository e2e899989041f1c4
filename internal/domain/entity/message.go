package entity

import (
	"time"
)

type Message struct {
	ID         string `json:"id" firestore:"id"`
	SenderID   string `json:"sender_id" firestore:"senderId"`
	ReceiverID string `json:"receiver_id" firestore:"receiverId"`
	Content    string `json:"content" firestore:"content"`
	IsRead     bool   `json:"is_read" firestore:"isRead"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// Conversation is a per-counterparty rollup of the message history.
type Conversation struct {
	User        ConversationUser `json:"user"`
	LastMessage LastMessage      `json:"last_message"`
	UnreadCount int              `json:"unread_count"`
}

type ConversationUser struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Role      string `json:"role,omitempty"`
}

type LastMessage struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}
