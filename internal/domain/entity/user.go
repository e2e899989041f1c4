package entity

import (
	"time"
)

type User struct {
	ID        string `json:"id" firestore:"id"`
	Email     string `json:"email" firestore:"email"`
	FullName  string `json:"full_name,omitempty" firestore:"fullName,omitempty"`
	Phone     string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role      string `json:"role" firestore:"role"` // "tutor", "parent", "admin"
	AvatarURL string `json:"avatar_url,omitempty" firestore:"avatarURL,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// UserMeta is the slice of a user surfaced on enriched directory and booking
// payloads. FullName is always non-empty after enrichment.
type UserMeta struct {
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
