package entity

import (
	"time"
)

type Review struct {
	ID       string `json:"id" firestore:"id"`
	TutorID  string `json:"tutor_id" firestore:"tutorId"`
	ParentID string `json:"parent_id" firestore:"parentId"`
	Rating   int    `json:"rating" firestore:"rating"` // 1-5
	Comment  string `json:"comment,omitempty" firestore:"comment,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
