package entity

import (
	"time"
)

// Session is a booked lesson between a tutor and a parent's child.
type Session struct {
	ID       string `json:"id" firestore:"id"`
	TutorID  string `json:"tutor_id" firestore:"tutorId"`
	ParentID string `json:"parent_id" firestore:"parentId"`
	ChildID  string `json:"child_id" firestore:"childId"`

	Subject            string  `json:"subject" firestore:"subject"`
	ScheduledDate      string  `json:"scheduled_date" firestore:"scheduledDate"`
	ScheduledStartTime string  `json:"scheduled_start_time" firestore:"scheduledStartTime"`
	ScheduledEndTime   string  `json:"scheduled_end_time" firestore:"scheduledEndTime"`
	Notes              string  `json:"notes,omitempty" firestore:"notes,omitempty"`
	Price              float64 `json:"price" firestore:"price"`
	Status             string  `json:"status" firestore:"status"` // "pending", "confirmed", "completed", "cancelled"

	LocationAddress string  `json:"location_address" firestore:"locationAddress"`
	LocationLat     float64 `json:"location_lat" firestore:"locationLat"`
	LocationLng     float64 `json:"location_lng" firestore:"locationLng"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`

	// Populated for list views, never persisted
	Tutor  *UserMeta `json:"tutor,omitempty" firestore:"-"`
	Parent *UserMeta `json:"parent,omitempty" firestore:"-"`
}
