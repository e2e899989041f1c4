package entity

import (
	"time"
)

type Parent struct {
	ID        string  `json:"id" firestore:"id"`
	UserID    string  `json:"user_id" firestore:"userId"`
	Address   string  `json:"address,omitempty" firestore:"address,omitempty"`
	Latitude  float64 `json:"latitude,omitempty" firestore:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty" firestore:"longitude,omitempty"`
	BudgetMin float64 `json:"budget_min,omitempty" firestore:"budgetMin,omitempty"`
	BudgetMax float64 `json:"budget_max,omitempty" firestore:"budgetMax,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Child belongs to exactly one parent. Bookings require one.
type Child struct {
	ID             string   `json:"id" firestore:"id"`
	ParentID       string   `json:"parent_id" firestore:"parentId"`
	Name           string   `json:"name" firestore:"name"`
	Age            int      `json:"age" firestore:"age"` // 3-18 inclusive
	GradeLevel     string   `json:"grade_level,omitempty" firestore:"gradeLevel,omitempty"`
	SubjectsNeeded []string `json:"subjects_needed,omitempty" firestore:"subjectsNeeded,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
