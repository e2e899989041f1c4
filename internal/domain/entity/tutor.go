package entity

import (
	"time"
)

type Tutor struct {
	ID                   string   `json:"id" firestore:"id"`
	UserID               string   `json:"user_id" firestore:"userId"`
	Bio                  string   `json:"bio,omitempty" firestore:"bio,omitempty"`
	Subjects             []string `json:"subjects" firestore:"subjects"`
	ExperienceYears      int      `json:"experience_years" firestore:"experienceYears"`
	HighestQualification string   `json:"highest_qualification,omitempty" firestore:"highestQualification,omitempty"`
	LanguagesSpoken      []string `json:"languages_spoken,omitempty" firestore:"languagesSpoken,omitempty"`
	HourlyRateMin        float64  `json:"hourly_rate_min" firestore:"hourlyRateMin"`
	HourlyRateMax        float64  `json:"hourly_rate_max" firestore:"hourlyRateMax"`
	RatingAverage        float64  `json:"rating_average" firestore:"ratingAverage"`
	TotalReviews         int      `json:"total_reviews" firestore:"totalReviews"`
	VerificationStatus   string   `json:"verification_status" firestore:"verificationStatus"` // "pending", "approved", "rejected"
	LocationAreas        []string `json:"location_areas,omitempty" firestore:"locationAreas,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`

	// Populated during enrichment, never persisted
	User    *UserMeta `json:"user,omitempty" firestore:"-"`
	Reviews []*Review `json:"reviews,omitempty" firestore:"-"`
}
