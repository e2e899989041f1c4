package entity

import (
	"time"
)

// Material is a lesson file a tutor has uploaded to the storage bucket.
type Material struct {
	ID          string `json:"id" firestore:"id"`
	TutorID     string `json:"tutor_id" firestore:"tutorId"`
	Title       string `json:"title" firestore:"title"`
	Subject     string `json:"subject" firestore:"subject"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`

	FileName   string `json:"file_name" firestore:"fileName"`
	ObjectName string `json:"-" firestore:"objectName"` // bucket path, not exposed
	FileURL    string `json:"file_url" firestore:"fileURL"`
	FileSize   int64  `json:"file_size" firestore:"fileSize"`
	FileType   string `json:"file_type" firestore:"fileType"`

	UploadedAt time.Time `json:"uploaded_at" firestore:"uploadedAt"`
}
