package usecase

import (
	"tutorconnect/internal/domain/entity"
)

// DemoTutorSource supplies illustrative tutors shown when the backing store
// is empty or unreachable. Wire a nil source to disable the behavior.
type DemoTutorSource interface {
	Tutors() []*entity.Tutor
	TutorByID(id string) *entity.Tutor
}

type staticDemoTutorSource struct {
	tutors []*entity.Tutor
}

func NewDemoTutorSource() DemoTutorSource {
	return &staticDemoTutorSource{
		tutors: []*entity.Tutor{
			{
				ID:                   "d290f1ee-6c54-4b01-90e6-d701748f0851",
				UserID:               "demo-tutor-1",
				Bio:                  "Passionate math tutor with 5 years of experience helping students achieve their best.",
				Subjects:             []string{"Mathematics", "Physics", "Calculus"},
				ExperienceYears:      5,
				HighestQualification: "MSc in Mathematics",
				LanguagesSpoken:      []string{"English", "Spanish"},
				HourlyRateMin:        40,
				HourlyRateMax:        60,
				RatingAverage:        4.8,
				TotalReviews:         12,
				VerificationStatus:   "approved",
				LocationAreas:        []string{"New York", "Online"},
				User: &entity.UserMeta{
					FullName:  "Sarah Jenkins",
					AvatarURL: "https://images.unsplash.com/photo-1494790108377-be9c29b29330",
				},
			},
			{
				ID:                   "d290f1ee-6c54-4b01-90e6-d701748f0852",
				UserID:               "demo-tutor-2",
				Bio:                  "Native French speaker and certified language instructor.",
				Subjects:             []string{"French", "Spanish", "English Literature"},
				ExperienceYears:      8,
				HighestQualification: "BA in Linguistics",
				LanguagesSpoken:      []string{"English", "French", "Spanish"},
				HourlyRateMin:        35,
				HourlyRateMax:        50,
				RatingAverage:        4.9,
				TotalReviews:         28,
				VerificationStatus:   "approved",
				LocationAreas:        []string{"London", "Online"},
				User: &entity.UserMeta{
					FullName:  "Jean-Pierre Dubois",
					AvatarURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e",
				},
			},
			{
				ID:                   "d290f1ee-6c54-4b01-90e6-d701748f0853",
				UserID:               "demo-tutor-3",
				Bio:                  "Chemistry and Biology expert. I make science fun and understandable.",
				Subjects:             []string{"Chemistry", "Biology", "General Science"},
				ExperienceYears:      3,
				HighestQualification: "BSc in Chemistry",
				LanguagesSpoken:      []string{"English"},
				HourlyRateMin:        30,
				HourlyRateMax:        45,
				RatingAverage:        4.7,
				TotalReviews:         8,
				VerificationStatus:   "approved",
				LocationAreas:        []string{"Online"},
				User: &entity.UserMeta{
					FullName:  "Emily Chen",
					AvatarURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80",
				},
			},
		},
	}
}

func (s *staticDemoTutorSource) Tutors() []*entity.Tutor {
	return s.tutors
}

func (s *staticDemoTutorSource) TutorByID(id string) *entity.Tutor {
	for _, tutor := range s.tutors {
		if tutor.ID == id {
			return tutor
		}
	}
	return nil
}
