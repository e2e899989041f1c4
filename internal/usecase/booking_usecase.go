package usecase

import (
	"context"
	"fmt"

	"tutorconnect/internal/domain/entity"
	"tutorconnect/internal/domain/repository"
	"tutorconnect/internal/domain/service"
	"tutorconnect/pkg/errors"
	"tutorconnect/pkg/logger"
	"tutorconnect/pkg/utils"
)

type BookingUseCase struct {
	sessionRepo repository.SessionRepository
	parentRepo  repository.ParentRepository
	tutorRepo   repository.TutorRepository
	userRepo    repository.UserRepository
	notifier    service.BookingNotifier
}

func NewBookingUseCase(
	sessionRepo repository.SessionRepository,
	parentRepo repository.ParentRepository,
	tutorRepo repository.TutorRepository,
	userRepo repository.UserRepository,
	notifier service.BookingNotifier,
) *BookingUseCase {
	return &BookingUseCase{
		sessionRepo: sessionRepo,
		parentRepo:  parentRepo,
		tutorRepo:   tutorRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

type CreateBookingInput struct {
	TutorID            string
	ChildID            string
	Subject            string
	ScheduledDate      string
	ScheduledStartTime string
	ScheduledEndTime   string
	Notes              string
	Price              float64
	LocationAddress    string
	LocationLat        float64
	LocationLng        float64
}

// CreateBooking resolves the caller's parent profile and target child,
// persists the session in pending state, then notifies the tutor. The insert
// is the only authoritative step; notification failures never change the
// outcome.
func (uc *BookingUseCase) CreateBooking(ctx context.Context, userID string, input CreateBookingInput) (*entity.Session, error) {
	parent, err := uc.parentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Forbidden("Only registered parents can book sessions", err)
	}

	childID := input.ChildID
	if childID == "" {
		children, err := uc.parentRepo.ListChildren(ctx, parent.ID)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			return nil, errors.BadRequest("Please add a child to your profile before booking", nil)
		}
		childID = children[0].ID
	} else {
		child, err := uc.parentRepo.GetChildByID(ctx, childID)
		if err != nil {
			return nil, err
		}
		if child.ParentID != parent.ID {
			return nil, errors.BadRequest("Child does not belong to this parent", nil)
		}
	}

	locationAddress := input.LocationAddress
	if locationAddress == "" {
		locationAddress = "Online"
	}

	session := &entity.Session{
		TutorID:            input.TutorID,
		ParentID:           parent.ID,
		ChildID:            childID,
		Subject:            input.Subject,
		ScheduledDate:      input.ScheduledDate,
		ScheduledStartTime: input.ScheduledStartTime,
		ScheduledEndTime:   input.ScheduledEndTime,
		Notes:              input.Notes,
		Price:              input.Price,
		Status:             "pending",
		LocationAddress:    locationAddress,
		LocationLat:        input.LocationLat,
		LocationLng:        input.LocationLng,
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		logger.Error("Failed to create booking for parent %s: %v (input: %+v)", parent.ID, err, input)
		return nil, errors.Internal("Failed to create booking", err)
	}

	uc.notifyTutor(ctx, userID, session)

	return session, nil
}

// ListBookings returns the caller's sessions from whichever side of the
// marketplace they sit on. An account with neither profile gets an empty
// list, not an error.
func (uc *BookingUseCase) ListBookings(ctx context.Context, userID string) ([]*entity.Session, error) {
	if parent, err := uc.parentRepo.GetByUserID(ctx, userID); err == nil {
		sessions, err := uc.sessionRepo.ListByParentID(ctx, parent.ID)
		if err != nil {
			return nil, err
		}
		uc.decorateSessions(ctx, sessions)
		return sessions, nil
	}

	if tutor, err := uc.tutorRepo.GetByUserID(ctx, userID); err == nil {
		sessions, err := uc.sessionRepo.ListByTutorID(ctx, tutor.ID)
		if err != nil {
			return nil, err
		}
		uc.decorateSessions(ctx, sessions)
		return sessions, nil
	}

	return []*entity.Session{}, nil
}

// notifyTutor is best-effort: every failure is logged and swallowed so the
// booking response is unaffected.
func (uc *BookingUseCase) notifyTutor(ctx context.Context, parentUserID string, session *entity.Session) {
	if uc.notifier == nil {
		return
	}

	tutor, err := uc.tutorRepo.GetByID(ctx, session.TutorID)
	if err != nil {
		logger.Warn("Booking notification skipped, tutor %s not found: %v", session.TutorID, err)
		return
	}

	tutorUser, err := uc.userRepo.GetByID(ctx, tutor.UserID)
	if err != nil || tutorUser.Email == "" {
		logger.Warn("Booking notification skipped, no email for tutor user %s: %v", tutor.UserID, err)
		return
	}

	parentName := "Parent"
	if parentUser, err := uc.userRepo.GetByID(ctx, parentUserID); err == nil {
		parentName = utils.FormatDisplayName(parentUser.FullName, parentUser.Email)
	}

	result, err := uc.notifier.SendBookingNotification(ctx, service.BookingNotification{
		TutorEmail:    tutorUser.Email,
		TutorName:     utils.FormatDisplayName(tutorUser.FullName, tutorUser.Email),
		ParentName:    parentName,
		Subject:       session.Subject,
		ScheduledDate: session.ScheduledDate,
		ScheduledTime: fmt.Sprintf("%s - %s", session.ScheduledStartTime, session.ScheduledEndTime),
		Price:         session.Price,
	})
	if err != nil {
		logger.Warn("Booking notification failed for session %s: %v", session.ID, err)
		return
	}
	if result.Skipped {
		logger.Warn("Booking notification skipped for session %s: %s", session.ID, result.Reason)
	}
}

// decorateSessions attaches counterparty display identities for list views.
// Failures degrade to fallback names.
func (uc *BookingUseCase) decorateSessions(ctx context.Context, sessions []*entity.Session) {
	tutorUsers := make(map[string]string)  // tutor id -> user id
	parentUsers := make(map[string]string) // parent id -> user id

	for _, session := range sessions {
		if _, ok := tutorUsers[session.TutorID]; !ok {
			if tutor, err := uc.tutorRepo.GetByID(ctx, session.TutorID); err == nil {
				tutorUsers[session.TutorID] = tutor.UserID
			}
		}
		if _, ok := parentUsers[session.ParentID]; !ok {
			if parent, err := uc.parentRepo.GetByID(ctx, session.ParentID); err == nil {
				parentUsers[session.ParentID] = parent.UserID
			}
		}
	}

	seen := make(map[string]bool)
	var ids []string
	for _, userID := range tutorUsers {
		if !seen[userID] {
			seen[userID] = true
			ids = append(ids, userID)
		}
	}
	for _, userID := range parentUsers {
		if !seen[userID] {
			seen[userID] = true
			ids = append(ids, userID)
		}
	}

	profiles := make(map[string]*entity.User)
	if users, err := uc.userRepo.GetByIDs(ctx, ids); err == nil {
		for _, user := range users {
			profiles[user.ID] = user
		}
	}

	metaFor := func(userID string) *entity.UserMeta {
		meta := &entity.UserMeta{FullName: utils.FormatDisplayName("", "")}
		if profile, ok := profiles[userID]; ok {
			meta.FullName = utils.FormatDisplayName(profile.FullName, profile.Email)
			meta.AvatarURL = profile.AvatarURL
		}
		return meta
	}

	for _, session := range sessions {
		if userID, ok := tutorUsers[session.TutorID]; ok {
			session.Tutor = metaFor(userID)
		}
		if userID, ok := parentUsers[session.ParentID]; ok {
			session.Parent = metaFor(userID)
		}
	}
}
