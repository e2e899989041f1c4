package usecase

import (
	"context"
	"fmt"

	"tutorconnect/internal/domain/entity"
	"tutorconnect/internal/domain/repository"
	"tutorconnect/internal/domain/service"
	"tutorconnect/pkg/errors"
)

type fakeUserRepo struct {
	users    map[string]*entity.User
	batchErr error
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByIDs(ctx context.Context, ids []string) ([]*entity.User, error) {
	if r.batchErr != nil {
		return nil, r.batchErr
	}
	var result []*entity.User
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			result = append(result, user)
		}
	}
	return result, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

type fakeTutorRepo struct {
	tutors  map[string]*entity.Tutor
	listErr error
	updated []*entity.Tutor
}

func newFakeTutorRepo(tutors ...*entity.Tutor) *fakeTutorRepo {
	repo := &fakeTutorRepo{tutors: make(map[string]*entity.Tutor)}
	for _, tutor := range tutors {
		repo.tutors[tutor.ID] = tutor
	}
	return repo
}

func (r *fakeTutorRepo) Create(ctx context.Context, tutor *entity.Tutor) error {
	if tutor.ID == "" {
		tutor.ID = fmt.Sprintf("tutor-%d", len(r.tutors)+1)
	}
	r.tutors[tutor.ID] = tutor
	return nil
}

func (r *fakeTutorRepo) GetByID(ctx context.Context, id string) (*entity.Tutor, error) {
	tutor, ok := r.tutors[id]
	if !ok {
		return nil, errors.NotFound("Tutor", nil)
	}
	return tutor, nil
}

func (r *fakeTutorRepo) GetByUserID(ctx context.Context, userID string) (*entity.Tutor, error) {
	for _, tutor := range r.tutors {
		if tutor.UserID == userID {
			return tutor, nil
		}
	}
	return nil, errors.NotFound("Tutor", nil)
}

func (r *fakeTutorRepo) List(ctx context.Context, filter repository.TutorFilter) ([]*entity.Tutor, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var result []*entity.Tutor
	for _, tutor := range r.tutors {
		if tutor.VerificationStatus != "approved" {
			continue
		}
		if filter.Subject != "" && !contains(tutor.Subjects, filter.Subject) {
			continue
		}
		if filter.MinPrice > 0 && tutor.HourlyRateMin < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && tutor.HourlyRateMax > filter.MaxPrice {
			continue
		}
		if filter.MinRating > 0 && tutor.RatingAverage < filter.MinRating {
			continue
		}
		result = append(result, tutor)
	}
	return result, nil
}

func (r *fakeTutorRepo) Update(ctx context.Context, tutor *entity.Tutor) error {
	r.tutors[tutor.ID] = tutor
	r.updated = append(r.updated, tutor)
	return nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

type fakeParentRepo struct {
	parents  map[string]*entity.Parent
	children map[string]*entity.Child
	order    []string
}

func newFakeParentRepo(parents ...*entity.Parent) *fakeParentRepo {
	repo := &fakeParentRepo{
		parents:  make(map[string]*entity.Parent),
		children: make(map[string]*entity.Child),
	}
	for _, parent := range parents {
		repo.parents[parent.ID] = parent
	}
	return repo
}

func (r *fakeParentRepo) Create(ctx context.Context, parent *entity.Parent) error {
	if parent.ID == "" {
		parent.ID = fmt.Sprintf("parent-%d", len(r.parents)+1)
	}
	r.parents[parent.ID] = parent
	return nil
}

func (r *fakeParentRepo) GetByID(ctx context.Context, id string) (*entity.Parent, error) {
	parent, ok := r.parents[id]
	if !ok {
		return nil, errors.NotFound("Parent", nil)
	}
	return parent, nil
}

func (r *fakeParentRepo) GetByUserID(ctx context.Context, userID string) (*entity.Parent, error) {
	for _, parent := range r.parents {
		if parent.UserID == userID {
			return parent, nil
		}
	}
	return nil, errors.NotFound("Parent", nil)
}

func (r *fakeParentRepo) Update(ctx context.Context, parent *entity.Parent) error {
	r.parents[parent.ID] = parent
	return nil
}

func (r *fakeParentRepo) CreateChild(ctx context.Context, child *entity.Child) error {
	if child.ID == "" {
		child.ID = fmt.Sprintf("child-%d", len(r.children)+1)
	}
	r.children[child.ID] = child
	r.order = append(r.order, child.ID)
	return nil
}

func (r *fakeParentRepo) GetChildByID(ctx context.Context, id string) (*entity.Child, error) {
	child, ok := r.children[id]
	if !ok {
		return nil, errors.NotFound("Child", nil)
	}
	return child, nil
}

func (r *fakeParentRepo) ListChildren(ctx context.Context, parentID string) ([]*entity.Child, error) {
	var result []*entity.Child
	for _, id := range r.order {
		if r.children[id].ParentID == parentID {
			result = append(result, r.children[id])
		}
	}
	return result, nil
}

type fakeSessionRepo struct {
	sessions  []*entity.Session
	createErr error
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	if r.createErr != nil {
		return r.createErr
	}
	if session.ID == "" {
		session.ID = fmt.Sprintf("session-%d", len(r.sessions)+1)
	}
	r.sessions = append(r.sessions, session)
	return nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, id string) (*entity.Session, error) {
	for _, session := range r.sessions {
		if session.ID == id {
			return session, nil
		}
	}
	return nil, errors.NotFound("Session", nil)
}

func (r *fakeSessionRepo) ListByParentID(ctx context.Context, parentID string) ([]*entity.Session, error) {
	var result []*entity.Session
	for _, session := range r.sessions {
		if session.ParentID == parentID {
			result = append(result, session)
		}
	}
	return result, nil
}

func (r *fakeSessionRepo) ListByTutorID(ctx context.Context, tutorID string) ([]*entity.Session, error) {
	var result []*entity.Session
	for _, session := range r.sessions {
		if session.TutorID == tutorID {
			result = append(result, session)
		}
	}
	return result, nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.Session) error {
	for i, existing := range r.sessions {
		if existing.ID == session.ID {
			r.sessions[i] = session
			return nil
		}
	}
	return errors.NotFound("Session", nil)
}

type fakeReviewRepo struct {
	reviews []*entity.Review
	listErr error
}

func (r *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = fmt.Sprintf("review-%d", len(r.reviews)+1)
	}
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *fakeReviewRepo) ListByTutorID(ctx context.Context, tutorID string) ([]*entity.Review, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	result := []*entity.Review{}
	for _, review := range r.reviews {
		if review.TutorID == tutorID {
			result = append(result, review)
		}
	}
	return result, nil
}

type fakeNotifier struct {
	sent    []service.BookingNotification
	result  *service.NotifyResult
	sendErr error
}

func (n *fakeNotifier) SendBookingNotification(ctx context.Context, notification service.BookingNotification) (*service.NotifyResult, error) {
	n.sent = append(n.sent, notification)
	if n.sendErr != nil {
		return nil, n.sendErr
	}
	if n.result != nil {
		return n.result, nil
	}
	return &service.NotifyResult{Sent: true}, nil
}
