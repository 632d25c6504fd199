package booking

import (
	"context"
	"strings"

	"lenslink/models"
	"lenslink/utils"

	"go.uber.org/zap"
)

// AddMessage appends a message to the booking's communication thread.
func (s *DefaultBookingService) AddMessage(ctx context.Context, bookingID, actorID, message string) (*models.Booking, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, &ValidationError{Field: "message", Message: "message is required"}
	}
	if len(message) > 1000 {
		return nil, &ValidationError{Field: "message", Message: "message cannot exceed 1000 characters"}
	}

	a, err := s.resolveActor(actorID)
	if err != nil {
		return nil, err
	}
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &NotFoundError{Entity: "booking", ID: bookingID}
	}
	if !s.canView(a, b) {
		return nil, &UnauthorizedError{Message: "not authorized to message on this booking"}
	}

	b.Communication = append(b.Communication, models.Message{
		SenderID:  a.user.ID,
		Body:      message,
		Timestamp: s.now(),
	})

	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

// MarkMessagesRead marks every message not sent by the actor as read.
func (s *DefaultBookingService) MarkMessagesRead(ctx context.Context, bookingID, actorID string) (*models.Booking, error) {
	a, err := s.resolveActor(actorID)
	if err != nil {
		return nil, err
	}
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &NotFoundError{Entity: "booking", ID: bookingID}
	}
	if !s.canView(a, b) {
		return nil, &UnauthorizedError{Message: "not authorized to view this booking"}
	}

	for i := range b.Communication {
		if b.Communication[i].SenderID != a.user.ID {
			b.Communication[i].IsRead = true
		}
	}

	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}
	return b, nil
}

// AddReview attaches the one-shot post-completion review and folds it into
// the photographer's aggregate rating.
func (s *DefaultBookingService) AddReview(ctx context.Context, bookingID, actorID string, rating int, comment string) (*models.Booking, error) {
	if rating < 1 || rating > 5 {
		return nil, &ValidationError{Field: "rating", Message: "rating must be between 1 and 5"}
	}

	a, err := s.resolveActor(actorID)
	if err != nil {
		return nil, err
	}
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &NotFoundError{Entity: "booking", ID: bookingID}
	}
	if b.ClientID != a.user.ID {
		return nil, &UnauthorizedError{Message: "only the booking client can add a review"}
	}
	if b.Status != models.BookingCompleted {
		return nil, &InvalidTransitionError{From: b.Status, To: "reviewed"}
	}
	if b.Review != nil {
		return nil, &ValidationError{Field: "review", Message: "review already exists for this booking"}
	}

	now := s.now()
	b.Review = &models.BookingReview{
		Rating:     rating,
		Comment:    comment,
		ReviewDate: now,
	}

	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}

	// Fold into the photographer's aggregate. A failure here leaves the
	// booking review in place and is surfaced to the caller.
	p, err := s.PhotographerRepo.GetByID(b.PhotographerID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		p.Reviews = append(p.Reviews, models.PhotographerReview{
			UserID:    a.user.ID,
			BookingID: b.ID,
			Rating:    rating,
			Comment:   comment,
			CreatedAt: now,
		})
		p.RecalculateRating()
		if err := s.PhotographerRepo.Update(p); err != nil {
			return nil, err
		}
	}

	utils.GetLogger().Info("review added",
		zap.String("bookingID", b.ID),
		zap.Int("rating", rating))

	return b, nil
}
