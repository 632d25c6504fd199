package booking

import (
	"context"

	"lenslink/models"
	"lenslink/utils"

	"go.uber.org/zap"
)

// allowedTransitions is the booking status machine. Cancellation is not
// listed here: it runs through CancelBooking, which owns the window and
// fee rules. Terminal states have no outgoing edges except
// cancelled -> refunded, which is admin-only.
var allowedTransitions = map[string][]string{
	models.BookingPending:    {models.BookingConfirmed, models.BookingRejected},
	models.BookingConfirmed:  {models.BookingInProgress},
	models.BookingInProgress: {models.BookingCompleted},
	models.BookingCancelled:  {models.BookingRefunded},
}

func transitionAllowed(from, to string) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// mailKindFor maps a target status to its notification template.
func mailKindFor(target string) string {
	switch target {
	case models.BookingConfirmed:
		return models.MailBookingConfirmed
	case models.BookingRejected:
		return models.MailBookingRejected
	case models.BookingCompleted:
		return models.MailBookingCompleted
	}
	return ""
}

// TransitionStatus applies a status change, enforcing both the transition
// table and the actor's authority over the booking. Cancellation requests
// are delegated to CancelBooking so fee computation stays in one place.
func (s *DefaultBookingService) TransitionStatus(ctx context.Context, bookingID, actorID, target, reason string) (*models.Booking, error) {
	if target == models.BookingCancelled {
		res, err := s.CancelBooking(ctx, bookingID, actorID, reason)
		if err != nil {
			return nil, err
		}
		return res.Booking, nil
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

	if !transitionAllowed(b.Status, target) {
		return nil, &InvalidTransitionError{From: b.Status, To: target}
	}

	assignedPhotographer := a.photographerID != "" && b.PhotographerID == a.photographerID
	switch target {
	case models.BookingConfirmed, models.BookingRejected:
		if !assignedPhotographer && !a.isAdmin() {
			return nil, &UnauthorizedError{Message: "only the assigned photographer can confirm or reject bookings"}
		}
	case models.BookingInProgress, models.BookingCompleted:
		if !assignedPhotographer && !a.isAdmin() {
			return nil, &UnauthorizedError{Message: "only the assigned photographer can update booking progress"}
		}
	case models.BookingRefunded:
		if !a.isAdmin() {
			return nil, &UnauthorizedError{Message: "only an admin can mark a booking refunded"}
		}
	default:
		return nil, &InvalidTransitionError{From: b.Status, To: target}
	}

	b.Status = target
	if target == models.BookingCompleted {
		b.CompletedAt = s.now()
	}
	if target == models.BookingRefunded {
		b.PaymentStatus = models.PaymentRefunded
	}

	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking status updated",
		zap.String("bookingID", b.ID),
		zap.String("status", target),
		zap.String("actorID", actorID))

	if kind := mailKindFor(target); kind != "" {
		s.notifyBookingParties(b, kind, nil)
	}

	return b, nil
}

// CancelBooking cancels a booking on behalf of either party, subject to the
// cancellation window, and computes the fee and refund.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID, actorID, reason string) (*CancellationResult, error) {
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

	isClient := b.ClientID == a.user.ID
	isPhotographer := a.photographerID != "" && b.PhotographerID == a.photographerID
	if !isClient && !isPhotographer && !a.isAdmin() {
		return nil, &UnauthorizedError{Message: "not authorized to cancel this booking"}
	}

	if b.Status != models.BookingPending && b.Status != models.BookingConfirmed {
		return nil, &InvalidTransitionError{From: b.Status, To: models.BookingCancelled}
	}

	now := s.now()
	if startOfEvent(b).Sub(now) <= s.CancellationWindow {
		return nil, &WindowClosedError{Message: "booking can no longer be cancelled this close to the event"}
	}

	fee, refund := calculateCancellationFee(b.TotalAmount, b.EventDate, now)

	b.Status = models.BookingCancelled
	b.CancellationFee = fee
	b.RefundAmount = refund
	b.CancellationReason = reason
	b.CancellationDate = now
	b.CancelledBy = a.user.ID

	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking cancelled",
		zap.String("bookingID", b.ID),
		zap.String("actorID", actorID),
		zap.Float64("fee", fee),
		zap.Float64("refund", refund))

	s.notifyBookingParties(b, models.MailBookingCancelled, nil)

	return &CancellationResult{Booking: b, Fee: fee, Refund: refund}, nil
}

// ModifyBooking edits date, time, location, or amount while the
// modification window is open. Date or time changes re-run the conflict
// check against the photographer's other active bookings.
func (s *DefaultBookingService) ModifyBooking(ctx context.Context, bookingID, actorID string, input models.ModifyBookingInput) (*models.Booking, error) {
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

	if b.ClientID != a.user.ID && !a.isAdmin() {
		return nil, &UnauthorizedError{Message: "only the booking client can modify booking details"}
	}

	if b.Status != models.BookingPending && b.Status != models.BookingConfirmed {
		return nil, &WindowClosedError{Message: "booking can only be modified while pending or confirmed"}
	}

	now := s.now()
	if startOfEvent(b).Sub(now) <= s.ModificationWindow {
		return nil, &WindowClosedError{Message: "booking can no longer be modified this close to the event"}
	}

	eventDate := b.EventDate
	if input.EventDate != nil {
		eventDate, err = parseEventDate(*input.EventDate)
		if err != nil {
			return nil, err
		}
		if !eventDate.After(now) {
			return nil, &ValidationError{Field: "eventDate", Message: "event date must be in the future"}
		}
	}

	startTime := b.StartTime
	if input.StartTime != nil {
		startTime = *input.StartTime
	}
	endTime := b.EndTime
	if input.EndTime != nil {
		endTime = *input.EndTime
	}

	startMinutes, err := parseClockTime(startTime)
	if err != nil {
		return nil, &ValidationError{Field: "startTime", Message: "must be a valid time in HH:MM format"}
	}
	endMinutes, err := parseClockTime(endTime)
	if err != nil {
		return nil, &ValidationError{Field: "endTime", Message: "must be a valid time in HH:MM format"}
	}
	duration := computeDuration(startMinutes, endMinutes)
	if duration <= 0 {
		return nil, &ValidationError{Field: "endTime", Message: "end time must be after start time"}
	}

	rescheduled := input.EventDate != nil || input.StartTime != nil || input.EndTime != nil
	if rescheduled {
		if err := s.findConflict(b.PhotographerID, eventDate, startMinutes, endMinutes, b.ID); err != nil {
			return nil, err
		}
	}

	b.EventDate = eventDate
	b.StartTime = startTime
	b.EndTime = endTime
	b.Duration = duration
	if input.Location != nil {
		b.Location = *input.Location
	}
	if input.TotalAmount != nil {
		if *input.TotalAmount < 0 {
			return nil, &ValidationError{Field: "totalAmount", Message: "total amount cannot be negative"}
		}
		b.TotalAmount = *input.TotalAmount
	}
	if input.SpecialRequests != nil {
		b.SpecialRequests = *input.SpecialRequests
	}
	if input.GuestCount != nil {
		b.GuestCount = *input.GuestCount
	}

	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking modified",
		zap.String("bookingID", b.ID),
		zap.String("actorID", actorID),
		zap.Bool("rescheduled", rescheduled))

	return b, nil
}

// ReassignPhotographer replaces the booking's photographer, appending one
// immutable ledger entry before overwriting the live reference. The status
// is left untouched.
func (s *DefaultBookingService) ReassignPhotographer(ctx context.Context, bookingID, adminID, newPhotographerID, reason string) (*models.Booking, error) {
	a, err := s.resolveActor(adminID)
	if err != nil {
		return nil, err
	}
	if !a.isAdmin() {
		return nil, &UnauthorizedError{Message: "only an admin can reassign a booking"}
	}

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &NotFoundError{Entity: "booking", ID: bookingID}
	}

	newPhotographer, err := s.PhotographerRepo.GetByID(newPhotographerID)
	if err != nil {
		return nil, err
	}
	if newPhotographer == nil || !newPhotographer.IsActive {
		return nil, &NotFoundError{Entity: "photographer", ID: newPhotographerID}
	}

	if reason == "" {
		reason = "Admin reassignment"
	}

	b.ReassignmentHistory = append(b.ReassignmentHistory, models.Reassignment{
		PreviousPhotographer: b.PhotographerID,
		NewPhotographer:      newPhotographerID,
		Reason:               reason,
		ReassignedAt:         s.now(),
		ReassignedBy:         a.user.ID,
	})
	b.PhotographerID = newPhotographerID

	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking reassigned",
		zap.String("bookingID", b.ID),
		zap.String("newPhotographerID", newPhotographerID),
		zap.String("adminID", adminID))

	s.notifyBookingParties(b, models.MailBookingReassigned, nil)

	return b, nil
}
