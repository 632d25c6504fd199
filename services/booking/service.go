package booking

import (
	"context"
	"time"

	bookingRepo "lenslink/database/repository/booking"
	photographerRepo "lenslink/database/repository/photographer"
	userRepo "lenslink/database/repository/user"
	"lenslink/models"
	"lenslink/services/notification"
	"lenslink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService is the core scheduling and lifecycle surface exposed to
// the handler layer.
type BookingService interface {
	CreateBooking(ctx context.Context, clientID string, input models.CreateBookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID, actorID string) (*models.Booking, error)
	ListBookings(ctx context.Context, actorID string, filter models.BookingFilter) ([]models.Booking, int64, error)
	TransitionStatus(ctx context.Context, bookingID, actorID, target, reason string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, actorID, reason string) (*CancellationResult, error)
	ModifyBooking(ctx context.Context, bookingID, actorID string, input models.ModifyBookingInput) (*models.Booking, error)
	ReassignPhotographer(ctx context.Context, bookingID, adminID, newPhotographerID, reason string) (*models.Booking, error)
	GetAvailableSlots(photographerID string, date time.Time) ([]string, error)
	AddMessage(ctx context.Context, bookingID, actorID, message string) (*models.Booking, error)
	MarkMessagesRead(ctx context.Context, bookingID, actorID string) (*models.Booking, error)
	AddReview(ctx context.Context, bookingID, actorID string, rating int, comment string) (*models.Booking, error)
	CompletedRevenue(ctx context.Context, actorID string) (float64, error)
}

// CancellationResult reports the outcome of a cancellation.
type CancellationResult struct {
	Booking *models.Booking `json:"booking"`
	Fee     float64         `json:"cancellationFee"`
	Refund  float64         `json:"refundAmount"`
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo             bookingRepo.BookingRepository
	PhotographerRepo photographerRepo.PhotographerRepository
	UserRepo         userRepo.UserRepository
	Notifier         notification.Service

	// CancellationWindow and ModificationWindow are the minimum lead times
	// before the scheduled start during which each operation stays permitted.
	CancellationWindow time.Duration
	ModificationWindow time.Duration

	// Now is the time source; overridable in tests. Defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// actor bundles the requesting user with their photographer profile ID, if any.
type actor struct {
	user           *models.User
	photographerID string
}

func (a actor) isAdmin() bool { return a.user.Role == models.RoleAdmin }

func (s *DefaultBookingService) resolveActor(actorID string) (actor, error) {
	u, err := s.UserRepo.GetByID(actorID)
	if err != nil {
		return actor{}, err
	}
	if u == nil || !u.IsActive {
		return actor{}, &UnauthorizedError{Message: "actor not found or inactive"}
	}
	a := actor{user: u}
	if u.Role == models.RolePhotographer {
		p, err := s.PhotographerRepo.GetByUserID(u.ID)
		if err != nil {
			return actor{}, err
		}
		if p != nil {
			a.photographerID = p.ID
		}
	}
	return a, nil
}

// startOfEvent combines the event date with the booking's start time.
func startOfEvent(b *models.Booking) time.Time {
	startMinutes, err := parseClockTime(b.StartTime)
	if err != nil {
		return b.EventDate
	}
	day := b.EventDate
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).
		Add(time.Duration(startMinutes) * time.Minute)
}

// notify queues a mail task without blocking or failing the caller.
func (s *DefaultBookingService) notify(payload models.MailPayload) {
	if s.Notifier == nil {
		return
	}
	go func() {
		if err := s.Notifier.Enqueue(context.Background(), payload); err != nil {
			utils.GetLogger().Warn("failed to enqueue notification",
				zap.String("kind", payload.Kind),
				zap.String("recipient", payload.Recipient),
				zap.Error(err))
		}
	}()
}

// CreateBooking validates the request, resolves availability and conflicts,
// prices the booking, and persists it in pending status.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, clientID string, input models.CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	client, err := s.UserRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil || !client.IsActive {
		return nil, &NotFoundError{Entity: "user", ID: clientID}
	}

	if !isValidEventType(input.EventType, models.EventTypes) {
		return nil, &ValidationError{Field: "eventType", Message: "unknown event type"}
	}

	eventDate, err := parseEventDate(input.EventDate)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if !eventDate.After(now) {
		return nil, &ValidationError{Field: "eventDate", Message: "event date must be in the future"}
	}

	startMinutes, err := parseClockTime(input.StartTime)
	if err != nil {
		return nil, &ValidationError{Field: "startTime", Message: "must be a valid time in HH:MM format"}
	}
	endMinutes, err := parseClockTime(input.EndTime)
	if err != nil {
		return nil, &ValidationError{Field: "endTime", Message: "must be a valid time in HH:MM format"}
	}
	duration := computeDuration(startMinutes, endMinutes)
	if duration <= 0 {
		return nil, &ValidationError{Field: "endTime", Message: "end time must be after start time"}
	}

	if input.Location.Address == "" {
		return nil, &ValidationError{Field: "location.address", Message: "shoot location is required"}
	}

	photographer, err := s.PhotographerRepo.GetByID(input.PhotographerID)
	if err != nil {
		return nil, err
	}
	if photographer == nil || !photographer.IsActive {
		return nil, &NotFoundError{Entity: "photographer", ID: input.PhotographerID}
	}

	// Weekday availability gate.
	if day := dayAvailabilityFor(photographer.Availability, eventDate); !day.Available {
		return nil, &SchedulingConflictError{Message: "photographer is not available on this day"}
	}

	// Interval conflict gate. Known gap: this check-then-create is not
	// serialized against concurrent requests for the same slot.
	if err := s.findConflict(photographer.ID, eventDate, startMinutes, endMinutes, ""); err != nil {
		return nil, err
	}

	totalAmount, pkg, err := resolvePricing(photographer, input.PackageID, duration)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		ID:              uuid.New().String(),
		ClientID:        client.ID,
		PhotographerID:  photographer.ID,
		EventType:       input.EventType,
		EventDate:       eventDate,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Duration:        duration,
		Location:        input.Location,
		Package:         pkg,
		TotalAmount:     totalAmount,
		PaymentStatus:   models.PaymentPending,
		Status:          models.BookingPending,
		SpecialRequests: input.SpecialRequests,
		GuestCount:      input.GuestCount,
	}

	if err := s.Repo.Create(b); err != nil {
		return nil, err
	}

	logger.Info("booking created",
		zap.String("bookingID", b.ID),
		zap.String("clientID", client.ID),
		zap.String("photographerID", photographer.ID),
		zap.String("eventDate", input.EventDate))

	s.notifyBookingParties(b, models.MailBookingCreated, client)

	return b, nil
}

// notifyBookingParties queues lifecycle mail to both the client and the
// photographer's user account.
func (s *DefaultBookingService) notifyBookingParties(b *models.Booking, kind string, client *models.User) {
	data := map[string]string{
		"bookingId": b.ID,
		"eventDate": b.EventDate.Format("2006-01-02"),
		"startTime": b.StartTime,
		"endTime":   b.EndTime,
	}

	if client == nil {
		client, _ = s.UserRepo.GetByID(b.ClientID)
	}
	if client != nil {
		s.notify(models.MailPayload{Recipient: client.Email, Kind: kind, Data: data})
	}

	p, err := s.PhotographerRepo.GetByID(b.PhotographerID)
	if err != nil || p == nil {
		return
	}
	owner, err := s.UserRepo.GetByID(p.UserID)
	if err != nil || owner == nil {
		return
	}
	s.notify(models.MailPayload{Recipient: owner.Email, Kind: kind, Data: data})
}

// GetBooking fetches a booking, enforcing that the actor is a party to it
// or an admin.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID, actorID string) (*models.Booking, error) {
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
	return b, nil
}

func (s *DefaultBookingService) canView(a actor, b *models.Booking) bool {
	return a.isAdmin() || b.ClientID == a.user.ID || (a.photographerID != "" && b.PhotographerID == a.photographerID)
}

// ListBookings lists the actor's own bookings; admins see everything.
func (s *DefaultBookingService) ListBookings(ctx context.Context, actorID string, filter models.BookingFilter) ([]models.Booking, int64, error) {
	a, err := s.resolveActor(actorID)
	if err != nil {
		return nil, 0, err
	}

	switch {
	case a.isAdmin():
		// Admins may filter freely.
	case a.user.Role == models.RolePhotographer:
		filter.ClientID = ""
		filter.PhotographerID = a.photographerID
	default:
		filter.PhotographerID = ""
		filter.ClientID = a.user.ID
	}

	return s.Repo.Find(filter)
}

// CompletedRevenue reports the total amount across completed bookings.
// Admin only.
func (s *DefaultBookingService) CompletedRevenue(ctx context.Context, actorID string) (float64, error) {
	a, err := s.resolveActor(actorID)
	if err != nil {
		return 0, err
	}
	if !a.isAdmin() {
		return 0, &UnauthorizedError{Message: "only an admin can view platform revenue"}
	}
	return s.Repo.SumCompletedAmount()
}
