package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"lenslink/models"
)

func seedBooking(t *testing.T, env *testEnv) *models.Booking {
	t.Helper()
	env.addUser("client-1", models.RoleClient)
	env.addUser("admin-1", models.RoleAdmin)
	env.addPhotographer("photog-1", 150)

	b, err := env.svc.CreateBooking(context.Background(), "client-1", validInput("photog-1"))
	if err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}
	return b
}

func TestTransitionStatus_HappyPath(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)
	ctx := context.Background()

	for _, target := range []string{
		models.BookingConfirmed, models.BookingInProgress, models.BookingCompleted,
	} {
		updated, err := env.svc.TransitionStatus(ctx, b.ID, "user-photog-1", target, "")
		if err != nil {
			t.Fatalf("transition to %s failed: %v", target, err)
		}
		if updated.Status != target {
			t.Fatalf("expected status %s, got %s", target, updated.Status)
		}
	}

	final, _ := env.bookings.GetByID(b.ID)
	if final.CompletedAt.IsZero() {
		t.Fatalf("expected completion timestamp to be stamped")
	}
}

func TestTransitionStatus_RejectsIllegalEdges(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)
	ctx := context.Background()

	// pending -> in_progress skips confirmation.
	_, err := env.svc.TransitionStatus(ctx, b.ID, "user-photog-1", models.BookingInProgress, "")
	var invalid *InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}

	// Terminal states have no outgoing edges.
	if _, err := env.svc.TransitionStatus(ctx, b.ID, "user-photog-1", models.BookingRejected, ""); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	_, err = env.svc.TransitionStatus(ctx, b.ID, "user-photog-1", models.BookingConfirmed, "")
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTransitionError from terminal state, got %v", err)
	}
}

func TestTransitionStatus_Authorization(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)
	ctx := context.Background()

	// The client cannot confirm their own booking.
	_, err := env.svc.TransitionStatus(ctx, b.ID, "client-1", models.BookingConfirmed, "")
	var unauth *UnauthorizedError
	if !errors.As(err, &unauth) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}

	// An admin can.
	if _, err := env.svc.TransitionStatus(ctx, b.ID, "admin-1", models.BookingConfirmed, ""); err != nil {
		t.Fatalf("admin confirm failed: %v", err)
	}
}

func TestTransitionStatus_RefundedIsAdminOnly(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)
	ctx := context.Background()

	if _, err := env.svc.CancelBooking(ctx, b.ID, "client-1", "change of plans"); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	_, err := env.svc.TransitionStatus(ctx, b.ID, "user-photog-1", models.BookingRefunded, "")
	var unauth *UnauthorizedError
	if !errors.As(err, &unauth) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}

	updated, err := env.svc.TransitionStatus(ctx, b.ID, "admin-1", models.BookingRefunded, "")
	if err != nil {
		t.Fatalf("admin refund failed: %v", err)
	}
	if updated.PaymentStatus != models.PaymentRefunded {
		t.Fatalf("expected payment refunded, got %q", updated.PaymentStatus)
	}
}

func TestCancelBooking_FeeAndRefund(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)

	// 44 days out at the fixed clock: 10% tier, fee 60 of 600.
	res, err := env.svc.CancelBooking(context.Background(), b.ID, "client-1", "venue fell through")
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if res.Fee != 60 {
		t.Fatalf("expected fee 60, got %v", res.Fee)
	}
	if res.Refund != 540 {
		t.Fatalf("expected refund 540, got %v", res.Refund)
	}
	if res.Fee+res.Refund != b.TotalAmount {
		t.Fatalf("fee plus refund must equal total, got %v + %v", res.Fee, res.Refund)
	}
	if res.Booking.Status != models.BookingCancelled {
		t.Fatalf("expected cancelled status, got %q", res.Booking.Status)
	}
	if res.Booking.CancelledBy != "client-1" {
		t.Fatalf("expected cancelling actor recorded, got %q", res.Booking.CancelledBy)
	}
	if res.Booking.CancellationReason != "venue fell through" {
		t.Fatalf("expected reason recorded, got %q", res.Booking.CancellationReason)
	}
}

func TestCancelBooking_WindowClosed(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)

	// Move the clock to 12 hours before the event start.
	env.svc.Now = func() time.Time {
		return time.Date(2025, time.July, 14, 22, 0, 0, 0, time.UTC)
	}

	_, err := env.svc.CancelBooking(context.Background(), b.ID, "client-1", "too late")
	var window *WindowClosedError
	if !errors.As(err, &window) {
		t.Fatalf("expected WindowClosedError, got %v", err)
	}
}

func TestCancelBooking_StrangerRejected(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)
	env.addUser("stranger", models.RoleClient)

	_, err := env.svc.CancelBooking(context.Background(), b.ID, "stranger", "")
	var unauth *UnauthorizedError
	if !errors.As(err, &unauth) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}
}

func TestCancelBooking_OnlyWhilePendingOrConfirmed(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)
	ctx := context.Background()

	if _, err := env.svc.TransitionStatus(ctx, b.ID, "user-photog-1", models.BookingConfirmed, ""); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if _, err := env.svc.TransitionStatus(ctx, b.ID, "user-photog-1", models.BookingInProgress, ""); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	_, err := env.svc.CancelBooking(ctx, b.ID, "client-1", "")
	var invalid *InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
}

func TestModifyBooking_RescheduleAndConflictRecheck(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)
	env.addUser("client-2", models.RoleClient)
	ctx := context.Background()

	// Occupy the afternoon of the following day.
	other := validInput("photog-1")
	other.EventDate = "2025-07-16"
	other.StartTime = "13:00"
	other.EndTime = "17:00"
	if _, err := env.svc.CreateBooking(ctx, "client-2", other); err != nil {
		t.Fatalf("seed booking failed: %v", err)
	}

	newDate := "2025-07-16"
	newStart := "09:00"
	newEnd := "12:00"
	updated, err := env.svc.ModifyBooking(ctx, b.ID, "client-1", models.ModifyBookingInput{
		EventDate: &newDate,
		StartTime: &newStart,
		EndTime:   &newEnd,
	})
	if err != nil {
		t.Fatalf("modify failed: %v", err)
	}
	if updated.Duration != 3 {
		t.Fatalf("expected recomputed duration 3h, got %v", updated.Duration)
	}

	// Moving onto the occupied afternoon must conflict.
	clash := "13:30"
	clashEnd := "15:00"
	_, err = env.svc.ModifyBooking(ctx, b.ID, "client-1", models.ModifyBookingInput{
		StartTime: &clash,
		EndTime:   &clashEnd,
	})
	var conflict *SchedulingConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected SchedulingConflictError, got %v", err)
	}
}

func TestModifyBooking_DoesNotConflictWithItself(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)

	// Shift within the original window; the only overlapping booking is
	// this one, which the check must exclude.
	newStart := "11:00"
	newEnd := "15:00"
	if _, err := env.svc.ModifyBooking(context.Background(), b.ID, "client-1", models.ModifyBookingInput{
		StartTime: &newStart,
		EndTime:   &newEnd,
	}); err != nil {
		t.Fatalf("self-overlap should not conflict: %v", err)
	}
}

func TestModifyBooking_WindowClosed(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)

	// 36 hours out: inside the 48-hour modification window.
	env.svc.Now = func() time.Time {
		return time.Date(2025, time.July, 13, 22, 0, 0, 0, time.UTC)
	}

	note := "updated note"
	_, err := env.svc.ModifyBooking(context.Background(), b.ID, "client-1", models.ModifyBookingInput{
		SpecialRequests: &note,
	})
	var window *WindowClosedError
	if !errors.As(err, &window) {
		t.Fatalf("expected WindowClosedError, got %v", err)
	}
}

func TestModifyBooking_PhotographerCannotModify(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)

	note := "bring extra lights"
	_, err := env.svc.ModifyBooking(context.Background(), b.ID, "user-photog-1", models.ModifyBookingInput{
		SpecialRequests: &note,
	})
	var unauth *UnauthorizedError
	if !errors.As(err, &unauth) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}
}

func TestReassignPhotographer_AppendsLedgerEntry(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)
	env.addPhotographer("photog-2", 200)
	ctx := context.Background()

	updated, err := env.svc.ReassignPhotographer(ctx, b.ID, "admin-1", "photog-2", "")
	if err != nil {
		t.Fatalf("reassign failed: %v", err)
	}
	if updated.PhotographerID != "photog-2" {
		t.Fatalf("expected live assignment to photog-2, got %q", updated.PhotographerID)
	}
	if len(updated.ReassignmentHistory) != 1 {
		t.Fatalf("expected one ledger entry, got %d", len(updated.ReassignmentHistory))
	}
	entry := updated.ReassignmentHistory[0]
	if entry.PreviousPhotographer != "photog-1" || entry.NewPhotographer != "photog-2" {
		t.Fatalf("unexpected ledger entry: %+v", entry)
	}
	if entry.Reason != "Admin reassignment" {
		t.Fatalf("expected default reason, got %q", entry.Reason)
	}
	if entry.ReassignedBy != "admin-1" {
		t.Fatalf("expected reassigning admin recorded, got %q", entry.ReassignedBy)
	}
	if updated.Status != models.BookingPending {
		t.Fatalf("reassignment must not change status, got %q", updated.Status)
	}

	// A second hop preserves earlier entries.
	env.addPhotographer("photog-3", 180)
	updated, err = env.svc.ReassignPhotographer(ctx, b.ID, "admin-1", "photog-3", "schedule clash")
	if err != nil {
		t.Fatalf("second reassign failed: %v", err)
	}
	if len(updated.ReassignmentHistory) != 2 {
		t.Fatalf("expected two ledger entries, got %d", len(updated.ReassignmentHistory))
	}
	if updated.ReassignmentHistory[1].Reason != "schedule clash" {
		t.Fatalf("expected supplied reason recorded, got %q", updated.ReassignmentHistory[1].Reason)
	}
}

func TestReassignPhotographer_RequiresAdmin(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)
	env.addPhotographer("photog-2", 200)

	_, err := env.svc.ReassignPhotographer(context.Background(), b.ID, "client-1", "photog-2", "")
	var unauth *UnauthorizedError
	if !errors.As(err, &unauth) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}
}

func TestReassignPhotographer_RejectsInactiveTarget(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)
	p := env.addPhotographer("photog-2", 200)
	p.IsActive = false
	_ = env.photographers.Update(p)

	_, err := env.svc.ReassignPhotographer(context.Background(), b.ID, "admin-1", "photog-2", "")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for inactive photographer, got %v", err)
	}
}

func TestAddReview_OnlyOnceAndOnlyWhenCompleted(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)
	ctx := context.Background()

	// Not completed yet.
	_, err := env.svc.AddReview(ctx, b.ID, "client-1", 5, "great shots")
	var invalid *InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTransitionError before completion, got %v", err)
	}

	for _, target := range []string{models.BookingConfirmed, models.BookingInProgress, models.BookingCompleted} {
		if _, err := env.svc.TransitionStatus(ctx, b.ID, "user-photog-1", target, ""); err != nil {
			t.Fatalf("transition to %s failed: %v", target, err)
		}
	}

	// Photographer cannot review their own work.
	_, err = env.svc.AddReview(ctx, b.ID, "user-photog-1", 5, "")
	var unauth *UnauthorizedError
	if !errors.As(err, &unauth) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}

	updated, err := env.svc.AddReview(ctx, b.ID, "client-1", 4, "great shots")
	if err != nil {
		t.Fatalf("review failed: %v", err)
	}
	if updated.Review == nil || updated.Review.Rating != 4 {
		t.Fatalf("expected stored review, got %+v", updated.Review)
	}

	// Rating aggregate folds in the new review.
	p, _ := env.photographers.GetByID("photog-1")
	if p.Rating.Count != 1 || p.Rating.Average != 4.0 {
		t.Fatalf("expected rating {4.0, 1}, got %+v", p.Rating)
	}

	// Second review is rejected.
	_, err = env.svc.AddReview(ctx, b.ID, "client-1", 5, "even better")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError on duplicate review, got %v", err)
	}
}

func TestAddReview_RatingBounds(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)

	for _, rating := range []int{0, 6, -1} {
		_, err := env.svc.AddReview(context.Background(), b.ID, "client-1", rating, "")
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError for rating %d, got %v", rating, err)
		}
	}
}

func TestAddMessage_ThreadAndReadTracking(t *testing.T) {
	env := newTestEnv()
	b := seedBooking(t, env)
	ctx := context.Background()

	if _, err := env.svc.AddMessage(ctx, b.ID, "client-1", "  Can we start earlier?  "); err != nil {
		t.Fatalf("client message failed: %v", err)
	}
	updated, err := env.svc.AddMessage(ctx, b.ID, "user-photog-1", "Sure, 9am works.")
	if err != nil {
		t.Fatalf("photographer message failed: %v", err)
	}
	if len(updated.Communication) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(updated.Communication))
	}
	if updated.Communication[0].Body != "Can we start earlier?" {
		t.Fatalf("expected trimmed body, got %q", updated.Communication[0].Body)
	}

	// Reading as the client marks only the photographer's message.
	updated, err = env.svc.MarkMessagesRead(ctx, b.ID, "client-1")
	if err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	if updated.Communication[0].IsRead {
		t.Fatalf("own message must not be marked read")
	}
	if !updated.Communication[1].IsRead {
		t.Fatalf("counterparty message should be marked read")
	}

	// Empty and oversized messages are rejected.
	if _, err := env.svc.AddMessage(ctx, b.ID, "client-1", "   "); err == nil {
		t.Fatalf("expected error for blank message")
	}
	long := make([]byte, 1001)
	for i := range long {
		long[i] = 'a'
	}
	if _, err := env.svc.AddMessage(ctx, b.ID, "client-1", string(long)); err == nil {
		t.Fatalf("expected error for oversized message")
	}
}
