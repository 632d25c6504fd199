package booking

import (
	"math"
	"time"

	"lenslink/models"
)

// resolvePricing determines the booking amount: the chosen package deal's
// price when one is selected, otherwise hourly rate times duration.
func resolvePricing(p *models.Photographer, packageID string, duration float64) (float64, models.BookingPackage, error) {
	if packageID != "" {
		for _, deal := range p.PackageDeals {
			if deal.ID == packageID {
				pkg := models.BookingPackage{
					Name:     deal.Name,
					Price:    deal.Price,
					Includes: deal.Includes,
				}
				return deal.Price, pkg, nil
			}
		}
		return 0, models.BookingPackage{}, &NotFoundError{Entity: "package", ID: packageID}
	}
	return p.HourlyRate * duration, models.BookingPackage{}, nil
}

// cancellationFeePercentage returns the fee fraction owed when cancelling
// the given number of days before the event.
func cancellationFeePercentage(daysUntilEvent int) float64 {
	switch {
	case daysUntilEvent < 7:
		return 0.5
	case daysUntilEvent < 30:
		return 0.25
	default:
		return 0.1
	}
}

// calculateCancellationFee computes the fee and refund owed when cancelling
// at the given moment. Days remaining are rounded up, so a cancellation
// 6.5 days out is charged the under-7-day rate.
func calculateCancellationFee(totalAmount float64, eventDate, now time.Time) (fee, refund float64) {
	daysUntilEvent := int(math.Ceil(eventDate.Sub(now).Hours() / 24))
	fee = math.Round(totalAmount * cancellationFeePercentage(daysUntilEvent))
	return fee, totalAmount - fee
}
