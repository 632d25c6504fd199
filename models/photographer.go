package models

import (
	"math"
	"time"
)

// Specialty categories a photographer may declare.
var PhotographerSpecialties = []string{
	"weddings", "portraits", "events", "commercial", "fashion",
	"nature", "street", "sports", "other",
}

// DayAvailability declares whether a weekday is bookable and which
// time-slot strings (e.g. "09:00-12:00") are offered on it.
type DayAvailability struct {
	Available bool     `bson:"available" json:"available"`
	TimeSlots []string `bson:"timeSlots,omitempty" json:"timeSlots,omitempty"`
}

// WeeklyAvailability is the photographer's declared weekly schedule.
type WeeklyAvailability struct {
	Monday    DayAvailability `bson:"monday" json:"monday"`
	Tuesday   DayAvailability `bson:"tuesday" json:"tuesday"`
	Wednesday DayAvailability `bson:"wednesday" json:"wednesday"`
	Thursday  DayAvailability `bson:"thursday" json:"thursday"`
	Friday    DayAvailability `bson:"friday" json:"friday"`
	Saturday  DayAvailability `bson:"saturday" json:"saturday"`
	Sunday    DayAvailability `bson:"sunday" json:"sunday"`
}

// PortfolioItem is a single published portfolio entry.
type PortfolioItem struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string    `bson:"imageUrl" json:"imageUrl"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// PackageDeal is a fixed-price offering.
type PackageDeal struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64  `bson:"price" json:"price"`
	Duration    float64  `bson:"duration,omitempty" json:"duration,omitempty"` // hours
	Includes    []string `bson:"includes,omitempty" json:"includes,omitempty"`
}

// PhotographerReview is a client review copied onto the photographer profile.
type PhotographerReview struct {
	UserID    string    `bson:"userId" json:"userId"`
	BookingID string    `bson:"bookingId" json:"bookingId"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Rating is the derived review aggregate.
type Rating struct {
	Average float64 `bson:"average" json:"average"`
	Count   int     `bson:"count" json:"count"`
}

// Location is a free-form postal location with optional coordinates.
type Location struct {
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	City        string    `bson:"city,omitempty" json:"city,omitempty"`
	State       string    `bson:"state,omitempty" json:"state,omitempty"`
	Country     string    `bson:"country,omitempty" json:"country,omitempty"`
	Coordinates []float64 `bson:"coordinates,omitempty" json:"coordinates,omitempty"` // [longitude, latitude]
}

// Photographer is the profile owned 1:1 by a photographer-role user.
type Photographer struct {
	ID           string               `bson:"id" json:"id"`
	UserID       string               `bson:"userId" json:"userId"`
	Bio          string               `bson:"bio,omitempty" json:"bio,omitempty"`
	Specialties  []string             `bson:"specialties,omitempty" json:"specialties,omitempty"`
	Location     Location             `bson:"location" json:"location"`
	Portfolio    []PortfolioItem      `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
	HourlyRate   float64              `bson:"hourlyRate" json:"hourlyRate"`
	PackageDeals []PackageDeal        `bson:"packageDeals,omitempty" json:"packageDeals,omitempty"`
	Availability WeeklyAvailability   `bson:"availability" json:"availability"`
	Reviews      []PhotographerReview `bson:"reviews,omitempty" json:"reviews,omitempty"`
	Rating       Rating               `bson:"rating" json:"rating"`
	IsVerified   bool                 `bson:"isVerified" json:"isVerified"`
	IsActive     bool                 `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// RecalculateRating recomputes the aggregate from the current review set.
// With no reviews the average defaults to 5.
func (p *Photographer) RecalculateRating() {
	if len(p.Reviews) == 0 {
		p.Rating = Rating{Average: 5, Count: 0}
		return
	}
	var sum float64
	for _, r := range p.Reviews {
		sum += float64(r.Rating)
	}
	avg := sum / float64(len(p.Reviews))
	p.Rating = Rating{
		Average: math.Round(avg*10) / 10,
		Count:   len(p.Reviews),
	}
}
