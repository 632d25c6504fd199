package photographerRepo

import (
	"lenslink/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SearchFilter narrows photographer listings.
type SearchFilter struct {
	Specialty string
	City      string
	Verified  *bool
	Page      int
	Limit     int
}

// PhotographerRepository defines methods for photographer profile data access.
type PhotographerRepository interface {
	// GetByID retrieves a photographer profile by its unique ID, or nil when absent.
	GetByID(id string) (*models.Photographer, error)
	// GetByUserID retrieves the profile owned by the given user, or nil when absent.
	GetByUserID(userID string) (*models.Photographer, error)
	// Search lists active profiles matching the filter, best-rated first.
	Search(filter SearchFilter) ([]models.Photographer, error)
	// Create inserts a new photographer profile.
	Create(p *models.Photographer) error
	// Update replaces an existing profile document.
	Update(p *models.Photographer) error
	// UpdateWithDocument applies a partial update to a profile document.
	UpdateWithDocument(id string, fields bson.M) error
}
