package photographer

import (
	"context"
	"fmt"
	"time"

	photographerRepo "lenslink/database/repository/photographer"
	"lenslink/models"
	"lenslink/services/storage"
	"lenslink/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ProfileUpdate carries the editable profile fields. Nil fields are left
// untouched.
type ProfileUpdate struct {
	Bio          *string              `json:"bio"`
	Specialties  []string             `json:"specialties"`
	Location     *models.Location     `json:"location"`
	HourlyRate   *float64             `json:"hourlyRate"`
	PackageDeals []models.PackageDeal `json:"packageDeals"`
}

// PhotographerService defines profile management operations.
type PhotographerService interface {
	GetByID(id string) (*models.Photographer, error)
	GetByUserID(userID string) (*models.Photographer, error)
	Search(filter photographerRepo.SearchFilter) ([]models.Photographer, error)
	UpdateProfile(userID string, update ProfileUpdate) (*models.Photographer, error)
	SetAvailability(userID string, availability models.WeeklyAvailability) (*models.Photographer, error)
	AddPortfolioItem(ctx context.Context, userID, localFilePath, title, description, category string) (*models.Photographer, error)
	RemovePortfolioItem(ctx context.Context, userID, itemID string) (*models.Photographer, error)
	SetVerified(id string, verified bool) error
}

// DefaultPhotographerService is the production implementation.
type DefaultPhotographerService struct {
	Repo    photographerRepo.PhotographerRepository
	Storage storage.StorageService
}

// GetByID fetches a profile.
func (s *DefaultPhotographerService) GetByID(id string) (*models.Photographer, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("photographer %s not found", id)
	}
	return p, nil
}

// GetByUserID fetches the profile owned by the given user.
func (s *DefaultPhotographerService) GetByUserID(userID string) (*models.Photographer, error) {
	p, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("photographer profile for user %s not found", userID)
	}
	return p, nil
}

// Search lists active profiles matching the filter, best-rated first.
func (s *DefaultPhotographerService) Search(filter photographerRepo.SearchFilter) ([]models.Photographer, error) {
	return s.Repo.Search(filter)
}

// UpdateProfile applies a partial profile update.
func (s *DefaultPhotographerService) UpdateProfile(userID string, update ProfileUpdate) (*models.Photographer, error) {
	p, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	if update.Bio != nil {
		fields["bio"] = *update.Bio
	}
	if update.Specialties != nil {
		for _, spec := range update.Specialties {
			if !validSpecialty(spec) {
				return nil, fmt.Errorf("unknown specialty %q", spec)
			}
		}
		fields["specialties"] = update.Specialties
	}
	if update.Location != nil {
		fields["location"] = *update.Location
	}
	if update.HourlyRate != nil {
		if *update.HourlyRate < 0 {
			return nil, fmt.Errorf("hourly rate cannot be negative")
		}
		fields["hourlyRate"] = *update.HourlyRate
	}
	if update.PackageDeals != nil {
		deals := update.PackageDeals
		for i := range deals {
			if deals[i].ID == "" {
				deals[i].ID = uuid.New().String()
			}
			if deals[i].Price < 0 {
				return nil, fmt.Errorf("package price cannot be negative")
			}
		}
		fields["packageDeals"] = deals
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no updatable fields provided")
	}

	if err := s.Repo.UpdateWithDocument(p.ID, fields); err != nil {
		return nil, err
	}
	return s.GetByID(p.ID)
}

func validSpecialty(spec string) bool {
	for _, known := range models.PhotographerSpecialties {
		if known == spec {
			return true
		}
	}
	return false
}

// SetAvailability replaces the declared weekly schedule.
func (s *DefaultPhotographerService) SetAvailability(userID string, availability models.WeeklyAvailability) (*models.Photographer, error) {
	p, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateWithDocument(p.ID, bson.M{"availability": availability}); err != nil {
		return nil, err
	}
	return s.GetByID(p.ID)
}

// AddPortfolioItem uploads the image to media storage and publishes the
// portfolio entry.
func (s *DefaultPhotographerService) AddPortfolioItem(ctx context.Context, userID, localFilePath, title, description, category string) (*models.Photographer, error) {
	p, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, fmt.Errorf("portfolio title is required")
	}

	publicID, err := s.Storage.UploadFile(ctx, localFilePath, "portfolio/"+p.ID)
	if err != nil {
		return nil, err
	}
	imageURL, err := s.Storage.GetDownloadURL(ctx, publicID, 0)
	if err != nil {
		return nil, err
	}

	item := models.PortfolioItem{
		ID:          publicID,
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		Category:    category,
		CreatedAt:   time.Now(),
	}
	p.Portfolio = append(p.Portfolio, item)

	if err := s.Repo.UpdateWithDocument(p.ID, bson.M{"portfolio": p.Portfolio}); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("portfolio item added",
		zap.String("photographerID", p.ID),
		zap.String("itemID", item.ID))

	return s.GetByID(p.ID)
}

// RemovePortfolioItem deletes the stored image and drops the entry.
func (s *DefaultPhotographerService) RemovePortfolioItem(ctx context.Context, userID, itemID string) (*models.Photographer, error) {
	p, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	kept := p.Portfolio[:0]
	found := false
	for _, item := range p.Portfolio {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return nil, fmt.Errorf("portfolio item %s not found", itemID)
	}

	if err := s.Storage.DeleteFile(ctx, itemID); err != nil {
		utils.GetLogger().Warn("failed to delete portfolio media",
			zap.String("itemID", itemID), zap.Error(err))
	}

	if err := s.Repo.UpdateWithDocument(p.ID, bson.M{"portfolio": kept}); err != nil {
		return nil, err
	}
	return s.GetByID(p.ID)
}

// SetVerified flags a profile as admin-verified.
func (s *DefaultPhotographerService) SetVerified(id string, verified bool) error {
	return s.Repo.UpdateWithDocument(id, bson.M{"isVerified": verified})
}
