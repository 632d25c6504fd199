package photographer

import (
	"context"
	"strings"
	"testing"
	"time"

	photographerRepo "lenslink/database/repository/photographer"
	"lenslink/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeRepo keeps profiles in memory and applies the partial update keys
// the service actually writes.
type fakeRepo struct {
	profiles map[string]*models.Photographer
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{profiles: map[string]*models.Photographer{}}
}

func (r *fakeRepo) GetByID(id string) (*models.Photographer, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakeRepo) GetByUserID(userID string) (*models.Photographer, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) Search(filter photographerRepo.SearchFilter) ([]models.Photographer, error) {
	var out []models.Photographer
	for _, p := range r.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeRepo) Create(p *models.Photographer) error {
	copied := *p
	r.profiles[p.ID] = &copied
	return nil
}

func (r *fakeRepo) Update(p *models.Photographer) error {
	copied := *p
	r.profiles[p.ID] = &copied
	return nil
}

func (r *fakeRepo) UpdateWithDocument(id string, fields bson.M) error {
	p := r.profiles[id]
	for key, value := range fields {
		switch key {
		case "bio":
			p.Bio = value.(string)
		case "specialties":
			p.Specialties = value.([]string)
		case "location":
			p.Location = value.(models.Location)
		case "hourlyRate":
			p.HourlyRate = value.(float64)
		case "packageDeals":
			p.PackageDeals = value.([]models.PackageDeal)
		case "availability":
			p.Availability = value.(models.WeeklyAvailability)
		case "portfolio":
			p.Portfolio = value.([]models.PortfolioItem)
		case "isVerified":
			p.IsVerified = value.(bool)
		}
	}
	return nil
}

// fakeStorage records uploads and deletions.
type fakeStorage struct {
	uploads   int
	deletions []string
}

func (s *fakeStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	s.uploads++
	return destFolder + "/media-1", nil
}

func (s *fakeStorage) DeleteFile(ctx context.Context, publicID string) error {
	s.deletions = append(s.deletions, publicID)
	return nil
}

func (s *fakeStorage) GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error) {
	return "https://cdn.example.com/" + publicID, nil
}

func newTestService() (*DefaultPhotographerService, *fakeRepo, *fakeStorage) {
	repo := newFakeRepo()
	store := &fakeStorage{}
	_ = repo.Create(&models.Photographer{
		ID:       "photog-1",
		UserID:   "user-1",
		IsActive: true,
	})
	return &DefaultPhotographerService{Repo: repo, Storage: store}, repo, store
}

func TestUpdateProfile_AppliesFields(t *testing.T) {
	svc, _, _ := newTestService()

	bio := "Weddings and portraits across Oregon."
	rate := 175.0
	updated, err := svc.UpdateProfile("user-1", ProfileUpdate{
		Bio:         &bio,
		HourlyRate:  &rate,
		Specialties: []string{"weddings", "portraits"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Bio != bio || updated.HourlyRate != 175 {
		t.Fatalf("fields not applied: %+v", updated)
	}
	if len(updated.Specialties) != 2 {
		t.Fatalf("expected 2 specialties, got %v", updated.Specialties)
	}
}

func TestUpdateProfile_Validation(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.UpdateProfile("user-1", ProfileUpdate{Specialties: []string{"astrophotography"}}); err == nil {
		t.Fatalf("expected error for unknown specialty")
	}

	negative := -1.0
	if _, err := svc.UpdateProfile("user-1", ProfileUpdate{HourlyRate: &negative}); err == nil {
		t.Fatalf("expected error for negative rate")
	}

	if _, err := svc.UpdateProfile("user-1", ProfileUpdate{}); err == nil {
		t.Fatalf("expected error for empty update")
	}

	bio := "n/a"
	if _, err := svc.UpdateProfile("missing-user", ProfileUpdate{Bio: &bio}); err == nil {
		t.Fatalf("expected error for unknown user")
	}
}

func TestUpdateProfile_AssignsPackageDealIDs(t *testing.T) {
	svc, _, _ := newTestService()

	updated, err := svc.UpdateProfile("user-1", ProfileUpdate{
		PackageDeals: []models.PackageDeal{
			{Name: "Silver", Price: 800},
			{ID: "keep-me", Name: "Gold", Price: 2500},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.PackageDeals[0].ID == "" {
		t.Fatalf("expected generated ID for new package deal")
	}
	if updated.PackageDeals[1].ID != "keep-me" {
		t.Fatalf("existing deal ID must be preserved, got %q", updated.PackageDeals[1].ID)
	}
}

func TestSetAvailability(t *testing.T) {
	svc, _, _ := newTestService()

	avail := models.WeeklyAvailability{
		Saturday: models.DayAvailability{Available: true, TimeSlots: []string{"10:00-16:00"}},
	}
	updated, err := svc.SetAvailability("user-1", avail)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Availability.Saturday.Available {
		t.Fatalf("availability not applied: %+v", updated.Availability)
	}
	if updated.Availability.Monday.Available {
		t.Fatalf("undeclared days must stay unavailable")
	}
}

func TestPortfolioLifecycle(t *testing.T) {
	svc, _, store := newTestService()
	ctx := context.Background()

	updated, err := svc.AddPortfolioItem(ctx, "user-1", "/tmp/shot.jpg", "Golden hour", "", "weddings")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(updated.Portfolio) != 1 {
		t.Fatalf("expected 1 portfolio item, got %d", len(updated.Portfolio))
	}
	item := updated.Portfolio[0]
	if !strings.HasPrefix(item.ID, "portfolio/photog-1/") {
		t.Fatalf("expected storage-backed item ID, got %q", item.ID)
	}
	if item.ImageURL == "" {
		t.Fatalf("expected a download URL")
	}
	if store.uploads != 1 {
		t.Fatalf("expected one upload, got %d", store.uploads)
	}

	updated, err = svc.RemovePortfolioItem(ctx, "user-1", item.ID)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(updated.Portfolio) != 0 {
		t.Fatalf("expected empty portfolio, got %d items", len(updated.Portfolio))
	}
	if len(store.deletions) != 1 || store.deletions[0] != item.ID {
		t.Fatalf("expected media deletion for %q, got %v", item.ID, store.deletions)
	}

	if _, err := svc.RemovePortfolioItem(ctx, "user-1", "never-existed"); err == nil {
		t.Fatalf("expected error for unknown portfolio item")
	}
}

func TestAddPortfolioItem_RequiresTitle(t *testing.T) {
	svc, _, store := newTestService()

	if _, err := svc.AddPortfolioItem(context.Background(), "user-1", "/tmp/shot.jpg", "", "", ""); err == nil {
		t.Fatalf("expected error for missing title")
	}
	if store.uploads != 0 {
		t.Fatalf("nothing should be uploaded when validation fails")
	}
}

func TestSetVerified(t *testing.T) {
	svc, repo, _ := newTestService()

	if err := svc.SetVerified("photog-1", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, _ := repo.GetByID("photog-1")
	if !p.IsVerified {
		t.Fatalf("expected verified flag set")
	}
}
