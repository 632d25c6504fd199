package photographerRepo

import (
	"context"
	"fmt"
	"time"

	"lenslink/database"
	"lenslink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPhotographerRepo implements PhotographerRepository using MongoDB.
type MongoPhotographerRepo struct {
	coll *mongo.Collection
}

// NewMongoPhotographerRepo creates a new instance of PhotographerRepository using MongoDB.
func NewMongoPhotographerRepo() PhotographerRepository {
	coll := database.DB().Collection("photographers")
	repo := &MongoPhotographerRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPhotographerRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "specialties", Value: 1}}},
		{Keys: bson.D{{Key: "rating.average", Value: -1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new photographer profile document.
func (r *MongoPhotographerRepo) Create(p *models.Photographer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to create photographer: %w", err)
	}
	return nil
}

// Update replaces an existing photographer profile document.
func (r *MongoPhotographerRepo) Update(p *models.Photographer) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	p.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": p.ID}, bson.M{"$set": p})
	if err != nil {
		return fmt.Errorf("failed to update photographer with id %s: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("photographer with id %s not found", p.ID)
	}
	return nil
}

// UpdateWithDocument applies a partial update to a photographer document.
func (r *MongoPhotographerRepo) UpdateWithDocument(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update photographer with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("photographer with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a photographer profile by its unique ID.
func (r *MongoPhotographerRepo) GetByID(id string) (*models.Photographer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Photographer
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch photographer with id %s: %w", id, err)
	}
	return &p, nil
}

// GetByUserID retrieves the profile owned by the given user.
func (r *MongoPhotographerRepo) GetByUserID(userID string) (*models.Photographer, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Photographer
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch photographer for user %s: %w", userID, err)
	}
	return &p, nil
}

// Search lists active profiles matching the filter, best-rated first.
func (r *MongoPhotographerRepo) Search(filter SearchFilter) ([]models.Photographer, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{"isActive": true}
	if filter.Specialty != "" {
		query["specialties"] = filter.Specialty
	}
	if filter.City != "" {
		query["location.city"] = filter.City
	}
	if filter.Verified != nil {
		query["isVerified"] = *filter.Verified
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "rating.average", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search photographers: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Photographer
	for cursor.Next(ctx) {
		var p models.Photographer
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode photographer: %w", err)
		}
		results = append(results, p)
	}
	return results, nil
}
