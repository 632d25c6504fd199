package feedbackRepo

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

// MongoFeedbackRepo implements FeedbackRepository using MongoDB.
type MongoFeedbackRepo struct {
	coll *mongo.Collection
}

// NewMongoFeedbackRepo creates a new instance of FeedbackRepository using MongoDB.
func NewMongoFeedbackRepo() FeedbackRepository {
	return &MongoFeedbackRepo{coll: database.DB().Collection("feedback")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new feedback document.
func (r *MongoFeedbackRepo) Create(f *models.Feedback) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, f); err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// GetAll retrieves all feedback documents, newest first.
func (r *MongoFeedbackRepo) GetAll() ([]models.Feedback, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve feedback: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Feedback
	for cursor.Next(ctx) {
		var f models.Feedback
		if err := cursor.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to decode feedback: %w", err)
		}
		results = append(results, f)
	}
	return results, nil
}

// MarkRead flags a feedback document as read.
func (r *MongoFeedbackRepo) MarkRead(id string) error {
	return r.update(id, bson.M{"read": true})
}

// SetEmailStatus records the delivery outcome of the acknowledgment mail.
func (r *MongoFeedbackRepo) SetEmailStatus(id, status string) error {
	return r.update(id, bson.M{"emailStatus": status})
}

func (r *MongoFeedbackRepo) update(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update feedback with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("feedback with id %s not found", id)
	}
	return nil
}
