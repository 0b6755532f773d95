package providerRepo

import (
	"fmt"
	"time"

	"agendly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetWorkingWindows replaces the provider's embedded working windows.
// Windows are validated by the provider service before reaching the store.
func (r *MongoProviderRepo) SetWorkingWindows(id string, windows []models.WorkingWindow) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"workingWindows": windows,
		"updatedAt":      time.Now().UTC(),
	}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set working windows for provider %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("provider with id %s not found", id)
	}
	return nil
}

// GetWorkingWindows returns only the embedded working windows of a provider.
func (r *MongoProviderRepo) GetWorkingWindows(id string) ([]models.WorkingWindow, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"workingWindows": 1})
	var provider models.Provider
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&provider); err != nil {
		return nil, fmt.Errorf("failed to fetch working windows for provider %s: %w", id, err)
	}
	return provider.WorkingWindows, nil
}
