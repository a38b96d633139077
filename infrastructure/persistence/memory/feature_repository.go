package memory

import (
	"context"
	"sync"

	"bakery/domain/feature"
)

// FeatureRepository In-memory implementation of feature repository
type FeatureRepository struct {
	features map[string]*feature.Feature
	mu       sync.RWMutex
}

// NewFeatureRepository Create in-memory feature repository seeded with
// PRODUCT_ORDERING enabled
func NewFeatureRepository() *FeatureRepository {
	return &FeatureRepository{
		features: map[string]*feature.Feature{
			feature.ProductOrdering: feature.New(feature.ProductOrdering, feature.StatusEnabled),
		},
	}
}

func (r *FeatureRepository) FindByName(_ context.Context, name string) (*feature.Feature, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, exists := r.features[name]
	if !exists {
		return nil, feature.NewFeatureNotFoundError(name)
	}
	return f.Copy(), nil
}

func (r *FeatureRepository) Save(_ context.Context, f *feature.Feature) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.features[f.Name()] = f.Copy()
	return nil
}
