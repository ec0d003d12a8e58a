package impl

import (
	"sync"
	"time"

	"plantcare/config"
	"plantcare/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	activityTitlePlantAdded   = "New Plant Added"
	activityTitlePlantUpdated = "Plant Updated"
	activityTimeJustNow       = "Just now"
	defaultFeedCapacity       = 50
)

// ActivityFeed is the bounded, newest-first list behind the dashboard's
// recent activity panel. It is safe for concurrent use.
type ActivityFeed struct {
	mu       sync.RWMutex
	items    []*entity.Activity
	capacity int
	now      func() time.Time
}

// NewActivityFeed creates a feed seeded with the dashboard's care reminders.
func NewActivityFeed(cfg *config.Config) *ActivityFeed {
	capacity := defaultFeedCapacity
	if cfg != nil && cfg.Activity != nil && cfg.Activity.Capacity > 0 {
		capacity = cfg.Activity.Capacity
	}

	feed := &ActivityFeed{capacity: capacity, now: time.Now}
	now := feed.now()
	feed.items = []*entity.Activity{
		feed.careActivity("Watered Monstera", "Morning watering • Next due in 3 days", "2 hours ago", now.Add(-2*time.Hour)),
		feed.careActivity("Added fertilizer", "Snake Plant • Nutrient boost applied", "1 day ago", now.Add(-24*time.Hour)),
		feed.careActivity("Plant health check", "All plants looking healthy!", "2 days ago", now.Add(-48*time.Hour)),
	}
	if len(feed.items) > capacity {
		feed.items = feed.items[:capacity]
	}

	return feed
}

// RecordPlantAdded prepends a "New Plant Added" entry.
func (f *ActivityFeed) RecordPlantAdded(product *entity.Product, plantType string) *entity.Activity {
	activity := &entity.Activity{
		ID:        uuid.NewString(),
		Title:     activityTitlePlantAdded,
		Time:      activityTimeJustNow,
		CreatedAt: f.now(),
		IsPlant:   true,
	}
	fillPlant(activity, product, plantType)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append([]*entity.Activity{activity}, f.items...)
	if len(f.items) > f.capacity {
		f.items = f.items[:f.capacity]
	}

	return copyActivity(activity)
}

// RecordPlantUpdated refreshes the entry of the plant in place.
// It reports false when the plant has no entry.
func (f *ActivityFeed) RecordPlantUpdated(product *entity.Product, plantType string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, item := range f.items {
		if !item.IsPlant || item.PlantID != product.ID {
			continue
		}

		updated := copyActivity(item)
		updated.Title = activityTitlePlantUpdated
		updated.Time = activityTimeJustNow
		updated.CreatedAt = f.now()
		fillPlant(updated, product, plantType)
		f.items[i] = updated

		return true
	}

	return false
}

// RemovePlant drops every entry that references the plant.
func (f *ActivityFeed) RemovePlant(productID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.items[:0]
	for _, item := range f.items {
		if item.IsPlant && item.PlantID == productID {
			continue
		}
		kept = append(kept, item)
	}
	clear(f.items[len(kept):])
	f.items = kept
}

func (f *ActivityFeed) Find(activityID string) (*entity.Activity, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, item := range f.items {
		if item.ID == activityID {
			return copyActivity(item), true
		}
	}

	return nil, false
}

func (f *ActivityFeed) Remove(activityID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, item := range f.items {
		if item.ID == activityID {
			f.items = append(f.items[:i], f.items[i+1:]...)

			return true
		}
	}

	return false
}

// List returns a snapshot copy, newest first.
func (f *ActivityFeed) List() []*entity.Activity {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]*entity.Activity, len(f.items))
	for i, item := range f.items {
		out[i] = copyActivity(item)
	}

	return out
}

func (f *ActivityFeed) PlantCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	count := 0
	for _, item := range f.items {
		if item.IsPlant {
			count++
		}
	}

	return count
}

func (f *ActivityFeed) careActivity(title, description, when string, at time.Time) *entity.Activity {
	return &entity.Activity{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Time:        when,
		CreatedAt:   at,
	}
}

func fillPlant(activity *entity.Activity, product *entity.Product, plantType string) {
	activity.Description = plantSummary(product.Name, plantType)
	activity.PlantID = product.ID
	activity.PlantName = product.Name
	activity.PlantType = plantType
	activity.PlantDescription = product.Description
	activity.PlantPrice = product.Price
	activity.PlantImageURL = product.ImageURL
}

// plantSummary renders "name • type", or just the name when type is empty.
func plantSummary(name, plantType string) string {
	if plantType == "" {
		return name
	}

	return name + " • " + plantType
}

func copyActivity(activity *entity.Activity) *entity.Activity {
	c := *activity

	return &c
}
