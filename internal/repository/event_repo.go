package repository

import (
	"context"
	"time"

	"charity-events/internal/models"

	"gorm.io/gorm"
)

// EventFilter holds the optional search constraints. Zero values mean
// "no constraint". Date is a calendar day (YYYY-MM-DD) matched ignoring
// the time-of-day component.
type EventFilter struct {
	Date       string
	Location   string
	CategoryID uint
}

type EventRepository interface {
	FindUpcoming(ctx context.Context, now time.Time) ([]models.Event, error)
	Search(ctx context.Context, filter EventFilter, limit int) ([]models.Event, error)
	FindByID(ctx context.Context, id uint) (*models.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) FindUpcoming(ctx context.Context, now time.Time) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Organization").
		Where("is_suspended = ? AND date > ?", false, now).
		Order("date ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Search(ctx context.Context, filter EventFilter, limit int) ([]models.Event, error) {
	q := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Organization").
		Where("is_suspended = ?", false)

	if filter.Date != "" {
		q = q.Where("DATE(date) = ?", filter.Date)
	}
	if filter.Location != "" {
		q = q.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var events []models.Event
	if err := q.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// FindByID returns gorm.ErrRecordNotFound for suspended events as well,
// so callers cannot tell a suspended event from a missing one.
func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Organization").
		Where("is_suspended = ?", false).
		First(&event, id).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}
