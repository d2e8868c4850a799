package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charity-events/internal/models"
	"charity-events/internal/repository"
	"charity-events/pkg/rabbitmq"

	"gorm.io/gorm"
)

// ErrEventNotFound marks an event that is absent or suspended, so handlers
// can answer 404 instead of a generic failure.
var ErrEventNotFound = errors.New("event not found")

type EventService interface {
	ListUpcoming(ctx context.Context) ([]models.Event, error)
	Search(ctx context.Context, filter repository.EventFilter) ([]models.Event, error)
	GetEvent(ctx context.Context, id uint) (*models.Event, error)
}

type eventService struct {
	repo        repository.EventRepository
	publisher   *rabbitmq.Publisher
	now         func() time.Time
	searchLimit int
}

func NewEventService(repo repository.EventRepository, publisher *rabbitmq.Publisher, now func() time.Time, searchLimit int) EventService {
	if now == nil {
		now = time.Now
	}
	return &eventService{repo: repo, publisher: publisher, now: now, searchLimit: searchLimit}
}

func (s *eventService) ListUpcoming(ctx context.Context) ([]models.Event, error) {
	events, err := s.repo.FindUpcoming(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	return events, nil
}

func (s *eventService) Search(ctx context.Context, filter repository.EventFilter) ([]models.Event, error) {
	events, err := s.repo.Search(ctx, filter, s.searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}

	// Publish events.searched so dashboards can track popular filters
	if s.publisher != nil {
		_ = s.publisher.Publish("events.searched", map[string]any{
			"date":        filter.Date,
			"location":    filter.Location,
			"category_id": filter.CategoryID,
			"results":     len(events),
		})
	}

	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("get event %d: %w", id, err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.viewed", map[string]any{"event_id": event.ID})
	}

	return event, nil
}
