package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"charity-events/internal/models"
	"charity-events/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --- Mock EventRepository ---

type mockEventRepo struct {
	findUpcomingFn func(ctx context.Context, now time.Time) ([]models.Event, error)
	searchFn       func(ctx context.Context, filter repository.EventFilter, limit int) ([]models.Event, error)
	findByIDFn     func(ctx context.Context, id uint) (*models.Event, error)
}

func (m *mockEventRepo) FindUpcoming(ctx context.Context, now time.Time) ([]models.Event, error) {
	return m.findUpcomingFn(ctx, now)
}
func (m *mockEventRepo) Search(ctx context.Context, filter repository.EventFilter, limit int) ([]models.Event, error) {
	return m.searchFn(ctx, filter, limit)
}
func (m *mockEventRepo) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	return m.findByIDFn(ctx, id)
}

// --- Tests ---

func sampleEvent() *models.Event {
	return &models.Event{
		ID:            5,
		Name:          "Riverside Fun Run",
		Description:   "A 5km fun run along the river.",
		Purpose:       "Raising funds for mobile health clinics.",
		Date:          time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC),
		Location:      "Downtown Hall",
		TicketPrice:   decimal.Zero,
		GoalAmount:    decimal.NewFromInt(500),
		CurrentAmount: decimal.NewFromInt(250),
		CategoryID:    1,
		Category:      models.Category{ID: 1, Name: "Health"},
		Organization: models.Organization{
			ID:           2,
			Name:         "River Care",
			Mission:      "Clean water for every community",
			ContactEmail: "hello@rivercare.org",
			ContactPhone: "02 5550 1234",
		},
	}
}

func TestListUpcoming_PassesClock(t *testing.T) {
	fixedNow := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	var gotNow time.Time
	repo := &mockEventRepo{
		findUpcomingFn: func(ctx context.Context, now time.Time) ([]models.Event, error) {
			gotNow = now
			return []models.Event{*sampleEvent()}, nil
		},
	}

	svc := NewEventService(repo, nil, func() time.Time { return fixedNow }, 0)
	events, err := svc.ListUpcoming(context.Background())

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, fixedNow, gotNow)
}

func TestListUpcoming_RepoError(t *testing.T) {
	repo := &mockEventRepo{
		findUpcomingFn: func(ctx context.Context, now time.Time) ([]models.Event, error) {
			return nil, errors.New("db connection failed")
		},
	}

	svc := NewEventService(repo, nil, nil, 0)
	events, err := svc.ListUpcoming(context.Background())

	assert.Error(t, err)
	assert.Nil(t, events)
	assert.Contains(t, err.Error(), "db connection failed")
}

func TestSearch_PassesFilterAndLimit(t *testing.T) {
	var gotFilter repository.EventFilter
	var gotLimit int
	repo := &mockEventRepo{
		searchFn: func(ctx context.Context, filter repository.EventFilter, limit int) ([]models.Event, error) {
			gotFilter = filter
			gotLimit = limit
			return []models.Event{}, nil
		},
	}

	svc := NewEventService(repo, nil, nil, 100)
	filter := repository.EventFilter{Date: "2026-03-15", Location: "hall", CategoryID: 1}
	events, err := svc.Search(context.Background(), filter)

	assert.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, filter, gotFilter)
	assert.Equal(t, 100, gotLimit)
}

func TestSearch_RepoError(t *testing.T) {
	repo := &mockEventRepo{
		searchFn: func(ctx context.Context, filter repository.EventFilter, limit int) ([]models.Event, error) {
			return nil, errors.New("db connection failed")
		},
	}

	svc := NewEventService(repo, nil, nil, 0)
	_, err := svc.Search(context.Background(), repository.EventFilter{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "search events")
}

func TestGetEvent_Success(t *testing.T) {
	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return sampleEvent(), nil
		},
	}

	svc := NewEventService(repo, nil, nil, 0)
	event, err := svc.GetEvent(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, "Riverside Fun Run", event.Name)
	assert.Equal(t, "Health", event.Category.Name)
	assert.Equal(t, "River Care", event.Organization.Name)
}

func TestGetEvent_NotFound(t *testing.T) {
	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewEventService(repo, nil, nil, 0)
	event, err := svc.GetEvent(context.Background(), 999)

	assert.Nil(t, event)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestGetEvent_RepoError_NotMappedToNotFound(t *testing.T) {
	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id uint) (*models.Event, error) {
			return nil, errors.New("db connection failed")
		},
	}

	svc := NewEventService(repo, nil, nil, 0)
	event, err := svc.GetEvent(context.Background(), 5)

	assert.Nil(t, event)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEventNotFound)
}
