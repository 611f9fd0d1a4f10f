package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/franciscosanchezn/linkup-api/internal/models"
)

// EventService provides methods to interact with the events table
type EventService interface {
	// ListEvents retrieves all events
	ListEvents(ctx context.Context) ([]models.Event, error)
	// GetEvent retrieves an event by its ID
	GetEvent(ctx context.Context, id uint) (models.Event, error)
	// CreateEvent inserts a new event
	CreateEvent(ctx context.Context, event models.Event) (models.Event, error)
	// UpdateEvent applies the non-zero fields of patch; ErrNotFound when no row changed
	UpdateEvent(ctx context.Context, id uint, patch models.Event) error
	// DeleteEvent deletes an event by its ID
	DeleteEvent(ctx context.Context, id uint) error
}

type eventService struct {
	db *gorm.DB
}

// NewEventService creates a new instance of EventService
func NewEventService(db *gorm.DB) EventService {
	return &eventService{db: db}
}

func (s *eventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.WithContext(ctx).Order("id").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, id uint) (models.Event, error) {
	var event models.Event
	if err := s.db.WithContext(ctx).First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Event{}, ErrNotFound
		}
		return models.Event{}, err
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	event.ID = 0
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id uint, patch models.Event) error {
	changes := eventChanges(patch)
	if len(changes) == 0 {
		return ErrNotFound
	}

	// The row only matches when some patched column differs, so RowsAffected counts changed
	// rows on every driver and an identical patch is reported as ErrNotFound.
	differs := make([]clause.Expression, 0, 2*len(changes))
	for column, value := range changes {
		col := clause.Column{Name: column}
		differs = append(differs,
			clause.Expr{SQL: "? IS NULL", Vars: []interface{}{col}},
			clause.Neq{Column: col, Value: value},
		)
	}

	result := s.db.WithContext(ctx).Model(&models.Event{}).
		Where("id = ?", id).
		Where(clause.Or(differs...)).
		Updates(changes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// eventChanges maps the non-zero editable fields of patch to their columns
func eventChanges(patch models.Event) map[string]interface{} {
	changes := map[string]interface{}{}
	set := func(column, value string) {
		if value != "" {
			changes[column] = value
		}
	}
	set("title", patch.Title)
	set("description", patch.Description)
	set("category", patch.Category)
	set("location", patch.Location)
	set("image_url", patch.ImageURL)
	set("date", patch.Date)
	set("time", patch.Time)
	set("organizer_email", patch.OrganizerEmail)
	if patch.Capacity != 0 {
		changes["capacity"] = patch.Capacity
	}
	return changes
}

func (s *eventService) DeleteEvent(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
