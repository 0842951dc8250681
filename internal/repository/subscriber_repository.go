package repository

import (
	"fmt"
	"kpoller/internal/models"

	"gorm.io/gorm"
)

type SubscriberRepository interface {
	GenericRepository[models.Subscriber]
	FindActive() ([]models.Subscriber, error)
	FindByEmail(email string) (*models.Subscriber, error)
	FindUnnotified(box *models.Box) ([]models.Subscriber, error)
	MarkNotified(subscriber *models.Subscriber, box *models.Box) error
}

type SubscriberRepositoryImpl[T models.Subscriber] struct {
	GenericRepository[models.Subscriber]
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &SubscriberRepositoryImpl[models.Subscriber]{
		GenericRepository: NewGenericRepository[models.Subscriber](db),
		db:                db,
	}
}

func (r *SubscriberRepositoryImpl[T]) FindActive() ([]models.Subscriber, error) {
	var subscribers []models.Subscriber
	err := r.db.Where("active = ?", true).Find(&subscribers).Error
	return subscribers, translate(err)
}

// FindByEmail requires exactly one match: ErrNotFound on zero,
// ErrMultipleResults if the email uniqueness invariant was violated.
func (r *SubscriberRepositoryImpl[T]) FindByEmail(email string) (*models.Subscriber, error) {
	var subscribers []models.Subscriber
	err := r.db.Where("email = ?", email).Limit(2).Find(&subscribers).Error
	if err != nil {
		return nil, translate(err)
	}
	switch len(subscribers) {
	case 0:
		return nil, fmt.Errorf("subscriber %s: %w", email, ErrNotFound)
	case 1:
		return &subscribers[0], nil
	default:
		return nil, fmt.Errorf("subscriber %s: %w", email, ErrMultipleResults)
	}
}

// FindUnnotified returns every subscriber whose notification pointer is not
// at the given box: those pointing at a different box and those never
// notified at all. The active flag is not consulted here; callers filter if
// they need to.
func (r *SubscriberRepositoryImpl[T]) FindUnnotified(box *models.Box) ([]models.Subscriber, error) {
	var subscribers []models.Subscriber
	err := r.db.
		Where("last_box_id IS NULL OR last_box_id <> ?", box.ID).
		Order("id").
		Find(&subscribers).Error
	return subscribers, translate(err)
}

// MarkNotified advances the subscriber's notification pointer to the given
// box in a single commit. Idempotent: repeating with the same box changes
// nothing.
func (r *SubscriberRepositoryImpl[T]) MarkNotified(subscriber *models.Subscriber, box *models.Box) error {
	err := r.db.Model(&models.Subscriber{}).
		Where("id = ?", subscriber.ID).
		Update("last_box_id", box.ID).Error
	if err != nil {
		return translate(err)
	}
	boxID := box.ID
	subscriber.LastBoxID = &boxID
	return nil
}
