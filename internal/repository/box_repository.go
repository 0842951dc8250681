package repository

import (
	"errors"
	"fmt"
	"kpoller/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BoxRepository interface {
	GenericRepository[models.Box]
	FindByNameAndMonth(name, month string) (*models.Box, error)
	IsNew(box *models.Box) (bool, error)
	CreateIfAbsent(box *models.Box) (bool, error)
}

type BoxRepositoryImpl[T models.Box] struct {
	GenericRepository[models.Box]
	db *gorm.DB
}

func NewBoxRepository(db *gorm.DB) BoxRepository {
	return &BoxRepositoryImpl[models.Box]{
		GenericRepository: NewGenericRepository[models.Box](db),
		db:                db,
	}
}

// FindByID returns (nil, nil) when no box has the given surrogate id.
func (r *BoxRepositoryImpl[T]) FindByID(id uint) (*models.Box, error) {
	var box models.Box
	err := r.db.Preload("Items").First(&box, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translate(err)
	}
	return &box, nil
}

// FindAll returns every box in creation order.
func (r *BoxRepositoryImpl[T]) FindAll() ([]models.Box, error) {
	var boxes []models.Box
	err := r.db.Preload("Items").Order("id").Find(&boxes).Error
	return boxes, translate(err)
}

// FindByNameAndMonth resolves a box by its natural key. Exact string match,
// no normalization. Exactly one row is required: ErrNotFound on zero,
// ErrMultipleResults if the uniqueness invariant was violated.
func (r *BoxRepositoryImpl[T]) FindByNameAndMonth(name, month string) (*models.Box, error) {
	var boxes []models.Box
	err := r.db.Preload("Items").
		Where("name = ? AND month = ?", name, month).
		Limit(2).
		Find(&boxes).Error
	if err != nil {
		return nil, translate(err)
	}
	switch len(boxes) {
	case 0:
		return nil, fmt.Errorf("box (%s, %s): %w", name, month, ErrNotFound)
	case 1:
		return &boxes[0], nil
	default:
		return nil, fmt.Errorf("box (%s, %s): %w", name, month, ErrMultipleResults)
	}
}

// IsNew reports whether no stored box has the candidate's (name, month)
// pair. Evaluated against durable state at call time, never a cache.
func (r *BoxRepositoryImpl[T]) IsNew(box *models.Box) (bool, error) {
	var count int64
	err := r.db.Model(&models.Box{}).
		Where("name = ? AND month = ?", box.Name, box.Month).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count == 0, nil
}

// CreateIfAbsent inserts the box and its items unless a box with the same
// (name, month) already exists, as one transaction. The conflict check rides
// on the unique index, so concurrent ingestion runs cannot both insert. The
// returned bool reports whether a row was created; on false the candidate is
// left unpersisted and untouched.
func (r *BoxRepositoryImpl[T]) CreateIfAbsent(box *models.Box) (bool, error) {
	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "month"}},
			DoNothing: true,
		}).Create(box)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		created = true
		for i := range box.Items {
			box.Items[i].BoxID = box.ID
		}
		if len(box.Items) > 0 {
			if err := tx.Create(&box.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, translate(err)
	}
	return created, nil
}

// Delete removes a box and all its items. Subscribers pointing at the box
// keep their stale last_box_id; see the dangling-reference note on
// models.Subscriber.
func (r *BoxRepositoryImpl[T]) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("box_id = ?", id).Delete(&models.BoxItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Box{}, id).Error
	})
	return translate(err)
}
