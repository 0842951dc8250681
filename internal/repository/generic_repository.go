package repository

import (
	"gorm.io/gorm"
)

type GenericRepositoryImpl[T any] struct {
	db *gorm.DB
}

func NewGenericRepository[T any](db *gorm.DB) GenericRepository[T] {
	return &GenericRepositoryImpl[T]{db: db}
}

// Create persists the entity, nested associations included, in a single
// commit.
func (r *GenericRepositoryImpl[T]) Create(entity *T) error {
	return translate(r.db.Create(entity).Error)
}

func (r *GenericRepositoryImpl[T]) FindByID(id uint) (*T, error) {
	var entity T
	if err := r.db.First(&entity, id).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

func (r *GenericRepositoryImpl[T]) FindAll() ([]T, error) {
	var entities []T
	err := r.db.Order("id").Find(&entities).Error
	return entities, translate(err)
}

func (r *GenericRepositoryImpl[T]) Update(entity *T) error {
	return translate(r.db.Save(entity).Error)
}

func (r *GenericRepositoryImpl[T]) Delete(id uint) error {
	var entity T
	return translate(r.db.Delete(&entity, id).Error)
}
