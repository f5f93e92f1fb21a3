package posgrest

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type repository[T interface{}] struct {
	db       *gorm.DB
	idColumn string
}

func New[T interface{}](db *gorm.DB, idColumn string) *repository[T] {
	return &repository[T]{
		db:       db,
		idColumn: idColumn,
	}
}

func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(&entity).Error
}

// GetByID returns nil without an error when no row matches; absence is an
// ordinary outcome, not a failure.
func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where(fmt.Sprintf("%s = ?", r.idColumn), id).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *repository[T]) GetAll(ctx context.Context) (*[]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return &entities, nil
}

func (r *repository[T]) Update(ctx context.Context, entity *T, id string) error {
	return r.db.WithContext(ctx).Where(fmt.Sprintf("%s = ?", r.idColumn), id).Updates(entity).Error
}

func (r *repository[T]) Delete(ctx context.Context, id string) error {
	var entity T
	return r.db.WithContext(ctx).Where(fmt.Sprintf("%s = ?", r.idColumn), id).Delete(&entity).Error
}
