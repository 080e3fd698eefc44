package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Search narrows a list to rows whose column matches the term. It feeds the
// async FK selectors (users by email, restaurants by name).
type Search struct {
	Column string
	Term   string
}

// ListQuery is the one shape every entity list runs through: relation
// preloads, exact-match FK filters and an optional search.
type ListQuery struct {
	Preloads []string
	Filters  map[string]uuid.UUID
	Search   Search
}

// CRUD is the generic gorm repository shared by all five entities. Entity
// repositories embed it and add relation expansion and count aggregation on
// top.
type CRUD[T any] struct {
	db *gorm.DB
}

func NewCRUD[T any](db *gorm.DB) *CRUD[T] {
	return &CRUD[T]{db: db}
}

func (r *CRUD[T]) Create(ctx context.Context, m *T) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *CRUD[T]) GetByID(ctx context.Context, id uuid.UUID, preloads ...string) (*T, error) {
	q := r.db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}

	var m T
	if err := q.First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *CRUD[T]) Update(ctx context.Context, m *T) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *CRUD[T]) Delete(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CRUD[T]) List(ctx context.Context, q ListQuery) ([]T, error) {
	tx := r.db.WithContext(ctx)
	for _, p := range q.Preloads {
		tx = tx.Preload(p)
	}
	for column, id := range q.Filters {
		tx = tx.Where(column+" = ?", id)
	}
	if q.Search.Column != "" && q.Search.Term != "" {
		tx = tx.Where(q.Search.Column+" LIKE ?", "%"+q.Search.Term+"%")
	}

	var out []T
	err := tx.Order("created_at").Find(&out).Error
	return out, err
}

// countByFK groups child rows of model by fkColumn for the given parent ids.
// Parents without children are simply absent from the result map.
func countByFK(ctx context.Context, db *gorm.DB, model any, fkColumn string, ids []uuid.UUID) (map[uuid.UUID]int64, error) {
	type row struct {
		FkID uuid.UUID `gorm:"column:fk_id"`
		Cnt  int64     `gorm:"column:cnt"`
	}

	var rows []row
	err := db.WithContext(ctx).
		Model(model).
		Select(fkColumn + " AS fk_id, COUNT(*) AS cnt").
		Where(fkColumn+" IN ?", ids).
		Group(fkColumn).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.FkID] = r.Cnt
	}
	return counts, nil
}
