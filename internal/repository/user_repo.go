package repository

import (
	"context"

	"gorm.io/gorm"

	"tablebook/internal/domain"
)

type UserRepository struct {
	*CRUD[domain.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{CRUD: NewCRUD[domain.User](db)}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Search matches emails for the async FK selector. Empty term lists everyone.
func (r *UserRepository) Search(ctx context.Context, term string) ([]domain.User, error) {
	q := ListQuery{}
	if term != "" {
		q.Search = Search{Column: "email", Term: term}
	}
	return r.List(ctx, q)
}
