package postgres

import (
	"context"

	"attendancehub/internal/domain"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (id, org_name, username, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.store.Set(ctx, query, u.ID, u.OrgName, u.Username, u.CreatedAt)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, org_name, username, created_at
		FROM users
		WHERE id = $1
	`
	u := &domain.User{}
	err := r.store.GetOne(ctx, query, id).Scan(&u.ID, &u.OrgName, &u.Username, &u.CreatedAt)
	if err != nil {
		return nil, classify(err)
	}
	return u, nil
}
