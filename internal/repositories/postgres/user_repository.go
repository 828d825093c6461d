package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/marketlens/marketlens/internal/models"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user *models.DashboardUser) error {
	query := `
        INSERT INTO dashboard_users (
            id, email, name, role, password_hash, active, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.Role,
		user.PasswordHash,
		user.Active,
		user.CreatedAt,
	)
	return err
}

func (r *UserRepository) GetAll(ctx context.Context) ([]*models.DashboardUser, error) {
	query := `
        SELECT id, email, name, role, password_hash, active, created_at
        FROM dashboard_users
        ORDER BY created_at
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.DashboardUser
	for rows.Next() {
		user := &models.DashboardUser{}
		err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Name,
			&user.Role,
			&user.PasswordHash,
			&user.Active,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.DashboardUser, error) {
	query := `
        SELECT id, email, name, role, password_hash, active, created_at
        FROM dashboard_users
        WHERE email = $1
    `
	user := &models.DashboardUser{}
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Role,
		&user.PasswordHash,
		&user.Active,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id, role string) error {
	_, err := r.pool.Exec(ctx, "UPDATE dashboard_users SET role = $2 WHERE id = $1", id, role)
	return err
}

func (r *UserRepository) Deactivate(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, "UPDATE dashboard_users SET active = false WHERE id = $1", id)
	return err
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM dashboard_users").Scan(&count)
	return count, err
}
