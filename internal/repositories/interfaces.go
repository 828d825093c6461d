package repositories

import (
	"context"

	"github.com/marketlens/marketlens/internal/models"
)

type SalesFilter struct {
	Channels  []string
	City      string
	FromMonth string
	ToMonth   string
}

type SalesRepository interface {
	MonthlyRecords(ctx context.Context, filter SalesFilter) ([]models.SalesRecord, error)
	WeeklyRecords(ctx context.Context, filter SalesFilter) ([]models.SalesRecord, error)
	BulkInsert(ctx context.Context, records []models.SalesRecord) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type UserRepository interface {
	Create(ctx context.Context, user *models.DashboardUser) error
	GetAll(ctx context.Context) ([]*models.DashboardUser, error)
	GetByEmail(ctx context.Context, email string) (*models.DashboardUser, error)
	UpdateRole(ctx context.Context, id, role string) error
	Deactivate(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
