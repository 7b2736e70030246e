package store

import (
	"context"

	"github.com/clktech/storefront/internal/models"
)

// Each accessor call is a single database round trip; failures surface
// immediately without retries, and no call spans multiple entities.

type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	Create(ctx context.Context, in models.ProductInput) (*models.Product, error)
	Update(ctx context.Context, id int64, patch models.ProductPatch) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}

type OrderStore interface {
	List(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	Create(ctx context.Context, in models.OrderInput) (*models.Order, error)
	Update(ctx context.Context, id int64, patch models.OrderPatch) (*models.Order, error)
	Delete(ctx context.Context, id int64) error
}

type ContactStore interface {
	List(ctx context.Context) ([]models.Contact, error)
	Create(ctx context.Context, in models.ContactInput) (*models.Contact, error)
	Delete(ctx context.Context, id int64) error
}

type SettingsStore interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, patch models.SettingsPatch) (*models.Settings, error)
}

type AdminStore interface {
	// GetByLogin looks an admin up by username or email.
	GetByLogin(ctx context.Context, login string) (*models.Admin, error)
	Create(ctx context.Context, username, email, passwordHash string) (*models.Admin, error)
}
