package store

import (
	"context"

	"github.com/hys-retail/storedesk/internal/domain/access"
)

type Repository interface {
	// Upsert inserts the store or overwrites name, code and active flag.
	Upsert(ctx context.Context, s *Store) error
	Create(ctx context.Context, s *Store) error
	Update(ctx context.Context, s *Store) error
	GetByID(ctx context.Context, id string) (*Store, error)
	List(ctx context.Context) ([]*Store, error)
	Count(ctx context.Context) (int64, error)
}

type DeviceRepository interface {
	Create(ctx context.Context, d *Device) error
	Update(ctx context.Context, d *Device) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, scope access.Scope, id string) (*Device, error)
	ListByStore(ctx context.Context, storeID string) ([]*Device, error)
}
