package usecases

import (
	"context"
	"fmt"

	"github.com/hys-retail/storedesk/internal/domain/store"
	"github.com/hys-retail/storedesk/internal/shared/logger"
)

// SeedStore is one entry of the static store list.
type SeedStore struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Code     string `yaml:"code"`
	IsActive *bool  `yaml:"is_active"`
}

// Transactor runs fn inside one database transaction.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type SeedStoresUseCase struct {
	storeRepo store.Repository
	tx        Transactor
	logger    logger.Interface
}

func NewSeedStoresUseCase(storeRepo store.Repository, tx Transactor, logger logger.Interface) *SeedStoresUseCase {
	return &SeedStoresUseCase{storeRepo: storeRepo, tx: tx, logger: logger}
}

// Execute upserts every entry atomically and returns how many were written.
func (uc *SeedStoresUseCase) Execute(ctx context.Context, entries []SeedStore) (int, error) {
	stores := make([]*store.Store, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for i, e := range entries {
		active := true
		if e.IsActive != nil {
			active = *e.IsActive
		}
		s, err := store.NewStore(e.ID, e.Name, e.Code, active)
		if err != nil {
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}
		if seen[s.ID()] {
			return 0, fmt.Errorf("entry %d: duplicate store id %q", i, s.ID())
		}
		seen[s.ID()] = true
		stores = append(stores, s)
	}

	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, s := range stores {
			if err := uc.storeRepo.Upsert(ctx, s); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to seed stores", "error", err)
		return 0, fmt.Errorf("failed to seed stores: %w", err)
	}

	uc.logger.Infow("stores seeded", "count", len(stores))
	return len(stores), nil
}
