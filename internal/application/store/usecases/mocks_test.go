package usecases

import (
	"context"
	"sort"

	"github.com/hys-retail/storedesk/internal/domain/access"
	"github.com/hys-retail/storedesk/internal/domain/store"
)

type mockStoreRepository struct {
	stores  map[string]*store.Store
	err     error
	upserts int
}

func newMockStoreRepository(stores ...*store.Store) *mockStoreRepository {
	m := &mockStoreRepository{stores: make(map[string]*store.Store)}
	for _, s := range stores {
		m.stores[s.ID()] = s
	}
	return m
}

func (m *mockStoreRepository) Upsert(_ context.Context, s *store.Store) error {
	if m.err != nil {
		return m.err
	}
	m.stores[s.ID()] = s
	m.upserts++
	return nil
}

func (m *mockStoreRepository) Create(_ context.Context, s *store.Store) error {
	if m.err != nil {
		return m.err
	}
	m.stores[s.ID()] = s
	return nil
}

func (m *mockStoreRepository) Update(_ context.Context, s *store.Store) error {
	if m.err != nil {
		return m.err
	}
	m.stores[s.ID()] = s
	return nil
}

func (m *mockStoreRepository) GetByID(_ context.Context, id string) (*store.Store, error) {
	s, ok := m.stores[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return s, nil
}

func (m *mockStoreRepository) List(_ context.Context) ([]*store.Store, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]*store.Store, 0, len(m.stores))
	for _, s := range m.stores {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result, nil
}

func (m *mockStoreRepository) Count(_ context.Context) (int64, error) {
	return int64(len(m.stores)), m.err
}

type mockDeviceRepository struct {
	devices map[string]*store.Device
}

func newMockDeviceRepository(devices ...*store.Device) *mockDeviceRepository {
	m := &mockDeviceRepository{devices: make(map[string]*store.Device)}
	for _, d := range devices {
		m.devices[d.ID()] = d
	}
	return m
}

func (m *mockDeviceRepository) Create(_ context.Context, d *store.Device) error {
	m.devices[d.ID()] = d
	return nil
}

func (m *mockDeviceRepository) Update(_ context.Context, d *store.Device) error {
	m.devices[d.ID()] = d
	return nil
}

func (m *mockDeviceRepository) Delete(_ context.Context, id string) error {
	if _, ok := m.devices[id]; !ok {
		return store.ErrDeviceNotFound
	}
	delete(m.devices, id)
	return nil
}

func (m *mockDeviceRepository) GetByID(_ context.Context, scope access.Scope, id string) (*store.Device, error) {
	d, ok := m.devices[id]
	if !ok || !scope.Allows(d.StoreID()) {
		return nil, store.ErrDeviceNotFound
	}
	return d, nil
}

func (m *mockDeviceRepository) ListByStore(_ context.Context, storeID string) ([]*store.Device, error) {
	var result []*store.Device
	for _, d := range m.devices {
		if d.StoreID() == storeID {
			result = append(result, d)
		}
	}
	return result, nil
}

// inlineTransactor runs fn without a database.
type inlineTransactor struct {
	calls int
}

func (t *inlineTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}
