package service

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"testing"

	"github.com/deppfellow/northwind/internal/dao"
	"github.com/deppfellow/northwind/internal/errs"
	"github.com/deppfellow/northwind/internal/model"
)

// memStore is an in-memory Store keyed by shipper id.
type memStore struct {
	rows    map[int64]model.Shipper
	next    int64
	updates int
	deletes int
	failAll error
}

func newMemStore(rows ...model.Shipper) *memStore {
	m := &memStore{rows: map[int64]model.Shipper{}, next: 1}
	for _, r := range rows {
		m.rows[r.ID] = r
		if r.ID >= m.next {
			m.next = r.ID + 1
		}
	}
	return m
}

func (m *memStore) GetAll(context.Context) ([]model.Shipper, error) {
	if m.failAll != nil {
		return nil, m.failAll
	}
	out := make([]model.Shipper, 0, len(m.rows))
	for _, r := range m.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) Find(_ context.Context, id int64) (model.Shipper, bool, error) {
	if m.failAll != nil {
		return model.Shipper{}, false, m.failAll
	}
	r, ok := m.rows[id]
	return r, ok, nil
}

func (m *memStore) Add(_ context.Context, s model.Shipper) (model.Shipper, error) {
	s.ID = m.next
	m.next++
	m.rows[s.ID] = s
	return s, nil
}

func (m *memStore) Update(_ context.Context, s model.Shipper) error {
	m.updates++
	if _, ok := m.rows[s.ID]; ok {
		m.rows[s.ID] = s
	}
	return nil
}

func (m *memStore) Delete(_ context.Context, id int64) error {
	m.deletes++
	delete(m.rows, id)
	return nil
}

func (m *memStore) Count(context.Context) (int64, error) {
	return int64(len(m.rows)), nil
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T (%v)", err, err)
	}
	return httpErr.Status
}

func TestEntityService_GetMissingIsNotFound(t *testing.T) {
	svc := NewEntityService[model.Shipper, int64]("shipper", newMemStore())

	_, err := svc.Get(context.Background(), 42)
	if got := statusOf(t, err); got != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", got)
	}

	var httpErr *errs.HTTPError
	errors.As(err, &httpErr)
	if httpErr.Code != "SHIPPER_NOT_FOUND" {
		t.Fatalf("code = %s", httpErr.Code)
	}
}

func TestEntityService_CreateAssignsID(t *testing.T) {
	store := newMemStore(model.Shipper{ID: 3, CompanyName: "Federal Shipping"})
	svc := NewEntityService[model.Shipper, int64]("shipper", store)

	created, err := svc.Create(context.Background(), model.Shipper{CompanyName: "New", Phone: "1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 4 {
		t.Fatalf("ID = %d, want 4", created.ID)
	}
	if n, _ := svc.Count(context.Background()); n != 2 {
		t.Fatalf("Count = %d, want 2", n)
	}
}

func TestEntityService_UpdateChecksExistence(t *testing.T) {
	store := newMemStore(model.Shipper{ID: 1, CompanyName: "Speedy Express"})
	svc := NewEntityService[model.Shipper, int64]("shipper", store)
	ctx := context.Background()

	_, err := svc.Update(ctx, 9, model.Shipper{ID: 9, CompanyName: "Ghost"})
	if got := statusOf(t, err); got != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", got)
	}
	if store.updates != 0 {
		t.Fatal("store must not be called for a missing entity")
	}

	updated, err := svc.Update(ctx, 1, model.Shipper{ID: 1, CompanyName: "Speedier Express"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.CompanyName != "Speedier Express" || store.rows[1].CompanyName != "Speedier Express" {
		t.Fatalf("update not applied: %+v", store.rows[1])
	}
}

func TestEntityService_Delete(t *testing.T) {
	store := newMemStore(model.Shipper{ID: 1, CompanyName: "Speedy Express"})
	svc := NewEntityService[model.Shipper, int64]("shipper", store)
	ctx := context.Background()

	if err := svc.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := statusOf(t, svc.Delete(ctx, 1)); got != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", got)
	}
	if store.deletes != 1 {
		t.Fatalf("deletes = %d, want 1", store.deletes)
	}
}

func TestEntityService_PropagatesStoreErrors(t *testing.T) {
	store := newMemStore()
	store.failAll = &dao.Error{Op: "get_all", Table: "shippers", Kind: dao.KindConnectivity}
	svc := NewEntityService[model.Shipper, int64]("shipper", store)

	if _, err := svc.List(context.Background()); !errors.Is(err, dao.ErrConnectivity) {
		t.Fatalf("List: %v", err)
	}
	if _, err := svc.Get(context.Background(), 1); !errors.Is(err, dao.ErrConnectivity) {
		t.Fatalf("Get: %v", err)
	}
}
