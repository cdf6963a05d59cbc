package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/northwind/internal/config"
	"github.com/deppfellow/northwind/internal/errs"
	"github.com/deppfellow/northwind/internal/middleware"
	"github.com/deppfellow/northwind/internal/model"
	"github.com/deppfellow/northwind/internal/server"
	"github.com/deppfellow/northwind/internal/service"
)

type customerStore struct {
	rows map[string]model.Customer
}

func (s *customerStore) GetAll(context.Context) ([]model.Customer, error) {
	out := make([]model.Customer, 0, len(s.rows))
	for _, c := range s.rows {
		out = append(out, c)
	}
	return out, nil
}

func (s *customerStore) Find(_ context.Context, id string) (model.Customer, bool, error) {
	c, ok := s.rows[id]
	return c, ok, nil
}

func (s *customerStore) Add(_ context.Context, c model.Customer) (model.Customer, error) {
	s.rows[c.ID] = c
	return c, nil
}

func (s *customerStore) Update(_ context.Context, c model.Customer) error {
	s.rows[c.ID] = c
	return nil
}

func (s *customerStore) Delete(_ context.Context, id string) error {
	delete(s.rows, id)
	return nil
}

func (s *customerStore) Count(context.Context) (int64, error) {
	return int64(len(s.rows)), nil
}

func testServer() *server.Server {
	return &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Observability: config.DefaultObservabilityConfig(),
		},
	}
}

func newCustomerAPI(t *testing.T) (*echo.Echo, *customerStore) {
	t.Helper()
	store := &customerStore{rows: map[string]model.Customer{
		"ALFKI": {ID: "ALFKI", CompanyName: "Alfreds Futterkiste", City: "Berlin"},
	}}
	s := testServer()
	h := NewCustomerHandler(s, service.NewEntityService[model.Customer, string]("customer", store))

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler
	g := e.Group("/api/v1/customers")
	g.GET("", Handle[ListRequest](h.Handler, h.List, http.StatusOK))
	g.GET("/:id", Handle[CustomerIDRequest](h.Handler, h.Get, http.StatusOK))
	g.POST("", Handle[CreateCustomerRequest](h.Handler, h.Create, http.StatusCreated))
	g.PUT("/:id", Handle[UpdateCustomerRequest](h.Handler, h.Update, http.StatusOK))
	g.DELETE("/:id", HandleNoContent[CustomerIDRequest](h.Handler, h.Delete, http.StatusNoContent))
	return e, store
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()
	var body errs.HTTPError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestCustomers_Get(t *testing.T) {
	e, _ := newCustomerAPI(t)

	rec := do(e, http.MethodGet, "/api/v1/customers/ALFKI", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var c model.Customer
	if err := json.Unmarshal(rec.Body.Bytes(), &c); err != nil {
		t.Fatal(err)
	}
	if c.CompanyName != "Alfreds Futterkiste" {
		t.Fatalf("got %+v", c)
	}
}

func TestCustomers_GetMissing(t *testing.T) {
	e, _ := newCustomerAPI(t)

	rec := do(e, http.MethodGet, "/api/v1/customers/NOPE", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := decodeError(t, rec); body.Code != "CUSTOMER_NOT_FOUND" {
		t.Fatalf("code = %s", body.Code)
	}
}

func TestCustomers_CreateUpdateDelete(t *testing.T) {
	e, store := newCustomerAPI(t)

	rec := do(e, http.MethodPost, "/api/v1/customers",
		`{"id":"TSTID","companyName":"Test Company","contactName":"John Doe","contactTitle":"Manager",
		  "address":"123 Test St","city":"Test City","region":"TC","postalCode":"12345","country":"USA",
		  "phone":"555-1234","fax":"555-5678"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := store.rows["TSTID"]; got.ContactTitle != "Manager" || got.Fax != "555-5678" {
		t.Fatalf("stored %+v", got)
	}

	rec = do(e, http.MethodPut, "/api/v1/customers/TSTID",
		`{"id":"IGNORED","companyName":"Updated Test Company","contactName":"Jane Smith","phone":"555-9999"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", rec.Code, rec.Body.String())
	}
	if _, ok := store.rows["IGNORED"]; ok {
		t.Fatal("the body must not override the path id")
	}
	if got := store.rows["TSTID"]; got.CompanyName != "Updated Test Company" || got.Phone != "555-9999" {
		t.Fatalf("stored %+v", got)
	}

	if rec = do(e, http.MethodDelete, "/api/v1/customers/TSTID", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if rec = do(e, http.MethodDelete, "/api/v1/customers/TSTID", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d", rec.Code)
	}
}

func TestCustomers_CreateValidation(t *testing.T) {
	e, store := newCustomerAPI(t)

	rec := do(e, http.MethodPost, "/api/v1/customers", `{"id":"TOOLONG","companyName":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	body := decodeError(t, rec)

	fields := map[string]string{}
	for _, fe := range body.Errors {
		fields[fe.Field] = fe.Error
	}
	if fields["id"] != "must not exceed 5 characters" || fields["companyname"] != "is required" {
		t.Fatalf("field errors = %+v", body.Errors)
	}
	if len(store.rows) != 1 {
		t.Fatal("invalid payload must not reach the store")
	}
}

func TestCustomers_ConcurrentRequestsDoNotSharePayloads(t *testing.T) {
	e, _ := newCustomerAPI(t)

	first := do(e, http.MethodGet, "/api/v1/customers/ALFKI", "")
	second := do(e, http.MethodGet, "/api/v1/customers/NOPE", "")
	if first.Code != http.StatusOK || second.Code != http.StatusNotFound {
		t.Fatalf("statuses %d %d", first.Code, second.Code)
	}
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type fakeCounter struct {
	n   int64
	err error
}

func (c fakeCounter) Count(context.Context) (int64, error) { return c.n, c.err }

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		db         pinger
		tables     map[string]counter
		wantStatus int
	}{
		{
			name:       "healthy",
			db:         fakePinger{},
			tables:     map[string]counter{"customers": fakeCounter{n: 91}, "shippers": fakeCounter{n: 3}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "database down",
			db:         fakePinger{err: errors.New("connection refused")},
			tables:     map[string]counter{"customers": fakeCounter{n: 91}},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "table unreadable",
			db:         fakePinger{},
			tables:     map[string]counter{"products": fakeCounter{err: errors.New("relation does not exist")}},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HealthHandler{Handler: NewHandler(testServer()), db: tt.db, tables: tt.tables}

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)

			if err := h.CheckHealth(c); err != nil {
				t.Fatal(err)
			}
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			checks := body["checks"].(map[string]any)
			if _, ok := checks["database"]; !ok {
				t.Fatal("missing database check")
			}
			if _, ok := checks["tables"]; !ok {
				t.Fatal("missing tables check")
			}
		})
	}
}
