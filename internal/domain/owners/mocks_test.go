package owners_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"petclinic/internal/domain/owners"
	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/paging"
	"petclinic/internal/platform/web/webtest"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
)

type ownerRepoMock struct{ mock.Mock }

func (m *ownerRepoMock) FindByLastName(ctx context.Context, lastName string, page paging.Request) (paging.Page[owners.Owner], error) {
	args := m.Called(ctx, lastName, page)
	return args.Get(0).(paging.Page[owners.Owner]), args.Error(1)
}

func (m *ownerRepoMock) FindByID(ctx context.Context, id int) (owners.Owner, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(owners.Owner), args.Error(1)
}

func (m *ownerRepoMock) Save(ctx context.Context, o owners.Owner) (owners.Owner, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(owners.Owner), args.Error(1)
}

type petRepoMock struct{ mock.Mock }

func (m *petRepoMock) FindPetTypes(ctx context.Context) ([]owners.PetType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]owners.PetType), args.Error(1)
}

func (m *petRepoMock) FindByID(ctx context.Context, id int) (owners.Pet, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(owners.Pet), args.Error(1)
}

func (m *petRepoMock) Save(ctx context.Context, p owners.Pet) (owners.Pet, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(owners.Pet), args.Error(1)
}

type visitRepoMock struct{ mock.Mock }

func (m *visitRepoMock) FindByPetID(ctx context.Context, petID int) ([]owners.Visit, error) {
	args := m.Called(ctx, petID)
	return args.Get(0).([]owners.Visit), args.Error(1)
}

func (m *visitRepoMock) Save(ctx context.Context, v owners.Visit) (owners.Visit, error) {
	args := m.Called(ctx, v)
	return args.Get(0).(owners.Visit), args.Error(1)
}

// fixedNow es el "hoy" de los tests.
var fixedNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

type fixture struct {
	owners *ownerRepoMock
	pets   *petRepoMock
	visits *visitRepoMock

	svc *owners.Service
	rd  *webtest.Recorder
	h   http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		owners: &ownerRepoMock{},
		pets:   &petRepoMock{},
		visits: &visitRepoMock{},
		rd:     webtest.NewRecorder(),
	}
	f.svc = owners.NewService(f.owners, f.pets, f.visits,
		owners.WithClock(func() time.Time { return fixedNow }),
	)

	r := chi.NewRouter()
	owners.RegisterRoutes(r, f.svc, f.rd, logger.Nop())
	f.h = r

	t.Cleanup(func() {
		f.owners.AssertExpectations(t)
		f.pets.AssertExpectations(t)
		f.visits.AssertExpectations(t)
	})
	return f
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (f *fixture) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	f.h.ServeHTTP(rec, req)
	return rec
}

func janeDoe(id int) owners.Owner {
	return owners.Owner{
		ID:        id,
		FirstName: "Jane",
		LastName:  "Doe",
		Address:   "42 Main St",
		City:      "Oxford",
		Telephone: "4105551212",
		Pets:      []owners.Pet{},
	}
}

func janeDoeForm() url.Values {
	return url.Values{
		"firstName": {"Jane"},
		"lastName":  {"Doe"},
		"address":   {"42 Main St"},
		"city":      {"Oxford"},
		"telephone": {"4105551212"},
	}
}

func petTypes() []owners.PetType {
	return []owners.PetType{
		{ID: 5, Name: "bird"},
		{ID: 1, Name: "cat"},
		{ID: 2, Name: "dog"},
	}
}

func date(s string) *time.Time {
	t, err := time.Parse(owners.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return &t
}
