package services

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"wanderlens/internal/models/db_models"
	"wanderlens/internal/repositories"
)

type mockAccountRepo struct{ mock.Mock }

func (m *mockAccountRepo) InsertTx(account *db_models.Account, ctx context.Context) error {
	return m.Called(account).Error(0)
}

func (m *mockAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	args := m.Called(id)
	acc, _ := args.Get(0).(*db_models.Account)
	return acc, args.Error(1)
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	args := m.Called(email)
	acc, _ := args.Get(0).(*db_models.Account)
	return acc, args.Error(1)
}

type mockPreferenceRepo struct{ mock.Mock }

func (m *mockPreferenceRepo) Create(ctx context.Context, pref *db_models.TravelPreference) error {
	return m.Called(pref).Error(0)
}

func (m *mockPreferenceRepo) FindById(ctx context.Context, id string) (*db_models.TravelPreference, error) {
	args := m.Called(id)
	p, _ := args.Get(0).(*db_models.TravelPreference)
	return p, args.Error(1)
}

func (m *mockPreferenceRepo) ListByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.TravelPreference, error) {
	args := m.Called(accountID, page, pageSize)
	p, _ := args.Get(0).([]db_models.TravelPreference)
	return p, args.Error(1)
}

type mockCalendarRepo struct{ mock.Mock }

func (m *mockCalendarRepo) Create(ctx context.Context, event *db_models.CalendarEvent) error {
	return m.Called(event).Error(0)
}

func (m *mockCalendarRepo) ListBetween(ctx context.Context, fromDate, toDate string) ([]db_models.CalendarEvent, error) {
	args := m.Called(fromDate, toDate)
	e, _ := args.Get(0).([]db_models.CalendarEvent)
	return e, args.Error(1)
}

func (m *mockCalendarRepo) ListByDate(ctx context.Context, date string) ([]db_models.CalendarEvent, error) {
	args := m.Called(date)
	e, _ := args.Get(0).([]db_models.CalendarEvent)
	return e, args.Error(1)
}

func (m *mockCalendarRepo) ListUpcoming(ctx context.Context, fromDate string, limit int) ([]db_models.CalendarEvent, error) {
	args := m.Called(fromDate, limit)
	e, _ := args.Get(0).([]db_models.CalendarEvent)
	return e, args.Error(1)
}

func (m *mockCalendarRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

type mockSavedPlaceRepo struct{ mock.Mock }

func (m *mockSavedPlaceRepo) Create(ctx context.Context, place *db_models.SavedPlace) error {
	return m.Called(place).Error(0)
}

func (m *mockSavedPlaceRepo) ListByAccount(ctx context.Context, accountID string, page, pageSize int) ([]db_models.SavedPlace, error) {
	args := m.Called(accountID, page, pageSize)
	p, _ := args.Get(0).([]db_models.SavedPlace)
	return p, args.Error(1)
}

func (m *mockSavedPlaceRepo) DeleteForAccount(ctx context.Context, accountID, id string) (bool, error) {
	args := m.Called(accountID, id)
	return args.Bool(0), args.Error(1)
}

type mockDashboardRepo struct{ mock.Mock }

func (m *mockDashboardRepo) CountTotalAccounts(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDashboardRepo) CountNewAccounts(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDashboardRepo) CountPreferences(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDashboardRepo) CountEvents(ctx context.Context) (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockDashboardRepo) NewUsersSeries(ctx context.Context, start, end time.Time, interval, tz string) ([]repositories.BucketSum, error) {
	args := m.Called(start, end, interval, tz)
	r, _ := args.Get(0).([]repositories.BucketSum)
	return r, args.Error(1)
}

func (m *mockDashboardRepo) TopDestinations(ctx context.Context, start, end time.Time, limit int) ([]repositories.DestinationRow, error) {
	args := m.Called(start, end, limit)
	r, _ := args.Get(0).([]repositories.DestinationRow)
	return r, args.Error(1)
}

func (m *mockDashboardRepo) TravelStyleMix(ctx context.Context, start, end time.Time) ([]repositories.StyleRow, error) {
	args := m.Called(start, end)
	r, _ := args.Get(0).([]repositories.StyleRow)
	return r, args.Error(1)
}

var (
	_ repositories.AccountRepository    = (*mockAccountRepo)(nil)
	_ repositories.PreferenceRepository = (*mockPreferenceRepo)(nil)
	_ repositories.CalendarRepository   = (*mockCalendarRepo)(nil)
	_ repositories.SavedPlaceRepository = (*mockSavedPlaceRepo)(nil)
	_ repositories.DashboardRepository  = (*mockDashboardRepo)(nil)
)
