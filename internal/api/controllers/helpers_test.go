package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"wanderlens/internal/models/db_models"
	"wanderlens/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	utils.APIResponse
	Data json.RawMessage `json:"data"`
}

func perform(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) (envelope, T) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var data T
	if len(env.Data) > 0 && string(env.Data) != "null" {
		require.NoError(t, json.Unmarshal(env.Data, &data))
	}
	return env, data
}

type memAccountRepo struct {
	mu       sync.Mutex
	accounts map[string]*db_models.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: map[string]*db_models.Account{}}
}

func (m *memAccountRepo) InsertTx(account *db_models.Account, ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	account.ID = uuid.New()
	m.accounts[account.ID.String()] = account
	return nil
}

func (m *memAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.accounts[id], nil
}

func (m *memAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return nil, nil
}

type memCalendarRepo struct {
	mu     sync.Mutex
	events []db_models.CalendarEvent
}

func (m *memCalendarRepo) Create(ctx context.Context, event *db_models.CalendarEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	event.ID = uuid.New()
	m.events = append(m.events, *event)
	return nil
}

func (m *memCalendarRepo) ListBetween(ctx context.Context, fromDate, toDate string) ([]db_models.CalendarEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db_models.CalendarEvent
	for _, e := range m.events {
		if e.Date >= fromDate && e.Date <= toDate {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memCalendarRepo) ListByDate(ctx context.Context, date string) ([]db_models.CalendarEvent, error) {
	return m.ListBetween(ctx, date, date)
}

func (m *memCalendarRepo) ListUpcoming(ctx context.Context, fromDate string, limit int) ([]db_models.CalendarEvent, error) {
	out, _ := m.ListBetween(ctx, fromDate, "9999-12-31")
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memCalendarRepo) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.events {
		if e.ID.String() == id {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
