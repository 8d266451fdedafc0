package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/snezamha/cms-core/internal/apiserver/database"
	"github.com/snezamha/cms-core/internal/apiserver/service"
	"github.com/snezamha/cms-core/internal/common/cnst"
	"github.com/snezamha/cms-core/internal/identity"
)

// fakeDB is an in-memory Database for handler tests.
type fakeDB struct {
	nextID     uint
	users      map[uint]*database.User
	general    *database.SettingsGeneral
	appearance *database.SettingsAppearance

	failReads bool
}

func newFakeDB() *fakeDB {
	return &fakeDB{users: map[uint]*database.User{}}
}

func (m *fakeDB) Close() error { return nil }
func (m *fakeDB) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
func (m *fakeDB) GetUserByExternalID(_ context.Context, externalID string) (*database.User, error) {
	if m.failReads {
		return nil, assertErr
	}
	for _, u := range m.users {
		if u.ExternalID == externalID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
func (m *fakeDB) GetUserByID(_ context.Context, id uint) (*database.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}
func (m *fakeDB) CreateUser(_ context.Context, user *database.User) error {
	m.nextID++
	user.ID = m.nextID
	cp := *user
	m.users[user.ID] = &cp
	return nil
}
func (m *fakeDB) UpdateUser(_ context.Context, user *database.User) error {
	cp := *user
	m.users[user.ID] = &cp
	return nil
}
func (m *fakeDB) DeleteUser(_ context.Context, id uint) error {
	delete(m.users, id)
	return nil
}
func (m *fakeDB) ListUsers(context.Context) ([]*database.User, error) {
	ids := make([]int, 0, len(m.users))
	for id := range m.users {
		ids = append(ids, int(id))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ids)))
	out := make([]*database.User, 0, len(ids))
	for _, id := range ids {
		cp := *m.users[uint(id)]
		out = append(out, &cp)
	}
	return out, nil
}
func (m *fakeDB) CountUsers(context.Context) (int64, error) {
	return int64(len(m.users)), nil
}
func (m *fakeDB) CountUsersByRole(_ context.Context, role database.UserRole) (int64, error) {
	var n int64
	for _, u := range m.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}
func (m *fakeDB) FirstUser(context.Context) (*database.User, error) {
	var first *database.User
	for _, u := range m.users {
		if first == nil || u.ID < first.ID {
			first = u
		}
	}
	if first == nil {
		return nil, nil
	}
	cp := *first
	return &cp, nil
}
func (m *fakeDB) GetSettingsGeneral(context.Context) (*database.SettingsGeneral, error) {
	if m.failReads {
		return nil, assertErr
	}
	if m.general == nil {
		return nil, nil
	}
	cp := *m.general
	return &cp, nil
}
func (m *fakeDB) SaveSettingsGeneral(_ context.Context, s *database.SettingsGeneral) error {
	if s.ID == 0 {
		s.ID = 1
	}
	cp := *s
	m.general = &cp
	return nil
}
func (m *fakeDB) GetSettingsAppearance(context.Context) (*database.SettingsAppearance, error) {
	if m.failReads {
		return nil, assertErr
	}
	if m.appearance == nil {
		return nil, nil
	}
	cp := *m.appearance
	return &cp, nil
}
func (m *fakeDB) SaveSettingsAppearance(_ context.Context, s *database.SettingsAppearance) error {
	if s.ID == 0 {
		s.ID = 1
	}
	cp := *s
	m.appearance = &cp
	return nil
}

// seedUser inserts a user row directly.
func (m *fakeDB) seedUser(externalID string, role database.UserRole) *database.User {
	u := &database.User{ExternalID: externalID, Email: externalID + "@example.com", Role: role}
	_ = m.CreateUser(context.Background(), u)
	return m.users[u.ID]
}

// seedGeneral stores a raw locale document.
func (m *fakeDB) seedGeneral(locale, doc string) {
	if m.general == nil {
		m.general = &database.SettingsGeneral{ID: 1}
	}
	m.general.SetLocale(locale, datatypes.JSON(doc))
}

var assertErr = errTest("storage failure")

type errTest string

func (e errTest) Error() string { return string(e) }

// failingProvider rejects every management API call.
type failingProvider struct{}

func (failingProvider) Verify(_ context.Context, token string) (*identity.Identity, error) {
	return &identity.Identity{ID: token}, nil
}
func (failingProvider) DeleteUser(context.Context, string) error { return assertErr }

// newTestRouter builds a gin engine with the given identity injected,
// mirroring what the auth middleware does for a valid session.
func newTestRouter(ident *identity.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(cnst.XLang, cnst.LangEN)
		if ident != nil {
			c.Set(cnst.IdentityKey, ident)
		}
		c.Next()
	})
	return r
}

func newSync(db database.Database) *service.SyncService {
	return service.NewSyncService(db, zap.NewNop())
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (%s)", err, w.Body.String())
	}
	return out
}
