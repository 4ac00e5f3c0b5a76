package http

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-db-journal/internal/config"
	"github.com/MKhiriev/go-db-journal/internal/logger"
	"github.com/MKhiriev/go-db-journal/internal/mock"
	"github.com/MKhiriev/go-db-journal/internal/service"
	"github.com/MKhiriev/go-db-journal/internal/snapshot"
	"github.com/MKhiriev/go-db-journal/internal/store"
	"github.com/MKhiriev/go-db-journal/internal/utils"
	"github.com/MKhiriev/go-db-journal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "db-journal"
	testUserID  = int64(42)
	rowUUID     = "0190f5b2-7c1e-7a3b-9d4f-000000000010"
)

type apiFixture struct {
	sync    *mock.MockSyncService
	domain  *mock.MockDomainService
	devices *mock.MockDeviceService
	health  *mock.MockHealthService
	router  http.Handler
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &apiFixture{
		sync:    mock.NewMockSyncService(ctrl),
		domain:  mock.NewMockDomainService(ctrl),
		devices: mock.NewMockDeviceService(ctrl),
		health:  mock.NewMockHealthService(ctrl),
	}
	services := &service.Services{
		SyncService:   f.sync,
		DomainService: f.domain,
		DeviceService: f.devices,
		HealthService: f.health,
	}
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("# metrics"))
	})
	app := config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer}
	f.router = NewHandler(services, app, metrics, logger.Nop()).Init()
	return f
}

func bearer(t *testing.T, userID int64, ttl time.Duration) string {
	t.Helper()
	token, err := utils.IssueAccessToken(testIssuer, userID, "", ttl, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token
}

func (f *apiFixture) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", bearer(t, testUserID, time.Hour))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// Authentication
// ─────────────────────────────────────────────

func TestAuth_Rejects(t *testing.T) {
	f := newAPIFixture(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header"},
		{name: "scheme only", header: "Bearer"},
		{name: "garbage token", header: "Bearer not.a.jwt"},
		{name: "expired token", header: bearer(t, testUserID, -time.Minute)},
		{name: "non-user subject", header: bearer(t, 0, time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/sync", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			f.router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestAuth_WrongIssuer(t *testing.T) {
	f := newAPIFixture(t)
	token, err := utils.IssueAccessToken("someone-else", testUserID, "", time.Hour, testSignKey)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodHead, "/api/sync", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		header    string
		wantToken string
		wantErr   error
	}{
		{header: "Bearer abc", wantToken: "abc"},
		{header: "bearer  abc ", wantToken: "abc"},
		{header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Bearer   ", wantErr: ErrEmptyToken},
	}
	for _, tt := range tests {
		token, err := getTokenFromAuthHeader(tt.header)
		assert.ErrorIs(t, err, tt.wantErr, tt.header)
		assert.Equal(t, tt.wantToken, token, tt.header)
	}
}

// ─────────────────────────────────────────────
// Public routes
// ─────────────────────────────────────────────

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)
	f.health.EXPECT().Check(gomock.Any()).Return(models.HealthStatus{
		Status:   "degraded",
		Backends: map[string]string{"postgres": "ok", "redis": "unavailable"},
	}, false)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	var got models.HealthStatus
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "unavailable", got.Backends["redis"])
}

func TestMetricsRoute(t *testing.T) {
	f := newAPIFixture(t)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "# metrics", rr.Body.String())
}

func TestTraceID(t *testing.T) {
	f := newAPIFixture(t)
	f.health.EXPECT().Check(gomock.Any()).Return(models.HealthStatus{Status: "ok"}, true).Times(2)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	_, err := uuid.Parse(rr.Header().Get(traceIDHeader))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	rr = httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	assert.Equal(t, "trace-1", rr.Header().Get(traceIDHeader))
}

func TestUnsupportedMethodIsNotFound(t *testing.T) {
	f := newAPIFixture(t)

	rr := f.do(t, http.MethodPut, "/api/sync", nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ─────────────────────────────────────────────
// Sync
// ─────────────────────────────────────────────

func TestSyncHash(t *testing.T) {
	f := newAPIFixture(t)
	f.sync.EXPECT().Hash(gomock.Any(), testUserID).Return("h1", nil)

	rr := f.do(t, http.MethodHead, "/api/sync", nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `"h1"`, rr.Header().Get("ETag"))
	assert.Empty(t, rr.Body.Bytes())
}

func TestSyncHash_Failure(t *testing.T) {
	f := newAPIFixture(t)
	f.sync.EXPECT().Hash(gomock.Any(), testUserID).Return("", snapshot.ErrTransport)

	rr := f.do(t, http.MethodHead, "/api/sync", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestSyncFetch_NotModified(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		headers map[string]string
	}{
		{name: "If-None-Match", path: "/api/sync", headers: map[string]string{"If-None-Match": `"h1"`}},
		{name: "weak If-None-Match", path: "/api/sync", headers: map[string]string{"If-None-Match": `W/"h1"`}},
		{name: "If-Match", path: "/api/sync", headers: map[string]string{"If-Match": "h1"}},
		{name: "query", path: "/api/sync?hash=h1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.sync.EXPECT().Fetch(gomock.Any(), testUserID, "h1").
				Return(models.SyncSnapshot{Hash: "h1", NotModified: true}, nil)

			rr := f.do(t, http.MethodGet, tt.path, nil, tt.headers)
			assert.Equal(t, http.StatusNotModified, rr.Code)
			assert.Equal(t, `"h1"`, rr.Header().Get("ETag"))
			assert.Empty(t, rr.Body.Bytes())
		})
	}
}

func TestSyncFetch_FullSnapshot(t *testing.T) {
	f := newAPIFixture(t)
	db := []byte{0x53, 0x51, 0x4c, 0xfb, 0xff, 0x00}
	f.sync.EXPECT().Fetch(gomock.Any(), testUserID, "").Return(models.SyncSnapshot{Hash: "h2", DB: db}, nil)

	rr := f.do(t, http.MethodGet, "/api/sync", nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var got models.SyncResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "h2", got.Hash)
	decoded, err := base64.URLEncoding.DecodeString(got.DB)
	require.NoError(t, err)
	assert.Equal(t, db, decoded)
}

func TestSyncFetch_Gzip(t *testing.T) {
	f := newAPIFixture(t)
	db := bytes.Repeat([]byte("snapshot"), 64)
	f.sync.EXPECT().Fetch(gomock.Any(), testUserID, "").Return(models.SyncSnapshot{Hash: "h3", DB: db}, nil)

	rr := f.do(t, http.MethodGet, "/api/sync", nil, map[string]string{"Accept-Encoding": "gzip"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	var got models.SyncResponse
	require.NoError(t, json.NewDecoder(zr).Decode(&got))
	assert.Equal(t, base64.URLEncoding.EncodeToString(db), got.DB)
}

func TestSyncReset(t *testing.T) {
	f := newAPIFixture(t)
	f.sync.EXPECT().Reset(gomock.Any(), testUserID).Return(models.SyncSnapshot{Hash: "h4", DB: []byte("db")}, nil)

	rr := f.do(t, http.MethodDelete, "/api/sync", nil, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `"h4"`, rr.Header().Get("ETag"))
}

func TestSyncReset_FailureIsServerError(t *testing.T) {
	f := newAPIFixture(t)
	f.sync.EXPECT().Reset(gomock.Any(), testUserID).Return(models.SyncSnapshot{}, snapshot.ErrNotFound)

	rr := f.do(t, http.MethodDelete, "/api/sync", nil, nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// ─────────────────────────────────────────────
// Domain writes
// ─────────────────────────────────────────────

func TestCreateProfile(t *testing.T) {
	f := newAPIFixture(t)
	in := models.ProfileInput{Name: "Alice"}
	f.domain.EXPECT().CreateProfile(gomock.Any(), testUserID, in).
		Return(models.Profile{UUID: rowUUID, UserID: testUserID, Name: "Alice"}, nil)

	rr := f.do(t, http.MethodPost, "/api/profiles", in, nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var got models.Profile
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, rowUUID, got.UUID)
}

func TestCreateProfile_BadBody(t *testing.T) {
	f := newAPIFixture(t)

	rr := f.do(t, http.MethodPost, "/api/profiles", `{"name":"Alice","role":"admin"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = f.do(t, http.MethodPost, "/api/profiles", `{`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateCard_PassesUUID(t *testing.T) {
	f := newAPIFixture(t)
	title := "New"
	f.domain.EXPECT().UpdateCard(gomock.Any(), testUserID, rowUUID, models.CardPatch{Title: &title}).
		Return(models.Card{UUID: rowUUID, Title: title}, nil)

	rr := f.do(t, http.MethodPatch, "/api/cards/"+rowUUID, `{"title":"New"}`, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDeleteRoutes(t *testing.T) {
	f := newAPIFixture(t)
	f.domain.EXPECT().DeleteProfile(gomock.Any(), testUserID, rowUUID).Return(nil)
	f.domain.EXPECT().DeleteCard(gomock.Any(), testUserID, rowUUID).Return(store.ErrRowNotFound)
	f.domain.EXPECT().DeleteRelation(gomock.Any(), testUserID, rowUUID).Return(store.ErrForbidden)
	f.domain.EXPECT().Unsubscribe(gomock.Any(), testUserID, rowUUID).Return(nil)

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/api/profiles/"+rowUUID, nil, nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodDelete, "/api/cards/"+rowUUID, nil, nil).Code)
	assert.Equal(t, http.StatusForbidden, f.do(t, http.MethodDelete, "/api/relations/"+rowUUID, nil, nil).Code)
	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/api/subscriptions/"+rowUUID, nil, nil).Code)
}

func TestSubscribe_CardUnavailable(t *testing.T) {
	f := newAPIFixture(t)
	in := models.SubscriptionInput{ProfileUUID: rowUUID, CardUUID: rowUUID}
	f.domain.EXPECT().Subscribe(gomock.Any(), testUserID, in).Return(models.CardSubscription{}, service.ErrCardUnavailable)

	rr := f.do(t, http.MethodPost, "/api/subscriptions", in, nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestPutRelation_Invalid(t *testing.T) {
	f := newAPIFixture(t)
	in := models.RelationInput{FromProfileUUID: rowUUID, ToProfileUUID: rowUUID}
	f.domain.EXPECT().PutRelation(gomock.Any(), testUserID, in).
		Return(models.ProfileRelation{}, errors.Join(service.ErrInvalidDataProvided, errors.New("self relation")))

	rr := f.do(t, http.MethodPost, "/api/relations", in, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestContentHash(t *testing.T) {
	f := newAPIFixture(t)
	body := `{"name":"Alice"}`
	f.domain.EXPECT().CreateProfile(gomock.Any(), testUserID, models.ProfileInput{Name: "Alice"}).
		Return(models.Profile{UUID: rowUUID}, nil)

	rr := f.do(t, http.MethodPost, "/api/profiles", body, map[string]string{contentHashHeader: "bogus"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = f.do(t, http.MethodPost, "/api/profiles", body, map[string]string{contentHashHeader: utils.ContentHash([]byte(body))})
	assert.Equal(t, http.StatusCreated, rr.Code)
}

// ─────────────────────────────────────────────
// Devices
// ─────────────────────────────────────────────

func TestDevices(t *testing.T) {
	f := newAPIFixture(t)
	in := models.DeviceInput{DeviceToken: "tok-1", Platform: "ios"}
	f.devices.EXPECT().RegisterDevice(gomock.Any(), testUserID, in).Return(nil)
	f.devices.EXPECT().RevokeDevice(gomock.Any(), testUserID, "tok-1").Return(nil)

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodPut, "/api/devices", in, nil).Code)
	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/api/devices/tok-1", nil, nil).Code)
}

// ─────────────────────────────────────────────
// Error mapping
// ─────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{store.ErrForbidden, http.StatusForbidden},
		{store.ErrRowNotFound, http.StatusNotFound},
		{store.ErrAlreadyExists, http.StatusConflict},
		{service.ErrProfileUnavailable, http.StatusConflict},
		{service.ErrJournalNotPublished, http.StatusInternalServerError},
		{errors.New("anything"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFromError(tt.err), tt.err.Error())
	}
}
