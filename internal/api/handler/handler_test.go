package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"cartscan/internal/api/handler"
	"cartscan/internal/ingest"
	"cartscan/pkg/domain"
	"cartscan/pkg/gtasks"
	"cartscan/pkg/logger"
	"cartscan/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type fakeIngest struct {
	lastScan ingest.Scan
	result   ingest.Result
	err      error

	recent    []domain.ScanEvent
	recentErr error

	cleared int64
}

func (f *fakeIngest) Ingest(_ context.Context, scan ingest.Scan) (ingest.Result, error) {
	f.lastScan = scan

	return f.result, f.err
}

func (f *fakeIngest) Recent(context.Context) ([]domain.ScanEvent, error) {
	return f.recent, f.recentErr
}

func (f *fakeIngest) ClearRecent(context.Context) (int64, error) {
	return f.cleared, nil
}

type fakeTasks struct {
	lists    []gtasks.TaskList
	listsErr error
	selected string
}

func (f *fakeTasks) Lists(context.Context) ([]gtasks.TaskList, error) {
	return f.lists, f.listsErr
}

func (f *fakeTasks) Select(_ context.Context, listID string) (gtasks.TaskList, error) {
	for _, l := range f.lists {
		if l.ID == listID {
			f.selected = listID

			return l, nil
		}
	}

	return gtasks.TaskList{}, serrors.With(serrors.ErrNotFound, "no task list with id %q", listID)
}

func (f *fakeTasks) Selected() string {
	return f.selected
}

func newServer(t *testing.T, deps handler.Deps) *httptest.Server {
	t.Helper()

	if deps.Sec == nil {
		deps.Sec = handler.NewSecHandler(&handler.SecHandlerOptions{Token: "secret"})
	}

	mux := http.NewServeMux()
	handler.New(deps).Register(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func TestScan_acceptsTokenInBody(t *testing.T) {
	ing := &fakeIngest{result: ingest.Result{
		Event:    domain.ScanEvent{Code: "123", Status: domain.ScanEventPending},
		Enqueued: true,
	}}
	srv := newServer(t, handler.Deps{Ingest: ing, PicnicEnabled: true})

	resp := postJSON(t, srv.URL+"/scan", `{"barcode": " 12-3 ", "token": "secret", "quantity": 2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Equal(t, ingest.Scan{Raw: " 12-3 ", Quantity: 2}, ing.lastScan)
}

func TestScan_acceptsBearerHeader(t *testing.T) {
	ing := &fakeIngest{}
	srv := newServer(t, handler.Deps{Ingest: ing})

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/scan", strings.NewReader(`{"code": "456"}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer secret")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "456", ing.lastScan.Raw)
}

func TestScan_rejectsBadToken(t *testing.T) {
	ing := &fakeIngest{}
	srv := newServer(t, handler.Deps{Ingest: ing})

	resp := postJSON(t, srv.URL+"/scan", `{"barcode": "123", "token": "wrong"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Empty(t, ing.lastScan.Raw)
}

func TestScan_missingToken(t *testing.T) {
	srv := newServer(t, handler.Deps{Ingest: &fakeIngest{}})

	resp := postJSON(t, srv.URL+"/scan", `{"barcode": "123"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestScan_badRequestFromService(t *testing.T) {
	ing := &fakeIngest{err: serrors.With(serrors.ErrBadRequest, "scanned code carries no digits")}
	srv := newServer(t, handler.Deps{Ingest: ing})

	resp := postJSON(t, srv.URL+"/scan", `{"barcode": "abc", "token": "secret"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScan_invalidJSON(t *testing.T) {
	srv := newServer(t, handler.Deps{Ingest: &fakeIngest{}})

	resp := postJSON(t, srv.URL+"/scan", `{not json`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScan_duplicateMessage(t *testing.T) {
	ing := &fakeIngest{result: ingest.Result{
		Event:     domain.ScanEvent{Code: "123", Status: domain.ScanEventDuplicate},
		Duplicate: true,
	}}
	srv := newServer(t, handler.Deps{Ingest: ing, PicnicEnabled: true})

	resp := postJSON(t, srv.URL+"/scan", `{"barcode": "123", "token": "secret"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		OK            bool   `json:"ok"`
		Message       string `json:"message"`
		PicnicOK      bool   `json:"picnic_ok"`
		PicnicEnabled bool   `json:"picnic_enabled"`
	}
	require.NoError(t, jsonDecode(resp, &body))
	require.True(t, body.OK)
	require.Equal(t, "duplicate scan ignored", body.Message)
	require.False(t, body.PicnicOK)
	require.True(t, body.PicnicEnabled)
}

func TestScan_duplicateReportsPendingSync(t *testing.T) {
	ing := &fakeIngest{result: ingest.Result{
		Event:        domain.ScanEvent{Code: "123", Status: domain.ScanEventDuplicate},
		Duplicate:    true,
		PendingSyncs: 2,
	}}
	srv := newServer(t, handler.Deps{Ingest: ing, PicnicEnabled: true})

	resp := postJSON(t, srv.URL+"/scan", `{"barcode": "123", "token": "secret"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		PicnicMessage string `json:"picnic_message"`
	}
	require.NoError(t, jsonDecode(resp, &body))
	require.Equal(t, "cart sync already pending for this code", body.PicnicMessage)
}

func TestScannerStatus_flipsAfterScan(t *testing.T) {
	ing := &fakeIngest{result: ingest.Result{Event: domain.ScanEvent{Code: "1"}}}
	srv := newServer(t, handler.Deps{Ingest: ing})

	var status struct {
		Connected bool `json:"connected"`
		Supported bool `json:"supported"`
	}

	resp, err := http.Get(srv.URL + "/scanner-status")
	require.NoError(t, err)
	require.NoError(t, jsonDecode(resp, &status))
	require.False(t, status.Connected)
	require.True(t, status.Supported)

	postJSON(t, srv.URL+"/scan", `{"barcode": "1", "token": "secret"}`)

	resp, err = http.Get(srv.URL + "/scanner-status")
	require.NoError(t, err)
	require.NoError(t, jsonDecode(resp, &status))
	require.True(t, status.Connected)
}

func TestRecent(t *testing.T) {
	ing := &fakeIngest{recent: []domain.ScanEvent{{Code: "1"}, {Code: "2"}}}
	srv := newServer(t, handler.Deps{Ingest: ing})

	resp, err := http.Get(srv.URL + "/recent")
	require.NoError(t, err)

	// the response is the bare list, no envelope
	var body []domain.ScanEvent
	require.NoError(t, jsonDecode(resp, &body))
	require.Len(t, body, 2)
	require.Equal(t, "1", body[0].Code)
}

func TestRecent_emptyIsNotNull(t *testing.T) {
	srv := newServer(t, handler.Deps{Ingest: &fakeIngest{}})

	resp, err := http.Get(srv.URL + "/recent")
	require.NoError(t, err)

	var body []domain.ScanEvent
	require.NoError(t, jsonDecode(resp, &body))
	require.NotNil(t, body)
	require.Empty(t, body)
}

func TestClearRecent(t *testing.T) {
	ing := &fakeIngest{cleared: 7}
	srv := newServer(t, handler.Deps{Ingest: ing})

	resp := postJSON(t, srv.URL+"/recent/clear", "")

	var body struct {
		OK      bool  `json:"ok"`
		Cleared int64 `json:"cleared"`
	}
	require.NoError(t, jsonDecode(resp, &body))
	require.True(t, body.OK)
	require.EqualValues(t, 7, body.Cleared)
}

func TestTasklists(t *testing.T) {
	tasks := &fakeTasks{
		lists:    []gtasks.TaskList{{ID: "a", Title: "Groceries"}},
		selected: "a",
	}
	srv := newServer(t, handler.Deps{Ingest: &fakeIngest{}, Tasks: tasks})

	resp, err := http.Get(srv.URL + "/tasklists")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Items    []gtasks.TaskList `json:"items"`
		Selected string            `json:"selected"`
	}
	require.NoError(t, jsonDecode(resp, &body))
	require.Equal(t, tasks.lists, body.Items)
	require.Equal(t, "a", body.Selected)
}

func TestTasklists_notConfigured(t *testing.T) {
	srv := newServer(t, handler.Deps{Ingest: &fakeIngest{}})

	resp, err := http.Get(srv.URL + "/tasklists")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSelectTasklist(t *testing.T) {
	tasks := &fakeTasks{lists: []gtasks.TaskList{{ID: "list-9", Title: "Weekend"}}}
	srv := newServer(t, handler.Deps{Ingest: &fakeIngest{}, Tasks: tasks})

	resp := postJSON(t, srv.URL+"/tasklists/select", `{"tasklist_id": "list-9"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "list-9", tasks.selected)

	var body struct {
		OK    bool   `json:"ok"`
		Title string `json:"title"`
	}
	require.NoError(t, jsonDecode(resp, &body))
	require.True(t, body.OK)
	require.Equal(t, "Weekend", body.Title)
}

func TestSelectTasklist_unknownID(t *testing.T) {
	tasks := &fakeTasks{lists: []gtasks.TaskList{{ID: "list-9", Title: "Weekend"}}}
	srv := newServer(t, handler.Deps{Ingest: &fakeIngest{}, Tasks: tasks})

	resp := postJSON(t, srv.URL+"/tasklists/select", `{"tasklist_id": "nope"}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Empty(t, tasks.selected)
}

func TestSelectTasklist_requiresID(t *testing.T) {
	srv := newServer(t, handler.Deps{Ingest: &fakeIngest{}, Tasks: &fakeTasks{}})

	resp := postJSON(t, srv.URL+"/tasklists/select", `{}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	srv := newServer(t, handler.Deps{Ingest: &fakeIngest{}})

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDeviceToken(t *testing.T) {
	sec := handler.NewSecHandler(&handler.SecHandlerOptions{
		Token:             "secret",
		DeviceTokenSecret: "device-secret",
	})
	ing := &fakeIngest{}
	srv := newServer(t, handler.Deps{Ingest: ing, Sec: sec})

	token := signedDeviceToken(t, "device-secret")
	resp := postJSON(t, srv.URL+"/scan", `{"barcode": "789", "token": "`+token+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "789", ing.lastScan.Raw)

	bad := signedDeviceToken(t, "other-secret")
	resp = postJSON(t, srv.URL+"/scan", `{"barcode": "789", "token": "`+bad+`"}`)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func jsonDecode(resp *http.Response, v any) error {
	defer func() { _ = resp.Body.Close() }()

	return json.NewDecoder(resp.Body).Decode(v)
}

func signedDeviceToken(t *testing.T, secret string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "scanner-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}
