package handlers

import (
	"compress/gzip"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGzip(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())
}

func newLogsFixture(t *testing.T) *AdminLogsHandler {
	t.Helper()
	dir := t.TempDir()

	writeGzip(t, filepath.Join(dir, "app-2025-03-01T10-00-00.000.log.gz"),
		`{"level":"INFO","message":"Vendor registered"}`+"\n"+
			`{"level":"ERROR","message":"Create vendor failed"}`+"\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.log"), []byte(
		`{"level":"WARN","message":"Login failed"}`+"\n"+
			"console line, not json\n"+
			`{"level":"INFO","message":"HTTP request"}`+"\n"), 0o644))

	h := NewAdminLogsHandler(dir)
	h.now = func() time.Time { return time.Date(2025, 3, 1, 18, 0, 0, 0, time.Local) }
	return h
}

func getLogs(t *testing.T, h *AdminLogsHandler, query string) (int, logsResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.GetLogs(rec, httptest.NewRequest(http.MethodGet, "/admin/logs?"+query, nil))

	var resp logsResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	}
	return rec.Code, resp
}

func TestAdminLogs_AllForToday(t *testing.T) {
	h := newLogsFixture(t)

	code, resp := getLogs(t, h, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "2025-03-01", resp.Day)
	assert.Len(t, resp.Items, 4)
	assert.Contains(t, string(resp.Items[0]), "Vendor registered", "rotated files go first")
}

func TestAdminLogs_Filters(t *testing.T) {
	h := newLogsFixture(t)

	_, resp := getLogs(t, h, "level=error,warn")
	require.Len(t, resp.Items, 2)

	_, resp = getLogs(t, h, "q=http")
	require.Len(t, resp.Items, 1)
	assert.True(t, strings.Contains(string(resp.Items[0]), "HTTP request"))
}

func TestAdminLogs_Pagination(t *testing.T) {
	h := newLogsFixture(t)

	_, first := getLogs(t, h, "limit=2")
	require.Len(t, first.Items, 2)
	assert.Equal(t, 2, first.NextCursor)

	_, second := getLogs(t, h, "limit=2&cursor=2")
	require.Len(t, second.Items, 2)
	assert.Contains(t, string(second.Items[1]), "HTTP request")
}

func TestAdminLogs_BadOrMissingDay(t *testing.T) {
	h := newLogsFixture(t)

	code, _ := getLogs(t, h, "day=yesterday")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = getLogs(t, h, "day=2024-01-01")
	assert.Equal(t, http.StatusNotFound, code)
}
