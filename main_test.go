package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InMan-Labs/inman-website/internal/config"
	"github.com/InMan-Labs/inman-website/internal/contact"
	"github.com/InMan-Labs/inman-website/internal/handlers"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Contact: config.ContactConfig{
			Recipient:   "sales@inferman.dev",
			DedupWindow: time.Minute,
		},
	}

	svc, err := newContactService(cfg, contact.NewMemoryDedupStore(), log)
	require.NoError(t, err)

	limiter := handlers.NewRateLimiter(60, 2)
	t.Cleanup(limiter.Stop)

	router, err := newRouter(handlers.New(svc, log), limiter)
	require.NoError(t, err)
	return router
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method      string
		path        string
		wantStatus  int
		wantContent string
	}{
		{http.MethodGet, "/", http.StatusOK, "text/html"},
		{http.MethodGet, "/product", http.StatusOK, "text/html"},
		{http.MethodGet, "/demo", http.StatusOK, "text/html"},
		{http.MethodGet, "/api/roi?incidents=500", http.StatusOK, "application/json"},
		{http.MethodGet, "/health", http.StatusOK, "application/json"},
		{http.MethodGet, "/metrics", http.StatusOK, "text/plain"},
		{http.MethodGet, "/static/styles.css", http.StatusOK, "text/css"},
		{http.MethodGet, "/static/js/roi-calculator.js", http.StatusOK, "javascript"},
		{http.MethodGet, "/does-not-exist", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantContent != "" {
				assert.Contains(t, rec.Header().Get("Content-Type"), tt.wantContent)
			}
		})
	}
}

func TestRouter_FormPostsAreRateLimited(t *testing.T) {
	router := newTestRouter(t)
	form := url.Values{"name": {"Jane"}, "email": {"jane@acme.com"}, "company": {"Acme"}}

	var codes []int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/demo", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.RemoteAddr = "198.51.100.4:40000"

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusSeeOther, http.StatusSeeOther, http.StatusTooManyRequests}, codes)
}

func TestEstimateCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"estimate", "--incidents", "1000", "--mttr", "10", "--cost", "60"})

	require.NoError(t, cmd.Execute())

	got := out.String()
	assert.Contains(t, got, "Incidents per month: 1,000")
	assert.Contains(t, got, "Time saved:          60.0K hours/year (60,000)")
	assert.Contains(t, got, "Cost saved:          $4M/year ($3,600,000)")
}

func TestEstimateCommand_ClampsAndPrintsJSON(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"estimate", "--incidents", "9999", "--json"})

	require.NoError(t, cmd.Execute())

	var got struct {
		Inputs struct {
			Incidents float64 `json:"incidents_per_month"`
		} `json:"inputs"`
		TimeSaved string `json:"time_saved_display"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 2000.0, got.Inputs.Incidents)
	assert.Equal(t, "96.0K", got.TimeSaved)
}

func TestEstimateCommand_RejectsArgs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"estimate", "extra"})

	assert.Error(t, cmd.Execute())
}
