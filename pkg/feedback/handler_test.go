// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package feedback

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flavorfinds/flavorfinds/pkg/server"
)

func newTestHandler(t *testing.T, path string) http.Handler {
	t.Helper()
	h := NewHandler(NewStore(path))
	mux := http.NewServeMux()
	mux.HandleFunc("/api/feedback", h.Feedback)
	mux.HandleFunc("/api/feedback/stats", h.Stats)
	return mux
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandler_SubmitAndStats(t *testing.T) {
	h := newTestHandler(t, filepath.Join(t.TempDir(), FileName))

	w := do(t, h, http.MethodGet, "/api/feedback/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_feedback":0,"average_rating":0}`, w.Body.String())

	w = do(t, h, http.MethodPost, "/api/feedback",
		`{"name":"Al","email":"a@x.com","rating":5,"message":"great","recipe_id":8,"timestamp":"2000-01-01T00:00:00"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Feedback submitted successfully"}`, w.Body.String())

	w = do(t, h, http.MethodGet, "/api/feedback/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_feedback":1,"average_rating":5.0}`, w.Body.String())

	w = do(t, h, http.MethodGet, "/api/feedback", "")
	require.Equal(t, http.StatusOK, w.Code)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Al", records[0]["name"])
	assert.Equal(t, float64(8), records[0]["recipe_id"])
	assert.NotEqual(t, "2000-01-01T00:00:00", records[0]["timestamp"])
}

func TestHandler_CoercedRatingsAndTiedAverage(t *testing.T) {
	h := newTestHandler(t, filepath.Join(t.TempDir(), FileName))

	for _, rating := range []string{`4`, `4.0`, `"4"`, `5`} {
		w := do(t, h, http.MethodPost, "/api/feedback",
			`{"name":"Al","email":"a@x.com","rating":`+rating+`,"message":"m","recipe_id":"3"}`)
		require.Equal(t, http.StatusOK, w.Code, "rating %s", rating)
	}

	w := do(t, h, http.MethodGet, "/api/feedback/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_feedback":4,"average_rating":4.2}`, w.Body.String())
}

func TestHandler_ListEmptyIsArray(t *testing.T) {
	h := newTestHandler(t, filepath.Join(t.TempDir(), FileName))

	w := do(t, h, http.MethodGet, "/api/feedback", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_ValidationError(t *testing.T) {
	h := newTestHandler(t, filepath.Join(t.TempDir(), FileName))

	w := do(t, h, http.MethodPost, "/api/feedback", `{"name":"Al","email":"a@x.com","message":"great"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_FAILED", resp.Code)

	errs, ok := resp.Details["errors"].([]any)
	require.True(t, ok, "details: %v", resp.Details)
	require.Len(t, errs, 1)
	assert.Equal(t, map[string]any{"field": "rating", "problem": problemRequired}, errs[0])

	w = do(t, h, http.MethodGet, "/api/feedback/stats", "")
	assert.JSONEq(t, `{"total_feedback":0,"average_rating":0}`, w.Body.String())
}

func TestHandler_BodyTooLarge(t *testing.T) {
	h := newTestHandler(t, filepath.Join(t.TempDir(), FileName))

	body := `{"name":"Al","email":"a@x.com","rating":5,"message":"` + strings.Repeat("x", 70<<10) + `"}`
	w := do(t, h, http.MethodPost, "/api/feedback", body)
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHandler_WriteFailureStillAcknowledged(t *testing.T) {
	h := newTestHandler(t, filepath.Join(t.TempDir(), "missing-dir", FileName))

	w := do(t, h, http.MethodPost, "/api/feedback", `{"name":"Al","email":"a@x.com","rating":5,"message":"great"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Feedback submitted successfully"}`, w.Body.String())

	w = do(t, h, http.MethodGet, "/api/feedback/stats", "")
	assert.JSONEq(t, `{"total_feedback":0,"average_rating":0}`, w.Body.String())
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t, filepath.Join(t.TempDir(), FileName))

	tests := []struct {
		method string
		path   string
		allow  string
	}{
		{http.MethodDelete, "/api/feedback", "GET, POST"},
		{http.MethodPut, "/api/feedback", "GET, POST"},
		{http.MethodPost, "/api/feedback/stats", "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := do(t, h, tt.method, tt.path, "")
			require.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.Equal(t, tt.allow, w.Header().Get("Allow"))
		})
	}
}
