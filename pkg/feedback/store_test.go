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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fferrors "github.com/flavorfinds/flavorfinds/pkg/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), FileName))
}

func intPtr(v int) *int { return &v }

func TestStore_EmptyWhenMissing(t *testing.T) {
	s := newTestStore(t)

	records, err := s.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)

	stats, err := s.Stats(t.Context())
	require.NoError(t, err)
	assert.Equal(t, Stats{TotalFeedback: 0, AverageRating: 0}, stats)
}

func TestStore_SubmitScenario(t *testing.T) {
	s := newTestStore(t)
	ctx := t.Context()

	before, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, before)

	start := time.Now().UTC()
	fb, err := s.Submit(ctx, Submission{Name: "Al", Email: "a@x.com", Rating: 5, Message: "great", RecipeID: intPtr(8)})
	require.NoError(t, err)

	after, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{TotalFeedback: 1, AverageRating: 5.0}, after)

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, fb, records[0])
	assert.Equal(t, "Al", records[0].Name)
	assert.Equal(t, "a@x.com", records[0].Email)
	assert.Equal(t, 5, records[0].Rating)
	assert.Equal(t, "great", records[0].Message)
	require.NotNil(t, records[0].RecipeID)
	assert.Equal(t, 8, *records[0].RecipeID)

	ts, err := time.Parse(time.RFC3339Nano, records[0].Timestamp)
	require.NoError(t, err)
	assert.False(t, ts.Before(start), "timestamp %s before call time %s", ts, start)
}

func TestStore_FileFormat(t *testing.T) {
	s := newTestStore(t)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }

	_, err := s.Submit(t.Context(), Submission{Name: "Al", Email: "a@x.com", Rating: 4, Message: "nice"})
	require.NoError(t, err)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	want := `[
  {
    "name": "Al",
    "email": "a@x.com",
    "rating": 4,
    "message": "nice",
    "recipe_id": null,
    "timestamp": "2024-05-01T10:00:00Z"
  }
]`
	assert.Equal(t, want, string(data))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, filePerm, info.Mode().Perm())
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	s := NewStore(path)
	ctx := t.Context()

	const n = 5
	for i := 1; i <= n; i++ {
		var rid *int
		if i%2 == 0 {
			rid = intPtr(i)
		}
		_, err := s.Submit(ctx, Submission{
			Name:     fmt.Sprintf("user-%d", i),
			Email:    fmt.Sprintf("u%d@example.com", i),
			Rating:   i,
			Message:  "message with \"quotes\" and ünïcode",
			RecipeID: rid,
		})
		require.NoError(t, err)
	}

	written, err := s.List(ctx)
	require.NoError(t, err)

	reloaded, err := NewStore(path).List(ctx)
	require.NoError(t, err)
	require.Len(t, reloaded, n)
	assert.Equal(t, written, reloaded)

	stats, err := NewStore(path).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, stats.TotalFeedback)
	assert.Equal(t, 3.0, stats.AverageRating)
}

func TestStore_CorruptFileTreatedAsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{{{"},
		{"object instead of array", `{"name":"x"}`},
		{"record missing rating", `[{"name":"a","email":"b","message":"c","timestamp":"t"}]`},
		{"record missing timestamp", `[{"name":"a","email":"b","rating":1,"message":"c"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			require.NoError(t, os.WriteFile(s.Path(), []byte(tt.content), 0o644))

			records, err := s.List(t.Context())
			require.NoError(t, err)
			assert.Empty(t, records)

			_, err = readFile(s.Path())
			assert.True(t, fferrors.Is(err, fferrors.ErrCodeStorageRead))

			// The next submission replaces the unreadable content.
			_, err = s.Submit(t.Context(), Submission{Name: "n", Email: "e", Rating: 2, Message: "m"})
			require.NoError(t, err)
			records, err = s.List(t.Context())
			require.NoError(t, err)
			assert.Len(t, records, 1)
		})
	}
}

func TestStore_WriteFailure(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing-dir", FileName))

	fb, err := s.Submit(t.Context(), Submission{Name: "Al", Email: "a@x.com", Rating: 5, Message: "great"})
	require.Error(t, err)
	assert.True(t, fferrors.Is(err, fferrors.ErrCodeStorageWrite))
	assert.Equal(t, "Al", fb.Name)
	assert.NotEmpty(t, fb.Timestamp)

	records, err := s.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_CanceledContext(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := s.Submit(ctx, Submission{Name: "Al", Email: "a@x.com", Rating: 5, Message: "great"})
	require.Error(t, err)
	assert.Equal(t, fferrors.ErrCodeUnavailable, fferrors.CodeOf(err))

	_, err = s.List(ctx)
	require.Error(t, err)

	_, err = s.Stats(ctx)
	require.Error(t, err)

	_, statErr := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(statErr), "canceled submit must not create the file")
}

func TestStore_ConcurrentSubmitsAreNotLost(t *testing.T) {
	s := newTestStore(t)
	ctx := t.Context()

	const writers = 25
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Submit(ctx, Submission{Name: fmt.Sprintf("w%d", i), Email: "e", Rating: 1 + i%5, Message: "m"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, writers)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(records), stats.TotalFeedback)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(s.Path()), ".*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    Stats
	}{
		{"empty", nil, Stats{}},
		{"single", []int{5}, Stats{TotalFeedback: 1, AverageRating: 5}},
		{"rounds down", []int{4, 4, 5}, Stats{TotalFeedback: 3, AverageRating: 4.3}},
		{"rounds up", []int{5, 5, 4}, Stats{TotalFeedback: 3, AverageRating: 4.7}},
		{"whole", []int{1, 3}, Stats{TotalFeedback: 2, AverageRating: 2}},
		{"quarter ties to even", []int{4, 4, 4, 5}, Stats{TotalFeedback: 4, AverageRating: 4.2}},
		{"quarter ties to even low", []int{3, 3, 3, 4}, Stats{TotalFeedback: 4, AverageRating: 3.2}},
		{"quarter ties to even lowest", []int{1, 1, 1, 2}, Stats{TotalFeedback: 4, AverageRating: 1.2}},
		{"three quarters ties to even", []int{4, 5, 5, 5}, Stats{TotalFeedback: 4, AverageRating: 4.8}},
		{"inexact half rounds by binary value", append(repeat(4, 13), repeat(5, 7)...), Stats{TotalFeedback: 20, AverageRating: 4.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]Feedback, 0, len(tt.ratings))
			for _, r := range tt.ratings {
				records = append(records, Feedback{Rating: r})
			}
			assert.Equal(t, tt.want, computeStats(records))
		})
	}
}

func repeat(rating, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = rating
	}
	return out
}
