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
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	fferrors "github.com/flavorfinds/flavorfinds/pkg/errors"
	"github.com/flavorfinds/flavorfinds/pkg/serializer"
)

// FileName is the name of the feedback file inside the data directory.
const FileName = "feedback.json"

// filePerm is the permission of the feedback file.
const filePerm os.FileMode = 0o644

// Store persists feedback as a single JSON array file. Every operation
// reads the whole file; Submit rewrites it. The read-append-write cycle
// runs under a mutex and the file is replaced by rename, so concurrent
// submissions are never lost.
type Store struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewStore returns a Store backed by the file at path. The file does not
// need to exist.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		now:  time.Now,
	}
}

// Path returns the feedback file path.
func (s *Store) Path() string {
	return s.path
}

// Submit stamps sub with the current time and appends it to the file.
// The returned record is the one that was (or would have been) stored. A
// STORAGE_WRITE error means the record was not persisted.
func (s *Store) Submit(ctx context.Context, sub Submission) (Feedback, error) {
	if err := ctx.Err(); err != nil {
		return Feedback{}, canceled(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return Feedback{}, canceled(err)
	}

	records := s.load()
	fb := Feedback{
		Name:      sub.Name,
		Email:     sub.Email,
		Rating:    sub.Rating,
		Message:   sub.Message,
		RecipeID:  sub.RecipeID,
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
	}
	records = append(records, fb)

	if err := serializer.WriteJSONFile(s.path, records, filePerm); err != nil {
		storageErrors.WithLabelValues(opWrite).Inc()
		slog.Error("failed to save feedback", "path", s.path, "error", err)
		return fb, fferrors.WrapWithContext(fferrors.ErrCodeStorageWrite,
			"failed to save feedback", err, map[string]any{"path": s.path})
	}

	submissionsTotal.Inc()
	slog.Debug("feedback saved", "path", s.path, "total", len(records))
	return fb, nil
}

// List returns every stored record in file order.
func (s *Store) List(ctx context.Context) ([]Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, canceled(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(), nil
}

// Stats returns the record count and the average rating rounded to one
// decimal. The average of an empty store is 0.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	records, err := s.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return computeStats(records), nil
}

func computeStats(records []Feedback) Stats {
	if len(records) == 0 {
		return Stats{}
	}
	sum := 0
	for _, r := range records {
		sum += r.Rating
	}
	return Stats{
		TotalFeedback: len(records),
		AverageRating: roundTenths(float64(sum) / float64(len(records))),
	}
}

// roundTenths rounds the exact binary value of v to one decimal place, with
// exact halves going to the even digit (4.25 -> 4.2, 4.35 -> 4.3).
func roundTenths(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// load reads the feedback file. A missing file is an empty store. A file
// that cannot be read, is not a JSON array, or holds any invalid record is
// logged and also treated as empty. Callers must hold s.mu.
func (s *Store) load() []Feedback {
	records, err := readFile(s.path)
	if err != nil {
		storageErrors.WithLabelValues(opRead).Inc()
		slog.Error("failed to load feedback, treating store as empty", "path", s.path, "error", err)
		return []Feedback{}
	}
	return records
}

func readFile(path string) ([]Feedback, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []Feedback{}, nil
	}
	if err != nil {
		return nil, fferrors.WrapWithContext(fferrors.ErrCodeStorageRead,
			"failed to read feedback file", err, map[string]any{"path": path})
	}

	raw, err := serializer.FromBytes[[]json.RawMessage](serializer.FormatJSON, data)
	if err != nil {
		return nil, fferrors.WrapWithContext(fferrors.ErrCodeStorageRead,
			"failed to parse feedback file", err, map[string]any{"path": path})
	}

	records := make([]Feedback, 0, len(*raw))
	for i, item := range *raw {
		fb, verr := validateRecord(item)
		if verr != nil {
			return nil, fferrors.WrapWithContext(fferrors.ErrCodeStorageRead,
				"invalid feedback record", verr, map[string]any{"path": path, "index": i})
		}
		records = append(records, fb)
	}
	return records, nil
}

func canceled(err error) error {
	return fferrors.Wrap(fferrors.ErrCodeUnavailable, "request canceled", err)
}
