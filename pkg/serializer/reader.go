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

package serializer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Reader deserializes JSON or YAML from an io.Reader.
type Reader struct {
	format Format
	input  io.Reader
	strict bool
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithStrictFields makes decoding fail on fields the target type does not declare.
func WithStrictFields() ReaderOption {
	return func(r *Reader) {
		r.strict = true
	}
}

// NewReader creates a Reader for the given format.
func NewReader(format Format, input io.Reader, opts ...ReaderOption) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if input == nil {
		return nil, fmt.Errorf("input source is nil")
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Deserialize decodes the input into v, which must be a pointer.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}

	switch r.format {
	case FormatJSON:
		decoder := json.NewDecoder(r.input)
		if r.strict {
			decoder.DisallowUnknownFields()
		}
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil

	case FormatYAML:
		decoder := yaml.NewDecoder(r.input)
		decoder.KnownFields(r.strict)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// FromBytes decodes data in the given format into a new T.
func FromBytes[T any](format Format, data []byte, opts ...ReaderOption) (*T, error) {
	r, err := NewReader(format, bytes.NewReader(data), opts...)
	if err != nil {
		return nil, err
	}

	var v T
	if err := r.Deserialize(&v); err != nil {
		return nil, err
	}
	return &v, nil
}
