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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opRead  = "read"
	opWrite = "write"
)

var (
	submissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "flavorfinds_feedback_submissions_total",
			Help: "Total number of feedback records persisted",
		},
	)

	validationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "flavorfinds_feedback_validation_failures_total",
			Help: "Total number of feedback submissions rejected by validation",
		},
	)

	// Storage errors are swallowed for clients, so this is the only signal.
	storageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flavorfinds_feedback_storage_errors_total",
			Help: "Total number of feedback file read or write failures",
		},
		[]string{"op"},
	)
)
