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

// Package feedback stores and serves user feedback.
//
// Feedback is kept in a single JSON array file (feedback.json in the data
// directory), indented with two spaces. Every request reads the whole file
// and a submission rewrites it. Submissions are serialised by a mutex and
// the file is replaced atomically, so concurrent writers cannot overwrite
// each other's records.
//
// Storage failures never reach the client: an unreadable or corrupt file
// is logged and read as empty, and a failed write is logged while the
// submission is still acknowledged. Both are counted in
// flavorfinds_feedback_storage_errors_total.
//
// Handler exposes the store as:
//
//	POST /api/feedback        submit, returns {"message": "Feedback submitted successfully"}
//	GET  /api/feedback        every record in file order
//	GET  /api/feedback/stats  {"total_feedback": n, "average_rating": x.y}
package feedback
