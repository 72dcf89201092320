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

// Feedback is one stored feedback record. Field order matches the order
// used on the wire and in the feedback file.
type Feedback struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Rating    int    `json:"rating"`
	Message   string `json:"message"`
	RecipeID  *int   `json:"recipe_id"`
	Timestamp string `json:"timestamp"`
}

// Submission is a validated feedback request. It has no timestamp: the
// store always stamps records itself.
type Submission struct {
	Name     string
	Email    string
	Rating   int
	Message  string
	RecipeID *int
}

// Stats summarises the stored feedback.
type Stats struct {
	TotalFeedback int     `json:"total_feedback"`
	AverageRating float64 `json:"average_rating"`
}

// Ack is the response to a feedback submission.
type Ack struct {
	Message string `json:"message"`
}

// SubmittedMessage is returned for every accepted submission.
const SubmittedMessage = "Feedback submitted successfully"
