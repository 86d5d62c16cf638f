// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import "time"

// Status values
const (
	StatusRunning = "running"
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Report the outcome of one run, recorded in Firestore and published to Pub/Sub when configured
type Report struct {
	RunID            string    `json:"runID" firestore:"runID"`
	Command          string    `json:"command" firestore:"command"`
	Environment      string    `json:"environment" firestore:"environment"`
	ProjectID        string    `json:"projectID" firestore:"projectID"`
	Source           string    `json:"source" firestore:"source"`
	DryRun           bool      `json:"dryRun" firestore:"dryRun"`
	// DocumentsWritten counts staged writes. On a failed run it includes the documents of the batch whose commit failed
	DocumentsWritten int64     `json:"documentsWritten" firestore:"documentsWritten"`
	BatchesCommitted int64     `json:"batchesCommitted" firestore:"batchesCommitted"`
	FilesUploaded    int64     `json:"filesUploaded" firestore:"filesUploaded"`
	StartTime        time.Time `json:"startTime" firestore:"startTime"`
	EndTime          time.Time `json:"endTime" firestore:"endTime"`
	DurationSeconds  float64   `json:"durationSeconds" firestore:"durationSeconds"`
	Status           string    `json:"status" firestore:"status"`
	Error            string    `json:"error,omitempty" firestore:"error,omitempty"`
}

// New starts a report
func New(runID, command, environment, projectID, source string, dryRun bool) Report {
	return Report{
		RunID:       runID,
		Command:     command,
		Environment: environment,
		ProjectID:   projectID,
		Source:      source,
		DryRun:      dryRun,
		StartTime:   time.Now(),
		Status:      StatusRunning,
	}
}

// Finish stamps the end time, the duration and the status from the run error
func (r *Report) Finish(err error) {
	r.EndTime = time.Now()
	r.DurationSeconds = r.EndTime.Sub(r.StartTime).Seconds()
	if err != nil {
		r.Status = StatusFailure
		r.Error = err.Error()
		return
	}
	r.Status = StatusSuccess
}

// Map renders the report as Firestore document data
func (r Report) Map() map[string]interface{} {
	m := map[string]interface{}{
		"runID":            r.RunID,
		"command":          r.Command,
		"environment":      r.Environment,
		"projectID":        r.ProjectID,
		"source":           r.Source,
		"dryRun":           r.DryRun,
		"documentsWritten": r.DocumentsWritten,
		"batchesCommitted": r.BatchesCommitted,
		"filesUploaded":    r.FilesUploaded,
		"startTime":        r.StartTime,
		"endTime":          r.EndTime,
		"durationSeconds":  r.DurationSeconds,
		"status":           r.Status,
	}
	if r.Error != "" {
		m["error"] = r.Error
	}
	return m
}
