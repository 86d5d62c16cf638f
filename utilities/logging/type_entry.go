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

package logging

import (
	"encoding/json"
	"log"
	"time"
)

// Entry defines a Google Cloud logging structured entry
// https://cloud.google.com/logging/docs/agent/configuration#special-fields
type Entry struct {
	RunID            string     `json:"run_id,omitempty"`
	Command          string     `json:"command,omitempty"`
	Environment      string     `json:"environment,omitempty"`
	Severity         string     `json:"severity,omitempty"`
	Message          string     `json:"message"`
	Description      string     `json:"description,omitempty"`
	Now              *time.Time `json:"now,omitempty"`
	CollectionPath   string     `json:"collection_path,omitempty"`
	ObjectName       string     `json:"object_name,omitempty"`
	DocumentsWritten int64      `json:"documents_written,omitempty"`
	BatchesCommitted int64      `json:"batches_committed,omitempty"`
	FilesUploaded    int64      `json:"files_uploaded,omitempty"`
	FilesTotal       int64      `json:"files_total,omitempty"`
	DurationSeconds  float64    `json:"duration_seconds,omitempty"`
}

// String renders an entry structure to the JSON format expected by Cloud Logging.
// Now is stamped with the rendering time when not set
func (e Entry) String() string {
	if e.Severity == "" {
		e.Severity = "INFO"
	}
	if e.Now == nil {
		now := time.Now()
		e.Now = &now
	}
	out, err := json.Marshal(e)
	if err != nil {
		log.Printf("json.Marshal: %v", err)
	}
	return string(out)
}
