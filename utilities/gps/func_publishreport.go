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

package gps

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/BrunoReboul/fsmigrate/utilities/logging"
	"github.com/BrunoReboul/fsmigrate/utilities/report"
)

// PublishReport publish a run report as a JSON message
func PublishReport(ctx context.Context, publisher Publisher, runReport report.Report) (id string, err error) {
	data, err := json.Marshal(runReport)
	if err != nil {
		return "", fmt.Errorf("json.Marshal(runReport) %v", err)
	}
	id, err = publisher.Publish(ctx, data, map[string]string{
		"runID":   runReport.RunID,
		"command": runReport.Command,
		"status":  runReport.Status,
	})
	if err != nil {
		return "", err
	}
	log.Println(logging.Entry{
		RunID:       runReport.RunID,
		Command:     runReport.Command,
		Environment: runReport.Environment,
		Severity:    "INFO",
		Message:     fmt.Sprintf("run report published id %s", id),
	})
	return id, nil
}
