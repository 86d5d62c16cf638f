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

package gfs

import (
	"context"
	"fmt"
	"log"

	"github.com/BrunoReboul/fsmigrate/utilities/logging"
	"github.com/BrunoReboul/fsmigrate/utilities/report"
)

// RecordReport record a run report as document collectionID/runID
func RecordReport(ctx context.Context, store DocumentStore, collectionID string, runReport report.Report) (err error) {
	documentPath := fmt.Sprintf("%s/%s", collectionID, runReport.RunID)
	err = store.Set(ctx, documentPath, runReport.Map())
	if err != nil {
		return fmt.Errorf("recordReport %v", err)
	}
	log.Println(logging.Entry{
		RunID:       runReport.RunID,
		Command:     runReport.Command,
		Environment: runReport.Environment,
		Severity:    "INFO",
		Message:     fmt.Sprintf("run report recorded %s", documentPath),
	})
	return nil
}
