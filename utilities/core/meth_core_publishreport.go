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

package core

import (
	"fmt"
	"log"

	"github.com/BrunoReboul/fsmigrate/utilities/gfs"
	"github.com/BrunoReboul/fsmigrate/utilities/gps"
	"github.com/BrunoReboul/fsmigrate/utilities/logging"
	"github.com/BrunoReboul/fsmigrate/utilities/report"
)

// PublishReport records the run report in Firestore and publishes it to Pub/Sub, when configured
// Failing to report does not change the outcome of the run, it is logged as a warning
func (core *Core) PublishReport(runReport report.Report) {
	hosting := core.SolutionSettings.Hosting
	if hosting.FireStore.CollectionIDs.Runs != "" && core.Services.Store != nil {
		err := gfs.RecordReport(core.Ctx, core.Services.Store, hosting.FireStore.CollectionIDs.Runs, runReport)
		if err != nil {
			log.Println(logging.Entry{
				RunID:       core.RunID,
				Command:     core.Command,
				Environment: core.EnvironmentName,
				Severity:    "WARNING",
				Message:     "run report not recorded",
				Description: fmt.Sprintf("%v", err),
			})
		}
	}
	if core.Services.Publisher != nil {
		_, err := gps.PublishReport(core.Ctx, core.Services.Publisher, runReport)
		if err != nil {
			log.Println(logging.Entry{
				RunID:       core.RunID,
				Command:     core.Command,
				Environment: core.EnvironmentName,
				Severity:    "WARNING",
				Message:     "run report not published",
				Description: fmt.Sprintf("%v", err),
			})
		}
	}
}
