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

package importtree

import (
	"fmt"
	"log"
	"time"

	"github.com/BrunoReboul/fsmigrate/utilities/backup"
	"github.com/BrunoReboul/fsmigrate/utilities/core"
	"github.com/BrunoReboul/fsmigrate/utilities/erm"
	"github.com/BrunoReboul/fsmigrate/utilities/logging"
	"github.com/BrunoReboul/fsmigrate/utilities/report"
	"github.com/BrunoReboul/fsmigrate/utilities/validater"
)

// Global structure for the objects prepared once by Initialize and used by EntryPoint
type Global struct {
	core           *core.Core
	importer       *Importer
	backupFilePath string
	tree           backup.Tree
}

// Initialize validates settings, reads the backup tree, then opens the Firestore client
// Any error is a setup failure, nothing has been written
func Initialize(runCore *core.Core, global *Global) (err error) {
	global.core = runCore
	importSettings := runCore.SolutionSettings.Import
	err = validater.ValidateStruct(importSettings, "import")
	if err != nil {
		return err
	}
	global.backupFilePath = importSettings.BackupFilePath
	global.tree, err = backup.ReadTree(global.backupFilePath)
	if err != nil {
		return fmt.Errorf("ReadTree %v", err)
	}
	log.Println(logging.Entry{
		RunID:       runCore.RunID,
		Command:     runCore.Command,
		Environment: runCore.EnvironmentName,
		Message:     fmt.Sprintf("read %d root collections from %s", len(global.tree), global.backupFilePath),
	})
	err = runCore.Initialize(core.Needs{Firestore: true})
	if err != nil {
		return err
	}
	global.importer = NewImporter(runCore.Services.Store,
		int(importSettings.BatchSize),
		int(importSettings.MaxDepth),
		importSettings.SubcollectionsKeyName,
		logging.Entry{
			RunID:       runCore.RunID,
			Command:     runCore.Command,
			Environment: runCore.EnvironmentName,
		})
	return nil
}

// EntryPoint imports every root collection in file order and returns the run report
func EntryPoint(global *Global) (runReport report.Report, err error) {
	c := global.core
	runReport = c.NewReport(global.backupFilePath)
	if len(global.tree) == 0 {
		log.Println(logging.Entry{
			RunID:       c.RunID,
			Command:     c.Command,
			Environment: c.EnvironmentName,
			Severity:    "NOTICE",
			Message:     "no data to import",
		})
		runReport.Finish(nil)
		return runReport, nil
	}
	log.Println(logging.Entry{
		RunID:       c.RunID,
		Command:     c.Command,
		Environment: c.EnvironmentName,
		Severity:    "NOTICE",
		Message:     fmt.Sprintf("start importing %d root collections", len(global.tree)),
	})

	start := time.Now()
	var tally Tally
	for _, rootCollection := range global.tree {
		tally, err = global.importer.ImportCollection(c.Ctx, tally, rootCollection.ID, rootCollection.Documents, 0)
		if err != nil {
			break
		}
	}
	runReport.DocumentsWritten = tally.DocumentsWritten
	runReport.BatchesCommitted = tally.BatchesCommitted
	runReport.Finish(err)

	entry := logging.Entry{
		RunID:            c.RunID,
		Command:          c.Command,
		Environment:      c.EnvironmentName,
		DocumentsWritten: tally.DocumentsWritten,
		BatchesCommitted: tally.BatchesCommitted,
		DurationSeconds:  time.Since(start).Seconds(),
	}
	if err != nil {
		entry.Severity = "CRITICAL"
		entry.Message = "import aborted"
		entry.Description = fmt.Sprintf("%v", err)
		if erm.IsTransient(err) {
			entry.Message += ", transient error, rerunning overwrites what was written"
		}
		log.Println(entry)
		return runReport, err
	}
	entry.Severity = "NOTICE"
	entry.Message = fmt.Sprintf("imported %d documents in %d batches", tally.DocumentsWritten, tally.BatchesCommitted)
	log.Println(entry)
	return runReport, nil
}
