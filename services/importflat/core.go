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

package importflat

import (
	"fmt"
	"log"
	"time"

	"github.com/BrunoReboul/fsmigrate/utilities/backup"
	"github.com/BrunoReboul/fsmigrate/utilities/core"
	"github.com/BrunoReboul/fsmigrate/utilities/erm"
	"github.com/BrunoReboul/fsmigrate/utilities/logging"
	"github.com/BrunoReboul/fsmigrate/utilities/report"
	"github.com/BrunoReboul/fsmigrate/utilities/solution"
	"github.com/BrunoReboul/fsmigrate/utilities/validater"
)

// Global structure for the objects prepared once by Initialize and used by EntryPoint
type Global struct {
	core        *core.Core
	batchSize   int
	collections []flatCollection
}

// Initialize validates settings, reads every collection file, then opens the Firestore client
// Any error is a setup failure, nothing has been written
func Initialize(runCore *core.Core, global *Global) (err error) {
	global.core = runCore
	importSettings := &runCore.SolutionSettings.Import
	if len(importSettings.Flat.Collections) == 0 {
		for _, name := range solution.DefaultFlatCollectionNames {
			importSettings.Flat.Collections = append(importSettings.Flat.Collections,
				solution.FlatCollection{Name: name, FilePath: fmt.Sprintf("%s.json", name)})
		}
	}
	err = validater.ValidateStruct(*importSettings, "import")
	if err != nil {
		return err
	}
	if !importSettings.Flat.PerDocument {
		global.batchSize = int(importSettings.BatchSize)
	}

	global.collections = nil
	for _, settings := range importSettings.Flat.Collections {
		if err = backup.CheckID(settings.Name); err != nil {
			return fmt.Errorf("collection name %v", err)
		}
		documents, err := backup.ReadCollection(settings.FilePath)
		if err != nil {
			return fmt.Errorf("ReadCollection %s %v", settings.Name, err)
		}
		global.collections = append(global.collections, flatCollection{
			name:      settings.Name,
			filePath:  settings.FilePath,
			documents: documents,
		})
		log.Println(logging.Entry{
			RunID:          runCore.RunID,
			Command:        runCore.Command,
			Environment:    runCore.EnvironmentName,
			Message:        fmt.Sprintf("read %d documents from %s", len(documents), settings.FilePath),
			CollectionPath: settings.Name,
		})
	}
	return runCore.Initialize(core.Needs{Firestore: true})
}

// EntryPoint writes the collections in settings order and returns the run report
func EntryPoint(global *Global) (runReport report.Report, err error) {
	c := global.core
	var source string
	for i, collection := range global.collections {
		if i > 0 {
			source += ","
		}
		source += collection.filePath
	}
	runReport = c.NewReport(source)
	logEntry := logging.Entry{
		RunID:       c.RunID,
		Command:     c.Command,
		Environment: c.EnvironmentName,
	}

	start := time.Now()
	for _, collection := range global.collections {
		entry := logEntry
		entry.Severity = "NOTICE"
		entry.Message = fmt.Sprintf("start uploading %d documents", len(collection.documents))
		entry.CollectionPath = collection.name
		log.Println(entry)

		documentsWritten, batchesCommitted, err := writeCollection(c.Ctx, c.Services.Store, collection.name, collection.documents, global.batchSize, logEntry)
		runReport.DocumentsWritten += documentsWritten
		runReport.BatchesCommitted += batchesCommitted
		if err != nil {
			runReport.Finish(err)
			entry = logEntry
			entry.Severity = "CRITICAL"
			entry.Message = "flat import aborted"
			entry.Description = fmt.Sprintf("%v", err)
			if erm.IsTransient(err) {
				entry.Message += ", transient error, rerunning overwrites what was written"
			}
			entry.DocumentsWritten = runReport.DocumentsWritten
			log.Println(entry)
			return runReport, err
		}
		entry = logEntry
		entry.Message = fmt.Sprintf("uploaded %d documents", documentsWritten)
		entry.CollectionPath = collection.name
		log.Println(entry)
	}
	runReport.Finish(nil)

	entry := logEntry
	entry.Severity = "NOTICE"
	entry.Message = fmt.Sprintf("imported %d documents from %d collections", runReport.DocumentsWritten, len(global.collections))
	entry.DocumentsWritten = runReport.DocumentsWritten
	entry.BatchesCommitted = runReport.BatchesCommitted
	entry.DurationSeconds = time.Since(start).Seconds()
	log.Println(entry)
	return runReport, nil
}
