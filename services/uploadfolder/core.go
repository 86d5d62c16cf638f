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

package uploadfolder

import (
	"fmt"
	"log"
	"time"

	"github.com/BrunoReboul/fsmigrate/utilities/core"
	"github.com/BrunoReboul/fsmigrate/utilities/erm"
	"github.com/BrunoReboul/fsmigrate/utilities/ffo"
	"github.com/BrunoReboul/fsmigrate/utilities/logging"
	"github.com/BrunoReboul/fsmigrate/utilities/report"
)

// Global structure for the objects prepared once by Initialize and used by EntryPoint
type Global struct {
	core             *core.Core
	sourceFolderPath string
	objectNamePrefix string
	localFiles       []ffo.LocalFile
}

// Initialize lists the files to upload then opens the Storage client and checks the bucket
// Any error is a setup failure, nothing has been uploaded
func Initialize(runCore *core.Core, global *Global) (err error) {
	global.core = runCore
	uploadSettings := runCore.SolutionSettings.Upload
	global.sourceFolderPath = uploadSettings.SourceFolderPath
	global.objectNamePrefix = uploadSettings.ObjectNamePrefix

	err = ffo.CheckFolder(global.sourceFolderPath)
	if err != nil {
		return err
	}
	global.localFiles, err = ffo.ListFiles(global.sourceFolderPath)
	if err != nil {
		return err
	}
	if !runCore.DryRun && runCore.SolutionSettings.Hosting.GCS.Buckets.Files.Name == "" {
		return fmt.Errorf("missing bucket name, set hosting.gcs.buckets.files.name or names.%s", runCore.EnvironmentName)
	}
	log.Println(logging.Entry{
		RunID:       runCore.RunID,
		Command:     runCore.Command,
		Environment: runCore.EnvironmentName,
		Message:     fmt.Sprintf("found %d files in %s", len(global.localFiles), global.sourceFolderPath),
		FilesTotal:  int64(len(global.localFiles)),
	})
	return runCore.Initialize(core.Needs{Storage: true})
}

// EntryPoint uploads the listed files one at a time and returns the run report
func EntryPoint(global *Global) (runReport report.Report, err error) {
	c := global.core
	runReport = c.NewReport(global.sourceFolderPath)
	logEntry := logging.Entry{
		RunID:       c.RunID,
		Command:     c.Command,
		Environment: c.EnvironmentName,
	}
	total := int64(len(global.localFiles))
	if total == 0 {
		entry := logEntry
		entry.Severity = "NOTICE"
		entry.Message = "no files found to upload"
		log.Println(entry)
		runReport.Finish(nil)
		return runReport, nil
	}

	entry := logEntry
	entry.Severity = "NOTICE"
	entry.Message = fmt.Sprintf("start uploading %d files to bucket %s", total, c.SolutionSettings.Hosting.GCS.Buckets.Files.Name)
	entry.FilesTotal = total
	log.Println(entry)

	start := time.Now()
	for _, localFile := range global.localFiles {
		name := objectName(global.objectNamePrefix, localFile.RelativePath)
		err = c.Services.Uploader.Upload(c.Ctx, localFile.LocalPath, name)
		if err != nil {
			err = fmt.Errorf("upload %s %v", localFile.LocalPath, err)
			break
		}
		runReport.FilesUploaded++

		entry = logEntry
		entry.Message = fmt.Sprintf("uploaded %d of %d: %s", runReport.FilesUploaded, total, name)
		entry.ObjectName = name
		entry.FilesUploaded = runReport.FilesUploaded
		entry.FilesTotal = total
		log.Println(entry)
	}
	runReport.Finish(err)

	entry = logEntry
	entry.FilesUploaded = runReport.FilesUploaded
	entry.FilesTotal = total
	entry.DurationSeconds = time.Since(start).Seconds()
	if err != nil {
		entry.Severity = "CRITICAL"
		entry.Message = "upload aborted"
		entry.Description = fmt.Sprintf("%v", err)
		if erm.IsTransient(err) {
			entry.Message += ", transient error, rerunning overwrites what was written"
		}
		log.Println(entry)
		return runReport, err
	}
	entry.Severity = "NOTICE"
	entry.Message = fmt.Sprintf("uploaded %d files", runReport.FilesUploaded)
	log.Println(entry)
	return runReport, nil
}
