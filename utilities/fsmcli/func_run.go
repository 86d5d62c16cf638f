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

package fsmcli

import (
	"context"
	"fmt"
	"log"

	"github.com/BrunoReboul/fsmigrate/services/importflat"
	"github.com/BrunoReboul/fsmigrate/services/importtree"
	"github.com/BrunoReboul/fsmigrate/services/uploadfolder"
	"github.com/BrunoReboul/fsmigrate/utilities/core"
	"github.com/BrunoReboul/fsmigrate/utilities/logging"
	"github.com/BrunoReboul/fsmigrate/utilities/report"
)

// Run executes the selected command, then records and publishes its run report
// Setup errors are returned before any write
func Run(ctx context.Context, settings Settings) (err error) {
	command, err := settings.Command()
	if err != nil {
		return err
	}
	solutionSettings, err := settings.LoadSolutionSettings(command)
	if err != nil {
		return err
	}
	runCore := core.NewCore(ctx, command, settings.EnvironmentName)
	runCore.SolutionSettings = solutionSettings
	runCore.SettingsFilePath = settings.SettingsFilePath
	runCore.DryRun = settings.DryRun
	defer runCore.Close()

	log.Println(logging.Entry{
		RunID:       runCore.RunID,
		Command:     command,
		Environment: runCore.EnvironmentName,
		Severity:    "NOTICE",
		Message:     fmt.Sprintf("fsmigrate -%s", command),
	})

	var runReport report.Report
	switch command {
	case core.CommandTree:
		var global importtree.Global
		if err = importtree.Initialize(runCore, &global); err != nil {
			return fmt.Errorf("setup %v", err)
		}
		runReport, err = importtree.EntryPoint(&global)
	case core.CommandFlat:
		var global importflat.Global
		if err = importflat.Initialize(runCore, &global); err != nil {
			return fmt.Errorf("setup %v", err)
		}
		runReport, err = importflat.EntryPoint(&global)
	case core.CommandUpload:
		var global uploadfolder.Global
		if err = uploadfolder.Initialize(runCore, &global); err != nil {
			return fmt.Errorf("setup %v", err)
		}
		runReport, err = uploadfolder.EntryPoint(&global)
	}
	runCore.PublishReport(runReport)
	return err
}
