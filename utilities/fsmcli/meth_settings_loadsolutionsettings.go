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
	"log"
	"os"

	"github.com/BrunoReboul/fsmigrate/utilities/core"
	"github.com/BrunoReboul/fsmigrate/utilities/ffo"
	"github.com/BrunoReboul/fsmigrate/utilities/logging"
	"github.com/BrunoReboul/fsmigrate/utilities/solution"
)

// LoadSolutionSettings reads the settings file, situates it in the environment, then applies the command line overrides
// A missing default settings file means defaults only, a missing explicit one is an error
func (settings Settings) LoadSolutionSettings(command string) (solutionSettings solution.Settings, err error) {
	_, err = os.Stat(settings.SettingsFilePath)
	if err == nil || settings.settingsFileSet {
		err = ffo.ReadUnmarshalYAML(settings.SettingsFilePath, &solutionSettings)
		if err != nil {
			return solutionSettings, err
		}
	} else {
		log.Println(logging.Entry{
			Command:     command,
			Environment: settings.EnvironmentName,
			Severity:    "NOTICE",
			Message:     "no settings file, using defaults",
			Description: settings.SettingsFilePath,
		})
	}
	solutionSettings.Situate(settings.EnvironmentName)

	if settings.KeyJSONFilePath != "" {
		solutionSettings.Hosting.KeyJSONFilePath = settings.KeyJSONFilePath
	}
	if settings.Source != "" {
		switch command {
		case core.CommandTree:
			solutionSettings.Import.BackupFilePath = settings.Source
		case core.CommandUpload:
			solutionSettings.Upload.SourceFolderPath = settings.Source
		}
	}
	return solutionSettings, nil
}
