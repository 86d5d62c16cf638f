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
	"flag"
	"fmt"
	"io"

	"github.com/BrunoReboul/fsmigrate/utilities/core"
	"github.com/BrunoReboul/fsmigrate/utilities/solution"
)

// CheckArguments parses the command line arguments, without the program name
func CheckArguments(args []string, output io.Writer) (settings Settings, err error) {
	flagSet := flag.NewFlagSet("fsmigrate", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.BoolVar(&settings.Commands.Tree, "tree", false, "import a nested backup tree in Firestore, subcollections included")
	flagSet.BoolVar(&settings.Commands.Flat, "flat", false, "import flat JSON files as Firestore collections")
	flagSet.BoolVar(&settings.Commands.Upload, "upload", false, "upload a local folder tree to a Cloud Storage bucket")
	flagSet.StringVar(&settings.SettingsFilePath, "settings", solution.SettingsFileName, "Path to the settings YAML file")
	flagSet.StringVar(&settings.EnvironmentName, "environment", solution.DevelopmentEnvironmentName, "Environment name")
	flagSet.StringVar(&settings.Source, "source", "", "backup JSON file for -tree, local folder for -upload")
	flagSet.StringVar(&settings.KeyJSONFilePath, "key", "", "Path to the service account JSON key file, application default credentials when empty")
	flagSet.BoolVar(&settings.DryRun, "dryrun", false, "read and check everything, write nothing to Google Cloud")
	err = flagSet.Parse(args)
	if err != nil {
		return settings, err
	}
	if flagSet.NArg() > 0 {
		return settings, fmt.Errorf("unexpected arguments %v", flagSet.Args())
	}
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "settings" {
			settings.settingsFileSet = true
		}
	})
	command, err := settings.Command()
	if err != nil {
		return settings, err
	}
	if settings.Source != "" && command == core.CommandFlat {
		return settings, fmt.Errorf("-source applies to -tree and -upload, set import.flat.collections for -flat")
	}
	return settings, nil
}
