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

package solution

// Situate set settings from settings based on a given situation
// Situation is the environment name (string)
// Set settings are: projectID, key JSON file path, files bucket name, plus import and upload defaults
// A value found in a per environment map overrides the direct value
func (settings *Settings) Situate(environmentName string) {
	if projectID, ok := settings.Hosting.ProjectIDs[environmentName]; ok {
		settings.Hosting.ProjectID = projectID
	}
	if keyJSONFilePath, ok := settings.Hosting.KeyJSONFilePaths[environmentName]; ok {
		settings.Hosting.KeyJSONFilePath = keyJSONFilePath
	}
	if bucketName, ok := settings.Hosting.GCS.Buckets.Files.Names[environmentName]; ok {
		settings.Hosting.GCS.Buckets.Files.Name = bucketName
	}
	if settings.Import.BackupFilePath == "" {
		settings.Import.BackupFilePath = DefaultBackupFilePath
	}
	if settings.Import.SubcollectionsKeyName == "" {
		settings.Import.SubcollectionsKeyName = DefaultSubcollectionsKeyName
	}
	if settings.Import.BatchSize == 0 {
		settings.Import.BatchSize = DefaultBatchSize
	}
	if settings.Import.MaxDepth == 0 {
		settings.Import.MaxDepth = DefaultMaxDepth
	}
	if settings.Upload.SourceFolderPath == "" {
		settings.Upload.SourceFolderPath = DefaultSourceFolderPath
	}
}
