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

// Settings settings common to all commands, read from the settings YAML file
type Settings struct {
	Hosting struct {
		ProjectID        string            `yaml:"projectID,omitempty"`
		ProjectIDs       map[string]string `yaml:"projectIDs"`
		KeyJSONFilePath  string            `yaml:"keyJSONFilePath,omitempty"`
		KeyJSONFilePaths map[string]string `yaml:"keyJSONFilePaths"`
		GCS              struct {
			Buckets struct {
				Files struct {
					Name  string            `yaml:"name,omitempty"`
					Names map[string]string `yaml:"names"`
				} `yaml:"files"`
			} `yaml:"buckets"`
		} `yaml:"gcs"`
		FireStore struct {
			CollectionIDs struct {
				Runs string `yaml:"runs,omitempty"`
			} `yaml:"collectionIDs"`
		} `yaml:"firestore"`
		Pubsub struct {
			TopicNames struct {
				RunReports string `yaml:"runReports,omitempty"`
			} `yaml:"topicNames"`
		} `yaml:"pubsub"`
	} `yaml:"hosting"`
	Import struct {
		BackupFilePath        string `yaml:"backupFilePath,omitempty"`
		SubcollectionsKeyName string `yaml:"subcollectionsKeyName,omitempty"`
		BatchSize             int64  `yaml:"batchSize,omitempty" valid:"isBatchSize"`
		MaxDepth              int64  `yaml:"maxDepth,omitempty" valid:"isNotNegative"`
		Flat                  struct {
			PerDocument bool             `yaml:"perDocument"`
			Collections []FlatCollection `yaml:"collections"`
		} `yaml:"flat"`
	} `yaml:"import"`
	Upload struct {
		SourceFolderPath string `yaml:"sourceFolderPath,omitempty"`
		ObjectNamePrefix string `yaml:"objectNamePrefix,omitempty"`
	} `yaml:"upload"`
}

// FlatCollection a collection to be loaded from a flat JSON file
type FlatCollection struct {
	Name     string `yaml:"name" valid:"isNotZeroValue"`
	FilePath string `yaml:"filePath" valid:"isNotZeroValue"`
}
