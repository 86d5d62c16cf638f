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

package aut

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// GetClientOption build a clientOption object from a service account key JSON file
// An empty keyJSONFilePath falls back on Application Default Credentials
// projectID is the one found in the credentials, if any
func GetClientOption(ctx context.Context, keyJSONFilePath string) (clientOption option.ClientOption, projectID string, err error) {
	var creds *google.Credentials
	if keyJSONFilePath == "" {
		creds, err = google.FindDefaultCredentials(ctx, cloudPlatformScope)
		if err != nil {
			return clientOption, projectID, fmt.Errorf("google.FindDefaultCredentials %v", err)
		}
		return option.WithCredentials(creds), creds.ProjectID, nil
	}
	var keyJSONdata []byte
	keyJSONdata, err = os.ReadFile(keyJSONFilePath)
	if err != nil {
		return clientOption, projectID, fmt.Errorf("cannot read service account key file %s %v", keyJSONFilePath, err)
	}
	creds, err = google.CredentialsFromJSON(ctx, keyJSONdata, cloudPlatformScope)
	if err != nil {
		return clientOption, projectID, fmt.Errorf("google.CredentialsFromJSON %s %v", keyJSONFilePath, err)
	}
	return option.WithCredentials(creds), creds.ProjectID, nil
}
