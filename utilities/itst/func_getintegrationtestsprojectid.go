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

package itst

import (
	"context"
	"os"
	"strings"
	"testing"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/cloudresourcemanager/v1"
	"google.golang.org/api/option"
)

// EnvironmentVariableName enables integration tests when set to true
const EnvironmentVariableName = "FSMIGRATE_INTEG_TESTS"

// ProjectNameMarker the project used by integration tests must have a name containing it
const ProjectNameMarker = "fsmigrate-test"

// GetIntegrationTestsProjectID skips the test unless integration tests are enabled,
// then checks that the current project is dedicated to integration tests and returns its ID
func GetIntegrationTestsProjectID(t *testing.T) (projectID string, clientOption option.ClientOption) {
	t.Helper()
	if os.Getenv(EnvironmentVariableName) != "true" {
		t.Skipf("integration tests disabled, set %s=true", EnvironmentVariableName)
	}
	ctx := context.Background()
	creds, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/cloud-platform")
	if err != nil {
		t.Fatal(err)
	}
	clientOption = option.WithCredentials(creds)
	cloudresourcemanagerService, err := cloudresourcemanager.NewService(ctx, clientOption)
	if err != nil {
		t.Fatal(err)
	}
	project, err := cloudresourcemanagerService.Projects.Get(creds.ProjectID).Context(ctx).Do()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(project.Name, ProjectNameMarker) {
		t.Fatalf("The project used to run fsmigrate integration tests MUST have a name that contains '%s'", ProjectNameMarker)
	}
	return project.ProjectId, clientOption
}
