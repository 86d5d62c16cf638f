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

package gfs

import (
	"context"
	"fmt"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/BrunoReboul/fsmigrate/utilities/itst"
	"github.com/google/uuid"
)

const testCollectionID = "fsmigrateIntegTests"

func TestIntegClient(t *testing.T) {
	projectID, clientOption := itst.GetIntegrationTestsProjectID(t)
	ctx := context.Background()
	firestoreClient, err := firestore.NewClient(ctx, projectID, clientOption)
	if err != nil {
		t.Fatal(err)
	}
	defer firestoreClient.Close()
	client := NewClient(firestoreClient)
	runID := fmt.Sprintf("%v", uuid.New())
	userPath := fmt.Sprintf("%s/%s", testCollectionID, runID)
	orderPath := fmt.Sprintf("%s/orders/o1", userPath)
	defer func() {
		for _, documentPath := range []string{orderPath, userPath} {
			if _, err := firestoreClient.Doc(documentPath).Delete(ctx); err != nil {
				t.Logf("cleanup %s %v", documentPath, err)
			}
		}
	}()

	t.Run("Step1_BatchSubcollectionFirst", func(t *testing.T) {
		batch := client.Batch()
		batch.Set(orderPath, map[string]interface{}{"qty": int64(3)})
		if err := batch.Commit(ctx); err != nil {
			t.Fatal(err)
		}
		batch = client.Batch()
		batch.Set(userPath, map[string]interface{}{"name": "Ann"})
		if err := batch.Commit(ctx); err != nil {
			t.Fatal(err)
		}
		snapshot, err := firestoreClient.Doc(orderPath).Get(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if snapshot.Data()["qty"] != int64(3) {
			t.Errorf("Want qty 3 got %v", snapshot.Data()["qty"])
		}
	})
	t.Run("Step2_SetOverwrites", func(t *testing.T) {
		if err := client.Set(ctx, userPath, map[string]interface{}{"name": "Bob"}); err != nil {
			t.Fatal(err)
		}
		snapshot, err := firestoreClient.Doc(userPath).Get(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if snapshot.Data()["name"] != "Bob" {
			t.Errorf("Want name Bob got %v", snapshot.Data()["name"])
		}
	})
	t.Run("Step3_InvalidPathFailsAtCommit", func(t *testing.T) {
		batch := client.Batch()
		batch.Set(testCollectionID, map[string]interface{}{"name": "Cy"})
		if err := batch.Commit(ctx); err == nil {
			t.Errorf("Want an error on a collection path")
		}
	})
}
