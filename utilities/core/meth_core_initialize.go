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

package core

import (
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/storage"
	"github.com/BrunoReboul/fsmigrate/utilities/aut"
	"github.com/BrunoReboul/fsmigrate/utilities/gcs"
	"github.com/BrunoReboul/fsmigrate/utilities/gfs"
	"github.com/BrunoReboul/fsmigrate/utilities/gps"
	"github.com/BrunoReboul/fsmigrate/utilities/logging"
)

// Initialize builds the clients the command needs. Nothing is written before it returns
// A dry run uses in memory stores and needs no credentials
func (core *Core) Initialize(needs Needs) (err error) {
	hosting := &core.SolutionSettings.Hosting
	needs.Firestore = needs.Firestore || hosting.FireStore.CollectionIDs.Runs != ""

	if core.DryRun {
		if needs.Firestore {
			core.Services.Store = gfs.NewMemoryStore()
		}
		if needs.Storage {
			core.Services.Uploader = gcs.NewMemoryBucket()
		}
		log.Println(logging.Entry{
			RunID:       core.RunID,
			Command:     core.Command,
			Environment: core.EnvironmentName,
			Severity:    "NOTICE",
			Message:     "dry run, nothing is written to Google Cloud",
		})
		return nil
	}

	clientOption, credentialsProjectID, err := aut.GetClientOption(core.Ctx, hosting.KeyJSONFilePath)
	if err != nil {
		return fmt.Errorf("credentials %v", err)
	}
	if hosting.ProjectID == "" {
		hosting.ProjectID = credentialsProjectID
	}
	if hosting.ProjectID == "" && (needs.Firestore || hosting.Pubsub.TopicNames.RunReports != "") {
		return fmt.Errorf("no projectID in settings nor in credentials")
	}

	if needs.Firestore {
		core.Services.FirestoreClient, err = firestore.NewClient(core.Ctx, hosting.ProjectID, clientOption)
		if err != nil {
			return fmt.Errorf("firestore.NewClient %v", err)
		}
		core.Services.Store = gfs.NewClient(core.Services.FirestoreClient)
	}
	if needs.Storage {
		core.Services.StorageClient, err = storage.NewClient(core.Ctx, clientOption)
		if err != nil {
			return fmt.Errorf("storage.NewClient %v", err)
		}
		core.Services.Bucket = gcs.NewBucket(core.Services.StorageClient, hosting.GCS.Buckets.Files.Name)
		err = core.Services.Bucket.Check(core.Ctx)
		if err != nil {
			return err
		}
		core.Services.Uploader = core.Services.Bucket
	}
	if hosting.Pubsub.TopicNames.RunReports != "" {
		core.Services.PubsubClient, err = pubsub.NewClient(core.Ctx, hosting.ProjectID, clientOption)
		if err != nil {
			return fmt.Errorf("pubsub.NewClient %v", err)
		}
		core.Services.Topic = gps.NewTopic(core.Services.PubsubClient, hosting.Pubsub.TopicNames.RunReports)
		core.Services.Publisher = core.Services.Topic
	}
	log.Println(logging.Entry{
		RunID:       core.RunID,
		Command:     core.Command,
		Environment: core.EnvironmentName,
		Severity:    "INFO",
		Message:     fmt.Sprintf("clients ready for project %s", hosting.ProjectID),
	})
	return nil
}
