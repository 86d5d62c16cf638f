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
	"context"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/storage"
	"github.com/BrunoReboul/fsmigrate/utilities/gcs"
	"github.com/BrunoReboul/fsmigrate/utilities/gfs"
	"github.com/BrunoReboul/fsmigrate/utilities/gps"
	"github.com/BrunoReboul/fsmigrate/utilities/solution"
)

// Command names
const (
	CommandTree   = "tree"
	CommandFlat   = "flat"
	CommandUpload = "upload"
)

// Core structure common to all commands
type Core struct {
	SolutionSettings solution.Settings
	Ctx              context.Context `yaml:"-"`
	RunID            string
	Command          string
	EnvironmentName  string
	SettingsFilePath string
	DryRun           bool
	Services         struct {
		FirestoreClient *firestore.Client  `yaml:"-"`
		StorageClient   *storage.Client    `yaml:"-"`
		PubsubClient    *pubsub.Client     `yaml:"-"`
		Store           gfs.DocumentStore  `yaml:"-"`
		Uploader        gcs.ObjectUploader `yaml:"-"`
		Publisher       gps.Publisher      `yaml:"-"`
		Bucket          *gcs.Bucket        `yaml:"-"`
		Topic           *gps.Topic         `yaml:"-"`
	} `yaml:"-"`
}

// Needs the clients a command writes with
type Needs struct {
	Firestore bool
	Storage   bool
}
