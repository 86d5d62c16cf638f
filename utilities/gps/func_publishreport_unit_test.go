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

package gps

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/BrunoReboul/fsmigrate/utilities/report"
)

type recordingPublisher struct {
	data       []byte
	attributes map[string]string
	err        error
}

func (p *recordingPublisher) Publish(ctx context.Context, data []byte, attributes map[string]string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.data = data
	p.attributes = attributes
	return "msg-1", nil
}

func TestUnitPublishReport(t *testing.T) {
	runReport := report.New("run42", "upload", "prd", "project1", "downloaded-storage-files", false)
	runReport.FilesUploaded = 2
	runReport.Finish(nil)

	publisher := &recordingPublisher{}
	id, err := PublishReport(context.Background(), publisher, runReport)
	if err != nil {
		t.Fatalf("Want NO error got %v", err)
	}
	if id != "msg-1" {
		t.Errorf("Want id 'msg-1' got '%s'", id)
	}
	var published report.Report
	if err := json.Unmarshal(publisher.data, &published); err != nil {
		t.Fatalf("Want a JSON report got %s %v", string(publisher.data), err)
	}
	if published.FilesUploaded != 2 || published.Status != report.StatusSuccess {
		t.Errorf("Want 2 files and success got %d %s", published.FilesUploaded, published.Status)
	}
	if publisher.attributes["runID"] != "run42" || publisher.attributes["command"] != "upload" {
		t.Errorf("Unexpected attributes %v", publisher.attributes)
	}

	_, err = PublishReport(context.Background(), &recordingPublisher{err: errors.New("permission denied")}, runReport)
	if err == nil {
		t.Errorf("Want an error got NONE")
	}
}
