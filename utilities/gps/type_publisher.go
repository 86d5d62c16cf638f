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
	"fmt"

	"cloud.google.com/go/pubsub"
)

// Publisher publishes one message and returns its server id
type Publisher interface {
	Publish(ctx context.Context, data []byte, attributes map[string]string) (string, error)
}

// Topic publishes to a Pub/Sub topic
type Topic struct {
	topic *pubsub.Topic
}

// NewTopic wraps the topic topicName of the client project
func NewTopic(pubsubClient *pubsub.Client, topicName string) *Topic {
	return &Topic{topic: pubsubClient.Topic(topicName)}
}

// Publish waits for the publish result, no retry on top of the one already implemented in the GO client
func (t *Topic) Publish(ctx context.Context, data []byte, attributes map[string]string) (id string, err error) {
	publishResult := t.topic.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	})
	id, err = publishResult.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("publishResult.Get %s %v", t.topic.ID(), err)
	}
	return id, nil
}

// Stop flushes pending messages
func (t *Topic) Stop() {
	t.topic.Stop()
}
