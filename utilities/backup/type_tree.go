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

package backup

import "sort"

// Record document fields, may hold the reserved subcollections key
type Record map[string]interface{}

// Collection documents by id
type Collection map[string]Record

// RootCollection a top level collection of a backup tree
type RootCollection struct {
	ID        string
	Documents Collection
}

// Tree root collections in file order
type Tree []RootCollection

// IDs sorted document ids
func (collection Collection) IDs() []string {
	ids := make([]string, 0, len(collection))
	for id := range collection {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CountDocuments number of documents at every depth, using key to find subcollections
func (tree Tree) CountDocuments(key string) (count int64) {
	for _, rootCollection := range tree {
		count += countDocuments(rootCollection.Documents, key)
	}
	return count
}

func countDocuments(collection Collection, key string) (count int64) {
	for _, record := range collection {
		count++
		subcollections, ok := record[key].(map[string]interface{})
		if !ok {
			continue
		}
		for _, rawCollection := range subcollections {
			rawDocuments, ok := rawCollection.(map[string]interface{})
			if !ok {
				continue
			}
			documents := make(Collection, len(rawDocuments))
			for id, rawRecord := range rawDocuments {
				if m, ok := rawRecord.(map[string]interface{}); ok {
					documents[id] = m
				}
			}
			count += countDocuments(documents, key)
		}
	}
	return count
}
