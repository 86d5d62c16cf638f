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

package importtree

import (
	"fmt"
	"sort"

	"github.com/BrunoReboul/fsmigrate/utilities/backup"
)

// splitRecord separates the fields to persist from the subcollections, the record is left untouched
// A null reserved key is the same as no subcollection
func (importer *Importer) splitRecord(record backup.Record) (payload map[string]interface{}, subcollections map[string]backup.Collection, names []string, err error) {
	payload = make(map[string]interface{}, len(record))
	for key, value := range record {
		if key != importer.subcollectionsKeyName {
			payload[key] = value
		}
	}
	rawSubcollections, ok := record[importer.subcollectionsKeyName]
	if !ok || rawSubcollections == nil {
		return payload, nil, nil, nil
	}
	subcollectionMap, ok := rawSubcollections.(map[string]interface{})
	if !ok {
		return nil, nil, nil, fmt.Errorf("'%s' must be an object of subcollections, got %T", importer.subcollectionsKeyName, rawSubcollections)
	}
	subcollections = make(map[string]backup.Collection, len(subcollectionMap))
	for name, rawDocuments := range subcollectionMap {
		documentMap, ok := rawDocuments.(map[string]interface{})
		if !ok {
			return nil, nil, nil, fmt.Errorf("subcollection '%s' must be an object of documents, got %T", name, rawDocuments)
		}
		documents := make(backup.Collection, len(documentMap))
		for id, rawRecord := range documentMap {
			switch r := rawRecord.(type) {
			case map[string]interface{}:
				documents[id] = r
			case nil:
				documents[id] = nil
			default:
				return nil, nil, nil, fmt.Errorf("subcollection '%s' document '%s' must be an object, got %T", name, id, rawRecord)
			}
		}
		subcollections[name] = documents
		names = append(names, name)
	}
	sort.Strings(names)
	return payload, subcollections, names, nil
}
