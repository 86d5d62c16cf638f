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

package validater

import (
	"fmt"
	"log"
	"reflect"
	"strings"
)

const tagKeyName = "valid"

// MaxBatchSize is the Firestore limit of writes in one batch
const MaxBatchSize = 500

// validater interface
type validater interface {
	validate(interface{}) (bool, error)
}

// defaultValidater is always valid
type defaultValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v defaultValidater) validate(val interface{}) (bool, error) {
	return true, nil
}

// isNotZeroValueValidater do not accept zero value
type isNotZeroValueValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v isNotZeroValueValidater) validate(value interface{}) (bool, error) {
	typ := reflect.TypeOf(value)
	if typ == nil {
		return false, fmt.Errorf("Should NOT be nil")
	}
	kind := typ.Kind()
	switch kind {
	case reflect.String:
		if len(value.(string)) == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Int64:
		if value.(int64) == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	case reflect.Slice, reflect.Map:
		if reflect.ValueOf(value).Len() == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	default:
		return false, fmt.Errorf("Unmanaged kind by 'isNotZeroValueValidater' %s", kind)
	}
	return true, nil
}

// isBatchSizeValidater accepts only a number of writes a Firestore batch can hold
type isBatchSizeValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v isBatchSizeValidater) validate(value interface{}) (bool, error) {
	batchSize, ok := value.(int64)
	if !ok {
		return false, fmt.Errorf("Should be int64")
	}
	if batchSize < 1 || batchSize > MaxBatchSize {
		return false, fmt.Errorf("Should be between 1 and %d, is %d", MaxBatchSize, batchSize)
	}
	return true, nil
}

// isNotNegativeValidater accepts zero and positive int64
type isNotNegativeValidater struct {
}

// validate interface returns true for a valid field, false and why in the error otherwise
func (v isNotNegativeValidater) validate(value interface{}) (bool, error) {
	i, ok := value.(int64)
	if !ok {
		return false, fmt.Errorf("Should be int64")
	}
	if i < 0 {
		return false, fmt.Errorf("Should NOT be negative, is %d", i)
	}
	return true, nil
}

func getValidater(kind reflect.Kind, tagValue string) validater {
	tagValueParts := strings.Split(tagValue, ",")
	tagPrefix := tagValueParts[0]
	switch tagPrefix {
	case "isNotZeroValue":
		return isNotZeroValueValidater{}
	case "isBatchSize":
		return isBatchSizeValidater{}
	case "isNotNegative":
		return isNotNegativeValidater{}
	}
	return defaultValidater{}
}

// getValidationErrors recursively loop through a struct to find validation errors
func getValidationErrors(structure interface{}, pedigree string) []error {
	errs := []error{}
	if structure == nil {
		return errs
	}
	value := reflect.ValueOf(structure)
	if value.Kind() == reflect.Interface || value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return []error{fmt.Errorf("type %s is not a struct", value.Kind())}
	}

	for i := 0; i < value.NumField(); i++ {
		valueField := value.Field(i)
		typeField := value.Type().Field(i)
		if typeField.PkgPath != "" {
			// unexported
			continue
		}
		if valueField.Kind() == reflect.Interface {
			valueField = valueField.Elem()
		}
		// time.Time is a struct with only unexported fields, tag it `valid:"-"`
		if typeField.Tag.Get(tagKeyName) != "-" &&
			(valueField.Kind() == reflect.Struct || (valueField.Kind() == reflect.Ptr && valueField.Elem().Kind() == reflect.Struct)) {
			childErrs := getValidationErrors(valueField.Interface(), fmt.Sprintf("%s/%s", pedigree, typeField.Name))
			errs = append(errs, childErrs...)
			continue
		}
		if valueField.Kind() == reflect.Slice && valueField.Type().Elem().Kind() == reflect.Struct {
			validater := getValidater(typeField.Type.Kind(), typeField.Tag.Get(tagKeyName))
			if ok, err := validater.validate(valueField.Interface()); !ok {
				errs = append(errs, fmt.Errorf("Validater error %s '%s' %v", pedigree, typeField.Name, err))
			}
			for j := 0; j < valueField.Len(); j++ {
				childErrs := getValidationErrors(valueField.Index(j).Interface(), fmt.Sprintf("%s/%s[%d]", pedigree, typeField.Name, j))
				errs = append(errs, childErrs...)
			}
			continue
		}
		validater := getValidater(typeField.Type.Kind(), typeField.Tag.Get(tagKeyName))
		ok, err := validater.validate(valueField.Interface())
		if !ok {
			errs = append(errs, fmt.Errorf("Validater error %s '%s' %v", pedigree, typeField.Name, err))
		}
	}
	return errs
}

// ValidateStruct validates the fields of a struct
func ValidateStruct(structure interface{}, pedigree string) (err error) {
	errors := getValidationErrors(structure, pedigree)
	if len(errors) > 0 {
		for _, err := range errors {
			log.Println(err)
		}
		err = fmt.Errorf("Error, settings validation failed")
		return err
	}
	return nil
}
