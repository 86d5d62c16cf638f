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

package erm

import (
	"errors"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var transientCodes = []codes.Code{
	codes.Aborted,
	codes.DeadlineExceeded,
	codes.Internal,
	codes.ResourceExhausted,
	codes.Unavailable,
}

// IsTransient check if the error is a 5xx, a 429 or a retryable gRPC code
// Errors wrapped with %v are matched on their message, e.g. 'code = Unavailable' or 'googleapi: Error 503'
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var apiError *googleapi.Error
	if errors.As(err, &apiError) {
		return apiError.Code == 429 || apiError.Code >= 500
	}
	code := status.Code(err)
	for _, transientCode := range transientCodes {
		if code == transientCode {
			return true
		}
	}
	erroMessage := err.Error()
	for _, transientCode := range transientCodes {
		if strings.Contains(erroMessage, "code = "+transientCode.String()) {
			return true
		}
	}
	transientErrors := []string{"429", "500", "501", "502", "503", "504", "505", "506", "507", "508", "510", "511"}
	for _, transientError := range transientErrors {
		if strings.Contains(erroMessage, "Error "+transientError) {
			return true
		}
	}
	return false
}
