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
	"fmt"
	"testing"

	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnitIsTransient(t *testing.T) {
	var testCases = []struct {
		name          string
		err           error
		wantTransient bool
	}{
		{
			name: "nil",
		},
		{
			name: "err403",
			err:  errors.New("googleapi: Error 403: forbidden"),
		},
		{
			name:          "err500",
			err:           errors.New("upload a/b.txt googleapi: Error 500: Internal Server Error"),
			wantTransient: true,
		},
		{
			name:          "err503",
			err:           errors.New("googleapi: Error 503: Service Unavailable"),
			wantTransient: true,
		},
		{
			name:          "err511",
			err:           errors.New("googleapi: Error 511: Network Authentication Required"),
			wantTransient: true,
		},
		{
			name:          "grpcUnavailable",
			err:           status.Error(codes.Unavailable, "connection reset"),
			wantTransient: true,
		},
		{
			name: "batchOf500Documents",
			err:  errors.New("users commit of 500 documents invalid document path"),
		},
		{
			name: "grpcInvalidArgument",
			err:  status.Error(codes.InvalidArgument, "too many writes in a batch"),
		},
		{
			name:          "wrappedDeadlineExceeded",
			err:           fmt.Errorf("users commit of 499 documents %v", status.Error(codes.DeadlineExceeded, "context deadline exceeded")),
			wantTransient: true,
		},
		{
			name: "wrappedPermissionDenied",
			err:  fmt.Errorf("users commit of 499 documents %v", status.Error(codes.PermissionDenied, "missing permission")),
		},
		{
			name:          "googleapiTooManyRequests",
			err:           &googleapi.Error{Code: 429},
			wantTransient: true,
		},
		{
			name: "googleapiNotFound",
			err:  fmt.Errorf("bucket %w", &googleapi.Error{Code: 404}),
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if result := IsTransient(tc.err); result != tc.wantTransient {
				t.Errorf("Want transient %v got %v for %v", tc.wantTransient, result, tc.err)
			}
		})
	}
}
