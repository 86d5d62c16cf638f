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

/*
Package itst guards integration tests

Integration tests write to a real project. They run only when
FSMIGRATE_INTEG_TESTS is true, with application default credentials on a
project whose name contains 'fsmigrate-test'.

	FSMIGRATE_INTEG_TESTS=true FSMIGRATE_INTEG_BUCKET=my-test-bucket go test -run Integ ./...
*/
package itst
