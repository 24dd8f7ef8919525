// Copyright 2024 The tapejson Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && !purego

package tapejson

import (
	"testing"

	"github.com/bytedance/sonic"
)

// TestCrossValidateAgainstSonic repeats the jsoniter cross-validation
// with sonic, which (like the teacher's own use of it in its benchmark
// harness) only builds on amd64 without the purego fallback.
func TestCrossValidateAgainstSonic(t *testing.T) {
	for _, src := range crossValidateCorpus {
		src := src
		t.Run(src, func(t *testing.T) {
			doc, err := ParseString(src)
			if err != nil {
				t.Fatalf("tapejson Parse(%q): %v", src, err)
			}
			got, err := doc.MustRoot().Interface()
			if err != nil {
				t.Fatalf("Interface(): %v", err)
			}

			var want interface{}
			if err := sonic.UnmarshalString(src, &want); err != nil {
				t.Fatalf("sonic.Unmarshal(%q): %v", src, err)
			}

			if !deepEqualJSON(got, want) {
				t.Errorf("mismatch for %q:\n  tapejson = %#v\n  sonic = %#v", src, got, want)
			}
		})
	}
}
