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

package tapejson

import "testing"

func TestDocResultUnwrap(t *testing.T) {
	r := ParseOwned([]byte(`[1,2,3]`))
	doc, err := r.Unwrap()
	if err != nil {
		t.Fatalf("Unwrap: %v", err)
	}
	if n := doc.MustRoot().MustArray().Len(); n != 3 {
		t.Errorf("Len() = %d, want 3", n)
	}

	bad := ParseOwned([]byte(`not json`))
	if _, err := bad.Unwrap(); err == nil {
		t.Fatal("Unwrap on a failed parse: expected an error, got nil")
	}
}

func TestDocRefResultUnwrap(t *testing.T) {
	p, err := NewParser()
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	r := ParseInto(p, []byte(`{"a":1}`))
	doc, err := r.Unwrap()
	if err != nil {
		t.Fatalf("Unwrap: %v", err)
	}
	v, err := doc.MustRoot().MustObject().AtKey("a")
	if err != nil {
		t.Fatalf("AtKey: %v", err)
	}
	if v.MustInt64() != 1 {
		t.Errorf("a = %d, want 1", v.MustInt64())
	}
}

func TestDocResultMustPanicsOnFailure(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Must on a failed parse: expected a panic")
		}
	}()
	ParseOwned([]byte(`not json`)).Must()
}
