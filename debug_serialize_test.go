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

import (
	"bytes"
	"testing"
)

func TestDebugDumpRoundTrip(t *testing.T) {
	doc, err := ParseString(`{"a":[1,2,3],"b":"hello","c":null}`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	dump, err := doc.DumpDebug()
	if err != nil {
		t.Fatalf("DumpDebug: %v", err)
	}

	var buf bytes.Buffer
	if _, err := dump.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	roundTripped, err := ReadDebugDump(&buf)
	if err != nil {
		t.Fatalf("ReadDebugDump: %v", err)
	}

	want, err := doc.PrintJSON()
	if err != nil {
		t.Fatalf("PrintJSON (original): %v", err)
	}
	got, err := roundTripped.PrintJSON()
	if err != nil {
		t.Fatalf("PrintJSON (round-tripped): %v", err)
	}
	if got != want {
		t.Errorf("round-tripped PrintJSON = %q, want %q", got, want)
	}
}
