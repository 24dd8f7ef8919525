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

func TestWithStageOverride(t *testing.T) {
	p, err := NewParser(WithStage(scanStage{}))
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	doc, err := p.ParseString(`[1,2,3]`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n := doc.MustRoot().MustArray().Len(); n != 3 {
		t.Errorf("Len() = %d, want 3", n)
	}
}

func TestWithStageRejectsNil(t *testing.T) {
	if _, err := NewParser(WithStage(nil)); err == nil {
		t.Fatal("expected an error for a nil stage")
	}
}

func TestHardwareAccelerationAvailableDoesNotPanic(t *testing.T) {
	_ = HardwareAccelerationAvailable()
}
