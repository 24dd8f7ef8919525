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

func TestTapeWordRoundTrip(t *testing.T) {
	cases := []struct {
		tag     Tag
		payload uint64
	}{
		{TagStartObject, 0},
		{TagString, 12345},
		{TagInt64, payloadMask},
		{TagNull, 0},
	}
	for _, c := range cases {
		word := makeTapeWord(c.tag, c.payload)
		if got := tagOf(word); got != c.tag {
			t.Errorf("tagOf(makeTapeWord(%v, %d)) = %v, want %v", c.tag, c.payload, got, c.tag)
		}
		if got := payloadOf(word); got != c.payload {
			t.Errorf("payloadOf(makeTapeWord(%v, %d)) = %d, want %d", c.tag, c.payload, got, c.payload)
		}
	}
}

func TestTapeWordPayloadOverflowIsMasked(t *testing.T) {
	word := makeTapeWord(TagString, 1<<60)
	if payloadOf(word) != 0 {
		t.Errorf("expected overflow bits to be masked off, got payload %d", payloadOf(word))
	}
}

func TestMatchingCloseIsSymmetric(t *testing.T) {
	// [ 1, [ 2 ], 3 ]
	// idx: 0=START_ARRAY 1=INT 2=(raw) 3=START_ARRAY 4=INT 5=(raw) 6=END_ARRAY 7=INT 8=(raw) 9=END_ARRAY
	tape := make([]uint64, 10)
	tape[0] = makeTapeWord(TagStartArray, 9)
	tape[1] = makeTapeWord(TagInt64, 0)
	tape[2] = 1
	tape[3] = makeTapeWord(TagStartArray, 6)
	tape[4] = makeTapeWord(TagInt64, 0)
	tape[5] = 2
	tape[6] = makeTapeWord(TagEndArray, 3)
	tape[7] = makeTapeWord(TagInt64, 0)
	tape[8] = 3
	tape[9] = makeTapeWord(TagEndArray, 0)

	for _, open := range []int{0, 3} {
		close := matchingClose(tape, open)
		back := int(payloadOf(tape[close]))
		if back != open {
			t.Errorf("payload(tape[payload(tape[%d])]) = %d, want %d", open, back, open)
		}
	}

	if got := afterIndex(tape, 0); got != 10 {
		t.Errorf("afterIndex(root array) = %d, want 10", got)
	}
	if got := afterIndex(tape, 3); got != 7 {
		t.Errorf("afterIndex(nested array) = %d, want 7", got)
	}
}
