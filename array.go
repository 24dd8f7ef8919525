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

// Array is a zero-copy view over a JSON array's elements, matching
// document.h's simdjson::dom::array. tapeIdx points at the array's
// START_ARRAY tape word.
type Array struct {
	doc     Document
	tapeIdx int
}

// ArrayIter walks an Array's immediate children in document order.
type ArrayIter struct {
	doc  Document
	idx  int
	end  int
}

// Begin returns an iterator positioned at the array's first element (or
// already exhausted, for an empty array).
func (a Array) Begin() ArrayIter {
	tape := a.doc.tape()
	return ArrayIter{doc: a.doc, idx: a.tapeIdx + 1, end: matchingClose(tape, a.tapeIdx)}
}

// HasNext reports whether Element/Next may still be called.
func (it ArrayIter) HasNext() bool { return it.idx < it.end }

// Element returns the child the iterator is currently positioned at.
func (it ArrayIter) Element() (Element, error) {
	if !it.HasNext() {
		return Element{}, ErrIncorrectType
	}
	return Element{doc: it.doc, tapeIdx: it.idx}, nil
}

// Next advances to the following sibling.
func (it ArrayIter) Next() ArrayIter {
	return ArrayIter{doc: it.doc, idx: afterIndex(it.doc.tape(), it.idx), end: it.end}
}

// Len counts the array's immediate elements by walking its tape span
// once. O(number of elements), not O(1); document.h's array has no
// cached size either, for the same reason (the tape format does not
// store a child count).
func (a Array) Len() int {
	n := 0
	for it := a.Begin(); it.HasNext(); it = it.Next() {
		n++
	}
	return n
}

// Elements collects every child Element into a slice, a convenience for
// callers that would rather range over a slice than drive ArrayIter by
// hand.
func (a Array) Elements() ([]Element, error) {
	out := make([]Element, 0, a.Len())
	for it := a.Begin(); it.HasNext(); it = it.Next() {
		e, err := it.Element()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// At returns the i'th element (0-based), matching document.h's
// array::at_pointer-style indexed access. It walks from the start of the
// array, so repeated indexed access is O(n); callers that need every
// element should use Begin/Elements instead.
func (a Array) At(i int) (Element, error) {
	if i < 0 {
		return Element{}, ErrIncorrectType
	}
	n := 0
	for it := a.Begin(); it.HasNext(); it = it.Next() {
		if n == i {
			return it.Element()
		}
		n++
	}
	return Element{}, ErrIncorrectType
}
