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

// Object is a zero-copy view over a JSON object's members, matching
// document.h's simdjson::dom::object. tapeIdx points at the object's
// START_OBJECT tape word. Members preserve the source document's order;
// this module does not deduplicate or re-sort repeated keys, and AtKey
// returns the first member with the requested name.
type Object struct {
	doc     Document
	tapeIdx int
}

// ObjectIter walks an Object's key/value pairs in document order. Each
// step covers one STRING key tape word followed by its value.
type ObjectIter struct {
	doc Document
	idx int
	end int
}

// Begin returns an iterator positioned at the object's first pair.
func (o Object) Begin() ObjectIter {
	tape := o.doc.tape()
	return ObjectIter{doc: o.doc, idx: o.tapeIdx + 1, end: matchingClose(tape, o.tapeIdx)}
}

// HasNext reports whether KeyValuePair/Next may still be called.
func (it ObjectIter) HasNext() bool { return it.idx < it.end }

// KeyValuePair returns the pair the iterator is currently positioned at.
func (it ObjectIter) KeyValuePair() (KeyValuePair, error) {
	if !it.HasNext() {
		return KeyValuePair{}, ErrIncorrectType
	}
	return KeyValuePair{doc: it.doc, keyIdx: it.idx}, nil
}

// Next advances past the current pair's key and value to the next key.
func (it ObjectIter) Next() ObjectIter {
	tape := it.doc.tape()
	valueIdx := afterIndex(tape, it.idx)
	nextKeyIdx := afterIndex(tape, valueIdx)
	return ObjectIter{doc: it.doc, idx: nextKeyIdx, end: it.end}
}

// Len counts the object's members by walking its tape span once.
func (o Object) Len() int {
	n := 0
	for it := o.Begin(); it.HasNext(); it = it.Next() {
		n++
	}
	return n
}

// Pairs collects every KeyValuePair into a slice.
func (o Object) Pairs() ([]KeyValuePair, error) {
	out := make([]KeyValuePair, 0, o.Len())
	for it := o.Begin(); it.HasNext(); it = it.Next() {
		kv, err := it.KeyValuePair()
		if err != nil {
			return nil, err
		}
		out = append(out, kv)
	}
	return out, nil
}

// AtKey returns the value of the first member named key, scanning
// members in document order. ErrIncorrectType (document.h's at_key uses
// a distinct "not found" signal, NO_SUCH_FIELD, folded here into
// ErrIncorrectType since this module keeps one closed error enumeration
// rather than growing it for a single accessor) is returned if no member
// matches.
func (o Object) AtKey(key string) (Element, error) {
	for it := o.Begin(); it.HasNext(); it = it.Next() {
		kv, err := it.KeyValuePair()
		if err != nil {
			return Element{}, err
		}
		if kv.Key() == key {
			return kv.Value(), nil
		}
	}
	return Element{}, ErrIncorrectType
}
