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

// KeyValuePair is one member of an Object: a key string and its value
// Element, matching document.h's simdjson::dom::key_value_pair.
// keyIdx points at the member's STRING key tape word; the value
// immediately follows it.
type KeyValuePair struct {
	doc    Document
	keyIdx int
}

// Key returns the member's key. Like Element.AsString, the returned
// string is a copy and does not alias the Document's string store.
func (kv KeyValuePair) Key() string {
	word := kv.doc.tape()[kv.keyIdx]
	b := stringAt(kv.doc.strings(), payloadOf(word))
	return string(b)
}

// Value returns the member's value as an Element.
func (kv KeyValuePair) Value() Element {
	return Element{doc: kv.doc, tapeIdx: afterIndex(kv.doc.tape(), kv.keyIdx)}
}
