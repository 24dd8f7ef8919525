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

import "math"

// Element is a zero-copy, read-only handle to one value on a Document's
// tape: a (document, tape index) pair, matching document.h's
// simdjson::dom::element. Copying an Element is cheap and copies the
// handle only, never the underlying value.
type Element struct {
	doc     Document
	tapeIdx int
}

// Kind reports the JSON value kind this Element is positioned at.
func (e Element) Kind() Kind {
	return kindOf(e.doc.tape()[e.tapeIdx])
}

// IsNull reports whether this Element holds JSON null.
func (e Element) IsNull() bool { return e.Kind() == KindNull }

// Next returns the Element immediately following this one on the tape in
// document order -- the sibling an array/object iterator would advance
// to, or (at the root) the ROOT closing word. It is mainly useful for
// manual tape walks and debugging; AsArray/AsObject iteration is the
// normal way to traverse children.
func (e Element) Next() Element {
	return Element{doc: e.doc, tapeIdx: afterIndex(e.doc.tape(), e.tapeIdx)}
}

// AsBool returns the element's value as a bool. ErrIncorrectType is
// returned if the element does not hold a JSON boolean.
func (e Element) AsBool() (bool, error) {
	word := e.doc.tape()[e.tapeIdx]
	switch tagOf(word) {
	case TagTrue:
		return true, nil
	case TagFalse:
		return false, nil
	default:
		return false, ErrIncorrectType
	}
}

// MustBool is AsBool, panicking on error.
func (e Element) MustBool() bool {
	v, err := e.AsBool()
	if err != nil {
		panic(err)
	}
	return v
}

// AsInt64 returns the element's value as int64.
//
// A stored UINT64 converts successfully provided it does not exceed
// math.MaxInt64; this follows document.h's documented intent for
// as_int64 on a UINT64-tagged element (its literal C++ bounds check,
// `> std::numeric_limits<uint64_t>::max()`, can never be true and is
// treated there as a latent bug -- this module applies the evidently
// intended bound instead, `> math.MaxInt64`).
func (e Element) AsInt64() (int64, error) {
	word := e.doc.tape()[e.tapeIdx]
	switch tagOf(word) {
	case TagInt64:
		return int64(e.doc.tape()[e.tapeIdx+1]), nil
	case TagUint64:
		u := e.doc.tape()[e.tapeIdx+1]
		if u > math.MaxInt64 {
			return 0, ErrNumberOutOfRange
		}
		return int64(u), nil
	default:
		return 0, ErrIncorrectType
	}
}

// MustInt64 is AsInt64, panicking on error.
func (e Element) MustInt64() int64 {
	v, err := e.AsInt64()
	if err != nil {
		panic(err)
	}
	return v
}

// AsUint64 returns the element's value as uint64. A stored INT64 must be
// non-negative to convert.
func (e Element) AsUint64() (uint64, error) {
	word := e.doc.tape()[e.tapeIdx]
	switch tagOf(word) {
	case TagUint64:
		return e.doc.tape()[e.tapeIdx+1], nil
	case TagInt64:
		v := int64(e.doc.tape()[e.tapeIdx+1])
		if v < 0 {
			return 0, ErrNumberOutOfRange
		}
		return uint64(v), nil
	default:
		return 0, ErrIncorrectType
	}
}

// MustUint64 is AsUint64, panicking on error.
func (e Element) MustUint64() uint64 {
	v, err := e.AsUint64()
	if err != nil {
		panic(err)
	}
	return v
}

// AsDouble returns the element's value as float64, widening an INT64 or
// UINT64 element rather than rejecting it (document.h's as_double does
// the same: its early "return (double)payload" on the INT64 branch makes
// the sign-guarded code that follows unreachable, which this module
// takes as the intended behavior -- every INT64 value converts, negative
// or not).
func (e Element) AsDouble() (float64, error) {
	word := e.doc.tape()[e.tapeIdx]
	switch tagOf(word) {
	case TagDouble:
		return math.Float64frombits(e.doc.tape()[e.tapeIdx+1]), nil
	case TagInt64:
		return float64(int64(e.doc.tape()[e.tapeIdx+1])), nil
	case TagUint64:
		return float64(e.doc.tape()[e.tapeIdx+1]), nil
	default:
		return 0, ErrIncorrectType
	}
}

// MustDouble is AsDouble, panicking on error.
func (e Element) MustDouble() float64 {
	v, err := e.AsDouble()
	if err != nil {
		panic(err)
	}
	return v
}

// AsString returns the element's value as a string. The returned string
// is a copy of the string-store bytes and does not alias the Document's
// string store, so it stays valid after the owning Parser is reused for
// another parse.
func (e Element) AsString() (string, error) {
	word := e.doc.tape()[e.tapeIdx]
	if tagOf(word) != TagString {
		return "", ErrIncorrectType
	}
	b := stringAt(e.doc.strings(), payloadOf(word))
	return string(b), nil
}

// MustString is AsString, panicking on error.
func (e Element) MustString() string {
	v, err := e.AsString()
	if err != nil {
		panic(err)
	}
	return v
}

// AsArray returns an Array view over this element's children.
func (e Element) AsArray() (Array, error) {
	word := e.doc.tape()[e.tapeIdx]
	if tagOf(word) != TagStartArray {
		return Array{}, ErrIncorrectType
	}
	return Array{doc: e.doc, tapeIdx: e.tapeIdx}, nil
}

// MustArray is AsArray, panicking on error.
func (e Element) MustArray() Array {
	v, err := e.AsArray()
	if err != nil {
		panic(err)
	}
	return v
}

// AsObject returns an Object view over this element's members.
func (e Element) AsObject() (Object, error) {
	word := e.doc.tape()[e.tapeIdx]
	if tagOf(word) != TagStartObject {
		return Object{}, ErrIncorrectType
	}
	return Object{doc: e.doc, tapeIdx: e.tapeIdx}, nil
}

// MustObject is AsObject, panicking on error.
func (e Element) MustObject() Object {
	v, err := e.AsObject()
	if err != nil {
		panic(err)
	}
	return v
}

// Interface decodes the element and every descendant into the dynamic Go
// shapes a standard library JSON decoder produces (nil, bool, string,
// []interface{}, map[string]interface{}), except that numbers keep their
// tape type (int64, uint64 or float64) instead of all becoming float64,
// for callers that want an ordinary Go value
// instead of continued zero-copy access. This is a convenience supplementing
// the typed accessors, grounded on document.h's implicit conversion
// operators (operator int64_t, operator std::string, ...) collapsed into
// one dynamically typed escape hatch.
func (e Element) Interface() (interface{}, error) {
	switch e.Kind() {
	case KindNull:
		return nil, nil
	case KindBool:
		return e.AsBool()
	case KindInt64:
		return e.AsInt64()
	case KindUint64:
		return e.AsUint64()
	case KindDouble:
		return e.AsDouble()
	case KindString:
		return e.AsString()
	case KindArray:
		arr, err := e.AsArray()
		if err != nil {
			return nil, err
		}
		out := make([]interface{}, 0, arr.Len())
		for it := arr.Begin(); it.HasNext(); it = it.Next() {
			child, err := it.Element()
			if err != nil {
				return nil, err
			}
			v, err := child.Interface()
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case KindObject:
		obj, err := e.AsObject()
		if err != nil {
			return nil, err
		}
		out := make(map[string]interface{}, obj.Len())
		for it := obj.Begin(); it.HasNext(); it = it.Next() {
			kv, err := it.KeyValuePair()
			if err != nil {
				return nil, err
			}
			v, err := kv.Value().Interface()
			if err != nil {
				return nil, err
			}
			out[kv.Key()] = v
		}
		return out, nil
	default:
		return nil, ErrTapeError
	}
}
