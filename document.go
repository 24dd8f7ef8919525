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
	"encoding/json"
	"fmt"
	"strconv"
)

// Document is a read-only, zero-copy view over one successful parse. It
// borrows the owning Parser's tape and string store, so it is only valid
// until that Parser's next Parse call -- exactly the lifetime document.h
// documents for its own document/parser pair. Use DocResult (or copy out
// the values you need) if a Document must outlive the next parse.
type Document struct {
	parser *Parser
}

// Root returns an Element positioned at the document's single top-level
// value (tape index 1, immediately after the ROOT tape word at index 0).
func (d Document) Root() (Element, error) {
	if d.parser == nil || !d.parser.valid {
		return Element{}, errOrNil(ErrUninitialized)
	}
	return Element{doc: d, tapeIdx: 1}, nil
}

// MustRoot is Root, panicking on error. It is a convenience for tests and
// callers that have already checked Parser.IsValid.
func (d Document) MustRoot() Element {
	e, err := d.Root()
	if err != nil {
		panic(err)
	}
	return e
}

func (d Document) tape() []uint64 { return d.parser.tape }
func (d Document) strings() []byte { return d.parser.strings }

// PrintJSON re-serializes the document as compact JSON. It is a
// debugging and testing aid, grounded on the teacher's parsed_serialize.go
// (originally written for benchmarking round-trips), not a
// formatting-preserving round-trip: whitespace, string escape spelling
// and numeric literal spelling are not preserved; values, array/object
// structure and the source order of object members are.
func (d Document) PrintJSON() (string, error) {
	root, err := d.Root()
	if err != nil {
		return "", err
	}
	var sb []byte
	sb, err = appendElementJSON(sb, root)
	if err != nil {
		return "", err
	}
	return string(sb), nil
}

func appendElementJSON(dst []byte, e Element) ([]byte, error) {
	switch e.Kind() {
	case KindNull:
		return append(dst, "null"...), nil
	case KindBool:
		v, _ := e.AsBool()
		if v {
			return append(dst, "true"...), nil
		}
		return append(dst, "false"...), nil
	case KindInt64:
		v, _ := e.AsInt64()
		return strconv.AppendInt(dst, v, 10), nil
	case KindUint64:
		v, _ := e.AsUint64()
		return strconv.AppendUint(dst, v, 10), nil
	case KindDouble:
		v, _ := e.AsDouble()
		return strconv.AppendFloat(dst, v, 'g', -1, 64), nil
	case KindString:
		v, _ := e.AsString()
		q, err := json.Marshal(v)
		if err != nil {
			return dst, err
		}
		return append(dst, q...), nil
	case KindArray:
		arr, _ := e.AsArray()
		dst = append(dst, '[')
		first := true
		for it := arr.Begin(); it.HasNext(); it = it.Next() {
			if !first {
				dst = append(dst, ',')
			}
			first = false
			child, err := it.Element()
			if err != nil {
				return dst, err
			}
			dst, err = appendElementJSON(dst, child)
			if err != nil {
				return dst, err
			}
		}
		return append(dst, ']'), nil
	case KindObject:
		obj, _ := e.AsObject()
		dst = append(dst, '{')
		first := true
		for it := obj.Begin(); it.HasNext(); it = it.Next() {
			if !first {
				dst = append(dst, ',')
			}
			first = false
			kv, err := it.KeyValuePair()
			if err != nil {
				return dst, err
			}
			q, err := json.Marshal(kv.Key())
			if err != nil {
				return dst, err
			}
			dst = append(dst, q...)
			dst = append(dst, ':')
			dst, err = appendElementJSON(dst, kv.Value())
			if err != nil {
				return dst, err
			}
		}
		return append(dst, '}'), nil
	default:
		return dst, ErrTapeError
	}
}

// DumpRawTape renders every tape word in order as "index: TAG payload";
// an INT64/UINT64/DOUBLE word is rendered as "index: TAG next=0x..."
// with the raw bits of the word after it, and that raw-bits word still
// gets a line of its own. It is a diagnostic aid for tests and debugging grounded on the teacher's
// dump_raw_tape (parsed_serialize.go). It is not a stable serialization
// format and carries no compatibility guarantee across versions.
func (d Document) DumpRawTape() string {
	tape := d.tape()
	out := make([]byte, 0, len(tape)*16)
	for i, word := range tape {
		tag := tagOf(word)
		switch tag {
		case TagInt64, TagUint64, TagDouble:
			var next uint64
			if i+1 < len(tape) {
				next = tape[i+1]
			}
			out = append(out, fmt.Sprintf("%d: %s next=%#x\n", i, tag, next)...)
		default:
			out = append(out, fmt.Sprintf("%d: %s %d\n", i, tag, payloadOf(word))...)
		}
	}
	return string(out)
}
