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

// scanStage is the pure-Go reference StructuralStage: a conventional
// recursive-descent scanner over the raw bytes, with no attempt at the
// SIMD structural indexing simdjson's stage 1 performs (explicitly out
// of scope, spec.md §1). It exists so this module is a complete,
// runnable implementation of the tape/document/element API on its own.
type scanStage struct{}

// Scan implements StructuralStage.
func (scanStage) Scan(buf PaddedBuffer, b Builder, maxDepth int) ErrorCode {
	s := &scanner{data: buf.Bytes(), b: b, maxDepth: maxDepth}
	if !b.StartDocument(0) {
		return ErrMemAlloc
	}
	s.skipWS()
	if s.pos >= len(s.data) {
		return ErrEmpty
	}
	if code := s.parseValue(1); code != ErrSuccess {
		return code
	}
	s.skipWS()
	if s.pos != len(s.data) {
		return ErrUnexpectedChar
	}
	if !b.EndDocument(0) {
		return ErrMemAlloc
	}
	return ErrSuccess
}

// scanner holds the cursor state one Scan call threads through its
// recursive descent. depth arguments passed to parseValue/parseObject/
// parseArray double as the scopeOffsets index Builder's StartObject/
// StartArray/EndObject/EndArray expect.
type scanner struct {
	data     []byte
	b        Builder
	maxDepth int
	pos      int
}

func (s *scanner) skipWS() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner) parseValue(depth int) ErrorCode {
	if s.pos >= len(s.data) {
		return ErrUnexpectedChar
	}
	switch c := s.data[s.pos]; {
	case c == '{':
		return s.parseObject(depth)
	case c == '[':
		return s.parseArray(depth)
	case c == '"':
		return s.parseStringValue()
	case c == 't':
		return s.parseLiteral("true", ErrTAtomError, s.b.TrueAtom)
	case c == 'f':
		return s.parseLiteral("false", ErrFAtomError, s.b.FalseAtom)
	case c == 'n':
		return s.parseLiteral("null", ErrNAtomError, s.b.NullAtom)
	case c == '-' || isDigit(c):
		return s.scanNumber()
	default:
		return ErrUnexpectedChar
	}
}

func (s *scanner) parseLiteral(lit string, onMismatch ErrorCode, emit func() bool) ErrorCode {
	if s.pos+len(lit) > len(s.data) || string(s.data[s.pos:s.pos+len(lit)]) != lit {
		return onMismatch
	}
	s.pos += len(lit)
	if !emit() {
		return ErrMemAlloc
	}
	return ErrSuccess
}

func (s *scanner) parseStringValue() ErrorCode {
	if !s.b.StartString() {
		return ErrMemAlloc
	}
	if code := s.scanString(); code != ErrSuccess {
		return code
	}
	if !s.b.EndString() {
		return ErrMemAlloc
	}
	return ErrSuccess
}

func (s *scanner) parseObject(depth int) ErrorCode {
	if depth > s.maxDepth {
		return ErrDepthError
	}
	s.pos++ // '{'
	if !s.b.StartObject(depth) {
		return ErrMemAlloc
	}
	s.skipWS()
	if s.pos < len(s.data) && s.data[s.pos] == '}' {
		s.pos++
		if !s.b.EndObject(depth) {
			return ErrMemAlloc
		}
		return ErrSuccess
	}
	for {
		s.skipWS()
		if s.pos >= len(s.data) || s.data[s.pos] != '"' {
			return ErrUnexpectedChar
		}
		if code := s.parseStringValue(); code != ErrSuccess {
			return code
		}
		s.skipWS()
		if s.pos >= len(s.data) || s.data[s.pos] != ':' {
			return ErrUnexpectedChar
		}
		s.pos++
		s.skipWS()
		if code := s.parseValue(depth + 1); code != ErrSuccess {
			return code
		}
		s.skipWS()
		if s.pos >= len(s.data) {
			return ErrUnclosedStructure
		}
		switch s.data[s.pos] {
		case ',':
			s.pos++
		case '}':
			s.pos++
			if !s.b.EndObject(depth) {
				return ErrMemAlloc
			}
			return ErrSuccess
		default:
			return ErrUnexpectedChar
		}
	}
}

func (s *scanner) parseArray(depth int) ErrorCode {
	if depth > s.maxDepth {
		return ErrDepthError
	}
	s.pos++ // '['
	if !s.b.StartArray(depth) {
		return ErrMemAlloc
	}
	s.skipWS()
	if s.pos < len(s.data) && s.data[s.pos] == ']' {
		s.pos++
		if !s.b.EndArray(depth) {
			return ErrMemAlloc
		}
		return ErrSuccess
	}
	for {
		s.skipWS()
		if code := s.parseValue(depth + 1); code != ErrSuccess {
			return code
		}
		s.skipWS()
		if s.pos >= len(s.data) {
			return ErrUnclosedStructure
		}
		switch s.data[s.pos] {
		case ',':
			s.pos++
		case ']':
			s.pos++
			if !s.b.EndArray(depth) {
				return ErrMemAlloc
			}
			return ErrSuccess
		default:
			return ErrUnexpectedChar
		}
	}
}
