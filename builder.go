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

// Builder is the set of callbacks a StructuralStage drives, in strict
// document order, to turn a byte buffer into a tape. *Parser is the only
// implementation in this module, but the interface is exported so an
// alternative StructuralStage (a real SIMD indexer, for instance) can be
// written and tested against the same contract without access to
// Parser's unexported fields -- the "structural stage never aliases
// internal buffers" guidance from spec.md's DESIGN NOTES, expressed here
// as a byte-cursor API (StartString/AppendString*/EndString) instead of
// a raw pointer into the string store.
//
// Every method except AppendStringBytes (which has no result) reports
// success with true, exactly as the C++ callbacks
// this is grounded on return bool (document.h); the structural stage is
// expected to treat false as fatal and surface TapeError (or a more
// specific code) to the caller.
type Builder interface {
	StartDocument(depth int) bool
	EndDocument(depth int) bool
	StartObject(depth int) bool
	EndObject(depth int) bool
	StartArray(depth int) bool
	EndArray(depth int) bool
	TrueAtom() bool
	FalseAtom() bool
	NullAtom() bool
	// StartString reserves the STRING tape word and the 4-byte length
	// prefix in the string store, returning false only on allocation
	// failure.
	StartString() bool
	// AppendStringBytes appends already-unescaped bytes to the string
	// currently being built (the structural stage is responsible for
	// unescaping; see scan_string.go for this module's reference
	// implementation of that black box).
	AppendStringBytes(b []byte)
	// EndString finalizes the pending string: writes its length and a
	// trailing NUL.
	EndString() bool
	NumberInt64(v int64) bool
	NumberUint64(v uint64) bool
	NumberDouble(v float64) bool
}

// StartDocument implements Builder. depth is always 0; there is exactly
// one root per parse (streaming/ND-JSON across one parser state is a
// Non-goal, see spec.md §1).
func (p *Parser) StartDocument(depth int) bool {
	if depth < 0 || depth >= len(p.scopeOffsets) {
		return false
	}
	p.scopeOffsets[depth] = uint64(len(p.tape))
	p.tape = append(p.tape, makeTapeWord(TagRoot, 0))
	return true
}

// EndDocument implements Builder.
func (p *Parser) EndDocument(depth int) bool {
	if depth < 0 || depth >= len(p.scopeOffsets) {
		return false
	}
	open := p.scopeOffsets[depth]
	closeIdx := uint64(len(p.tape))
	p.tape[open] |= closeIdx
	p.tape = append(p.tape, makeTapeWord(TagRoot, open))
	return true
}

// StartObject implements Builder.
func (p *Parser) StartObject(depth int) bool {
	return p.startContainer(depth, TagStartObject)
}

// StartArray implements Builder.
func (p *Parser) StartArray(depth int) bool {
	return p.startContainer(depth, TagStartArray)
}

func (p *Parser) startContainer(depth int, tag Tag) bool {
	if depth < 0 || depth >= len(p.scopeOffsets) {
		return false
	}
	p.scopeOffsets[depth] = uint64(len(p.tape))
	p.tape = append(p.tape, makeTapeWord(tag, 0))
	return true
}

// EndObject implements Builder.
func (p *Parser) EndObject(depth int) bool {
	return p.endContainer(depth, TagEndObject)
}

// EndArray implements Builder.
func (p *Parser) EndArray(depth int) bool {
	return p.endContainer(depth, TagEndArray)
}

// endContainer writes the closing word with the open index as its
// payload, then patches the open word so its payload is the closing
// word's own tape index -- a symmetric open<->close pointer pair, per
// spec.md §3's invariant and the testable property in §8 ("payload(tape
// [payload(tape[i])]) == i"). This is deliberately not the teacher's
// convention (parsed_json.go's annotate_previousloc stores the index
// *after* the close word on the open side); see DESIGN.md.
func (p *Parser) endContainer(depth int, closeTag Tag) bool {
	if depth < 0 || depth >= len(p.scopeOffsets) {
		return false
	}
	open := p.scopeOffsets[depth]
	closeIdx := uint64(len(p.tape))
	p.tape = append(p.tape, makeTapeWord(closeTag, open))
	p.tape[open] |= closeIdx
	return true
}

// TrueAtom implements Builder.
func (p *Parser) TrueAtom() bool {
	p.tape = append(p.tape, makeTapeWord(TagTrue, 0))
	return true
}

// FalseAtom implements Builder.
func (p *Parser) FalseAtom() bool {
	p.tape = append(p.tape, makeTapeWord(TagFalse, 0))
	return true
}

// NullAtom implements Builder.
func (p *Parser) NullAtom() bool {
	p.tape = append(p.tape, makeTapeWord(TagNull, 0))
	return true
}

// StartString implements Builder. It writes the STRING tape word
// immediately (payload = the string store offset the length prefix will
// occupy) and reserves four zero bytes for that length prefix, mirroring
// document.h's on_start_string: "we advance the point, accounting for
// the fact that we have a NULL termination".
func (p *Parser) StartString() bool {
	offset := uint64(len(p.strings))
	p.tape = append(p.tape, makeTapeWord(TagString, offset))
	p.strings = append(p.strings, 0, 0, 0, 0)
	p.pendingStringBase = offset
	return true
}

// AppendStringBytes implements Builder.
func (p *Parser) AppendStringBytes(b []byte) {
	p.strings = append(p.strings, b...)
}

// EndString implements Builder. It back-patches the 4-byte little-endian
// length prefix reserved by StartString and appends the trailing NUL,
// per spec.md §3's string store layout.
func (p *Parser) EndString() bool {
	base := p.pendingStringBase
	contentStart := base + 4
	length := uint64(len(p.strings)) - contentStart
	if length > math.MaxUint32 {
		// Precondition violated: spec.md §9 requires inputs below 4 GiB.
		return false
	}
	putUint32LE(p.strings[base:base+4], uint32(length))
	p.strings = append(p.strings, 0)
	return true
}

// NumberInt64 implements Builder.
func (p *Parser) NumberInt64(v int64) bool {
	p.tape = append(p.tape, makeTapeWord(TagInt64, 0), uint64(v))
	return true
}

// NumberUint64 implements Builder.
func (p *Parser) NumberUint64(v uint64) bool {
	p.tape = append(p.tape, makeTapeWord(TagUint64, 0), v)
	return true
}

// NumberDouble implements Builder.
func (p *Parser) NumberDouble(v float64) bool {
	p.tape = append(p.tape, makeTapeWord(TagDouble, 0), math.Float64bits(v))
	return true
}

func putUint32LE(dst []byte, v uint32) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
}

func getUint32LE(src []byte) uint32 {
	return uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24
}
