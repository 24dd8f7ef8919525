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

// defaultMaxDepth is the default nesting limit applied when a Parser is
// built without WithMaxDepth, grounded on mcvoid-json's parser.go depth
// constant (1024): deep enough for any realistic document, shallow
// enough that a pathological `[[[[...` input fails fast instead of
// growing scopeOffsets without bound.
const defaultMaxDepth = 1024

// Parser owns the buffers a parse reuses across calls: the tape, the
// string store, and the per-depth scope-offset table. Reusing a Parser
// across many Parse calls is the common case (it is how simdjson-go's
// ParsedJson is meant to be used too) since it amortizes the allocations
// those buffers need.
//
// A Parser is not safe for concurrent use; callers needing concurrency
// should use one Parser per goroutine, exactly as document.h's
// parser::parse recommends for its C++ counterpart.
type Parser struct {
	stage    StructuralStage
	maxDepth int

	// capacity is the maximum input length, in bytes, this Parser is
	// prepared to handle without reallocating, set by Allocate. Zero
	// means no ceiling has been established yet: Parse grows buffers to
	// fit on demand rather than rejecting the input, matching the
	// package-level Parse/ParseString convenience functions that build a
	// fresh Parser per call (mirroring document.h's free-function
	// document::parse, which always allocates exactly enough capacity
	// for the input it is given and so can never report CAPACITY).
	capacity int

	tape              []uint64
	strings           []byte
	scopeOffsets      []uint64
	pendingStringBase uint64

	valid    bool
	errCode  ErrorCode
	document Document
}

// NewParser builds a Parser ready to Parse. Options configure nesting
// depth and the structural stage; both default when omitted.
func NewParser(opts ...ParserOption) (*Parser, error) {
	p := &Parser{
		stage:    DefaultStage(),
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	p.scopeOffsets = make([]uint64, p.maxDepth+1)
	p.document.parser = p
	return p, nil
}

// Allocate preallocates the Parser's internal buffers from capacity (a
// tape of capacity words, a string store of reserveStringCapacity(capacity)
// bytes) and sets capacity as the ceiling Parse enforces from then on: an
// input longer than capacity is rejected with ErrCapacity, matching
// document.h's init_parse ("if (len > capacity()) return error =
// CAPACITY"). The preallocation is not a worst-case bound: a document
// that needs more tape words than its length in bytes (`[1,2,3]`, 7
// bytes, uses 10 words) or more string-store space still grows the
// buffers during Parse. Allocate(0) sets no ceiling. A caller that knows its maximum document
// size ahead of time (a server reading length-prefixed requests, say)
// calls Allocate once up front, exactly how parsed_json.go's Allocate is
// meant to be used; a Parser that has never had Allocate called on it has
// no ceiling and grows on demand instead (see the capacity field comment).
func (p *Parser) Allocate(capacity int) {
	if cap(p.tape) < capacity {
		p.tape = make([]uint64, 0, capacity)
	}
	if want := reserveStringCapacity(capacity); cap(p.strings) < want {
		p.strings = make([]byte, 0, want)
	}
	p.capacity = capacity
}

// ParseBytes parses buf, copying it into a freshly padded internal
// buffer, and returns the resulting Document. The error, when non-nil,
// is an ErrorCode.
func (p *Parser) ParseBytes(buf []byte) (Document, error) {
	return p.parse(NewPaddedBuffer(buf))
}

// ParseString is a convenience wrapper over ParseBytes for callers
// holding a string rather than a []byte.
func (p *Parser) ParseString(s string) (Document, error) {
	return p.ParseBytes([]byte(s))
}

// ParsePadded parses a buffer the caller has already padded, avoiding a
// copy. buf must satisfy PaddedBuffer's Padding contract (NewPaddedBuffer
// and WrapPadded both do).
func (p *Parser) ParsePadded(buf PaddedBuffer) (Document, error) {
	return p.parse(buf)
}

func (p *Parser) parse(buf PaddedBuffer) (Document, error) {
	p.valid = false
	p.errCode = ErrUninitialized

	if p.capacity > 0 && buf.Len() > p.capacity {
		p.errCode = ErrCapacity
		return Document{}, errOrNil(p.errCode)
	}

	p.tape = p.tape[:0]
	p.strings = p.strings[:0]

	if buf.Len() == 0 {
		p.errCode = ErrEmpty
		return Document{}, errOrNil(p.errCode)
	}

	code := p.stage.Scan(buf, p, p.maxDepth)
	p.errCode = code
	if code != ErrSuccess {
		return Document{}, errOrNil(code)
	}
	p.valid = true
	p.document = Document{parser: p}
	return p.document, nil
}

// IsValid reports whether the most recent parse succeeded.
func (p *Parser) IsValid() bool { return p.valid }

// ErrorCode returns the ErrorCode of the most recent parse.
func (p *Parser) ErrorCode() ErrorCode { return p.errCode }

// ErrorMessage returns a human-readable description of ErrorCode().
func (p *Parser) ErrorMessage() string { return p.errCode.Error() }

// Document returns the Parser's Document handle. Its Root() succeeds only
// when the most recent parse succeeded; before any parse, or after a
// failed one, Root() reports ErrUninitialized.
func (p *Parser) Document() Document { return p.document }

// Parse is a package-level convenience that allocates a throwaway Parser
// for a single parse, mirroring the free function of the same name the
// teacher exposes in simdjson.go. Callers parsing repeatedly should build
// one Parser with NewParser and reuse it instead.
func Parse(buf []byte, opts ...ParserOption) (Document, error) {
	p, err := NewParser(opts...)
	if err != nil {
		return Document{}, err
	}
	return p.ParseBytes(buf)
}

// ParseString is the string counterpart of Parse.
func ParseString(s string, opts ...ParserOption) (Document, error) {
	return Parse([]byte(s), opts...)
}
