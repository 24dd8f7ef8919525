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

// DocResult pairs an owned Document with the ErrorCode of the parse that
// produced it, mirroring document.h's doc_result: a parse that owns its
// Parser (built just for this call, via ParseOwned) and whose Document
// is therefore valid for as
// long as the caller holds the result.
type DocResult struct {
	Doc  Document
	Code ErrorCode
}

// ParseOwned parses buf with a fresh, single-use Parser and returns a
// DocResult, matching simdjson's build_parsed_json-style entry point
// that hands back both a parser-owning document and its status in one
// value rather than a (value, error) pair.
func ParseOwned(buf []byte, opts ...ParserOption) DocResult {
	p, err := NewParser(opts...)
	if err != nil {
		return DocResult{Code: ErrMemAlloc}
	}
	doc, parseErr := p.ParseBytes(buf)
	return DocResult{Doc: doc, Code: CodeOf(parseErr)}
}

// Ok reports whether the parse succeeded.
func (r DocResult) Ok() bool { return r.Code == ErrSuccess }

// Error returns the result's ErrorCode as an error, or nil on success.
func (r DocResult) Error() error { return errOrNil(r.Code) }

// Unwrap is the inspecting accessor: it returns the Document alongside an
// error a caller can check, the non-panicking counterpart to Must.
func (r DocResult) Unwrap() (Document, error) {
	return r.Doc, r.Error()
}

// Must returns the Document, panicking if the parse failed.
func (r DocResult) Must() Document {
	if !r.Ok() {
		panic(r.Code)
	}
	return r.Doc
}

// DocRefResult pairs a borrowed Document (one produced by a long-lived,
// caller-owned Parser) with an ErrorCode, mirroring document.h's
// doc_ref_result. Unlike DocResult, the Document here is only valid until
// the owning Parser's next Parse call.
type DocRefResult struct {
	Doc  Document
	Code ErrorCode
}

// ParseInto parses buf using parser (reusing its buffers) and returns a
// DocRefResult referencing parser's internal state.
func ParseInto(parser *Parser, buf []byte) DocRefResult {
	doc, err := parser.ParseBytes(buf)
	return DocRefResult{Doc: doc, Code: CodeOf(err)}
}

// Ok reports whether the parse succeeded.
func (r DocRefResult) Ok() bool { return r.Code == ErrSuccess }

// Error returns the result's ErrorCode as an error, or nil on success.
func (r DocRefResult) Error() error { return errOrNil(r.Code) }

// Unwrap is the inspecting accessor: it returns the Document alongside an
// error a caller can check, the non-panicking counterpart to Must.
func (r DocRefResult) Unwrap() (Document, error) {
	return r.Doc, r.Error()
}

// Must returns the Document, panicking if the parse failed.
func (r DocRefResult) Must() Document {
	if !r.Ok() {
		panic(r.Code)
	}
	return r.Doc
}
