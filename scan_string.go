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

import "unicode/utf8"

// scanString lexes a JSON string literal starting at s.pos (the opening
// quote), unescaping it into b's pending string (StartString must already
// have been called by the caller) and advancing s.pos past the closing
// quote.
//
// Like number lexing, spec.md §1 treats string unescaping as a black box
// this module must satisfy functionally without tuning; this is a plain
// byte-at-a-time unescaper, not the SIMD/table-driven approach a real
// structural stage would use.
func (s *scanner) scanString() ErrorCode {
	s.pos++ // opening quote
	flushFrom := s.pos

	flush := func(upto int) {
		if upto > flushFrom {
			s.b.AppendStringBytes(s.data[flushFrom:upto])
		}
	}

	for {
		if s.pos >= len(s.data) {
			return ErrUnclosedString
		}
		c := s.data[s.pos]
		switch {
		case c == '"':
			flush(s.pos)
			s.pos++
			return ErrSuccess
		case c == '\\':
			flush(s.pos)
			s.pos++
			if s.pos >= len(s.data) {
				return ErrUnclosedString
			}
			esc := s.data[s.pos]
			switch esc {
			case '"':
				s.b.AppendStringBytes([]byte{'"'})
			case '\\':
				s.b.AppendStringBytes([]byte{'\\'})
			case '/':
				s.b.AppendStringBytes([]byte{'/'})
			case 'b':
				s.b.AppendStringBytes([]byte{'\b'})
			case 'f':
				s.b.AppendStringBytes([]byte{'\f'})
			case 'n':
				s.b.AppendStringBytes([]byte{'\n'})
			case 'r':
				s.b.AppendStringBytes([]byte{'\r'})
			case 't':
				s.b.AppendStringBytes([]byte{'\t'})
			case 'u':
				r, n, code := s.scanUnicodeEscape(s.pos + 1)
				if code != ErrSuccess {
					return code
				}
				var buf [utf8.UTFMax]byte
				w := utf8.EncodeRune(buf[:], r)
				s.b.AppendStringBytes(buf[:w])
				s.pos += n
			default:
				return ErrStringError
			}
			s.pos++
			flushFrom = s.pos
		case c < 0x20:
			return ErrStringError
		default:
			_, size := decodeRuneInString(s.data, s.pos)
			if size == 0 {
				return ErrUTF8Error
			}
			s.pos += size
		}
	}
}

// scanUnicodeEscape decodes a \uXXXX escape (and, for a high surrogate,
// the \uXXXX low surrogate that must follow it) starting at the first
// hex digit. It returns the decoded rune and the number of bytes consumed
// after the leading "u" (so the caller's s.pos, which points at "u",
// advances by exactly n).
func (s *scanner) scanUnicodeEscape(hexStart int) (rune, int, ErrorCode) {
	r1, ok := parseHex4(s.data, hexStart)
	if !ok {
		return 0, 0, ErrStringError
	}
	if r1 < 0xD800 || r1 > 0xDBFF {
		return rune(r1), 4, ErrSuccess
	}
	// High surrogate: a low surrogate escape must follow immediately.
	if hexStart+4+2 > len(s.data) || s.data[hexStart+4] != '\\' || s.data[hexStart+4+1] != 'u' {
		return 0, 0, ErrStringError
	}
	r2, ok := parseHex4(s.data, hexStart+6)
	if !ok || r2 < 0xDC00 || r2 > 0xDFFF {
		return 0, 0, ErrStringError
	}
	combined := 0x10000 + (r1-0xD800)<<10 + (r2 - 0xDC00)
	return rune(combined), 10, ErrSuccess
}

func parseHex4(data []byte, pos int) (uint32, bool) {
	if pos+4 > len(data) {
		return 0, false
	}
	var v uint32
	for i := 0; i < 4; i++ {
		c := data[pos+i]
		var d uint32
		switch {
		case c >= '0' && c <= '9':
			d = uint32(c - '0')
		case c >= 'a' && c <= 'f':
			d = uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = uint32(c-'A') + 10
		default:
			return 0, false
		}
		v = v<<4 | d
	}
	return v, true
}

// decodeRuneInString is utf8.DecodeRune restricted to this module's needs
// (we only care about the consumed size, and treat utf8.RuneError with
// size 1 as an error rather than a replacement character).
func decodeRuneInString(data []byte, pos int) (rune, int) {
	r, size := utf8.DecodeRune(data[pos:])
	if r == utf8.RuneError && size <= 1 {
		return r, 0
	}
	return r, size
}
