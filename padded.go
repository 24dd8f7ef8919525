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

// Padding is the number of extra, readable-but-unconstrained trailing
// bytes a structural stage is allowed to read past the logical end of
// its input. It is fixed at the widest SIMD word a structural stage
// implementation is expected to load in one shot (AVX2, 32 bytes,
// rounded up to a 64-byte cache line), matching the teacher's own
// padding assumptions for its amd64 stage (find_structural_bits_amd64.go
// and friends, not carried into this module -- see DESIGN.md). The
// reference scanner in this module never reads into the padding, but the
// constant is part of the public contract so a real SIMD StructuralStage
// could be dropped in later without changing caller code.
const Padding = 64

// PaddedBuffer is a byte buffer guaranteed to have Padding extra,
// allocated bytes after its logical content. It is the zero-copy
// counterpart to Parser.ParseBytes/ParseString (which copy into a fresh
// PaddedBuffer themselves): callers that already own a buffer with spare
// capacity can wrap it here once and reuse it across repeated parses
// without another allocation.
type PaddedBuffer struct {
	buf []byte // length n+Padding
	n   int    // logical length
}

// NewPaddedBuffer copies src into a freshly allocated buffer with Padding
// trailing bytes.
func NewPaddedBuffer(src []byte) PaddedBuffer {
	buf := make([]byte, len(src)+Padding)
	copy(buf, src)
	return PaddedBuffer{buf: buf, n: len(src)}
}

// WrapPadded adapts an existing buffer as a PaddedBuffer without copying.
// buf must have at least n+Padding bytes of capacity; WrapPadded grows
// its length (not its capacity) to satisfy that, zeroing the newly
// exposed tail. It panics if buf is too small to safely provide Padding
// trailing bytes, since a structural stage that reads past a short
// buffer would be a memory-safety bug, not a recoverable parse error.
func WrapPadded(buf []byte, n int) PaddedBuffer {
	if cap(buf) < n+Padding {
		panic("tapejson: buffer too small to satisfy Padding guarantee")
	}
	buf = buf[:n+Padding]
	for i := n; i < len(buf); i++ {
		buf[i] = 0
	}
	return PaddedBuffer{buf: buf, n: n}
}

// Len returns the logical (unpadded) length.
func (p PaddedBuffer) Len() int { return p.n }

// Bytes returns the logical content, excluding padding.
func (p PaddedBuffer) Bytes() []byte { return p.buf[:p.n] }

// Padded returns the full buffer, including the trailing Padding bytes.
func (p PaddedBuffer) Padded() []byte { return p.buf }
