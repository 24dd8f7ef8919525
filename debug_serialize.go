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
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

// DebugDump is a compressed snapshot of a Document's tape and string
// store, for attaching to bug reports or golden test fixtures. It is
// explicitly not a persisted/canonical format: there is no
// forward-compatibility guarantee across versions of this module, the
// way the teacher's own Serializer warns against trusting serialized
// output across simdjson-go releases (parsed_serialize.go).
//
// The tape is compressed with s2 (fast, grounded on the teacher's
// default s2.Writer use for its values stream) and the string store with
// zstd (better ratio for text, grounded on the teacher's zstd use for
// its deduplicated string stream).
type DebugDump struct {
	tape    []byte // s2-compressed, little-endian uint64 words
	strings []byte // zstd-compressed raw string-store bytes
	words   int
}

// DumpDebug compresses d's tape and string store into a DebugDump.
func (d Document) DumpDebug() (DebugDump, error) {
	tape := d.tape()
	raw := make([]byte, len(tape)*8)
	for i, w := range tape {
		binary.LittleEndian.PutUint64(raw[i*8:], w)
	}

	var tapeBuf bytes.Buffer
	tw := s2.NewWriter(&tapeBuf)
	if _, err := tw.Write(raw); err != nil {
		return DebugDump{}, fmt.Errorf("tapejson: compressing tape: %w", err)
	}
	if err := tw.Close(); err != nil {
		return DebugDump{}, fmt.Errorf("tapejson: compressing tape: %w", err)
	}

	var strBuf bytes.Buffer
	zw, err := zstd.NewWriter(&strBuf, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return DebugDump{}, fmt.Errorf("tapejson: creating zstd encoder: %w", err)
	}
	if _, err := zw.Write(d.strings()); err != nil {
		return DebugDump{}, fmt.Errorf("tapejson: compressing strings: %w", err)
	}
	if err := zw.Close(); err != nil {
		return DebugDump{}, fmt.Errorf("tapejson: compressing strings: %w", err)
	}

	return DebugDump{tape: tapeBuf.Bytes(), strings: strBuf.Bytes(), words: len(tape)}, nil
}

// WriteTo writes dd in a simple length-prefixed container: a 24-byte
// header of three little-endian uint64s (word count, compressed tape
// length, compressed string-store length), then the compressed tape
// bytes, then the compressed string-store bytes. It satisfies
// io.WriterTo for convenience.
func (dd DebugDump) WriteTo(w io.Writer) (int64, error) {
	var hdr [8 + 8 + 8]byte
	binary.LittleEndian.PutUint64(hdr[0:], uint64(dd.words))
	binary.LittleEndian.PutUint64(hdr[8:], uint64(len(dd.tape)))
	binary.LittleEndian.PutUint64(hdr[16:], uint64(len(dd.strings)))
	n, err := w.Write(hdr[:])
	total := int64(n)
	if err != nil {
		return total, err
	}
	n, err = w.Write(dd.tape)
	total += int64(n)
	if err != nil {
		return total, err
	}
	n, err = w.Write(dd.strings)
	total += int64(n)
	return total, err
}

// ReadDebugDump reads back a DebugDump written by WriteTo, decompressing
// it into a standalone Document backed by its own tape/string buffers,
// held by a fresh internal Parser that no caller's Parser shares.
func ReadDebugDump(r io.Reader) (Document, error) {
	var hdr [8 + 8 + 8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return Document{}, fmt.Errorf("tapejson: reading dump header: %w", err)
	}
	words := binary.LittleEndian.Uint64(hdr[0:])
	tapeLen := binary.LittleEndian.Uint64(hdr[8:])
	strLen := binary.LittleEndian.Uint64(hdr[16:])

	compTape := make([]byte, tapeLen)
	if _, err := io.ReadFull(r, compTape); err != nil {
		return Document{}, fmt.Errorf("tapejson: reading tape: %w", err)
	}
	compStrings := make([]byte, strLen)
	if _, err := io.ReadFull(r, compStrings); err != nil {
		return Document{}, fmt.Errorf("tapejson: reading strings: %w", err)
	}

	raw, err := io.ReadAll(s2.NewReader(bytes.NewReader(compTape)))
	if err != nil {
		return Document{}, fmt.Errorf("tapejson: decompressing tape: %w", err)
	}
	if uint64(len(raw)) != words*8 {
		return Document{}, ErrTapeError
	}
	tape := make([]uint64, words)
	for i := range tape {
		tape[i] = binary.LittleEndian.Uint64(raw[i*8:])
	}

	zr, err := zstd.NewReader(bytes.NewReader(compStrings))
	if err != nil {
		return Document{}, fmt.Errorf("tapejson: creating zstd decoder: %w", err)
	}
	defer zr.Close()
	strs, err := io.ReadAll(zr)
	if err != nil {
		return Document{}, fmt.Errorf("tapejson: decompressing strings: %w", err)
	}

	p := &Parser{tape: tape, strings: strs, valid: true, errCode: ErrSuccess}
	doc := Document{parser: p}
	p.document = doc
	return doc, nil
}
