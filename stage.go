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

import "github.com/klauspost/cpuid/v2"

// StructuralStage turns a padded input buffer into tape words and string
// store entries by driving a Builder. It stands in for what simdjson
// calls "stage 1" (structural indexing) and "stage 2" (tape building)
// combined into one pass; this module ships exactly one implementation,
// scanStage, a plain byte-at-a-time scanner. Runtime CPU-feature
// dispatch between multiple hand-written SIMD stages is explicitly out
// of scope (spec.md §1); StructuralStage exists so that boundary is a
// normal Go interface rather than a hard-coded call, and so a future
// SIMD implementation can be added without touching Parser.
type StructuralStage interface {
	// Scan consumes buf.Bytes() (buf.Padded() is available for
	// implementations that read in fixed-width chunks) and reports
	// ErrSuccess, or a specific lexical/structural ErrorCode, after
	// driving b with zero or more callbacks. maxDepth bounds container
	// nesting; Scan must report ErrDepthError rather than call b past
	// that depth.
	Scan(buf PaddedBuffer, b Builder, maxDepth int) ErrorCode
}

// DefaultStage returns the structural stage used when a Parser is built
// without WithStage: the pure-Go reference scanner.
func DefaultStage() StructuralStage {
	return scanStage{}
}

// HardwareAccelerationAvailable reports whether the running CPU exposes
// the vector extensions a SIMD structural-indexing stage would want
// (AVX2 or better). It is informational only -- this module has no such
// stage to dispatch to -- and is grounded on the teacher's own
// getSupportedArchitecture probe (simdjson_amd64.go), kept alive here as
// a capability check library callers can use to decide whether to invest
// in a real vectorized StructuralStage of their own.
func HardwareAccelerationAvailable() bool {
	return cpuid.CPU.Supports(cpuid.AVX2)
}
