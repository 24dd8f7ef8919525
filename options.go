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

import "fmt"

// ParserOption configures a Parser at construction time, following the
// functional-options pattern the teacher uses for its own parse options.
type ParserOption func(*Parser) error

// WithMaxDepth overrides the maximum container nesting depth a Parser
// accepts before reporting ErrDepthError. depth must be at least 1.
func WithMaxDepth(depth int) ParserOption {
	return func(p *Parser) error {
		if depth < 1 {
			return fmt.Errorf("tapejson: max depth must be >= 1, got %d", depth)
		}
		p.maxDepth = depth
		return nil
	}
}

// WithStage overrides the StructuralStage a Parser drives during Parse.
// This module ships only the pure-Go reference stage (DefaultStage), but
// the option exists so a vectorized implementation can be substituted
// without changing any other call site.
func WithStage(stage StructuralStage) ParserOption {
	return func(p *Parser) error {
		if stage == nil {
			return fmt.Errorf("tapejson: stage must not be nil")
		}
		p.stage = stage
		return nil
	}
}
