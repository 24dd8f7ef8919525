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

// ErrorCode is a closed enumeration of every outcome a parse or typed
// extraction can produce. It implements the error interface directly so
// it can be returned (and compared with errors.Is) wherever an ordinary
// error is expected; ErrSuccess is never returned as a non-nil error.
type ErrorCode int

const (
	// ErrSuccess indicates no error. Methods that return error report
	// ErrSuccess as a nil error, never as a non-nil ErrorCode.
	ErrSuccess ErrorCode = iota

	// ErrUninitialized indicates no parse has completed on this parser.
	ErrUninitialized

	// ErrCapacity indicates the input length exceeds allocated capacity.
	ErrCapacity

	// ErrMemAlloc indicates an allocation failed (buffer copy, tape, or
	// string store). The caller may retry with a smaller input or more
	// memory.
	ErrMemAlloc

	// ErrDepthError indicates nesting exceeded the configured maximum.
	ErrDepthError

	// ErrEmpty indicates the input contained no structural content.
	ErrEmpty

	// ErrTapeError indicates a structural/lexical failure reported by
	// the structural stage: an unexpected tape shape.
	ErrTapeError
	// ErrStringError indicates a malformed string literal.
	ErrStringError
	// ErrNumberError indicates a malformed number literal.
	ErrNumberError
	// ErrTAtomError indicates a malformed "true" literal.
	ErrTAtomError
	// ErrFAtomError indicates a malformed "false" literal.
	ErrFAtomError
	// ErrNAtomError indicates a malformed "null" literal.
	ErrNAtomError
	// ErrUTF8Error indicates invalid UTF-8 was encountered in a string.
	ErrUTF8Error
	// ErrUnexpectedChar indicates a structural character was found where
	// none was valid.
	ErrUnexpectedChar
	// ErrUnclosedString indicates a string literal was not terminated
	// before the end of input.
	ErrUnclosedString
	// ErrUnclosedStructure indicates an object or array was not closed
	// before the end of input.
	ErrUnclosedStructure

	// ErrIncorrectType indicates a typed extraction was attempted on an
	// element of a different kind.
	ErrIncorrectType
	// ErrNumberOutOfRange indicates a numeric extraction could not
	// represent the stored value without loss of range.
	ErrNumberOutOfRange
)

var errorMessages = map[ErrorCode]string{
	ErrSuccess:           "no error",
	ErrUninitialized:     "no parse has completed on this parser",
	ErrCapacity:          "input length exceeds allocated capacity",
	ErrMemAlloc:          "memory allocation failed",
	ErrDepthError:        "maximum nesting depth exceeded",
	ErrEmpty:             "input is empty",
	ErrTapeError:         "corrupt or unbalanced tape structure",
	ErrStringError:       "invalid string literal",
	ErrNumberError:       "invalid number literal",
	ErrTAtomError:        "invalid 'true' literal",
	ErrFAtomError:        "invalid 'false' literal",
	ErrNAtomError:        "invalid 'null' literal",
	ErrUTF8Error:         "invalid UTF-8 sequence",
	ErrUnexpectedChar:    "unexpected character",
	ErrUnclosedString:    "unterminated string literal",
	ErrUnclosedStructure: "unterminated object or array",
	ErrIncorrectType:     "element does not hold the requested type",
	ErrNumberOutOfRange:  "number does not fit the requested type",
}

// Error implements the error interface. ErrSuccess.Error() still returns a
// descriptive string so fmt.Stringer-based logging never panics; callers
// should test for ErrSuccess explicitly rather than printing it.
func (e ErrorCode) Error() string {
	if msg, ok := errorMessages[e]; ok {
		return msg
	}
	return "unknown error"
}

// errOrNil converts e to an error, mapping ErrSuccess to nil. Parser,
// Document.Root and the result carriers use it to turn a stored
// ErrorCode into either an inspectable error or a silent success (typed
// accessors return their ErrorCode constants directly), matching the result-carrier
// design rationale: callers may observe the ErrorCode directly (it is
// still available via the returned error's type) or simply treat it as
// any other Go error.
func errOrNil(e ErrorCode) error {
	if e == ErrSuccess {
		return nil
	}
	return e
}

// CodeOf extracts the ErrorCode from an error returned by this package. If
// err is nil, ErrSuccess is returned. If err was not produced by this
// package, ErrTapeError is returned as a conservative default.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrSuccess
	}
	if code, ok := err.(ErrorCode); ok {
		return code
	}
	return ErrTapeError
}
