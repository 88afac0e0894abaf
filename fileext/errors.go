// Copyright (C) 2025 ZedCloud Org.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

package fileext

import (
	"errors"
	"fmt"
	"os"
)

const (
	opRead  = "read_offset"
	opWrite = "write_offset"
)

// Kind classifies why the kernel refused a positional operation. Short
// transfers are successes and never produce a Kind.
type Kind int

const (
	// KindOther covers every failure the remaining kinds don't.
	KindOther Kind = iota
	// KindInterrupted means the call was aborted before any bytes moved,
	// typically by a signal. Retrying the same call is safe; this package
	// never retries on its own.
	KindInterrupted
	// KindPermission means the handle lacks the access required for the
	// direction of the transfer.
	KindPermission
	// KindBadHandle means the handle is closed, invalid, or not the kind of
	// file the kernel accepts positional I/O on.
	KindBadHandle
	// KindInvalidOffset means the kernel rejected the offset itself.
	KindInvalidOffset
	// KindExhausted means the write failed because storage is full, a quota
	// was hit, or the device reported a media error.
	KindExhausted
)

func (k Kind) String() (s string) {
	switch k {
	case KindInterrupted:
		return "interrupted"
	case KindPermission:
		return "permission denied"
	case KindBadHandle:
		return "bad handle"
	case KindInvalidOffset:
		return "invalid offset"
	case KindExhausted:
		return "device exhausted"
	default:
		return "i/o error"
	}
}

// Error is the failure value returned by ReadOffset and WriteOffset. Err
// preserves the raw platform code (an errno on unix, a Win32 error on
// Windows, or os.ErrClosed) for diagnostics and errors.Is checks.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() (s string) {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() (err error) {
	return e.Err
}

// Temporary reports whether retrying the exact same call may succeed.
func (e *Error) Temporary() (temporary bool) {
	return e.Kind == KindInterrupted
}

// KindOf returns the Kind carried by err, unwrapping as needed. Errors that
// did not originate in this package report KindOther.
func KindOf(err error) (kind Kind) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindOther
}

func classify(op string, err error) (classified *Error) {
	if errors.Is(err, os.ErrClosed) {
		return &Error{Op: op, Kind: KindBadHandle, Err: err}
	}
	return &Error{Op: op, Kind: errnoKind(err), Err: err}
}
