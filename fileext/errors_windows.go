//go:build windows

package fileext

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

func errnoKind(err error) (kind Kind) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return KindOther
	}

	switch errno {
	case windows.ERROR_OPERATION_ABORTED:
		return KindInterrupted
	case windows.ERROR_ACCESS_DENIED:
		return KindPermission
	case windows.ERROR_INVALID_HANDLE:
		return KindBadHandle
	case windows.ERROR_SEEK, windows.ERROR_NEGATIVE_SEEK:
		return KindInvalidOffset
	case windows.ERROR_DISK_FULL, windows.ERROR_HANDLE_DISK_FULL:
		return KindExhausted
	default:
		return KindOther
	}
}
