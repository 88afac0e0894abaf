//go:build unix

package fileext

import (
	"errors"

	"golang.org/x/sys/unix"
)

func errnoKind(err error) (kind Kind) {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return KindOther
	}

	switch errno {
	case unix.EINTR:
		return KindInterrupted
	case unix.EACCES, unix.EPERM:
		return KindPermission
	case unix.EBADF, unix.ESPIPE:
		return KindBadHandle
	case unix.EINVAL, unix.ENXIO, unix.EOVERFLOW:
		return KindInvalidOffset
	case unix.ENOSPC, unix.EDQUOT, unix.EIO:
		return KindExhausted
	default:
		return KindOther
	}
}
