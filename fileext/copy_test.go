package fileext_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/pluto-org-co/offsetio/fileext"
	"github.com/pluto-org-co/offsetio/random"
	"github.com/stretchr/testify/assert"
)

func Test_CopyRange(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		assertions := assert.New(t)

		payload := random.Bytes(2*fileext.DefaultChunkSize + 4096)
		src := tempFile(t, payload)
		dst := tempFile(t, nil)

		ctx, cancel := context.WithTimeout(context.TODO(), time.Minute)
		defer cancel()

		copied, err := fileext.CopyRange(ctx, dst, src, 0, 0, int64(len(payload)))
		if !assertions.Nil(err, "failed to copy range") {
			return
		}
		assertions.EqualValues(len(payload), copied, "should copy the whole range")

		readBack := make([]byte, len(payload))
		_, err = fileext.ReadFullOffset(dst, readBack, 0)
		if !assertions.Nil(err, "failed to read copied bytes") {
			return
		}
		assertions.Equal(payload, readBack, "bytes must survive the copy")
	})

	t.Run("ShiftedDestination", func(t *testing.T) {
		assertions := assert.New(t)

		payload := random.Bytes(4096)
		src := tempFile(t, payload)
		dst := tempFile(t, nil)

		ctx, cancel := context.WithTimeout(context.TODO(), time.Minute)
		defer cancel()

		const dstOffset = 512
		copied, err := fileext.CopyRange(ctx, dst, src, dstOffset, 0, int64(len(payload)))
		if !assertions.Nil(err, "failed to copy range") {
			return
		}
		assertions.EqualValues(len(payload), copied, "should copy the whole range")

		readBack := make([]byte, len(payload))
		_, err = fileext.ReadFullOffset(dst, readBack, dstOffset)
		if !assertions.Nil(err, "failed to read copied bytes") {
			return
		}
		assertions.Equal(payload, readBack, "bytes must land at the destination offset")
	})

	t.Run("ShortSource", func(t *testing.T) {
		assertions := assert.New(t)

		payload := random.Bytes(1024)
		src := tempFile(t, payload)
		dst := tempFile(t, nil)

		ctx, cancel := context.WithTimeout(context.TODO(), time.Minute)
		defer cancel()

		copied, err := fileext.CopyRange(ctx, dst, src, 0, 0, int64(len(payload))*4)
		assertions.Nil(err, "a short source must not fail")
		assertions.EqualValues(len(payload), copied, "should stop at the end of the source")
	})

	t.Run("Cancelled", func(t *testing.T) {
		assertions := assert.New(t)

		payload := random.Bytes(4096)
		src := tempFile(t, payload)
		dst := tempFile(t, nil)

		ctx, cancel := context.WithCancel(context.TODO())
		cancel()

		_, err := fileext.CopyRange(ctx, dst, src, 0, 0, int64(len(payload)))
		if !assertions.NotNil(err, "a cancelled context must abort the copy") {
			return
		}
		assertions.ErrorIs(err, context.Canceled, "should surface the context error")
	})
}

func Test_CopyRangeWorkers(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		assertions := assert.New(t)

		payload := random.Bytes(5*fileext.DefaultChunkSize + 100)
		src := tempFile(t, payload)
		dst := tempFile(t, nil)

		ctx, cancel := context.WithTimeout(context.TODO(), time.Minute)
		defer cancel()

		err := fileext.CopyRangeWorkers(4, ctx, dst, src, 0, 0, int64(len(payload)))
		if !assertions.Nil(err, "failed to copy range with workers") {
			return
		}

		readBack := make([]byte, len(payload))
		_, err = fileext.ReadFullOffset(dst, readBack, 0)
		if !assertions.Nil(err, "failed to read copied bytes") {
			return
		}
		assertions.Equal(payload, readBack, "bytes must survive the parallel copy")
	})

	t.Run("ShortSource", func(t *testing.T) {
		assertions := assert.New(t)

		payload := random.Bytes(1024)
		src := tempFile(t, payload)
		dst := tempFile(t, nil)

		ctx, cancel := context.WithTimeout(context.TODO(), time.Minute)
		defer cancel()

		err := fileext.CopyRangeWorkers(4, ctx, dst, src, 0, 0, int64(len(payload))*4)
		if !assertions.NotNil(err, "a short source must fail a sized parallel copy") {
			return
		}
		assertions.ErrorIs(err, io.ErrUnexpectedEOF, "should report the missing bytes")
	})
}
