package ffmpeg

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jpegBytes(payload ...byte) []byte {
	out := []byte{0xFF, 0xD8}
	out = append(out, payload...)
	return append(out, 0xFF, 0xD9)
}

func TestReadJPEGSingleFrame(t *testing.T) {
	frame := jpegBytes(0x01, 0x02, 0x03)
	r := bufio.NewReader(bytes.NewReader(frame))

	got, err := readJPEG(r)
	require.NoError(t, err)
	assert.Equal(t, frame, got)
}

func TestReadJPEGConsecutiveFrames(t *testing.T) {
	first := jpegBytes(0xAA)
	second := jpegBytes(0xBB, 0xCC)
	r := bufio.NewReader(bytes.NewReader(append(append([]byte{}, first...), second...)))

	got1, err := readJPEG(r)
	require.NoError(t, err)
	assert.Equal(t, first, got1)

	got2, err := readJPEG(r)
	require.NoError(t, err)
	assert.Equal(t, second, got2)
}

func TestReadJPEGSkipsLeadingGarbage(t *testing.T) {
	frame := jpegBytes(0x10)
	stream := append([]byte{0x00, 0x13, 0x37}, frame...)
	r := bufio.NewReader(bytes.NewReader(stream))

	got, err := readJPEG(r)
	require.NoError(t, err)
	assert.Equal(t, frame, got)
}

func TestReadJPEGTruncatedStream(t *testing.T) {
	r := bufio.NewReader(bytes.NewReader([]byte{0xFF, 0xD8, 0x01, 0x02}))

	_, err := readJPEG(r)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadJPEGEmptyStream(t *testing.T) {
	r := bufio.NewReader(bytes.NewReader(nil))

	_, err := readJPEG(r)
	assert.ErrorIs(t, err, io.EOF)
}
