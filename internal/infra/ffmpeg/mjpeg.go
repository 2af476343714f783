package ffmpeg

import (
	"bufio"
	"bytes"
	"fmt"
)

const (
	jpegSOI = 0xD8 // start of image, preceded by 0xFF
	jpegEOI = 0xD9 // end of image, preceded by 0xFF
)

// readJPEG extracts the next complete JPEG image from a concatenated MJPEG
// byte stream: bytes up to the SOI marker are discarded, then everything
// through the matching EOI marker is returned.
func readJPEG(r *bufio.Reader) ([]byte, error) {
	if err := skipToSOI(r); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte(0xFF)
	buf.WriteByte(jpegSOI)

	prev := byte(0)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("truncated jpeg: %w", err)
		}
		buf.WriteByte(b)
		if prev == 0xFF && b == jpegEOI {
			return buf.Bytes(), nil
		}
		prev = b
	}
}

func skipToSOI(r *bufio.Reader) error {
	prev := byte(0)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return fmt.Errorf("scan for jpeg start: %w", err)
		}
		if prev == 0xFF && b == jpegSOI {
			return nil
		}
		prev = b
	}
}
