package port

import "context"

// Frame is a single encoded (JPEG) video frame.
type Frame []byte

// FrameSource delivers frames from a camera stream in capture order.
// ReadFrame blocks until a frame is available or the stream fails; a failed
// read leaves the source in an unusable state and the caller is expected to
// Close and Open again.
type FrameSource interface {
	Open(ctx context.Context) error
	ReadFrame(ctx context.Context) (Frame, error)
	Close() error
}
