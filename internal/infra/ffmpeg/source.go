package ffmpeg

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/H-Ngomijana/ERM/internal/domain/port"
	"go.uber.org/zap"
)

// Source reads JPEG frames from an RTSP stream by piping it through an
// ffmpeg child process (image2pipe/mjpeg). Frames arrive in capture order
// on the process stdout as a concatenated JPEG stream.
type Source struct {
	streamURL string
	logger    *zap.Logger

	mu     sync.Mutex
	cmd    *exec.Cmd
	stdout io.ReadCloser
	reader *bufio.Reader
}

func NewSource(streamURL string, logger *zap.Logger) *Source {
	return &Source{streamURL: streamURL, logger: logger}
}

func (s *Source) Open(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd != nil {
		return fmt.Errorf("source already open")
	}

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-rtsp_transport", "tcp",
		"-i", s.streamURL,
		"-f", "image2pipe",
		"-vcodec", "mjpeg",
		"-q:v", "5",
		"-an",
		"-loglevel", "error",
		"pipe:1",
	)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("ffmpeg stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start ffmpeg: %w", err)
	}

	s.cmd = cmd
	s.stdout = stdout
	s.reader = bufio.NewReaderSize(stdout, 1<<20)

	s.logger.Info("stream opened", zap.String("url", s.streamURL), zap.Int("pid", cmd.Process.Pid))
	return nil
}

func (s *Source) ReadFrame(ctx context.Context) (port.Frame, error) {
	s.mu.Lock()
	reader := s.reader
	s.mu.Unlock()

	if reader == nil {
		return nil, fmt.Errorf("source not open")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	frame, err := readJPEG(reader)
	if err != nil {
		return nil, fmt.Errorf("read frame: %w", err)
	}
	return frame, nil
}

func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cmd == nil {
		return nil
	}

	s.stdout.Close()
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	err := s.cmd.Wait()

	s.cmd = nil
	s.stdout = nil
	s.reader = nil

	// ffmpeg killed mid-stream reports an exit error; that is the normal
	// teardown path here.
	if err != nil {
		s.logger.Debug("ffmpeg exited", zap.Error(err))
	}
	return nil
}
