//go:build unix

package frontend

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"
)

const pollInterval = 5 * time.Millisecond

// inputReader reads raw bytes from a non-blocking file descriptor.
type inputReader struct {
	fd      int
	data    chan []byte
	stop    chan struct{}
	done    chan struct{}
	stopped sync.Once
}

func startInput(in *os.File) (*inputReader, error) {
	fd := int(in.Fd())
	if err := syscall.SetNonblock(fd, true); err != nil {
		return nil, fmt.Errorf("setting nonblocking input: %w", err)
	}

	r := &inputReader{
		fd:   fd,
		data: make(chan []byte, 16),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go r.read()
	return r, nil
}

// Data returns the channel of received input chunks.
func (r *inputReader) Data() <-chan []byte {
	return r.data
}

func (r *inputReader) read() {
	defer close(r.done)
	buf := make([]byte, 32)

	for {
		select {
		case <-r.stop:
			return
		default:
		}

		n, err := syscall.Read(r.fd, buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case r.data <- chunk:
			case <-r.stop:
				return
			}
		}
		if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK) || (err == nil && n == 0) {
			time.Sleep(pollInterval)
			continue
		}
		if err != nil {
			return
		}
	}
}

// Close stops the reader and restores blocking mode.
func (r *inputReader) Close() {
	r.stopped.Do(func() {
		close(r.stop)
	})
	<-r.done
	_ = syscall.SetNonblock(r.fd, false)
}
