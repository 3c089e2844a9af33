//go:build !unix

package frontend

import (
	"fmt"
	"os"
)

type inputReader struct{}

func startInput(*os.File) (*inputReader, error) {
	return nil, fmt.Errorf("%w: raw terminal input is not supported on this platform", ErrUnavailable)
}

func (r *inputReader) Data() <-chan []byte {
	return nil
}

func (r *inputReader) Close() {}
