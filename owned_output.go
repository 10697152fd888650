package minilog

import (
	"io"
	"os"
	"sync"
)

// ownedOutput is a destination minilog opened itself (SetFile, tee outputs)
// and therefore must close, exactly once.
type ownedOutput struct {
	writer   io.Writer
	closer   io.Closer
	closeErr error
	once     sync.Once
}

func newOwnedOutput(writer io.Writer, closer io.Closer) *ownedOutput {
	if writer == nil {
		writer = io.Discard
	}
	return &ownedOutput{writer: writer, closer: closer}
}

func (o *ownedOutput) Write(p []byte) (int, error) {
	return o.writer.Write(p)
}

func (o *ownedOutput) Close() error {
	o.once.Do(func() {
		if o.closer != nil {
			o.closeErr = o.closer.Close()
		}
	})
	return o.closeErr
}

func openLogFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, &IoError{Op: "open", Path: path, Err: err}
	}
	return file, nil
}
