package logs

import (
	"io"
	"os"
)

// Writer receives text-formatted records.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
