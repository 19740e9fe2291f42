package cli

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// LineReader reads lines from an input stream. A read can be abandoned by
// cancelling its context; the next read picks up the line it was waiting for.
type LineReader struct {
	r       *bufio.Reader
	pending chan lineResult
}

type lineResult struct {
	line string
	err  error
}

func NewLineReader(in io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(in)}
}

// ReadLine returns the next line without its line ending. It returns
// io.EOF (check with errors.Cause) once the input is exhausted.
func (l *LineReader) ReadLine(ctx context.Context) (string, error) {
	if l.pending == nil {
		ch := make(chan lineResult, 1)
		l.pending = ch
		go func() {
			line, err := l.r.ReadString('\n')
			ch <- lineResult{line: line, err: err}
		}()
	}

	select {
	case <-ctx.Done():
		return "", errors.WithStack(ctx.Err())
	case res := <-l.pending:
		l.pending = nil
		line := strings.TrimRight(res.line, "\r\n")
		if res.err == io.EOF && line != "" {
			return line, nil
		}
		if res.err != nil {
			return "", errors.WithStack(res.err)
		}
		return line, nil
	}
}
