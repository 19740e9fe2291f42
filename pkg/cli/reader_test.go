package cli_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"time"

	"github.com/naveego/git-pivotal/pkg/cli"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var _ = Describe("LineReader", func() {

	It("should read lines without their endings", func() {
		sut := cli.NewLineReader(strings.NewReader("first\r\nsecond\nlast"))
		ctx := context.Background()
		Expect(sut.ReadLine(ctx)).To(Equal("first"))
		Expect(sut.ReadLine(ctx)).To(Equal("second"))
		Expect(sut.ReadLine(ctx)).To(Equal("last"))

		_, err := sut.ReadLine(ctx)
		Expect(errors.Cause(err)).To(Equal(io.EOF))
	})

	It("should return empty lines", func() {
		sut := cli.NewLineReader(strings.NewReader("\n\nx\n"))
		ctx := context.Background()
		Expect(sut.ReadLine(ctx)).To(BeEmpty())
		Expect(sut.ReadLine(ctx)).To(BeEmpty())
		Expect(sut.ReadLine(ctx)).To(Equal("x"))
	})

	It("should stop waiting when the context is cancelled", func() {
		in, w := io.Pipe()
		defer w.Close()
		sut := cli.NewLineReader(in)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := sut.ReadLine(ctx)
		Expect(errors.Cause(err)).To(Equal(context.DeadlineExceeded))
	})

	It("should deliver an abandoned line to the next read", func() {
		in, w := io.Pipe()
		sut := cli.NewLineReader(in)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := sut.ReadLine(ctx)
		Expect(err).To(HaveOccurred())

		go func() {
			_, _ = io.Copy(w, bytes.NewBufferString("late\n"))
			w.Close()
		}()

		Expect(sut.ReadLine(context.Background())).To(Equal("late"))
	})
})
