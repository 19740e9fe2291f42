package git_test

import (
	"context"
	"strings"

	"github.com/naveego/git-pivotal/pkg/command"
	"github.com/naveego/git-pivotal/pkg/git"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type fakeRunner struct {
	calls   []string
	outputs map[string]string
	errs    map[string]error
}

func (f *fakeRunner) Exec(ctx context.Context, args ...string) (string, error) {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	return f.outputs[key], f.errs[key]
}

var _ = Describe("BranchInspector", func() {

	var runner *fakeRunner

	BeforeEach(func() {
		runner = &fakeRunner{outputs: map[string]string{}, errs: map[string]error{}}
	})

	It("should return the short branch name", func() {
		runner.outputs["symbolic-ref HEAD"] = "refs/heads/feature/123-foo"
		sut := git.NewBranchInspector(runner)
		Expect(sut.Current(context.Background())).To(Equal(git.BranchName("123-foo")))
		id, ok := sut.StoryID(context.Background())
		Expect(ok).To(BeTrue())
		Expect(id).To(Equal("123"))
	})

	It("should query git at most once", func() {
		runner.outputs["symbolic-ref HEAD"] = "refs/heads/789"
		sut := git.NewBranchInspector(runner)
		sut.Current(context.Background())
		sut.Current(context.Background())
		sut.StoryID(context.Background())
		Expect(runner.calls).To(HaveLen(1))
	})

	It("should treat a failed query as no branch", func() {
		_, err := command.NewShellExe("/bin/sh", "-c", "exit 128").RunOut()
		runner.errs["symbolic-ref HEAD"] = err
		sut := git.NewBranchInspector(runner)
		Expect(sut.Current(context.Background())).To(BeEmpty())
		_, ok := sut.StoryID(context.Background())
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("ConfigGet", func() {

	It("should read a missing key as empty", func() {
		_, exitErr := command.NewShellExe("/bin/sh", "-c", "exit 1").RunOut()
		runner := &fakeRunner{errs: map[string]error{"config --get pivotal.remote": exitErr}}
		Expect(git.ConfigGet(context.Background(), runner, "pivotal.remote")).To(BeEmpty())
	})

	It("should propagate other failures", func() {
		_, exitErr := command.NewShellExe("/bin/sh", "-c", "exit 2").RunOut()
		runner := &fakeRunner{errs: map[string]error{"config --get pivotal.remote": exitErr}}
		_, err := git.ConfigGet(context.Background(), runner, "pivotal.remote")
		Expect(err).To(HaveOccurred())
	})

	It("should return the configured value", func() {
		runner := &fakeRunner{outputs: map[string]string{"config --get pivotal.remote": "upstream"}}
		Expect(git.ConfigGet(context.Background(), runner, "pivotal.remote")).To(Equal("upstream"))
	})
})
