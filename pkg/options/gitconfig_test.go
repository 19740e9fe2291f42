package options_test

import (
	"context"
	"strings"

	"github.com/naveego/git-pivotal/pkg/options"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

// gitConfig answers "config --get <key>" from a map. Missing keys
// come back empty, which is how git.ConfigGet reports them.
type gitConfig map[string]string

func (g gitConfig) Exec(ctx context.Context, args ...string) (string, error) {
	if len(args) == 3 && args[0] == "config" && args[1] == "--get" {
		return g[args[2]], nil
	}
	return "", nil
}

var _ = Describe("FromGitConfig", func() {

	It("should read and trim string keys", func() {
		sut := options.FromGitConfig(context.Background(), gitConfig{
			"pivotal.api-token":          " abc123 \n",
			"pivotal.project-id":         "99",
			"pivotal.full-name":          "Pat Doe",
			"pivotal.remote":             "upstream",
			"pivotal.acceptance-branch":  "qa",
			"pivotal.integration-branch": "develop",
		})
		Expect(sut.Token()).To(Equal("abc123"))
		Expect(sut.Project()).To(Equal("99"))
		Expect(sut.Name()).To(Equal("Pat Doe"))
		Expect(sut.RemoteName()).To(Equal("upstream"))
		Expect(sut.Acceptance()).To(Equal("qa"))
		Expect(sut.Integration()).To(Equal("develop"))
	})

	It("should leave missing keys unset", func() {
		sut := options.FromGitConfig(context.Background(), gitConfig{})
		Expect(sut.APIToken).To(BeNil())
		Expect(sut.ProjectID).To(BeNil())
		Expect(sut.FullName).To(BeNil())
		Expect(sut.UseSSL).To(BeNil())
		Expect(sut.OnlyMine).To(BeNil())
	})

	It("should default verbose to true when the key is absent", func() {
		sut := options.FromGitConfig(context.Background(), gitConfig{})
		Expect(sut.Verbose).ToNot(BeNil())
		Expect(sut.IsVerbose()).To(BeTrue())
	})

	DescribeTable("should read boolean keys as true only for \"true\"", func(raw string, expected bool) {
		sut := options.FromGitConfig(context.Background(), gitConfig{
			"pivotal.use-ssl":     raw,
			"pivotal.only-mine":   raw,
			"pivotal.append-name": raw,
			"pivotal.verbose":     raw,
		})
		Expect(sut.IsUseSSL()).To(Equal(expected))
		Expect(sut.IsOnlyMine()).To(Equal(expected))
		Expect(sut.IsAppendName()).To(Equal(expected))
		Expect(sut.IsVerbose()).To(Equal(expected))
	},
		Entry("lower", "true", true),
		Entry("mixed case", "TrUe", true),
		Entry("false", "false", false),
		Entry("yes is not true", "yes", false),
		Entry("one is not true", "1", false),
	)

	It("should only query pivotal keys", func() {
		var queried []string
		recorder := recordingConfig(func(key string) { queried = append(queried, key) })
		options.FromGitConfig(context.Background(), recorder)
		Expect(queried).To(HaveLen(10))
		for _, key := range queried {
			Expect(strings.HasPrefix(key, "pivotal.")).To(BeTrue())
		}
	})
})

type recordingConfig func(key string)

func (r recordingConfig) Exec(ctx context.Context, args ...string) (string, error) {
	r(args[len(args)-1])
	return "", nil
}
