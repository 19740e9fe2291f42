package options_test

import (
	"context"
	"os"

	"github.com/naveego/git-pivotal/pkg/options"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"
)

func newFlagSet(extra func(fs *pflag.FlagSet)) *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if extra != nil {
		extra(fs)
	}
	options.AddFlags(fs)
	return fs
}

var _ = Describe("FromFlags", func() {

	It("should set only the flags that were given", func() {
		fs := newFlagSet(nil)
		Expect(fs.Parse([]string{"-k", "token", "--project-id=42", "-q"})).To(Succeed())

		sut, err := options.FromFlags(fs)
		Expect(err).ToNot(HaveOccurred())
		Expect(sut.Token()).To(Equal("token"))
		Expect(sut.Project()).To(Equal("42"))
		Expect(sut.IsQuiet()).To(BeTrue())
		Expect(sut.FullName).To(BeNil())
		Expect(sut.Verbose).To(BeNil())
		Expect(sut.UseSSL).To(BeNil())
	})

	It("should turn verbose off with --no-verbose", func() {
		fs := newFlagSet(nil)
		Expect(fs.Parse([]string{"--no-verbose"})).To(Succeed())

		sut, err := options.FromFlags(fs)
		Expect(err).ToNot(HaveOccurred())
		Expect(sut.Verbose).ToNot(BeNil())
		Expect(sut.IsVerbose()).To(BeFalse())
	})

	It("should reject unknown flags", func() {
		fs := newFlagSet(nil)
		Expect(fs.Parse([]string{"--bogus"})).ToNot(Succeed())
	})

	It("should give a command's shorthand precedence over the shared one", func() {
		fs := newFlagSet(func(fs *pflag.FlagSet) {
			fs.StringP(options.FlagMessage, "m", "", "message")
		})
		Expect(fs.Parse([]string{"-m", "waiting on design", "--only-mine"})).To(Succeed())

		sut, err := options.FromFlags(fs)
		Expect(err).ToNot(HaveOccurred())
		Expect(sut.Text()).To(Equal("waiting on design"))
		Expect(sut.IsOnlyMine()).To(BeTrue())
		Expect(fs.Lookup(options.FlagOnlyMine).Shorthand).To(BeEmpty())
	})

	It("should map -m to only-mine when no command claims it", func() {
		fs := newFlagSet(nil)
		Expect(fs.Parse([]string{"-m"})).To(Succeed())

		sut, err := options.FromFlags(fs)
		Expect(err).ToNot(HaveOccurred())
		Expect(sut.IsOnlyMine()).To(BeTrue())
		Expect(sut.Message).To(BeNil())
	})

	Describe("environment", func() {

		BeforeEach(func() {
			Expect(os.Setenv("PIVOTAL_API_TOKEN", "from-env")).To(Succeed())
			Expect(os.Setenv("PIVOTAL_FULL_NAME", "Env Name")).To(Succeed())
		})

		AfterEach(func() {
			os.Unsetenv("PIVOTAL_API_TOKEN")
			os.Unsetenv("PIVOTAL_FULL_NAME")
		})

		It("should read options from the environment", func() {
			fs := newFlagSet(nil)
			Expect(fs.Parse(nil)).To(Succeed())

			sut, err := options.FromFlags(fs)
			Expect(err).ToNot(HaveOccurred())
			Expect(sut.Token()).To(Equal("from-env"))
			Expect(sut.Name()).To(Equal("Env Name"))
		})

		It("should prefer flags over the environment", func() {
			fs := newFlagSet(nil)
			Expect(fs.Parse([]string{"--api-key", "from-flag"})).To(Succeed())

			sut, err := options.FromFlags(fs)
			Expect(err).ToNot(HaveOccurred())
			Expect(sut.Token()).To(Equal("from-flag"))
		})
	})
})

var _ = Describe("Load", func() {

	It("should let the command line win over git config", func() {
		stored := gitConfig{
			"pivotal.api-token":          "stored-token",
			"pivotal.project-id":         "1",
			"pivotal.integration-branch": "develop",
			"pivotal.use-ssl":            "true",
		}
		fs := newFlagSet(nil)
		Expect(fs.Parse([]string{"-k", "flag-token", "-b", "trunk", "--use-ssl=false"})).To(Succeed())

		sut, err := options.Load(context.Background(), stored, fs)
		Expect(err).ToNot(HaveOccurred())
		Expect(sut.Token()).To(Equal("flag-token"))
		Expect(sut.Project()).To(Equal("1"))
		Expect(sut.Integration()).To(Equal("trunk"))
		Expect(sut.IsUseSSL()).To(BeFalse())
		Expect(sut.IsVerbose()).To(BeTrue())
	})

	It("should let --no-verbose win over the verbose default", func() {
		fs := newFlagSet(nil)
		Expect(fs.Parse([]string{"--no-verbose"})).To(Succeed())

		sut, err := options.Load(context.Background(), gitConfig{}, fs)
		Expect(err).ToNot(HaveOccurred())
		Expect(sut.IsVerbose()).To(BeFalse())
	})
})
