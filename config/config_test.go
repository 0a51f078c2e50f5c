package config_test

import (
	"errors"
	"io/ioutil"
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/linegrep/config"
	"github.com/pivotal-cf/linegrep/search"
)

var _ = Describe("Loader", func() {
	var (
		env       map[string]string
		args      []string
		overrides config.Overrides

		loaded  config.Config
		loadErr error
	)

	BeforeEach(func() {
		env = map[string]string{}
		args = []string{"needle", "haystack.txt"}
		overrides = config.Overrides{}
	})

	JustBeforeEach(func() {
		loader := config.NewLoader(func(key string) (string, bool) {
			value, ok := env[key]
			return value, ok
		})

		loaded, loadErr = loader.Load(args, overrides)
	})

	It("takes the query and source from the positional arguments", func() {
		Expect(loadErr).NotTo(HaveOccurred())
		Expect(loaded.Query).To(Equal("needle"))
		Expect(loaded.Source).To(Equal("haystack.txt"))
	})

	It("defaults to a case-insensitive search", func() {
		Expect(loaded.Policy).To(Equal(search.CaseInsensitive))
	})

	Context("when there are extra arguments", func() {
		BeforeEach(func() {
			args = []string{"needle", "haystack.txt", "ignored"}
		})

		It("ignores them", func() {
			Expect(loadErr).NotTo(HaveOccurred())
			Expect(loaded.Source).To(Equal("haystack.txt"))
		})
	})

	Context("when the query is empty", func() {
		BeforeEach(func() {
			args = []string{"", "haystack.txt"}
		})

		It("accepts it", func() {
			Expect(loadErr).NotTo(HaveOccurred())
			Expect(loaded.Query).To(BeEmpty())
		})
	})

	Context("when fewer than two arguments are given", func() {
		for _, a := range [][]string{nil, {"needle"}} {
			a := a

			It("reports insufficient arguments", func() {
				loader := config.NewLoader(nil)
				_, err := loader.Load(a, config.Overrides{})
				Expect(errors.Is(err, config.ErrInsufficientArguments)).To(BeTrue())
			})
		}
	})

	Describe("the case policy", func() {
		Context("when CASE_INSENSITIVE is present", func() {
			BeforeEach(func() {
				env[config.CaseInsensitiveEnv] = "1"
			})

			It("switches to a case-sensitive search", func() {
				Expect(loaded.Policy).To(Equal(search.CaseSensitive))
			})

			Context("and it is empty", func() {
				BeforeEach(func() {
					env[config.CaseInsensitiveEnv] = ""
				})

				It("still switches to a case-sensitive search", func() {
					Expect(loaded.Policy).To(Equal(search.CaseSensitive))
				})
			})

			Context("and it says false", func() {
				BeforeEach(func() {
					env[config.CaseInsensitiveEnv] = "false"
				})

				It("only looks at its presence", func() {
					Expect(loaded.Policy).To(Equal(search.CaseSensitive))
				})
			})

			Context("and CASE_SENSITIVITY is also set", func() {
				BeforeEach(func() {
					env[config.CaseSensitivityEnv] = "insensitive"
				})

				It("prefers the explicit setting", func() {
					Expect(loaded.Policy).To(Equal(search.CaseInsensitive))
				})
			})
		})

		Context("when CASE_SENSITIVITY is set", func() {
			BeforeEach(func() {
				env[config.CaseSensitivityEnv] = "sensitive"
			})

			It("uses its value", func() {
				Expect(loadErr).NotTo(HaveOccurred())
				Expect(loaded.Policy).To(Equal(search.CaseSensitive))
			})

			Context("to something unknown", func() {
				BeforeEach(func() {
					env[config.CaseSensitivityEnv] = "sometimes"
				})

				It("returns an invalid policy error", func() {
					Expect(errors.Is(loadErr, config.ErrInvalidPolicy)).To(BeTrue())
					Expect(loadErr.Error()).To(ContainSubstring("sometimes"))
				})
			})
		})

		Context("when an override is given", func() {
			BeforeEach(func() {
				env[config.CaseInsensitiveEnv] = "yes"
				policy := search.CaseInsensitive
				overrides.Policy = &policy
			})

			It("beats the environment", func() {
				Expect(loaded.Policy).To(Equal(search.CaseInsensitive))
			})
		})

		Context("when a config file is given", func() {
			var configPath string

			writeConfig := func(content string) {
				if configPath != "" {
					os.RemoveAll(configPath)
				}

				f, err := ioutil.TempFile("", "linegrep-config")
				Expect(err).NotTo(HaveOccurred())
				defer f.Close()

				_, err = f.WriteString(content)
				Expect(err).NotTo(HaveOccurred())

				configPath = f.Name()
				overrides.ConfigFile = configPath
			}

			BeforeEach(func() {
				writeConfig("case: sensitive\n")
			})

			AfterEach(func() {
				os.RemoveAll(configPath)
			})

			It("uses the policy from the file", func() {
				Expect(loadErr).NotTo(HaveOccurred())
				Expect(loaded.Policy).To(Equal(search.CaseSensitive))
			})

			Context("and the environment disagrees", func() {
				BeforeEach(func() {
					env[config.CaseSensitivityEnv] = "insensitive"
				})

				It("lets the environment win", func() {
					Expect(loaded.Policy).To(Equal(search.CaseInsensitive))
				})
			})

			Context("and the file does not set a policy", func() {
				BeforeEach(func() {
					writeConfig("")
				})

				It("keeps the default", func() {
					Expect(loadErr).NotTo(HaveOccurred())
					Expect(loaded.Policy).To(Equal(search.DefaultPolicy))
				})
			})

			Context("and the file cannot be read", func() {
				BeforeEach(func() {
					overrides.ConfigFile = "/path/that/does/not/exist.yml"
				})

				It("returns an invalid config file error", func() {
					Expect(errors.Is(loadErr, config.ErrInvalidConfigFile)).To(BeTrue())
				})
			})
		})
	})

	Context("when several things are wrong", func() {
		BeforeEach(func() {
			args = []string{"needle"}
			env[config.CaseSensitivityEnv] = "bogus"
		})

		It("reports all of them", func() {
			Expect(errors.Is(loadErr, config.ErrInsufficientArguments)).To(BeTrue())
			Expect(errors.Is(loadErr, config.ErrInvalidPolicy)).To(BeTrue())
		})
	})
})
