package config

import (
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/linegrep/search"
)

const (
	// CaseSensitivityEnv holds an explicit policy: "sensitive" or "insensitive".
	CaseSensitivityEnv = "CASE_SENSITIVITY"

	// CaseInsensitiveEnv switches to case-sensitive search when it is present,
	// whatever its value. Kept for compatibility with existing scripts.
	CaseInsensitiveEnv = "CASE_INSENSITIVE"
)

var (
	ErrInsufficientArguments = errors.New("not enough arguments: expected QUERY and SOURCE")
	ErrInvalidPolicy         = errors.New("invalid case policy")
	ErrInvalidConfigFile     = errors.New("invalid config file")
)

type Config struct {
	Query  string
	Source string
	Policy search.Policy
}

// Overrides carries settings that come from the command line rather than
// the environment.
type Overrides struct {
	ConfigFile string
	Policy     *search.Policy
}

type LookupEnvFunc func(key string) (string, bool)

type Loader struct {
	lookupEnv LookupEnvFunc
	readFile  func(path string) ([]byte, error)
}

func NewLoader(lookupEnv LookupEnvFunc) *Loader {
	if lookupEnv == nil {
		lookupEnv = func(string) (string, bool) { return "", false }
	}

	return &Loader{
		lookupEnv: lookupEnv,
		readFile:  ioutil.ReadFile,
	}
}

// Load builds a Config from positional arguments (QUERY SOURCE, without the
// program name) and the loader's environment. The case policy is taken from,
// in increasing precedence: the default, the config file, the environment and
// the overrides.
func (l *Loader) Load(args []string, overrides Overrides) (Config, error) {
	var result error

	c := Config{
		Policy: search.DefaultPolicy,
	}

	if len(args) < 2 {
		result = multierror.Append(result, ErrInsufficientArguments)
	} else {
		c.Query = args[0]
		c.Source = args[1]
	}

	if overrides.ConfigFile != "" {
		fileConfig, err := l.loadFile(overrides.ConfigFile)
		if err != nil {
			result = multierror.Append(result, err)
		} else if fileConfig.Case != nil {
			c.Policy = *fileConfig.Case
		}
	}

	policy, found, err := l.envPolicy()
	if err != nil {
		result = multierror.Append(result, err)
	} else if found {
		c.Policy = policy
	}

	if overrides.Policy != nil {
		c.Policy = *overrides.Policy
	}

	if result != nil {
		return Config{}, result
	}

	return c, nil
}

func (l *Loader) envPolicy() (search.Policy, bool, error) {
	if value, ok := l.lookupEnv(CaseSensitivityEnv); ok {
		policy, err := search.ParsePolicy(value)
		if err != nil {
			return search.DefaultPolicy, false, fmt.Errorf("%w: %s: %s", ErrInvalidPolicy, CaseSensitivityEnv, err)
		}

		return policy, true, nil
	}

	if _, ok := l.lookupEnv(CaseInsensitiveEnv); ok {
		return search.CaseSensitive, true, nil
	}

	return search.DefaultPolicy, false, nil
}

func (l *Loader) loadFile(path string) (*FileConfig, error) {
	bs, err := l.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfigFile, err)
	}

	fileConfig, err := LoadFileConfig(bs)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidConfigFile, path, err)
	}

	return fileConfig, nil
}
