package commands

import (
	"errors"
	"fmt"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/jessevdk/go-flags"

	"github.com/pivotal-cf/linegrep/config"
	"github.com/pivotal-cf/linegrep/runner"
	"github.com/pivotal-cf/linegrep/search"
)

const (
	ExitSourceUnavailable = 1
	ExitBadConfiguration  = 2
)

var ErrConflictingFlags = errors.New("--case-sensitive and --ignore-case cannot be used together")

type LinegrepCommand struct {
	CaseSensitive bool   `short:"s" long:"case-sensitive" description:"match letter case exactly"`
	IgnoreCase    bool   `short:"i" long:"ignore-case" description:"ignore letter case (the default)"`
	Case          string `long:"case" description:"case policy" choice:"sensitive" choice:"insensitive" value-name:"POLICY"`
	ConfigFile    string `short:"c" long:"config" description:"path to a YAML config file" value-name:"PATH"`
	LineNumbers   bool   `short:"n" long:"line-numbers" description:"also show where each match is in the source"`
	Debug         bool   `long:"debug" description:"enables debug logging"`
	Version       bool   `short:"v" long:"version" description:"displays linegrep version"`
}

var Linegrep LinegrepCommand

func (command *LinegrepCommand) Execute(args []string) error {
	if command.Version {
		fmt.Println(version)
		return nil
	}

	logger := lager.NewLogger("linegrep")
	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.ERROR))
	}

	overrides, err := command.overrides()
	if err != nil {
		return err
	}

	c, err := config.NewLoader(os.LookupEnv).Load(args, overrides)
	if err != nil {
		return err
	}

	logger.Debug("loaded-config", lager.Data{"source": c.Source, "policy": c.Policy.String()})

	r := runner.New(os.Stdout, os.Stdin)
	r.LineNumbers = command.LineNumbers

	return r.Run(logger, c)
}

func (command *LinegrepCommand) overrides() (config.Overrides, error) {
	overrides := config.Overrides{
		ConfigFile: command.ConfigFile,
	}

	if command.CaseSensitive && command.IgnoreCase {
		return overrides, ErrConflictingFlags
	}

	var policy *search.Policy
	switch {
	case command.CaseSensitive:
		p := search.CaseSensitive
		policy = &p
	case command.IgnoreCase:
		p := search.CaseInsensitive
		policy = &p
	case command.Case != "":
		p, err := search.ParsePolicy(command.Case)
		if err != nil {
			return overrides, fmt.Errorf("%w: %s", config.ErrInvalidPolicy, err)
		}
		policy = &p
	}

	overrides.Policy = policy
	return overrides, nil
}

// ExitStatus maps an error from Execute or from flag parsing to the status
// the process should exit with.
func ExitStatus(err error) int {
	var flagsErr *flags.Error

	switch {
	case err == nil:
		return 0
	case errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp:
		return 0
	case errors.Is(err, runner.ErrSourceUnavailable):
		return ExitSourceUnavailable
	case errors.As(err, &flagsErr),
		errors.Is(err, ErrConflictingFlags),
		errors.Is(err, config.ErrInsufficientArguments),
		errors.Is(err, config.ErrInvalidPolicy),
		errors.Is(err, config.ErrInvalidConfigFile):
		return ExitBadConfiguration
	default:
		return ExitSourceUnavailable
	}
}

func ShowFailure(err error) {
	fmt.Fprintln(os.Stderr, red("[FAILED]"), err)
}

func ShowUsageHint() {
	fmt.Fprintln(os.Stderr, yellow("[HINT]"), "usage: linegrep [OPTIONS] QUERY SOURCE (use - as SOURCE to read standard input)")
}
