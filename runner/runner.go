package runner

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"unicode/utf8"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/linegrep/config"
	"github.com/pivotal-cf/linegrep/scanners"
	"github.com/pivotal-cf/linegrep/search"
)

// StdinSource names standard input as the text source.
const StdinSource = "-"

var ErrSourceUnavailable = errors.New("source unavailable")

type Runner struct {
	// LineNumbers adds each match's line number within the source after its
	// match index.
	LineNumbers bool

	stdout io.Writer
	stdin  io.Reader
}

func New(stdout io.Writer, stdin io.Reader) *Runner {
	return &Runner{
		stdout: stdout,
		stdin:  stdin,
	}
}

func (r *Runner) Run(logger lager.Logger, c config.Config) error {
	logger = logger.Session("run", lager.Data{
		"source": c.Source,
		"policy": c.Policy.String(),
	})
	logger.Debug("starting")
	defer logger.Debug("done")

	contents, err := r.read(c.Source)
	if err != nil {
		logger.Error("failed-to-read-source", err)
		return err
	}
	logger.Debug("read-source", lager.Data{"bytes": len(contents)})

	matches := search.Matches(c.Policy, c.Query, contents)
	logger.Debug("searched", lager.Data{"matches": len(matches)})

	return r.print(matches)
}

func (r *Runner) read(source string) (string, error) {
	var (
		bs  []byte
		err error
	)

	if source == StdinSource {
		bs, err = ioutil.ReadAll(r.stdin)
	} else {
		bs, err = ioutil.ReadFile(source)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrSourceUnavailable, err)
	}

	if !utf8.Valid(bs) {
		return "", fmt.Errorf("%w: %s: stream did not contain valid UTF-8", ErrSourceUnavailable, source)
	}

	return string(bs), nil
}

func (r *Runner) print(matches []scanners.Line) error {
	for i, line := range matches {
		var err error
		if r.LineNumbers {
			_, err = fmt.Fprintf(r.stdout, "%d: %d: %q\n", i+1, line.Number, line.Content)
		} else {
			_, err = fmt.Fprintf(r.stdout, "%d: %q\n", i+1, line.Content)
		}
		if err != nil {
			return err
		}
	}

	return nil
}
