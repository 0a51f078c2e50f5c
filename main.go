package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/pivotal-cf/linegrep/commands"
	"github.com/pivotal-cf/linegrep/config"
)

func main() {
	parser := flags.NewParser(&commands.Linegrep, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "linegrep"
	parser.Usage = "[OPTIONS] QUERY SOURCE"

	args, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Println(err)
			os.Exit(0)
		}

		commands.ShowFailure(err)
		os.Exit(commands.ExitStatus(err))
	}

	if err := commands.Linegrep.Execute(args); err != nil {
		commands.ShowFailure(err)
		if errors.Is(err, config.ErrInsufficientArguments) {
			commands.ShowUsageHint()
		}
		os.Exit(commands.ExitStatus(err))
	}
}
