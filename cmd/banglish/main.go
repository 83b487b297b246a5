package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args[1:], DefaultEnv()))
}

// run dispatches to a subcommand or the default translate flow.
// Returns the process exit code.
func run(args []string, env *Environment) int {
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Fprintf(env.Stdout, "banglish %s\n", Version)
			return ExitSuccess
		case "help":
			runHelp(args[1:], env)
			return ExitSuccess
		case "doctor":
			return runDoctorCmd(args[1:], env)
		}
	}

	flags, positional, err := parseTranslateFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if flags.test {
		runSelfTest(flags, env)
		return ExitSuccess
	}

	if err := runTranslate(positional, flags, env); err != nil {
		reportError(err, flags, env)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
