package main

import (
	"fmt"
	"os"

	"pw2pr.dev/pw2pr/internal/action"
	"pw2pr.dev/pw2pr/internal/cli"
	"pw2pr.dev/pw2pr/internal/errors"
	"pw2pr.dev/pw2pr/internal/redact"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		// Git failures can echo the credentialed origin URL back in their
		// message; mask every known secret before the error reaches the log.
		r := redact.New()
		for _, name := range action.RequiredSecrets {
			r.Add(os.Getenv(name))
		}
		fmt.Fprintln(os.Stderr, "ERROR:", r.Mask(err.Error()))
		os.Exit(errors.ExitCode(err))
	}
}
