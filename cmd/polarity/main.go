// Command polarity trains and runs the German review polarity classifiers.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func main() {
	loadEnv(envString("POLARITY_ENV_FILE", ".env"))

	cmd := &commander.Command{
		UsageLine: os.Args[0] + " <command> [options]",
		Short:     "classify the polarity of German product reviews",
		Subcommands: []*commander.Command{
			cmdBalance(),
			cmdTrain(),
			cmdFeatures(),
			cmdDomain(),
			cmdImport(),
			cmdClassify(),
			cmdEvaluate(),
			cmdServe(),
		},
		Flag: *flag.NewFlagSet("polarity", flag.ExitOnError),
	}

	if err := cmd.Dispatch(os.Args[1:]); err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}
