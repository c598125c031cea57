package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/tsawler/polarity"
)

func cmdBalance() *commander.Command {
	var opts options
	var in, out string

	cmd := &commander.Command{
		UsageLine: "balance -in corpus.txt -out balanced.txt",
		Short:     "write a corpus with equally many positive and negative reviews",
		Long: `
balance keeps the first min(positive, negative) usable reviews of each class
and writes them in corpus order. Neutral and empty reviews are dropped.
`,
		Flag: *flag.NewFlagSet("balance", flag.ExitOnError),
	}
	opts.register(&cmd.Flag)
	cmd.Flag.StringVar(&in, "in", "", "input corpus")
	cmd.Flag.StringVar(&out, "out", "", "output corpus")

	cmd.Run = func(cmd *commander.Command, args []string) error {
		log, _ := opts.setup()
		if in == "" || out == "" {
			return fmt.Errorf("balance: -in and -out are required")
		}

		reviews, err := polarity.LoadCorpus(in, polarity.NewAnalyzer())
		if err != nil {
			return err
		}
		balanced := polarity.Balance(reviews)

		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := polarity.WriteCorpus(f, balanced); err != nil {
			f.Close()
			return err
		}

		pos, neg := polarity.Summary(balanced)
		log.Info("balanced corpus written",
			slog.String("path", out),
			slog.Int("positive", pos),
			slog.Int("negative", neg))
		return f.Close()
	}
	return cmd
}
