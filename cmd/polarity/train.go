package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/tsawler/polarity"
)

func cmdTrain() *commander.Command {
	var opts options
	var in, polart string

	cmd := &commander.Command{
		UsageLine: "train -in train.txt -polart german.lex -model dir",
		Short:     "build feature tables, domain lexicon and lexicon snapshot",
		Long: `
train computes the PMI statistics of the training corpus and writes the word
and combination feature tables, the class priors, the domain-specific lexicon
and, when -polart is given, a snapshot of the general lexicon to -model.
`,
		Flag: *flag.NewFlagSet("train", flag.ExitOnError),
	}
	opts.register(&cmd.Flag)
	cmd.Flag.StringVar(&in, "in", "", "training corpus")
	cmd.Flag.StringVar(&polart, "polart", envString("POLARITY_POLART", ""), "PolArt lexicon for the general store")

	cmd.Run = func(cmd *commander.Command, args []string) error {
		log, cfg := opts.setup()
		if in == "" {
			return fmt.Errorf("train: -in is required")
		}

		a := polarity.NewAnalyzer()
		reviews, err := polarity.LoadCorpus(in, a)
		if err != nil {
			return err
		}
		pos, neg := polarity.Summary(reviews)
		log.Info("corpus loaded", slog.Int("positive", pos), slog.Int("negative", neg))

		general := polarity.NewMemoryStore(a)
		if polart != "" {
			entries, err := polarity.LoadLexicon(polart, polarity.ReadPolArt, log)
			if err != nil {
				return err
			}
			general.Add(entries...)
		}

		m := polarity.ModelFromData(opts.model, reviews, general, a, cfg)
		if err := m.Write(opts.model); err != nil {
			return err
		}
		log.Info("model written", slog.String("path", opts.model))
		return nil
	}
	return cmd
}

func cmdFeatures() *commander.Command {
	var opts options
	var in, words, combos string

	cmd := &commander.Command{
		UsageLine: "features -in train.txt -words words.txt -combinations combinations.txt",
		Short:     "write the naive-Bayes feature tables",
		Flag:      *flag.NewFlagSet("features", flag.ExitOnError),
	}
	opts.register(&cmd.Flag)
	cmd.Flag.StringVar(&in, "in", "", "training corpus")
	cmd.Flag.StringVar(&words, "words", "words.txt", "single-word feature table")
	cmd.Flag.StringVar(&combos, "combinations", "combinations.txt", "combination feature table")

	cmd.Run = func(cmd *commander.Command, args []string) error {
		_, cfg := opts.setup()
		if in == "" {
			return fmt.Errorf("features: -in is required")
		}

		reviews, err := polarity.LoadCorpus(in, polarity.NewAnalyzer())
		if err != nil {
			return err
		}

		b := polarity.NewFeatureBuilder(cfg)
		if err := polarity.SaveFeatureTable(words, polarity.Relevant(b.Words(reviews, polarity.BayesMode))); err != nil {
			return err
		}
		return polarity.SaveFeatureTable(combos, polarity.Relevant(b.Combinations(reviews)))
	}
	return cmd
}

func cmdDomain() *commander.Command {
	var opts options
	var in, out string

	cmd := &commander.Command{
		UsageLine: "domain -in train.txt -out domain.txt",
		Short:     "write a domain-specific lexicon",
		Flag:      *flag.NewFlagSet("domain", flag.ExitOnError),
	}
	opts.register(&cmd.Flag)
	cmd.Flag.StringVar(&in, "in", "", "training corpus")
	cmd.Flag.StringVar(&out, "out", "domain.txt", "output lexicon")

	cmd.Run = func(cmd *commander.Command, args []string) error {
		log, cfg := opts.setup()
		if in == "" {
			return fmt.Errorf("domain: -in is required")
		}

		reviews, err := polarity.LoadCorpus(in, polarity.NewAnalyzer())
		if err != nil {
			return err
		}
		entries := polarity.NewFeatureBuilder(cfg).DomainLexicon(reviews)

		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := polarity.WriteDomainLexicon(f, entries); err != nil {
			f.Close()
			return err
		}
		log.Info("domain lexicon written", slog.String("path", out), slog.Int("entries", len(entries)))
		return f.Close()
	}
	return cmd
}

func cmdImport() *commander.Command {
	var opts options
	var polart, domain, out string

	cmd := &commander.Command{
		UsageLine: "import (-polart german.lex | -domain domain.txt) [-out store.gob] [-valkey addr]",
		Short:     "load a lexicon into a store snapshot or into valkey",
		Flag:      *flag.NewFlagSet("import", flag.ExitOnError),
	}
	opts.register(&cmd.Flag)
	cmd.Flag.StringVar(&polart, "polart", "", "PolArt lexicon")
	cmd.Flag.StringVar(&domain, "domain", "", "domain lexicon")
	cmd.Flag.StringVar(&out, "out", "", "gob snapshot to write")

	cmd.Run = func(cmd *commander.Command, args []string) error {
		log, _ := opts.setup()
		a := polarity.NewAnalyzer()

		var entries []polarity.Entry
		var err error
		prefix := generalPrefix
		switch {
		case polart != "":
			entries, err = polarity.LoadLexicon(polart, polarity.ReadPolArt, log)
		case domain != "":
			prefix = domainPrefix
			entries, err = polarity.LoadLexicon(domain, polarity.ReadDomainLexicon, log)
		default:
			return fmt.Errorf("import: -polart or -domain is required")
		}
		if err != nil {
			return err
		}

		if out != "" {
			store := polarity.NewMemoryStore(a)
			store.Add(entries...)
			if err := store.Write(out); err != nil {
				return err
			}
			log.Info("snapshot written", slog.String("path", out), slog.Int("entries", store.Len()))
		}

		vs, err := opts.valkeyStore(prefix, a, log)
		if err != nil {
			return err
		}
		if vs != nil {
			defer vs.Close()
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if err := vs.Put(ctx, entries...); err != nil {
				return err
			}
		}
		return nil
	}
	return cmd
}
