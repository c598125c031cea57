package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/tsawler/polarity"
)

func cmdClassify() *commander.Command {
	var opts options
	var kind string

	cmd := &commander.Command{
		UsageLine: "classify [-classifier naive-bayes] text...",
		Short:     "classify a single text",
		Flag:      *flag.NewFlagSet("classify", flag.ExitOnError),
	}
	opts.register(&cmd.Flag)
	cmd.Flag.StringVar(&kind, "classifier", polarity.NaiveBayes.String(), "classifier to use")

	cmd.Run = func(cmd *commander.Command, args []string) error {
		log, cfg := opts.setup()
		text := strings.Join(args, " ")
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("classify: no text given")
		}

		k, err := polarity.ParseKind(kind)
		if err != nil {
			return err
		}

		a := polarity.NewAnalyzer()
		m, closeStore, err := opts.loadModel(a, cfg, log)
		if err != nil {
			return err
		}
		defer closeStore()

		var tagger polarity.Tagger
		if k == polarity.RuleBased {
			tagger = opts.tagger(m, a, log)
		}
		c, err := m.Classifier(k, tagger)
		if err != nil {
			return err
		}

		op := c.Classify(text)
		fmt.Fprintf(os.Stdout, "%s: %s (score %.4f, %d positive, %d negative, %d neutral words)\n",
			k, op.Polarity, op.Score, op.Positive, op.Negative, op.Neutral)
		return nil
	}
	return cmd
}

func cmdEvaluate() *commander.Command {
	var opts options
	var test string
	var ruleBased bool

	cmd := &commander.Command{
		UsageLine: "evaluate -test test.txt [-model dir]",
		Short:     "compare all classifiers on a labeled test corpus",
		Long: `
evaluate runs every classifier over the usable reviews of the test corpus and
prints sensitivity, specificity and accuracy per classifier. The rule-based
classifier runs without POS matching and without the modal rule.
`,
		Flag: *flag.NewFlagSet("evaluate", flag.ExitOnError),
	}
	opts.register(&cmd.Flag)
	cmd.Flag.StringVar(&test, "test", "", "labeled test corpus")
	cmd.Flag.BoolVar(&ruleBased, "rule-based", true, "include the rule-based classifier")

	cmd.Run = func(cmd *commander.Command, args []string) error {
		log, cfg := opts.setup()
		if test == "" {
			return fmt.Errorf("evaluate: -test is required")
		}
		cfg.Rules = polarity.EvaluationRuleOptions()

		a := polarity.NewAnalyzer()
		reviews, err := polarity.LoadCorpus(test, a)
		if err != nil {
			return err
		}

		m, closeStore, err := opts.loadModel(a, cfg, log)
		if err != nil {
			return err
		}
		defer closeStore()

		var tagger polarity.Tagger
		if ruleBased {
			tagger = opts.tagger(m, a, log)
		}
		classifiers, err := m.Classifiers(tagger)
		if err != nil {
			return err
		}

		evaluations, err := polarity.EvaluateAll(reviews, classifiers...)
		if err != nil {
			return err
		}
		for _, e := range evaluations {
			fmt.Fprintln(os.Stdout, e.Report())
		}
		return nil
	}
	return cmd
}
