package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gonuts/commander"

	"github.com/tsawler/polarity"
)

func runCommand(t *testing.T, cmd *commander.Command, args ...string) error {
	t.Helper()
	if err := cmd.Flag.Parse(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}
	return cmd.Run(cmd, cmd.Flag.Args())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestTrainEvaluateClassify(t *testing.T) {
	t.Setenv("POLARITY_VALKEY_ADDRESS", "")
	t.Setenv("POLARITY_TREETAGGER", "")

	dir := t.TempDir()
	corpus := filepath.Join(dir, "train.txt")
	lexicon := filepath.Join(dir, "german.lex")
	model := filepath.Join(dir, "model")

	writeFile(t, corpus, "5 Das Produkt ist sehr gut\n1 Das Produkt ist sehr schlecht\n")
	writeFile(t, lexicon, "gut POS=1.0 ADJD\nschlecht NEG=1.0 ADJD\nProdukt POS=0.0 NN\n")

	if err := runCommand(t, cmdTrain(), "-in", corpus, "-polart", lexicon, "-model", model, "-min-freq", "1"); err != nil {
		t.Fatalf("train failed: %v", err)
	}
	for _, name := range []string{"words.txt", "combinations.txt", "priors.txt", "domain.txt", "general.gob"} {
		if _, err := os.Stat(filepath.Join(model, name)); err != nil {
			t.Errorf("train did not write %s: %v", name, err)
		}
	}

	if err := runCommand(t, cmdEvaluate(), "-test", corpus, "-model", model, "-min-freq", "1"); err != nil {
		t.Errorf("evaluate failed: %v", err)
	}

	for _, kind := range polarity.Kinds() {
		err := runCommand(t, cmdClassify(), "-model", model, "-min-freq", "1", "-classifier", kind.String(), "Das", "Produkt", "ist", "gut")
		if err != nil {
			t.Errorf("classify with %s failed: %v", kind, err)
		}
	}

	if err := runCommand(t, cmdClassify(), "-model", model); err == nil {
		t.Error("classify without text should fail")
	}
	if err := runCommand(t, cmdEvaluate(), "-model", model); err == nil {
		t.Error("evaluate without -test should fail")
	}
}

func TestTrainMissingCorpus(t *testing.T) {
	t.Setenv("POLARITY_VALKEY_ADDRESS", "")
	dir := t.TempDir()
	err := runCommand(t, cmdTrain(), "-in", filepath.Join(dir, "none.txt"), "-model", filepath.Join(dir, "model"))
	if err == nil {
		t.Error("train with a missing corpus should fail")
	}
}

func TestOptionsTagger(t *testing.T) {
	log := slog.Default()
	a := polarity.NewAnalyzer()
	var opts options

	if tagger := opts.tagger(&polarity.Model{}, a, log); tagger != nil {
		t.Errorf("Expected no tagger without a POS source, got %T", tagger)
	}

	general := polarity.NewMemoryStore(a)
	general.Add(polarity.Entry{Word: "gut", POS: polarity.POSAdjective, Polarity: 1})
	tagger := opts.tagger(&polarity.Model{General: general}, a, log)
	if tagger == nil {
		t.Fatal("Expected a dictionary tagger")
	}
	tagged, err := tagger.Tag([]string{"gut"})
	if err != nil || len(tagged) != 1 || tagged[0].Tag != polarity.POSAdjective {
		t.Errorf("Tag = %v, %v", tagged, err)
	}

	opts.treeTagger = "tree-tagger -token german.par"
	if _, ok := opts.tagger(&polarity.Model{}, a, log).(*polarity.TreeTagger); !ok {
		t.Error("Expected a TreeTagger when configured")
	}
}
