package main

import (
	"log/slog"
	"strings"

	"github.com/gonuts/flag"

	"github.com/tsawler/polarity"
)

// options are the flags shared by most subcommands.
type options struct {
	verbose    bool
	minPMI     float64
	minFreq    int
	model      string
	valkey     string
	valkeyPass string
	valkeyDB   int
	treeTagger string
}

func (o *options) register(fs *flag.FlagSet) {
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")
	fs.Float64Var(&o.minPMI, "min-pmi", envFloat("POLARITY_MIN_PMI", 0), "minimum PMI of a relevant feature")
	fs.IntVar(&o.minFreq, "min-freq", envInt("POLARITY_MIN_FREQUENCY", 2), "minimum document frequency of a relevant feature")
	fs.StringVar(&o.model, "model", envString("POLARITY_MODEL", "model"), "model directory")
	fs.StringVar(&o.valkey, "valkey", envString("POLARITY_VALKEY_ADDRESS", ""), "valkey address of the general and domain lexicons (empty: use the model directory)")
	fs.StringVar(&o.valkeyPass, "valkey-password", envString("POLARITY_VALKEY_PASSWORD", ""), "valkey password")
	fs.IntVar(&o.valkeyDB, "valkey-db", envInt("POLARITY_VALKEY_DB", 0), "valkey database")
	fs.StringVar(&o.treeTagger, "treetagger", envString("POLARITY_TREETAGGER", ""), "TreeTagger command, e.g. \"tree-tagger -token german.par\" (empty: lexicon tagger)")
}

func (o *options) setup() (*slog.Logger, polarity.Config) {
	log := initLogger(o.verbose)

	cfg := polarity.DefaultConfig()
	cfg.MinPMI = o.minPMI
	cfg.MinFrequency = o.minFreq
	cfg.Logger = log
	return log, cfg
}

// Valkey key prefixes of the two lexicons.
const (
	generalPrefix = "polarity:general"
	domainPrefix  = "polarity:domain"
)

// valkeyStore connects to the configured Valkey instance, or returns nil
// when none is configured.
func (o *options) valkeyStore(prefix string, a *polarity.Analyzer, log *slog.Logger) (*polarity.ValkeyStore, error) {
	if o.valkey == "" {
		return nil, nil
	}
	return polarity.NewValkeyStore(polarity.ValkeyOptions{
		Address:  o.valkey,
		Password: o.valkeyPass,
		DB:       o.valkeyDB,
		Prefix:   prefix,
	}, a, log)
}

// loadModel opens the model directory. With -valkey set, both lexicons are
// read from Valkey instead of the model directory.
func (o *options) loadModel(a *polarity.Analyzer, cfg polarity.Config, log *slog.Logger) (*polarity.Model, func(), error) {
	m, err := polarity.ModelFromDisk(o.model, a, cfg)
	if err != nil {
		return nil, nil, err
	}

	general, err := o.valkeyStore(generalPrefix, a, log)
	if err != nil {
		return nil, nil, err
	}
	if general == nil {
		return m, func() {}, nil
	}

	domain, err := o.valkeyStore(domainPrefix, a, log)
	if err != nil {
		general.Close()
		return nil, nil, err
	}
	m.General = general
	m.Domain = domain

	return m, func() {
		general.Close()
		domain.Close()
	}, nil
}

// tagger returns the external TreeTagger when configured, else a
// dictionary tagger over the general lexicon snapshot. Without either there
// is no POS source, so it returns nil and the rule-based classifier is not
// built.
func (o *options) tagger(m *polarity.Model, a *polarity.Analyzer, log *slog.Logger) polarity.Tagger {
	if o.treeTagger != "" {
		fields := strings.Fields(o.treeTagger)
		return polarity.NewTreeTagger(fields[0], fields[1:]...)
	}

	var tags map[string]string
	if ms, ok := m.General.(*polarity.MemoryStore); ok {
		tags = polarity.TagsFromEntries(ms.Entries())
	}
	if len(tags) == 0 {
		log.Warn("no POS tags available, rule-based classifier disabled; set -treetagger")
		return nil
	}
	return polarity.NewLexiconTagger(tags, "", a)
}
