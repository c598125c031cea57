package polarity

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Tagger assigns coarse POS tags to the tokens of a sentence. A tagger may
// return fewer pairs than tokens; callers must tolerate short results.
type Tagger interface {
	Tag(tokens []string) ([]TaggedWord, error)
}

// MapSTTS reduces an STTS tag to the coarse POS set. Unknown tags are
// returned unchanged.
func MapSTTS(tag string) string {
	switch tag {
	case "ADJA", "ADJD", "ADJX":
		return POSAdjective
	case "ADV":
		return POSAdverb
	case "NN":
		return POSNoun
	case "VVFIN", "VVIMP", "VVINF", "VVIZU", "VVPP",
		"VAFIN", "VAIMP", "VAINF", "VAPP",
		"VMFIN", "VMINF", "VMPP":
		return POSVerb
	case "PTKVZ":
		return POSVerbParticle
	default:
		return tag
	}
}

// TreeTagger runs an external TreeTagger process per sentence. Tokens are
// written one per line; output lines are "token<TAB>TAG".
type TreeTagger struct {
	Command string
	Args    []string
	Timeout time.Duration
}

// NewTreeTagger creates a tagger for the given binary, e.g.
// NewTreeTagger("tree-tagger", "-token", "german.par").
func NewTreeTagger(command string, args ...string) *TreeTagger {
	return &TreeTagger{Command: command, Args: args, Timeout: 10 * time.Second}
}

// Tag runs the tagger over tokens.
func (t *TreeTagger) Tag(tokens []string) ([]TaggedWord, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	ctx := context.Background()
	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, t.Command, t.Args...)
	cmd.Stdin = strings.NewReader(strings.Join(tokens, "\n") + "\n")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running %s: %w: %s", t.Command, err, strings.TrimSpace(stderr.String()))
	}

	return parseTaggerOutput(out), nil
}

// parseTaggerOutput reads "token TAG" pairs, ignoring lines without a tag.
func parseTaggerOutput(out []byte) []TaggedWord {
	var tagged []TaggedWord
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		tagged = append(tagged, TaggedWord{Word: fields[0], Tag: MapSTTS(fields[1])})
	}
	return tagged
}

// LexiconTagger tags tokens from a word to POS dictionary, falling back to a
// fixed tag for unknown words.
type LexiconTagger struct {
	tags     map[string]string
	fallback string
	analyzer *Analyzer
}

// NewLexiconTagger creates a dictionary tagger. Keys are normalized with a.
func NewLexiconTagger(tags map[string]string, fallback string, a *Analyzer) *LexiconTagger {
	if a == nil {
		a = NewAnalyzer()
	}
	t := &LexiconTagger{
		tags:     make(map[string]string, len(tags)),
		fallback: fallback,
		analyzer: a,
	}
	for w, tag := range tags {
		if term := a.Term(w); term != "" {
			t.tags[term] = tag
		}
	}
	return t
}

// TagsFromEntries collects the POS of every lexicon entry that has one.
// Words with several POS keep the first.
func TagsFromEntries(entries []Entry) map[string]string {
	tags := make(map[string]string)
	for _, e := range entries {
		if e.POS == "" || e.POS == NoPOS {
			continue
		}
		if _, ok := tags[e.Word]; !ok {
			tags[e.Word] = e.POS
		}
	}
	return tags
}

// Tag implements Tagger.
func (t *LexiconTagger) Tag(tokens []string) ([]TaggedWord, error) {
	tagged := make([]TaggedWord, 0, len(tokens))
	for _, tok := range tokens {
		tag, ok := t.tags[t.analyzer.Term(tok)]
		if !ok {
			tag = t.fallback
		}
		tagged = append(tagged, TaggedWord{Word: tok, Tag: tag})
	}
	return tagged, nil
}
