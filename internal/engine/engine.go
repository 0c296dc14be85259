// Package engine implements the keyword priority engine: it extracts
// words from free-form text and ranks them by a per-word score that
// accumulates across calls and can be boosted explicitly.
package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidConfiguration is returned by New for a config that
	// fails validation.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidKeyword is returned by PrioritizeKeyword when the
	// word normalizes to the empty string.
	ErrInvalidKeyword = errors.New("invalid keyword")
)

// Config controls engine behavior. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// MinKeywordLength is the minimum length a token must have to be
	// scored and emitted by Feed. Must be at least 1.
	MinKeywordLength int

	// MaxKeywords caps the number of entries returned by Top when the
	// caller does not pass its own limit. 0 means no cap.
	MaxKeywords int

	// MinScore is the minimum score an entry needs to appear in Top.
	MinScore int
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		MinKeywordLength: 4,
		MaxKeywords:      30,
		MinScore:         1,
	}
}

// Validate checks the configuration without constructing an engine.
func (c Config) Validate() error {
	if c.MinKeywordLength < 1 {
		return fmt.Errorf("%w: min keyword length must be at least 1, got %d",
			ErrInvalidConfiguration, c.MinKeywordLength)
	}
	if c.MaxKeywords < 0 {
		return fmt.Errorf("%w: max keywords must not be negative, got %d",
			ErrInvalidConfiguration, c.MaxKeywords)
	}
	if c.MinScore < 0 {
		return fmt.Errorf("%w: min score must not be negative, got %d",
			ErrInvalidConfiguration, c.MinScore)
	}
	return nil
}

// Keyword is one ranked entry of a score snapshot.
type Keyword struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// Engine owns the score table for one session. It is not safe for
// concurrent use; callers sharing an instance must serialize access
// themselves.
type Engine struct {
	config Config
	scores map[string]int
}

// New creates an engine with an empty score table. Configuration is
// rejected, never clamped.
func New(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		config: config,
		scores: make(map[string]int),
	}, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.config
}

// Feed tokenizes text, accumulates scores for every qualifying token
// occurrence, and returns the call's unique qualifying keywords ranked
// by their updated scores. Words scoring equal are ordered by first
// appearance in the input. Input with no qualifying tokens yields "".
func (e *Engine) Feed(text string) string {
	var qualified []string
	for _, token := range tokenize(text) {
		if len([]rune(token)) < e.config.MinKeywordLength {
			continue
		}
		qualified = append(qualified, token)
	}
	if len(qualified) == 0 {
		return ""
	}

	// Every occurrence counts, including duplicates within this call.
	for _, token := range qualified {
		e.scores[token]++
	}

	seen := make(map[string]bool, len(qualified))
	unique := make([]string, 0, len(qualified))
	for _, token := range qualified {
		if seen[token] {
			continue
		}
		seen[token] = true
		unique = append(unique, token)
	}

	// unique is in first-occurrence order, so a stable sort by score
	// keeps input order for ties.
	sort.SliceStable(unique, func(i, j int) bool {
		return e.scores[unique[i]] > e.scores[unique[j]]
	})

	return strings.Join(unique, " ")
}

// PrioritizeKeyword raises the score of a single word by one. The word
// goes through the same normalization as fed tokens but is exempt from
// the length filter: an explicit boost is a deliberate signal, not
// derived noise. The boosted word only ever surfaces through a later
// Feed whose input contains it.
func (e *Engine) PrioritizeKeyword(word string) error {
	normalized := normalizeWord(word)
	if normalized == "" {
		return fmt.Errorf("%w: %q normalizes to an empty string", ErrInvalidKeyword, word)
	}
	e.scores[normalized]++
	return nil
}

// Score reports the current score of a word, applying the usual
// normalization first. The second result is false for untracked words.
func (e *Engine) Score(word string) (int, bool) {
	score, ok := e.scores[normalizeWord(word)]
	return score, ok
}

// Len returns the number of tracked words.
func (e *Engine) Len() int {
	return len(e.scores)
}

// Top returns a ranked snapshot of the score table: entries scoring at
// least MinScore, sorted by score descending with lexicographic order
// between equals. A positive n caps the result; n <= 0 applies the
// configured MaxKeywords cap instead.
func (e *Engine) Top(n int) []Keyword {
	keywords := make([]Keyword, 0, len(e.scores))
	for word, score := range e.scores {
		if score < e.config.MinScore {
			continue
		}
		keywords = append(keywords, Keyword{Word: word, Score: score})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Score != keywords[j].Score {
			return keywords[i].Score > keywords[j].Score
		}
		return keywords[i].Word < keywords[j].Word
	})

	limit := n
	if limit <= 0 {
		limit = e.config.MaxKeywords
	}
	if limit > 0 && len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}
