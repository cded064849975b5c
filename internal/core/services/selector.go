package services

import (
	"sort"
	"strings"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// DefaultMaxResults is the default cap on relevance matches per question.
const DefaultMaxResults = 3

// DefaultFallbackLength is the default number of characters returned per
// source when no sentence overlaps the question.
const DefaultFallbackLength = 300

// minKeywordLength is the shortest question token treated as a keyword.
// Dropping tokens of 3 characters or fewer is a crude stopword filter,
// not real stopword removal.
const minKeywordLength = 4

// sentenceDelimiters terminate sentence-like units in candidate text.
const sentenceDelimiters = ".!?"

// RelevanceSelector picks the text fragments most likely to answer a
// question using keyword overlap.
//
// This is a lexical heuristic, not semantic search: a sentence scores by the
// fraction of question keywords it literally contains, so synonyms and
// paraphrases never match. It is deliberately simple and fully deterministic.
type RelevanceSelector struct {
	maxResults     int
	fallbackLength int
}

// SelectorOption configures a RelevanceSelector.
type SelectorOption func(*RelevanceSelector)

// WithMaxResults sets the default cap on returned matches.
func WithMaxResults(n int) SelectorOption {
	return func(s *RelevanceSelector) {
		if n > 0 {
			s.maxResults = n
		}
	}
}

// WithFallbackLength sets how many characters of a source's text are
// returned when nothing overlaps the question.
func WithFallbackLength(n int) SelectorOption {
	return func(s *RelevanceSelector) {
		if n > 0 {
			s.fallbackLength = n
		}
	}
}

// NewRelevanceSelector creates a selector with the given options.
func NewRelevanceSelector(opts ...SelectorOption) *RelevanceSelector {
	s := &RelevanceSelector{
		maxResults:     DefaultMaxResults,
		fallbackLength: DefaultFallbackLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select scores every sentence of every candidate against the question and
// returns at most maxResults matches ordered by descending score. Ties keep
// the original candidate order. maxResults <= 0 uses the selector's default.
//
// When no sentence scores above zero - including questions with no usable
// keywords - Select falls back to one zero-score match per distinct
// non-empty source, holding the first fallbackLength characters of that
// source's text, so the caller always has something to show.
func (s *RelevanceSelector) Select(question string, candidates []domain.Candidate, maxResults int) []domain.RelevanceMatch {
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	keywords := extractKeywords(question)

	var matches []domain.RelevanceMatch
	if len(keywords) > 0 {
		for _, cand := range candidates {
			for _, sentence := range splitSentences(cand.Text) {
				score := scoreSentence(sentence, keywords)
				if score <= 0 {
					continue
				}
				matches = append(matches, domain.RelevanceMatch{
					SourceID:   cand.SourceID,
					SourceName: cand.SourceName,
					ChunkIndex: cand.ChunkIndex,
					Text:       sentence,
					Score:      score,
				})
			}
		}
	}

	if len(matches) == 0 {
		return s.fallbackMatches(candidates, maxResults)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// fallbackMatches returns one truncated zero-score match per distinct
// non-empty source, in first-appearance order.
func (s *RelevanceSelector) fallbackMatches(candidates []domain.Candidate, maxResults int) []domain.RelevanceMatch {
	seen := make(map[string]bool)
	var matches []domain.RelevanceMatch

	for _, cand := range candidates {
		if seen[cand.SourceID] {
			continue
		}
		text := strings.TrimSpace(cand.Text)
		if text == "" {
			continue
		}
		seen[cand.SourceID] = true

		runes := []rune(text)
		if len(runes) > s.fallbackLength {
			text = string(runes[:s.fallbackLength])
		}

		matches = append(matches, domain.RelevanceMatch{
			SourceID:   cand.SourceID,
			SourceName: cand.SourceName,
			ChunkIndex: cand.ChunkIndex,
			Text:       text,
			Score:      0,
		})
		if len(matches) >= maxResults {
			break
		}
	}

	return matches
}

// extractKeywords lower-cases the question, splits on whitespace, and keeps
// tokens longer than 3 characters.
func extractKeywords(question string) []string {
	fields := strings.Fields(strings.ToLower(question))

	keywords := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) >= minKeywordLength {
			keywords = append(keywords, f)
		}
	}
	return keywords
}

// scoreSentence returns the fraction of keywords the sentence contains.
func scoreSentence(sentence string, keywords []string) float64 {
	lower := strings.ToLower(sentence)

	matched := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matched++
		}
	}
	return float64(matched) / float64(len(keywords))
}

// splitSentences splits text into sentence-like units on '.', '!' and '?'.
// Empty and whitespace-only units are discarded.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for _, r := range text {
		current.WriteRune(r)
		if strings.ContainsRune(sentenceDelimiters, r) {
			flush()
		}
	}
	flush()

	return sentences
}
