// Package lexicon is an in-process classifier matching selections against
// labelled word lists with an Aho-Corasick automaton.
package lexicon

import (
	"context"
	"log/slog"
	"selection-lab/contract"
	"selection-lab/domain/selection"
	"selection-lab/errors"
	"sort"
	"unicode"

	"github.com/abadojack/whatlanggo"
	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var _ contract.Classifier = (*Classifier)(nil)

type Classifier struct {
	matcher *goahocorasick.Machine
	labels  map[string]string
	log     *slog.Logger
}

type textMapping struct {
	normalized []rune
	origIdx    []int
}

type match struct {
	start int
	end   int
	label string
}

func (m match) length() int { return m.end - m.start }

// New builds the automaton from label -> words entries.
// Words are normalized the same way as the searched text, so "new  york",
// "New York" and "N3w Y0rk" all hit the same pattern.
func New(entries map[string][]string, log *slog.Logger) (*Classifier, error) {
	labels := make(map[string]string)
	var patterns [][]rune
	for label, words := range entries {
		for _, word := range words {
			pattern := normalizeRunes([]rune(word))
			if len(pattern) == 0 {
				continue
			}
			if _, ok := labels[string(pattern)]; ok {
				continue
			}
			labels[string(pattern)] = label
			patterns = append(patterns, pattern)
		}
	}
	if len(patterns) == 0 {
		return nil, errors.ErrEmptyWords
	}

	sort.Slice(patterns, func(i, j int) bool { return string(patterns[i]) < string(patterns[j]) })

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Classifier{matcher: m, labels: labels, log: log}, nil
}

// Classify labels the selection with the longest known word it holds.
// For SuggestAndClassify the boundaries snap to the longest known word
// overlapping the selection, so selecting "york" in "I love New York"
// suggests "New York".
func (c *Classifier) Classify(ctx context.Context, request selection.Request) (selection.Result, error) {
	if err := ctx.Err(); err != nil {
		return selection.Result{}, err
	}

	runes := []rune(request.Text)
	matches := c.search(runes)

	var best match
	var found bool
	if request.Kind == selection.SuggestAndClassify {
		best, found = longest(matches, func(m match) bool { return overlaps(m, request.Start, request.End) })
	} else {
		best, found = longest(matches, func(m match) bool { return m.start >= request.Start && m.end <= request.End })
	}

	if err := ctx.Err(); err != nil {
		return selection.Result{}, err
	}
	if !found {
		return selection.Result{}, errors.ErrNoClassification
	}

	result := selection.Result{
		Label:  lo.Capitalize(best.label),
		Action: c.action(request.Text, best, runes),
	}
	if request.Kind == selection.SuggestAndClassify {
		result.StartAdjust = best.start - request.Start
		result.EndAdjust = best.end - request.End
	}
	c.log.Debug("Selection classified", "id", request.ID, "label", result.Label)
	return result, nil
}

func (c *Classifier) action(text string, m match, runes []rune) selection.Action {
	info := whatlanggo.Detect(text)
	return selection.Action{
		ID:     uuid.NewString(),
		Intent: "lookup:" + m.label,
		Extras: map[string]string{
			"lang":  info.Lang.Iso6391(),
			"match": string(runes[m.start:m.end]),
		},
	}
}

// search returns every match aligned on word boundaries of the original text.
func (c *Classifier) search(runes []rune) []match {
	mapping := normalize(runes)
	if len(mapping.normalized) == 0 {
		return nil
	}

	var res []match
	for _, term := range c.matcher.MultiPatternSearch(mapping.normalized, false) {
		normStart := term.Pos
		normEnd := normStart + len(term.Word)
		if normStart < 0 || normEnd > len(mapping.origIdx) {
			continue
		}

		start := mapping.origIdx[normStart]
		end := mapping.origIdx[normEnd-1] + 1
		if !isWordBoundary(runes, start, end) {
			continue
		}
		res = append(res, match{start: start, end: end, label: c.labels[string(term.Word)]})
	}
	return res
}

func longest(matches []match, keep func(m match) bool) (match, bool) {
	var best match
	found := false
	for _, m := range matches {
		if !keep(m) {
			continue
		}
		if !found || m.length() > best.length() || (m.length() == best.length() && m.start < best.start) {
			best, found = m, true
		}
	}
	return best, found
}

// overlaps treats an empty selection as a caret, touching a word counts.
func overlaps(m match, start, end int) bool {
	if start == end {
		return m.start <= start && start <= m.end
	}
	return m.start < end && m.end > start
}

func isWordBoundary(runes []rune, start, end int) bool {
	if start > 0 && isWordRune(runes[start-1]) {
		return false
	}
	if end < len(runes) && isWordRune(runes[end]) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-'
}

// normalize transforms the text into a searchable form and tracks original rune positions.
// Whitespace runs collapse into a single space, so a pattern never spans two
// words unless it holds a space itself. Other punctuation is dropped.
func normalize(runes []rune) textMapping {
	norm := make([]rune, 0, len(runes))
	origIdx := make([]int, 0, len(runes))

	afterSpace := true
	for i, r := range runes {
		if unicode.IsSpace(r) {
			if !afterSpace {
				norm = append(norm, ' ')
				origIdx = append(origIdx, i)
				afterSpace = true
			}
			continue
		}
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
		afterSpace = false
	}
	return textMapping{normalized: norm, origIdx: origIdx}
}

func normalizeRunes(input []rune) []rune {
	norm := normalize(input).normalized
	for len(norm) > 0 && norm[len(norm)-1] == ' ' {
		norm = norm[:len(norm)-1]
	}
	return norm
}

// simplifyRune maps common leet speak characters back to letters.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	if r == '\'' || r == '-' {
		return false
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
