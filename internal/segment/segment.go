// Package segment splits Chinese text into lexical units using greedy
// longest-match against the compound dictionary, and scores units for
// HSK level and difficulty.
package segment

import (
	"strings"

	"github.com/snarg/hanyu-engine/internal/lexicon"
)

// unknownCharDifficulty is assumed for characters outside the table.
const unknownCharDifficulty = 0.5

// Segmenter is a pure function of the text and the fixed compound
// dictionary; it is safe for concurrent use.
type Segmenter struct {
	lex *lexicon.Lexicon
}

// New creates a Segmenter over the given lexicon.
func New(lex *lexicon.Lexicon) *Segmenter {
	return &Segmenter{lex: lex}
}

// CleanHan strips everything outside the CJK Unified Ideographs block
// (U+4E00–U+9FFF): punctuation, Latin text, whitespace, digits.
func CleanHan(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r >= 0x4E00 && r <= 0x9FFF {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Segment splits text into compounds and single characters. The text
// is Han-filtered first. At each position the longest matching
// dictionary compound wins; otherwise the single character is emitted.
func (s *Segmenter) Segment(text string) []string {
	runes := []rune(CleanHan(text))
	if len(runes) == 0 {
		return nil
	}

	var segs []string
	for i := 0; i < len(runes); {
		matched := ""
		for _, w := range s.lex.Compounds() {
			wr := []rune(w)
			if len(wr) > len(runes)-i {
				continue
			}
			if string(runes[i:i+len(wr)]) == w {
				matched = w
				break // dictionary is longest-first
			}
		}
		if matched != "" {
			segs = append(segs, matched)
			i += len([]rune(matched))
			continue
		}
		segs = append(segs, string(runes[i]))
		i++
	}
	return segs
}

// HSKLevel returns the HSK level of a segment: the word-list level for
// known compounds, otherwise the max level across its characters.
// 0 means unknown.
func (s *Segmenter) HSKLevel(seg string) int {
	if lvl := s.lex.HSKWordLevel(seg); lvl > 0 {
		return lvl
	}
	max := 0
	for _, r := range seg {
		if e, ok := s.lex.Entry(r); ok && e.HSK > max {
			max = e.HSK
		}
	}
	return max
}

// Difficulty returns the length-weighted average per-character
// difficulty of a segment. Unknown characters count as 0.5; longer
// segments are scaled by min(1.2, 1 + 0.1*(len-1)).
func (s *Segmenter) Difficulty(seg string) float64 {
	runes := []rune(seg)
	if len(runes) == 0 {
		return 0
	}

	sum := 0.0
	for _, r := range runes {
		if e, ok := s.lex.Entry(r); ok {
			sum += e.Difficulty
		} else {
			sum += unknownCharDifficulty
		}
	}
	avg := sum / float64(len(runes))

	mult := 1 + 0.1*float64(len(runes)-1)
	if mult > 1.2 {
		mult = 1.2
	}
	return avg * mult
}
