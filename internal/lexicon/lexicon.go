// Package lexicon holds the immutable Chinese lexical data tables:
// per-character tone/pinyin/difficulty/HSK metadata, the compound-word
// dictionary, HSK word lists, stroke-complexity buckets, tone-sandhi
// and common-phrase bonus patterns, and the hallucination phrase list.
//
// All tables are loaded once by New and never mutated afterwards, so a
// single Lexicon is safe for concurrent use without locking.
package lexicon

import "sort"

// Entry is the static metadata for a single Han character.
type Entry struct {
	Char       rune
	Tone       int     // 0 = neutral, 1-4 = Mandarin tones
	Pinyin     string
	Difficulty float64 // 0 (trivial) .. 1 (hard)
	HSK        int     // 1-6, 0 = not in any HSK list
}

// Lexicon exposes read-only lookups over the static data tables.
type Lexicon struct {
	chars     map[rune]Entry
	compounds []string // sorted descending by rune length
	hskWords  map[string]int
	strokes   map[rune]int // stroke-complexity bucket 1-4
}

// New builds a Lexicon from the embedded data tables.
func New() *Lexicon {
	lex := &Lexicon{
		chars:    charTable,
		hskWords: hskWordTable,
		strokes:  strokeBuckets,
	}

	lex.compounds = make([]string, len(compoundWords))
	copy(lex.compounds, compoundWords)
	sort.SliceStable(lex.compounds, func(i, j int) bool {
		return len([]rune(lex.compounds[i])) > len([]rune(lex.compounds[j]))
	})

	return lex
}

// Entry returns the metadata for a character. ok is false for
// characters outside the table.
func (l *Lexicon) Entry(r rune) (Entry, bool) {
	e, ok := l.chars[r]
	return e, ok
}

// Compounds returns the compound dictionary, longest entries first.
// Callers must not modify the returned slice.
func (l *Lexicon) Compounds() []string { return l.compounds }

// HSKWordLevel returns the HSK level of a multi-character word, or 0
// if the word is not in any list.
func (l *Lexicon) HSKWordLevel(word string) int { return l.hskWords[word] }

// StrokeBucket returns the stroke-complexity bucket (1 = simple ..
// 4 = very complex) for a character, or 0 if unknown.
func (l *Lexicon) StrokeBucket(r rune) int { return l.strokes[r] }

// HallucinationPhrases returns the curated list of phrases that ASR
// engines commonly fabricate on silent or noisy audio.
func HallucinationPhrases() []string { return hallucinationPhrases }
