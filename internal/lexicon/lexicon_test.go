package lexicon

import "testing"

func TestCompoundsSortedLongestFirst(t *testing.T) {
	lex := New()
	compounds := lex.Compounds()
	if len(compounds) == 0 {
		t.Fatal("compound dictionary is empty")
	}
	prev := len([]rune(compounds[0]))
	for _, w := range compounds[1:] {
		n := len([]rune(w))
		if n > prev {
			t.Fatalf("compound %q (len %d) sorted after a shorter entry (len %d)", w, n, prev)
		}
		prev = n
	}
}

func TestEntryLookup(t *testing.T) {
	lex := New()

	e, ok := lex.Entry('你')
	if !ok {
		t.Fatal("expected entry for 你")
	}
	if e.Tone != 3 || e.HSK != 1 {
		t.Errorf("你: got tone=%d hsk=%d, want tone=3 hsk=1", e.Tone, e.HSK)
	}

	if _, ok := lex.Entry('龘'); ok {
		t.Error("expected no entry for 龘")
	}
}

func TestHSKWordLevel(t *testing.T) {
	lex := New()
	if lvl := lex.HSKWordLevel("你好"); lvl != 1 {
		t.Errorf("你好: got HSK %d, want 1", lvl)
	}
	if lvl := lex.HSKWordLevel("尽管"); lvl != 5 {
		t.Errorf("尽管: got HSK %d, want 5", lvl)
	}
	if lvl := lex.HSKWordLevel("不存在"); lvl != 0 {
		t.Errorf("unknown word: got HSK %d, want 0", lvl)
	}
}

func TestSandhiPatternsCoverCanonicalCases(t *testing.T) {
	var yi, bu bool
	for _, p := range SandhiPatterns() {
		if p.Char == '一' {
			yi = true
		}
		if p.Char == '不' {
			bu = true
		}
	}
	if !yi || !bu {
		t.Errorf("sandhi table missing canonical chars: 一=%v 不=%v", yi, bu)
	}
}
