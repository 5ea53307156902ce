package segment

import (
	"reflect"
	"testing"

	"github.com/snarg/hanyu-engine/internal/lexicon"
)

func newTestSegmenter() *Segmenter {
	return New(lexicon.New())
}

func TestSegmentLongestMatchWins(t *testing.T) {
	s := newTestSegmenter()

	got := s.Segment("你好吗")
	want := []string{"你好", "吗"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Segment(你好吗) = %v, want %v", got, want)
	}
}

func TestSegmentDeterministic(t *testing.T) {
	s := newTestSegmenter()

	first := s.Segment("我喜欢学习中文")
	second := s.Segment("我喜欢学习中文")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("segmentation not deterministic: %v vs %v", first, second)
	}
}

func TestSegmentCases(t *testing.T) {
	s := newTestSegmenter()

	cases := []struct {
		text string
		want []string
	}{
		{"对不起", []string{"对不起"}},
		{"我是学生", []string{"我", "是", "学生"}},
		{"Hello, 你好!", []string{"你好"}},
		{"为什么不去", []string{"为什么", "不", "去"}},
		{"", nil},
		{"abc 123", nil},
	}
	for _, tc := range cases {
		got := s.Segment(tc.text)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Segment(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestCleanHan(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"你好, world!", "你好"},
		{"１２３", ""}, // fullwidth digits are outside the Han block
		{"汉字123漢字", "汉字漢字"},
	}
	for _, tc := range cases {
		if got := CleanHan(tc.in); got != tc.want {
			t.Errorf("CleanHan(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHSKLevel(t *testing.T) {
	s := newTestSegmenter()

	if lvl := s.HSKLevel("你好"); lvl != 1 {
		t.Errorf("HSKLevel(你好) = %d, want 1", lvl)
	}
	// 时候 is HSK2 as a word; char-level max would also be 2.
	if lvl := s.HSKLevel("时候"); lvl != 2 {
		t.Errorf("HSKLevel(时候) = %d, want 2", lvl)
	}
	if lvl := s.HSKLevel("龘"); lvl != 0 {
		t.Errorf("HSKLevel(unknown) = %d, want 0", lvl)
	}
}

func TestDifficultyLengthMultiplier(t *testing.T) {
	s := newTestSegmenter()

	single := s.Difficulty("你")
	if single != 0.1 {
		t.Errorf("Difficulty(你) = %v, want 0.1", single)
	}

	// Unknown char defaults to 0.5.
	if got := s.Difficulty("龘"); got != 0.5 {
		t.Errorf("Difficulty(unknown) = %v, want 0.5", got)
	}

	// Multiplier caps at 1.2 for 3+ character segments.
	long := s.Difficulty("不好意思")
	avg := long / 1.2
	if avg <= 0 || avg > 1 {
		t.Errorf("Difficulty(不好意思) = %v, implies avg %v outside (0,1]", long, avg)
	}
}
