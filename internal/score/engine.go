// Package score turns a provider transcription plus lexical metadata
// into per-word assessments and an overall accuracy figure. All
// formulas are pure; a single Engine serves concurrent requests.
package score

import (
	"time"

	"github.com/snarg/hanyu-engine/internal/audio"
	"github.com/snarg/hanyu-engine/internal/halluc"
	"github.com/snarg/hanyu-engine/internal/lexicon"
	"github.com/snarg/hanyu-engine/internal/report"
	"github.com/snarg/hanyu-engine/internal/segment"
)

// Sub-score weights for the overall word score.
const (
	toneWeight    = 0.4
	pronWeight    = 0.4
	fluencyWeight = 0.2

	// Fluency duration windows, seconds. [minOptimal, maxOptimal] is
	// the no-penalty zone; beyond the hard bounds a penalty applies.
	tooFastSec = 0.2
	minOptimal = 0.3
	maxOptimal = 0.8
	tooSlowSec = 1.0

	maxContextBonus = 10.0

	// issueThreshold is the sub-score below which a word gets tagged.
	issueThreshold = 60.0
)

// Engine computes word and report scores.
type Engine struct {
	lex *lexicon.Lexicon
	seg *segment.Segmenter
}

// NewEngine creates a scoring engine over the shared lexicon.
func NewEngine(lex *lexicon.Lexicon, seg *segment.Segmenter) *Engine {
	return &Engine{lex: lex, seg: seg}
}

// Segmenter exposes the engine's segmenter to providers that need to
// walk the target text themselves (the mock path).
func (e *Engine) Segmenter() *segment.Segmenter { return e.seg }

// Input bundles everything BuildReport needs for one analysis.
type Input struct {
	Target        string
	Transcription report.Transcription
	Quality       audio.Assessment
	Provider      string
	AnalysisID    string
}

// BuildReport runs hallucination detection, scores every target
// segment against the transcript and assembles the final report.
func (e *Engine) BuildReport(in Input) *report.Report {
	verdict := halluc.Detect(in.Transcription.Transcript, in.Target)

	targetSegs := e.seg.Segment(in.Target)
	transSegs := e.seg.Segment(in.Transcription.Transcript)
	timeline := charTimeline(in.Transcription)

	words := make([]report.WordAssessment, 0, len(targetSegs))
	charPos := 0
	matches := 0
	for i, seg := range targetSegs {
		isCorrect := i < len(transSegs) && transSegs[i] == seg
		if isCorrect {
			matches++
		}

		conf, start, end := timeline.spanFor(charPos, len([]rune(seg)), in.Transcription.Confidence)
		wa := e.scoreSegment(seg, in.Target, charPos, conf, isCorrect, start, end, in.Quality)
		applyPenalty(&wa, verdict)
		words = append(words, wa)

		charPos += len([]rune(seg))
	}

	accuracy := 0.0
	if len(targetSegs) > 0 {
		accuracy = float64(matches) / float64(len(targetSegs)) * 100 * in.Quality.QualityFactor()
	}

	rep := &report.Report{
		AnalysisID:      in.AnalysisID,
		OverallAccuracy: accuracy,
		Transcription:   in.Transcription,
		Words:           words,
		AudioQuality:    in.Quality,
		Hallucination:   verdict,
		Provider:        in.Provider,
		Timestamp:       time.Now().UTC(),
	}
	rep.Recommendations = Recommendations(rep)
	return rep
}

// scoreSegment computes the unpenalized assessment for one segment.
// charPos is the segment's rune offset within the Han-cleaned target,
// used for contextual bonuses.
func (e *Engine) scoreSegment(seg, target string, charPos int, conf float64, isCorrect bool, start, end float64, q audio.Assessment) report.WordAssessment {
	tone := e.toneScore(seg, conf, isCorrect)
	pron := pronunciationScore(conf, isCorrect)
	fluency := fluencyScore(conf, start, end, q)

	overall := tone*toneWeight + pron*pronWeight + fluency*fluencyWeight
	overall += e.contextBonus(seg, target, charPos)
	overall = clamp(overall, 0, 100)

	wa := report.WordAssessment{
		Word:   seg,
		Pinyin: e.pinyinFor(seg),
		Score:  overall,
		Details: report.ScoreDetails{
			Tone:          tone,
			Pronunciation: pron,
			Fluency:       fluency,
			Confidence:    clamp(conf*100, 0, 100),
		},
	}
	wa.Feedback = feedbackFor(wa, isCorrect)
	wa.Issues = issuesFor(wa.Details)
	return wa
}

// toneScore follows confidence, penalized by the segment's tonal
// difficulty and shifted by positional correctness. Segments with no
// tone metadata score from a neutral baseline without the difficulty
// penalty. Clamped to [20,100].
func (e *Engine) toneScore(seg string, conf float64, isCorrect bool) float64 {
	base := conf * 100
	if known, difficulty := e.toneDifficulty(seg); known {
		base -= difficulty * 20
	}
	if isCorrect {
		base += 20
	} else {
		base -= 30
	}
	return clamp(base, 20, 100)
}

// toneDifficulty averages the lexical difficulty of the segment's
// characters that carry tone metadata. known is false when none do.
func (e *Engine) toneDifficulty(seg string) (known bool, difficulty float64) {
	sum, n := 0.0, 0
	for _, r := range seg {
		if entry, ok := e.lex.Entry(r); ok {
			sum += entry.Difficulty
			n++
		}
	}
	if n == 0 {
		return false, 0
	}
	return true, sum / float64(n)
}

// pronunciationScore sits in a high band when the segment matched its
// position in the transcript and a low band otherwise.
func pronunciationScore(conf float64, isCorrect bool) float64 {
	if isCorrect {
		return clamp(75+conf*25, 0, 100)
	}
	return clamp(40+conf*30, 0, 100)
}

// fluencyScore starts at 100, penalizes rushed (<0.2s) or dragged
// (>1.0s) segments, then scales by confidence and audio quality.
// Segments without timing only get the confidence/quality scaling.
func fluencyScore(conf float64, start, end float64, q audio.Assessment) float64 {
	score := 100.0
	dur := end - start
	if dur > 0 {
		switch {
		case dur < tooFastSec:
			score -= 30
		case dur > tooSlowSec:
			score -= 20
		}
		// durations inside [minOptimal, maxOptimal] and the grace zones
		// on either side carry no penalty
	}
	score *= conf
	score *= q.QualityFactor()
	return clamp(score, 20, 100)
}

// contextBonus rewards tone sandhi read naturally and segments from
// drilled set phrases. Capped at maxContextBonus.
func (e *Engine) contextBonus(seg, target string, charPos int) float64 {
	bonus := lexicon.PhraseBonus(seg)

	targetRunes := []rune(segment.CleanHan(target))
	segRunes := []rune(seg)
	nextPos := charPos + len(segRunes)
	if len(segRunes) > 0 && nextPos < len(targetRunes) {
		last := segRunes[len(segRunes)-1]
		if next, ok := e.lex.Entry(targetRunes[nextPos]); ok {
			for _, p := range lexicon.SandhiPatterns() {
				if p.Char != last {
					continue
				}
				for _, t := range p.Tones {
					if t == next.Tone {
						bonus += p.Bonus
						break
					}
				}
			}
		}
	}

	if bonus > maxContextBonus {
		bonus = maxContextBonus
	}
	return bonus
}

// applyPenalty scales the word score and sub-scores by the
// hallucination multiplier; a zero-out wipes them exactly.
func applyPenalty(wa *report.WordAssessment, v halluc.Verdict) {
	m := v.Multiplier()
	if m == 1.0 {
		return
	}
	if v.ShouldZeroOut() {
		wa.Score = 0
		wa.Details = report.ScoreDetails{}
	} else {
		wa.Score *= m
		wa.Details.Tone *= m
		wa.Details.Pronunciation *= m
		wa.Details.Fluency *= m
	}
	wa.Issues = append(wa.Issues, report.IssueHallucination)
	wa.Feedback = "This word may not have been spoken clearly — the recognizer produced unrelated text."
}

func (e *Engine) pinyinFor(seg string) string {
	out := ""
	for _, r := range seg {
		if entry, ok := e.lex.Entry(r); ok {
			if out != "" {
				out += " "
			}
			out += entry.Pinyin
		}
	}
	return out
}

func feedbackFor(wa report.WordAssessment, isCorrect bool) string {
	switch {
	case !isCorrect:
		return "The recognizer heard something different here — repeat this word slowly."
	case wa.Details.Tone < issueThreshold:
		return "The tone contour needs work — exaggerate the pitch change."
	case wa.Details.Fluency < issueThreshold:
		return "Try to keep a steady, natural pace on this word."
	case wa.Score >= 90:
		return "Excellent."
	default:
		return "Good — keep practicing for consistency."
	}
}

func issuesFor(d report.ScoreDetails) []report.Issue {
	var issues []report.Issue
	if d.Tone < issueThreshold {
		issues = append(issues, report.IssueTone)
	}
	if d.Pronunciation < issueThreshold {
		issues = append(issues, report.IssuePronunciation)
	}
	if d.Fluency < issueThreshold {
		issues = append(issues, report.IssueFluency)
	}
	return issues
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
