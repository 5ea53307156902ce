package score

import (
	"github.com/snarg/hanyu-engine/internal/report"
)

// charSpan carries per-character timing derived from vendor word
// tokens. A token's span and confidence apply to each of its Han
// characters, which keeps alignment stable across vendors that
// tokenize per character, per word, or per phrase.
type charSpan struct {
	start, end float64
	conf       float64
	hasTiming  bool
}

type timeline []charSpan

// charTimeline flattens a transcription's word tokens into a
// per-character timeline over the transcript's Han characters.
func charTimeline(t report.Transcription) timeline {
	var tl timeline
	for _, w := range t.Words {
		for _, r := range w.Text {
			if r < 0x4E00 || r > 0x9FFF {
				continue
			}
			tl = append(tl, charSpan{
				start:     w.StartTime,
				end:       w.EndTime,
				conf:      w.Confidence,
				hasTiming: w.EndTime > w.StartTime,
			})
		}
	}
	return tl
}

// spanFor aggregates the timeline entries covering n characters from
// rune offset pos: averaged confidence, min start, max end. Positions
// past the end of the timeline fall back to half the transcription
// confidence (the recognizer produced nothing there) and no timing.
func (tl timeline) spanFor(pos, n int, fallbackConf float64) (conf, start, end float64) {
	if n <= 0 {
		return fallbackConf, 0, 0
	}

	sum := 0.0
	covered := 0
	timed := false
	for i := pos; i < pos+n && i < len(tl); i++ {
		sum += tl[i].conf
		covered++
		if tl[i].hasTiming {
			if !timed || tl[i].start < start {
				start = tl[i].start
			}
			if !timed || tl[i].end > end {
				end = tl[i].end
			}
			timed = true
		}
	}

	if covered == 0 {
		return fallbackConf * 0.5, 0, 0
	}

	conf = sum / float64(covered)
	if covered < n {
		// partially covered segment: blend toward the miss penalty
		conf = (conf*float64(covered) + fallbackConf*0.5*float64(n-covered)) / float64(n)
	}
	if !timed {
		return conf, 0, 0
	}
	return conf, start, end
}
