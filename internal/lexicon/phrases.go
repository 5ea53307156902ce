package lexicon

// hallucinationPhrases are transcripts ASR engines fabricate on
// silence, music or noise. Matching is case-insensitive substring
// (with a fuzzy near-miss pass in the detector). English entries come
// from Whisper's well-known video-caption training artifacts; the
// Chinese entries are the equivalent outro/subscribe phrases.
var hallucinationPhrases = []string{
	"thank you for watching",
	"thanks for watching",
	"please subscribe",
	"don't forget to subscribe",
	"like and subscribe",
	"see you in the next video",
	"see you next time",
	"subtitles by",
	"copyright",
	"www.",
	"请不吝点赞",
	"订阅",
	"点赞",
	"关注",
	"转发",
	"打赏",
	"支持明镜",
	"感谢观看",
	"谢谢观看",
	"下次再见",
	"字幕由",
	"amara.org",
}

// sandhiPatterns are contextual tone-change rules. Pattern chars that
// precede a following tone in Tones earn Bonus points for being read
// in natural connected speech. 一 and 不 are the canonical cases.
type SandhiPattern struct {
	Char  rune
	Tones []int // following-character tones that trigger the sandhi
	Bonus float64
}

var sandhiPatterns = []SandhiPattern{
	{Char: '一', Tones: []int{4}, Bonus: 5},       // yī → yí before tone 4
	{Char: '一', Tones: []int{1, 2, 3}, Bonus: 4}, // yī → yì before 1/2/3
	{Char: '不', Tones: []int{4}, Bonus: 5},       // bù → bú before tone 4
	{Char: '好', Tones: []int{3}, Bonus: 3},       // third-tone chain
	{Char: '很', Tones: []int{3}, Bonus: 3},
	{Char: '我', Tones: []int{3}, Bonus: 3},
	{Char: '你', Tones: []int{3}, Bonus: 3},
}

// commonPhraseBonuses reward segments produced inside set phrases that
// learners drill as a unit; reading them connectedly earns the bonus.
var commonPhraseBonuses = map[string]float64{
	"你好":   5,
	"谢谢":   5,
	"再见":   5,
	"对不起":  6,
	"没关系":  6,
	"不客气":  6,
	"不好意思": 7,
	"为什么":  4,
}

// SandhiPatterns returns the tone-sandhi bonus rules.
func SandhiPatterns() []SandhiPattern { return sandhiPatterns }

// PhraseBonus returns the set-phrase bonus for a phrase, 0 if none.
func PhraseBonus(phrase string) float64 { return commonPhraseBonuses[phrase] }
