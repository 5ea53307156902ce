package lexicon

// compoundWords is the multi-character word dictionary used by the
// segmenter. New() sorts it descending by rune length so the greedy
// longest-match walk can try entries in order.
var compoundWords = []string{
	"你好", "谢谢", "再见", "对不起", "没关系", "不客气",
	"中国", "中文", "汉语", "名字", "什么", "老师", "学生", "学习",
	"朋友", "电影", "工作", "时候", "现在", "今天", "明天", "昨天",
	"因为", "所以", "可以", "但是", "知道", "觉得", "喜欢", "已经",
	"非常", "虽然", "如果", "应该", "愿意", "或者", "尽管",
	"吃饭", "喝茶", "喝水", "说话", "上午", "下午", "大家", "多少",
	"不是", "可是", "一起", "起来", "为什么", "不好意思",
}

// hskWordTable maps compound words to their HSK level. Single
// characters resolve through charTable instead.
var hskWordTable = map[string]int{
	"你好": 1, "谢谢": 1, "再见": 1, "中国": 1, "名字": 1, "什么": 1,
	"老师": 1, "学生": 1, "学习": 1, "汉语": 1, "朋友": 1, "电影": 1,
	"今天": 1, "明天": 1, "昨天": 1, "多少": 1, "喜欢": 1, "吃饭": 1,
	"工作": 2, "时候": 2, "现在": 2, "因为": 2, "所以": 2, "可以": 2,
	"但是": 2, "知道": 2, "觉得": 2, "对不起": 2, "没关系": 2,
	"不客气": 2, "为什么": 2, "一起": 2,
	"已经": 3, "非常": 3, "虽然": 3, "如果": 3, "应该": 3,
	"愿意": 4, "或者": 4, "不好意思": 4,
	"尽管": 5,
}

// strokeBuckets groups characters by handwriting complexity:
// 1 = 1-5 strokes, 2 = 6-9, 3 = 10-14, 4 = 15+. Used by lesson
// difficulty weighting downstream; the scorer only reads buckets.
var strokeBuckets = map[rune]int{
	'一': 1, '二': 1, '三': 1, '十': 1, '人': 1, '大': 1, '小': 1,
	'上': 1, '下': 1, '个': 1, '么': 1, '也': 1, '不': 1, '五': 1,
	'天': 1, '中': 1, '日': 1, '月': 1, '水': 1, '见': 1, '今': 1,
	'好': 2, '你': 2, '有': 2, '在': 2, '多': 2, '吗': 2, '吃': 2,
	'名': 2, '字': 2, '老': 2, '师': 2, '年': 2, '再': 2, '那': 2,
	'这': 2, '没': 2, '妈': 2, '我': 2, '他': 2, '她': 2, '们': 2,
	'学': 2, '话': 2, '对': 2, '关': 2, '时': 2, '成': 2,
	'很': 3, '说': 3, '起': 3, '候': 3, '家': 3, '茶': 3, '饭': 3,
	'语': 3, '觉': 3, '高': 3, '谢': 3, '能': 3, '想': 3, '道': 3,
	'喝': 3, '喜': 3, '欢': 3, '朋': 3, '电': 3, '常': 3, '经': 3,
	'影': 4, '愿': 4, '管': 4,
}
