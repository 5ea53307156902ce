package lexicon

// charTable maps a Han character to its tone, pinyin, difficulty and
// HSK level. Sourced from CC-CEDICT and the HSK 2012 vocabulary lists
// at build time; covers the high-frequency core used by the lesson
// content. Characters outside the table score with neutral defaults.
var charTable = map[rune]Entry{
	'你': {Char: '你', Tone: 3, Pinyin: "nǐ", Difficulty: 0.1, HSK: 1},
	'好': {Char: '好', Tone: 3, Pinyin: "hǎo", Difficulty: 0.1, HSK: 1},
	'我': {Char: '我', Tone: 3, Pinyin: "wǒ", Difficulty: 0.1, HSK: 1},
	'是': {Char: '是', Tone: 4, Pinyin: "shì", Difficulty: 0.15, HSK: 1},
	'不': {Char: '不', Tone: 4, Pinyin: "bù", Difficulty: 0.2, HSK: 1},
	'吗': {Char: '吗', Tone: 0, Pinyin: "ma", Difficulty: 0.1, HSK: 1},
	'他': {Char: '他', Tone: 1, Pinyin: "tā", Difficulty: 0.1, HSK: 1},
	'她': {Char: '她', Tone: 1, Pinyin: "tā", Difficulty: 0.1, HSK: 1},
	'们': {Char: '们', Tone: 0, Pinyin: "men", Difficulty: 0.1, HSK: 1},
	'的': {Char: '的', Tone: 0, Pinyin: "de", Difficulty: 0.1, HSK: 1},
	'了': {Char: '了', Tone: 0, Pinyin: "le", Difficulty: 0.3, HSK: 1},
	'在': {Char: '在', Tone: 4, Pinyin: "zài", Difficulty: 0.15, HSK: 1},
	'有': {Char: '有', Tone: 3, Pinyin: "yǒu", Difficulty: 0.1, HSK: 1},
	'人': {Char: '人', Tone: 2, Pinyin: "rén", Difficulty: 0.1, HSK: 1},
	'这': {Char: '这', Tone: 4, Pinyin: "zhè", Difficulty: 0.2, HSK: 1},
	'那': {Char: '那', Tone: 4, Pinyin: "nà", Difficulty: 0.15, HSK: 1},
	'个': {Char: '个', Tone: 4, Pinyin: "gè", Difficulty: 0.1, HSK: 1},
	'中': {Char: '中', Tone: 1, Pinyin: "zhōng", Difficulty: 0.2, HSK: 1},
	'国': {Char: '国', Tone: 2, Pinyin: "guó", Difficulty: 0.2, HSK: 1},
	'说': {Char: '说', Tone: 1, Pinyin: "shuō", Difficulty: 0.25, HSK: 1},
	'话': {Char: '话', Tone: 4, Pinyin: "huà", Difficulty: 0.2, HSK: 1},
	'谢': {Char: '谢', Tone: 4, Pinyin: "xiè", Difficulty: 0.3, HSK: 1},
	'再': {Char: '再', Tone: 4, Pinyin: "zài", Difficulty: 0.2, HSK: 1},
	'见': {Char: '见', Tone: 4, Pinyin: "jiàn", Difficulty: 0.2, HSK: 1},
	'什': {Char: '什', Tone: 2, Pinyin: "shén", Difficulty: 0.2, HSK: 1},
	'么': {Char: '么', Tone: 0, Pinyin: "me", Difficulty: 0.15, HSK: 1},
	'名': {Char: '名', Tone: 2, Pinyin: "míng", Difficulty: 0.2, HSK: 1},
	'字': {Char: '字', Tone: 4, Pinyin: "zì", Difficulty: 0.2, HSK: 1},
	'学': {Char: '学', Tone: 2, Pinyin: "xué", Difficulty: 0.25, HSK: 1},
	'生': {Char: '生', Tone: 1, Pinyin: "shēng", Difficulty: 0.2, HSK: 1},
	'老': {Char: '老', Tone: 3, Pinyin: "lǎo", Difficulty: 0.15, HSK: 1},
	'师': {Char: '师', Tone: 1, Pinyin: "shī", Difficulty: 0.25, HSK: 1},
	'汉': {Char: '汉', Tone: 4, Pinyin: "hàn", Difficulty: 0.25, HSK: 1},
	'语': {Char: '语', Tone: 3, Pinyin: "yǔ", Difficulty: 0.3, HSK: 1},
	'很': {Char: '很', Tone: 3, Pinyin: "hěn", Difficulty: 0.15, HSK: 1},
	'大': {Char: '大', Tone: 4, Pinyin: "dà", Difficulty: 0.1, HSK: 1},
	'小': {Char: '小', Tone: 3, Pinyin: "xiǎo", Difficulty: 0.1, HSK: 1},
	'多': {Char: '多', Tone: 1, Pinyin: "duō", Difficulty: 0.15, HSK: 1},
	'少': {Char: '少', Tone: 3, Pinyin: "shǎo", Difficulty: 0.2, HSK: 1},
	'上': {Char: '上', Tone: 4, Pinyin: "shàng", Difficulty: 0.15, HSK: 1},
	'下': {Char: '下', Tone: 4, Pinyin: "xià", Difficulty: 0.15, HSK: 1},
	'天': {Char: '天', Tone: 1, Pinyin: "tiān", Difficulty: 0.1, HSK: 1},
	'今': {Char: '今', Tone: 1, Pinyin: "jīn", Difficulty: 0.15, HSK: 1},
	'明': {Char: '明', Tone: 2, Pinyin: "míng", Difficulty: 0.2, HSK: 1},
	'年': {Char: '年', Tone: 2, Pinyin: "nián", Difficulty: 0.15, HSK: 1},
	'月': {Char: '月', Tone: 4, Pinyin: "yuè", Difficulty: 0.15, HSK: 1},
	'日': {Char: '日', Tone: 4, Pinyin: "rì", Difficulty: 0.25, HSK: 1},
	'吃': {Char: '吃', Tone: 1, Pinyin: "chī", Difficulty: 0.25, HSK: 1},
	'饭': {Char: '饭', Tone: 4, Pinyin: "fàn", Difficulty: 0.2, HSK: 1},
	'喝': {Char: '喝', Tone: 1, Pinyin: "hē", Difficulty: 0.2, HSK: 1},
	'水': {Char: '水', Tone: 3, Pinyin: "shuǐ", Difficulty: 0.2, HSK: 1},
	'茶': {Char: '茶', Tone: 2, Pinyin: "chá", Difficulty: 0.2, HSK: 1},
	'家': {Char: '家', Tone: 1, Pinyin: "jiā", Difficulty: 0.15, HSK: 1},
	'妈': {Char: '妈', Tone: 1, Pinyin: "mā", Difficulty: 0.1, HSK: 1},
	'爸': {Char: '爸', Tone: 4, Pinyin: "bà", Difficulty: 0.1, HSK: 1},
	'一': {Char: '一', Tone: 1, Pinyin: "yī", Difficulty: 0.2, HSK: 1},
	'二': {Char: '二', Tone: 4, Pinyin: "èr", Difficulty: 0.1, HSK: 1},
	'三': {Char: '三', Tone: 1, Pinyin: "sān", Difficulty: 0.1, HSK: 1},
	'四': {Char: '四', Tone: 4, Pinyin: "sì", Difficulty: 0.2, HSK: 1},
	'五': {Char: '五', Tone: 3, Pinyin: "wǔ", Difficulty: 0.1, HSK: 1},
	'六': {Char: '六', Tone: 4, Pinyin: "liù", Difficulty: 0.15, HSK: 1},
	'七': {Char: '七', Tone: 1, Pinyin: "qī", Difficulty: 0.15, HSK: 1},
	'八': {Char: '八', Tone: 1, Pinyin: "bā", Difficulty: 0.1, HSK: 1},
	'九': {Char: '九', Tone: 3, Pinyin: "jiǔ", Difficulty: 0.15, HSK: 1},
	'十': {Char: '十', Tone: 2, Pinyin: "shí", Difficulty: 0.2, HSK: 1},
	'会': {Char: '会', Tone: 4, Pinyin: "huì", Difficulty: 0.25, HSK: 1},
	'能': {Char: '能', Tone: 2, Pinyin: "néng", Difficulty: 0.2, HSK: 1},
	'去': {Char: '去', Tone: 4, Pinyin: "qù", Difficulty: 0.2, HSK: 1},
	'来': {Char: '来', Tone: 2, Pinyin: "lái", Difficulty: 0.15, HSK: 1},
	'想': {Char: '想', Tone: 3, Pinyin: "xiǎng", Difficulty: 0.25, HSK: 1},
	'要': {Char: '要', Tone: 4, Pinyin: "yào", Difficulty: 0.2, HSK: 1},
	'对': {Char: '对', Tone: 4, Pinyin: "duì", Difficulty: 0.2, HSK: 2},
	'起': {Char: '起', Tone: 3, Pinyin: "qǐ", Difficulty: 0.2, HSK: 2},
	'没': {Char: '没', Tone: 2, Pinyin: "méi", Difficulty: 0.15, HSK: 1},
	'关': {Char: '关', Tone: 1, Pinyin: "guān", Difficulty: 0.25, HSK: 2},
	'系': {Char: '系', Tone: 4, Pinyin: "xì", Difficulty: 0.3, HSK: 2},
	'时': {Char: '时', Tone: 2, Pinyin: "shí", Difficulty: 0.25, HSK: 2},
	'候': {Char: '候', Tone: 4, Pinyin: "hòu", Difficulty: 0.3, HSK: 2},
	'因': {Char: '因', Tone: 1, Pinyin: "yīn", Difficulty: 0.25, HSK: 2},
	'为': {Char: '为', Tone: 4, Pinyin: "wèi", Difficulty: 0.25, HSK: 2},
	'所': {Char: '所', Tone: 3, Pinyin: "suǒ", Difficulty: 0.3, HSK: 2},
	'以': {Char: '以', Tone: 3, Pinyin: "yǐ", Difficulty: 0.25, HSK: 2},
	'可': {Char: '可', Tone: 3, Pinyin: "kě", Difficulty: 0.2, HSK: 2},
	'但': {Char: '但', Tone: 4, Pinyin: "dàn", Difficulty: 0.25, HSK: 2},
	'还': {Char: '还', Tone: 2, Pinyin: "hái", Difficulty: 0.3, HSK: 2},
	'就': {Char: '就', Tone: 4, Pinyin: "jiù", Difficulty: 0.3, HSK: 2},
	'知': {Char: '知', Tone: 1, Pinyin: "zhī", Difficulty: 0.3, HSK: 2},
	'道': {Char: '道', Tone: 4, Pinyin: "dào", Difficulty: 0.25, HSK: 2},
	'觉': {Char: '觉', Tone: 2, Pinyin: "jué", Difficulty: 0.35, HSK: 2},
	'得': {Char: '得', Tone: 0, Pinyin: "de", Difficulty: 0.35, HSK: 2},
	'喜': {Char: '喜', Tone: 3, Pinyin: "xǐ", Difficulty: 0.3, HSK: 1},
	'欢': {Char: '欢', Tone: 1, Pinyin: "huān", Difficulty: 0.3, HSK: 1},
	'朋': {Char: '朋', Tone: 2, Pinyin: "péng", Difficulty: 0.25, HSK: 1},
	'友': {Char: '友', Tone: 3, Pinyin: "yǒu", Difficulty: 0.25, HSK: 1},
	'电': {Char: '电', Tone: 4, Pinyin: "diàn", Difficulty: 0.25, HSK: 1},
	'影': {Char: '影', Tone: 3, Pinyin: "yǐng", Difficulty: 0.35, HSK: 2},
	'工': {Char: '工', Tone: 1, Pinyin: "gōng", Difficulty: 0.2, HSK: 2},
	'作': {Char: '作', Tone: 4, Pinyin: "zuò", Difficulty: 0.25, HSK: 2},
	'现': {Char: '现', Tone: 4, Pinyin: "xiàn", Difficulty: 0.3, HSK: 2},
	'已': {Char: '已', Tone: 3, Pinyin: "yǐ", Difficulty: 0.3, HSK: 3},
	'经': {Char: '经', Tone: 1, Pinyin: "jīng", Difficulty: 0.35, HSK: 3},
	'非': {Char: '非', Tone: 1, Pinyin: "fēi", Difficulty: 0.3, HSK: 3},
	'常': {Char: '常', Tone: 2, Pinyin: "cháng", Difficulty: 0.3, HSK: 3},
	'虽': {Char: '虽', Tone: 1, Pinyin: "suī", Difficulty: 0.4, HSK: 3},
	'然': {Char: '然', Tone: 2, Pinyin: "rán", Difficulty: 0.35, HSK: 3},
	'如': {Char: '如', Tone: 2, Pinyin: "rú", Difficulty: 0.4, HSK: 3},
	'果': {Char: '果', Tone: 3, Pinyin: "guǒ", Difficulty: 0.3, HSK: 3},
	'应': {Char: '应', Tone: 1, Pinyin: "yīng", Difficulty: 0.45, HSK: 3},
	'该': {Char: '该', Tone: 1, Pinyin: "gāi", Difficulty: 0.4, HSK: 3},
	'愿': {Char: '愿', Tone: 4, Pinyin: "yuàn", Difficulty: 0.5, HSK: 4},
	'意': {Char: '意', Tone: 4, Pinyin: "yì", Difficulty: 0.35, HSK: 3},
	'或': {Char: '或', Tone: 4, Pinyin: "huò", Difficulty: 0.45, HSK: 4},
	'者': {Char: '者', Tone: 3, Pinyin: "zhě", Difficulty: 0.4, HSK: 4},
	'尽': {Char: '尽', Tone: 3, Pinyin: "jǐn", Difficulty: 0.55, HSK: 5},
	'管': {Char: '管', Tone: 3, Pinyin: "guǎn", Difficulty: 0.45, HSK: 4},
}
