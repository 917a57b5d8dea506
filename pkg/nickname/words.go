package nickname

import "slices"

// Default vocabulary. Entries are NFC and contain no spaces. No suffix may be
// one half repeated twice, or a plain pick would look like a reduplication.
var defaultWords = WordList{
	Prefixes: []string{
		"小", "软", "甜", "萌", "糯", "圆", "胖", "呆", "乖", "奶",
		"暖", "憨", "酥", "蜜", "团", "喵", "嘟", "泡", "糖", "棉",
		"咕", "啾", "毛", "绒", "橙", "桃", "柚", "豆", "糕", "果",
	},
	Suffixes: []string{
		"土豆", "布丁", "团子", "汤圆", "奶糖", "饼干", "年糕", "豆包", "果冻", "麻薯",
		"包子", "丸子", "泡芙", "橘子", "桃子", "兔叽", "熊猫", "企鹅", "流星", "云朵",
		"芝士", "蛋挞", "可颂", "奶昔", "糯米", "栗子", "柿子", "花卷", "馒头", "奶冻",
	},
}

var emojis = []string{
	"🍮", "🍡", "🍩", "🍪", "🍰", "🧁", "🍬", "🍭", "🍓", "🍑",
	"🍊", "🍒", "🥔", "🥟", "🍙", "🐰", "🐻", "🐼", "🐧", "🐱",
	"🐶", "🐹", "🐥", "🦊", "🌸", "🌷", "🌈", "⭐", "☁", "💖",
}

// DefaultWordList returns a copy of the built-in vocabulary.
func DefaultWordList() WordList {
	return defaultWords.Clone()
}

// Emojis returns a copy of the emoji set used by WithEmoji.
func Emojis() []string {
	return slices.Clone(emojis)
}
