package compose

import "unicode"

// Emoji and emoji-adjacent code point ranges, plus the joiners and
// variation selectors that composed emoji use.
var emojiRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200D, Hi: 0x200D, Stride: 1}, // zero-width joiner
		{Lo: 0x2190, Hi: 0x21FF, Stride: 1}, // arrows
		{Lo: 0x2300, Hi: 0x23FF, Stride: 1}, // misc technical (watch, hourglass)
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1}, // misc symbols + dingbats
		{Lo: 0x2B00, Hi: 0x2BFF, Stride: 1}, // misc symbols and arrows
		{Lo: 0xFE00, Hi: 0xFE0F, Stride: 1}, // variation selectors
	},
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1F0FF, Stride: 1}, // mahjong, dominoes, cards
		{Lo: 0x1F100, Hi: 0x1F1FF, Stride: 1}, // enclosed alphanumerics, flags
		{Lo: 0x1F300, Hi: 0x1F5FF, Stride: 1}, // misc symbols and pictographs
		{Lo: 0x1F600, Hi: 0x1F64F, Stride: 1}, // emoticons
		{Lo: 0x1F680, Hi: 0x1F6FF, Stride: 1}, // transport
		{Lo: 0x1F900, Hi: 0x1F9FF, Stride: 1}, // supplemental symbols
		{Lo: 0x1FA00, Hi: 0x1FAFF, Stride: 1}, // extended pictographs
	},
}

// emojiOnly reports whether text contains at least one emoji and
// nothing else besides emoji and whitespace. Empty or whitespace-only
// input is not emoji-only.
func emojiOnly(text string) bool {
	sawEmoji := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
		case unicode.Is(emojiRanges, r):
			sawEmoji = true
		default:
			return false
		}
	}
	return sawEmoji
}
