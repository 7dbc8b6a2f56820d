package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Link
	Search
	Mark
	Video
	Audio
	Download
	Clean
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "👾",
		nerd:    "",
		plain:   "~",
		kaomoji: "(・_・)",
		squares: "🟦",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "->",
		kaomoji: "(￣▽￣)",
		squares: "🟪",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(⊙_⊙)",
		squares: "🟨",
	},
	Mark: {
		emoji:   "✨",
		nerd:    "",
		plain:   "*",
		kaomoji: "(★‿★)",
		squares: "🟧",
	},
	Video: {
		emoji:   "🎬",
		nerd:    "",
		plain:   "V",
		kaomoji: "(▀̿Ĺ̯▀̿)",
		squares: "🟫",
	},
	Audio: {
		emoji:   "🎵",
		nerd:    "",
		plain:   "A",
		kaomoji: "(♪◡♪)",
		squares: "⬜",
	},
	Download: {
		emoji:   "📥",
		nerd:    "",
		plain:   "v",
		kaomoji: "(っ˘ڡ˘ς)",
		squares: "🟦",
	},
	Clean: {
		emoji:   "🧹",
		nerd:    "",
		plain:   "~",
		kaomoji: "(￣ー￣)",
		squares: "⬛",
	},
}
