package gondi

// Marks are fixed signs of the Masaram Gondi block. They are not part of any
// scheme and cannot be redefined.
const (
	Anusvara     = "\U00011D40" // nasalization
	Visarga      = "\U00011D41" // final aspiration
	Sukun        = "\U00011D42" // nukta modifier
	Chandrabindu = "\U00011D43" // special nasal
	Halanta      = "\U00011D44" // cancels the inherent vowel at the end of a word
	Virama       = "\U00011D45" // cancels the inherent vowel inside a conjunct
	Repha        = "\U00011D46" // r before a consonant cluster
	Rakar        = "\U00011D47" // r after a consonant
)

// Punctuation is borrowed from Devanagari.
const (
	Danda       = "।"
	DoubleDanda = "॥"
)

// Glyphs the r-rules and the a-rules produce without consulting the tables.
const (
	signAA      = "\U00011D31" // vowel sign aa
	signAI      = "\U00011D3C" // vowel sign ai
	signAU      = "\U00011D3F" // vowel sign au
	consonantRa = "\U00011D26"
)

// vowelLetters are the romanized letters counting as vowels.
const vowelLetters = "aāiīuūeēoōAIUEO"
