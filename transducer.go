package gondi

import "strings"

// cursor tracks whether the last consonant of a word still needs a vowel.
type cursor int8

const (
	atStart  cursor = iota // nothing pending
	dangling               // a bare consonant waits for a sign, a virama or a halanta
	resolved               // the last syllable carries a vowel
)

func (c cursor) String() string {
	switch c {
	case atStart:
		return "start"
	case dangling:
		return "dangling"
	case resolved:
		return "resolved"
	}
	return "?"
}

// transducer holds the state for transliterating a single word.
type transducer struct {
	scheme *Scheme
	word   []rune
	pos    int
	cur    cursor
	out    strings.Builder
}

// TransliterateWord transliterates a single word, i.e. a string without
// white space, using the built-in scheme.
func TransliterateWord(word string) string {
	return defaultScheme.TransliterateWord(word)
}

// TransliterateWord transliterates a single word, i.e. a string without
// white space. Any white space contained in word is copied like other
// unknown characters.
func (s *Scheme) TransliterateWord(word string) string {
	if word == "" {
		return ""
	}
	t := &transducer{scheme: s, word: []rune(word)}
	t.out.Grow(4 * len(word))
	for t.pos < len(t.word) {
		t.step()
	}
	t.closeConsonant()
	return t.out.String()
}

// step applies the first matching rule at the current position. Every rule
// consumes at least one rune.
func (t *transducer) step() {
	r := t.word[t.pos]
	switch {
	case t.numeral(r):
	case r == '.':
		t.punctuation()
	case r == 'M' && t.cur == resolved:
		t.mark(Anusvara)
	case r == 'ṃ' || r == 'ṁ':
		t.mark(Anusvara)
	case r == 'H' && t.cur == resolved:
		t.mark(Visarga)
	case r == 'ḥ':
		t.mark(Visarga)
	case r == 'r' && t.cur == resolved && t.scheme.isRepha(t.word, t.pos):
		t.mark(Repha)
	case r == 'r' && t.cur == dangling:
		t.rakar()
	case t.consonant():
	case t.cur != dangling && t.independentVowel():
	case r == 'M' && at(t.word, t.pos+1) == 'M':
		// chandrabindu leaves the cursor as it is
		t.emit(Chandrabindu)
		t.pos += 2
	default:
		t.closeConsonant()
		t.out.WriteRune(r)
		t.cur = atStart
		t.pos++
	}
}

func (t *transducer) emit(glyphs ...string) {
	for _, g := range glyphs {
		t.out.WriteString(g)
	}
}

// closeConsonant appends a halanta to a dangling consonant.
func (t *transducer) closeConsonant() {
	if t.cur == dangling {
		t.out.WriteString(Halanta)
	}
}

// mark emits a sign which ends the current syllable.
func (t *transducer) mark(glyph string) {
	t.emit(glyph)
	t.cur = atStart
	t.pos++
}

func (t *transducer) numeral(r rune) bool {
	glyph, ok := t.scheme.tables[Numerals].Lookup(string(r))
	if !ok {
		return false
	}
	t.closeConsonant()
	t.emit(glyph)
	t.cur = atStart
	t.pos++
	return true
}

// punctuation handles a run of dots: one or two dots make a danda, three
// dots a double danda.
func (t *transducer) punctuation() {
	t.closeConsonant()
	dots := 1
	for at(t.word, t.pos+dots) == '.' {
		dots++
	}
	switch {
	case dots >= 3:
		t.emit(DoubleDanda)
		t.pos += 3
	case dots == 2:
		t.emit(Danda)
		t.pos += 2
	default:
		t.emit(Danda)
		t.pos++
	}
	t.cur = atStart
}

// rakar handles an 'r' following a dangling consonant.
func (t *transducer) rakar() {
	next := t.pos + 1
	if next < len(t.word) {
		if t.word[next] == 'a' {
			if sign := diphthongSign(at(t.word, next+1), false); sign != "" {
				t.emit(Rakar, sign)
				t.pos = next + 2
			} else {
				t.emit(Rakar)
				t.pos = next + 1
			}
			t.cur = resolved
			return
		}
		if sign, n := t.scheme.tables[VowelSigns].Match(t.word, next); n > 0 {
			t.emit(Rakar, sign)
			t.pos = next + n
			t.cur = resolved
			return
		}
		if t.scheme.isConsonantStart(t.word, next) {
			// r is the first member of a conjunct; the following consonant
			// is handled by the next step
			t.emit(Virama, consonantRa)
			t.pos++
			t.cur = dangling
			return
		}
	}
	t.emit(Rakar)
	t.pos++
	t.cur = resolved
}

// consonant emits a consonant and an immediately following vowel, if any.
func (t *transducer) consonant() bool {
	glyph, n := t.scheme.matchConsonant(t.word, t.pos)
	if n == 0 {
		return false
	}
	if t.cur == dangling {
		t.emit(Virama)
	}
	t.emit(glyph)
	t.pos += n
	t.cur = dangling
	if t.pos >= len(t.word) {
		return true
	}
	if t.word[t.pos] == 'a' {
		if sign := diphthongSign(at(t.word, t.pos+1), true); sign != "" {
			t.emit(sign)
			t.pos += 2
		} else {
			t.pos++ // inherent vowel
		}
		t.cur = resolved
		return true
	}
	if sign, n := t.scheme.tables[VowelSigns].Match(t.word, t.pos); n > 0 {
		t.emit(sign)
		t.pos += n
		t.cur = resolved
	}
	return true
}

func (t *transducer) independentVowel() bool {
	glyph, n := t.scheme.tables[IndependentVowels].Match(t.word, t.pos)
	if n == 0 {
		return false
	}
	t.closeConsonant()
	t.emit(glyph)
	t.pos += n
	t.cur = resolved
	return true
}

// diphthongSign returns the vowel sign for a second letter following 'a'.
// "ae" yields a chandrabindu, but only after a consonant.
func diphthongSign(second rune, afterConsonant bool) string {
	switch second {
	case 'a', 'A':
		return signAA
	case 'i', 'I':
		return signAI
	case 'u', 'U':
		return signAU
	case 'e':
		if afterConsonant {
			return Chandrabindu
		}
	}
	return ""
}
