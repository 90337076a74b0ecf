package gondi

// Lookahead probes. None of them consume input; they only report whether a
// rule would apply at a given position.

// maxNuktaKeyLength is the longest key probed in the nukta table.
const maxNuktaKeyLength = 2

// matchConsonant tries nukta consonants (length 2, 1) before plain consonants
// (length 3, 2, 1).
func (s *Scheme) matchConsonant(word []rune, pos int) (string, int) {
	if glyph, n := s.tables[NuktaConsonants].matchUpTo(word, pos, maxNuktaKeyLength); n > 0 {
		return glyph, n
	}
	return s.tables[Consonants].Match(word, pos)
}

// isConsonantStart is true if a nukta or plain consonant starts at pos.
func (s *Scheme) isConsonantStart(word []rune, pos int) bool {
	_, n := s.matchConsonant(word, pos)
	return n > 0
}

// isRepha is true for an 'r' which is directly followed by a consonant.
func (s *Scheme) isRepha(word []rune, pos int) bool {
	if pos < 0 || pos >= len(word) || word[pos] != 'r' {
		return false
	}
	return pos+1 < len(word) && s.isConsonantStart(word, pos+1)
}

// at returns the rune at pos, or 0 if pos is out of range.
func at(word []rune, pos int) rune {
	if pos < 0 || pos >= len(word) {
		return 0
	}
	return word[pos]
}
