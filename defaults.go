package gondi

// defaultEntries lists the built-in romanization, following the Keyman
// keyboard for Masaram Gondi.
func defaultEntries() []Entry {
	entries := make([]Entry, 0, 160)
	add := func(class SymbolClass, glyph string, keys ...string) {
		for _, key := range keys {
			entries = append(entries, Entry{Class: class, Key: key, Glyph: glyph})
		}
	}

	// independent vowels
	add(IndependentVowels, "\U00011D00", "a")                  // a
	add(IndependentVowels, "\U00011D01", "aa", "A", "ā")       // aa
	add(IndependentVowels, "\U00011D02", "i")                  // i
	add(IndependentVowels, "\U00011D03", "ii", "I", "ī", "ee") // ii
	add(IndependentVowels, "\U00011D04", "u")                  // u
	add(IndependentVowels, "\U00011D05", "uu", "U", "ū", "oo") // uu
	add(IndependentVowels, "\U00011D06", "e", "E", "ē")        // e
	add(IndependentVowels, "\U00011D08", "ai", "aI")           // ai
	add(IndependentVowels, "\U00011D09", "o", "O", "ō")        // o
	add(IndependentVowels, "\U00011D0B", "au", "aU")           // au

	// vowel signs (matras)
	add(VowelSigns, "\U00011D31", "aa", "A", "ā")       // aa
	add(VowelSigns, "\U00011D32", "i")                  // i
	add(VowelSigns, "\U00011D33", "ii", "I", "ī", "ee") // ii
	add(VowelSigns, "\U00011D34", "u")                  // u
	add(VowelSigns, "\U00011D35", "uu", "U", "ū", "oo") // uu
	add(VowelSigns, "\U00011D3A", "e", "ē")             // e
	add(VowelSigns, "\U00011D3C", "ai", "aI", "ei")     // ai
	add(VowelSigns, "\U00011D3D", "o", "ō")             // o
	add(VowelSigns, "\U00011D3F", "au", "aU", "ou")     // au
	add(VowelSigns, "\U00011D36", "R", "ṛ", "ri")       // vocalic r

	// consonants
	add(Consonants, "\U00011D0C", "k")                  // ka
	add(Consonants, "\U00011D0D", "K", "kh")            // kha
	add(Consonants, "\U00011D0E", "g")                  // ga
	add(Consonants, "\U00011D0F", "G", "gh")            // gha
	add(Consonants, "\U00011D10", "F", "ng", "ṅ")       // nga
	add(Consonants, "\U00011D11", "c", "ch")            // ca
	add(Consonants, "\U00011D12", "C", "chh", "Ch")     // cha
	add(Consonants, "\U00011D13", "j")                  // ja
	add(Consonants, "\U00011D14", "J", "jh")            // jha
	add(Consonants, "\U00011D15", "Y", "ny", "ñ")       // nya
	add(Consonants, "\U00011D16", "T", "ṭ")             // tta
	add(Consonants, "\U00011D17", "Th", "ṭh")           // ttha
	add(Consonants, "\U00011D18", "D", "ḍ")             // dda
	add(Consonants, "\U00011D19", "Dh", "ḍh")           // ddha
	add(Consonants, "\U00011D1A", "N", "ṇ")             // nna
	add(Consonants, "\U00011D1B", "t")                  // ta
	add(Consonants, "\U00011D1C", "th")                 // tha
	add(Consonants, "\U00011D1D", "d")                  // da
	add(Consonants, "\U00011D1E", "dh")                 // dha
	add(Consonants, "\U00011D1F", "n")                  // na
	add(Consonants, "\U00011D20", "p")                  // pa
	add(Consonants, "\U00011D21", "P", "ph")            // pha
	add(Consonants, "\U00011D22", "b")                  // ba
	add(Consonants, "\U00011D23", "B", "bh")            // bha
	add(Consonants, "\U00011D24", "m")                  // ma
	add(Consonants, "\U00011D25", "y")                  // ya
	add(Consonants, "\U00011D26", "r")                  // ra
	add(Consonants, "\U00011D27", "l")                  // la
	add(Consonants, "\U00011D2D", "L")                  // lla
	add(Consonants, "\U00011D28", "v", "w", "W")        // va
	add(Consonants, "\U00011D29", "sh", "ś")            // sha
	add(Consonants, "\U00011D2A", "S", "ss", "ṣ", "Sh") // ssa
	add(Consonants, "\U00011D2B", "s")                  // sa
	add(Consonants, "\U00011D2C", "h")                  // ha
	add(Consonants, "\U00011D2E", "x")                  // kssa
	add(Consonants, "\U00011D2F", "X")                  // jnya
	add(Consonants, "\U00011D30", "Z")                  // tra

	// nukta consonants
	add(NuktaConsonants, "\U00011D0C\U00011D42", "q") // ka + nukta
	add(NuktaConsonants, "\U00011D13\U00011D42", "z") // ja + nukta
	add(NuktaConsonants, "\U00011D21\U00011D42", "f") // pha + nukta

	// digits
	add(Numerals, "\U00011D50", "0") // zero
	add(Numerals, "\U00011D51", "1") // one
	add(Numerals, "\U00011D52", "2") // two
	add(Numerals, "\U00011D53", "3") // three
	add(Numerals, "\U00011D54", "4") // four
	add(Numerals, "\U00011D55", "5") // five
	add(Numerals, "\U00011D56", "6") // six
	add(Numerals, "\U00011D57", "7") // seven
	add(Numerals, "\U00011D58", "8") // eight
	add(Numerals, "\U00011D59", "9") // nine

	return entries
}
