/*
Package gondi transliterates romanized (ITRANS-style) text into the
Masaram Gondi script (U+11D00–U+11D5F).

Masaram Gondi is an abugida: a consonant letter carries an inherent vowel,
which has to be modified by a vowel sign or cancelled by a virama. The
transliterator scans each word greedily from left to right, always taking
the longest romanized key it finds in its symbol tables ("maximal munch"),
and keeps track of a dangling consonant which still needs a vowel sign,
a conjunct join or a final halanta.

Symbol tables are grouped into a Scheme. The built-in scheme follows the
Keyman keyboard layout by Rajesh Kumar Dhuriya; other schemes may be loaded
through a SymbolReader (see package schemefile for a text format).

Usage:

	out := gondi.Transliterate("namaste") // 𑴟𑴤𑴫𑵅𑴛𑴺

Transliteration is total: every input string yields an output string, and
characters which are not part of the romanization are copied unchanged.

Further Reading

	https://www.unicode.org/charts/PDF/U11D00.pdf
	https://keyman.com/keyboards/masaram_gondi

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package gondi

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gondi'
func tracer() tracing.Trace {
	return tracing.Select("gondi")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
