// Package annotate generates bracket-annotated transcriptions from raw
// Japanese text. It is the producing side of the [base|annotation] format:
// each token containing kanji is paired with its hiragana reading, with
// leading and trailing kana (okurigana, polite prefixes) left outside the
// bracket so the annotation covers only the kanji stem.
package annotate

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// readingFeature is the index of the katakana reading in the IPA dictionary
// feature list.
const readingFeature = 7

// Annotator converts raw Japanese text into annotated transcriptions using
// an embedded morphological dictionary. It is safe for concurrent use.
type Annotator struct {
	t *tokenizer.Tokenizer
}

// New creates an Annotator backed by the IPA dictionary.
func New() (*Annotator, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Annotator{t: t}, nil
}

// Annotate returns text in the [base|annotation] bracket convention.
// Tokens without kanji, and kanji tokens the dictionary has no reading for,
// pass through unannotated. Annotate never fails; unknown text degrades to
// its raw form.
func (a *Annotator) Annotate(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	for _, token := range a.t.Tokenize(text) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		b.WriteString(a.annotateToken(token))
	}
	return b.String()
}

func (a *Annotator) annotateToken(token tokenizer.Token) string {
	surface := token.Surface
	if !containsKanji(surface) {
		return surface
	}

	features := token.Features()
	if len(features) <= readingFeature || features[readingFeature] == "*" {
		return surface
	}
	reading := katakanaToHiragana(features[readingFeature])
	if reading == "" || reading == surface {
		return surface
	}

	prefix, stem, stemReading, suffix := splitAffixes(surface, reading)
	if stem == "" || stemReading == "" {
		return surface
	}
	return prefix + "[" + stem + "|" + stemReading + "]" + suffix
}

// splitAffixes strips the longest rune-wise common prefix and suffix shared
// by surface and reading (the kana surrounding the kanji stem), so the
// annotation covers only the part that actually differs.
func splitAffixes(surface, reading string) (prefix, stem, stemReading, suffix string) {
	s, r := []rune(surface), []rune(reading)

	p := 0
	for p < len(s) && p < len(r) && s[p] == r[p] && !isKanji(s[p]) {
		p++
	}

	q := 0
	for q < len(s)-p && q < len(r)-p && s[len(s)-1-q] == r[len(r)-1-q] && !isKanji(s[len(s)-1-q]) {
		q++
	}

	prefix = string(s[:p])
	stem = string(s[p : len(s)-q])
	stemReading = string(r[p : len(r)-q])
	suffix = string(s[len(s)-q:])
	return prefix, stem, stemReading, suffix
}
