package banglish

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// virama (hasanta) suppresses the inherent vowel of the consonant it
// follows, joining it with the next consonant into a conjunct cluster.
const virama = '্'

// characterMap maps single Bengali code points to Latin fragments that
// approximate their pronunciation. Runes absent from the map pass
// through unchanged, so Latin text and unknown symbols survive intact.
var characterMap = map[rune]string{
	// Independent vowels
	'অ': "o",
	'আ': "a",
	'ই': "i",
	'ঈ': "ee",
	'উ': "u",
	'ঊ': "oo",
	'ঋ': "ri",
	'এ': "e",
	'ঐ': "oi",
	'ও': "o",
	'ঔ': "ou",

	// Dependent vowel signs (kar)
	'া': "a",
	'ি': "i",
	'ী': "ee",
	'ু': "u",
	'ূ': "oo",
	'ৃ': "ri",
	'ে': "e",
	'ৈ': "oi",
	'ো': "o",
	'ৌ': "ou",

	// Consonants
	'ক': "k",
	'খ': "kh",
	'গ': "g",
	'ঘ': "gh",
	'ঙ': "ng",
	'চ': "ch",
	'ছ': "chh",
	'জ': "j",
	'ঝ': "jh",
	'ঞ': "ny",
	'ট': "t",
	'ঠ': "th",
	'ড': "d",
	'ঢ': "dh",
	'ণ': "n",
	'ত': "t",
	'থ': "th",
	'দ': "d",
	'ধ': "dh",
	'ন': "n",
	'প': "p",
	'ফ': "ph",
	'ব': "b",
	'ভ': "bh",
	'ম': "m",
	'য': "y",
	'র': "r",
	'ল': "l",
	'শ': "sh",
	'ষ': "sh",
	'স': "s",
	'হ': "h",
	'\u09dc': "r",  // ড় (rra)
	'\u09dd': "rh", // ঢ় (rha)
	'\u09df': "y",  // য় (yya)
	'ৎ': "t",
	'ং': "ng",
	'ঃ': "h",
	virama: "",

	// Digits
	'০': "0",
	'১': "1",
	'২': "2",
	'৩': "3",
	'৪': "4",
	'৫': "5",
	'৬': "6",
	'৭': "7",
	'৮': "8",
	'৯': "9",

	// Punctuation
	'।': ".",
	'॥': "..",
}

// wordExceptions maps whole Bengali words to curated transliterations
// that read better than the character algorithm's output. Lookup is
// exact-match on the whitespace-stripped word; attached punctuation is
// not stripped.
var wordExceptions = map[string]string{
	"পথের":          "pother",
	"পাঁচালী":       "pachali",
	"নিশ্চিন্দিপুর": "nishchindipur",
	"গ্রামের":       "gramer",
	"একেবারে":       "ekebare",
	"উত্তরপ্রান্তে": "uttarprante",
	"বাংলা":         "bangla",
	"ভাষা":          "bhasha",
	"সাহিত্য":       "sahitya",
	"কবিতা":         "kobita",
	"গল্প":          "golpo",
	"উপন্যাস":       "uponnyas",
	"লেখক":          "lekhok",
	"কবি":           "kobi",
}

// TransliterateOption configures a Transliterator.
type TransliterateOption func(*Transliterator)

// WithExceptions merges extra whole-word overrides into the built-in
// exception table. Entries with the same key replace built-ins.
func WithExceptions(overrides map[string]string) TransliterateOption {
	return func(t *Transliterator) {
		merged := make(map[string]string, len(t.exceptions)+len(overrides))
		for word, latin := range t.exceptions {
			merged[word] = latin
		}
		for word, latin := range overrides {
			merged[word] = latin
		}
		t.exceptions = merged
	}
}

// WithDiacriticFolding strips combining marks from transliterated
// output. Useful when OCR noise leaves stray accents or unmapped
// combining marks that would otherwise pass through unchanged.
func WithDiacriticFolding() TransliterateOption {
	return func(t *Transliterator) {
		t.foldMarks = true
	}
}

// Transliterator converts Bengali text to a phonetic Latin rendering.
// The lookup tables are built once at construction and never mutated,
// so a single instance is safe for concurrent use.
type Transliterator struct {
	chars      map[rune]string
	exceptions map[string]string
	foldMarks  bool
}

// NewTransliterator creates a Transliterator with the built-in
// character map and word exception table.
func NewTransliterator(opts ...TransliterateOption) *Transliterator {
	t := &Transliterator{
		chars:      characterMap,
		exceptions: wordExceptions,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TransliterateWord transliterates a single whitespace-delimited word.
// The exception table wins over character-level substitution. Conjunct
// clusters (consonant, virama, consonant) emit both consonant mappings
// with nothing in between; a virama with fewer than two runes after it
// is not a cluster and substitutes to the empty string on its own.
// Unmapped runes pass through unchanged. Never fails, for any input.
func (t *Transliterator) TransliterateWord(word string) string {
	clean := strings.TrimSpace(word)
	if latin, ok := t.exceptions[clean]; ok {
		return t.fold(latin)
	}

	rs := []rune(clean)
	var b strings.Builder
	b.Grow(len(clean))
	for i := 0; i < len(rs); {
		if i+2 < len(rs) && rs[i+1] == virama {
			b.WriteString(t.transliterateRune(rs[i]))
			b.WriteString(t.transliterateRune(rs[i+2]))
			i += 3
			continue
		}
		b.WriteString(t.transliterateRune(rs[i]))
		i++
	}
	return t.fold(b.String())
}

// TransliterateText transliterates arbitrary text. The text is
// partitioned into maximal whitespace and non-whitespace runs;
// non-whitespace runs go through TransliterateWord and whitespace runs
// pass through untouched, so the output keeps exactly the whitespace
// structure of the input.
func (t *Transliterator) TransliterateText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, run := range splitSpaceRuns(text) {
		if isSpaceRun(run) {
			b.WriteString(run)
			continue
		}
		b.WriteString(t.TransliterateWord(run))
	}
	return b.String()
}

func (t *Transliterator) transliterateRune(r rune) string {
	if latin, ok := t.chars[r]; ok {
		return latin
	}
	return string(r)
}

func (t *Transliterator) fold(s string) string {
	if !t.foldMarks {
		return s
	}
	return foldCombiningMarks(s)
}

// foldCombiningMarks decomposes the string, removes combining marks
// (Unicode category Mn), and recomposes. On transform failure the
// input is returned unchanged.
func foldCombiningMarks(s string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		return s
	}
	return folded
}

// splitSpaceRuns partitions text into maximal runs of whitespace and
// non-whitespace runes, in order. Concatenating the runs reproduces
// the input exactly. Classification uses unicode.IsSpace, which also
// covers non-breaking and typographic spaces that PDF extraction
// tends to produce.
func splitSpaceRuns(text string) []string {
	if text == "" {
		return nil
	}

	var runs []string
	start := 0
	inSpace := false
	for i, r := range text {
		s := unicode.IsSpace(r)
		if i == 0 {
			inSpace = s
			continue
		}
		if s != inSpace {
			runs = append(runs, text[start:i])
			start, inSpace = i, s
		}
	}
	return append(runs, text[start:])
}

func isSpaceRun(run string) bool {
	r, _ := utf8.DecodeRuneInString(run)
	return unicode.IsSpace(r)
}
