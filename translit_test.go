package banglish

import (
	"reflect"
	"strings"
	"sync"
	"testing"
)

func TestTransliterator_TransliterateWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		word string
		want string
	}{
		{
			name: "exception table hit",
			word: "পথের",
			want: "pother",
		},
		{
			name: "exception table hit bangla",
			word: "বাংলা",
			want: "bangla",
		},
		{
			name: "exception hit after whitespace strip",
			word: "  গল্প\n",
			want: "golpo",
		},
		{
			name: "attached punctuation blocks exception",
			word: "পথের।",
			want: "pther.",
		},
		{
			name: "character substitution",
			word: "আমি",
			want: "ami",
		},
		{
			name: "vowel signs",
			word: "ঠাকুর",
			want: "thakur",
		},
		{
			name: "conjunct cluster",
			word: "শক্তি",
			want: "shkti",
		},
		{
			name: "conjunct at word start",
			word: "ক্ক",
			want: "kk",
		},
		{
			name: "multi virama chain fuses first pair only",
			word: "ক্ষ্ম",
			want: "kshm",
		},
		{
			name: "trailing virama disappears",
			word: "ক্",
			want: "k",
		},
		{
			name: "virama as last rune after two consonants",
			word: "কক্",
			want: "kk",
		},
		{
			name: "word of single virama",
			word: "্",
			want: "",
		},
		{
			name: "empty word",
			word: "",
			want: "",
		},
		{
			name: "whitespace only word",
			word: " \t ",
			want: "",
		},
		{
			name: "pure latin untouched",
			word: "hello",
			want: "hello",
		},
		{
			name: "mixed latin and bengali",
			word: "PDFে",
			want: "PDFe",
		},
		{
			name: "digits",
			word: "১৯৭১",
			want: "1971",
		},
		{
			name: "danda",
			word: "।",
			want: ".",
		},
		{
			name: "double danda",
			word: "॥",
			want: "..",
		},
		{
			name: "khanda ta",
			word: "হঠাৎ",
			want: "hthat",
		},
		{
			name: "unmapped rune identity fallback",
			word: "ঁ",
			want: "ঁ",
		},
		{
			name: "unmapped symbol identity fallback",
			word: "€",
			want: "€",
		},
		{
			name: "precomposed nukta consonant",
			word: "বা\u09dcি",
			want: "bari",
		},
		{
			name: "decomposed nukta passes the mark through",
			word: "বাড\u09bcি",
			want: "bad\u09bci",
		},
	}

	tr := NewTransliterator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tr.TransliterateWord(tt.word)
			if got != tt.want {
				t.Errorf("TransliterateWord(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestTransliterator_TransliterateText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "empty text",
			text: "",
			want: "",
		},
		{
			name: "single space between words preserved",
			text: "আমি বাংলায়",
			want: "ami banglay",
		},
		{
			name: "exception words across spaces",
			text: "পথের পাঁচালী",
			want: "pother pachali",
		},
		{
			name: "whitespace structure preserved exactly",
			text: "  কবি\t\tলেখক \n",
			want: "  kobi\t\tlekhok \n",
		},
		{
			name: "non-breaking space separates words",
			text: "কবি লেখক",
			want: "kobi lekhok",
		},
		{
			name: "pure ascii input unchanged",
			text: "The quick brown fox.\n",
			want: "The quick brown fox.\n",
		},
		{
			name: "mixed scripts",
			text: "বাংলা is beautiful",
			want: "bangla is beautiful",
		},
		{
			name: "blank line between paragraphs",
			text: "পথের পাঁচালী\n\nগল্প",
			want: "pother pachali\n\ngolpo",
		},
		{
			name: "whitespace only",
			text: " \n\t ",
			want: " \n\t ",
		},
	}

	tr := NewTransliterator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tr.TransliterateText(tt.text)
			if got != tt.want {
				t.Errorf("TransliterateText(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitSpaceRuns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty text",
			text: "",
			want: nil,
		},
		{
			name: "single word",
			text: "abc",
			want: []string{"abc"},
		},
		{
			name: "leading and trailing space",
			text: " a b ",
			want: []string{" ", "a", " ", "b", " "},
		},
		{
			name: "mixed whitespace grouped into one run",
			text: "a\t\n b",
			want: []string{"a", "\t\n ", "b"},
		},
		{
			name: "only whitespace",
			text: "   ",
			want: []string{"   "},
		},
		{
			name: "unicode spaces grouped with ascii space",
			text: "a   b",
			want: []string{"a", "   ", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := splitSpaceRuns(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitSpaceRuns(%q) = %q, want %q", tt.text, got, tt.want)
			}
			if joined := strings.Join(got, ""); joined != tt.text {
				t.Errorf("rejoined runs = %q, want original %q", joined, tt.text)
			}
		})
	}
}

func TestWithExceptions(t *testing.T) {
	t.Parallel()

	tr := NewTransliterator(WithExceptions(map[string]string{
		"অপু": "apu",  // new entry
		"কবি": "poet", // replaces built-in
	}))

	if got := tr.TransliterateWord("অপু"); got != "apu" {
		t.Errorf("TransliterateWord(অপু) = %q, want %q", got, "apu")
	}
	if got := tr.TransliterateWord("কবি"); got != "poet" {
		t.Errorf("TransliterateWord(কবি) = %q, want %q", got, "poet")
	}

	// Built-in table must stay untouched for other instances.
	fresh := NewTransliterator()
	if got := fresh.TransliterateWord("কবি"); got != "kobi" {
		t.Errorf("fresh TransliterateWord(কবি) = %q, want %q", got, "kobi")
	}
	if got := fresh.TransliterateWord("অপু"); got != "opu" {
		t.Errorf("fresh TransliterateWord(অপু) = %q, want %q", got, "opu")
	}
}

func TestWithDiacriticFolding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fold bool
		word string
		want string
	}{
		{
			name: "accented latin folded",
			fold: true,
			word: "café",
			want: "cafe",
		},
		{
			name: "unmapped combining mark removed",
			fold: true,
			word: "চাঁদ",
			want: "chad",
		},
		{
			name: "exception output unaffected",
			fold: true,
			word: "পথের",
			want: "pother",
		},
		{
			name: "folding off keeps the mark",
			fold: false,
			word: "চাঁদ",
			want: "chaঁd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var opts []TransliterateOption
			if tt.fold {
				opts = append(opts, WithDiacriticFolding())
			}
			tr := NewTransliterator(opts...)

			got := tr.TransliterateWord(tt.word)
			if got != tt.want {
				t.Errorf("TransliterateWord(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestTransliterator_ConcurrentUse(t *testing.T) {
	t.Parallel()

	tr := NewTransliterator()
	const workers = 8
	want := "pother pachali nishchindipur"

	var wg sync.WaitGroup
	results := make([]string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = tr.TransliterateText("পথের পাঁচালী নিশ্চিন্দিপুর")
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != want {
			t.Errorf("worker %d: TransliterateText() = %q, want %q", i, got, want)
		}
	}
}
