package main

import (
	"fmt"
	"strings"

	banglish "github.com/ramjana/go-banglish"
)

// selfTestCases are the built-in Bengali samples exercised by --test.
var selfTestCases = []string{
	"পথের পাঁচালী",
	"নিশ্চিন্দিপুর গ্রামের একেবারে উত্তরপ্রান্তে",
	"বাংলা ভাষা অত্যন্ত সুন্দর",
	"রবীন্দ্রনাথ ঠাকুর বিশ্বকবি",
}

// runSelfTest transliterates the built-in samples and prints the
// results, bypassing all file I/O.
func runSelfTest(flags *translateFlags, env *Environment) {
	fmt.Fprintln(env.Stdout, "🧪 Running quick transliteration test...")
	fmt.Fprintln(env.Stdout, strings.Repeat("=", 50))

	var opts []banglish.TransliterateOption
	if flags.foldDiacritics {
		opts = append(opts, banglish.WithDiacriticFolding())
	}
	translit := banglish.NewTransliterator(opts...)

	for i, bengali := range selfTestCases {
		fmt.Fprintf(env.Stdout, "%d. %s\n", i+1, bengali)
		fmt.Fprintf(env.Stdout, "   → %s\n", translit.TransliterateText(bengali))
		fmt.Fprintln(env.Stdout)
	}

	fmt.Fprintln(env.Stdout, "✅ Test completed!")
}
