package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunSelfTest(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	env := &Environment{Stdout: &stdout}

	runSelfTest(&translateFlags{}, env)
	output := stdout.String()

	if !strings.Contains(output, "🧪 Running quick transliteration test...") {
		t.Error("output should contain the test header")
	}
	if !strings.Contains(output, strings.Repeat("=", 50)) {
		t.Error("output should contain the 50-char rule")
	}

	// Each sample is numbered and followed by an arrow result line.
	for i, bengali := range selfTestCases {
		wantNumbered := string(rune('1'+i)) + ". " + bengali
		if !strings.Contains(output, wantNumbered) {
			t.Errorf("output should contain %q", wantNumbered)
		}
	}
	if want := strings.Count(output, "   → "); want != len(selfTestCases) {
		t.Errorf("expected %d result lines, got %d", len(selfTestCases), want)
	}

	// Curated exception words appear in the results.
	if !strings.Contains(output, "   → pother pachali") {
		t.Error("output should contain the transliterated first sample")
	}
	if !strings.Contains(output, "nishchindipur gramer ekebare uttarprante") {
		t.Error("output should contain the transliterated second sample")
	}
	if !strings.Contains(output, "bangla bhasha") {
		t.Error("output should contain the transliterated third sample")
	}

	if !strings.Contains(output, "✅ Test completed!") {
		t.Error("output should contain the completion marker")
	}
}

func TestRunSelfTest_NoBengaliLeaksIntoResults(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	env := &Environment{Stdout: &stdout}

	runSelfTest(&translateFlags{}, env)

	for _, line := range strings.Split(stdout.String(), "\n") {
		if !strings.HasPrefix(line, "   → ") {
			continue
		}
		for _, r := range line {
			if r >= 0x0980 && r <= 0x09FF {
				t.Errorf("result line contains untransliterated Bengali: %q", line)
				break
			}
		}
	}
}
