package main

import "testing"

func TestFilterWalkPatterns(t *testing.T) {
	kept := filterWalkPatterns([]string{"{{word}}", "{{walk}}{{word}}", "{{walk}}", "{{word}}{{suffix}}"})
	if len(kept) != 2 || kept[0] != "{{word}}" || kept[1] != "{{word}}{{suffix}}" {
		t.Errorf("expected walk-free patterns only, got %v", kept)
	}

	// all patterns referencing walks must yield an empty result so the
	// caller can reject the configuration instead of silently falling
	// back to defaults
	if kept := filterWalkPatterns([]string{"{{walk}}", "{{walk}}{{word}}"}); len(kept) != 0 {
		t.Errorf("expected no patterns left, got %v", kept)
	}
}
