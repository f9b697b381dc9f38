package main

import "testing"

func TestHasPrefix(t *testing.T) {
	if !hasPrefix("-config=foo.yaml", "-config=") {
		t.Errorf("expected prefix match")
	}
	if hasPrefix("foo.yaml", "-config=") {
		t.Errorf("did not expect prefix match")
	}
}
