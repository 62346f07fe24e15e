package services

import "testing"

func TestIssueOrReuse_ReturnsPresentedToken(t *testing.T) {
	presented := "0b1f8c9e-6a3d-4f2b-9c47-1d2e3f4a5b6c"
	if got := IssueOrReuse(presented); got != presented {
		t.Fatalf("expected presented token to be reused, got %q", got)
	}
}

func TestIssueOrReuse_GeneratesWhenEmpty(t *testing.T) {
	token := IssueOrReuse("")
	if token == "" {
		t.Fatal("expected a generated token, got empty string")
	}
	if len(token) != 36 {
		t.Fatalf("expected canonical uuid text form (36 chars), got %d: %q", len(token), token)
	}
}

func TestIssueOrReuse_GeneratesDistinctTokens(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token := IssueOrReuse("")
		if seen[token] {
			t.Fatalf("duplicate token generated: %q", token)
		}
		seen[token] = true
	}
}
