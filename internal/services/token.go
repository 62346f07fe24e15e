package services

import "github.com/google/uuid"

// IssueOrReuse returns the presented owner token unchanged, or generates a
// fresh random identifier when none was presented. Uniqueness is
// probabilistic over the uuid4 space; no storage lookup is made and tokens
// are never invalidated server-side.
func IssueOrReuse(existing string) string {
	if existing != "" {
		return existing
	}
	return uuid.NewString()
}
