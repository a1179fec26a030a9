package git

import "strings"

// maxSlugLength keeps derived branch names readable; git itself allows
// much longer refs.
const maxSlugLength = 48

// BranchNameFor derives the stacked branch name for a commit subject.
// The derivation is deterministic: the same subject always yields the
// same branch, which is how `update` finds the branch `new` created.
func BranchNameFor(prefix, subject string) string {
	return prefix + Slugify(subject)
}

// Slugify reduces a commit subject to a ref-safe slug: lowercase,
// runs of non-alphanumeric characters collapsed into single dashes.
func Slugify(subject string) string {
	var b strings.Builder
	dashPending := false

	for _, r := range strings.ToLower(subject) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dashPending && b.Len() > 0 {
				b.WriteByte('-')
			}
			dashPending = false
			b.WriteRune(r)
		default:
			dashPending = true
		}
	}

	slug := b.String()
	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}
	if slug == "" {
		// Subjects made entirely of symbols still need a valid ref.
		slug = "change"
	}
	return slug
}
