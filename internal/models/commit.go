package models

// Commit identifies a single commit on the main line.
type Commit struct {
	// SHA is the full commit hash.
	SHA string
	// Subject is the first line of the commit message. The stacked
	// branch name is derived from it.
	Subject string
	// Body is the rest of the commit message, without the subject.
	Body string
}

// ShortSHA returns the abbreviated hash used in CLI output.
func (c Commit) ShortSHA() string {
	if len(c.SHA) > 8 {
		return c.SHA[:8]
	}
	return c.SHA
}
