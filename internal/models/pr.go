package models

// PRSpec is the request to open a pull request for a stacked branch.
type PRSpec struct {
	Title string
	Body  string
	Head  string
	Base  string
	Draft bool
}

// StackedPR is an open pull request whose head branch was created by
// the stacked workflow.
type StackedPR struct {
	Number int
	Title  string
	Branch string
	Author string
	URL    string
	Draft  bool
}
