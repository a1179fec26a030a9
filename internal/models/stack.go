package models

// StackUpdate is the outcome of transplanting the main line tip onto an
// existing stacked branch and folding it back as a fixup.
type StackUpdate struct {
	Branch string
	// Target is the original main-line commit the fixup was squashed
	// into.
	Target Commit
	// Tip is the main-line commit that was transplanted.
	Tip Commit
}
