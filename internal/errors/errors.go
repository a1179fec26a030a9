package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeGit           ErrorType = "GIT"
	TypeVCS           ErrorType = "VCS"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches errors by type and message, so sentinel comparisons keep
// working on the copies WithError and WithContext return.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Git errors
var (
	ErrNotInGitRepo = NewAppError(TypeGit, "Not in a git repository", nil).
			WithSuggestion("Initialize a git repository: git init")

	ErrGetBranch = NewAppError(TypeGit, "Failed to get current branch", nil).
			WithSuggestion("Make sure you are in a git repository: git status")

	ErrNoBranch = NewAppError(TypeGit, "No branch detected", nil).
			WithSuggestion("Check out a branch first: git switch <branch>")

	ErrGetRepoURL = NewAppError(TypeGit, "Failed to get repository URL", nil).
			WithSuggestion("Add a remote: git remote add origin <url>")

	ErrExtractRepoInfo = NewAppError(TypeGit, "Failed to extract repository info", nil)

	ErrResolveCommit = NewAppError(TypeGit, "Failed to resolve commit", nil).
				WithSuggestion("Verify the reference exists: git log --oneline")

	ErrDirtyWorkTree = NewAppError(TypeGit, "Working tree has uncommitted changes", nil).
				WithSuggestion("Commit or stash your changes first: git stash")

	ErrFetch = NewAppError(TypeGit, "Failed to fetch from remote", nil).
			WithSuggestion("Check your remote connection: git remote -v")

	ErrCreateBranch = NewAppError(TypeGit, "Failed to create branch", nil).
			WithSuggestion("Make sure a branch with that name doesn't already exist: git branch -l")

	ErrBranchNotFound = NewAppError(TypeGit, "Branch not found", nil).
				WithSuggestion("Create the stacked branch first: stackmate new <commit>")

	ErrCheckout = NewAppError(TypeGit, "Failed to switch branch", nil).
			WithSuggestion("Check the working tree state: git status")

	ErrDeleteBranch = NewAppError(TypeGit, "Failed to delete branch", nil)

	ErrCherryPick = NewAppError(TypeGit, "Cherry-pick failed", nil).
			WithSuggestion("The commit does not apply cleanly on the branch. Resolve the conflict on the main line and try again")

	ErrAbortCherryPick = NewAppError(TypeGit, "Failed to abort cherry-pick", nil).
				WithSuggestion("Clean up manually: git cherry-pick --abort")

	ErrPush = NewAppError(TypeGit, "Failed to push to remote", nil).
		WithSuggestion("Verify remote is configured: git remote -v")

	ErrAmendCommit = NewAppError(TypeGit, "Failed to amend commit message", nil).
			WithSuggestion("Ensure git user is configured:\n   git config --global user.name \"Your Name\"\n   git config --global user.email \"your@email.com\"")

	ErrAutosquash = NewAppError(TypeGit, "Autosquash rebase failed", nil).
			WithSuggestion("Inspect the rebase state: git status, then git rebase --abort if needed")
)

// Configuration errors
var (
	ErrTokenMissing = NewAppError(TypeConfiguration, "GitHub token is missing", nil).
			WithSuggestion("Set a token with: stackmate config set-token <token>\nOr export GITHUB_TOKEN in your environment")
)

// VCS errors
var (
	ErrVCSNotSupported = NewAppError(TypeVCS, "VCS provider not supported", nil).
				WithSuggestion("Currently only GitHub is supported")

	ErrCreatePR = NewAppError(TypeVCS, "Failed to create pull request", nil).
			WithSuggestion("Check your GitHub token has 'repo' permissions")

	ErrPRAlreadyExists = NewAppError(TypeVCS, "A pull request already exists for this branch", nil).
				WithSuggestion("Update it instead: stackmate update <commit>")

	ErrListPRs = NewAppError(TypeVCS, "Failed to list pull requests", nil).
			WithSuggestion("Check repository URL and access permissions")

	ErrGitHubTokenInvalid = NewAppError(TypeVCS, "GitHub token is invalid or expired", nil).
				WithSuggestion("Generate a new token at: https://github.com/settings/tokens\nThen run: stackmate config set-token <token>")

	ErrGitHubInsufficientPerms = NewAppError(TypeVCS, "GitHub token has insufficient permissions", nil).
					WithSuggestion("Token needs the 'repo' scope.\nRegenerate at: https://github.com/settings/tokens")
)
