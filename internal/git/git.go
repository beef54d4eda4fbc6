// Package git detects the source control capability of a workspace. It
// uses the go-git library to inspect repositories without shelling out;
// the binary lookup only decides whether git tooling is available at all.
package git

import (
	"os/exec"

	gogit "github.com/go-git/go-git/v5"

	"skylift/internal/logging"
)

// Status describes the source control capability of a workspace.
// Installed is the present/absent verdict; Repo carries a repository
// handle when the workspace is already under git control.
type Status struct {
	Installed bool
	Repo      *gogit.Repository
}

// Detector checks git capability. The zero value is ready to use.
type Detector struct{}

// Detect reports whether git tooling is available and, when the
// workspace is already a repository, returns a handle to it.
func (Detector) Detect(dir string) Status {
	if _, err := exec.LookPath("git"); err != nil {
		return Status{}
	}

	st := Status{Installed: true}
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		// Not being a repository yet is fine; init never creates one.
		return st
	}
	st.Repo = repo

	if branch := CurrentBranch(repo); branch != "" {
		logging.Debug("Detected git repository", map[string]interface{}{
			"dir":    dir,
			"branch": branch,
		})
	}
	return st
}

// CurrentBranch returns the checked-out branch name, or "" when the
// repository is unborn or in detached HEAD state.
func CurrentBranch(repo *gogit.Repository) string {
	head, err := repo.Head()
	if err != nil {
		return ""
	}
	if !head.Name().IsBranch() {
		return ""
	}
	return head.Name().Short()
}
