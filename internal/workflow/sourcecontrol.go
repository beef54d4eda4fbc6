package workflow

import (
	"skylift/internal/git"
	"skylift/internal/resources"
	"skylift/internal/terminal"
)

// SourceControlDetector reports the git capability of a workspace.
type SourceControlDetector interface {
	Detect(dir string) git.Status
}

// adviseSourceControl warns when no git tooling is available. It runs
// only after application resolution succeeded, so the advisory never
// precedes a failure.
func adviseSourceControl(detector SourceControlDetector, dir string, console terminal.Console) {
	if !detector.Detect(dir).Installed {
		console.Warn(resources.GitNotFound)
	}
}
