package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

const (
	workspaceDir      = ".skylift"
	workspaceFileName = "config"
	workspaceSection  = "global"
)

// ErrNotFound indicates that no workspace configuration exists. A file
// that cannot be parsed is reported the same way, so a corrupt config
// makes the run proceed as a first-time init instead of failing.
var ErrNotFound = errors.New("workspace config not found")

// Workspace is the configuration persisted per workspace by `skylift init`.
// Once a field is set here, later runs read it back instead of prompting.
type Workspace struct {
	// ApplicationName is the name of the remote application
	ApplicationName string

	// Region is the region hosting the application
	Region string

	// Profile names the shared-credentials profile that holds keys
	// collected interactively, empty when ambient credentials were used
	Profile string
}

// WorkspaceStore reads and writes the workspace configuration file.
type WorkspaceStore struct {
	root string
}

// NewWorkspaceStore returns a store rooted at the given workspace directory.
func NewWorkspaceStore(root string) *WorkspaceStore {
	return &WorkspaceStore{root: root}
}

// Root returns the workspace directory the store was created with.
func (s *WorkspaceStore) Root() string {
	return s.root
}

// Path returns the location of the workspace config file.
func (s *WorkspaceStore) Path() string {
	return filepath.Join(s.root, workspaceDir, workspaceFileName)
}

// Load reads the persisted workspace configuration. It returns an error
// wrapping ErrNotFound when the file is missing or unparsable; callers
// treat that as an empty configuration, not a failure.
func (s *WorkspaceStore) Load() (*Workspace, error) {
	path := s.Path()
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable file %s", ErrNotFound, path)
	}

	sec := f.Section(workspaceSection)
	return &Workspace{
		ApplicationName: sec.Key("application_name").String(),
		Region:          sec.Key("region").String(),
		Profile:         sec.Key("profile").String(),
	}, nil
}

// Save overwrites the workspace configuration atomically: the new
// content is written to a temp file in the same directory and renamed
// into place, so readers never observe a partial write.
func (s *WorkspaceStore) Save(ws *Workspace) error {
	dir := filepath.Join(s.root, workspaceDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create workspace directory %s: %w", dir, err)
	}

	f := ini.Empty()
	sec := f.Section(workspaceSection)
	sec.Key("application_name").SetValue(ws.ApplicationName)
	sec.Key("region").SetValue(ws.Region)
	sec.Key("profile").SetValue(ws.Profile)

	tmp, err := os.CreateTemp(dir, workspaceFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp config file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tmpPath, s.Path()); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace config file: %w", err)
	}

	return nil
}
