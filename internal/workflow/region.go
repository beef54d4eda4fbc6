package workflow

import (
	"fmt"
	"strconv"
	"strings"

	awsinternal "skylift/internal/aws"
	"skylift/internal/config"
	"skylift/internal/logging"
	"skylift/internal/terminal"
)

const (
	regionSetupPrompt  = "Would you like to set up a default region? (y/n)"
	regionSelectPrompt = "Select a default region"
)

// RegionSelector resolves the target region for the run.
type RegionSelector struct {
	Prompt  terminal.Prompter
	Console terminal.Console
}

// Resolve picks the region by provenance: flag, then persisted config,
// then interactive selection from the fixed 1-indexed list, then the
// built-in default when the user declines setup. Flag and persisted
// values are not validated against the list.
func (s *RegionSelector) Resolve(flagRegion string, cfg *config.Workspace) (string, PromptSource, error) {
	if flagRegion != "" {
		return flagRegion, SourceFlag, nil
	}
	if cfg.Region != "" {
		return cfg.Region, SourcePersisted, nil
	}

	answer, err := s.Prompt.Ask(regionSetupPrompt)
	if err != nil {
		return "", SourceDefault, err
	}
	if !isYes(answer) {
		logging.Debug("Region setup declined, using default", map[string]interface{}{
			"region": awsinternal.DefaultRegion,
		})
		return awsinternal.DefaultRegion, SourceDefault, nil
	}

	for i, region := range awsinternal.SupportedRegions {
		s.Console.Tell(fmt.Sprintf("%d) %s", i+1, region))
	}

	selection, err := s.Prompt.Ask(regionSelectPrompt)
	if err != nil {
		return "", SourceInteractive, err
	}
	index, err := strconv.Atoi(selection)
	if err != nil || index < 1 || index > len(awsinternal.SupportedRegions) {
		return "", SourceInteractive, fmt.Errorf("invalid region selection %q: expected a number between 1 and %d",
			selection, len(awsinternal.SupportedRegions))
	}

	return awsinternal.SupportedRegions[index-1], SourceInteractive, nil
}

func isYes(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}
