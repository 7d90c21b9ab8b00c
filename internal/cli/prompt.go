package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/tacogips/vitesetup/internal/app"
	"github.com/tacogips/vitesetup/internal/variant"
)

// PromptProjectName asks for the project name.
func PromptProjectName(defaultName string) (string, error) {
	var name string
	prompt := &survey.Input{
		Message: "Project name",
		Default: defaultName,
		Help:    "Must start with a letter; letters, numbers, dashes and underscores only (max 50)",
	}
	if err := survey.AskOne(prompt, &name, survey.WithValidator(validateProjectNameAnswer)); err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

// PromptStack asks for the stack and returns its "<framework>-<language>" form.
func PromptStack(defaultStack string) (string, error) {
	configs := variant.All()
	options := make([]string, len(configs))
	for i, cfg := range configs {
		options[i] = cfg.DisplayName
	}

	prompt := &survey.Select{
		Message: "Choose your stack",
		Options: options,
	}
	if def, err := variant.ParseStack(defaultStack); err == nil {
		prompt.Default = def.DisplayName
	}

	var idx int
	if err := survey.AskOne(prompt, &idx); err != nil {
		return "", err
	}
	return configs[idx].Stack(), nil
}

// validateProjectNameAnswer adapts app.ValidateProjectName to survey.
func validateProjectNameAnswer(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return fmt.Errorf("expected a string, got %T", ans)
	}
	return app.ValidateProjectName(strings.TrimSpace(s))
}
