package collector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devantler-tech/backtool/pkg/apis/project/v1alpha1"
	"github.com/devantler-tech/backtool/pkg/cli/ui/prompt"
)

// ErrPromptUnanswerable is returned when a required value is missing and no user can be asked.
var ErrPromptUnanswerable = errors.New("missing required value and input is not interactive")

// Collector turns Input into Options.
type Collector struct {
	prompter    prompt.Prompter
	interactive bool
}

// NewCollector creates a Collector. A nil prompter or interactive=false means
// missing values cannot be asked for.
func NewCollector(prompter prompt.Prompter, interactive bool) *Collector {
	return &Collector{prompter: prompter, interactive: interactive && prompter != nil}
}

// Collect validates explicit values and prompts for the project name, database and
// language when they are unset. The connection URI is never prompted for.
func (c *Collector) Collect(input v1alpha1.Input) (v1alpha1.Options, error) {
	name, err := c.projectName(strings.TrimSpace(input.ProjectName))
	if err != nil {
		return v1alpha1.Options{}, err
	}

	database, err := c.database(input.Database)
	if err != nil {
		return v1alpha1.Options{}, err
	}

	language, err := c.language(input.Language)
	if err != nil {
		return v1alpha1.Options{}, err
	}

	return v1alpha1.NewOptions(input, name, database, language), nil
}

func (c *Collector) projectName(explicit string) (string, error) {
	if explicit != "" {
		err := v1alpha1.ValidateProjectName(explicit)
		if err != nil {
			return "", err
		}

		return explicit, nil
	}

	if !c.interactive {
		return "", fmt.Errorf("%w: project name (use --project)", ErrPromptUnanswerable)
	}

	name, err := c.prompter.Text("Project name", "my-api", v1alpha1.ValidateProjectName)
	if err != nil {
		return "", fmt.Errorf("ask for project name: %w", err)
	}

	return strings.TrimSpace(name), nil
}

func (c *Collector) database(explicit v1alpha1.Database) (v1alpha1.Database, error) {
	if explicit != "" {
		var database v1alpha1.Database

		err := database.Set(string(explicit))
		if err != nil {
			return "", err
		}

		return database, nil
	}

	if !c.interactive {
		return "", fmt.Errorf("%w: database (use --database)", ErrPromptUnanswerable)
	}

	var database v1alpha1.Database

	choice, err := c.prompter.Select("Choose a database", database.ValidValues())
	if err != nil {
		return "", fmt.Errorf("ask for database: %w", err)
	}

	err = database.Set(choice)
	if err != nil {
		return "", err
	}

	return database, nil
}

func (c *Collector) language(explicit v1alpha1.Language) (v1alpha1.Language, error) {
	if explicit != "" {
		var language v1alpha1.Language

		err := language.Set(string(explicit))
		if err != nil {
			return "", err
		}

		return language, nil
	}

	if !c.interactive {
		return "", fmt.Errorf("%w: language (use --language)", ErrPromptUnanswerable)
	}

	var language v1alpha1.Language

	choice, err := c.prompter.Select("Choose a language", language.ValidValues())
	if err != nil {
		return "", fmt.Errorf("ask for language: %w", err)
	}

	err = language.Set(choice)
	if err != nil {
		return "", err
	}

	return language, nil
}
