package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/botdeck/botdeck-terminal/pkg/models"
)

const (
	BotdeckDir   = ".botdeck"
	CardsDir     = "cards"
	SettingsFile = "settings.yaml"

	// TokenEnvVar overrides the stored token when set, for CI and one-off
	// runs without touching settings.
	TokenEnvVar = "BOTDECK_TOKEN"
)

// InitProjectStructure creates the .botdeck directory layout.
func InitProjectStructure() error {
	dirs := []string{
		BotdeckDir,
		filepath.Join(BotdeckDir, CardsDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ReadSettings loads settings.yaml. Missing file is not an error: callers
// fall back to defaults via ReadSettingsWithDefault.
func ReadSettings() (*models.Settings, error) {
	path := filepath.Join(BotdeckDir, SettingsFile)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

// ReadSettingsWithDefault loads settings, substituting defaults when the
// file is missing or unreadable, and applies the token env override.
func ReadSettingsWithDefault() *models.Settings {
	settings, err := ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}
	if token := os.Getenv(TokenEnvVar); token != "" {
		settings.Webex.Token = token
	}
	return settings
}

// WriteSettings persists settings.yaml, creating the directory if needed.
func WriteSettings(settings *models.Settings) error {
	if err := InitProjectStructure(); err != nil {
		return err
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	path := filepath.Join(BotdeckDir, SettingsFile)
	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}

// Draft is a saved card document.
type Draft struct {
	Name     string
	Document string
	Modified time.Time
}

func draftPath(name string) string {
	return filepath.Join(BotdeckDir, CardsDir, name+".json")
}

// ValidateDraftName rejects names that would escape the cards directory or
// collide with the .json suffix handling.
func ValidateDraftName(name string) error {
	if name == "" {
		return fmt.Errorf("draft name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
		return fmt.Errorf("invalid draft name: %s", name)
	}
	return nil
}

// ReadDraft loads a saved card by name.
func ReadDraft(name string) (*Draft, error) {
	if err := ValidateDraftName(name); err != nil {
		return nil, err
	}

	path := draftPath(name)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read card draft %s: %w", name, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat card draft %s: %w", name, err)
	}

	return &Draft{
		Name:     name,
		Document: string(content),
		Modified: info.ModTime(),
	}, nil
}

// WriteDraft saves a card document under the given name, overwriting any
// existing draft with that name.
func WriteDraft(name, document string) error {
	if err := ValidateDraftName(name); err != nil {
		return err
	}
	if err := InitProjectStructure(); err != nil {
		return err
	}

	if err := os.WriteFile(draftPath(name), []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write card draft %s: %w", name, err)
	}

	return nil
}

// DeleteDraft removes a saved card.
func DeleteDraft(name string) error {
	if err := ValidateDraftName(name); err != nil {
		return err
	}
	if err := os.Remove(draftPath(name)); err != nil {
		return fmt.Errorf("failed to delete card draft %s: %w", name, err)
	}
	return nil
}

// ListDrafts returns the saved card names, sorted.
func ListDrafts() ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(BotdeckDir, CardsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list card drafts: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
		}
	}
	sort.Strings(names)

	return names, nil
}
