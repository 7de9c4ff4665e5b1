package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations crea el catálogo de mensajes. localesPath vacío usa "locales" relativo.
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath == "" {
		localesPath = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Add emojis to Conventional Commits messages"

	[app_description]
	other = "Rewrites a commit message file adding emojis derived from the commit type, scope and breaking-change marker. Meant to run as a prepare-commit-msg/commit-msg hook step."

	[config_file_flag_usage]
	other = "Path to the configuration file"

	[disable_types_as_scopes_flag_usage]
	other = "Disable using types as scopes in commit messages"

	[template_flag_usage]
	other = "Override commit message template (overrides both default and config file settings)"

	[disable_breaking_emoji_flag_usage]
	other = "Disable showing breaking change emoji"

	[enforce_scope_patterns_flag_usage]
	other = "Enforce scope to match defined patterns in settings"

	[lang_flag_usage]
	other = "Language for messages (en, es)"

	[verbose_flag_usage]
	other = "Enable informational logging"

	[debug_flag_usage]
	other = "Enable debug logging"

	[missing_commit_file_arg]
	other = "Path to the commit message file is required"

	[no_config_file]
	other = "No custom rules TOML file found."

	[commit_updated]
	other = "🎉 Commit message follows Conventional Commits rules and has been updated with an emoji."

	[commit_failed]
	other = "💥 Commit message: '{{.Message}}'\n💥 {{.Error}}"

	[unexpected_error]
	other = "An unexpected error occurred: {{.Error}}"

	[config_command_usage]
	other = "Manage the emoji rules configuration"

	[config_init_usage]
	other = "Write a sample configuration file to the current directory"

	[config_init_force_flag_usage]
	other = "Overwrite the configuration file if it already exists"

	[config_init_written]
	other = "Sample configuration written to {{.Path}}"

	[config_init_exists]
	other = "{{.Path}} already exists. Use --force to overwrite it."
	`
