package errors

import (
	"fmt"
	"strings"
)

// NonConventionalCommitError indica que el mensaje no sigue el formato de Conventional Commits
type NonConventionalCommitError struct{}

func (e *NonConventionalCommitError) Error() string {
	return "Commit message does not follow Conventional Commits rules."
}

// NewNonConventionalCommitError crea un nuevo error de commit no convencional
func NewNonConventionalCommitError() *NonConventionalCommitError {
	return &NonConventionalCommitError{}
}

// NoConventionalCommitTypeFoundError indica que el tipo del commit no existe en la tabla de tipos
type NoConventionalCommitTypeFoundError struct {
	CommitType string
	Available  []string // sorted
}

func (e *NoConventionalCommitTypeFoundError) Error() string {
	return fmt.Sprintf("Commit type '%s' does not have a corresponding emoji.\nAvailable types are: %s",
		e.CommitType, strings.Join(e.Available, ", "))
}

// NewNoConventionalCommitTypeFoundError crea un nuevo error de tipo no encontrado
func NewNoConventionalCommitTypeFoundError(commitType string, available []string) *NoConventionalCommitTypeFoundError {
	return &NoConventionalCommitTypeFoundError{CommitType: commitType, Available: available}
}

// UndefinedScopeError indica que el scope no coincide con ningún patrón configurado
type UndefinedScopeError struct {
	Scope string
}

func (e *UndefinedScopeError) Error() string {
	return fmt.Sprintf("Scope '%s' does not match any defined patterns in the configuration.", e.Scope)
}

// NewUndefinedScopeError crea un nuevo error de scope no definido
func NewUndefinedScopeError(scope string) *UndefinedScopeError {
	return &UndefinedScopeError{Scope: scope}
}

// InvalidCommitTemplateError indica que el template referencia placeholders desconocidos o está mal formado
type InvalidCommitTemplateError struct {
	Template string
	Reason   string
}

func (e *InvalidCommitTemplateError) Error() string {
	return fmt.Sprintf("Invalid commit template %q: %s.\nMake sure your template contains only these fields and no typos: "+
		"conventional_prefix, description, breaking_emoji, type_emoji, scope_emoji, body", e.Template, e.Reason)
}

// NewInvalidCommitTemplateError crea un nuevo error de template inválido
func NewInvalidCommitTemplateError(template, reason string) *InvalidCommitTemplateError {
	return &InvalidCommitTemplateError{Template: template, Reason: reason}
}

// ConfigParseError indica que el contenido TOML de configuración no se pudo parsear
type ConfigParseError struct {
	Err error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("Error parsing custom rules TOML content: %v", e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

// NewConfigParseError crea un nuevo error de parseo de configuración
func NewConfigParseError(err error) *ConfigParseError {
	return &ConfigParseError{Err: err}
}

// InvalidConfigError indica que la configuración viola el esquema (claves desconocidas, patrones inválidos)
type InvalidConfigError struct {
	Message string
	Err     error
}

func (e *InvalidConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid configuration: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

func (e *InvalidConfigError) Unwrap() error {
	return e.Err
}

// NewInvalidConfigError crea un nuevo error de configuración inválida
func NewInvalidConfigError(message string, err error) *InvalidConfigError {
	return &InvalidConfigError{Message: message, Err: err}
}
