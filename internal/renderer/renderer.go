package renderer

import (
	"fmt"
	"strings"

	domainErrors "github.com/agusmolina/conventional-emojis/internal/domain/errors"
	"github.com/agusmolina/conventional-emojis/internal/domain/models"
)

// Render sustituye los placeholders nombrados del template por los valores del commit.
//
// El set de placeholders es cerrado: {conventional_prefix}, {description},
// {breaking_emoji}, {type_emoji}, {scope_emoji} y {body}. Un nombre fuera del set,
// o una llave sin cerrar, es un error: la sustitución es estricta a propósito,
// un typo en el template no debe pasar silenciosamente al mensaje final.
// Las llaves literales se escapan como {{ y }}.
func Render(details models.CommitDetails, emojis models.EmojiSet, template string) (string, error) {
	fields := map[string]string{
		"conventional_prefix": details.ConventionalPrefix,
		"description":         details.Description,
		"breaking_emoji":      emojis.BreakingEmoji,
		"type_emoji":          emojis.TypeEmoji,
		"scope_emoji":         emojis.ScopeEmoji,
		"body":                details.Body,
	}

	var sb strings.Builder
	for i := 0; i < len(template); i++ {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				sb.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", domainErrors.NewInvalidCommitTemplateError(template, "unclosed placeholder")
			}
			name := template[i+1 : i+1+end]
			value, ok := fields[name]
			if !ok {
				return "", domainErrors.NewInvalidCommitTemplateError(template,
					fmt.Sprintf("unknown placeholder '%s'", name))
			}
			sb.WriteString(value)
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				sb.WriteByte('}')
				i++
				continue
			}
			return "", domainErrors.NewInvalidCommitTemplateError(template, "single '}' in template")
		default:
			sb.WriteByte(template[i])
		}
	}

	return strings.TrimSpace(sb.String()), nil
}
