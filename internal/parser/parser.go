package parser

import (
	"regexp"
	"strings"

	domainErrors "github.com/agusmolina/conventional-emojis/internal/domain/errors"
	"github.com/agusmolina/conventional-emojis/internal/domain/models"
)

// basePattern es la gramática del header de Conventional Commits: type(scope)!: description
// El scope es greedy a propósito: "feat(a)(b): x" captura "a)(b" como scope.
var basePattern = regexp.MustCompile(`^(?P<type>\w+)(\((?P<scope>.+)\))?(?P<breaking>!)?:`)

var (
	typeIndex     = basePattern.SubexpIndex("type")
	scopeIndex    = basePattern.SubexpIndex("scope")
	breakingIndex = basePattern.SubexpIndex("breaking")
)

// Extract separa el mensaje en título y cuerpo y matchea el título contra la gramática.
// Devuelve NonConventionalCommitError si el título no cumple el formato.
func Extract(commitMessage string) (models.CommitDetails, error) {
	lines := strings.Split(commitMessage, "\n")
	title := lines[0]

	match := basePattern.FindStringSubmatchIndex(title)
	if match == nil {
		return models.CommitDetails{}, domainErrors.NewNonConventionalCommitError()
	}

	group := func(idx int) string {
		start, end := match[2*idx], match[2*idx+1]
		if start < 0 {
			return ""
		}
		return title[start:end]
	}

	prefixEnd := match[1]

	return models.CommitDetails{
		ConventionalPrefix: strings.TrimSpace(title[:prefixEnd]),
		Description:        strings.TrimSpace(title[prefixEnd:]),
		Body:               strings.TrimSpace(strings.Join(lines[1:], "\n")),
		CommitType:         group(typeIndex),
		Scope:              group(scopeIndex),
		Breaking:           group(breakingIndex) != "",
	}, nil
}
