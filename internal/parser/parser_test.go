package parser

import (
	"errors"
	"testing"

	domainErrors "github.com/agusmolina/conventional-emojis/internal/domain/errors"
	"github.com/agusmolina/conventional-emojis/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	t.Run("debería extraer tipo, scope y descripción", func(t *testing.T) {
		details, err := Extract("feat(api): add new endpoint\n\nThis adds a new API endpoint")

		require.NoError(t, err)
		assert.Equal(t, models.CommitDetails{
			ConventionalPrefix: "feat(api):",
			Description:        "add new endpoint",
			Body:               "This adds a new API endpoint",
			CommitType:         "feat",
			Scope:              "api",
			Breaking:           false,
		}, details)
	})

	t.Run("debería detectar el marcador de breaking change", func(t *testing.T) {
		details, err := Extract("feat(api)!: breaking change")

		require.NoError(t, err)
		assert.True(t, details.Breaking)
		assert.Equal(t, "feat(api)!:", details.ConventionalPrefix)
		assert.Equal(t, "breaking change", details.Description)
	})

	t.Run("debería aceptar un header sin scope", func(t *testing.T) {
		details, err := Extract("fix!: hotfix")

		require.NoError(t, err)
		assert.Equal(t, "fix", details.CommitType)
		assert.Equal(t, "", details.Scope)
		assert.True(t, details.Breaking)
	})

	t.Run("debería aceptar una descripción vacía", func(t *testing.T) {
		details, err := Extract("chore:")

		require.NoError(t, err)
		assert.Equal(t, "chore", details.CommitType)
		assert.Equal(t, "", details.Description)
	})

	t.Run("debería recortar espacios de descripción y cuerpo", func(t *testing.T) {
		details, err := Extract("docs:   update readme   \n\n  some body  \n")

		require.NoError(t, err)
		assert.Equal(t, "update readme", details.Description)
		assert.Equal(t, "some body", details.Body)
	})

	t.Run("el scope es greedy hasta el último paréntesis", func(t *testing.T) {
		details, err := Extract("feat(a)(b): x")

		require.NoError(t, err)
		assert.Equal(t, "a)(b", details.Scope)
	})

	t.Run("debería fallar con un header no convencional", func(t *testing.T) {
		cases := []string{
			"update stuff",
			": no type",
			"feat(api) missing colon",
			"",
		}

		for _, message := range cases {
			_, err := Extract(message)

			var ncErr *domainErrors.NonConventionalCommitError
			assert.Error(t, err, "mensaje: %q", message)
			assert.True(t, errors.As(err, &ncErr), "mensaje: %q", message)
		}
	})
}
