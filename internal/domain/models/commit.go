package models

type (
	// CommitDetails contiene las partes extraídas de un mensaje de commit convencional
	CommitDetails struct {
		ConventionalPrefix string
		Description        string
		Body               string
		CommitType         string
		Scope              string
		Breaking           bool
	}

	// EmojiSet son los emojis resueltos para un commit
	EmojiSet struct {
		TypeEmoji     string
		ScopeEmoji    string
		BreakingEmoji string
	}
)
