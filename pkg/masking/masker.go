package masking

import (
	"log/slog"
	"regexp"
	"sync"
)

// pattern pairs a secret-matching regex with its canonical replacement.
type pattern struct {
	Name        string
	Pattern     string
	Replacement string
	Description string
}

// builtinPatterns is the ordered masking set applied to agent output before
// it is persisted or echoed. Order matters: structural patterns
// (certificates, connection strings) run before the generic key/value ones.
var builtinPatterns = []pattern{
	{
		Name:        "certificate",
		Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
		Replacement: `__MASKED_CERTIFICATE__`,
		Description: "SSL/TLS certificates and PEM blocks",
	},
	{
		Name:        "connection_string",
		Pattern:     `(?i)\b(postgres(?:ql)?|mysql|mongodb(?:\+srv)?|redis|amqps?)://[^:/\s]+:[^@\s]+@`,
		Replacement: `${1}://__MASKED_CREDENTIALS__@`,
		Description: "Database connection strings with inline credentials",
	},
	{
		Name:        "aws_access_key",
		Pattern:     `(?i)(?:aws[_-]?access[_-]?key[_-]?id)["']?\s*[:=]\s*["']?(AKIA[A-Z0-9]{16})["']?`,
		Replacement: `"aws_access_key_id": "__MASKED_AWS_KEY__"`,
		Description: "AWS access keys",
	},
	{
		Name:        "aws_secret_key",
		Pattern:     `(?i)(?:aws[_-]?secret[_-]?access[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`,
		Replacement: `"aws_secret_access_key": "__MASKED_AWS_SECRET__"`,
		Description: "AWS secret keys",
	},
	{
		Name:        "github_token",
		Pattern:     `gh[pousr]_[A-Za-z0-9_]{36,255}`,
		Replacement: `__MASKED_GITHUB_TOKEN__`,
		Description: "GitHub tokens",
	},
	{
		Name:        "slack_token",
		Pattern:     `xox[baprs]-[A-Za-z0-9-]{10,}`,
		Replacement: `__MASKED_SLACK_TOKEN__`,
		Description: "Slack tokens",
	},
	{
		Name:        "api_key",
		Pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
		Replacement: `"api_key": "__MASKED_API_KEY__"`,
		Description: "API keys",
	},
	{
		Name:        "secret_key",
		Pattern:     `(?i)(?:secret[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
		Replacement: `"secret_key": "__MASKED_SECRET_KEY__"`,
		Description: "Secret keys",
	},
	{
		Name:        "private_key",
		Pattern:     `(?i)(?:private[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
		Replacement: `"private_key": "__MASKED_PRIVATE_KEY__"`,
		Description: "Private keys",
	},
	{
		Name:        "token",
		Pattern:     `(?i)(?:token|bearer|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
		Replacement: `"token": "__MASKED_TOKEN__"`,
		Description: "Access tokens",
	},
	{
		Name:        "password",
		Pattern:     `(?i)(?:password|passwd|pwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
		Replacement: `"password": "__MASKED_PASSWORD__"`,
		Description: "Passwords",
	},
	{
		Name:        "ssh_key",
		Pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
		Replacement: `__MASKED_SSH_KEY__`,
		Description: "SSH public keys",
	},
}

// compiledPattern holds a pre-compiled regex pattern with its replacement.
type compiledPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// Masker applies the built-in secret patterns to agent output. Created once
// at application startup; thread-safe and stateless aside from compiled
// patterns.
type Masker struct {
	patterns []*compiledPattern
}

// NewMasker compiles the built-in pattern set eagerly. Invalid patterns are
// logged and skipped.
func NewMasker() *Masker {
	m := &Masker{patterns: make([]*compiledPattern, 0, len(builtinPatterns))}
	for _, p := range builtinPatterns {
		compiled, err := regexp.Compile(p.Pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", p.Name, "error", err)
			continue
		}
		m.patterns = append(m.patterns, &compiledPattern{
			name:        p.Name,
			regex:       compiled,
			replacement: p.Replacement,
		})
	}
	slog.Debug("Masker initialized", "patterns", len(m.patterns))
	return m
}

// Mask replaces every secret match with its canonical placeholder.
func (m *Masker) Mask(content string) string {
	if content == "" {
		return content
	}
	for _, p := range m.patterns {
		content = p.regex.ReplaceAllString(content, p.replacement)
	}
	return content
}

var (
	defaultMasker     *Masker
	defaultMaskerOnce sync.Once
)

// MaskSecrets applies the built-in pattern set via a shared default masker.
func MaskSecrets(content string) string {
	defaultMaskerOnce.Do(func() { defaultMasker = NewMasker() })
	return defaultMasker.Mask(content)
}
