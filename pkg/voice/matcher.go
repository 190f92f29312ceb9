package voice

import (
	"regexp"
	"strings"
	"time"
)

// Command is a named voice command with the spoken phrases that
// trigger it.
type Command struct {
	Name    string
	Phrases []string
}

type compiledCommand struct {
	name    string
	pattern *regexp.Regexp
}

// Matcher scans live transcript text for command phrases. Matches are
// rate limited so a phrase lingering in a rolling transcript window
// does not fire the same command repeatedly.
type Matcher struct {
	commands    []compiledCommand
	minInterval time.Duration
	lastMatch   map[string]time.Time
}

func NewMatcher(commands []Command, minInterval time.Duration) *Matcher {
	compiled := make([]compiledCommand, 0, len(commands))
	for _, cmd := range commands {
		if len(cmd.Phrases) == 0 {
			continue
		}
		quoted := make([]string, 0, len(cmd.Phrases))
		for _, phrase := range cmd.Phrases {
			quoted = append(quoted, regexp.QuoteMeta(phrase))
		}
		// Word boundaries keep "stop" from matching inside "nonstop".
		pattern := regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
		compiled = append(compiled, compiledCommand{name: cmd.Name, pattern: pattern})
	}

	return &Matcher{
		commands:    compiled,
		minInterval: minInterval,
		lastMatch:   make(map[string]time.Time),
	}
}

// Match returns the name of the first command found in the transcript,
// or "" when nothing fires. A command that fired within minInterval of
// now is suppressed.
func (m *Matcher) Match(transcript string, now time.Time) string {
	for _, cmd := range m.commands {
		if !cmd.pattern.MatchString(transcript) {
			continue
		}
		if last, ok := m.lastMatch[cmd.name]; ok && now.Sub(last) < m.minInterval {
			continue
		}
		m.lastMatch[cmd.name] = now
		return cmd.name
	}
	return ""
}
