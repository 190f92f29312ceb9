package voice

import (
	"testing"
	"time"
)

func testCommands() []Command {
	return []Command{
		{Name: "stop_recording", Phrases: []string{"stop recording", "end recording"}},
		{Name: "new_note", Phrases: []string{"new note"}},
	}
}

func TestMatch(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		transcript string
		want       string
	}{
		{
			name:       "exact phrase",
			transcript: "okay stop recording please",
			want:       "stop_recording",
		},
		{
			name:       "case insensitive",
			transcript: "STOP RECORDING",
			want:       "stop_recording",
		},
		{
			name:       "alternate phrase",
			transcript: "please end recording now",
			want:       "stop_recording",
		},
		{
			name:       "no command",
			transcript: "just talking about my day",
			want:       "",
		},
		{
			name:       "phrase inside a word does not fire",
			transcript: "renew noteworthy subscriptions",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(testCommands(), time.Second)
			got := m.Match(tt.transcript, now)
			if got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.transcript, got, tt.want)
			}
		})
	}
}

func TestMatchRateLimit(t *testing.T) {
	m := NewMatcher(testCommands(), time.Second)
	now := time.Now()

	if got := m.Match("stop recording", now); got != "stop_recording" {
		t.Fatalf("first match = %q", got)
	}

	// Same phrase still in the transcript window shortly after.
	if got := m.Match("stop recording", now.Add(200*time.Millisecond)); got != "" {
		t.Errorf("suppressed match = %q, want empty", got)
	}

	// A different command is not affected by the first one's cooldown.
	if got := m.Match("new note", now.Add(200*time.Millisecond)); got != "new_note" {
		t.Errorf("other command = %q, want new_note", got)
	}

	// After the interval the command can fire again.
	if got := m.Match("stop recording", now.Add(2*time.Second)); got != "stop_recording" {
		t.Errorf("post-cooldown match = %q, want stop_recording", got)
	}
}
