package command_test

import (
	"testing"

	"github.com/boubertbot/boubert/internal/command"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected command.Command
	}{
		{
			name:  "create event",
			input: "evento 2025-03-01 10:00 meeting 1 0",
			expected: command.Command{
				Intent: command.IntentCreateEvent,
				Args:   []string{"2025-03-01", "10:00", "meeting", "1", "0"},
			},
		},
		{
			name:  "create event english trigger",
			input: "event 2025-03-01 10:00 meeting 1 0",
			expected: command.Command{
				Intent: command.IntentCreateEvent,
				Args:   []string{"2025-03-01", "10:00", "meeting", "1", "0"},
			},
		},
		{
			name:  "create event upper case",
			input: "Evento 2025-03-01 10:00 meeting 1 0",
			expected: command.Command{
				Intent: command.IntentCreateEvent,
				Args:   []string{"2025-03-01", "10:00", "meeting", "1", "0"},
			},
		},
		{
			name:     "list events beats create event",
			input:    "lista de eventos",
			expected: command.Command{Intent: command.IntentListEvents},
		},
		{
			name:  "delete event beats create event",
			input: "eliminar evento meeting",
			expected: command.Command{
				Intent: command.IntentDeleteEvent,
				Args:   []string{"meeting"},
			},
		},
		{
			name:     "list links",
			input:    "lista de enlaces",
			expected: command.Command{Intent: command.IntentListLinks},
		},
		{
			name:  "save link",
			input: "guardar enlace docs https://example.com",
			expected: command.Command{
				Intent: command.IntentSaveLink,
				Args:   []string{"docs", "https://example.com"},
			},
		},
		{
			name:  "create alarm",
			input: "pon una alarma 2025-03-01 10:00 despertar",
			expected: command.Command{
				Intent: command.IntentCreateAlarm,
				Args:   []string{"2025-03-01", "10:00", "despertar"},
			},
		},
		{
			name:     "help ayuda",
			input:    "ayuda",
			expected: command.Command{Intent: command.IntentHelp},
		},
		{
			name:     "help comandos",
			input:    "comandos",
			expected: command.Command{Intent: command.IntentHelp},
		},
		{
			name:     "help must match exactly",
			input:    "dame ayuda",
			expected: command.Command{Intent: command.IntentUnknown},
		},
		{
			name:     "unrecognized",
			input:    "xyz",
			expected: command.Command{Intent: command.IntentUnknown},
		},
		{
			name:     "create event too few tokens",
			input:    "evento 2025-03-01 10:00 meeting",
			expected: command.Command{Intent: command.IntentUnknown},
		},
		{
			name:     "create event too many tokens",
			input:    "evento 2025-03-01 10:00 team meeting 1 0",
			expected: command.Command{Intent: command.IntentUnknown},
		},
		{
			name:     "save link too few tokens",
			input:    "guardar enlace docs",
			expected: command.Command{Intent: command.IntentUnknown},
		},
		{
			name:     "alarm too few tokens",
			input:    "pon una alarma 2025-03-01 10:00",
			expected: command.Command{Intent: command.IntentUnknown},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, command.Parse(tc.input))
		})
	}
}
