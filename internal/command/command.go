// Package command classifies inbound messages into intents and extracts
// their argument tokens. Matching is by substring containment of fixed
// trigger phrases, evaluated in priority order with specific phrases ahead
// of generic ones ("lista de eventos" before "evento").
package command

import "strings"

type Intent int

const (
	IntentUnknown Intent = iota
	IntentListEvents
	IntentDeleteEvent
	IntentCreateEvent
	IntentListLinks
	IntentSaveLink
	IntentCreateAlarm
	IntentHelp
)

type Command struct {
	Intent Intent
	Args   []string
}

type matcher struct {
	intent Intent
	match  func(msg string) bool
	// arity is the expected token count including the trigger words,
	// argStart the index of the first argument token. arity 0 means the
	// intent takes no arguments.
	arity    int
	argStart int
}

func contains(subs ...string) func(string) bool {
	return func(msg string) bool {
		for _, sub := range subs {
			if strings.Contains(msg, sub) {
				return true
			}
		}
		return false
	}
}

func exact(words ...string) func(string) bool {
	return func(msg string) bool {
		for _, w := range words {
			if msg == w {
				return true
			}
		}
		return false
	}
}

var matchers = []matcher{
	{intent: IntentListEvents, match: contains("lista de eventos")},
	{intent: IntentDeleteEvent, match: contains("eliminar evento"), arity: 3, argStart: 2},
	{intent: IntentCreateEvent, match: contains("evento", "event"), arity: 6, argStart: 1},
	{intent: IntentListLinks, match: contains("lista de enlaces")},
	{intent: IntentSaveLink, match: contains("guardar enlace"), arity: 4, argStart: 2},
	{intent: IntentCreateAlarm, match: contains("pon una alarma"), arity: 6, argStart: 3},
	{intent: IntentHelp, match: exact("ayuda", "comandos")},
}

// Parse lower-cases the message and returns its classified command. A
// recognized trigger with the wrong token count degrades to IntentUnknown:
// the caller answers with the generic fallback and must not persist anything.
func Parse(text string) Command {
	msg := strings.ToLower(text)
	for _, m := range matchers {
		if !m.match(msg) {
			continue
		}
		if m.arity == 0 {
			return Command{Intent: m.intent}
		}
		parts := strings.SplitN(msg, " ", m.arity+1)
		if len(parts) != m.arity {
			return Command{Intent: IntentUnknown}
		}
		return Command{Intent: m.intent, Args: parts[m.argStart:]}
	}
	return Command{Intent: IntentUnknown}
}
