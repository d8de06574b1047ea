package models

import "strings"

// CommandType enumerates the dashboard queries available over WhatsApp.
type CommandType string

const (
	CommandOverview CommandType = "overview"
	CommandHealth   CommandType = "health"
	CommandCredit   CommandType = "credit"
	CommandHelp     CommandType = "help"
	// CommandChat is free text that is not a slash command.
	CommandChat CommandType = "chat"
)

// Command is a parsed WhatsApp message.
type Command struct {
	Type CommandType
	Raw  string
	Args []string
}

// ParseCommand classifies a message. Only text starting with "/" is a
// command; anything else is relayed to the chat assistant.
func ParseCommand(message string) Command {
	trimmed := strings.TrimSpace(message)
	cmd := Command{Type: CommandChat, Raw: message}

	if !strings.HasPrefix(trimmed, "/") {
		return cmd
	}

	tokens := strings.Fields(strings.ToLower(trimmed))
	switch head := strings.TrimPrefix(tokens[0], "/"); head {
	case string(CommandOverview):
		cmd.Type = CommandOverview
	case string(CommandHealth):
		cmd.Type = CommandHealth
	case string(CommandCredit):
		cmd.Type = CommandCredit
	default:
		cmd.Type = CommandHelp
	}

	if len(tokens) > 1 {
		cmd.Args = tokens[1:]
	}

	return cmd
}
