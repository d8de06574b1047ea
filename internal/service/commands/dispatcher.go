// Package commands answers parsed WhatsApp commands.
package commands

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

// ErrUnsupportedCommand indicates we do not support the requested command.
var ErrUnsupportedCommand = errors.New("unsupported command")

// HelpText lists the supported commands.
const HelpText = "Warehouse bot commands:\n/overview - inbound, outbound and targets\n/health - shelf-life health check\n/credit - customer credit scoring\n/help - this message\nAny other message goes to the assistant."

// ReportingAdapter defines the reporting functions required by the dispatcher.
type ReportingAdapter interface {
	OverviewText(ctx context.Context) (string, error)
	HealthText(ctx context.Context) (string, error)
	CreditText(ctx context.Context) (string, error)
}

// ChatAdapter relays free text to the assistant.
type ChatAdapter interface {
	Send(ctx context.Context, userID, message string) (models.ChatMessage, error)
}

// Dispatcher turns a parsed command into a reply.
type Dispatcher interface {
	HandleCommand(ctx context.Context, cmd models.Command, sender string) (string, error)
}

// Service implements the Dispatcher interface.
type Service struct {
	reporting ReportingAdapter
	chat      ChatAdapter
	logger    *zap.Logger
}

// NewService constructs a command dispatcher. chat may be nil, in which case
// free text is unsupported.
func NewService(reporting ReportingAdapter, chat ChatAdapter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{reporting: reporting, chat: chat, logger: logger}
}

// HandleCommand produces the reply text for cmd.
func (s *Service) HandleCommand(ctx context.Context, cmd models.Command, sender string) (string, error) {
	s.logger.Debug("dispatching command", zap.String("command", string(cmd.Type)), zap.String("sender", sender), zap.Strings("args", cmd.Args))

	var (
		reply string
		err   error
	)

	switch cmd.Type {
	case models.CommandOverview:
		reply, err = s.reporting.OverviewText(ctx)
	case models.CommandHealth:
		reply, err = s.reporting.HealthText(ctx)
	case models.CommandCredit:
		reply, err = s.reporting.CreditText(ctx)
	case models.CommandHelp:
		return HelpText, nil
	case models.CommandChat:
		if s.chat == nil {
			return "", ErrUnsupportedCommand
		}
		msg, chatErr := s.chat.Send(ctx, sender, cmd.Raw)
		reply, err = msg.Message, chatErr
	default:
		return "", ErrUnsupportedCommand
	}

	if err != nil {
		return "", fmt.Errorf("%s command: %w", cmd.Type, err)
	}
	return reply, nil
}
