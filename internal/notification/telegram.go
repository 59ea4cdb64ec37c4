package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/oclawesteban/gymflow/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, member *domain.Member, class *domain.ClassTemplate, date time.Time) {
	text := fmt.Sprintf(
		"*Your spot is booked!*\n\n"+"Class: %s\n"+"Date: %s at %s",
		class.Title, date.Format("02.01.2006"), class.StartTime,
	)
	n.send(ctx, member.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, member *domain.Member, class *domain.ClassTemplate, date time.Time) {
	text := fmt.Sprintf(
		"*Your booking was cancelled*\n\n"+"Class: %s\n"+"Date: %s at %s",
		class.Title, date.Format("02.01.2006"), class.StartTime,
	)
	n.send(ctx, member.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyMembershipExpired(ctx context.Context, member *domain.Member, m *domain.Membership) {
	text := fmt.Sprintf(
		"*Your membership has expired*\n\n"+"It ended on %s. Renew your plan to keep booking classes.",
		m.EndDate.Format("02.01.2006"),
	)
	n.send(ctx, member.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil || chatID == nil {
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.String("error", err.Error()),
		)
	}
}
