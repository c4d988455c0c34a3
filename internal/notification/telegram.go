package notification

import (
	"context"
	"fmt"

	"event-booking/internal/data/entity"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// TelegramNotifier sends booking updates to users over Telegram. With an
// empty token it stays wired but silently drops every message.
type TelegramNotifier struct {
	bot *tgbotapi.BotAPI
	log *zap.Logger
}

func NewTelegramNotifier(token string, log *zap.Logger) (*TelegramNotifier, error) {
	log = log.With(zap.String("notifier", "telegram"))

	if token == "" {
		log.Warn("Telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, log: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, log: log}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, user *entity.User, event *entity.Event) {
	text := fmt.Sprintf(
		"*Spot reserved!*\n\nEvent: %s\nDate (UTC): %s\nConfirm your booking within %s or it will be cancelled.",
		event.Title,
		event.EventDate.Format("02.01.2006 15:04"),
		event.BookingTTL.String(),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, user *entity.User, event *entity.Event) {
	text := fmt.Sprintf(
		"*Booking confirmed!*\n\nEvent: %s\nDate (UTC): %s",
		event.Title, event.EventDate.Format("02.01.2006 15:04"),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *entity.User, event *entity.Event) {
	text := fmt.Sprintf(
		"*Booking cancelled (confirmation window expired)*\n\nEvent: %s\nDate (UTC): %s",
		event.Title, event.EventDate.Format("02.01.2006 15:04"),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.log.Debug("Notification skipped (bot disabled)")
		return
	}

	if chatID == nil {
		n.log.Debug("Notification skipped (user has no chat id)")
		return
	}

	if err := ctx.Err(); err != nil {
		n.log.Debug("Notification skipped (context cancelled)", zap.Int64("chat_id", *chatID))
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.log.Error("Failed to send telegram notification",
			zap.Error(err),
			zap.Int64("chat_id", *chatID),
		)
	}
}
