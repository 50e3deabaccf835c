package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const stayDateLayout = "02.01.2006"

// TelegramNotifier posts reservation events to the operations channel.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyRequested(ctx context.Context, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Новый запрос на бронирование*\n\n"+stayLine(r)+"\nСумма: %d\nОжидает решения владельца.",
		r.TotalPrice,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyConfirmed(ctx context.Context, r *domain.Reservation) {
	n.send(ctx, "*Бронирование подтверждено*\n\n"+stayLine(r))
}

func (n *TelegramNotifier) NotifyRejected(ctx context.Context, r *domain.Reservation) {
	n.send(ctx, "*Бронирование отклонено владельцем*\n\n"+stayLine(r))
}

func (n *TelegramNotifier) NotifyCancelled(ctx context.Context, r *domain.Reservation) {
	text := fmt.Sprintf(
		"*Бронирование отменено*\n\n"+stayLine(r)+"\nВозврат: %d%% (%d)",
		r.RefundPercent, r.RefundAmount(),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyCompleted(ctx context.Context, r *domain.Reservation) {
	n.send(ctx, "*Проживание завершено*\n\n"+stayLine(r))
}

func stayLine(r *domain.Reservation) string {
	return fmt.Sprintf(
		"Объект: %s\nЗаезд: %s, выезд: %s, гостей: %d",
		r.ListingID,
		r.Stay.CheckIn.Format(stayDateLayout),
		r.Stay.CheckOut.Format(stayDateLayout),
		r.Guests,
	)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
