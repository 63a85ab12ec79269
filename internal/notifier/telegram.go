package notifier

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier sends messages via the Telegram Bot API.
type TelegramNotifier struct {
	Bot    *tgbotapi.BotAPI
	ChatID string
}

// NewTelegramNotifier creates a notifier with optional proxy support.
// endpoint may be empty to use the public Bot API.
func NewTelegramNotifier(botToken, chatID, proxyURL, endpoint string) (*TelegramNotifier, error) {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	client := &http.Client{Timeout: 35 * time.Second, Transport: transport}
	bot, err := tgbotapi.NewBotAPIWithClient(botToken, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	return &TelegramNotifier{Bot: bot, ChatID: chatID}, nil
}

func (t *TelegramNotifier) Name() string { return "telegram" }

// Send sends a plain-text message to the configured chat.
func (t *TelegramNotifier) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := t.message(text)
	if err != nil {
		// A malformed chat id never recovers on retry.
		return backoff.Permanent(err)
	}
	if _, err := t.Bot.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

func (t *TelegramNotifier) message(text string) (tgbotapi.MessageConfig, error) {
	if strings.HasPrefix(t.ChatID, "@") {
		return tgbotapi.NewMessageToChannel(t.ChatID, text), nil
	}
	id, err := strconv.ParseInt(t.ChatID, 10, 64)
	if err != nil {
		return tgbotapi.MessageConfig{}, fmt.Errorf("parse chat id %q: %w", t.ChatID, err)
	}
	return tgbotapi.NewMessage(id, text), nil
}
