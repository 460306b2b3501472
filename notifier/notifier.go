package notifier

import (
	"errors"
	"fmt"
	tb "gopkg.in/tucnak/telebot.v2"
	"time"
)

// Notifier delivers digests to the configured Telegram chat
type Notifier struct {
	token  string
	chatID string
}

func NewNotifier(token string, chatID string) (*Notifier, error) {
	if token == "" || chatID == "" {
		return nil, errors.New("telegram credentials not configured")
	}
	return &Notifier{token: token, chatID: chatID}, nil
}

// Send pushes one MarkdownV2 message to the chat
func (n *Notifier) Send(message string) error {
	b, err := tb.NewBot(tb.Settings{
		Token:  n.token,
		Poller: &tb.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return fmt.Errorf("error creating telegram bot: %w", err)
	}

	chat, err := b.ChatByID(n.chatID)
	if err != nil {
		return fmt.Errorf("error resolving telegram chat: %w", err)
	}

	_, err = b.Send(chat, message, &tb.SendOptions{
		ParseMode:             tb.ModeMarkdownV2,
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("error sending telegram message: %w", err)
	}
	return nil
}
