// Package notify sends kitchen tickets for new orders to a Telegram chat.
package notify

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/calmliming/menuflow/internal/catalog"
	"github.com/calmliming/menuflow/internal/orders"
)

// Sender is the subset of *tgbotapi.BotAPI used here.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// KitchenNotifier posts one ticket per order to ChatID.
type KitchenNotifier struct {
	sender Sender
	chatID int64
}

func NewKitchenNotifier(sender Sender, chatID int64) *KitchenNotifier {
	return &KitchenNotifier{sender: sender, chatID: chatID}
}

// NewBotSender connects to the Bot API with token.
func NewBotSender(token string) (Sender, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return api, nil
}

// SendTicket posts the ticket for o and returns the Telegram message id.
func (n *KitchenNotifier) SendTicket(ctx context.Context, o orders.Order) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	msg := tgbotapi.NewMessage(n.chatID, Ticket(o))
	sent, err := n.sender.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("send ticket for order %s: %w", o.ID.Hex(), err)
	}
	return sent.MessageID, nil
}

// Ticket renders o as plain text, one line per dish grouped under its
// category. Categories appear in the order they are first seen.
func Ticket(o orders.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order #%s\n", shortID(o.ID.Hex()))
	fmt.Fprintf(&b, "%s\n\n", o.CreatedAt.Format("2006-01-02 15:04"))

	var categories []string
	byCategory := make(map[string][]orders.LineItem)
	for _, it := range o.Items {
		if _, seen := byCategory[it.CategoryID]; !seen {
			categories = append(categories, it.CategoryID)
		}
		byCategory[it.CategoryID] = append(byCategory[it.CategoryID], it)
	}
	for _, cat := range categories {
		fmt.Fprintf(&b, "[%s]\n", catalog.Name(cat))
		for _, it := range byCategory[cat] {
			fmt.Fprintf(&b, "  %s x%d  %.2f\n", it.Name, it.Quantity, it.Subtotal)
		}
	}

	fmt.Fprintf(&b, "\nTotal: %.2f", o.TotalPrice)
	if o.Note != "" {
		fmt.Fprintf(&b, "\nNote: %s", o.Note)
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 6 {
		return id[len(id)-6:]
	}
	return id
}
