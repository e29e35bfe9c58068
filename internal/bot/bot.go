package bot

import (
	"context"
	"fmt"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ravitejak/legal-assist-bot/internal/ai"
	"github.com/ravitejak/legal-assist-bot/internal/flow"
	"github.com/ravitejak/legal-assist-bot/internal/places"
	"github.com/ravitejak/legal-assist-bot/internal/session"
	"github.com/ravitejak/legal-assist-bot/internal/storage"
)

type Bot struct {
	api      *tgbotapi.BotAPI
	engine   *flow.Engine
	sessions *session.Store
	gen      ai.Generator
	places   *places.Client
	archive  storage.Storage
	logger   *zap.Logger
}

// New creates the bot. The places client may be nil; location lookups then
// fall back to a helpline message.
func New(token string, engine *flow.Engine, sessions *session.Store, gen ai.Generator, placesClient *places.Client, archive storage.Storage, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:      api,
		engine:   engine,
		sessions: sessions,
		gen:      gen,
		places:   placesClient,
		archive:  archive,
		logger:   logger,
	}, nil
}

func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("Legal assistant bot is running", zap.String("username", b.api.Self.UserName))

	for update := range updates {
		if update.CallbackQuery != nil {
			go b.handleCallback(update.CallbackQuery)
			continue
		}
		if update.Message == nil {
			continue
		}
		go b.handleMessage(update.Message)
	}

	return nil
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	ctx := context.Background()

	switch {
	case message.IsCommand():
		b.handleCommand(ctx, message)
	case message.Location != nil:
		b.handleLocation(ctx, message)
	case message.Photo != nil:
		b.handlePhoto(message)
	case message.Document != nil:
		b.handleDocument(message)
	case message.Text != "":
		b.handleText(ctx, message)
	}
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "help":
		b.handleHelp(message)
	case "complaint":
		b.sendReplies(message.Chat.ID, b.engine.Start(message.From.ID))
	case "police":
		b.handlePolice(message)
	case "schemes":
		b.handleSchemes(ctx, message)
	case "laws":
		b.handleLaws(ctx, message)
	case "mycomplaints":
		b.handleMyComplaints(ctx, message)
	case "cancel":
		b.sendRepliesWithKeyboardRemove(message.Chat.ID, b.engine.Cancel(message.From.ID))
	default:
		b.sendText(message.Chat.ID, "Unknown command. Use /help to see available commands.")
	}
}

// handleText routes a plain message either into the complaint flow or to the
// general assistant.
func (b *Bot) handleText(ctx context.Context, message *tgbotapi.Message) {
	if replies, handled := b.engine.Handle(ctx, message.From.ID, message.Text); handled {
		b.sendReplies(message.Chat.ID, replies)
		return
	}
	b.handleChat(ctx, message)
}

// sendReplies delivers flow replies in order. A document reply is deleted
// from disk once delivered.
func (b *Bot) sendReplies(chatID int64, replies []flow.Reply) {
	for _, r := range replies {
		if r.DocumentPath != "" {
			doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(r.DocumentPath))
			doc.Caption = r.Caption
			if _, err := b.api.Send(doc); err != nil {
				b.logger.Error("Failed to send document",
					zap.Error(err),
					zap.Int64("chat_id", chatID),
					zap.String("path", r.DocumentPath))
				b.sendErrorMessage(chatID, "Sorry, I couldn't deliver your complaint form. Please try again.")
			}
			if err := os.Remove(r.DocumentPath); err != nil {
				b.logger.Warn("Failed to remove generated document",
					zap.Error(err),
					zap.String("path", r.DocumentPath))
			}
			continue
		}

		if r.Markdown {
			b.sendMarkdown(chatID, r.Text)
		} else {
			b.sendText(chatID, r.Text)
		}
	}
}

func (b *Bot) sendRepliesWithKeyboardRemove(chatID int64, replies []flow.Reply) {
	for i, r := range replies {
		msg := tgbotapi.NewMessage(chatID, r.Text)
		if r.Markdown {
			msg.ParseMode = tgbotapi.ModeMarkdown
		}
		if i == 0 {
			msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
		}
		if _, err := b.api.Send(msg); err != nil {
			b.logger.Error("Failed to send message",
				zap.Error(err),
				zap.Int64("chat_id", chatID))
		}
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}

// sendMarkdown sends styled text, retrying as plain text when Telegram
// rejects the markup.
func (b *Bot) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("Markdown parse failed, sending as plain text",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
		plain := strings.NewReplacer("*", "", "_", "", "`", "").Replace(text)
		b.sendText(chatID, plain)
	}
}

func (b *Bot) sendErrorMessage(chatID int64, text string) {
	b.sendText(chatID, "⚠️ "+text)
}

func (b *Bot) sendTyping(chatID int64) {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := b.api.Request(action); err != nil {
		b.logger.Debug("Failed to send typing action", zap.Error(err))
	}
}
