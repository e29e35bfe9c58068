package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ravitejak/legal-assist-bot/internal/ai"
)

// handleChat answers a free-form legal question through the assistant.
func (b *Bot) handleChat(ctx context.Context, message *tgbotapi.Message) {
	b.sendTyping(message.Chat.ID)

	response, err := b.gen.Generate(ctx, message.From.ID, ai.ContextualizeQuestion(message.Text))
	if err != nil {
		b.logger.Error("Failed to process message",
			zap.Error(err),
			zap.Int64("user_id", message.From.ID))
		b.sendText(message.Chat.ID,
			"I apologize, I'm having trouble processing your request. "+
				"Please try rephrasing or use one of the commands:\n"+
				"/help - Show available commands\n"+
				"/complaint - File complaint/report\n"+
				"/police - Find police stations")
		return
	}

	chunks := SplitMessage(CleanMarkdown(response), maxMessageLength)
	for i, chunk := range chunks {
		b.sendMarkdown(message.Chat.ID, chunk)
		if i < len(chunks)-1 {
			b.sendMarkdown(message.Chat.ID, "_(continued...)_")
		}
	}

	// The suggested-questions keyboard shows once per session.
	sess := b.sessions.GetOrCreate(message.From.ID)
	sess.Lock()
	show := !sess.SuggestionShown
	sess.SuggestionShown = true
	sess.Touch()
	sess.Unlock()
	if show {
		b.sendSuggestedQuestions(message.Chat.ID, topicFor(message.Text))
	}
}

func topicFor(text string) string {
	lower := strings.ToLower(text)
	for _, word := range []string{"law", "ipc", "section", "act", "legal"} {
		if strings.Contains(lower, word) {
			return "law"
		}
	}
	for _, word := range []string{"scheme", "yojana", "benefit", "pension"} {
		if strings.Contains(lower, word) {
			return "schemes"
		}
	}
	return "general"
}

func (b *Bot) handlePhoto(message *tgbotapi.Message) {
	caption := message.Caption
	if caption == "" {
		caption = "Analyze this legal document or image and provide relevant information."
	}

	b.sendMarkdown(message.Chat.ID,
		"📋 *Image Received*\n\n"+caption+"\n\n"+
			"Please describe what you need help with regarding this image, and I'll provide relevant legal information.")
}

func (b *Bot) handleDocument(message *tgbotapi.Message) {
	b.sendText(message.Chat.ID,
		"📄 Document received: "+message.Document.FileName+"\n\n"+
			"I can help analyze legal documents. Please describe what you need help with regarding this document, "+
			"or ask specific questions about it.")
}
