package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ravitejak/legal-assist-bot/internal/ai"
)

const welcomeMessage = `🙏 *Namaste! Welcome to Kakinada Legal Assistant* 🏛️

I'm your AI-powered legal assistant for Kakinada and India.

*What I Can Help With:*
📚 Legal Information & Advice
⚖️ Indian Laws & Rights
🏛️ Government Schemes
📝 Complaint/Report Filing (All Types)
📍 Police Station Locations

*Quick Commands:*
/help - All commands
/complaint - File complaint/report
/police - Police stations

💬 Ask me anything legal!

Choose an option below or ask your question! 👇`

const helpMessage = `🔍 *How to Use Kakinada Legal Assistant*
🌐 *Powered by Google Search - Real-time Information!*

*Commands:*
/start - Start the bot
/help - Show this help message
/complaint - File complaint/report (all types)
/police - Police stations info
/schemes - Government schemes
/laws - Legal information
/mycomplaints - Your filed complaints
/cancel - Cancel operation

*What I Can Do:*
✅ Answer legal questions (Latest info)
✅ Explain Indian laws (Up-to-date)
✅ Help with complaint/report filing (all types)
✅ Find police stations (Real-time)
✅ Explain government schemes (Current)
✅ Provide applicable law sections

*How to Ask:*
Just type your question!

Examples:
- "Latest changes in consumer protection law"
- "Current PM Kisan Yojana eligibility 2025"
- "Find police stations in Vijayawada"
- "What is Section 420 IPC?"

*Emergency:*
🚨 Police: 100
🆘 Emergency: 112`

const schemesFallback = `🏛️ *Popular Government Schemes*

*Central Schemes:*
1. PM-KISAN - Farmer income support
2. Ayushman Bharat - Health insurance
3. PMAY - Housing for all
4. PM SVANidhi - Street vendor loans
5. Digital India - Digital empowerment

*AP State Schemes:*
1. YSR Cheyutha - Women empowerment
2. Rythu Bharosa - Farmer assistance
3. Amma Vodi - Education support
4. Jagananna Thodu - Small business loans
5. YSR Pension - Social security

💡 Ask: "Tell me about [scheme name]" for details!`

const lawsFallback = `⚖️ *Fundamental Rights in India*

*6 Main Categories:*

1️⃣ *Right to Equality* (Art. 14-18)
   Equality before law, no discrimination

2️⃣ *Right to Freedom* (Art. 19-22)
   Speech, assembly, movement, profession

3️⃣ *Right Against Exploitation* (Art. 23-24)
   No forced labor, no child labor

4️⃣ *Right to Freedom of Religion* (Art. 25-28)
   Practice any religion freely

5️⃣ *Cultural & Educational Rights* (Art. 29-30)
   Protect minority rights

6️⃣ *Right to Constitutional Remedies* (Art. 32-35)
   Enforce your rights in court

---

*Other Important Rights:*
✅ Right to Free Legal Aid
✅ Right to File FIR
✅ Right to Privacy
✅ Right to Remain Silent

💡 Ask: "Tell me about [specific law]" for details!`

func (b *Bot) handleStart(message *tgbotapi.Message) {
	// A fresh /start resets the one-shot suggestion keyboard.
	sess := b.sessions.GetOrCreate(message.From.ID)
	sess.Lock()
	sess.SuggestionShown = false
	sess.Touch()
	sess.Unlock()

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeMessage)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 File Complaint/Report", "start_complaint"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📍 Police Stations", "police_stations"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏛️ Government Schemes", "gov_schemes"),
			tgbotapi.NewInlineKeyboardButtonData("⚖️ Legal Info", "legal_info"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💡 Suggested Questions", "suggestions"),
		),
	)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send welcome message",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
	}
}

func (b *Bot) handleHelp(message *tgbotapi.Message) {
	b.sendMarkdown(message.Chat.ID, helpMessage)
}

func (b *Bot) handleSchemes(ctx context.Context, message *tgbotapi.Message) {
	b.sendTyping(message.Chat.ID)

	response, err := b.gen.Generate(ctx, message.From.ID, ai.SchemesPrompt)
	if err != nil {
		b.logger.Error("Failed to fetch schemes overview",
			zap.Error(err),
			zap.Int64("user_id", message.From.ID))
		b.sendMarkdown(message.Chat.ID, schemesFallback)
		return
	}

	formatted := fmt.Sprintf(`🏛️ *Government Schemes - 2024*

%s

---

💡 *Need More Info?*
Ask: "Tell me about [scheme name]"
Example: "Tell me about PM Kisan Yojana"

🔗 *Official Portals:*
• Central: myscheme.gov.in
• AP State: schemes.ap.gov.in`, CleanMarkdown(response))

	b.sendMarkdown(message.Chat.ID, truncate(formatted, "💡 Ask for specific schemes!"))
}

func (b *Bot) handleLaws(ctx context.Context, message *tgbotapi.Message) {
	b.sendTyping(message.Chat.ID)

	response, err := b.gen.Generate(ctx, message.From.ID, ai.LawsPrompt)
	if err != nil {
		b.logger.Error("Failed to fetch legal rights overview",
			zap.Error(err),
			zap.Int64("user_id", message.From.ID))
		b.sendMarkdown(message.Chat.ID, lawsFallback)
		return
	}

	formatted := fmt.Sprintf(`⚖️ *Legal Rights in India*

%s

---

💡 *Common Legal Questions:*
• "What is Section 498A IPC?"
• "What are consumer rights?"
• "How to file an FIR?"
• "What is the RTI Act?"

📞 *Legal Helplines:*
• National Legal Services: 15100
• Women Helpline: 1091
• Police: 100`, CleanMarkdown(response))

	b.sendMarkdown(message.Chat.ID, truncate(formatted, "💡 Ask for specific laws!"))
}

func (b *Bot) handleMyComplaints(ctx context.Context, message *tgbotapi.Message) {
	complaints, err := b.archive.GetUserComplaints(ctx, message.From.ID, 5, 0)
	if err != nil {
		b.logger.Error("Failed to get user complaints",
			zap.Error(err),
			zap.Int64("user_id", message.From.ID))
		b.sendErrorMessage(message.Chat.ID, "Sorry, I couldn't retrieve your complaints.")
		return
	}

	if len(complaints) == 0 {
		b.sendText(message.Chat.ID, "You haven't filed any complaints yet. Use /complaint to start.")
		return
	}

	var sb strings.Builder
	sb.WriteString("*Your recent complaints:*\n\n")
	for i, c := range complaints {
		fmt.Fprintf(&sb, "%d. *%s*\n", i+1, c.Type)
		fmt.Fprintf(&sb, "📍 %s\n", c.IncidentLocation)
		fmt.Fprintf(&sb, "🗓 Filed: %s\n\n", c.CreatedAt.Format("02 Jan 2006"))
	}
	b.sendMarkdown(message.Chat.ID, sb.String())
}

func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	// Message is nil when the originating message expired or is otherwise
	// inaccessible; there is no chat to reply into.
	if query.Message == nil {
		b.logger.Debug("Callback without an accessible message",
			zap.String("data", query.Data))
		return
	}

	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		b.logger.Debug("Failed to answer callback query", zap.Error(err))
	}

	ctx := context.Background()
	chatID := query.Message.Chat.ID

	switch query.Data {
	case "start_complaint":
		b.sendText(chatID, "📝 Starting complaint/report filing process...\n\nUse /complaint command to begin")
	case "police_stations":
		b.sendStaticStations(chatID, "")
	case "gov_schemes":
		b.answerQuestion(ctx, chatID, query.From.ID,
			"Tell me about major government schemes in India and Andhra Pradesh (brief overview)")
	case "legal_info":
		b.answerQuestion(ctx, chatID, query.From.ID,
			"Give me an overview of common legal rights in India (brief)")
	case "suggestions":
		b.sendSuggestedQuestions(chatID, "general")
	}
}

// answerQuestion runs a canned question through the assistant for a button
// press.
func (b *Bot) answerQuestion(ctx context.Context, chatID, userID int64, question string) {
	response, err := b.gen.Generate(ctx, userID, question)
	if err != nil {
		b.logger.Error("Failed to answer canned question",
			zap.Error(err),
			zap.Int64("user_id", userID))
		b.sendText(chatID, fmt.Sprintf("I can help you with: %s\n\nPlease ask me directly!", question))
		return
	}
	b.sendMarkdown(chatID, truncate(CleanMarkdown(response), "(Response truncated. Ask for specific details!)"))
}

var suggestedQuestions = map[string][]string{
	"general": {
		"What are my tenant rights?",
		"How to file consumer complaint?",
		"What is Right to Information Act?",
		"Tell me about government schemes",
	},
	"law": {
		"What is Section 498A IPC?",
		"Explain dowry prohibition law",
		"What is POCSO Act?",
		"Tell me about bail procedures",
	},
	"schemes": {
		"PM Kisan Yojana details",
		"Ayushman Bharat scheme",
		"Pension schemes in India",
		"Housing schemes in AP",
	},
}

func (b *Bot) sendSuggestedQuestions(chatID int64, topic string) {
	questions, ok := suggestedQuestions[topic]
	if !ok {
		questions = suggestedQuestions["general"]
	}

	rows := make([][]tgbotapi.KeyboardButton, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(q)))
	}
	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.OneTimeKeyboard = true
	keyboard.ResizeKeyboard = true

	msg := tgbotapi.NewMessage(chatID, "💡 *Suggested Questions:*\nTap on any question below:")
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send suggested questions",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
