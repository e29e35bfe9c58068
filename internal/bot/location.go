package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ravitejak/legal-assist-bot/internal/models"
	"github.com/ravitejak/legal-assist-bot/internal/rules"
)

const emergencyFooter = `*Emergency Numbers:*
🚨 Police: 100
🆘 Emergency: 112
👮 Women Helpline: 181
👶 Child Helpline: 1098`

// handlePolice asks the user to share their location for a live lookup.
func (b *Bot) handlePolice(message *tgbotapi.Message) {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButtonLocation("📍 Share My Location"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("❌ Cancel"),
		),
	)
	keyboard.OneTimeKeyboard = true
	keyboard.ResizeKeyboard = true

	msg := tgbotapi.NewMessage(message.Chat.ID, `📍 *Find Nearest Police Stations*

To show you the nearest police stations, I need your current location.

👇 *Click the button below* to share your location, or type your city/area name.

Your location data is used only to find nearby police stations and is not stored.`)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send location request",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
	}
}

// handleLocation looks up police stations around the shared coordinates.
func (b *Bot) handleLocation(ctx context.Context, message *tgbotapi.Message) {
	loc := message.Location

	ack := tgbotapi.NewMessage(message.Chat.ID,
		"📍 Location received!\n🔍 Searching for nearest police stations...")
	ack.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	if _, err := b.api.Send(ack); err != nil {
		b.logger.Error("Failed to send location ack",
			zap.Error(err),
			zap.Int64("chat_id", message.Chat.ID))
	}

	if b.places == nil {
		b.sendStaticStations(message.Chat.ID, "")
		return
	}

	stations, err := b.places.FindNearbyStations(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		b.logger.Error("Failed to find police stations by location",
			zap.Error(err),
			zap.Int64("user_id", message.From.ID))
		b.sendText(message.Chat.ID,
			"❌ Sorry, I couldn't find police stations near your location.\n\n"+
				"📞 Emergency: 100 | 112\n\n"+
				"💡 Try typing your city name instead.")
		return
	}

	if len(stations) == 0 {
		b.sendText(message.Chat.ID,
			"❌ No police stations found near your location.\n\n"+
				"📞 Emergency: 100 | 112\n\n"+
				"💡 Try typing your city name instead.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📍 *Nearest Police Stations to Your Location:*\n")
	for i, s := range stations {
		fmt.Fprintf(&sb, "\n%d. *%s*\n", i+1, s.Name)
		fmt.Fprintf(&sb, "📍 Address: %s\n", s.Address)
		fmt.Fprintf(&sb, "📞 Phone: %s\n", s.Phone)
		fmt.Fprintf(&sb, "🚗 Distance: %.2f km\n", s.Distance)
	}
	sb.WriteString("\n---\n🚨 *Emergency Numbers:*\n📞 Police: 100 | 🆘 Emergency: 112\n\n💡 *Tip:* Save these numbers for quick access!")

	b.sendMarkdown(message.Chat.ID, sb.String())
}

// sendStaticStations lists stations from the built-in reference table,
// optionally filtered by complaint type.
func (b *Bot) sendStaticStations(chatID int64, complaintType string) {
	stations := rules.NearestStations(complaintType)
	b.sendMarkdown(chatID, formatStations(stations))
}

func formatStations(stations []models.PoliceStation) string {
	var sb strings.Builder
	sb.WriteString("🚔 *Nearest Police Stations in Kakinada:*\n\n")
	for i, s := range stations {
		fmt.Fprintf(&sb, "*%d. %s*\n", i+1, s.Name)
		fmt.Fprintf(&sb, "📍 %s\n", s.Address)
		fmt.Fprintf(&sb, "📞 %s\n", s.Phone)
		fmt.Fprintf(&sb, "🏢 %s\n\n", s.Type)
	}
	sb.WriteString(emergencyFooter)
	return sb.String()
}
