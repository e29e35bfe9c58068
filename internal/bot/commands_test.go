package bot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestCallbackWithoutMessageIsIgnored(t *testing.T) {
	// Callbacks on expired messages arrive with a nil Message; the handler
	// must bail out before touching the chat or the API.
	b := &Bot{logger: zap.NewNop()}

	assert.NotPanics(t, func() {
		b.handleCallback(&tgbotapi.CallbackQuery{ID: "q1", Data: "police_stations"})
	})
}
