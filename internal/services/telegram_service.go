package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pspk/internal/models"
)

// TelegramService pushes best-effort notifications to the secretariat's
// Telegram channel. A nil *TelegramService is valid and does nothing,
// so wiring stays unconditional.
type TelegramService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramService(botToken string, adminChatID int64) *TelegramService {
	if botToken == "" || adminChatID == 0 {
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Printf("[telegram] bot init failed, notifications disabled: %v", err)
		return nil
	}
	return &TelegramService{bot: bot, chatID: adminChatID}
}

func (t *TelegramService) send(text string) {
	if t == nil || t.bot == nil {
		return
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("[telegram][send] failed: %v", err)
	}
}

func (t *TelegramService) NotifyNewRegistration(r *models.Registration) {
	t.send(fmt.Sprintf(
		"🆕 <b>New registration</b>\n%s (%s)\n%s, %s",
		r.FullName(), r.Email, r.County, r.Constituency,
	))
}

func (t *TelegramService) NotifyDataRequest(dr *models.DataRequest) {
	t.send(fmt.Sprintf(
		"📨 <b>New %s request</b>\nfrom %s\nid: %s",
		dr.RequestType, dr.Email, dr.ID,
	))
}
