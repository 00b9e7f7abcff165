package reporter

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-linkedin-jobhunter/internal/crawler"
)

// TelegramReporter sends an optional end-of-run summary. Reporting
// failures never affect the run outcome.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(token string, chatID int64) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramReporter{bot: bot, chatID: chatID}, nil
}

func (t *TelegramReporter) sendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendRunSummary(result crawler.RunResult) error {
	text := fmt.Sprintf(
		"📊 <b>Crawl finished</b>\n"+
			"✅ %d jobs accepted\n"+
			"⚠️ %d jobs failed",
		len(result.Jobs), len(result.Failed),
	)
	for _, job := range result.Jobs {
		text += fmt.Sprintf("\n\n🔥 <b>%s</b>\n🏢 %s\n📍 %s\n🔗 <a href=\"%s\">View Job</a>",
			job.Title, job.Company, job.Location, job.URL)
	}
	return t.sendMessage(text)
}

func (t *TelegramReporter) SendError(errReq error) error {
	return t.sendMessage(fmt.Sprintf("⚠️ <b>Crawl Error</b>:\n%v", errReq))
}
