package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"NewsMoodBot/internal/ports"
)

// messageSink edits a previously sent status message on each progress
// emit. The status message may be deleted by the user mid-run; the error
// is reported to the caller, which ignores it.
type messageSink struct {
	api       *tgbotapi.BotAPI
	chatID    int64
	messageID int
}

var _ ports.ProgressSink = (*messageSink)(nil)

func (s *messageSink) Emit(text string) error {
	edit := tgbotapi.NewEditMessageText(s.chatID, s.messageID, progressPrefix+text)
	if _, err := s.api.Request(edit); err != nil {
		return fmt.Errorf("edit progress message: %w", err)
	}
	return nil
}
