package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

// newFlagPhoto creates a photo message for a flag image on disk.
func newFlagPhoto(chatID int64, path, caption string, kb tgbotapi.InlineKeyboardMarkup) tgbotapi.PhotoConfig {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(path))
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeHTML
	photo.ReplyMarkup = kb
	return photo
}

// newFlagText creates a text message used when the flag image cannot be sent.
func newFlagText(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) tgbotapi.MessageConfig {
	msg := newHTMLMessage(chatID, text)
	msg.ReplyMarkup = kb
	return msg
}

// newTextEdit replaces the text and buttons of a text flag message.
func newTextEdit(chatID int64, messageID int, text string, kb tgbotapi.InlineKeyboardMarkup) tgbotapi.EditMessageTextConfig {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, kb)
	edit.ParseMode = tgbotapi.ModeHTML
	return edit
}

// newCaptionEdit replaces the caption and buttons of a flag message.
func newCaptionEdit(chatID int64, messageID int, caption string, kb tgbotapi.InlineKeyboardMarkup) tgbotapi.EditMessageCaptionConfig {
	edit := tgbotapi.NewEditMessageCaption(chatID, messageID, caption)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.ReplyMarkup = &kb
	return edit
}
