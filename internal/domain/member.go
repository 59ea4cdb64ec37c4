package domain

import "time"

type Member struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateMemberInput struct {
	FullName       string
	TelegramChatID *int64
}
