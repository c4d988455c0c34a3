package entity

type User struct {
	BaseSimple
	Username       string `db:"username"`
	TelegramChatID *int64 `db:"telegram_chat_id"`
}
