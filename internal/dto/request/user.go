package request

type RegisterUserRequest struct {
	Username       string `json:"username" validate:"required,min=1,max=64"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
}
