package response

import (
	"time"

	"event-booking/internal/data/entity"
)

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:             user.ID.String(),
		Username:       user.Username,
		TelegramChatID: user.TelegramChatID,
		CreatedAt:      user.CreatedAt.Format(time.RFC3339),
	}
}
