package models

import (
	"time"

	"github.com/google/uuid"
)

// User - гражданин, присылающий снимки происшествий
type User struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type RegisterUserInput struct {
	FullName string
	Email    string
	Password string
}

// UserAuthResult - токен и пользователь после регистрации или входа
type UserAuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}
