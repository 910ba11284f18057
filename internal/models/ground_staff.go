package models

import (
	"time"

	"github.com/google/uuid"
)

// GroundStaff - сотрудник агентства, выезжающий на событие
type GroundStaff struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Number       string    `json:"number"`
	Address      string    `json:"address"`
	AgencyID     string    `json:"agencyId"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AddGroundStaffInput - данные нового сотрудника
type AddGroundStaffInput struct {
	Name     string
	Number   string
	Address  string
	AgencyID string
	Password string
}

// StaffLoginResult - результат входа сотрудника
type StaffLoginResult struct {
	Token     string
	ExpiresAt time.Time
	Staff     *GroundStaff
}
