package v1

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/agency_dispatch_system/internal/geo"
	"github.com/shenikar/agency_dispatch_system/internal/models"
)

// ErrorResponse - тело ответа с ошибкой
// @Description Тело ответа с ошибкой
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MessageResponse - ответ без данных
// @Description Ответ без данных
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateAgencyRequest DTO для регистрации агентства
// @Description DTO для регистрации агентства
type CreateAgencyRequest struct {
	AgencyName          string            `json:"AgencyName" validate:"required,min=2,max=255"`
	MobileNumber        string            `json:"mobileNumber" validate:"required"`
	Password            string            `json:"password" validate:"required"`
	Lat                 *float64          `json:"lat" validate:"required"`
	Lng                 *float64          `json:"lng" validate:"required"`
	EventResponsibleFor []string          `json:"eventResponsibleFor"`
	Jurisdiction        *geo.PolygonInput `json:"jurisdiction,omitempty"`
}

// CreateAgencyResponse DTO ответа на регистрацию
// @Description DTO ответа на регистрацию
type CreateAgencyResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	AgencyID string `json:"agencyId"`
}

// LoginRequest DTO входа агентства или сотрудника
// @Description DTO входа по номеру телефона и паролю
type LoginRequest struct {
	MobileNumber string `json:"mobileNumber" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

// AgencyLoginResponse DTO ответа на вход агентства
// @Description DTO ответа на вход агентства
type AgencyLoginResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	AgencyID  string          `json:"AgencyId"`
	Agency    *AgencyResponse `json:"agency"`
}

// ResetPasswordRequest DTO смены пароля
// @Description DTO смены пароля
type ResetPasswordRequest struct {
	AgencyID    string `json:"agencyId"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// UpdateAgencyRequest DTO частичного обновления агентства.
// Jurisdiction: отсутствие поля - не менять, null - удалить.
// @Description DTO частичного обновления агентства
type UpdateAgencyRequest struct {
	AgencyName          *string         `json:"AgencyName,omitempty"`
	MobileNumber        *string         `json:"mobileNumber,omitempty"`
	EventResponsibleFor []string        `json:"eventResponsibleFor,omitempty"`
	Password            *string         `json:"password,omitempty"`
	Lat                 *float64        `json:"lat,omitempty"`
	Lng                 *float64        `json:"lng,omitempty"`
	Jurisdiction        json.RawMessage `json:"jurisdiction,omitempty" swaggertype:"object"`
}

// UpdateAgencyResponse DTO ответа на обновление
// @Description DTO ответа на обновление
type UpdateAgencyResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Modified bool   `json:"modified"`
}

// AgencyResponse DTO агентства; пароль не отдается никогда
// @Description DTO агентства
type AgencyResponse struct {
	AgencyID            string            `json:"AgencyId"`
	AgencyName          string            `json:"AgencyName"`
	MobileNumber        string            `json:"mobileNumber"`
	Type                string            `json:"type"`
	Location            geo.Point         `json:"location"`
	Jurisdiction        *geo.PolygonInput `json:"jurisdiction,omitempty"`
	EventResponsibleFor []string          `json:"eventResponsibleFor"`
	DistanceMeters      *float64          `json:"distanceMeters,omitempty"`
	CreatedAt           time.Time         `json:"createdAt"`
}

// DataResponse - успешный ответ с полезной нагрузкой
// @Description Успешный ответ с полезной нагрузкой
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// UpdateStatusRequest DTO смены статуса события
// @Description DTO смены статуса события
type UpdateStatusRequest struct {
	Status          string `json:"status" validate:"required"`
	GroundStaffName string `json:"groundStaffName,omitempty"`
	GroundStaffID   string `json:"groundStaffId,omitempty"`
	AgencyID        string `json:"agencyId,omitempty"`
}

// IncidentImagesResponse DTO снимков события
// @Description DTO снимков события
type IncidentImagesResponse struct {
	EventID   string                `json:"event_id"`
	Incidents []models.IncidentView `json:"incidents"`
}

// EventReportResponse DTO отчета по событию
// @Description DTO отчета по событию
type EventReportResponse struct {
	Success bool `json:"success"`
	*models.EventReport
}

// AddGroundStaffRequest DTO нового сотрудника
// @Description DTO нового сотрудника
type AddGroundStaffRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Number   string `json:"number" validate:"required"`
	Address  string `json:"address" validate:"required"`
	AgencyID string `json:"agencyId"`
	Password string `json:"password" validate:"required"`
}

// AddGroundStaffResponse DTO ответа на добавление сотрудника
// @Description DTO ответа на добавление сотрудника
type AddGroundStaffResponse struct {
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	GroundStaffID uuid.UUID `json:"groundStaffId"`
}

// GroundStaffResponse DTO сотрудника
// @Description DTO сотрудника
type GroundStaffResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Number    string    `json:"number"`
	Address   string    `json:"address,omitempty"`
	AgencyID  string    `json:"agencyId"`
	CreatedAt time.Time `json:"createdAt"`
}

// GroundStaffLoginResponse DTO ответа на вход сотрудника
// @Description DTO ответа на вход сотрудника
type GroundStaffLoginResponse struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message"`
	Token       string               `json:"token"`
	ExpiresAt   time.Time            `json:"expiresAt"`
	GroundStaff *GroundStaffResponse `json:"groundStaff"`
}

// RegisterUserRequest DTO регистрации пользователя
// @Description DTO регистрации пользователя
type RegisterUserRequest struct {
	FullName string `json:"fullname" validate:"required,min=3,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserLoginRequest DTO входа пользователя
// @Description DTO входа пользователя по email и паролю
type UserLoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse DTO пользователя
// @Description DTO пользователя
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserAuthResponse DTO ответа на регистрацию и вход пользователя
// @Description DTO ответа на регистрацию и вход пользователя
type UserAuthResponse struct {
	Success   bool          `json:"success"`
	Message   string        `json:"message"`
	UserID    uuid.UUID     `json:"userId"`
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	User      *UserResponse `json:"user"`
}

// UploadImageRequest DTO загрузки снимка
// @Description DTO загрузки снимка
type UploadImageRequest struct {
	Base64String string           `json:"base64String" validate:"required"`
	UserID       string           `json:"userId" validate:"required"`
	Location     geo.GeoJSONPoint `json:"location"`
	Timestamp    *time.Time       `json:"timestamp,omitempty"`
	Exif         json.RawMessage  `json:"exif,omitempty" swaggertype:"object"`
}

// UploadImageResponse DTO ответа на загрузку
// @Description DTO ответа на загрузку
type UploadImageResponse struct {
	ImageID    int64     `json:"imageId"`
	IncidentID uuid.UUID `json:"incidentId"`
}

// SwitchModelRequest DTO переключения модели
// @Description DTO переключения модели
type SwitchModelRequest struct {
	Model string `json:"model" validate:"required"`
}

// ActiveModelResponse DTO активной модели
// @Description DTO активной модели
type ActiveModelResponse struct {
	Success     bool       `json:"success"`
	ActiveModel string     `json:"activeModel"`
	Queue       string     `json:"queue,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
