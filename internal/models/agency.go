package models

import (
	"strings"
	"time"

	"github.com/shenikar/agency_dispatch_system/internal/geo"
)

const (
	AgencyTypeLocation     = "location"
	AgencyTypeJurisdiction = "jurisdiction"
)

// Agency - организация, отвечающая за назначенные ей события.
// Хэш пароля никогда не сериализуется.
type Agency struct {
	AgencyID            string            `json:"AgencyId"`
	AgencyName          string            `json:"AgencyName"`
	MobileNumber        string            `json:"mobileNumber"`
	PasswordHash        string            `json:"-"`
	Location            geo.Point         `json:"location"`
	Jurisdiction        *geo.Jurisdiction `json:"jurisdiction,omitempty"`
	EventResponsibleFor []string          `json:"eventResponsibleFor"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

// Type выводится из наличия юрисдикции
func (a *Agency) Type() string {
	if a.Jurisdiction != nil {
		return AgencyTypeJurisdiction
	}
	return AgencyTypeLocation
}

// Handles сообщает, обслуживает ли агентство категорию (без учета регистра)
func (a *Agency) Handles(category string) bool {
	for _, tag := range a.EventResponsibleFor {
		if strings.EqualFold(tag, category) {
			return true
		}
	}
	return false
}

// AgencyMatch - результат геопоиска; DistanceMeters заполняется в режиме location
type AgencyMatch struct {
	Agency
	DistanceMeters *float64 `json:"distanceMeters,omitempty"`
}

// AgencyFilter - фильтр списка агентств
type AgencyFilter struct {
	Tag  string
	Type string
}

// AgencyUpdate - частичное обновление; nil означает "не менять"
type AgencyUpdate struct {
	AgencyName          *string
	MobileNumber        *string
	EventResponsibleFor []string
	PasswordHash        *string
	Location            *geo.Point
	Jurisdiction        *geo.Jurisdiction
	RemoveJurisdiction  bool
}

// IsEmpty - в обновлении нет ни одного поля
func (u AgencyUpdate) IsEmpty() bool {
	return u.AgencyName == nil && u.MobileNumber == nil && u.EventResponsibleFor == nil &&
		u.PasswordHash == nil && u.Location == nil && u.Jurisdiction == nil && !u.RemoveJurisdiction
}

const (
	SearchModeLocation     = "location"
	SearchModeJurisdiction = "jurisdiction"
)

// PointSearch - параметры геопоиска агентств
type PointSearch struct {
	Point        geo.Point
	RadiusMeters float64
	Mode         string
	Tag          string
	Limit        int
}

// CreateAgencyInput - данные для регистрации агентства
type CreateAgencyInput struct {
	Name         string
	Mobile       string
	Password     string
	Latitude     *float64
	Longitude    *float64
	Tags         []string
	Jurisdiction *geo.PolygonInput
}

// UpdateAgencyInput - частичное обновление; nil означает "поле не передано"
type UpdateAgencyInput struct {
	Name               *string
	Mobile             *string
	Tags               []string
	Password           *string
	Latitude           *float64
	Longitude          *float64
	Jurisdiction       *geo.PolygonInput
	RemoveJurisdiction bool
}

// LoginResult - результат успешной аутентификации
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Agency    *Agency
}
