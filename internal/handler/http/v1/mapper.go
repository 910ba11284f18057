package v1

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/shenikar/agency_dispatch_system/internal/geo"
	"github.com/shenikar/agency_dispatch_system/internal/models"
)

// DTOToCreateAgencyInput преобразует запрос регистрации во входные данные сервиса
func DTOToCreateAgencyInput(dto CreateAgencyRequest) models.CreateAgencyInput {
	return models.CreateAgencyInput{
		Name:         dto.AgencyName,
		Mobile:       dto.MobileNumber,
		Password:     dto.Password,
		Latitude:     dto.Lat,
		Longitude:    dto.Lng,
		Tags:         dto.EventResponsibleFor,
		Jurisdiction: dto.Jurisdiction,
	}
}

// DTOToUpdateAgencyInput разбирает частичное обновление; jurisdiction: null удаляет полигон
func DTOToUpdateAgencyInput(dto UpdateAgencyRequest) (models.UpdateAgencyInput, error) {
	input := models.UpdateAgencyInput{
		Name:      dto.AgencyName,
		Mobile:    dto.MobileNumber,
		Tags:      dto.EventResponsibleFor,
		Password:  dto.Password,
		Latitude:  dto.Lat,
		Longitude: dto.Lng,
	}

	raw := bytes.TrimSpace(dto.Jurisdiction)
	switch {
	case len(raw) == 0:
	case bytes.Equal(raw, []byte("null")):
		input.RemoveJurisdiction = true
	default:
		var polygon geo.PolygonInput
		if err := json.Unmarshal(raw, &polygon); err != nil {
			return input, errors.New("jurisdiction must be a polygon object")
		}
		input.Jurisdiction = &polygon
	}
	return input, nil
}

// ModelToAgencyResponse преобразует агентство в DTO ответа
func ModelToAgencyResponse(agency *models.Agency) *AgencyResponse {
	resp := &AgencyResponse{
		AgencyID:            agency.AgencyID,
		AgencyName:          agency.AgencyName,
		MobileNumber:        agency.MobileNumber,
		Type:                agency.Type(),
		Location:            agency.Location,
		EventResponsibleFor: agency.EventResponsibleFor,
		CreatedAt:           agency.CreatedAt,
	}
	if resp.EventResponsibleFor == nil {
		resp.EventResponsibleFor = []string{}
	}
	if agency.Jurisdiction != nil {
		polygon := agency.Jurisdiction.Input()
		resp.Jurisdiction = &polygon
	}
	return resp
}

// ModelsToAgencyResponses преобразует слайс агентств в слайс DTO
func ModelsToAgencyResponses(agencies []*models.Agency) []*AgencyResponse {
	responses := make([]*AgencyResponse, len(agencies))
	for i, agency := range agencies {
		responses[i] = ModelToAgencyResponse(agency)
	}
	return responses
}

// MatchesToAgencyResponses добавляет к агентствам расстояние до точки поиска
func MatchesToAgencyResponses(matches []*models.AgencyMatch) []*AgencyResponse {
	responses := make([]*AgencyResponse, len(matches))
	for i, match := range matches {
		resp := ModelToAgencyResponse(&match.Agency)
		resp.DistanceMeters = match.DistanceMeters
		responses[i] = resp
	}
	return responses
}

func ModelToGroundStaffResponse(staff *models.GroundStaff) *GroundStaffResponse {
	return &GroundStaffResponse{
		ID:        staff.ID,
		Name:      staff.Name,
		Number:    staff.Number,
		Address:   staff.Address,
		AgencyID:  staff.AgencyID,
		CreatedAt: staff.CreatedAt,
	}
}

func ModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func ModelsToGroundStaffResponses(staff []*models.GroundStaff) []*GroundStaffResponse {
	responses := make([]*GroundStaffResponse, len(staff))
	for i, member := range staff {
		responses[i] = ModelToGroundStaffResponse(member)
	}
	return responses
}

// DTOToUploadInput преобразует запрос загрузки снимка
func DTOToUploadInput(dto UploadImageRequest) models.UploadInput {
	input := models.UploadInput{
		Base64:   dto.Base64String,
		UserID:   dto.UserID,
		Location: dto.Location,
		Exif:     dto.Exif,
	}
	if dto.Timestamp != nil {
		input.Timestamp = *dto.Timestamp
	}
	return input
}

func ModelToActiveModelResponse(setting *models.ModelSetting) ActiveModelResponse {
	return ActiveModelResponse{
		Success:     true,
		ActiveModel: setting.Model,
		Queue:       setting.Queue,
		UpdatedAt:   setting.UpdatedAt,
	}
}
