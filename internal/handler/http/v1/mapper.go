package v1

import "github.com/shenikar/fire_incident_console/internal/models"

// DTOToStationModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToStationModel(dto any) *models.FireStation {
	switch v := dto.(type) {
	case CreateStationRequest:
		return &models.FireStation{
			StationName:     v.StationName,
			Role:            v.Role,
			ParentStationID: v.ParentStationID,
			Contact:         v.Contact,
			Email:           v.Email,
			Latitude:        v.Latitude,
			Longitude:       v.Longitude,
		}
	case UpdateStationRequest:
		return &models.FireStation{
			StationName:     v.StationName,
			Role:            v.Role,
			ParentStationID: v.ParentStationID,
			Contact:         v.Contact,
			Latitude:        v.Latitude,
			Longitude:       v.Longitude,
			Status:          v.Status,
		}
	}
	return nil
}

// ModelToStationResponse преобразует доменную модель станции в DTO
func ModelToStationResponse(model *models.FireStation) *StationResponse {
	return &StationResponse{
		ID:                model.ID,
		StationName:       model.StationName,
		Role:              model.Role,
		ParentStationID:   model.ParentStationID,
		ParentStationName: model.ParentStationName,
		Contact:           model.Contact,
		Email:             model.Email,
		Latitude:          model.Latitude,
		Longitude:         model.Longitude,
		Status:            model.Status,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}

// ModelsToStationResponses преобразует слайс моделей в слайс DTO
func ModelsToStationResponses(models []*models.FireStation) []*StationResponse {
	responses := make([]*StationResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToStationResponse(model)
	}
	return responses
}

// DTOToUnitModel преобразует DTO создания/обновления в доменную модель
func DTOToUnitModel(dto any) *models.Unit {
	switch v := dto.(type) {
	case CreateUnitRequest:
		return &models.Unit{
			UnitName:  v.UnitName,
			Email:     v.Email,
			StationID: v.StationID,
		}
	case UpdateUnitRequest:
		return &models.Unit{
			UnitName:  v.UnitName,
			Email:     v.Email,
			StationID: v.StationID,
			Latitude:  v.Latitude,
			Longitude: v.Longitude,
			Status:    v.Status,
		}
	}
	return nil
}

// DTOToResponderModel преобразует DTO создания/обновления в доменную модель
func DTOToResponderModel(dto any) *models.Responder {
	switch v := dto.(type) {
	case CreateResponderRequest:
		return &models.Responder{
			ResponderName: v.ResponderName,
			Email:         v.Email,
			Contact:       v.Contact,
			Role:          v.Role,
			StationID:     v.StationID,
		}
	case UpdateResponderRequest:
		return &models.Responder{
			ResponderName: v.ResponderName,
			Email:         v.Email,
			Contact:       v.Contact,
			Role:          v.Role,
			StationID:     v.StationID,
			Status:        v.Status,
		}
	}
	return nil
}

// DTOToReportModel преобразует DTO поступления отчета в доменную модель
func DTOToReportModel(dto SubmitReportRequest) *models.Report {
	return &models.Report{
		FireStationID: dto.FireStationID,
		UserDocID:     dto.UserDocID,
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
		Feedbacks:     dto.Feedbacks,
		Details:       dto.Details,
	}
}

// DTOToDeploymentModel преобразует DTO развертывания в доменную модель
func DTOToDeploymentModel(dto CreateDeploymentRequest) *models.Deployment {
	return &models.Deployment{
		Location:      dto.Location,
		Purpose:       dto.Purpose,
		SpecificOrder: dto.SpecificOrder,
		Date:          dto.Date,
		Time:          dto.Time,
		Latitude:      dto.Latitude,
		Longitude:     dto.Longitude,
	}
}

// DTOToDeploymentUnitModel преобразует DTO назначения в доменную модель
func DTOToDeploymentUnitModel(deploymentID string, dto AssignDeploymentUnitRequest) *models.DeploymentUnit {
	return &models.DeploymentUnit{
		DeploymentID: deploymentID,
		UnitID:       dto.UnitID,
		UnitName:     dto.UnitName,
		StationID:    dto.StationID,
		StationName:  dto.StationName,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
	}
}

// SessionToLoginResponse преобразует сессию в DTO ответа на вход
func SessionToLoginResponse(sess *models.Session, token string) *LoginResponse {
	return &LoginResponse{
		Token:       token,
		AccountType: string(sess.AccountType),
		StationID:   sess.StationDocID,
		StationName: sess.StationName,
		Email:       sess.Email,
	}
}
