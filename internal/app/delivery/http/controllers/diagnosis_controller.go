package controllers

import (
	"context"
	"net/http"
	"podium-service/internal/app/contracts"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type DiagnosisController struct {
	Log              *zap.Logger
	DiagnosisUsecase contracts.DiagnosisUsecase
}

func NewDiagnosisController(logger *zap.Logger, diagnosisUsecase contracts.DiagnosisUsecase) *DiagnosisController {
	return &DiagnosisController{
		Log:              logger,
		DiagnosisUsecase: diagnosisUsecase,
	}
}

func (ctrl *DiagnosisController) RequestDiagnosis(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), longRequestTimeout)
	defer cancel()

	result, err := ctrl.DiagnosisUsecase.RequestDiagnosis(ctx, visitID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RequestDiagnosisSuccessMessage, result)
}
