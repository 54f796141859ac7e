package controllers

import (
	"net/http"
	"podium-service/internal/app/contracts"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type BlueprintController struct {
	Log              *zap.Logger
	BlueprintUsecase contracts.BlueprintUsecase
}

func NewBlueprintController(logger *zap.Logger, blueprintUsecase contracts.BlueprintUsecase) *BlueprintController {
	return &BlueprintController{
		Log:              logger,
		BlueprintUsecase: blueprintUsecase,
	}
}

func (ctrl *BlueprintController) Resolve(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ResolveBlueprint)
	if err := bindJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.BlueprintUsecase.ResolveBlueprint(r.Context(), request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResolveBlueprintSuccessMessage, result)
}
