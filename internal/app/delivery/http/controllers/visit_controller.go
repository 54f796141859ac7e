package controllers

import (
	"context"
	"net/http"
	"podium-service/internal/app/contracts"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

type VisitController struct {
	Log          *zap.Logger
	VisitUsecase contracts.VisitUsecase
}

func NewVisitController(logger *zap.Logger, visitUsecase contracts.VisitUsecase) *VisitController {
	return &VisitController{
		Log:          logger,
		VisitUsecase: visitUsecase,
	}
}

// CreateVisit accepts an empty body.
func (ctrl *VisitController) CreateVisit(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateVisit)
	if r.ContentLength != 0 {
		if err := bindJSON(r, request); err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
	}
	request.BodyRegion = strings.TrimSpace(request.BodyRegion)

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.VisitUsecase.CreateVisit(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateVisitSuccessMessage, result)
}

func (ctrl *VisitController) ListVisits(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.VisitUsecase.ListVisits(ctx)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListVisitsSuccessMessage, result)
}

func (ctrl *VisitController) GetVisit(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.VisitUsecase.GetVisit(ctx, visitID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetVisitSuccessMessage, result)
}

func (ctrl *VisitController) SetBodyRegion(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateBodyRegion)
	if err := bindJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.VisitUsecase.SetBodyRegion(ctx, visitID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateBodyRegionSuccessMessage, result)
}
