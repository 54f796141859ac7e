package controllers

import (
	"context"
	"net/http"
	"podium-service/internal/app/contracts"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StaffController struct {
	Log          *zap.Logger
	StaffUsecase contracts.StaffUsecase
}

func NewStaffController(logger *zap.Logger, staffUsecase contracts.StaffUsecase) *StaffController {
	return &StaffController{
		Log:          logger,
		StaffUsecase: staffUsecase,
	}
}

func (ctrl *StaffController) ListStaff(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.StaffUsecase.ListStaff(ctx)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListStaffSuccessMessage, result)
}

func (ctrl *StaffController) CreateStaff(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateStaff)
	if err := bindJSON(r, request, func() { utils.SanitizeCreateStaffRequest(request) }); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.StaffUsecase.CreateStaff(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateStaffSuccessMessage, result)
}

func (ctrl *StaffController) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, constvars.URLParamUsername)

	request := new(requests.UpdateStaff)
	if err := bindJSON(r, request, func() { utils.SanitizeUpdateStaffRequest(request) }); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.StaffUsecase.UpdateStaff(ctx, username, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateStaffSuccessMessage, result)
}

func (ctrl *StaffController) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, constvars.URLParamUsername)

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	if err := ctrl.StaffUsecase.DeleteStaff(ctx, username); err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteStaffSuccessMessage, nil)
}
