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

// IntakeController serves the patient-facing questionnaire. Every handler
// returns the full intake view so the page can re-render from it.
type IntakeController struct {
	Log           *zap.Logger
	IntakeUsecase contracts.IntakeUsecase
}

func NewIntakeController(logger *zap.Logger, intakeUsecase contracts.IntakeUsecase) *IntakeController {
	return &IntakeController{
		Log:           logger,
		IntakeUsecase: intakeUsecase,
	}
}

func (ctrl *IntakeController) GetIntake(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.IntakeUsecase.GetIntake(ctx, visitID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetIntakeSuccessMessage, result)
}

func (ctrl *IntakeController) SetAnswer(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	fieldID := chi.URLParam(r, constvars.URLParamFieldID)

	request := new(requests.SetIntakeAnswer)
	if err := bindJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.IntakeUsecase.SetAnswer(ctx, visitID, fieldID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateIntakeAnswerSuccessMessage, result)
}

func (ctrl *IntakeController) ToggleOption(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	fieldID := chi.URLParam(r, constvars.URLParamFieldID)

	request := new(requests.ToggleIntakeOption)
	if err := bindJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.IntakeUsecase.ToggleOption(ctx, visitID, fieldID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateIntakeAnswerSuccessMessage, result)
}

func (ctrl *IntakeController) GoNext(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.IntakeUsecase.GoNext(ctx, visitID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NavigateIntakeSuccessMessage, result)
}

func (ctrl *IntakeController) GoPrev(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.IntakeUsecase.GoPrev(ctx, visitID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NavigateIntakeSuccessMessage, result)
}

func (ctrl *IntakeController) UpdateConsent(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateIntakeConsent)
	if err := bindJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.IntakeUsecase.UpdateConsent(ctx, visitID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateIntakeConsentMessage, result)
}

func (ctrl *IntakeController) Submit(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), longRequestTimeout)
	defer cancel()

	result, err := ctrl.IntakeUsecase.Submit(ctx, visitID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitIntakeSuccessMessage, result)
}
