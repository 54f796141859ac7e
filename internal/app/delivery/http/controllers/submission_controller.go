package controllers

import (
	"context"
	"net/http"
	"podium-service/internal/app/contracts"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SubmissionController struct {
	Log               *zap.Logger
	SubmissionUsecase contracts.SubmissionUsecase
}

func NewSubmissionController(logger *zap.Logger, submissionUsecase contracts.SubmissionUsecase) *SubmissionController {
	return &SubmissionController{
		Log:               logger,
		SubmissionUsecase: submissionUsecase,
	}
}

func (ctrl *SubmissionController) GetSubmission(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.SubmissionUsecase.GetSubmission(ctx, visitID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSubmissionSuccessMessage, result)
}

func (ctrl *SubmissionController) RetryStep(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	step := chi.URLParam(r, constvars.URLParamStep)

	ctx, cancel := context.WithTimeout(r.Context(), longRequestTimeout)
	defer cancel()

	result, err := ctrl.SubmissionUsecase.RetryStep(ctx, visitID, step)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RetrySubmissionStepMessage, result)
}
