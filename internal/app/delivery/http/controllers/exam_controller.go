package controllers

import (
	"context"
	"net/http"
	"podium-service/internal/app/contracts"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ExamController struct {
	Log           *zap.Logger
	ExamUsecase   contracts.ExamUsecase
	ReportUsecase contracts.ReportUsecase
}

func NewExamController(logger *zap.Logger, examUsecase contracts.ExamUsecase, reportUsecase contracts.ReportUsecase) *ExamController {
	return &ExamController{
		Log:           logger,
		ExamUsecase:   examUsecase,
		ReportUsecase: reportUsecase,
	}
}

func (ctrl *ExamController) GetExam(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.ExamUsecase.GetExamView(ctx, visitID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetExamSuccessMessage, result)
}

func (ctrl *ExamController) SaveAssessment(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.SaveAssessment)
	if err := bindJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.ExamUsecase.SaveAssessment(ctx, visitID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveAssessmentSuccessMessage, result)
}

func (ctrl *ExamController) StepMeasurement(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.StepMeasurement)
	if err := bindJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.ExamUsecase.StepMeasurement(ctx, visitID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.StepMeasurementSuccessMessage, result)
}

func (ctrl *ExamController) ToggleTestResult(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := new(requests.ToggleTestResult)
	if err := bindJSON(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.ExamUsecase.ToggleTestResult(ctx, visitID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ToggleTestResultSuccessMessage, result)
}

func (ctrl *ExamController) GenerateReport(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.ReportUsecase.GenerateReport(ctx, visitID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.GenerateReportSuccessMessage, result)
}

func (ctrl *ExamController) GetReport(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDParam(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.ReportUsecase.GetReport(ctx, visitID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportSuccessMessage, result)
}
