package reports

import (
	"context"
	"fmt"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/models"
	"podium-service/internal/app/services/core/visits"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/dto/responses"
	"podium-service/internal/pkg/exceptions"
	"podium-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type reportUsecase struct {
	VisitRepository contracts.VisitRepository
	MailQueue       contracts.MailQueueService
	ClinicName      string
	EmailSender     string
	Log             *zap.Logger
}

var (
	reportUsecaseInstance contracts.ReportUsecase
	onceReportUsecase     sync.Once
)

func NewReportUsecase(
	visitRepository contracts.VisitRepository,
	mailQueue contracts.MailQueueService,
	clinicName string,
	emailSender string,
	logger *zap.Logger,
) contracts.ReportUsecase {
	onceReportUsecase.Do(func() {
		reportUsecaseInstance = newReportUsecase(visitRepository, mailQueue, clinicName, emailSender, logger)
	})
	return reportUsecaseInstance
}

func newReportUsecase(
	visitRepository contracts.VisitRepository,
	mailQueue contracts.MailQueueService,
	clinicName string,
	emailSender string,
	logger *zap.Logger,
) *reportUsecase {
	return &reportUsecase{
		VisitRepository: visitRepository,
		MailQueue:       mailQueue,
		ClinicName:      clinicName,
		EmailSender:     emailSender,
		Log:             logger,
	}
}

func (uc *reportUsecase) GenerateReport(ctx context.Context, visitID string) (*responses.Report, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("reportUsecase.GenerateReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
	)

	visit, err := uc.findVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}

	visit.Report = uc.BuildAndDeliver(ctx, visit)
	if err := uc.VisitRepository.Save(ctx, visit); err != nil {
		uc.Log.Error("reportUsecase.GenerateReport error saving visit",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingVisitIDKey, visitID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("reportUsecase.GenerateReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVisitIDKey, visitID),
	)
	return toResponse(visit, utils.GetStaffRole(ctx)), nil
}

func (uc *reportUsecase) GetReport(ctx context.Context, visitID string) (*responses.Report, error) {
	uc.Log.Info("reportUsecase.GetReport called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingVisitIDKey, visitID),
	)

	visit, err := uc.findVisit(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit.Report == nil {
		return nil, exceptions.ErrReportNotFound(nil, visitID)
	}
	return toResponse(visit, utils.GetStaffRole(ctx)), nil
}

// BuildAndDeliver never fails: a queue error is recorded on the delivery.
// The caller persists the visit.
func (uc *reportUsecase) BuildAndDeliver(ctx context.Context, visit *models.Visit) *models.Report {
	requestID := utils.GetRequestID(ctx)
	now := time.Now().UTC()

	report := &models.Report{
		SummaryMarkdown: SummaryMarkdown(visit),
		PatientBrief:    PatientBrief(visit),
		PlanPhases:      append([]int{}, defaultPlanPhases...),
		CreatedAt:       now,
		Delivery:        models.ReportDelivery{Status: models.ReportDeliverySkipped, UpdatedAt: now},
	}

	email := visit.Patient.Email
	if email == "" {
		return report
	}
	report.Delivery.Recipient = email

	message := &contracts.MailMessage{
		ID: uuid.NewString(),
		Email: requests.EmailPayload{
			Subject:  fmt.Sprintf(constvars.EmailReportSubjectFormat, uc.ClinicName),
			From:     uc.EmailSender,
			To:       []string{email},
			TextBody: report.PatientBrief,
			VisitID:  visit.ID,
		},
	}
	if err := uc.MailQueue.Enqueue(ctx, message); err != nil {
		report.Delivery.Status = models.ReportDeliveryFailed
		report.Delivery.Error = err.Error()
		utils.LogBusinessEvent(uc.Log, constvars.BusinessEventReportDeliveryFailed, requestID,
			zap.String(constvars.LoggingVisitIDKey, visit.ID),
			zap.Error(err),
		)
		return report
	}

	report.Delivery.Status = models.ReportDeliveryQueued
	utils.LogBusinessEvent(uc.Log, constvars.BusinessEventReportQueued, requestID,
		zap.String(constvars.LoggingVisitIDKey, visit.ID),
		zap.String(constvars.LoggingMessageIDKey, message.ID),
	)
	return report
}

func (uc *reportUsecase) findVisit(ctx context.Context, visitID string) (*models.Visit, error) {
	visit, err := uc.VisitRepository.FindByID(ctx, visitID)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, exceptions.ErrVisitNotFound(nil, visitID)
	}
	return visit, nil
}

func toResponse(visit *models.Visit, role string) *responses.Report {
	delivery := visit.Report.Delivery
	if !visits.CanSeePII(role) {
		delivery.Recipient = ""
	}
	return &responses.Report{
		VisitID:         visit.ID,
		SummaryMarkdown: visit.Report.SummaryMarkdown,
		PatientBrief:    visit.Report.PatientBrief,
		PlanPhases:      visit.Report.PlanPhases,
		Delivery:        delivery,
		CreatedAt:       visit.Report.CreatedAt,
	}
}
