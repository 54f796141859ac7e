package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"podium-service/internal/app/config"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/delivery/http/controllers"
	"podium-service/internal/app/delivery/http/middlewares"
	"podium-service/internal/app/delivery/http/routers"
	"podium-service/internal/app/drivers/database"
	"podium-service/internal/app/drivers/logger"
	"podium-service/internal/app/drivers/mailer"
	"podium-service/internal/app/drivers/messaging"
	"podium-service/internal/app/drivers/storage"
	"podium-service/internal/app/services/core/auth"
	"podium-service/internal/app/services/core/blueprints"
	"podium-service/internal/app/services/core/consents"
	"podium-service/internal/app/services/core/diagnoses"
	"podium-service/internal/app/services/core/exams"
	"podium-service/internal/app/services/core/intake"
	"podium-service/internal/app/services/core/mailworker"
	"podium-service/internal/app/services/core/reports"
	"podium-service/internal/app/services/core/session"
	"podium-service/internal/app/services/core/staffs"
	"podium-service/internal/app/services/core/submissions"
	"podium-service/internal/app/services/core/visits"
	"podium-service/internal/app/services/shared/locker"
	"podium-service/internal/app/services/shared/mailqueue"
	"podium-service/internal/app/services/shared/redis"
	smtpService "podium-service/internal/app/services/shared/smtp"
	storageService "podium-service/internal/app/services/shared/storage"
	"podium-service/internal/pkg/constvars"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	accessLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := newMongoIfNeeded(driverConfig, internalConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	smtpClient := mailer.NewSMTPClient(driverConfig, accessLog)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	err = bootstrapingTheApp(workerCtx, bootstrap, minioClient, smtpClient, accessLog)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	address := internalConfig.App.Address + ":" + internalConfig.App.Port
	server := &http.Server{
		Addr:              address,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server is listening", zap.String("address", address))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func newMongoIfNeeded(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *mongo.Client {
	if internalConfig.App.StorageDriver != constvars.StorageDriverMongo {
		return nil
	}
	return database.NewMongoDB(driverConfig)
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap, minioClient *minio.Client, smtpClient *mailer.SMTPClient, accessLog *logrus.Logger) error {
	cfg := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Repositories
	var visitRepository contracts.VisitRepository
	var staffRepository contracts.StaffRepository
	if bootstrap.MongoDB != nil {
		visitRepository = visits.NewVisitMongoRepository(bootstrap.MongoDB, cfg.MongoDB.PodiumDBName)
		staffMongoRepository := staffs.NewStaffMongoRepository(bootstrap.MongoDB, cfg.MongoDB.PodiumDBName)
		if err := staffMongoRepository.EnsureIndexes(ctx); err != nil {
			return err
		}
		staffRepository = staffMongoRepository
	} else {
		log.Warn("Running with in-memory storage, data is lost on restart")
		visitRepository = visits.NewVisitMemoryRepository()
		staffRepository = staffs.NewStaffMemoryRepository()
	}

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)
	sessionService := session.NewSessionService(redisRepository)
	draftStore := intake.NewDraftRedisStore(redisRepository, time.Duration(cfg.Intake.DraftTTLInHours)*time.Hour)

	// Mail
	mailQueue, err := mailqueue.NewService(bootstrap.RabbitMQ, log, cfg.RabbitMQ.Prefetch)
	if err != nil {
		return err
	}
	mailSender := smtpService.NewSmtpService(smtpClient, log)

	// Storage
	if err := storage.EnsureBucket(ctx, minioClient, cfg.Minio.BucketName); err != nil {
		return err
	}
	signatureStorage := storageService.NewMinioStorage(minioClient)

	// Diagnosis provider
	var provider contracts.DiagnosisProvider
	if cfg.Diagnosis.ApiKey != "" {
		provider = diagnoses.NewOpenAIProvider(
			cfg.Diagnosis.BaseUrl,
			cfg.Diagnosis.ApiKey,
			cfg.Diagnosis.Model,
			cfg.Diagnosis.Temperature,
			time.Duration(cfg.Diagnosis.TimeoutInSeconds)*time.Second,
		)
	} else {
		log.Info("No diagnosis API key configured, using heuristic provider")
		provider = diagnoses.NewHeuristicProvider()
	}

	// Usecases
	visitUsecase := visits.NewVisitUsecase(visitRepository, log)
	consentUsecase := consents.NewConsentUsecase(signatureStorage, cfg.Minio.BucketName, cfg.Clinic.PrivacyText, log)
	reportUsecase := reports.NewReportUsecase(visitRepository, mailQueue, cfg.Clinic.Name, cfg.Mailer.EmailSender, log)
	diagnosisUsecase := diagnoses.NewDiagnosisUsecase(visitRepository, provider, log)
	submissionUsecase := submissions.NewSubmissionUsecase(visitRepository, lockerService, diagnosisUsecase, consentUsecase, reportUsecase, log)
	intakeUsecase := intake.NewIntakeUsecase(
		visitUsecase,
		submissionUsecase,
		draftStore,
		log,
		cfg.Clinic.PrivacyText,
		time.Duration(cfg.Intake.AutosaveDebounceInMilliseconds)*time.Millisecond,
		time.Duration(cfg.Intake.IdleEvictionInMinutes)*time.Minute,
		cfg.Intake.MaxLiveFlows,
	)
	examUsecase := exams.NewExamUsecase(visitRepository, log)
	blueprintUsecase := blueprints.NewBlueprintUsecase(log)
	staffUsecase := staffs.NewStaffUsecase(staffRepository, log)
	authUsecase := auth.NewAuthUsecase(staffRepository, sessionService, cfg.JWT.Secret, cfg.JWT.ExpTimeInHour, log)

	created, err := staffUsecase.EnsureBootstrapAdmin(ctx, cfg.Auth.BootstrapAdminUsername, cfg.Auth.BootstrapAdminPassword, cfg.Auth.BootstrapAdminName)
	if err != nil {
		return err
	}
	if created {
		log.Info("Bootstrap admin ensured", zap.String("username", cfg.Auth.BootstrapAdminUsername))
	}

	// Workers
	worker := mailworker.NewWorker(
		log,
		lockerService,
		mailQueue,
		mailSender,
		cfg.Mailer.MaxQueue,
		cfg.Mailer.ThrottleRetry,
		time.Duration(cfg.Mailer.WorkerIntervalInSecond)*time.Second,
	)
	stopWorker := worker.Start(ctx)
	bootstrap.WorkerStop = func() {
		stopWorker()
		_ = mailQueue.Close()
	}
	bootstrap.IntakeFlush = intakeUsecase.Close

	// Delivery
	ctrls := &routers.Controllers{
		Visit:      controllers.NewVisitController(log, visitUsecase),
		Intake:     controllers.NewIntakeController(log, intakeUsecase),
		Submission: controllers.NewSubmissionController(log, submissionUsecase),
		Diagnosis:  controllers.NewDiagnosisController(log, diagnosisUsecase),
		Blueprint:  controllers.NewBlueprintController(log, blueprintUsecase),
		Exam:       controllers.NewExamController(log, examUsecase, reportUsecase),
		Auth:       controllers.NewAuthController(log, authUsecase, cfg),
		Staff:      controllers.NewStaffController(log, staffUsecase),
	}
	mws := middlewares.NewMiddlewares(log, authUsecase, cfg)

	routers.SetupRoutes(bootstrap.Router, cfg, accessLog, mws, ctrls)
	return nil
}
