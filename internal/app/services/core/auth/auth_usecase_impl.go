package auth

import (
	"context"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/dto/responses"
	"podium-service/internal/pkg/exceptions"
	"podium-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	StaffRepository contracts.StaffRepository
	SessionService  contracts.SessionService
	JWTSecret       string
	JWTExpHours     int
	Log             *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	staffRepository contracts.StaffRepository,
	sessionService contracts.SessionService,
	jwtSecret string,
	jwtExpHours int,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = newAuthUsecase(staffRepository, sessionService, jwtSecret, jwtExpHours, logger)
	})
	return authUsecaseInstance
}

func newAuthUsecase(
	staffRepository contracts.StaffRepository,
	sessionService contracts.SessionService,
	jwtSecret string,
	jwtExpHours int,
	logger *zap.Logger,
) *authUsecase {
	if jwtExpHours <= 0 {
		jwtExpHours = 1
	}
	return &authUsecase{
		StaffRepository: staffRepository,
		SessionService:  sessionService,
		JWTSecret:       jwtSecret,
		JWTExpHours:     jwtExpHours,
		Log:             logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.StaffLogin) (*responses.StaffLogin, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	staff, err := uc.StaffRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		uc.Log.Error("authUsecase.Login error fetching staff user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if staff == nil || !utils.CheckPasswordHash(request.Password, staff.PasswordHash) {
		utils.LogSecurityEvent(uc.Log, "staff_login_failed", requestID, "medium",
			zap.String(constvars.LoggingUsernameKey, request.Username),
		)
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}
	if !staff.Active {
		return nil, exceptions.ErrStaffInactive(nil, staff.Username)
	}

	ttl := time.Duration(uc.JWTExpHours) * time.Hour
	now := time.Now().UTC()
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		Username:  staff.Username,
		Role:      staff.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := uc.SessionService.CreateSession(ctx, session, ttl); err != nil {
		uc.Log.Error("authUsecase.Login error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.JWTSecret, uc.JWTExpHours)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, constvars.BusinessEventStaffLogin, requestID,
		zap.String(constvars.LoggingUsernameKey, staff.Username),
		zap.String(constvars.LoggingRoleKey, staff.Role),
	)
	return &responses.StaffLogin{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Username:  staff.Username,
		Role:      staff.Role,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.SessionService.DeleteSession(ctx, sessionID); err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *authUsecase) WhoAmI(ctx context.Context, username string) (*responses.WhoAmI, error) {
	if username == constvars.SuperadminAPIKeyUsername {
		return &responses.WhoAmI{Username: username, Role: constvars.StaffRoleAdmin}, nil
	}

	staff, err := uc.StaffRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, exceptions.ErrStaffNotFound(nil, username)
	}
	return &responses.WhoAmI{
		Username: staff.Username,
		Name:     staff.Name,
		Role:     staff.Role,
	}, nil
}

// ResolveSession validates the token and rechecks the account, so
// deactivation and role changes apply to live sessions.
func (uc *authUsecase) ResolveSession(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseSessionJWT(token, uc.JWTSecret)
	if err != nil {
		return nil, err
	}

	session, err := uc.SessionService.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrInvalidSession(nil)
	}

	staff, err := uc.StaffRepository.FindByUsername(ctx, session.Username)
	if err != nil {
		return nil, err
	}
	if staff == nil || !staff.Active {
		return nil, exceptions.ErrInvalidSession(nil)
	}
	session.Role = staff.Role
	return session, nil
}
