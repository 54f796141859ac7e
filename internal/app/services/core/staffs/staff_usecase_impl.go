package staffs

import (
	"context"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/dto/responses"
	"podium-service/internal/pkg/exceptions"
	"podium-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type staffUsecase struct {
	StaffRepository contracts.StaffRepository
	Log             *zap.Logger
}

var (
	staffUsecaseInstance contracts.StaffUsecase
	onceStaffUsecase     sync.Once
)

func NewStaffUsecase(staffRepository contracts.StaffRepository, logger *zap.Logger) contracts.StaffUsecase {
	onceStaffUsecase.Do(func() {
		staffUsecaseInstance = newStaffUsecase(staffRepository, logger)
	})
	return staffUsecaseInstance
}

func newStaffUsecase(staffRepository contracts.StaffRepository, logger *zap.Logger) *staffUsecase {
	return &staffUsecase{
		StaffRepository: staffRepository,
		Log:             logger,
	}
}

func (uc *staffUsecase) ListStaff(ctx context.Context) ([]responses.Staff, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("staffUsecase.ListStaff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	staff, err := uc.StaffRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("staffUsecase.ListStaff error fetching staff",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := make([]responses.Staff, 0, len(staff))
	for i := range staff {
		result = append(result, toStaffResponse(&staff[i]))
	}
	return result, nil
}

func (uc *staffUsecase) CreateStaff(ctx context.Context, request *requests.CreateStaff) (*responses.Staff, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("staffUsecase.CreateStaff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	if !utils.IsValidStaffRole(request.Role) {
		return nil, exceptions.ErrInputValidation(nil)
	}

	existing, err := uc.StaffRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrStaffUsernameExists(nil, request.Username)
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now().UTC()
	staff := &models.StaffUser{
		ID:           uuid.NewString(),
		Name:         request.Name,
		Username:     request.Username,
		Email:        request.Email,
		Role:         request.Role,
		Active:       true,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.StaffRepository.Create(ctx, staff); err != nil {
		uc.Log.Error("staffUsecase.CreateStaff error creating staff",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("staffUsecase.CreateStaff succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, staff.Username),
	)
	response := toStaffResponse(staff)
	return &response, nil
}

func (uc *staffUsecase) UpdateStaff(ctx context.Context, username string, request *requests.UpdateStaff) (*responses.Staff, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("staffUsecase.UpdateStaff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, username),
	)

	staff, err := uc.findStaff(ctx, username)
	if err != nil {
		return nil, err
	}

	losesAdmin := staff.Role == constvars.StaffRoleAdmin && staff.Active &&
		((request.Role != nil && *request.Role != constvars.StaffRoleAdmin) ||
			(request.Active != nil && !*request.Active))
	if losesAdmin {
		if err := uc.guardLastAdmin(ctx); err != nil {
			return nil, err
		}
	}

	if request.Name != nil {
		staff.Name = *request.Name
	}
	if request.Email != nil {
		staff.Email = *request.Email
	}
	if request.Role != nil {
		if !utils.IsValidStaffRole(*request.Role) {
			return nil, exceptions.ErrInputValidation(nil)
		}
		staff.Role = *request.Role
	}
	if request.Active != nil {
		staff.Active = *request.Active
	}
	if request.Password != nil {
		hash, err := utils.HashPassword(*request.Password)
		if err != nil {
			return nil, exceptions.ErrHashPassword(err)
		}
		staff.PasswordHash = hash
	}
	if request.NewUsername != nil && *request.NewUsername != "" && *request.NewUsername != username {
		taken, err := uc.StaffRepository.FindByUsername(ctx, *request.NewUsername)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, exceptions.ErrStaffUsernameExists(nil, *request.NewUsername)
		}
		staff.Username = *request.NewUsername
	}
	staff.UpdatedAt = time.Now().UTC()

	if err := uc.StaffRepository.Update(ctx, username, staff); err != nil {
		uc.Log.Error("staffUsecase.UpdateStaff error updating staff",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := toStaffResponse(staff)
	return &response, nil
}

func (uc *staffUsecase) DeleteStaff(ctx context.Context, username string) error {
	requestID := utils.GetRequestID(ctx)
	actor := utils.GetStaffUsername(ctx)
	uc.Log.Info("staffUsecase.DeleteStaff called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, username),
	)

	if actor != "" && actor == username {
		return exceptions.ErrStaffCannotDeleteSelf(nil, username)
	}

	staff, err := uc.findStaff(ctx, username)
	if err != nil {
		return err
	}
	if staff.Role == constvars.StaffRoleAdmin && staff.Active {
		if err := uc.guardLastAdmin(ctx); err != nil {
			return err
		}
	}

	if err := uc.StaffRepository.Delete(ctx, username); err != nil {
		uc.Log.Error("staffUsecase.DeleteStaff error deleting staff",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	utils.LogBusinessEvent(uc.Log, constvars.BusinessEventStaffDeleted, requestID,
		zap.String(constvars.LoggingUsernameKey, username),
		zap.String("deleted_by", actor),
	)
	return nil
}

// EnsureBootstrapAdmin reports whether an admin was created. Nothing
// happens when an active admin already exists or credentials are empty.
func (uc *staffUsecase) EnsureBootstrapAdmin(ctx context.Context, username, password, name string) (bool, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return false, nil
	}

	admins, err := uc.StaffRepository.CountActiveAdmins(ctx)
	if err != nil {
		return false, err
	}
	if admins > 0 {
		return false, nil
	}

	if strings.TrimSpace(name) == "" {
		name = username
	}

	existing, err := uc.StaffRepository.FindByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		active, role := true, constvars.StaffRoleAdmin
		_, err := uc.UpdateStaff(ctx, username, &requests.UpdateStaff{
			Role:     &role,
			Active:   &active,
			Password: &password,
		})
		return err == nil, err
	}

	_, err = uc.CreateStaff(ctx, &requests.CreateStaff{
		Name:     name,
		Username: username,
		Role:     constvars.StaffRoleAdmin,
		Password: password,
	})
	if err != nil {
		return false, err
	}

	uc.Log.Info("staffUsecase.EnsureBootstrapAdmin created admin",
		zap.String(constvars.LoggingUsernameKey, username),
	)
	return true, nil
}

func (uc *staffUsecase) findStaff(ctx context.Context, username string) (*models.StaffUser, error) {
	staff, err := uc.StaffRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, exceptions.ErrStaffNotFound(nil, username)
	}
	return staff, nil
}

// guardLastAdmin is called before an active admin loses the privilege.
func (uc *staffUsecase) guardLastAdmin(ctx context.Context) error {
	admins, err := uc.StaffRepository.CountActiveAdmins(ctx)
	if err != nil {
		return err
	}
	if admins <= 1 {
		return exceptions.ErrStaffLastAdmin(nil)
	}
	return nil
}

func toStaffResponse(staff *models.StaffUser) responses.Staff {
	return responses.Staff{
		Username:  staff.Username,
		Name:      staff.Name,
		Email:     staff.Email,
		Role:      staff.Role,
		Active:    staff.Active,
		CreatedAt: staff.CreatedAt,
		UpdatedAt: staff.UpdatedAt,
	}
}
