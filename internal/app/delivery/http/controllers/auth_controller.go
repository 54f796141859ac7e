package controllers

import (
	"context"
	"net/http"
	"podium-service/internal/app/config"
	"podium-service/internal/app/contracts"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.StaffLogin)
	if err := bindJSON(r, request, func() { utils.SanitizeLoginRequest(request) }); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	http.SetCookie(w, ctrl.sessionCookie(result.Token, result.ExpiresAt))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, result)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)

	if sessionID != "" {
		ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
		defer cancel()

		if err := ctrl.AuthUsecase.Logout(ctx, sessionID); err != nil {
			writeError(ctrl.Log, w, err)
			return
		}
	}

	cookie := ctrl.sessionCookie("", time.Unix(0, 0))
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

func (ctrl *AuthController) WhoAmI(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaultRequestTimeout)
	defer cancel()

	result, err := ctrl.AuthUsecase.WhoAmI(ctx, utils.GetStaffUsername(r.Context()))
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.WhoAmISuccessMessage, result)
}

func (ctrl *AuthController) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     constvars.StaffSessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.App.Env == constvars.AppEnvProduction,
		SameSite: http.SameSiteLaxMode,
	}
}
