package controllers

import (
	"context"
	"errors"
	"net/http"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/exceptions"
	"podium-service/internal/pkg/utils"
	"regexp"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	defaultRequestTimeout = 10 * time.Second
	// submission and diagnosis wait on the diagnosis provider
	longRequestTimeout = 60 * time.Second
)

var visitIDPattern = regexp.MustCompile(constvars.RegexVisitID)

func visitIDParam(r *http.Request) (string, error) {
	visitID := chi.URLParam(r, constvars.URLParamVisitID)
	if !visitIDPattern.MatchString(visitID) {
		return "", exceptions.ErrURLParamValidation(nil, constvars.URLParamVisitID)
	}
	return visitID, nil
}

// bindJSON decodes and validates a request body. The sanitize hook runs
// between the two so validation sees normalised input.
func bindJSON(r *http.Request, request interface{}, sanitize ...func()) error {
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	for _, fn := range sanitize {
		fn()
	}
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func writeError(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
