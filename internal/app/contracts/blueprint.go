package contracts

import (
	"context"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/dto/responses"
)

type BlueprintUsecase interface {
	ResolveBlueprint(ctx context.Context, request *requests.ResolveBlueprint) (*responses.ResolvedBlueprint, error)
}
