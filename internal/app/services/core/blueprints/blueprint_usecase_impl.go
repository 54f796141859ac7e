package blueprints

import (
	"context"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/models"
	"podium-service/internal/pkg/constvars"
	"podium-service/internal/pkg/dto/requests"
	"podium-service/internal/pkg/dto/responses"
	"podium-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type blueprintUsecase struct {
	Log *zap.Logger
}

var (
	blueprintUsecaseInstance contracts.BlueprintUsecase
	onceBlueprintUsecase     sync.Once
)

func NewBlueprintUsecase(logger *zap.Logger) contracts.BlueprintUsecase {
	onceBlueprintUsecase.Do(func() {
		blueprintUsecaseInstance = &blueprintUsecase{Log: logger}
	})
	return blueprintUsecaseInstance
}

func (uc *blueprintUsecase) ResolveBlueprint(ctx context.Context, request *requests.ResolveBlueprint) (*responses.ResolvedBlueprint, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("blueprintUsecase.ResolveBlueprint called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBodyRegionKey, request.BodyRegion),
		zap.Int(constvars.LoggingCountKey, len(request.Ddx)),
	)

	ddx := make([]models.DdxCandidate, 0, len(request.Ddx))
	for _, candidate := range request.Ddx {
		ddx = append(ddx, models.DdxCandidate{
			Label:       candidate.Label,
			Probability: candidate.Probability,
			Rationale:   candidate.Rationale,
		})
	}

	response := BuildResolved(request.BodyRegion, ddx)

	uc.Log.Info("blueprintUsecase.ResolveBlueprint succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings("regions", response.Regions),
		zap.Strings(constvars.LoggingTagsKey, response.Tags),
		zap.Int("rom_rows", len(response.Blueprint.RomRows)),
	)
	return response, nil
}

// BuildResolved bundles the blueprint with the regions and tags it was
// built from and the scale catalog entries.
func BuildResolved(bodyRegion string, ddx []models.DdxCandidate) *responses.ResolvedBlueprint {
	blueprint := Resolve(bodyRegion, ddx)
	tags := TagsFor(ddx)
	tagNames := make([]string, 0, len(tags))
	for _, tag := range tags {
		tagNames = append(tagNames, string(tag))
	}
	regions := MatchRegions(bodyRegion)
	regionNames := make([]string, 0, len(regions))
	for _, region := range regions {
		regionNames = append(regionNames, string(region))
	}
	return &responses.ResolvedBlueprint{
		Regions:   regionNames,
		Tags:      tagNames,
		Blueprint: blueprint,
		Scales:    LookupScales(blueprint.RecommendedScaleIDs),
	}
}
