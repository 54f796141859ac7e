package diagnoses

import (
	"context"
	"podium-service/internal/app/contracts"
	"podium-service/internal/app/models"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const HeuristicProviderName = "heuristic"

type heuristicRule struct {
	pattern    *regexp.Regexp
	candidates []models.DdxCandidate
}

var heuristicRules = []heuristicRule{
	{
		pattern: regexp.MustCompile(`hombro`),
		candidates: []models.DdxCandidate{
			{Label: "Tendinopatía del supraespinoso", Probability: 55},
			{Label: "Impingement subacromial", Probability: 30},
			{Label: "Disfunción cervical referida", Probability: 15},
		},
	},
	{
		pattern: regexp.MustCompile(`rodilla`),
		candidates: []models.DdxCandidate{
			{Label: "Tendinopatía rotuliana", Probability: 50},
			{Label: "Dolor patelofemoral", Probability: 30},
			{Label: "Meniscopatía", Probability: 20},
		},
	},
	{
		pattern: regexp.MustCompile(`tobillo|aquiles|pie`),
		candidates: []models.DdxCandidate{
			{Label: "Tendinopatía aquílea", Probability: 55},
			{Label: "Esguince lateral", Probability: 25},
			{Label: "Síndrome canal tarsal", Probability: 20},
		},
	},
}

var heuristicDefault = []models.DdxCandidate{
	{Label: "Dolor mecánico inespecífico", Probability: 50},
	{Label: "Patología tendinosa", Probability: 30},
	{Label: "Dolor referido/vecino", Probability: 20},
}

type heuristicProvider struct{}

// NewHeuristicProvider returns the offline provider keyed on the body region.
func NewHeuristicProvider() contracts.DiagnosisProvider {
	return heuristicProvider{}
}

func (heuristicProvider) Name() string {
	return HeuristicProviderName
}

func (heuristicProvider) Diagnose(ctx context.Context, bodyRegion string, intake models.Answers) ([]models.DdxCandidate, error) {
	return HeuristicCandidates(bodyRegion), nil
}

// HeuristicCandidates applies every rule in order, so when a region names
// several areas the last matching rule wins.
func HeuristicCandidates(bodyRegion string) []models.DdxCandidate {
	region := strings.ToLower(norm.NFC.String(bodyRegion))
	candidates := heuristicDefault
	for _, rule := range heuristicRules {
		if rule.pattern.MatchString(region) {
			candidates = rule.candidates
		}
	}
	return append([]models.DdxCandidate{}, candidates...)
}
