package blueprints

import "podium-service/internal/app/models"

// Resolve builds the exam blueprint for a body region and a ranked ddx.
// It is pure: the same input always yields the same blueprint, and an
// unrecognised region yields empty lists.
func Resolve(bodyRegion string, ddx []models.DdxCandidate) models.ExamBlueprint {
	blueprint := models.ExamBlueprint{
		RomRows:             make([]models.RomRow, 0),
		StrengthRows:        make([]models.StrengthRow, 0),
		OrthoTests:          make([]models.ExamTest, 0),
		NeuroTests:          make([]models.ExamTest, 0),
		FunctionalTests:     make([]models.FunctionalTest, 0),
		RecommendedScaleIDs: make([]string, 0),
		NotesHints:          make([]string, 0),
	}

	tags := TagsFor(ddx)
	present := make(map[ConditionTag]bool, len(tags))
	for _, tag := range tags {
		present[tag] = true
	}

	scales := &scaleSet{seen: make(map[string]bool)}
	lowered := normalize(bodyRegion)
	for _, rule := range regionRules {
		if !rule.pattern.MatchString(lowered) {
			continue
		}
		for _, rom := range rule.romRows {
			blueprint.RomRows = append(blueprint.RomRows, rom.row())
		}
		blueprint.StrengthRows = append(blueprint.StrengthRows, rule.strengthRows...)
		blueprint.FunctionalTests = append(blueprint.FunctionalTests, rule.functionalTests...)
		scales.add(rule.scaleIDs...)
		blueprint.NotesHints = append(blueprint.NotesHints, rule.hints...)

		for _, addition := range rule.additions {
			if !addition.appliesTo(present) {
				continue
			}
			blueprint.OrthoTests = append(blueprint.OrthoTests, addition.orthoTests...)
			blueprint.NeuroTests = append(blueprint.NeuroTests, addition.neuroTests...)
			blueprint.FunctionalTests = append(blueprint.FunctionalTests, addition.functionalTests...)
			scales.add(addition.scaleIDs...)
			blueprint.NotesHints = append(blueprint.NotesHints, addition.hints...)
		}
	}
	blueprint.RecommendedScaleIDs = append(blueprint.RecommendedScaleIDs, scales.ids...)
	return blueprint
}

func (s romSpec) row() models.RomRow {
	min, max := s.min, s.max
	return models.RomRow{Key: s.key, Label: s.label, ReferenceMin: &min, ReferenceMax: &max}
}

func (a tagAddition) appliesTo(present map[ConditionTag]bool) bool {
	for _, tag := range a.anyOf {
		if present[tag] {
			return true
		}
	}
	return false
}

type scaleSet struct {
	ids  []string
	seen map[string]bool
}

func (s *scaleSet) add(ids ...string) {
	for _, id := range ids {
		if s.seen[id] {
			continue
		}
		s.seen[id] = true
		s.ids = append(s.ids, id)
	}
}
