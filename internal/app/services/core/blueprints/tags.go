package blueprints

import (
	"podium-service/internal/app/models"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ConditionTag is a clinical condition recognised in a ddx label.
type ConditionTag string

const (
	TagRotatorCuff            ConditionTag = "rotator_cuff"
	TagImpingement            ConditionTag = "impingement"
	TagAdhesiveCapsulitis     ConditionTag = "adhesive_capsulitis"
	TagACJoint                ConditionTag = "ac_joint"
	TagCervicalRadiculopathy  ConditionTag = "cervical_radiculopathy"
	TagPatellarTendinopathy   ConditionTag = "patellar_tendinopathy"
	TagMeniscus               ConditionTag = "meniscus"
	TagACL                    ConditionTag = "acl"
	TagPatellofemoralPain     ConditionTag = "patellofemoral_pain"
	TagAchillesTendinopathy   ConditionTag = "achilles_tendinopathy"
	TagAnkleSprain            ConditionTag = "ankle_sprain"
	TagLumbarRadiculopathy    ConditionTag = "lumbar_radiculopathy"
	TagNonspecificLowBackPain ConditionTag = "nonspecific_low_back_pain"
)

// tagRule matches when every pattern matches. Raw rules run on the
// unlowered label.
type tagRule struct {
	tag      ConditionTag
	patterns []*regexp.Regexp
	raw      bool
}

var tagRules = []tagRule{
	{tag: TagRotatorCuff, patterns: compile(`supraespinoso|rotador|manguito|tendinop`)},
	{tag: TagImpingement, patterns: compile(`impingement|subacrom`)},
	{tag: TagAdhesiveCapsulitis, patterns: compile(`capsulitis|adhesiva|congelado`)},
	{tag: TagACJoint, patterns: compile(`acromioclav|ac joint|acromio`)},
	{tag: TagCervicalRadiculopathy, patterns: compile(`cervic`, `radic|refer`)},
	{tag: TagPatellarTendinopathy, patterns: compile(`patelar|rotuliana`)},
	{tag: TagMeniscus, patterns: compile(`menisc`)},
	{tag: TagACL, patterns: compile(`(?i)\bacl\b|cruzado anterior`), raw: true},
	{tag: TagPatellofemoralPain, patterns: compile(`patelofemoral|fesario`)},
	{tag: TagAchillesTendinopathy, patterns: compile(`aquiles|quíleo|achilles`)},
	{tag: TagAnkleSprain, patterns: compile(`esguince.*tobillo|lateral ankle sprain|talar tilt|ligament`)},
	{tag: TagLumbarRadiculopathy, patterns: compile(`lumbar.*radic|ciat|l5|s1`)},
	{tag: TagNonspecificLowBackPain, patterns: compile(`lumbalgia|dolor.*lumbar|n1s`)},
}

func compile(expressions ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(expressions))
	for _, expression := range expressions {
		patterns = append(patterns, regexp.MustCompile(expression))
	}
	return patterns
}

func normalize(text string) string {
	return strings.ToLower(norm.NFC.String(text))
}

func (r tagRule) matches(raw, lowered string) bool {
	subject := lowered
	if r.raw {
		subject = norm.NFC.String(raw)
	}
	for _, pattern := range r.patterns {
		if !pattern.MatchString(subject) {
			return false
		}
	}
	return true
}

// TagsFor maps every ddx label to condition tags, deduplicated in the
// order they are first seen.
func TagsFor(ddx []models.DdxCandidate) []ConditionTag {
	tags := make([]ConditionTag, 0)
	seen := make(map[ConditionTag]bool)
	for _, candidate := range ddx {
		lowered := normalize(candidate.Label)
		for _, rule := range tagRules {
			if seen[rule.tag] || !rule.matches(candidate.Label, lowered) {
				continue
			}
			seen[rule.tag] = true
			tags = append(tags, rule.tag)
		}
	}
	return tags
}
