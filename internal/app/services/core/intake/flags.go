package intake

import "podium-service/internal/app/models"

const (
	FlagRedFlag           = "RED_FLAG"
	FlagRadiatingPain     = "RADIATING_PAIN"
	FlagStiffness30Min    = "STIFFNESS_>30MIN"
	FlagLowAdherence      = "LOW_ADHERENCE"
	FlagHighUrgencyImpact = "HIGH_URGENCY_IMPACT"
)

var (
	redFlag = Any(
		ifYes("q31_fiebre"),
		ifYes("q32_peso"),
		ifYes("q33_cancer"),
		ifYes("q36_esfinteres"),
		ifYes("q37_silla"),
		ifYes("q39_pecho"),
	)
	radiatingPain = AnswerEquals("q19_irradia", "Se extiende")
)

// DeriveFlags computes the safety and priority flags for a frozen answer
// map. Missing numeric answers count as 0.
func DeriveFlags(answers models.Answers) []string {
	flags := make([]string, 0)

	if redFlag.Evaluate(answers) {
		flags = append(flags, FlagRedFlag)
	}
	if radiatingPain.Evaluate(answers) {
		flags = append(flags, FlagRadiatingPain)
	}
	if answers.String("q25_rigidez") == AnswerYes && answers.NumberOrZero("q25a_rigidez_min") > 30 {
		flags = append(flags, FlagStiffness30Min)
	}
	if answers.NumberOrZero("q53_compromiso") < 5 {
		flags = append(flags, FlagLowAdherence)
	}
	if answers.NumberOrZero("q57_urgencia") >= 8 && answers.NumberOrZero("q58_afectacion") >= 8 {
		flags = append(flags, FlagHighUrgencyImpact)
	}
	return flags
}

func HasRedFlag(flags []string) bool {
	for _, flag := range flags {
		if flag == FlagRedFlag {
			return true
		}
	}
	return false
}
