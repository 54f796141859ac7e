package reports

import (
	"fmt"
	"podium-service/internal/app/models"
	"strconv"
	"strings"
)

var defaultPlanPhases = []int{1, 2, 3, 4, 5}

const patientBriefFormat = "Hola %s,\n" +
	"Hemos recibido tu formulario y tu fisioterapeuta ya está revisándolo.\n" +
	"En tu cita, continuaréis con la valoración en camilla y te explicaremos el plan.\n" +
	"Un saludo, equipo Podium."

// SummaryMarkdown is the staff-only digest, it carries the ddx.
func SummaryMarkdown(visit *models.Visit) string {
	region := visit.BodyRegion
	if region == "" {
		region = "-"
	}

	flags := "—"
	if visit.Intake != nil && len(visit.Intake.Flags) > 0 {
		flags = strings.Join(visit.Intake.Flags, ", ")
	}

	candidates := visit.DdxCandidates()
	ddx := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		ddx = append(ddx, candidate.Label+" "+strconv.FormatFloat(candidate.Probability, 'f', -1, 64)+"%")
	}

	var b strings.Builder
	b.WriteString("# Anamnesis recibida\n")
	b.WriteString("- Zona: " + region + "\n")
	b.WriteString("- Flags: " + flags + "\n")
	b.WriteString("- DDx (solo personal): " + strings.Join(ddx, ", "))
	return b.String()
}

func PatientBrief(visit *models.Visit) string {
	return fmt.Sprintf(patientBriefFormat, visit.Patient.FirstName)
}
