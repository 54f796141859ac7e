package blueprints

import (
	"podium-service/internal/app/models"
	"sort"
)

var scaleCatalog = map[string]models.OutcomeScale{
	"VISA_P": {ID: "VISA_P", Name: "VISA-P (rotuliana)", Explanation: "Cuestionario (0–100) para tendinopatía rotuliana: dolor y función."},
	"VISA_A": {ID: "VISA_A", Name: "VISA-A (Aquiles)", Explanation: "Cuestionario (0–100) para tendinopatía aquílea."},
	"LEFS":   {ID: "LEFS", Name: "LEFS", Explanation: "Lower Extremity Functional Scale (0–80) para función de EEII."},
	"NDI":    {ID: "NDI", Name: "NDI", Explanation: "Neck Disability Index (0–50) para discapacidad cervical."},
	"ODI":    {ID: "ODI", Name: "Oswestry", Explanation: "Oswestry Disability Index (0–100%) para columna lumbar."},
	"SPADI":  {ID: "SPADI", Name: "SPADI", Explanation: "Shoulder Pain and Disability Index (0–100)."},
	"DASH":   {ID: "DASH", Name: "DASH", Explanation: "Disabilities of the Arm, Shoulder and Hand (0–100)."},
	"KOOS":   {ID: "KOOS", Name: "KOOS Jr", Explanation: "Knee injury and Osteoarthritis Outcome Score (0–100)."},
	"FAAM":   {ID: "FAAM", Name: "FAAM", Explanation: "Foot and Ankle Ability Measure (0–100)."},
	"HOOS":   {ID: "HOOS", Name: "HOOS Jr", Explanation: "Hip disability and Osteoarthritis Outcome Score (0–100)."},
}

// LookupScales resolves scale ids against the catalog, keeping order and
// skipping unknown ids.
func LookupScales(ids []string) []models.OutcomeScale {
	scales := make([]models.OutcomeScale, 0, len(ids))
	for _, id := range ids {
		if scale, ok := scaleCatalog[id]; ok {
			scales = append(scales, scale)
		}
	}
	return scales
}

func IsKnownScale(id string) bool {
	_, ok := scaleCatalog[id]
	return ok
}

// ScaleCatalog lists every known scale ordered by id.
func ScaleCatalog() []models.OutcomeScale {
	ids := make([]string, 0, len(scaleCatalog))
	for id := range scaleCatalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return LookupScales(ids)
}
