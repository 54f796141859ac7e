package blueprints

import (
	"podium-service/internal/app/models"
	"regexp"
)

type Region string

const (
	RegionShoulder       Region = "shoulder"
	RegionKnee           Region = "knee"
	RegionAnkleFoot      Region = "ankle_foot"
	RegionHip            Region = "hip"
	RegionCervical       Region = "cervical"
	RegionLumbarThoracic Region = "lumbar_thoracic"
)

type romSpec struct {
	key      string
	label    string
	min, max int
}

// tagAddition applies when any of its tags is present.
type tagAddition struct {
	anyOf           []ConditionTag
	orthoTests      []models.ExamTest
	neuroTests      []models.ExamTest
	functionalTests []models.FunctionalTest
	scaleIDs        []string
	hints           []string
}

type regionRule struct {
	region          Region
	pattern         *regexp.Regexp
	romRows         []romSpec
	strengthRows    []models.StrengthRow
	functionalTests []models.FunctionalTest
	scaleIDs        []string
	hints           []string
	additions       []tagAddition
}

var cervicalNeuroTests = []models.ExamTest{
	{Key: "spurling", Label: "Spurling"},
	{Key: "distraction", Label: "Tracción cervical"},
	{Key: "ultt", Label: "ULTT mediano"},
}

var regionRules = []regionRule{
	{
		region:  RegionShoulder,
		pattern: regexp.MustCompile(`hombro`),
		romRows: []romSpec{
			{key: "flex", label: "Flexión (°)", min: 150, max: 180},
			{key: "abd", label: "Abducción (°)", min: 150, max: 180},
			{key: "er", label: "Rotación externa (°)", min: 70, max: 90},
			{key: "ir", label: "Rotación interna (°)", min: 60, max: 70},
		},
		strengthRows: []models.StrengthRow{
			{Key: "abd", Label: "Abducción (kg)"},
			{Key: "er", Label: "Rotación externa (kg)"},
			{Key: "ir", Label: "Rotación interna (kg)"},
			{Key: "flex", Label: "Flexión (kg)"},
		},
		functionalTests: []models.FunctionalTest{
			{Key: "hand_to_neck", Label: "Mano a nuca (Apley)"},
			{Key: "hand_to_back", Label: "Mano a espalda (Apley)"},
		},
		scaleIDs: []string{"SPADI", "DASH"},
		hints:    []string{"Evalúa cintura escapular y control escapulotorácico."},
		additions: []tagAddition{
			{
				anyOf: []ConditionTag{TagRotatorCuff, TagImpingement},
				orthoTests: []models.ExamTest{
					{Key: "jobe", Label: "Jobe / Empty Can", Cluster: "manguito"},
					{Key: "hawkins", Label: "Hawkins-Kennedy", Cluster: "impingement"},
					{Key: "painful_arc", Label: "Arco doloroso", Cluster: "impingement"},
					{Key: "speeds", Label: "Speed’s (porción larga bíceps)"},
				},
			},
			{
				anyOf: []ConditionTag{TagAdhesiveCapsulitis},
				hints: []string{"Capsulitis: limitación capsular típica ER > ABD > FLEX. PROM también limitada."},
			},
			{
				anyOf:      []ConditionTag{TagACJoint},
				orthoTests: []models.ExamTest{{Key: "cross_body", Label: "Cross-body adduction (AC)"}},
			},
			{
				anyOf:      []ConditionTag{TagCervicalRadiculopathy},
				neuroTests: cervicalNeuroTests,
				scaleIDs:   []string{"NDI"},
			},
		},
	},
	{
		region:  RegionKnee,
		pattern: regexp.MustCompile(`rodilla`),
		romRows: []romSpec{
			{key: "flex", label: "Flexión (°)", min: 130, max: 150},
			{key: "ext", label: "Extensión (°)", min: 0, max: 0},
		},
		strengthRows: []models.StrengthRow{
			{Key: "quad", Label: "Cuádriceps (kg)"},
			{Key: "ischio", Label: "Isquiosurales (kg)"},
			{Key: "abd", Label: "Abductores cadera (kg)"},
			{Key: "add", Label: "Aductores cadera (kg)"},
		},
		functionalTests: []models.FunctionalTest{
			{Key: "single_leg_squat", Label: "Single-Leg Squat (calidad)"},
			{Key: "hop", Label: "Single Hop (cm)"},
			{Key: "stair", Label: "Subir/bajar escaleras"},
		},
		scaleIDs: []string{"LEFS", "KOOS"},
		additions: []tagAddition{
			{
				anyOf:           []ConditionTag{TagPatellarTendinopathy},
				functionalTests: []models.FunctionalTest{{Key: "decline_squat_pain", Label: "Dolor en sentadilla declinada (0–10)", Unit: "0-10"}},
				scaleIDs:        []string{"VISA_P"},
				hints:           []string{"Evalúa cadena extensora y carga en pliometría progresiva."},
			},
			{
				anyOf: []ConditionTag{TagMeniscus},
				orthoTests: []models.ExamTest{
					{Key: "mcmurray", Label: "McMurray"},
					{Key: "thessaly", Label: "Thessaly"},
					{Key: "joint_line", Label: "Dolor línea articular"},
				},
			},
			{
				anyOf: []ConditionTag{TagACL},
				orthoTests: []models.ExamTest{
					{Key: "lachman", Label: "Lachman"},
					{Key: "ant_drawer", Label: "Cajón anterior"},
					{Key: "pivot_shift", Label: "Pivot shift"},
				},
			},
			{
				anyOf:      []ConditionTag{TagPatellofemoralPain},
				orthoTests: []models.ExamTest{{Key: "clarke", Label: "Clarke / Compresión patelar"}},
			},
		},
	},
	{
		region:  RegionAnkleFoot,
		pattern: regexp.MustCompile(`tobillo|pie`),
		romRows: []romSpec{
			{key: "df", label: "Dorsiflexión (°)", min: 10, max: 20},
			{key: "pf", label: "Flexión plantar (°)", min: 40, max: 55},
			{key: "inv", label: "Inversión (°)", min: 30, max: 35},
			{key: "ev", label: "Eversión (°)", min: 15, max: 20},
		},
		strengthRows: []models.StrengthRow{
			{Key: "pf", Label: "Flexores plantares (kg)"},
			{Key: "df", Label: "Dorsiflexores (kg)"},
			{Key: "inv", Label: "Inversores (kg)"},
			{Key: "ev", Label: "Eversores (kg)"},
		},
		functionalTests: []models.FunctionalTest{
			{Key: "calf_raises", Label: "Elevaciones de talón (reps)"},
			{Key: "hop", Label: "Hop test (cm)"},
		},
		scaleIDs: []string{"FAAM", "LEFS"},
		additions: []tagAddition{
			{
				anyOf: []ConditionTag{TagAchillesTendinopathy},
				orthoTests: []models.ExamTest{
					{Key: "arc_sign", Label: "Arc Sign"},
					{Key: "royal_london", Label: "Royal London"},
				},
				scaleIDs: []string{"VISA_A"},
				hints:    []string{"Valora inclinación tibial/knee-to-wall para DF y carga excéntrica / tempo."},
			},
			{
				anyOf: []ConditionTag{TagAnkleSprain},
				orthoTests: []models.ExamTest{
					{Key: "ant_drawer_ankle", Label: "Cajón anterior tobillo"},
					{Key: "talar_tilt", Label: "Talar tilt"},
				},
			},
		},
	},
	{
		region:  RegionHip,
		pattern: regexp.MustCompile(`cadera`),
		romRows: []romSpec{
			{key: "flex", label: "Flexión (°)", min: 110, max: 125},
			{key: "ext", label: "Extensión (°)", min: 10, max: 20},
			{key: "abd", label: "Abducción (°)", min: 30, max: 45},
			{key: "ir", label: "Rotación interna (°)", min: 30, max: 45},
			{key: "er", label: "Rotación externa (°)", min: 40, max: 60},
		},
		strengthRows: []models.StrengthRow{
			{Key: "flex", Label: "Flexores cadera (kg)"},
			{Key: "ext", Label: "Extensores cadera (kg)"},
			{Key: "abd", Label: "Abductores (kg)"},
			{Key: "add", Label: "Aductores (kg)"},
			{Key: "rot", Label: "Rotadores (kg)"},
		},
		functionalTests: []models.FunctionalTest{
			{Key: "single_leg_squat", Label: "Single-Leg Squat"},
			{Key: "sit_to_stand", Label: "Sit-to-Stand (30s)"},
		},
		scaleIDs: []string{"HOOS", "LEFS"},
	},
	{
		region:  RegionCervical,
		pattern: regexp.MustCompile(`cervical`),
		romRows: []romSpec{
			{key: "flex", label: "Flexión (°)", min: 40, max: 60},
			{key: "ext", label: "Extensión (°)", min: 50, max: 70},
			{key: "rot", label: "Rotación (°)", min: 60, max: 80},
			{key: "inc", label: "Inclinación lateral (°)", min: 35, max: 45},
		},
		strengthRows: []models.StrengthRow{
			{Key: "flex", Label: "Flexores cervicales (kg)"},
			{Key: "ext", Label: "Extensores cervicales (kg)"},
			{Key: "sb", Label: "Inclinadores (kg)"},
			{Key: "rot", Label: "Rotadores (kg)"},
		},
		scaleIDs: []string{"NDI"},
		additions: []tagAddition{
			{anyOf: []ConditionTag{TagCervicalRadiculopathy}, neuroTests: cervicalNeuroTests},
		},
	},
	{
		region:  RegionLumbarThoracic,
		pattern: regexp.MustCompile(`lumbar|torácica`),
		romRows: []romSpec{
			{key: "flex", label: "Flexión (°)", min: 40, max: 60},
			{key: "ext", label: "Extensión (°)", min: 20, max: 35},
			{key: "rot", label: "Rotación (°)", min: 5, max: 15},
			{key: "inc", label: "Inclinación lateral (°)", min: 15, max: 25},
		},
		strengthRows: []models.StrengthRow{
			{Key: "ext", Label: "Extensores (kg)"},
			{Key: "flex", Label: "Flexores (kg)"},
			{Key: "sb", Label: "Inclinadores (kg)"},
			{Key: "rot", Label: "Rotadores (kg)"},
		},
		scaleIDs: []string{"ODI"},
		additions: []tagAddition{
			{
				anyOf: []ConditionTag{TagLumbarRadiculopathy},
				neuroTests: []models.ExamTest{
					{Key: "slr", Label: "SLR (Lasègue)"},
					{Key: "slump", Label: "Slump"},
				},
			},
			{
				anyOf:           []ConditionTag{TagNonspecificLowBackPain},
				functionalTests: []models.FunctionalTest{{Key: "prone_instability", Label: "Prone Instability test"}},
			},
		},
	},
}

// MatchRegions returns every region whose pattern matches the label,
// so "hombro y cervical" yields two regions.
func MatchRegions(bodyRegion string) []Region {
	lowered := normalize(bodyRegion)
	regions := make([]Region, 0)
	for _, rule := range regionRules {
		if rule.pattern.MatchString(lowered) {
			regions = append(regions, rule.region)
		}
	}
	return regions
}
