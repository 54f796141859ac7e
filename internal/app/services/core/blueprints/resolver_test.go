package blueprints

import (
	"podium-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func romKeys(rows []models.RomRow) []string {
	keys := make([]string, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, row.Key)
	}
	return keys
}

func testKeys(tests []models.ExamTest) []string {
	keys := make([]string, 0, len(tests))
	for _, test := range tests {
		keys = append(keys, test.Key)
	}
	return keys
}

func TestResolve(t *testing.T) {
	t.Run("Unknown region yields empty lists", func(t *testing.T) {
		blueprint := Resolve("", nil)

		assert.NotNil(t, blueprint.RomRows)
		assert.Empty(t, blueprint.RomRows)
		assert.Empty(t, blueprint.StrengthRows)
		assert.Empty(t, blueprint.OrthoTests)
		assert.Empty(t, blueprint.NeuroTests)
		assert.Empty(t, blueprint.FunctionalTests)
		assert.Empty(t, blueprint.RecommendedScaleIDs)
		assert.Empty(t, blueprint.NotesHints)
	})

	t.Run("Tags without a matching region add nothing", func(t *testing.T) {
		blueprint := Resolve("codo", []models.DdxCandidate{{Label: "Tendinopatía del supraespinoso", Probability: 55}})

		assert.Empty(t, blueprint.OrthoTests)
		assert.Empty(t, blueprint.RecommendedScaleIDs)
	})

	t.Run("Shoulder with supraspinatus tendinopathy", func(t *testing.T) {
		blueprint := Resolve("Hombro derecho", []models.DdxCandidate{
			{Label: "Tendinopatía del supraespinoso", Probability: 55},
		})

		assert.Equal(t, []string{"flex", "abd", "er", "ir"}, romKeys(blueprint.RomRows))
		assert.Equal(t, []string{"SPADI", "DASH"}, blueprint.RecommendedScaleIDs)
		assert.Equal(t, []string{"jobe", "hawkins", "painful_arc", "speeds"}, testKeys(blueprint.OrthoTests))
		assert.Equal(t, "manguito", blueprint.OrthoTests[0].Cluster)
		require.NotNil(t, blueprint.RomRows[0].ReferenceMin)
		assert.Equal(t, 150, *blueprint.RomRows[0].ReferenceMin)
		assert.Equal(t, 180, *blueprint.RomRows[0].ReferenceMax)
		assert.Len(t, blueprint.NotesHints, 1)
	})

	t.Run("Shoulder with cervical radiculopathy adds neuro tests and NDI", func(t *testing.T) {
		blueprint := Resolve("hombro izquierdo", []models.DdxCandidate{
			{Label: "Radiculopatía cervical C6", Probability: 40},
		})

		assert.Equal(t, []string{"spurling", "distraction", "ultt"}, testKeys(blueprint.NeuroTests))
		assert.Equal(t, []string{"SPADI", "DASH", "NDI"}, blueprint.RecommendedScaleIDs)
	})

	t.Run("Knee with ACL matches on the raw label", func(t *testing.T) {
		blueprint := Resolve("Rodilla", []models.DdxCandidate{{Label: "Rotura ACL", Probability: 60}})

		assert.Equal(t, []string{"lachman", "ant_drawer", "pivot_shift"}, testKeys(blueprint.OrthoTests))
	})

	t.Run("Knee with patellar tendinopathy", func(t *testing.T) {
		blueprint := Resolve("rodilla", []models.DdxCandidate{{Label: "Tendinopatía rotuliana", Probability: 50}})

		assert.Equal(t, []string{"LEFS", "KOOS", "VISA_P"}, blueprint.RecommendedScaleIDs)
		last := blueprint.FunctionalTests[len(blueprint.FunctionalTests)-1]
		assert.Equal(t, "decline_squat_pain", last.Key)
		assert.Equal(t, "0-10", last.Unit)
	})

	t.Run("Decomposed accents match the thoracic region", func(t *testing.T) {
		decomposed := "Columna tora\u0301cica"
		blueprint := Resolve(decomposed, nil)

		assert.Equal(t, []string{"ODI"}, blueprint.RecommendedScaleIDs)
		assert.Len(t, blueprint.RomRows, 4)
	})

	t.Run("Overlapping regions keep rows from both and dedupe scales", func(t *testing.T) {
		blueprint := Resolve("cadera y rodilla", nil)

		assert.Len(t, blueprint.RomRows, 7)
		assert.Equal(t, []string{"LEFS", "KOOS", "HOOS"}, blueprint.RecommendedScaleIDs)
	})

	t.Run("Reordered ddx keeps the same scale set", func(t *testing.T) {
		first := []models.DdxCandidate{
			{Label: "Tendinopatía aquílea", Probability: 55},
			{Label: "Esguince lateral de tobillo", Probability: 25},
		}
		second := []models.DdxCandidate{first[1], first[0]}

		a := Resolve("tobillo", first)
		b := Resolve("tobillo", second)

		assert.ElementsMatch(t, a.RecommendedScaleIDs, b.RecommendedScaleIDs)
		assert.ElementsMatch(t, testKeys(a.OrthoTests), testKeys(b.OrthoTests))
	})

	t.Run("Same input is deterministic", func(t *testing.T) {
		ddx := []models.DdxCandidate{{Label: "Lumbalgia mecánica", Probability: 60}}

		assert.Equal(t, Resolve("lumbar", ddx), Resolve("lumbar", ddx))
	})

	t.Run("Reference values are not shared between calls", func(t *testing.T) {
		a := Resolve("hombro", nil)
		*a.RomRows[0].ReferenceMin = 0

		b := Resolve("hombro", nil)
		assert.Equal(t, 150, *b.RomRows[0].ReferenceMin)
	})
}

func TestTagsFor(t *testing.T) {
	tags := TagsFor([]models.DdxCandidate{
		{Label: "Tendinopatía del supraespinoso"},
		{Label: "Impingement subacromial"},
		{Label: "Tendinopatía del manguito"},
	})

	assert.Equal(t, []ConditionTag{TagRotatorCuff, TagImpingement}, tags)
	assert.Empty(t, TagsFor(nil))
	assert.NotNil(t, TagsFor(nil))
}

func TestLookupScales(t *testing.T) {
	scales := LookupScales([]string{"NDI", "UNKNOWN", "ODI"})

	require.Len(t, scales, 2)
	assert.Equal(t, "NDI", scales[0].ID)
	assert.Equal(t, "Oswestry", scales[1].Name)
	assert.Len(t, ScaleCatalog(), 10)
}

func TestMatchRegions(t *testing.T) {
	assert.Equal(t, []Region{RegionShoulder, RegionCervical}, MatchRegions("Hombro y cervical"))
	assert.Empty(t, MatchRegions("muñeca"))

	t.Run("thoracic needs the accented spelling", func(t *testing.T) {
		assert.Equal(t, []Region{RegionLumbarThoracic}, MatchRegions("Columna TORÁCICA"))
		assert.Equal(t, []Region{RegionLumbarThoracic}, MatchRegions("Columna tora\u0301cica"))
		assert.Empty(t, MatchRegions("columna toracica"))
	})
}

func TestBuildResolved(t *testing.T) {
	resolved := BuildResolved("Hombro y cervical", []models.DdxCandidate{
		{Label: "Impingement subacromial", Probability: 60},
	})
	assert.Equal(t, []string{"shoulder", "cervical"}, resolved.Regions)
	assert.Equal(t, []string{"impingement"}, resolved.Tags)
	assert.NotEmpty(t, resolved.Blueprint.RomRows)

	empty := BuildResolved("muñeca", nil)
	assert.NotNil(t, empty.Regions)
	assert.Empty(t, empty.Regions)
	assert.Empty(t, empty.Blueprint.RomRows)
}
