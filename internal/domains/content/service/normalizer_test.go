package service

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/content/model"
)

// decodeJSON giải mã giống handler (UseNumber)
func decodeJSON(t *testing.T, s string) any {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	var v any
	require.NoError(t, dec.Decode(&v))
	return v
}

func rawRecord(t *testing.T, s string) model.RawRecord {
	t.Helper()
	m, ok := decodeJSON(t, s).(map[string]any)
	require.True(t, ok)
	return m
}

func TestNormalize_AliasEquivalence(t *testing.T) {
	viaAlias := Normalize(model.SkillSchema, rawRecord(t, `{"id":"go","skillName":"Go","category":"backend","proficiencyLevel":4}`))
	direct := Normalize(model.SkillSchema, rawRecord(t, `{"id":"go","skill_name":"Go","category":"backend","proficiency_level":4}`))

	assert.Equal(t, direct, viaAlias)
	assert.Equal(t, json.Number("4"), viaAlias["proficiency_level"])
}

func TestNormalize_AliasPriority(t *testing.T) {
	c := Normalize(model.SkillSchema, rawRecord(t, `{"proficiency":2,"proficiencyLevel":3,"proficiency_level":5}`))
	assert.Equal(t, json.Number("5"), c["proficiency_level"])

	c = Normalize(model.SkillSchema, rawRecord(t, `{"proficiency":2,"proficiencyLevel":3}`))
	assert.Equal(t, json.Number("3"), c["proficiency_level"])

	// null ở key ưu tiên cao không che alias phía sau
	c = Normalize(model.SkillSchema, rawRecord(t, `{"proficiency_level":null,"proficiency":2}`))
	assert.Equal(t, json.Number("2"), c["proficiency_level"])
}

func TestNormalize_MissingStaysUndefined(t *testing.T) {
	c := Normalize(model.ProjectSchema, rawRecord(t, `{"id":"p1","title":"Portfolio","unknown":"x","end_date":null}`))

	assert.Equal(t, "Portfolio", c["name"])
	_, hasCompany := c["company"]
	assert.False(t, hasCompany)
	_, hasUnknown := c["unknown"]
	assert.False(t, hasUnknown)

	v, hasEnd := c["end_date"]
	assert.True(t, hasEnd)
	assert.Nil(t, v)
}

func TestNormalize_ProjectAndCertificationAliases(t *testing.T) {
	p := Normalize(model.ProjectSchema, rawRecord(t, `{"startDate":"2023-01-01","endDate":"2023-06-01","demoURL":"https://a.dev","githubUrl":"https://github.com/a","techStack":["Go"],"displayOrder":2}`))
	assert.Equal(t, "2023-01-01", p["start_date"])
	assert.Equal(t, "2023-06-01", p["end_date"])
	assert.Equal(t, "https://a.dev", p["demo_url"])
	assert.Equal(t, "https://github.com/a", p["github_url"])
	assert.Equal(t, []any{"Go"}, p["technologies"])
	assert.Equal(t, json.Number("2"), p["display_order"])

	c := Normalize(model.CertificationSchema, rawRecord(t, `{"issueDate":"2022-01-01","expirationDate":"2025-01-01","credentialID":"X1","credentialUrl":"https://c.org/x1"}`))
	assert.Equal(t, "2022-01-01", c["issue_date"])
	assert.Equal(t, "2025-01-01", c["expiry_date"])
	assert.Equal(t, "X1", c["credential_id"])
	assert.Equal(t, "https://c.org/x1", c["credential_url"])

	e := Normalize(model.ExperienceSchema, rawRecord(t, `{"role":"Engineer","tech_stack":["Go"]}`))
	assert.Equal(t, "Engineer", e["position"])
	assert.Equal(t, []any{"Go"}, e["technologies"])
}
