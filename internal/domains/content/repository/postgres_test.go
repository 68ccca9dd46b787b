package repository

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/content/model"
)

func TestSelectList_CastsDatesAndDecimals(t *testing.T) {
	r := &postgresTable[model.Skill]{schema: model.SkillSchema}
	sel := r.selectList()
	assert.Contains(t, sel, `"years_experience"::text AS "years_experience"`)
	assert.Contains(t, sel, `"proficiency_level"`)
	assert.Contains(t, sel, "created_at, updated_at")

	p := &postgresTable[model.Project]{schema: model.ProjectSchema}
	assert.Contains(t, p.selectList(), `to_char("start_date", 'YYYY-MM-DD') AS "start_date"`)
	assert.Contains(t, p.selectList(), `to_char("end_date", 'YYYY-MM-DD') AS "end_date"`)
}

func TestListQuery_Ordering(t *testing.T) {
	r := &postgresTable[model.Skill]{schema: model.SkillSchema}
	assert.Contains(t, r.listQuery(), `FROM "skills" ORDER BY display_order ASC, category ASC, id ASC`)

	c := &postgresTable[model.Certification]{schema: model.CertificationSchema}
	assert.Contains(t, c.listQuery(), `FROM "certifications" ORDER BY display_order ASC, id ASC`)
}

func TestInsertQuery(t *testing.T) {
	r := &postgresTable[model.Certification]{schema: model.CertificationSchema}
	q := r.insertQuery()
	assert.Contains(t, q, `INSERT INTO "certifications" ("id", "name", "issuer", "issue_date", "expiry_date"`)
	assert.Contains(t, q, "VALUES ($1, $2, $3, $4::text::date, $5::text::date, $6, $7, $8, $9)")
	assert.Contains(t, q, "RETURNING ")
}

func TestUpdateQuery_SkipsIDAndTouchesUpdatedAt(t *testing.T) {
	r := &postgresTable[model.Skill]{schema: model.SkillSchema}
	q, cols := r.updateQuery()
	assert.Equal(t, []string{"skill_name", "category", "proficiency_level", "years_experience", "display_order"}, cols)
	assert.Contains(t, q, `UPDATE "skills" SET "skill_name" = $2, "category" = $3, "proficiency_level" = $4, "years_experience" = $5::text::numeric, "display_order" = $6, updated_at = NOW() WHERE id = $1`)
	assert.NotContains(t, q, `"id" = `)
}

func TestArgs_ConvertsNullDecimal(t *testing.T) {
	s := &model.Skill{
		ID:               "go",
		ProficiencyLevel: 4,
		YearsExperience:  decimal.NewNullDecimal(decimal.RequireFromString("2.5")),
	}
	values, err := args(s, []string{"id", "proficiency_level", "years_experience"})
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, "go", values[0])
	assert.Equal(t, 4, values[1])
	require.IsType(t, new(string), values[2])
	assert.Equal(t, "2.5", *values[2].(*string))

	s.YearsExperience = decimal.NullDecimal{}
	values, err = args(s, []string{"years_experience"})
	require.NoError(t, err)
	assert.Nil(t, values[0])
}
