package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Skill categories
const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryDatabase = "database"
	CategoryDevOps   = "devops"
	CategoryTools    = "tools"
	CategoryOther    = "other"
)

// ProficiencyLabels: 1..5
var ProficiencyLabels = []string{"Beginner", "Elementary", "Intermediate", "Advanced", "Expert"}

const proficiencyMessage = "Proficiency level must be an integer between 1 and 5 " +
	"(1=Beginner, 2=Elementary, 3=Intermediate, 4=Advanced, 5=Expert)"

type Skill struct {
	ID               string              `json:"id" db:"id"`
	SkillName        string              `json:"skill_name" db:"skill_name"`
	Category         string              `json:"category" db:"category"`
	ProficiencyLevel int                 `json:"proficiency_level" db:"proficiency_level"`
	YearsExperience  decimal.NullDecimal `json:"years_experience" db:"years_experience"`
	DisplayOrder     int                 `json:"display_order" db:"display_order"`
	CreatedAt        time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at" db:"updated_at"`
}

func (s Skill) RecordID() string { return s.ID }

var nonNegative = validation.By(func(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if ok && d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
})

var SkillSchema = &Schema[Skill]{
	Table:   "skills",
	Label:   "Skill",
	OrderBy: "display_order ASC, category ASC, id ASC",
	Fields: []Field{
		{Name: "id", Type: FieldString, Required: true},
		{Name: "skill_name", Aliases: []string{"skillName", "name"}, Type: FieldString, Required: true},
		{
			Name: "category", Type: FieldString, Required: true,
			Rules: []validation.Rule{validation.In(
				CategoryFrontend, CategoryBackend, CategoryDatabase,
				CategoryDevOps, CategoryTools, CategoryOther,
			)},
			Message: "category must be one of: frontend, backend, database, devops, tools, other",
		},
		{
			Name: "proficiency_level", Aliases: []string{"proficiencyLevel", "proficiency"}, Type: FieldInt, Required: true,
			Rules:   []validation.Rule{validation.Required, validation.Min(1), validation.Max(5)}, // Min bỏ qua giá trị 0
			Message: proficiencyMessage,
		},
		{
			Name: "years_experience", Aliases: []string{"yearsExperience", "years_of_experience", "yearsOfExperience"},
			Type: FieldDecimal, Rules: []validation.Rule{nonNegative},
			Message: "years_experience must be a non-negative number",
		},
		{Name: "display_order", Aliases: []string{"displayOrder"}, Type: FieldInt},
	},
	Finalize: func(*Skill) {},
}
