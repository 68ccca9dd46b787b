package model

import "time"

type Experience struct {
	ID               string    `json:"id" db:"id"`
	Company          string    `json:"company" db:"company"`
	Position         string    `json:"position" db:"position"`
	Location         *string   `json:"location" db:"location"`
	StartDate        string    `json:"start_date" db:"start_date"`
	EndDate          *string   `json:"end_date" db:"end_date"`
	Current          bool      `json:"current" db:"current"`
	Description      *string   `json:"description" db:"description"`
	Responsibilities []string  `json:"responsibilities" db:"responsibilities"`
	Technologies     []string  `json:"technologies" db:"technologies"`
	Achievements     []string  `json:"achievements" db:"achievements"`
	DisplayOrder     int       `json:"display_order" db:"display_order"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

func (e Experience) RecordID() string { return e.ID }

var ExperienceSchema = &Schema[Experience]{
	Table:   "experience",
	Label:   "Experience",
	OrderBy: "display_order ASC, id ASC",
	Fields: []Field{
		{Name: "id", Type: FieldString, Required: true},
		{Name: "company", Type: FieldString, Required: true},
		{Name: "position", Aliases: []string{"title", "role"}, Type: FieldString, Required: true},
		{Name: "location", Type: FieldString},
		{Name: "start_date", Aliases: []string{"startDate"}, Type: FieldDate, Required: true},
		{Name: "end_date", Aliases: []string{"endDate"}, Type: FieldDate},
		{Name: "current", Type: FieldBool},
		{Name: "description", Type: FieldString},
		{Name: "responsibilities", Type: FieldStringList},
		{Name: "technologies", Aliases: []string{"techStack", "tech_stack"}, Type: FieldStringList, Required: true},
		{Name: "achievements", Type: FieldStringList},
		{Name: "display_order", Aliases: []string{"displayOrder"}, Type: FieldInt},
	},
	Finalize: func(e *Experience) {
		clearEndDateIfCurrent(e.Current, &e.EndDate)
		e.Responsibilities = nonNil(e.Responsibilities)
		e.Technologies = nonNil(e.Technologies)
		e.Achievements = nonNil(e.Achievements)
	},
}
