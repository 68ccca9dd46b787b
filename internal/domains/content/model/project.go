package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type Project struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Company      string    `json:"company" db:"company"`
	Description  string    `json:"description" db:"description"`
	StartDate    string    `json:"start_date" db:"start_date"`
	EndDate      *string   `json:"end_date" db:"end_date"`
	Current      bool      `json:"current" db:"current"`
	Technologies []string  `json:"technologies" db:"technologies"`
	Highlights   []string  `json:"highlights" db:"highlights"`
	DemoURL      *string   `json:"demo_url" db:"demo_url"`
	GithubURL    *string   `json:"github_url" db:"github_url"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

func (p Project) RecordID() string { return p.ID }

var ProjectSchema = &Schema[Project]{
	Table:   "projects",
	Label:   "Project",
	OrderBy: "display_order ASC, id ASC",
	Fields: []Field{
		{Name: "id", Type: FieldString, Required: true},
		{Name: "name", Aliases: []string{"title"}, Type: FieldString, Required: true},
		{Name: "company", Type: FieldString, Required: true},
		{Name: "description", Type: FieldString, Required: true},
		{Name: "start_date", Aliases: []string{"startDate"}, Type: FieldDate, Required: true},
		{Name: "end_date", Aliases: []string{"endDate"}, Type: FieldDate},
		{Name: "current", Type: FieldBool},
		{Name: "technologies", Aliases: []string{"techStack", "tech_stack"}, Type: FieldStringList, Required: true},
		{Name: "highlights", Type: FieldStringList},
		{
			Name: "demo_url", Aliases: []string{"demoUrl", "demoURL"}, Type: FieldURL,
			Rules: []validation.Rule{is.RequestURL}, Message: "demo_url must be a valid absolute URL",
		},
		{
			Name: "github_url", Aliases: []string{"githubUrl", "githubURL"}, Type: FieldURL,
			Rules: []validation.Rule{is.RequestURL}, Message: "github_url must be a valid absolute URL",
		},
		{Name: "display_order", Aliases: []string{"displayOrder"}, Type: FieldInt},
	},
	Finalize: func(p *Project) {
		clearEndDateIfCurrent(p.Current, &p.EndDate)
		p.Technologies = nonNil(p.Technologies)
		p.Highlights = nonNil(p.Highlights)
	},
}
