package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type Certification struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Issuer        string    `json:"issuer" db:"issuer"`
	IssueDate     string    `json:"issue_date" db:"issue_date"`
	ExpiryDate    *string   `json:"expiry_date" db:"expiry_date"` // nil: không hết hạn
	CredentialID  *string   `json:"credential_id" db:"credential_id"`
	CredentialURL *string   `json:"credential_url" db:"credential_url"`
	Description   *string   `json:"description" db:"description"`
	DisplayOrder  int       `json:"display_order" db:"display_order"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

func (c Certification) RecordID() string { return c.ID }

var CertificationSchema = &Schema[Certification]{
	Table:   "certifications",
	Label:   "Certification",
	OrderBy: "display_order ASC, id ASC",
	Fields: []Field{
		{Name: "id", Type: FieldString, Required: true},
		{Name: "name", Type: FieldString, Required: true},
		{Name: "issuer", Type: FieldString, Required: true},
		{Name: "issue_date", Aliases: []string{"issueDate"}, Type: FieldDate, Required: true},
		{Name: "expiry_date", Aliases: []string{"expiryDate", "expirationDate", "expiration_date"}, Type: FieldDate},
		{Name: "credential_id", Aliases: []string{"credentialId", "credentialID"}, Type: FieldString},
		{
			Name: "credential_url", Aliases: []string{"credentialUrl", "credentialURL"}, Type: FieldURL,
			Rules: []validation.Rule{is.RequestURL}, Message: "credential_url must be a valid absolute URL",
		},
		{Name: "description", Type: FieldString},
		{Name: "display_order", Aliases: []string{"displayOrder"}, Type: FieldInt},
	},
	Finalize: func(*Certification) {},
}
