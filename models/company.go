package models

import "time"

type PhoneEntry struct {
	Number string `json:"number" bson:"number" db:"number"`
	Label  string `json:"label" bson:"label" db:"label"`
}

// CompanyProfile is the single-row letterhead used on quote documents.
type CompanyProfile struct {
	ID        int64        `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string       `json:"nombre_empresa" bson:"nombre_empresa" db:"nombre_empresa"`
	NIT       string       `json:"nit" bson:"nit" db:"nit"`
	Address   string       `json:"direccion" bson:"direccion" db:"direccion"`
	City      string       `json:"ciudad" bson:"ciudad" db:"ciudad"`
	Email     string       `json:"email" bson:"email" db:"email"`
	Footnote  string       `json:"pie_pagina" bson:"pie_pagina" db:"pie_pagina"`
	Phones    []PhoneEntry `json:"telefonos" bson:"telefonos" db:"telefonos"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at" db:"created_at"`
}
