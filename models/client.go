package models

import "time"

// Client categories and account statuses
const (
	ClientCorporate  = "corporativo"
	ClientSME        = "pyme"
	ClientIndividual = "particular"

	ClientActive    = "activo"
	ClientInactive  = "inactivo"
	ClientSuspended = "suspendido"
)

type Client struct {
	ID                 string    `json:"id" db:"id" bson:"_id"`
	CompanyName        string    `json:"nombre_empresa" db:"nombre_empresa" bson:"nombre_empresa"`
	NIT                string    `json:"nit" db:"nit" bson:"nit"`
	Contact            string    `json:"contacto_principal" db:"contacto_principal" bson:"contacto_principal"`
	Phone              string    `json:"telefono" db:"telefono" bson:"telefono"`
	Email              string    `json:"email" db:"email" bson:"email"`
	Address            string    `json:"direccion" db:"direccion" bson:"direccion"`
	City               string    `json:"ciudad" db:"ciudad" bson:"ciudad"`
	Type               string    `json:"tipo_cliente" db:"tipo_cliente" bson:"tipo_cliente"`
	Status             string    `json:"estado" db:"estado" bson:"estado"`
	RegisteredAt       string    `json:"fecha_registro" db:"fecha_registro" bson:"fecha_registro"`
	ContractedServices []string  `json:"servicios_contratados" db:"servicios_contratados" bson:"servicios_contratados"`
	CreditLimit        float64   `json:"limite_credito" db:"limite_credito" bson:"limite_credito"`
	PendingBalance     float64   `json:"saldo_pendiente" db:"saldo_pendiente" bson:"saldo_pendiente"`
	CreatedAt          time.Time `json:"created_at" db:"created_at" bson:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at" bson:"updated_at"`
}

// ClientRef is the denormalized slice of a client embedded in responses.
type ClientRef struct {
	CompanyName string `json:"nombre_empresa" bson:"nombre_empresa"`
	Contact     string `json:"contacto_principal" bson:"contacto_principal"`
	Email       string `json:"email,omitempty" bson:"email,omitempty"`
}

type CreateClient struct {
	CompanyName        string   `json:"nombre_empresa"`
	NIT                string   `json:"nit"`
	Contact            string   `json:"contacto_principal"`
	Phone              string   `json:"telefono"`
	Email              string   `json:"email"`
	Address            string   `json:"direccion"`
	City               string   `json:"ciudad"`
	Type               string   `json:"tipo_cliente"`
	Status             string   `json:"estado"`
	ContractedServices []string `json:"servicios_contratados"`
	CreditLimit        float64  `json:"limite_credito"`
	PendingBalance     float64  `json:"saldo_pendiente"`
}

type UpdateClient struct {
	ID                 string    `json:"id"`
	CompanyName        *string   `json:"nombre_empresa,omitempty"`
	NIT                *string   `json:"nit,omitempty"`
	Contact            *string   `json:"contacto_principal,omitempty"`
	Phone              *string   `json:"telefono,omitempty"`
	Email              *string   `json:"email,omitempty"`
	Address            *string   `json:"direccion,omitempty"`
	City               *string   `json:"ciudad,omitempty"`
	Type               *string   `json:"tipo_cliente,omitempty"`
	Status             *string   `json:"estado,omitempty"`
	ContractedServices *[]string `json:"servicios_contratados,omitempty"`
	CreditLimit        *float64  `json:"limite_credito,omitempty"`
	PendingBalance     *float64  `json:"saldo_pendiente,omitempty"`
}
