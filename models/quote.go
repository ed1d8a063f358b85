package models

import "time"

// Quote statuses. Draft and sent are the only states a quote can leave;
// approved, rejected and expired are terminal.
const (
	QuoteDraft    = "borrador"
	QuoteSent     = "enviada"
	QuoteApproved = "aprobada"
	QuoteRejected = "rechazada"
	QuoteExpired  = "vencida"
)

type Quote struct {
	ID            string     `json:"id" db:"id" bson:"_id"`
	ClientID      string     `json:"cliente_id" db:"cliente_id" bson:"cliente_id"`
	Number        string     `json:"numero_cotizacion" db:"numero_cotizacion" bson:"numero_cotizacion"`
	ServiceType   string     `json:"tipo_servicio" db:"tipo_servicio" bson:"tipo_servicio"`
	Description   string     `json:"descripcion" db:"descripcion" bson:"descripcion"`
	Origin        string     `json:"origen" db:"origen" bson:"origen"`
	Destination   string     `json:"destino" db:"destino" bson:"destino"`
	RequestedAt   string     `json:"fecha_solicitud" db:"fecha_solicitud" bson:"fecha_solicitud"`
	ValidUntil    string     `json:"fecha_vencimiento" db:"fecha_vencimiento" bson:"fecha_vencimiento"`
	Status        string     `json:"estado" db:"estado" bson:"estado"`
	CargoType     string     `json:"tipo_carga" db:"tipo_carga" bson:"tipo_carga"`
	EstWeight     float64    `json:"peso_estimado" db:"peso_estimado" bson:"peso_estimado"`
	EstVolume     float64    `json:"volumen_estimado" db:"volumen_estimado" bson:"volumen_estimado"`
	EstValue      float64    `json:"valor_estimado" db:"valor_estimado" bson:"valor_estimado"`
	DiscountPct   float64    `json:"descuento_porcentaje" db:"descuento_porcentaje" bson:"descuento_porcentaje"`
	FinalValue    float64    `json:"valor_final" db:"valor_final" bson:"valor_final"`
	Notes         string     `json:"observaciones" db:"observaciones" bson:"observaciones"`
	Terms         string     `json:"terminos_condiciones" db:"terminos_condiciones" bson:"terminos_condiciones"`
	PDFPath       *string    `json:"pdf_path,omitempty" db:"pdf_path" bson:"pdf_path,omitempty"`
	PDFCreatedAt  *time.Time `json:"pdf_created_at,omitempty" db:"pdf_created_at" bson:"pdf_created_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at" bson:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at" bson:"updated_at"`

	Client *ClientRef `json:"cliente,omitempty" bson:"-"`
}

// FinalValueFor derives the discounted price. It is computed on create and
// whenever an update touches the estimate or the discount, never at read time.
func FinalValueFor(estValue, discountPct float64) float64 {
	return estValue * (1 - discountPct/100)
}

type CreateQuote struct {
	ClientID    string  `json:"cliente_id"`
	ServiceType string  `json:"tipo_servicio"`
	Description string  `json:"descripcion"`
	Origin      string  `json:"origen"`
	Destination string  `json:"destino"`
	ValidUntil  string  `json:"fecha_vencimiento"`
	CargoType   string  `json:"tipo_carga"`
	EstWeight   float64 `json:"peso_estimado"`
	EstVolume   float64 `json:"volumen_estimado"`
	EstValue    float64 `json:"valor_estimado"`
	DiscountPct float64 `json:"descuento_porcentaje"`
	Notes       string  `json:"observaciones"`
	Terms       string  `json:"terminos_condiciones"`
}

type UpdateQuote struct {
	ID          string   `json:"id"`
	ClientID    *string  `json:"cliente_id,omitempty"`
	ServiceType *string  `json:"tipo_servicio,omitempty"`
	Description *string  `json:"descripcion,omitempty"`
	Origin      *string  `json:"origen,omitempty"`
	Destination *string  `json:"destino,omitempty"`
	ValidUntil  *string  `json:"fecha_vencimiento,omitempty"`
	Status      *string  `json:"estado,omitempty"`
	CargoType   *string  `json:"tipo_carga,omitempty"`
	EstWeight   *float64 `json:"peso_estimado,omitempty"`
	EstVolume   *float64 `json:"volumen_estimado,omitempty"`
	EstValue    *float64 `json:"valor_estimado,omitempty"`
	DiscountPct *float64 `json:"descuento_porcentaje,omitempty"`
	Notes       *string  `json:"observaciones,omitempty"`
	Terms       *string  `json:"terminos_condiciones,omitempty"`
}
