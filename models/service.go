package models

import "time"

// Service types and statuses
const (
	ServiceCargo     = "transporte_carga"
	ServicePassenger = "transporte_pasajeros"
	ServiceStorage   = "almacenamiento"
	ServiceRental    = "alquiler_vehiculos"
	ServiceProject   = "proyectos_logisticos"

	ServicePending    = "pendiente"
	ServiceInProgress = "en_proceso"
	ServiceCompleted  = "completado"
	ServiceCancelled  = "cancelado"
)

type Service struct {
	ID          string    `json:"id" db:"id" bson:"_id"`
	ClientID    string    `json:"cliente_id" db:"cliente_id" bson:"cliente_id"`
	Type        string    `json:"tipo_servicio" db:"tipo_servicio" bson:"tipo_servicio"`
	Description string    `json:"descripcion" db:"descripcion" bson:"descripcion"`
	Origin      string    `json:"origen" db:"origen" bson:"origen"`
	Destination string    `json:"destino" db:"destino" bson:"destino"`
	StartDate   string    `json:"fecha_inicio" db:"fecha_inicio" bson:"fecha_inicio"`
	DueDate     string    `json:"fecha_estimada" db:"fecha_estimada" bson:"fecha_estimada"`
	CompletedAt *string   `json:"fecha_completado,omitempty" db:"fecha_completado" bson:"fecha_completado,omitempty"`
	Status      string    `json:"estado" db:"estado" bson:"estado"`
	VehicleID   *string   `json:"vehiculo_id,omitempty" db:"vehiculo_id" bson:"vehiculo_id,omitempty"`
	Driver      string    `json:"conductor" db:"conductor" bson:"conductor"`
	CargoType   string    `json:"carga_tipo" db:"carga_tipo" bson:"carga_tipo"`
	WeightKG    float64   `json:"peso_kg" db:"peso_kg" bson:"peso_kg"`
	TotalValue  float64   `json:"valor_total" db:"valor_total" bson:"valor_total"`
	Notes       string    `json:"observaciones" db:"observaciones" bson:"observaciones"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" bson:"updated_at"`

	// Denormalized relations for responses
	Client  *ClientRef  `json:"cliente,omitempty" bson:"-"`
	Vehicle *VehicleRef `json:"vehiculo,omitempty" bson:"-"`
}

// VehicleRef is the denormalized slice of a vehicle embedded in responses.
type VehicleRef struct {
	Plate string `json:"placa" bson:"placa"`
	Type  string `json:"tipo" bson:"tipo"`
}

type CreateService struct {
	ClientID    string  `json:"cliente_id"`
	Type        string  `json:"tipo_servicio"`
	Description string  `json:"descripcion"`
	Origin      string  `json:"origen"`
	Destination string  `json:"destino"`
	StartDate   string  `json:"fecha_inicio"`
	DueDate     string  `json:"fecha_estimada"`
	VehicleID   *string `json:"vehiculo_id,omitempty"`
	Driver      string  `json:"conductor"`
	CargoType   string  `json:"carga_tipo"`
	WeightKG    float64 `json:"peso_kg"`
	TotalValue  float64 `json:"valor_total"`
	Notes       string  `json:"observaciones"`
}

type UpdateService struct {
	ID          string   `json:"id"`
	ClientID    *string  `json:"cliente_id,omitempty"`
	Type        *string  `json:"tipo_servicio,omitempty"`
	Description *string  `json:"descripcion,omitempty"`
	Origin      *string  `json:"origen,omitempty"`
	Destination *string  `json:"destino,omitempty"`
	StartDate   *string  `json:"fecha_inicio,omitempty"`
	DueDate     *string  `json:"fecha_estimada,omitempty"`
	CompletedAt *string  `json:"fecha_completado,omitempty"`
	Status      *string  `json:"estado,omitempty"`
	VehicleID   *string  `json:"vehiculo_id,omitempty"`
	Driver      *string  `json:"conductor,omitempty"`
	CargoType   *string  `json:"carga_tipo,omitempty"`
	WeightKG    *float64 `json:"peso_kg,omitempty"`
	TotalValue  *float64 `json:"valor_total,omitempty"`
	Notes       *string  `json:"observaciones,omitempty"`
}
