package models

import "time"

// Vehicle statuses
const (
	VehicleAvailable    = "disponible"
	VehicleEnRoute      = "en_ruta"
	VehicleMaintenance  = "mantenimiento"
	VehicleOutOfService = "fuera_servicio"
)

type Vehicle struct {
	ID           string    `json:"id" db:"id" bson:"_id"`
	Plate        string    `json:"placa" db:"placa" bson:"placa"`
	Type         string    `json:"tipo" db:"tipo" bson:"tipo"`
	Model        string    `json:"modelo" db:"modelo" bson:"modelo"`
	Make         string    `json:"marca" db:"marca" bson:"marca"`
	Year         int       `json:"año" db:"anio" bson:"anio"`
	Driver       string    `json:"conductor" db:"conductor" bson:"conductor"`
	Status       string    `json:"estado" db:"estado" bson:"estado"`
	SoatExpiry   string    `json:"soat_vence" db:"soat_vence" bson:"soat_vence"`
	TechExpiry   string    `json:"tecno_vence" db:"tecno_vence" bson:"tecno_vence"`
	Location     string    `json:"ubicacion_actual" db:"ubicacion_actual" bson:"ubicacion_actual"`
	Kilometers   int       `json:"kilometraje" db:"kilometraje" bson:"kilometraje"`
	CapacityTons float64   `json:"capacidad_toneladas" db:"capacidad_toneladas" bson:"capacidad_toneladas"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at" bson:"updated_at"`
}

type CreateVehicle struct {
	Plate        string  `json:"placa"`
	Type         string  `json:"tipo"`
	Model        string  `json:"modelo"`
	Make         string  `json:"marca"`
	Year         int     `json:"año"`
	Driver       string  `json:"conductor"`
	Status       string  `json:"estado"`
	SoatExpiry   string  `json:"soat_vence"`
	TechExpiry   string  `json:"tecno_vence"`
	Location     string  `json:"ubicacion_actual"`
	Kilometers   int     `json:"kilometraje"`
	CapacityTons float64 `json:"capacidad_toneladas"`
}

// UpdateVehicle is a sparse patch: nil fields are left unchanged.
type UpdateVehicle struct {
	ID           string   `json:"id"`
	Plate        *string  `json:"placa,omitempty"`
	Type         *string  `json:"tipo,omitempty"`
	Model        *string  `json:"modelo,omitempty"`
	Make         *string  `json:"marca,omitempty"`
	Year         *int     `json:"año,omitempty"`
	Driver       *string  `json:"conductor,omitempty"`
	Status       *string  `json:"estado,omitempty"`
	SoatExpiry   *string  `json:"soat_vence,omitempty"`
	TechExpiry   *string  `json:"tecno_vence,omitempty"`
	Location     *string  `json:"ubicacion_actual,omitempty"`
	Kilometers   *int     `json:"kilometraje,omitempty"`
	CapacityTons *float64 `json:"capacidad_toneladas,omitempty"`
}
