package models

import "time"

// Container types, sizes and statuses
const (
	ContainerDry      = "dry"
	ContainerReefer   = "reefer"
	ContainerOpenTop  = "open_top"
	ContainerFlatRack = "flat_rack"
	ContainerTank     = "tank"

	ContainerInTransit   = "en_transito"
	ContainerAtPort      = "en_puerto"
	ContainerInWarehouse = "en_bodega"
	ContainerDelivered   = "entregado"
	ContainerReturned    = "devuelto"
)

type Container struct {
	ID            string     `json:"id" db:"id" bson:"_id"`
	Number        string     `json:"numero_contenedor" db:"numero_contenedor" bson:"numero_contenedor"`
	Type          string     `json:"tipo" db:"tipo" bson:"tipo"`
	Size          string     `json:"tamaño" db:"tamano" bson:"tamano"`
	ClientID      string     `json:"cliente_id" db:"cliente_id" bson:"cliente_id"`
	Origin        string     `json:"origen" db:"origen" bson:"origen"`
	Destination   string     `json:"destino" db:"destino" bson:"destino"`
	ArrivalDate   string     `json:"fecha_llegada" db:"fecha_llegada" bson:"fecha_llegada"`
	EstDelivery   string     `json:"fecha_entrega_estimada" db:"fecha_entrega_estimada" bson:"fecha_entrega_estimada"`
	ActDelivery   *string    `json:"fecha_entrega_real,omitempty" db:"fecha_entrega_real" bson:"fecha_entrega_real,omitempty"`
	Status        string     `json:"estado" db:"estado" bson:"estado"`
	Location      string     `json:"ubicacion_actual" db:"ubicacion_actual" bson:"ubicacion_actual"`
	CurrentTemp   *float64   `json:"temperatura_actual,omitempty" db:"temperatura_actual" bson:"temperatura_actual,omitempty"`
	TargetTemp    *float64   `json:"temperatura_objetivo,omitempty" db:"temperatura_objetivo" bson:"temperatura_objetivo,omitempty"`
	GrossWeight   float64    `json:"peso_bruto" db:"peso_bruto" bson:"peso_bruto"`
	NetWeight     float64    `json:"peso_neto" db:"peso_neto" bson:"peso_neto"`
	Goods         string     `json:"mercancia" db:"mercancia" bson:"mercancia"`
	Notes         string     `json:"observaciones" db:"observaciones" bson:"observaciones"`
	BillOfLading  string     `json:"numero_bl" db:"numero_bl" bson:"numero_bl"`
	Carrier       string     `json:"naviera" db:"naviera" bson:"naviera"`
	Vessel        string     `json:"buque" db:"buque" bson:"buque"`
	Voyage        string     `json:"viaje" db:"viaje" bson:"viaje"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at" bson:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at" bson:"updated_at"`

	Client *ClientRef `json:"cliente,omitempty" bson:"-"`
}

type CreateContainer struct {
	Number      string   `json:"numero_contenedor"`
	Type        string   `json:"tipo"`
	Size        string   `json:"tamaño"`
	ClientID    string   `json:"cliente_id"`
	Origin      string   `json:"origen"`
	Destination string   `json:"destino"`
	ArrivalDate string   `json:"fecha_llegada"`
	EstDelivery string   `json:"fecha_entrega_estimada"`
	Location    string   `json:"ubicacion_actual"`
	TargetTemp  *float64 `json:"temperatura_objetivo,omitempty"`
	GrossWeight float64  `json:"peso_bruto"`
	NetWeight   float64  `json:"peso_neto"`
	Goods       string   `json:"mercancia"`
	Notes       string   `json:"observaciones"`
	BillOfLading string  `json:"numero_bl"`
	Carrier     string   `json:"naviera"`
	Vessel      string   `json:"buque"`
	Voyage      string   `json:"viaje"`
}

type UpdateContainer struct {
	ID          string   `json:"id"`
	Number      *string  `json:"numero_contenedor,omitempty"`
	Type        *string  `json:"tipo,omitempty"`
	Size        *string  `json:"tamaño,omitempty"`
	ClientID    *string  `json:"cliente_id,omitempty"`
	Origin      *string  `json:"origen,omitempty"`
	Destination *string  `json:"destino,omitempty"`
	ArrivalDate *string  `json:"fecha_llegada,omitempty"`
	EstDelivery *string  `json:"fecha_entrega_estimada,omitempty"`
	ActDelivery *string  `json:"fecha_entrega_real,omitempty"`
	Status      *string  `json:"estado,omitempty"`
	Location    *string  `json:"ubicacion_actual,omitempty"`
	CurrentTemp *float64 `json:"temperatura_actual,omitempty"`
	TargetTemp  *float64 `json:"temperatura_objetivo,omitempty"`
	GrossWeight *float64 `json:"peso_bruto,omitempty"`
	NetWeight   *float64 `json:"peso_neto,omitempty"`
	Goods       *string  `json:"mercancia,omitempty"`
	Notes       *string  `json:"observaciones,omitempty"`
	BillOfLading *string `json:"numero_bl,omitempty"`
	Carrier     *string  `json:"naviera,omitempty"`
	Vessel      *string  `json:"buque,omitempty"`
	Voyage      *string  `json:"viaje,omitempty"`
}

// ContainerTracking is one event in a container's movement history.
type ContainerTracking struct {
	ID          string    `json:"id" db:"id" bson:"_id"`
	ContainerID string    `json:"contenedor_id" db:"contenedor_id" bson:"contenedor_id"`
	EventDate   string    `json:"fecha_evento" db:"fecha_evento" bson:"fecha_evento"`
	Location    string    `json:"ubicacion" db:"ubicacion" bson:"ubicacion"`
	Description string    `json:"descripcion" db:"descripcion" bson:"descripcion"`
	Temperature *float64  `json:"temperatura,omitempty" db:"temperatura" bson:"temperatura,omitempty"`
	User        string    `json:"usuario" db:"usuario" bson:"usuario"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" bson:"created_at"`
}
