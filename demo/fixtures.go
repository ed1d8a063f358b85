// Package demo seeds the in-memory backend so the dashboard works without
// a database configured.
package demo

import (
	"time"

	"incargo/models"
)

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func ptrFloat(v float64) *float64 { return &v }

func ptrString(v string) *string { return &v }

// Vehicles returns the seed fleet. Exactly two are disponible.
func Vehicles() []*models.Vehicle {
	return []*models.Vehicle{
		{
			ID: "1", Plate: "WQR456", Type: "Turbo", Model: "FH16", Make: "Volvo", Year: 2022,
			Driver: "Carlos Rodríguez", Status: models.VehicleAvailable,
			SoatExpiry: "2024-12-15", TechExpiry: "2024-11-30",
			Location: "Terminal Principal Bogotá", Kilometers: 125000, CapacityTons: 8,
			CreatedAt: ts("2024-01-15T10:00:00Z"), UpdatedAt: ts("2024-08-29T10:00:00Z"),
		},
		{
			ID: "2", Plate: "ABC123", Type: "Dobletroque", Model: "Actros", Make: "Mercedes", Year: 2021,
			Driver: "Miguel Torres", Status: models.VehicleEnRoute,
			SoatExpiry: "2025-03-20", TechExpiry: "2025-01-15",
			Location: "Carretera Bogotá-Medellín Km 45", Kilometers: 89000, CapacityTons: 28,
			CreatedAt: ts("2024-02-10T10:00:00Z"), UpdatedAt: ts("2024-08-29T09:30:00Z"),
		},
		{
			ID: "3", Plate: "XYZ789", Type: "Mini-mula 3 Ejes", Model: "Constellation", Make: "Volkswagen", Year: 2020,
			Driver: "Ana López", Status: models.VehicleMaintenance,
			SoatExpiry: "2024-10-10", TechExpiry: "2024-09-25",
			Location: "Taller Mantenimiento", Kilometers: 156000, CapacityTons: 18,
			CreatedAt: ts("2024-03-05T10:00:00Z"), UpdatedAt: ts("2024-08-28T16:45:00Z"),
		},
		{
			ID: "4", Plate: "DEF456", Type: "Mula 2 Ejes", Model: "FMX", Make: "Volvo", Year: 2023,
			Driver: "Pedro Sánchez", Status: models.VehicleAvailable,
			SoatExpiry: "2025-01-30", TechExpiry: "2024-12-05",
			Location: "Bodega Central Medellín", Kilometers: 45000, CapacityTons: 24,
			CreatedAt: ts("2024-04-12T10:00:00Z"), UpdatedAt: ts("2024-08-29T08:15:00Z"),
		},
		{
			ID: "5", Plate: "GHI789", Type: "Refrigerado", Model: "Axor", Make: "Mercedes", Year: 2022,
			Driver: "Laura Martínez", Status: models.VehicleEnRoute,
			SoatExpiry: "2025-02-14", TechExpiry: "2025-01-20",
			Location: "Puerto Buenaventura", Kilometers: 67000, CapacityTons: 15,
			CreatedAt: ts("2024-05-20T10:00:00Z"), UpdatedAt: ts("2024-08-29T07:20:00Z"),
		},
	}
}

func Clients() []*models.Client {
	return []*models.Client{
		{
			ID: "1", CompanyName: "Distribuidora Nacional S.A.S.", NIT: "900123456-7",
			Contact: "María Fernández", Phone: "+57 310 123 4567", Email: "m.fernandez@distribuidora.com",
			Address: "Carrera 15 # 93-07", City: "Bogotá",
			Type: models.ClientCorporate, Status: models.ClientActive, RegisteredAt: "2024-01-15",
			ContractedServices: []string{"Transporte de Carga", "Almacenamiento"},
			CreditLimit:        50000000, PendingBalance: 2500000,
			CreatedAt: ts("2024-01-15T10:00:00Z"), UpdatedAt: ts("2024-08-29T10:00:00Z"),
		},
		{
			ID: "2", CompanyName: "Comercializadora del Valle Ltda.", NIT: "800987654-3",
			Contact: "Juan Carlos Méndez", Phone: "+57 320 987 6543", Email: "jc.mendez@comvalle.com",
			Address: "Calle 70 # 23-45", City: "Cali",
			Type: models.ClientSME, Status: models.ClientActive, RegisteredAt: "2024-02-20",
			ContractedServices: []string{"Transporte de Carga"},
			CreditLimit:        20000000, PendingBalance: 0,
			CreatedAt: ts("2024-02-20T10:00:00Z"), UpdatedAt: ts("2024-08-28T15:30:00Z"),
		},
		{
			ID: "3", CompanyName: "Industrias Antioqueñas S.A.", NIT: "890456789-1",
			Contact: "Ana Sofía Restrepo", Phone: "+57 315 456 7890", Email: "a.restrepo@industriasant.com",
			Address: "Carrera 50 # 8-20", City: "Medellín",
			Type: models.ClientCorporate, Status: models.ClientActive, RegisteredAt: "2024-03-10",
			ContractedServices: []string{"Transporte de Carga", "Proyectos Logísticos", "Alquiler de Vehículos"},
			CreditLimit:        100000000, PendingBalance: 15750000,
			CreatedAt: ts("2024-03-10T10:00:00Z"), UpdatedAt: ts("2024-08-29T09:45:00Z"),
		},
	}
}

func Services() []*models.Service {
	return []*models.Service{
		{
			ID: "1", ClientID: "1", Type: models.ServiceCargo,
			Description: "Transporte de mercancía seca Bogotá - Medellín",
			Origin:      "Bogotá D.C.", Destination: "Medellín, Antioquia",
			StartDate: "2024-08-28", DueDate: "2024-08-29",
			Status:    models.ServiceInProgress,
			VehicleID: ptrString("2"), Driver: "Miguel Torres",
			CargoType: "Mercancía seca", WeightKG: 15000, TotalValue: 2500000,
			Notes:     "Entrega en horario de oficina",
			CreatedAt: ts("2024-08-28T08:00:00Z"), UpdatedAt: ts("2024-08-29T10:00:00Z"),
		},
		{
			ID: "2", ClientID: "3", Type: models.ServiceCargo,
			Description: "Transporte de materiales industriales",
			Origin:      "Medellín, Antioquia", Destination: "Cali, Valle del Cauca",
			StartDate: "2024-08-25", DueDate: "2024-08-26",
			CompletedAt: ptrString("2024-08-26T16:30:00Z"),
			Status:      models.ServiceCompleted,
			VehicleID:   ptrString("4"), Driver: "Pedro Sánchez",
			CargoType: "Materiales industriales", WeightKG: 22000, TotalValue: 3200000,
			Notes:     "Entrega exitosa sin novedad",
			CreatedAt: ts("2024-08-25T06:00:00Z"), UpdatedAt: ts("2024-08-26T16:30:00Z"),
		},
	}
}

func Quotes() []*models.Quote {
	return []*models.Quote{
		{
			ID: "1", ClientID: "2", Number: "COT-202408-0001", ServiceType: models.ServiceCargo,
			Description: "Transporte de productos alimenticios refrigerados",
			Origin:      "Cali, Valle del Cauca", Destination: "Bogotá D.C.",
			RequestedAt: "2024-08-27", ValidUntil: "2024-09-03",
			Status:    models.QuoteSent,
			CargoType: "Productos refrigerados",
			EstWeight: 12000, EstVolume: 45,
			EstValue: 2800000, DiscountPct: 5, FinalValue: 2660000,
			Notes:     "Requiere vehículo refrigerado, temperatura entre 2-8°C",
			Terms:     "Pago a 30 días, incluye seguro de mercancía",
			CreatedAt: ts("2024-08-27T10:00:00Z"), UpdatedAt: ts("2024-08-27T10:00:00Z"),
		},
	}
}

func Containers() []*models.Container {
	return []*models.Container{
		{
			ID: "1", Number: "MSKU7465123", Type: models.ContainerDry, Size: "40ft",
			ClientID: "1", Origin: "Puerto de Buenaventura", Destination: "Bogotá D.C.",
			ArrivalDate: "2024-08-25", EstDelivery: "2024-08-30",
			Status:   models.ContainerAtPort,
			Location: "Puerto Buenaventura - Zona A",
			GrossWeight: 18500, NetWeight: 16200,
			Goods:        "Productos textiles importados",
			Notes:        "Contenedor en perfecto estado",
			BillOfLading: "BL-2024-089456", Carrier: "Maersk Line",
			Vessel: "Maersk Sealand", Voyage: "MS-2024-08-15",
			CreatedAt: ts("2024-08-25T14:00:00Z"), UpdatedAt: ts("2024-08-29T10:00:00Z"),
		},
	}
}

// Company returns the letterhead placed on quote documents.
func Company() *models.CompanyProfile {
	return &models.CompanyProfile{
		ID:      1,
		Name:    "InCargo Logística S.A.S.",
		NIT:     "901234567-8",
		Address: "Calle 26 # 68-35, Oficina 402",
		City:    "Bogotá D.C.",
		Email:   "contacto@incargo.co",
		Footnote: "Gracias por confiar en nosotros.",
		Phones: []models.PhoneEntry{
			{Number: "+57 601 745 8890", Label: "Oficina"},
			{Number: "+57 310 555 0147", Label: "Operaciones"},
		},
		CreatedAt: ts("2024-01-02T08:00:00Z"),
	}
}
