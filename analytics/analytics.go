// Package analytics computes the dashboard numbers by pulling full entity
// sets from the repositories and reducing them in memory. Volumes here are
// back-office sized; pushing the aggregation into each backend would buy
// nothing and would have to be written three times.
package analytics

import (
	"sort"

	"incargo/models"
	"incargo/repository"
)

type Service struct {
	Vehicles   repository.VehicleRepository
	Clients    repository.ClientRepository
	Services   repository.ServiceRepository
	Quotes     repository.QuoteRepository
	Containers repository.ContainerRepository
}

func NewService(
	vehicles repository.VehicleRepository,
	clients repository.ClientRepository,
	services repository.ServiceRepository,
	quotes repository.QuoteRepository,
	containers repository.ContainerRepository,
) *Service {
	return &Service{
		Vehicles:   vehicles,
		Clients:    clients,
		Services:   services,
		Quotes:     quotes,
		Containers: containers,
	}
}

type DashboardStats struct {
	TotalVehicles       int `json:"totalVehicles"`
	ActiveVehicles      int `json:"activeVehicles"`
	TotalClients        int `json:"totalClients"`
	ActiveClients       int `json:"activeClients"`
	TotalServices       int `json:"totalServices"`
	PendingServices     int `json:"pendingServices"`
	TotalQuotes         int `json:"totalQuotes"`
	PendingQuotes       int `json:"pendingQuotes"`
	TotalContainers     int `json:"totalContainers"`
	ContainersInTransit int `json:"containersInTransit"`
}

func (s *Service) DashboardStats() (*DashboardStats, error) {
	vehicles, err := s.Vehicles.GetAll()
	if err != nil {
		return nil, err
	}
	clients, err := s.Clients.GetAll()
	if err != nil {
		return nil, err
	}
	services, err := s.Services.GetAll()
	if err != nil {
		return nil, err
	}
	quotes, err := s.Quotes.GetAll()
	if err != nil {
		return nil, err
	}
	containers, err := s.Containers.GetAll()
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalVehicles:   len(vehicles),
		TotalClients:    len(clients),
		TotalServices:   len(services),
		TotalQuotes:     len(quotes),
		TotalContainers: len(containers),
	}
	for _, v := range vehicles {
		if v.Status == models.VehicleAvailable || v.Status == models.VehicleEnRoute {
			stats.ActiveVehicles++
		}
	}
	for _, c := range clients {
		if c.Status == models.ClientActive {
			stats.ActiveClients++
		}
	}
	for _, sv := range services {
		if sv.Status == models.ServicePending || sv.Status == models.ServiceInProgress {
			stats.PendingServices++
		}
	}
	for _, q := range quotes {
		if q.Status == models.QuoteSent {
			stats.PendingQuotes++
		}
	}
	for _, c := range containers {
		if c.Status == models.ContainerInTransit || c.Status == models.ContainerAtPort {
			stats.ContainersInTransit++
		}
	}
	return stats, nil
}

type RevenueData struct {
	TotalRevenue        float64           `json:"totalRevenue"`
	ServiceCount        int               `json:"serviceCount"`
	AverageServiceValue float64           `json:"averageServiceValue"`
	Services            []*models.Service `json:"services"`
}

// RevenueData reduces the completed services started in the range.
func (s *Service) RevenueData(startDate, endDate string) (*RevenueData, error) {
	services, err := s.Services.GetByDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	data := &RevenueData{Services: []*models.Service{}}
	for _, sv := range services {
		if sv.Status != models.ServiceCompleted {
			continue
		}
		data.Services = append(data.Services, sv)
		data.TotalRevenue += sv.TotalValue
		data.ServiceCount++
	}
	if data.ServiceCount > 0 {
		data.AverageServiceValue = data.TotalRevenue / float64(data.ServiceCount)
	}
	return data, nil
}

type FleetUtilization struct {
	Vehicle        *models.Vehicle `json:"vehicle"`
	ActiveServices int             `json:"activeServices"`
	Status         string          `json:"status"`
}

func (s *Service) FleetUtilization() ([]*FleetUtilization, error) {
	vehicles, err := s.Vehicles.GetAll()
	if err != nil {
		return nil, err
	}
	active, err := s.Services.GetActive()
	if err != nil {
		return nil, err
	}

	byVehicle := make(map[string]*FleetUtilization, len(vehicles))
	out := make([]*FleetUtilization, 0, len(vehicles))
	for _, v := range vehicles {
		row := &FleetUtilization{Vehicle: v, Status: v.Status}
		byVehicle[v.ID] = row
		out = append(out, row)
	}
	for _, sv := range active {
		if sv.VehicleID == nil {
			continue
		}
		if row, ok := byVehicle[*sv.VehicleID]; ok {
			row.ActiveServices++
		}
	}
	return out, nil
}

type ClientPerformance struct {
	Client            *models.Client `json:"client"`
	TotalServices     int            `json:"totalServices"`
	CompletedServices int            `json:"completedServices"`
	TotalRevenue      float64        `json:"totalRevenue"`
	PendingBalance    float64        `json:"pendingBalance"`
}

// ClientPerformance ranks clients by revenue across all their services.
func (s *Service) ClientPerformance() ([]*ClientPerformance, error) {
	clients, err := s.Clients.GetAll()
	if err != nil {
		return nil, err
	}
	services, err := s.Services.GetAll()
	if err != nil {
		return nil, err
	}

	byClient := make(map[string]*ClientPerformance, len(clients))
	out := make([]*ClientPerformance, 0, len(clients))
	for _, c := range clients {
		row := &ClientPerformance{Client: c, PendingBalance: c.PendingBalance}
		byClient[c.ID] = row
		out = append(out, row)
	}
	for _, sv := range services {
		row, ok := byClient[sv.ClientID]
		if !ok {
			continue
		}
		row.TotalServices++
		row.TotalRevenue += sv.TotalValue
		if sv.Status == models.ServiceCompleted {
			row.CompletedServices++
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalRevenue > out[j].TotalRevenue
	})
	return out, nil
}
