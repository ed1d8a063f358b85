package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"incargo/demo"
	"incargo/models"
	"incargo/repository"
)

func seededService(t *testing.T) *Service {
	t.Helper()
	return NewService(
		repository.NewMemoryVehicleRepo(demo.Vehicles()),
		repository.NewMemoryClientRepo(demo.Clients()),
		repository.NewMemoryServiceRepo(demo.Services()),
		repository.NewMemoryQuoteRepo(demo.Quotes()),
		repository.NewMemoryContainerRepo(demo.Containers()),
	)
}

func TestDashboardStatsOnSeedData(t *testing.T) {
	stats, err := seededService(t).DashboardStats()
	require.NoError(t, err)

	require.Equal(t, 5, stats.TotalVehicles)
	require.Equal(t, 4, stats.ActiveVehicles, "disponible and en_ruta count as active")
	require.Equal(t, 3, stats.TotalClients)
	require.Equal(t, 3, stats.ActiveClients)
	require.Equal(t, 2, stats.TotalServices)
	require.Equal(t, 1, stats.PendingServices)
	require.Equal(t, 1, stats.TotalQuotes)
	require.Equal(t, 1, stats.PendingQuotes)
	require.Equal(t, 1, stats.TotalContainers)
	require.Equal(t, 1, stats.ContainersInTransit, "en_puerto counts as in transit")
}

func TestRevenueDataCountsOnlyCompleted(t *testing.T) {
	data, err := seededService(t).RevenueData("2024-08-01", "2024-08-31")
	require.NoError(t, err)

	require.Equal(t, 1, data.ServiceCount)
	require.InDelta(t, 3200000, data.TotalRevenue, 0.01)
	require.InDelta(t, 3200000, data.AverageServiceValue, 0.01)
	require.Len(t, data.Services, 1)
}

func TestRevenueDataEmptyRange(t *testing.T) {
	data, err := seededService(t).RevenueData("2023-01-01", "2023-12-31")
	require.NoError(t, err)

	require.Equal(t, 0, data.ServiceCount)
	require.Zero(t, data.TotalRevenue)
	require.Zero(t, data.AverageServiceValue)
}

func TestFleetUtilization(t *testing.T) {
	rows, err := seededService(t).FleetUtilization()
	require.NoError(t, err)
	require.Len(t, rows, 5)

	counts := map[string]int{}
	for _, row := range rows {
		counts[row.Vehicle.ID] = row.ActiveServices
	}
	require.Equal(t, 1, counts["2"], "the en_proceso service is assigned to vehicle 2")
	require.Equal(t, 0, counts["4"], "completed services do not count")
}

func TestClientPerformanceSortedByRevenue(t *testing.T) {
	rows, err := seededService(t).ClientPerformance()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, "3", rows[0].Client.ID)
	require.InDelta(t, 3200000, rows[0].TotalRevenue, 0.01)
	require.Equal(t, 1, rows[0].CompletedServices)

	require.Equal(t, "1", rows[1].Client.ID)
	require.InDelta(t, 2500000, rows[1].TotalRevenue, 0.01)
	require.Equal(t, 0, rows[1].CompletedServices)

	require.Equal(t, "2", rows[2].Client.ID)
	require.Zero(t, rows[2].TotalRevenue)
	require.InDelta(t, 0, rows[2].PendingBalance, 0.01)
}

// Creating a service and completing it must show up in the per-client
// numbers without restarting anything.
func TestCompletedServiceMovesClientPerformance(t *testing.T) {
	svc := seededService(t)

	created, err := svc.Services.Create(&models.CreateService{
		ClientID:   "2",
		Type:       models.ServiceCargo,
		StartDate:  time.Now().UTC().Format("2006-01-02"),
		TotalValue: 9000000,
	})
	require.NoError(t, err)

	ok, err := svc.Services.UpdateStatus(created.ID, models.ServiceCompleted)
	require.NoError(t, err)
	require.True(t, ok)

	rows, err := svc.ClientPerformance()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, "2", rows[0].Client.ID, "the new revenue leader sorts first")
	require.InDelta(t, 9000000, rows[0].TotalRevenue, 0.01)
	require.Equal(t, 1, rows[0].CompletedServices)
}
