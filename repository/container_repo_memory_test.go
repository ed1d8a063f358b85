package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incargo/models"
)

func seedContainers() *MemoryContainerRepo {
	return NewMemoryContainerRepo([]*models.Container{
		{
			ID: "c1", Number: "MSKU7465123", Type: models.ContainerDry,
			Status: models.ContainerAtPort, EstDelivery: dateIn(3),
			BillOfLading: "BL-2024-089456", Carrier: "Maersk Line", Goods: "Textiles",
		},
		{
			ID: "c2", Number: "TCLU9912004", Type: models.ContainerReefer,
			Status: models.ContainerInTransit, EstDelivery: dateIn(-2),
		},
		{
			ID: "c3", Number: "HLXU5530871", Type: models.ContainerDry,
			Status: models.ContainerDelivered, EstDelivery: dateIn(-5),
		},
	})
}

func TestContainerNearDeliveryExcludesClosedStatuses(t *testing.T) {
	repo := seedContainers()

	list, err := repo.GetNearDelivery(7)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, c := range list {
		assert.NotEqual(t, models.ContainerDelivered, c.Status)
	}
}

func TestContainerOverdue(t *testing.T) {
	repo := seedContainers()

	list, err := repo.GetOverdue()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "c2", list[0].ID)
}

func TestContainerUpdateLocationRecordsTracking(t *testing.T) {
	repo := seedContainers()

	ok, err := repo.UpdateLocation("c1", "Bodega Central Bogotá", "", "operador1")
	require.NoError(t, err)
	require.True(t, ok)

	c, err := repo.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "Bodega Central Bogotá", c.Location)

	events, err := repo.GetTracking("c1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Bodega Central Bogotá", events[0].Location)
	assert.Equal(t, "Ubicación actualizada: Bodega Central Bogotá", events[0].Description)
	assert.Equal(t, "operador1", events[0].User)
}

func TestContainerDeliverDefaultsToToday(t *testing.T) {
	repo := seedContainers()

	ok, err := repo.Deliver("c2", "")
	require.NoError(t, err)
	require.True(t, ok)

	c, err := repo.GetByID("c2")
	require.NoError(t, err)
	assert.Equal(t, models.ContainerDelivered, c.Status)
	require.NotNil(t, c.ActDelivery)
	assert.Equal(t, today(), *c.ActDelivery)
}

func TestContainerSearch(t *testing.T) {
	repo := seedContainers()

	byBL, err := repo.Search("089456")
	require.NoError(t, err)
	require.Len(t, byBL, 1)
	assert.Equal(t, "c1", byBL[0].ID)

	byCarrier, err := repo.Search("maersk")
	require.NoError(t, err)
	require.Len(t, byCarrier, 1)

	none, err := repo.Search("no-such-term")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestContainerReadsReturnDetachedRows(t *testing.T) {
	repo := seedContainers()

	c, err := repo.GetByNumber("MSKU7465123")
	require.NoError(t, err)
	c.Status = "garbage"
	c.Location = "nowhere"

	stored, err := repo.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, models.ContainerAtPort, stored.Status)
	assert.NotEqual(t, "nowhere", stored.Location)
}

func TestContainerCreateStartsInTransit(t *testing.T) {
	repo := NewMemoryContainerRepo(nil)

	c, err := repo.Create(&models.CreateContainer{Number: "OOLU2209915", Type: models.ContainerDry, ClientID: "1"})
	require.NoError(t, err)
	require.NotEmpty(t, c.ID)
	assert.Equal(t, models.ContainerInTransit, c.Status)
}
