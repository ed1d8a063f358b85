package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incargo/demo"
	"incargo/models"
)

func TestVehicleStatusFilterOnSeedFleet(t *testing.T) {
	repo := NewMemoryVehicleRepo(demo.Vehicles())

	available, err := repo.GetByStatus(models.VehicleAvailable)
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "WQR456", available[0].Plate)
	assert.Equal(t, "DEF456", available[1].Plate)
}

func TestVehicleSparseUpdate(t *testing.T) {
	repo := NewMemoryVehicleRepo(demo.Vehicles())

	status := models.VehicleMaintenance
	v, err := repo.Update(&models.UpdateVehicle{ID: "1", Status: &status})
	require.NoError(t, err)
	require.NotNil(t, v)

	assert.Equal(t, models.VehicleMaintenance, v.Status)
	// untouched fields survive the patch
	assert.Equal(t, "WQR456", v.Plate)
	assert.Equal(t, "Carlos Rodríguez", v.Driver)
	assert.Equal(t, 125000, v.Kilometers)
}

func TestVehicleUpdateMissingReturnsNil(t *testing.T) {
	repo := NewMemoryVehicleRepo(nil)

	plate := "ZZZ000"
	v, err := repo.Update(&models.UpdateVehicle{ID: "nope", Plate: &plate})
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestVehicleDeleteMissingReturnsFalse(t *testing.T) {
	repo := NewMemoryVehicleRepo(demo.Vehicles())

	ok, err := repo.Delete("does-not-exist")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Delete("3")
	require.NoError(t, err)
	assert.True(t, ok)

	v, err := repo.GetByID("3")
	require.NoError(t, err)
	assert.Nil(t, v)
}

// Rows handed out by the read paths must be detached from the store, so a
// caller encoding them is not racing a concurrent update of the same row.
func TestVehicleReadsReturnDetachedRows(t *testing.T) {
	repo := NewMemoryVehicleRepo(demo.Vehicles())

	list, err := repo.GetAll()
	require.NoError(t, err)
	list[0].Plate = "HACKED"
	list[0].Kilometers = -1

	fetched, err := repo.GetByID(list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "WQR456", fetched.Plate)
	assert.Equal(t, 125000, fetched.Kilometers)

	fetched.Status = "garbage"
	again, err := repo.GetByID(fetched.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VehicleAvailable, again.Status)
}

func TestVehicleCreateDefaultsToAvailable(t *testing.T) {
	repo := NewMemoryVehicleRepo(nil)

	v, err := repo.Create(&models.CreateVehicle{Plate: "JKL012", Type: "Turbo"})
	require.NoError(t, err)
	require.NotEmpty(t, v.ID)
	assert.Equal(t, models.VehicleAvailable, v.Status)
}
