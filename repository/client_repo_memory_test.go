package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incargo/demo"
)

func TestClientSearchMatchesNameContactAndNIT(t *testing.T) {
	repo := NewMemoryClientRepo(demo.Clients())

	byName, err := repo.Search("valle")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Comercializadora del Valle Ltda.", byName[0].CompanyName)

	byContact, err := repo.Search("restrepo")
	require.NoError(t, err)
	require.Len(t, byContact, 1)
	assert.Equal(t, "3", byContact[0].ID)

	byNIT, err := repo.Search("900123456")
	require.NoError(t, err)
	require.Len(t, byNIT, 1)
	assert.Equal(t, "1", byNIT[0].ID)
}

func TestClientAddContractedServiceIsIdempotent(t *testing.T) {
	repo := NewMemoryClientRepo(demo.Clients())

	added, err := repo.AddContractedService("2", "Almacenamiento")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.AddContractedService("2", "Almacenamiento")
	require.NoError(t, err)
	assert.False(t, added)

	c, err := repo.GetByID("2")
	require.NoError(t, err)
	assert.Equal(t, []string{"Transporte de Carga", "Almacenamiento"}, c.ContractedServices)
}

func TestClientPendingBalanceSortedDescending(t *testing.T) {
	repo := NewMemoryClientRepo(demo.Clients())

	list, err := repo.GetWithPendingBalance()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "3", list[0].ID)
	assert.Equal(t, "1", list[1].ID)
}

func TestClientReadsReturnDetachedRows(t *testing.T) {
	repo := NewMemoryClientRepo(demo.Clients())

	c, err := repo.GetByID("1")
	require.NoError(t, err)

	// mutating the returned slice must not leak into the store
	c.ContractedServices[0] = "garbage"
	c.ContractedServices = append(c.ContractedServices, "extra")
	c.PendingBalance = -1

	stored, err := repo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Transporte de Carga", "Almacenamiento"}, stored.ContractedServices)
	assert.Equal(t, 2500000.0, stored.PendingBalance)
}

func TestClientUpdateBalance(t *testing.T) {
	repo := NewMemoryClientRepo(demo.Clients())

	ok, err := repo.UpdateBalance("2", 750000)
	require.NoError(t, err)
	require.True(t, ok)

	c, err := repo.GetByID("2")
	require.NoError(t, err)
	assert.Equal(t, 750000.0, c.PendingBalance)
}
