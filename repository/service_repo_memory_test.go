package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incargo/demo"
	"incargo/models"
)

func TestServiceCompleteStampsCompletionDate(t *testing.T) {
	repo := NewMemoryServiceRepo(nil)

	s, err := repo.Create(&models.CreateService{
		ClientID:   "1",
		Type:       models.ServiceCargo,
		StartDate:  today(),
		DueDate:    dateIn(2),
		TotalValue: 1800000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ServicePending, s.Status)
	assert.Nil(t, s.CompletedAt)

	ok, err := repo.UpdateStatus(s.ID, models.ServiceCompleted)
	require.NoError(t, err)
	require.True(t, ok)

	done, err := repo.GetByID(s.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ServiceCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)
	_, parseErr := time.Parse(time.RFC3339, *done.CompletedAt)
	assert.NoError(t, parseErr)
}

func TestServiceCompletionFeedsRevenue(t *testing.T) {
	repo := NewMemoryServiceRepo(nil)

	s, err := repo.Create(&models.CreateService{
		ClientID:   "2",
		Type:       models.ServiceCargo,
		StartDate:  today(),
		DueDate:    dateIn(1),
		TotalValue: 4500000,
	})
	require.NoError(t, err)

	// still pendiente, contributes nothing
	total, err := repo.RevenueByPeriod(today(), today())
	require.NoError(t, err)
	assert.Zero(t, total)

	ok, err := repo.UpdateStatus(s.ID, models.ServiceCompleted)
	require.NoError(t, err)
	require.True(t, ok)

	total, err = repo.RevenueByPeriod(today(), today())
	require.NoError(t, err)
	assert.InDelta(t, 4500000, total, 0.01)
}

func TestServiceCancelStoresReason(t *testing.T) {
	repo := NewMemoryServiceRepo(demo.Services())

	ok, err := repo.Cancel("1", "Cliente canceló el despacho")
	require.NoError(t, err)
	require.True(t, ok)

	s, err := repo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, models.ServiceCancelled, s.Status)
	assert.Equal(t, "Cliente canceló el despacho", s.Notes)

	// empty reason keeps the existing observaciones
	s2, err := repo.Create(&models.CreateService{ClientID: "1", Type: models.ServiceCargo, Notes: "turno nocturno"})
	require.NoError(t, err)
	ok, err = repo.Cancel(s2.ID, "")
	require.NoError(t, err)
	require.True(t, ok)
	got, err := repo.GetByID(s2.ID)
	require.NoError(t, err)
	assert.Equal(t, "turno nocturno", got.Notes)
}

func TestServiceGetOverdue(t *testing.T) {
	repo := NewMemoryServiceRepo(nil)

	late, err := repo.Create(&models.CreateService{ClientID: "1", Type: models.ServiceCargo, StartDate: dateIn(-5), DueDate: dateIn(-1)})
	require.NoError(t, err)
	_, err = repo.Create(&models.CreateService{ClientID: "1", Type: models.ServiceCargo, StartDate: today(), DueDate: dateIn(3)})
	require.NoError(t, err)

	list, err := repo.GetOverdue()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, late.ID, list[0].ID)

	// completing the late service takes it off the overdue list
	ok, err := repo.UpdateStatus(late.ID, models.ServiceCompleted)
	require.NoError(t, err)
	require.True(t, ok)

	list, err = repo.GetOverdue()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestServiceReadsReturnDetachedRows(t *testing.T) {
	repo := NewMemoryServiceRepo(demo.Services())

	list, err := repo.GetAll()
	require.NoError(t, err)
	list[0].Status = "garbage"
	list[0].TotalValue = -1

	stored, err := repo.GetByID(list[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "garbage", stored.Status)
	assert.NotEqual(t, -1.0, stored.TotalValue)
}
