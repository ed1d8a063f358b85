package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incargo/demo"
	"incargo/models"
)

func TestQuoteReadsReturnDetachedRows(t *testing.T) {
	repo := NewMemoryQuoteRepo(demo.Quotes())

	list, err := repo.GetByStatus(models.QuoteSent)
	require.NoError(t, err)
	require.Len(t, list, 1)
	list[0].Status = "garbage"
	list[0].FinalValue = -1

	stored, err := repo.GetByID(list[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteSent, stored.Status)
	assert.Equal(t, 2660000.0, stored.FinalValue)
}

func TestCompanyProfileReadsReturnDetachedRows(t *testing.T) {
	repo := NewMemoryCompanyRepo(demo.Company())

	p, err := repo.Get()
	require.NoError(t, err)
	p.Phones[0].Number = "000"
	p.Name = "garbage"

	stored, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, "+57 601 745 8890", stored.Phones[0].Number)
	assert.Equal(t, "InCargo Logística S.A.S.", stored.Name)
}

func TestCompanyProfileGetWhenUnconfigured(t *testing.T) {
	repo := NewMemoryCompanyRepo(nil)

	p, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, p)
}
