package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterly/payrun-backend-go/internal/domain/rate"
	"github.com/rosterly/payrun-backend-go/internal/repository/postgresql"
)

func seedRateEntry(t *testing.T, ctx context.Context, repo rate.RateRepository, tenantID, employeeID, hourlyRate, effectiveDate string) rate.HistoryEntry {
	t.Helper()

	effective, err := time.Parse("2006-01-02", effectiveDate)
	require.NoError(t, err)

	created, err := repo.Create(ctx, rate.HistoryEntry{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		EmployeeID:    employeeID,
		HourlyRate:    decimal.RequireFromString(hourlyRate),
		EffectiveDate: effective,
		CreatedBy:     uuid.NewString(),
	})
	require.NoError(t, err)
	return created
}

func asOfDate(t *testing.T, date string) time.Time {
	t.Helper()
	asOf, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return asOf
}

func TestRateRepository_ResolveBatch_PicksLatestEffectiveEntry(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	tenantID := createTestTenant(t, ctx, "Acme Hospitality")
	aliceID := createTestEmployee(t, ctx, tenantID, "Alice Nguyen")

	repo := postgresql.NewRateRepository(testDB)
	seedRateEntry(t, ctx, repo, tenantID, aliceID, "20", "2024-01-01")
	seedRateEntry(t, ctx, repo, tenantID, aliceID, "25", "2024-03-01")
	seedRateEntry(t, ctx, repo, tenantID, aliceID, "30", "2024-06-01")

	rates, err := repo.ResolveBatch(ctx, tenantID, []string{aliceID}, asOfDate(t, "2024-03-17"))
	require.NoError(t, err)
	require.Contains(t, rates, aliceID)
	assert.True(t, rates[aliceID].Equal(decimal.RequireFromString("25")),
		"expected 25, got %s", rates[aliceID])

	// An earlier asOf falls back to the older entry.
	rates, err = repo.ResolveBatch(ctx, tenantID, []string{aliceID}, asOfDate(t, "2024-01-15"))
	require.NoError(t, err)
	assert.True(t, rates[aliceID].Equal(decimal.RequireFromString("20")))

	// On the effective date itself the new entry already applies.
	rates, err = repo.ResolveBatch(ctx, tenantID, []string{aliceID}, asOfDate(t, "2024-03-01"))
	require.NoError(t, err)
	assert.True(t, rates[aliceID].Equal(decimal.RequireFromString("25")))
}

func TestRateRepository_ResolveBatch_AbsentWithoutEffectiveEntry(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	tenantID := createTestTenant(t, ctx, "Acme Hospitality")
	aliceID := createTestEmployee(t, ctx, tenantID, "Alice Nguyen")
	bobID := createTestEmployee(t, ctx, tenantID, "Bob Carter")

	repo := postgresql.NewRateRepository(testDB)
	seedRateEntry(t, ctx, repo, tenantID, aliceID, "20", "2024-01-01")
	// Bob's only entry starts after the period of interest.
	seedRateEntry(t, ctx, repo, tenantID, bobID, "18", "2024-05-01")

	rates, err := repo.ResolveBatch(ctx, tenantID, []string{aliceID, bobID}, asOfDate(t, "2024-03-17"))
	require.NoError(t, err)

	assert.Contains(t, rates, aliceID)
	assert.NotContains(t, rates, bobID)
}

func TestRateRepository_ResolveBatch_ScopedToTenant(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	tenantID := createTestTenant(t, ctx, "Acme Hospitality")
	otherTenantID := createTestTenant(t, ctx, "Rival Catering")
	carolID := createTestEmployee(t, ctx, otherTenantID, "Carol Reyes")

	repo := postgresql.NewRateRepository(testDB)
	seedRateEntry(t, ctx, repo, otherTenantID, carolID, "22", "2024-01-01")

	rates, err := repo.ResolveBatch(ctx, tenantID, []string{carolID}, asOfDate(t, "2024-03-17"))
	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestRateRepository_ResolveBatch_EmptyIDList(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	tenantID := createTestTenant(t, ctx, "Acme Hospitality")

	repo := postgresql.NewRateRepository(testDB)
	rates, err := repo.ResolveBatch(ctx, tenantID, nil, asOfDate(t, "2024-03-17"))
	require.NoError(t, err)
	assert.Empty(t, rates)
}

func TestRateRepository_Create_DuplicateEffectiveDate(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)

	tenantID := createTestTenant(t, ctx, "Acme Hospitality")
	aliceID := createTestEmployee(t, ctx, tenantID, "Alice Nguyen")

	repo := postgresql.NewRateRepository(testDB)
	seedRateEntry(t, ctx, repo, tenantID, aliceID, "20", "2024-03-01")

	_, err := repo.Create(ctx, rate.HistoryEntry{
		ID:            uuid.NewString(),
		TenantID:      tenantID,
		EmployeeID:    aliceID,
		HourlyRate:    decimal.RequireFromString("21"),
		EffectiveDate: asOfDate(t, "2024-03-01"),
		CreatedBy:     uuid.NewString(),
	})
	assert.ErrorIs(t, err, rate.ErrRateEffectiveDateExists)
}
