package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/rosterly/payrun-backend-go/internal/domain/overtime"
	"github.com/rosterly/payrun-backend-go/internal/domain/payperiod"
	"github.com/rosterly/payrun-backend-go/internal/domain/tenant"
	"github.com/rosterly/payrun-backend-go/internal/pkg/database"
)

type tenantRepository struct {
	db *database.DB
}

func NewTenantRepository(db *database.DB) tenant.TenantRepository {
	return &tenantRepository{db: db}
}

func (r *tenantRepository) GetSettings(ctx context.Context, tenantID string) (tenant.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, timezone,
			   scheme_kind, scheme_start_day_of_week, scheme_reference_start_date,
			   scheme_first_half_end_day, scheme_start_day_of_month,
			   overtime_enabled, contracted_weekly_hours, overtime_rule_type,
			   overtime_multiplier, overtime_flat_extra,
			   created_at, updated_at
		FROM tenants
		WHERE id = $1
	`

	var s tenant.Settings
	var schemeKind string
	var startDayOfWeek, firstHalfEndDay, startDayOfMonth *int
	var referenceStartDate *time.Time
	var otEnabled bool
	var contracted, multiplier, flatExtra *decimal.Decimal
	var ruleType *string

	err := q.QueryRow(ctx, query, tenantID).Scan(
		&s.TenantID, &s.Name, &s.Timezone,
		&schemeKind, &startDayOfWeek, &referenceStartDate,
		&firstHalfEndDay, &startDayOfMonth,
		&otEnabled, &contracted, &ruleType,
		&multiplier, &flatExtra,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return tenant.Settings{}, tenant.ErrTenantNotFound
		}
		return tenant.Settings{}, fmt.Errorf("failed to get tenant settings: %w", err)
	}

	s.PeriodScheme = payperiod.Scheme{Kind: payperiod.SchemeKind(schemeKind)}
	if startDayOfWeek != nil {
		s.PeriodScheme.StartDayOfWeek = time.Weekday(*startDayOfWeek)
	}
	s.PeriodScheme.ReferenceStartDate = referenceStartDate
	if firstHalfEndDay != nil {
		s.PeriodScheme.FirstHalfEndDay = *firstHalfEndDay
	}
	if startDayOfMonth != nil {
		s.PeriodScheme.StartDayOfMonth = *startDayOfMonth
	}

	s.DefaultOvertime = overtime.Policy{
		Enabled:               otEnabled,
		ContractedWeeklyHours: contracted,
		Multiplier:            multiplier,
		FlatExtra:             flatExtra,
	}
	if ruleType != nil {
		s.DefaultOvertime.RuleType = overtime.RuleType(*ruleType)
	}

	return s, nil
}
