package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hugohenrick/food-backoffice/internal/domain/plan"
	"github.com/hugohenrick/food-backoffice/pkg/apperror"
)

const selectPlansWithInvoices = `
	SELECT op.id, op.organization_id, op.plan_id, op.start_date, op.end_date, op.allow_additional,
	       i.id, i.status, i.amount
	  FROM organization_plans op
	  LEFT JOIN invoices i ON i.organization_plan_id = op.id
	 WHERE op.organization_id = $1
	 ORDER BY op.end_date DESC, op.id, i.id`

const selectPlanFeature = `
	SELECT plan_id, name, value, allow_additional, additional_price
	  FROM plan_features
	 WHERE plan_id = $1 AND name = $2`

// PlanRepository lê o catálogo de planos no PostgreSQL
type PlanRepository struct {
	db *sql.DB
}

var _ plan.Repository = (*PlanRepository)(nil)

// NewPlanRepository cria uma nova instância de PlanRepository
func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// SelectWithInvoices implementa plan.Repository.SelectWithInvoices
func (r *PlanRepository) SelectWithInvoices(ctx context.Context, organizationID string) ([]plan.OrganizationPlan, error) {
	rows, err := r.db.QueryContext(ctx, selectPlansWithInvoices, organizationID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar planos da organização: %w", err)
	}
	defer rows.Close()

	plans := make([]plan.OrganizationPlan, 0)
	index := make(map[string]int)
	for rows.Next() {
		var (
			op            plan.OrganizationPlan
			invoiceID     sql.NullString
			invoiceStatus sql.NullString
			invoiceAmount sql.NullFloat64
		)
		if err := rows.Scan(&op.ID, &op.OrganizationID, &op.PlanID, &op.StartDate, &op.EndDate,
			&op.AllowAdditional, &invoiceID, &invoiceStatus, &invoiceAmount); err != nil {
			return nil, fmt.Errorf("erro ao ler plano da organização: %w", err)
		}

		i, ok := index[op.ID]
		if !ok {
			op.Invoices = []plan.Invoice{}
			plans = append(plans, op)
			i = len(plans) - 1
			index[op.ID] = i
		}
		if invoiceID.Valid {
			plans[i].Invoices = append(plans[i].Invoices, plan.Invoice{
				ID:     invoiceID.String,
				Status: plan.InvoiceStatus(invoiceStatus.String),
				Amount: invoiceAmount.Float64,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer planos da organização: %w", err)
	}

	return plans, nil
}

// SelectFeature implementa plan.Repository.SelectFeature
func (r *PlanRepository) SelectFeature(ctx context.Context, planID string, name plan.FeatureName) (*plan.Feature, error) {
	var f plan.Feature
	err := r.db.QueryRowContext(ctx, selectPlanFeature, planID, string(name)).
		Scan(&f.PlanID, &f.Name, &f.Value, &f.AllowAdditional, &f.AdditionalPrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("funcionalidade do plano", string(name))
		}
		return nil, fmt.Errorf("erro ao buscar funcionalidade do plano: %w", err)
	}
	return &f, nil
}
