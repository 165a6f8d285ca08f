package plan

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"
)

// FeatureName identifica uma funcionalidade controlada pelo plano
type FeatureName string

const (
	FeatureMaxProducts      FeatureName = "MAX_PRODUCTS"
	FeatureMaxTags          FeatureName = "MAX_TAGS"
	FeatureMaxCustomers     FeatureName = "MAX_CUSTOMERS"
	FeatureMaxExpanses      FeatureName = "MAX_EXPANSES"
	FeatureDisplayDashboard FeatureName = "DISPLAY_DASHBOARD"
	FeatureDisplayCalendar  FeatureName = "DISPLAY_CALENDAR"
	FeatureDisplayMenu      FeatureName = "DISPLAY_MENU"
)

// Unlimited é o valor de cota sem limite
const Unlimited = "-"

// InvoiceStatus representa a situação de uma fatura do plano
type InvoiceStatus string

const (
	InvoicePending  InvoiceStatus = "PENDING"
	InvoicePaid     InvoiceStatus = "PAID"
	InvoiceCanceled InvoiceStatus = "CANCELED"
)

// Invoice é uma fatura vinculada ao plano da organização
type Invoice struct {
	ID     string        `json:"id"`
	Status InvoiceStatus `json:"status"`
	Amount float64       `json:"amount"`
}

// OrganizationPlan é a contratação de um plano por uma organização
type OrganizationPlan struct {
	ID              string    `json:"id"`
	OrganizationID  string    `json:"organization_id"`
	PlanID          string    `json:"plan_id"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	AllowAdditional bool      `json:"allow_additional"`
	Invoices        []Invoice `json:"invoices"`
}

// HasPaidInvoice indica se ao menos uma fatura foi paga
func (p *OrganizationPlan) HasPaidInvoice() bool {
	for _, inv := range p.Invoices {
		if inv.Status == InvoicePaid {
			return true
		}
	}
	return false
}

// IsActiveAt indica se o plano está vigente e pago no instante informado
func (p *OrganizationPlan) IsActiveAt(now time.Time) bool {
	return !now.Before(p.StartDate) && !now.After(p.EndDate) && p.HasPaidInvoice()
}

// SelectActive escolhe, entre os planos ativos, o de término mais distante
func SelectActive(plans []OrganizationPlan, now time.Time) *OrganizationPlan {
	active := make([]OrganizationPlan, 0, len(plans))
	for _, p := range plans {
		if p.IsActiveAt(now) {
			active = append(active, p)
		}
	}
	if len(active) == 0 {
		return nil
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].EndDate.After(active[j].EndDate)
	})
	return &active[0]
}

// Feature é o valor de uma funcionalidade em um plano.
// Value pode ser um número (cota), "-" (ilimitado) ou "true"/"false".
type Feature struct {
	PlanID          string      `json:"plan_id"`
	Name            FeatureName `json:"name"`
	Value           string      `json:"value"`
	AllowAdditional bool        `json:"allow_additional"`
	AdditionalPrice float64     `json:"additional_price"`
}

// Disabled retorna a funcionalidade desligada usada quando o plano não a possui
func Disabled(planID string, name FeatureName) *Feature {
	return &Feature{PlanID: planID, Name: name, Value: "false"}
}

// IsUnlimited indica cota sem limite
func (f *Feature) IsUnlimited() bool {
	return strings.TrimSpace(f.Value) == Unlimited
}

// Limit retorna a cota numérica; ok é false quando o valor não é número
func (f *Feature) Limit() (limit int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(f.Value))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Enabled interpreta o valor como flag: começa com "t" é ligado
func (f *Feature) Enabled() bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(f.Value)), "t")
}

// AllowsOverage indica que a cota pode ser excedida com custo por unidade
func (f *Feature) AllowsOverage() bool {
	return f.AllowAdditional && f.AdditionalPrice > 0
}

// Repository lê o catálogo de planos
type Repository interface {
	// SelectWithInvoices retorna os planos da organização com as faturas vinculadas
	SelectWithInvoices(ctx context.Context, organizationID string) ([]OrganizationPlan, error)

	// SelectFeature busca a funcionalidade do plano; ausente retorna NotFound
	SelectFeature(ctx context.Context, planID string, name FeatureName) (*Feature, error)
}
