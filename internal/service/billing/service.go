// Package billing consolida pedidos, pagamentos e despesas em relatórios mensais.
// Os valores são acumulados com precisão total e arredondados apenas na saída.
package billing

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/hugohenrick/food-backoffice/internal/domain/expense"
	"github.com/hugohenrick/food-backoffice/internal/domain/order"
	"github.com/hugohenrick/food-backoffice/internal/domain/payment"
	"github.com/hugohenrick/food-backoffice/internal/domain/plan"
	"github.com/hugohenrick/food-backoffice/internal/domain/tag"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/cache"
	"github.com/hugohenrick/food-backoffice/pkg/apperror"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

// UncategorizedExpense é o nome do grupo de despesas sem tag conhecida
const UncategorizedExpense = "Sem categoria"

// MaxLastMonths limita o histórico mensal
const MaxLastMonths = 12

var round2 = domain.Round2

// FlagChecker verifica funcionalidades liga/desliga do plano
type FlagChecker interface {
	CheckFlag(ctx context.Context, name plan.FeatureName) error
}

// Service calcula os relatórios financeiros de uma organização
type Service struct {
	organizationID string
	orders         order.Repository
	expenses       expense.Repository
	tags           tag.Repository
	gate           FlagChecker
	cache          cache.Cache
	logger         logger.Logger
	now            func() time.Time
}

// NewService cria o serviço de faturamento da organização
func NewService(organizationID string, orders order.Repository, expenses expense.Repository, tags tag.Repository,
	gate FlagChecker, c cache.Cache, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		organizationID: organizationID,
		orders:         orders,
		expenses:       expenses,
		tags:           tags,
		gate:           gate,
		cache:          c,
		logger:         log,
		now:            time.Now,
	}
}

// GetBillingForDashboard devolve o consolidado do mês, usando o cache por até 15 minutos
func (s *Service) GetBillingForDashboard(ctx context.Context, month, year int) (*Billing, error) {
	if err := s.gate.CheckFlag(ctx, plan.FeatureDisplayDashboard); err != nil {
		return nil, err
	}
	return s.billingFor(ctx, month, year)
}

// GetMonthlyBillings devolve um consolidado por mês, do mais antigo ao atual
func (s *Service) GetMonthlyBillings(ctx context.Context, lastMonths int) ([]Billing, error) {
	if lastMonths < 1 || lastMonths > MaxLastMonths {
		return nil, apperror.Unprocessable("lastMonths deve estar entre 1 e 12")
	}
	if err := s.gate.CheckFlag(ctx, plan.FeatureDisplayDashboard); err != nil {
		return nil, err
	}

	current := s.now().UTC()
	first := time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, time.UTC)

	billings := make([]Billing, 0, lastMonths)
	for i := lastMonths - 1; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)
		b, err := s.billingFor(ctx, int(m.Month()), m.Year())
		if err != nil {
			return nil, err
		}
		billings = append(billings, *b)
	}
	return billings, nil
}

// GetBestSellingProducts ordena por quantidade vendida e, no empate, pelo nome
func (s *Service) GetBestSellingProducts(ctx context.Context, month, year int) ([]ProductRanking, error) {
	orders, err := s.ordersIn(ctx, month, year)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string]*ProductRanking)
	for _, o := range orders {
		for _, p := range o.Products {
			r, ok := byProduct[p.ProductID]
			if !ok {
				r = &ProductRanking{ProductID: p.ProductID, Name: p.Name}
				byProduct[p.ProductID] = r
			}
			r.Quantity += p.Quantity
			r.TotalAmount += lineRevenue(p)
		}
	}

	ranking := make([]ProductRanking, 0, len(byProduct))
	for _, r := range byProduct {
		r.TotalAmount = round2(r.TotalAmount)
		ranking = append(ranking, *r)
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Quantity != ranking[j].Quantity {
			return ranking[i].Quantity > ranking[j].Quantity
		}
		return ranking[i].Name < ranking[j].Name
	})
	return ranking, nil
}

// GetExpansesCategories agrupa as despesas do mês pelas tags.
// Despesa com várias tags conta integralmente em cada uma.
func (s *Service) GetExpansesCategories(ctx context.Context, month, year int) ([]ExpenseCategory, error) {
	expenses, err := s.expensesIn(ctx, month, year)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0)
	seen := make(map[string]bool)
	for _, e := range expenses {
		for _, id := range e.Tags {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	names := make(map[string]string, len(ids))
	if len(ids) > 0 {
		tags, err := s.tags.SelectByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, t := range tags {
			if t.Name != "" {
				names[t.ID] = t.Name
			}
		}
	}

	byTag := make(map[string]*ExpenseCategory)
	add := func(tagID string, e *expense.Expense) {
		name, ok := names[tagID]
		if !ok {
			tagID, name = "", UncategorizedExpense
		}
		c, exists := byTag[tagID]
		if !exists {
			c = &ExpenseCategory{TagID: tagID, Name: name}
			byTag[tagID] = c
		}
		c.TotalPaid += e.TotalPaid
		c.Count++
	}

	for _, e := range expenses {
		if len(e.Tags) == 0 {
			add("", e)
			continue
		}
		for _, id := range e.Tags {
			add(id, e)
		}
	}

	categories := make([]ExpenseCategory, 0, len(byTag))
	for _, c := range byTag {
		c.TotalPaid = round2(c.TotalPaid)
		categories = append(categories, *c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].TotalPaid != categories[j].TotalPaid {
			return categories[i].TotalPaid > categories[j].TotalPaid
		}
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

// GetProductsProfit calcula receita menos custo por produto, do maior lucro ao menor
func (s *Service) GetProductsProfit(ctx context.Context, month, year int) ([]ProductProfit, error) {
	orders, err := s.ordersIn(ctx, month, year)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[string]*ProductProfit)
	for _, o := range orders {
		for _, p := range o.Products {
			pp, ok := byProduct[p.ProductID]
			if !ok {
				pp = &ProductProfit{ProductID: p.ProductID, Name: p.Name}
				byProduct[p.ProductID] = pp
			}
			pp.Quantity += p.Quantity
			pp.Revenue += lineRevenue(p)
			pp.Cost += lineCost(p)
		}
	}

	profits := make([]ProductProfit, 0, len(byProduct))
	for _, pp := range byProduct {
		pp.Profit = round2(pp.Revenue - pp.Cost)
		pp.Revenue = round2(pp.Revenue)
		pp.Cost = round2(pp.Cost)
		profits = append(profits, *pp)
	}
	sort.Slice(profits, func(i, j int) bool {
		if profits[i].Profit != profits[j].Profit {
			return profits[i].Profit > profits[j].Profit
		}
		return profits[i].Name < profits[j].Name
	})
	return profits, nil
}

// GetDailySales devolve um item por dia do mês, com zero nos dias sem venda
func (s *Service) GetDailySales(ctx context.Context, month, year int) ([]DailySale, error) {
	orders, err := s.ordersIn(ctx, month, year)
	if err != nil {
		return nil, err
	}

	rng := domain.MonthRange(month, year)
	days := domain.DaysIn(month, year)
	sales := make([]DailySale, days)
	for i := range sales {
		sales[i] = DailySale{Day: i + 1, Date: rng.Start.AddDate(0, 0, i).Format("2006-01-02")}
	}

	for _, o := range orders {
		d := o.OrderDate.UTC().Day()
		if d < 1 || d > days {
			continue
		}
		sales[d-1].Orders++
		sales[d-1].TotalAmount += o.TotalAmount
	}
	for i := range sales {
		sales[i].TotalAmount = round2(sales[i].TotalAmount)
	}
	return sales, nil
}

// billingFor calcula o consolidado do mês ou o lê do cache
func (s *Service) billingFor(ctx context.Context, month, year int) (*Billing, error) {
	key := cache.BillingDashboardKey(s.organizationID, month, year)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var cached Billing
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
		s.logger.Warn("faturamento em cache ilegível, recalculando", "key", key)
	}

	orders, err := s.ordersIn(ctx, month, year)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expensesIn(ctx, month, year)
	if err != nil {
		return nil, err
	}

	b := Aggregate(month, year, orders, expenses)

	if raw, err := json.Marshal(b); err == nil {
		s.cache.Set(ctx, key, string(raw), cache.BillingDashboardTTL)
	}
	return b, nil
}

// Aggregate classifica os pagamentos por forma e soma pendências e despesas
func Aggregate(month, year int, orders []*order.Order, expenses []*expense.Expense) *Billing {
	b := &Billing{Month: month, Year: year}

	for _, o := range orders {
		b.TotalAmount += o.TotalAmount

		var paid float64
		for _, p := range o.Payments {
			paid += p.Amount
			b.PaymentReceived += p.Amount
			switch p.Method {
			case payment.MethodCash:
				b.CashReceived += p.Amount
			case payment.MethodPix:
				b.PixReceived += p.Amount
			case payment.MethodCreditCard:
				b.CreditCardReceived += p.Amount
			case payment.MethodDebitCard:
				b.DebitCardReceived += p.Amount
			case payment.MethodZelle:
				b.ZelleReceived += p.Amount
			}
		}
		if paid < o.TotalAmount {
			b.PendingPayments += round2(o.TotalAmount - paid)
		}
	}

	for _, e := range expenses {
		b.TotalExpanses += e.TotalPaid
	}

	b.round()
	return b
}

func (s *Service) ordersIn(ctx context.Context, month, year int) ([]*order.Order, error) {
	if err := validMonth(month, year); err != nil {
		return nil, err
	}
	return s.orders.SelectAllWithoutFilters(ctx, domain.MonthRange(month, year))
}

func (s *Service) expensesIn(ctx context.Context, month, year int) ([]*expense.Expense, error) {
	rng := domain.MonthRange(month, year)
	return s.expenses.SelectAll(ctx, expense.Filters{DateRange: &rng}, domain.Pagination{})
}

func validMonth(month, year int) error {
	if month < 1 || month > 12 || year < 1 {
		return apperror.Unprocessable("mês/ano inválido")
	}
	return nil
}

func lineRevenue(p order.StoredProduct) float64 {
	qty := float64(p.Quantity)
	v := p.UnitPrice * qty
	for _, a := range p.Additionals {
		v += a.UnitPrice * float64(a.Quantity) * qty
	}
	return v
}

func lineCost(p order.StoredProduct) float64 {
	qty := float64(p.Quantity)
	v := p.UnitCost * qty
	for _, a := range p.Additionals {
		v += a.UnitCost * float64(a.Quantity) * qty
	}
	return v
}
