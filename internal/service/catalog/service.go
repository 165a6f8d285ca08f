// Package catalog cadastra produtos, tags, clientes e despesas respeitando as cotas do plano.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hugohenrick/food-backoffice/internal/domain/customer"
	"github.com/hugohenrick/food-backoffice/internal/domain/expense"
	"github.com/hugohenrick/food-backoffice/internal/domain/offer"
	"github.com/hugohenrick/food-backoffice/internal/domain/payment"
	"github.com/hugohenrick/food-backoffice/internal/domain/plan"
	"github.com/hugohenrick/food-backoffice/internal/domain/product"
	"github.com/hugohenrick/food-backoffice/internal/domain/tag"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/cache"
	"github.com/hugohenrick/food-backoffice/internal/service/planfeature"
	"github.com/hugohenrick/food-backoffice/pkg/apperror"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

// QuotaChecker verifica cotas e funcionalidades do plano
type QuotaChecker interface {
	CheckQuota(ctx context.Context, name plan.FeatureName, current int) (*planfeature.Decision, error)
	CheckFlag(ctx context.Context, name plan.FeatureName) error
}

// Repositories agrupa os repositórios do cadastro
type Repositories struct {
	Products  product.Repository
	Tags      tag.Repository
	Customers customer.Repository
	Expenses  expense.Repository
	Offers    offer.Repository
}

// ProductInput são os dados de um novo produto
type ProductInput struct {
	Name        string
	Description string
	UnitPrice   float64
	UnitCost    float64
	Additionals []product.Additional
	Tags        []string
}

// CustomerInput são os dados de um novo cliente
type CustomerInput struct {
	Name      string
	Phone     *customer.Phone
	Email     string
	Document  string
	Addresses []customer.Address
	Tags      []string
}

// ExpenseInput são os dados de uma nova despesa
type ExpenseInput struct {
	Name        string
	ExpenseDate time.Time
	Payments    []payment.Payment
	Tags        []string
}

// Service implementa o cadastro de uma organização
type Service struct {
	organizationID string
	repos          Repositories
	gate           QuotaChecker
	cache          cache.Cache
	logger         logger.Logger
	now            func() time.Time
}

// NewService cria o serviço de cadastro da organização
func NewService(organizationID string, repos Repositories, gate QuotaChecker, c cache.Cache, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		organizationID: organizationID,
		repos:          repos,
		gate:           gate,
		cache:          c,
		logger:         log,
		now:            time.Now,
	}
}

// CreateProduct cadastra um produto dentro da cota MAX_PRODUCTS
func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (*product.Product, error) {
	p, err := product.NewProduct(s.organizationID, in.Name, in.Description, in.UnitPrice, in.UnitCost, in.Additionals, in.Tags)
	if err != nil {
		return nil, apperror.Unprocessable(err.Error())
	}

	if err := s.checkQuota(ctx, plan.FeatureMaxProducts, s.repos.Products.Count); err != nil {
		return nil, err
	}

	if err := s.repos.Products.Create(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateHome(ctx)
	return p, nil
}

// ListProducts lista produtos por nome
func (s *Service) ListProducts(ctx context.Context, query string, page domain.Pagination) ([]*product.Product, error) {
	return s.repos.Products.SelectAll(ctx, query, page)
}

// CreateTag cadastra uma tag dentro da cota MAX_TAGS
func (s *Service) CreateTag(ctx context.Context, name, color string) (*tag.Tag, error) {
	t, err := tag.NewTag(s.organizationID, name, color)
	if err != nil {
		return nil, apperror.Unprocessable(err.Error())
	}

	if err := s.checkQuota(ctx, plan.FeatureMaxTags, s.repos.Tags.Count); err != nil {
		return nil, err
	}

	if err := s.repos.Tags.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// CreateCustomer cadastra um cliente dentro da cota MAX_CUSTOMERS.
// Telefone e email repetidos na organização retornam Conflict.
func (s *Service) CreateCustomer(ctx context.Context, in CustomerInput) (*customer.Customer, error) {
	c, err := customer.NewCustomer(s.organizationID, in.Name, in.Phone, in.Email)
	if err != nil {
		return nil, apperror.Unprocessable(err.Error())
	}
	c.Document = in.Document
	for _, addr := range in.Addresses {
		c.MergeAddress(addr)
	}
	if in.Tags != nil {
		c.Tags = in.Tags
	}

	if c.Phone != nil {
		if err := s.ensureAbsent(ctx, func(ctx context.Context) (*customer.Customer, error) {
			return s.repos.Customers.SelectByPhone(ctx, *c.Phone)
		}, "telefone"); err != nil {
			return nil, err
		}
	}
	if c.Email != "" {
		if err := s.ensureAbsent(ctx, func(ctx context.Context) (*customer.Customer, error) {
			return s.repos.Customers.SelectByEmail(ctx, c.Email)
		}, "email"); err != nil {
			return nil, err
		}
	}

	if err := s.checkQuota(ctx, plan.FeatureMaxCustomers, s.repos.Customers.Count); err != nil {
		return nil, err
	}

	if err := s.repos.Customers.Create(ctx, c); err != nil {
		return nil, err
	}
	s.invalidateHome(ctx)
	return c, nil
}

// ListCustomers lista clientes por nome, telefone ou email
func (s *Service) ListCustomers(ctx context.Context, query string, page domain.Pagination) ([]*customer.Customer, error) {
	return s.repos.Customers.SelectAll(ctx, query, page)
}

// CreateExpense cadastra uma despesa. A cota MAX_EXPANSES vale por mês da data da despesa.
func (s *Service) CreateExpense(ctx context.Context, in ExpenseInput) (*expense.Expense, error) {
	date := in.ExpenseDate
	if date.IsZero() {
		date = s.now()
	}

	payments := make([]payment.Payment, 0, len(in.Payments))
	for _, p := range in.Payments {
		if p.PaymentDate.IsZero() {
			p.PaymentDate = date.UTC()
		}
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
		p.OrganizationID = s.organizationID
		p.IsActive = true
		payments = append(payments, p)
	}

	e, err := expense.NewExpense(s.organizationID, in.Name, date, payments, in.Tags)
	if err != nil {
		return nil, apperror.Unprocessable(err.Error())
	}

	month := domain.MonthRange(int(e.ExpenseDate.Month()), e.ExpenseDate.Year())
	countMonth := func(ctx context.Context) (int, error) {
		return s.repos.Expenses.SelectCountByDate(ctx, month)
	}
	if err := s.checkQuota(ctx, plan.FeatureMaxExpanses, countMonth); err != nil {
		return nil, err
	}

	if err := s.repos.Expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	s.invalidateBilling(ctx, e.ExpenseDate)
	return e, nil
}

// ListExpenses lista despesas com filtros
func (s *Service) ListExpenses(ctx context.Context, filters expense.Filters, page domain.Pagination) ([]*expense.Expense, error) {
	return s.repos.Expenses.SelectAll(ctx, filters, page)
}

// DeleteExpense remove logicamente a despesa e invalida o painel do mês
func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	e, err := s.repos.Expenses.SelectByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repos.Expenses.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidateBilling(ctx, e.ExpenseDate)
	return nil
}

// ListOffers lista as ofertas vigentes do cardápio; exige DISPLAY_MENU
func (s *Service) ListOffers(ctx context.Context, onlyVisible bool, page domain.Pagination) ([]*offer.Offer, error) {
	if err := s.gate.CheckFlag(ctx, plan.FeatureDisplayMenu); err != nil {
		return nil, err
	}

	offers, err := s.repos.Offers.SelectAll(ctx, onlyVisible, page)
	if err != nil {
		return nil, err
	}

	now := s.now()
	valid := make([]*offer.Offer, 0, len(offers))
	for _, o := range offers {
		if o.IsValidAt(now) {
			valid = append(valid, o)
		}
	}
	return valid, nil
}

func (s *Service) checkQuota(ctx context.Context, name plan.FeatureName, count func(context.Context) (int, error)) error {
	current, err := count(ctx)
	if err != nil {
		return fmt.Errorf("erro ao contar uso de %s: %w", name, err)
	}
	decision, err := s.gate.CheckQuota(ctx, name, current)
	if err != nil {
		return err
	}
	if decision.Overage {
		s.logger.Info("cadastro acima da cota do plano", "feature", name, "current", current, "limit", decision.Limit)
	}
	return nil
}

func (s *Service) ensureAbsent(ctx context.Context, lookup func(context.Context) (*customer.Customer, error), field string) error {
	_, err := lookup(ctx)
	switch {
	case err == nil:
		return apperror.Conflict(fmt.Sprintf("já existe cliente com este %s", field))
	case apperror.IsNotFound(err):
		return nil
	default:
		return err
	}
}

func (s *Service) invalidateHome(ctx context.Context) {
	if s.cache != nil {
		s.cache.Delete(ctx, cache.HomeMetricsKey(s.organizationID))
	}
}

func (s *Service) invalidateBilling(ctx context.Context, at time.Time) {
	if s.cache != nil {
		at = at.UTC()
		s.cache.Delete(ctx, cache.BillingDashboardKey(s.organizationID, int(at.Month()), at.Year()))
	}
}
