package dto

import (
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// Response é o envelope de todas as respostas da API
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// NewSuccessResponse cria uma nova resposta de sucesso
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse cria uma resposta de erro; data é sempre null
func NewErrorResponse(message string) Response {
	return Response{Message: message}
}

// PageQuery representa os parâmetros de paginação
type PageQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// Pagination aplica os valores padrão de paginação
func (q PageQuery) Pagination() domain.Pagination {
	return domain.NewPagination(q.Page, q.PageSize)
}

// ListResponse representa uma página de resultados
type ListResponse[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewListResponse monta a página a partir do total de registros
func NewListResponse[T any](items []T, total int, page domain.Pagination) ListResponse[T] {
	return ListResponse[T]{
		Items:      items,
		Total:      total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: calculateTotalPages(total, page.PageSize),
	}
}

// calculateTotalPages calcula o número total de páginas com base no total de registros e no tamanho da página
func calculateTotalPages(totalCount, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}

	totalPages := (totalCount + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return totalPages
}

// MonthYearQuery é o filtro de mês dos relatórios, no formato M/YYYY
type MonthYearQuery struct {
	MonthYear string `form:"monthYear" binding:"required,monthyear"`
}

// Parse devolve mês e ano; o formato já foi validado no binding
func (q MonthYearQuery) Parse() (month, year int, err error) {
	return domain.ParseMonthYear(q.MonthYear)
}

// LastMonthsQuery é o filtro do histórico mensal
type LastMonthsQuery struct {
	LastMonths int `form:"lastMonths" binding:"required,min=1,max=12"`
}
