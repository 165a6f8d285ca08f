package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Round2 arredonda valores monetários para 2 casas decimais
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DateRange representa um intervalo semiaberto [Start, End)
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains verifica se t está dentro do intervalo
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// MonthRange retorna o mês civil em UTC; dezembro avança o ano
func MonthRange(month, year int) DateRange {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	endMonth, endYear := month+1, year
	if month == 12 {
		endMonth, endYear = 1, year+1
	}
	end := time.Date(endYear, time.Month(endMonth), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: end}
}

// DayRange retorna o dia civil em UTC que contém t
func DayRange(t time.Time) DateRange {
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return DateRange{Start: start, End: start.AddDate(0, 0, 1)}
}

// DaysIn retorna a quantidade de dias do mês
func DaysIn(month, year int) int {
	r := MonthRange(month, year)
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// ParseMonthYear interpreta o formato M/YYYY usado nos filtros de faturamento
func ParseMonthYear(value string) (month, year int, err error) {
	parts := strings.Split(strings.TrimSpace(value), "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("formato inválido, use M/YYYY: %q", value)
	}
	month, err = strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("mês inválido: %q", parts[0])
	}
	year, err = strconv.Atoi(parts[1])
	if err != nil || year < 1970 || year > 9999 {
		return 0, 0, fmt.Errorf("ano inválido: %q", parts[1])
	}
	return month, year, nil
}

// Pagination representa a paginação de consultas
type Pagination struct {
	Page     int
	PageSize int
}

// NewPagination aplica os valores padrão de paginação
func NewPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	} else if pageSize > 100 {
		pageSize = 100
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// Offset retorna a quantidade de registros a pular
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
