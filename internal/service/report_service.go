package service

import (
	"time"

	"github.com/finanzas-gatunas/gatunas-backend/internal/domain"
)

// ReportService derives dashboard and report views from stored transactions
type ReportService struct {
	transactionRepo domain.TransactionRepository
}

// NewReportService creates a new ReportService
func NewReportService(transactionRepo domain.TransactionRepository) *ReportService {
	return &ReportService{transactionRepo: transactionRepo}
}

// GetSummary returns the income/expense overview for a month
func (s *ReportService) GetSummary(year, month int) (*domain.DashboardSummary, error) {
	income, err := s.transactionRepo.SumByTypeAndMonth(domain.TransactionTypeIncome, year, month)
	if err != nil {
		return nil, err
	}

	expenses, err := s.transactionRepo.SumByTypeAndMonth(domain.TransactionTypeExpense, year, month)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.transactionRepo.ExpensesByCategory(year, month)
	if err != nil {
		return nil, err
	}
	if byCategory == nil {
		byCategory = []domain.CategoryExpense{}
	}

	return &domain.DashboardSummary{
		Income:             income,
		Expenses:           expenses,
		Balance:            income.Sub(expenses),
		ExpensesByCategory: byCategory,
	}, nil
}

// GetMonthlyTrend returns income/expense/balance totals for each month of a
// year
func (s *ReportService) GetMonthlyTrend(year int) ([]domain.MonthTotals, error) {
	trend := make([]domain.MonthTotals, 0, 12)
	for month := 1; month <= 12; month++ {
		income, err := s.transactionRepo.SumByTypeAndMonth(domain.TransactionTypeIncome, year, month)
		if err != nil {
			return nil, err
		}
		expenses, err := s.transactionRepo.SumByTypeAndMonth(domain.TransactionTypeExpense, year, month)
		if err != nil {
			return nil, err
		}
		trend = append(trend, domain.MonthTotals{
			Month:    month,
			Income:   income,
			Expenses: expenses,
			Balance:  income.Sub(expenses),
		})
	}
	return trend, nil
}

// CurrentYearMonth is a convenience for handlers defaulting their filters
func CurrentYearMonth() (int, int) {
	now := time.Now()
	return now.Year(), int(now.Month())
}
