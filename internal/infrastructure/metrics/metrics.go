package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Loan metrics
	LoansCreated    prometheus.Counter
	RepaymentsTotal *prometheus.CounterVec
	RepaymentAmount prometheus.Histogram

	// Expense metrics
	ExpensesTotal *prometheus.CounterVec
	ExpenseAmount prometheus.Histogram

	// Balance metrics
	BalanceQueries *prometheus.CounterVec

	// Activity trail metrics
	ActivityAppends *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Loan metrics
		LoansCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tradeledger_loans_created_total",
			Help: "Total number of loans created",
		}),
		RepaymentsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradeledger_repayments_total",
				Help: "Total number of loan repayments by kind",
			},
			[]string{"kind"},
		),
		RepaymentAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tradeledger_repayment_amount",
			Help:    "Repayment amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),

		// Expense metrics
		ExpensesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradeledger_expenses_total",
				Help: "Total number of expenses recorded by type",
			},
			[]string{"type"},
		),
		ExpenseAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tradeledger_expense_amount",
			Help:    "Expense amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),

		// Balance metrics
		BalanceQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradeledger_balance_queries_total",
				Help: "Total cash balance queries by source",
			},
			[]string{"source"},
		),

		// Activity trail metrics
		ActivityAppends: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradeledger_activity_appends_total",
				Help: "Total activity trail appends by action and outcome",
			},
			[]string{"action", "outcome"},
		),
	}
}
