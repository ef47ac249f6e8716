package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Bookkeeping metrics
	TransactionsRecorded *prometheus.CounterVec
	TransactionAmount    *prometheus.HistogramVec
	CategoriesCreated    prometheus.Counter

	// Livestock metrics
	AnimalLogsRecorded *prometheus.CounterVec
	SpeciesCount       *prometheus.GaugeVec

	// Asset and liability metrics
	AssetsCreated      prometheus.Counter
	LiabilitiesCreated prometheus.Counter

	// Inventory metrics
	InventoryMovements *prometheus.CounterVec

	// Report metrics
	ReportsGenerated *prometheus.CounterVec
	CSVExports       *prometheus.CounterVec

	// Advisor metrics
	AdviceRequests *prometheus.CounterVec
	AdviceDuration prometheus.Histogram

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Store metrics
	StoreOperations *prometheus.CounterVec
	StoreErrors     *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Bookkeeping metrics
		TransactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "farmbooks_transactions_recorded_total",
				Help: "Total number of transactions recorded by type",
			},
			[]string{"type"},
		),
		TransactionAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "farmbooks_transaction_amount",
				Help:    "Transaction amounts",
				Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
			},
			[]string{"type"},
		),
		CategoriesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "farmbooks_categories_created_total",
			Help: "Total number of categories created",
		}),

		// Livestock metrics
		AnimalLogsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "farmbooks_animal_logs_recorded_total",
				Help: "Total number of population logs recorded by change type",
			},
			[]string{"change"},
		),
		SpeciesCount: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "farmbooks_species_head_count",
				Help: "Current head count per species",
			},
			[]string{"species"},
		),

		// Asset and liability metrics
		AssetsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "farmbooks_assets_created_total",
			Help: "Total number of fixed assets created",
		}),
		LiabilitiesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "farmbooks_liabilities_created_total",
			Help: "Total number of liabilities created",
		}),

		// Inventory metrics
		InventoryMovements: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "farmbooks_inventory_movements_total",
				Help: "Total inventory movements by type",
			},
			[]string{"type"},
		),

		// Report metrics
		ReportsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "farmbooks_reports_generated_total",
				Help: "Total reports generated by statement",
			},
			[]string{"statement"},
		),
		CSVExports: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "farmbooks_csv_exports_total",
				Help: "Total CSV exports by statement",
			},
			[]string{"statement"},
		),

		// Advisor metrics
		AdviceRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "farmbooks_advice_requests_total",
				Help: "Total advice requests by outcome",
			},
			[]string{"outcome"},
		),
		AdviceDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "farmbooks_advice_duration_seconds",
			Help:    "Duration of advice generation",
			Buckets: prometheus.DefBuckets,
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "farmbooks_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "farmbooks_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Store metrics
		StoreOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "farmbooks_store_operations_total",
				Help: "Total collection store operations",
			},
			[]string{"operation"},
		),
		StoreErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "farmbooks_store_errors_total",
				Help: "Total collection store errors",
			},
			[]string{"operation"},
		),
	}
}
