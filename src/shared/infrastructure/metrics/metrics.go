package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas Prometheus del motor de ventas, expuestas en /metrics

var (
	// SalesCommitted cuenta las ventas confirmadas, por tipo de cliente
	SalesCommitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trailerapp_sales_committed_total",
		Help: "Total de ventas confirmadas",
	}, []string{"customer_type"})

	// PromotionsApplied cuenta las ventas que aplicaron una promoción
	PromotionsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trailerapp_promotions_applied_total",
		Help: "Total de ventas con promoción aplicada",
	})

	// SaleCommitFailures cuenta los checkouts rechazados, por motivo
	SaleCommitFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trailerapp_sale_commit_failures_total",
		Help: "Total de checkouts fallidos",
	}, []string{"reason"})
)
