package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tradesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "feevault",
		Name:      "trades_processed_total",
		Help:      "Number of trades the module skimmed a fee from.",
	}, []string{"asset"})

	feesCollected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "feevault",
		Name:      "fees_collected_total",
		Help:      "Total fee amount collected, in asset base units.",
	}, []string{"asset"})

	claimsPaid = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "feevault",
		Name:      "claims_paid_total",
		Help:      "Total underlying amount released to claimers.",
	}, []string{"asset"})

	assetsHalted = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "feevault",
		Name:      "asset_halted",
		Help:      "Set to 1 when an asset is latched after a partial failure.",
	}, []string{"asset"})
)
