package runtime

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	blocks      *prometheus.CounterVec
	extrinsics  *prometheus.CounterVec
	blockNumber prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) (m *metrics, err error) {
	m = &metrics{
		blocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pallets",
			Name:      "blocks_total",
			Help:      "Blocks submitted for execution by outcome.",
		}, []string{"outcome"}),
		extrinsics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pallets",
			Name:      "extrinsics_total",
			Help:      "Extrinsics applied by target pallet and outcome.",
		}, []string{"pallet", "outcome"}),
		blockNumber: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "pallets",
			Name:      "block_number",
			Help:      "Number of the last accepted block.",
		}),
	}

	if reg == nil {
		return m, nil
	}

	for _, c := range []prometheus.Collector{m.blocks, m.extrinsics, m.blockNumber} {
		if err = reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register metric")
		}
	}

	return
}

func outcome(err error) string {
	if err != nil {
		return "failed"
	}

	return "ok"
}
