// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package importer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "aurabridge_importer"

var (
	usefulCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "headers_useful_total",
		Help:      "total number of imported headers",
	})
	uselessCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "headers_useless_total",
		Help:      "total number of ancient or known headers submitted",
	})
	rejectedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "headers_rejected_total",
		Help:      "total number of invalid headers submitted",
	})
	finalizedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "headers_finalized_total",
		Help:      "total number of headers finalized",
	})
	bestNumberGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "best_number",
		Help:      "number of the best imported header",
	})
	finalizedNumberGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "finalized_number",
		Help:      "number of the best finalized header",
	})
)
