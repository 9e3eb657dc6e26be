// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package metrics defines the game's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	SpinsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "spin_mania_spins_total",
			Help: "Total number of completed spins",
		},
	)

	PurchasesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spin_mania_purchases_total",
			Help: "Total number of successful shop purchases",
		},
		[]string{"category", "currency"},
	)

	RejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spin_mania_rejections_total",
			Help: "Total number of operations refused by the game rules",
		},
		[]string{"operation", "reason"},
	)

	RewardsClaimedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spin_mania_rewards_claimed_total",
			Help: "Total number of claimed rewards",
		},
		[]string{"source", "kind"},
	)

	Level = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "spin_mania_level",
			Help: "Current player level",
		},
	)

	StateSaveFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "spin_mania_state_save_failures_total",
			Help: "Total number of failed state writes",
		},
	)
)

// Collectors returns every game collector for registration.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		SpinsTotal,
		PurchasesTotal,
		RejectionsTotal,
		RewardsClaimedTotal,
		Level,
		StateSaveFailuresTotal,
	}
}

// Currency returns the currency label for a purchase.
func Currency(usePremium bool) string {
	if usePremium {
		return "premium"
	}
	return "score"
}
