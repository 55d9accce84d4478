package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var suspensionTransitions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hituru_admin_member_suspension_transitions_total",
		Help: "Member ban/unban transitions by action and outcome",
	},
	[]string{"action", "outcome"},
)

func observeTransition(action string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	suspensionTransitions.WithLabelValues(action, outcome).Inc()
}
