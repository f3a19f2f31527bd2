/*
 * Copyright 2025 The Locahub Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package prometheus provides a Prometheus metrics exporter.
package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/locahub/locahub/api/types"
	"github.com/locahub/locahub/internal/version"
)

const (
	namespace   = "locahub"
	methodLabel = "method"
	routeLabel  = "route"
	codeLabel   = "code"
	actionLabel = "action"
)

// Metrics manages the metric information that Locahub is trying to measure.
type Metrics struct {
	registry *prometheus.Registry

	serverVersion        *prometheus.GaugeVec
	serverHandledCounter *prometheus.CounterVec
	responseSeconds      *prometheus.HistogramVec

	assignmentTransitionsTotal        *prometheus.CounterVec
	assignmentOverdueCompletionsTotal prometheus.Counter

	projectsCreatedTotal  prometheus.Counter
	projectsAcceptedTotal prometheus.Counter
}

// NewMetrics creates a new instance of Metrics.
func NewMetrics() (*Metrics, error) {
	reg := prometheus.NewRegistry()

	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, fmt.Errorf("register process collector: %w", err)
	}
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("register go collector: %w", err)
	}

	metrics := &Metrics{
		registry: reg,
		serverVersion: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "server",
			Name:      "version",
			Help:      "Which version is running. 1 for 'server_version' label with current version.",
		}, []string{"server_version"}),
		serverHandledCounter: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "server_handled_total",
			Help:      "Total number of HTTP requests completed on the server, regardless of success or failure.",
		}, []string{methodLabel, routeLabel, codeLabel}),
		responseSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "response_seconds",
			Help:      "The response time of HTTP requests.",
		}, []string{routeLabel}),
		assignmentTransitionsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "assignment",
			Name:      "transitions_total",
			Help:      "The total count of assignment transitions performed by workers.",
		}, []string{actionLabel}),
		assignmentOverdueCompletionsTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "assignment",
			Name:      "overdue_completions_total",
			Help:      "The total count of assignments completed after their deadline.",
		}),
		projectsCreatedTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "projects",
			Name:      "created_total",
			Help:      "The total count of created projects.",
		}),
		projectsAcceptedTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "projects",
			Name:      "accepted_total",
			Help:      "The total count of projects accepted by their managers.",
		}),
	}

	metrics.serverVersion.With(prometheus.Labels{
		"server_version": version.Version,
	}).Set(1)

	return metrics, nil
}

// AddServerHandledCounter adds the number of HTTP requests completed on the
// server.
func (m *Metrics) AddServerHandledCounter(method, route, code string) {
	m.serverHandledCounter.With(prometheus.Labels{
		methodLabel: method,
		routeLabel:  route,
		codeLabel:   code,
	}).Inc()
}

// ObserveResponseSeconds adds an observation for the response time of the
// given route.
func (m *Metrics) ObserveResponseSeconds(route string, seconds float64) {
	m.responseSeconds.With(prometheus.Labels{
		routeLabel: route,
	}).Observe(seconds)
}

// AddAssignmentTransition adds the number of transitions of the action.
func (m *Metrics) AddAssignmentTransition(action types.Action) {
	m.assignmentTransitionsTotal.With(prometheus.Labels{
		actionLabel: string(action),
	}).Inc()
}

// AddOverdueCompletion adds the number of late completions.
func (m *Metrics) AddOverdueCompletion() {
	m.assignmentOverdueCompletionsTotal.Inc()
}

// AddProjectCreated adds the number of created projects.
func (m *Metrics) AddProjectCreated() {
	m.projectsCreatedTotal.Inc()
}

// AddProjectAccepted adds the number of accepted projects.
func (m *Metrics) AddProjectAccepted() {
	m.projectsAcceptedTotal.Inc()
}

// Registry returns the registry of this metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
