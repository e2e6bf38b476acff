// Package metrics records payroll execution telemetry.
package metrics

import (
	"time"

	"payflow/internal/core/domain"
)

// Noop implements ports.MetricsRecorder and discards everything.
type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObservePhase(domain.Phase, time.Duration) {}

func (Noop) RecordOutcome(string, domain.RecipientStatus, int) {}

func (Noop) RecordRun(string) {}

func (Noop) SetSavingsPercent(int) {}
