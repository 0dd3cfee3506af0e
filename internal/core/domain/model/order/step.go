package order

import (
	"fmt"

	"printflow/internal/pkg/errs"
)

// SectorGeral is the sector recorded for events that do not belong to a
// specific production step, such as order creation and broadcast alerts.
const SectorGeral = "Geral"

// Step identifies one of the five production steps every order moves through.
// Each step has an independent Status, so an order can be in production on
// one step while another step is still pending.
//
// Pipeline order:
//
//	PreImpressao -> Impressao -> Producao -> Instalacao -> Expedicao
//
// The pipeline order defines how the current stage of an order is derived;
// status changes themselves are not restricted to that order.
type Step int

const (
	// StepUnknown represents an invalid or undefined step.
	// This value (0) helps catch uninitialized Step values.
	StepUnknown Step = iota

	// StepPreImpressao is the design and pre-press step.
	StepPreImpressao

	// StepImpressao is the digital printing step.
	StepImpressao

	// StepProducao is the finishing and metalwork step.
	StepProducao

	// StepInstalacao is the field installation step.
	StepInstalacao

	// StepExpedicao is the logistics and dispatch step.
	// Completing this step archives the order.
	StepExpedicao
)

// getStepKeys returns a map of Step values to their stable string keys.
// The keys are used in persistence, history entries and the HTTP API.
func getStepKeys() map[Step]string {
	return map[Step]string{
		StepPreImpressao: "preImpressao",
		StepImpressao:    "impressao",
		StepProducao:     "producao",
		StepInstalacao:   "instalacao",
		StepExpedicao:    "expedicao",
	}
}

// getStepDepartments returns a map of Step values to the display name of the
// department responsible for the step.
func getStepDepartments() map[Step]string {
	return map[Step]string{
		StepPreImpressao: "Design & Pré-Imp",
		StepImpressao:    "Impressão Digital",
		StepProducao:     "Acabamento & Serralheria",
		StepInstalacao:   "Equipe de Campo",
		StepExpedicao:    "Logística & Expedição",
	}
}

// Steps returns all production steps in pipeline order.
func Steps() []Step {
	return []Step{StepPreImpressao, StepImpressao, StepProducao, StepInstalacao, StepExpedicao}
}

// StepFromKey parses a Step from its string key (e.g. "preImpressao").
// Returns an error for unknown keys.
func StepFromKey(key string) (Step, error) {
	for step, k := range getStepKeys() {
		if k == key {
			return step, nil
		}
	}
	return StepUnknown, errs.NewValueIsInvalidErrorWithCause("step", fmt.Errorf("%q is not a valid step key", key))
}

// Key returns the stable string key of the step (e.g. "preImpressao").
// Returns an empty string for invalid steps.
func (s Step) Key() string {
	return getStepKeys()[s]
}

// Department returns the display name of the department responsible for the
// step (e.g. "Impressão Digital"). Returns SectorGeral for invalid steps.
func (s Step) Department() string {
	if d, ok := getStepDepartments()[s]; ok {
		return d
	}
	return SectorGeral
}

// String returns the step key. Implements fmt.Stringer.
func (s Step) String() string {
	if k, ok := getStepKeys()[s]; ok {
		return k
	}
	return "unknown"
}

// Validate checks if the Step value is one of the five production steps.
func (s Step) Validate() error {
	if _, ok := getStepKeys()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("step", fmt.Errorf("%d is not a valid step", s))
	}
	return nil
}
