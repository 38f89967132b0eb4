package reportgen

import (
	"errors"
	"fmt"
)

// ErrNoData is returned before the pipeline runs when there are no reports
// to aggregate. Callers present this separately from generation failures.
var ErrNoData = errors.New("no reports available to generate")

// AggregationError wraps a failure to load or decode the input report set
type AggregationError struct {
	Err error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregation failed: %v", e.Err)
}

func (e *AggregationError) Unwrap() error { return e.Err }

// RenderError is returned when a renderer could not produce a complete
// artifact. Partial output is never returned.
type RenderError struct {
	Format Format
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s report failed: %v", e.Format, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// DeliveryError is returned when every delivery strategy was exhausted
type DeliveryError struct {
	Reason string
	Err    error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("delivery failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("delivery failed: %s", e.Reason)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
