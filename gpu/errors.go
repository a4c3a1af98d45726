package gpu

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Error classes returned by Bootstrap. Concrete errors are marked with one of
// these, so errors.Is(err, ErrQueryFailure) etc. classify any error that
// comes out of this package.
var (
	// ErrQueryFailure is returned when the driver refuses a capability query.
	ErrQueryFailure = errors.New("capability query failed")

	// ErrUnsupportedConfiguration is returned when no device satisfies the
	// requirements, or a required layer or extension is missing.
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")

	// ErrCreationFailure is returned when a native create call fails.
	ErrCreationFailure = errors.New("resource creation failed")

	// ErrContractViolation is returned for programming errors such as
	// inverted clamp bounds or a malformed shader blob.
	ErrContractViolation = errors.New("contract violation")
)

// StepError attributes a bootstrap failure to the step that produced it.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func queryFailure(err error, query string) error {
	return errors.Mark(errors.Wrapf(err, "query %s", query), ErrQueryFailure)
}

func creationFailure(err error, object string) error {
	return errors.Mark(errors.Wrapf(err, "create %s", object), ErrCreationFailure)
}

func unsupportedf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrUnsupportedConfiguration)
}

func contractViolationf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrContractViolation)
}
