package metar

import (
	"io"
	"log"
)

// Failure is the fatal-parse-failure variant of the Parse result. The
// message set is exhaustive and matches spec.md §4.5/§7 exactly; callers may
// compare Failure.Message against these constants but should not assume the
// set never grows for other language bindings of this decoder.
type Failure struct {
	Message string
}

func (f Failure) Error() string { return f.Message }

const (
	FailureEmptyInput       = "Raw data cannot be null or empty"
	FailureNotMETAR         = "Data is not a valid METAR report"
	FailureMissingStationID = "Could not extract station ID from METAR"
)

// Result is the Success(Observation) | Failure(message) sum type returned by
// Parse. Exactly one of Observation/Failure is non-zero.
type Result struct {
	Observation *Observation
	Failure     *Failure
}

// IsSuccess reports whether the parse produced an Observation.
func (r Result) IsSuccess() bool { return r.Failure == nil }

func success(obs *Observation) Result { return Result{Observation: obs} }

func failure(message string) Result { return Result{Failure: &Failure{Message: message}} }

// Logger receives warn-level notices for tokens that matched a recognizer's
// shape but failed semantic validation, and for tokens nothing recognized.
// It defaults to discarding output; set it (e.g. to a logger backed by
// os.Stderr) to observe skipped-token diagnostics.
var Logger = log.New(io.Discard, "metar: ", log.LstdFlags)

func warnSkip(reason, token string) {
	Logger.Printf("skipped token %q: %s", token, reason)
}
