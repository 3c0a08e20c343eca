package metar

import "strings"

// Parse decodes a raw METAR or SPECI report into an Observation, or returns
// a Failure describing why the envelope could not be extracted. It never
// panics: recognizer-level problems are silently skipped per spec.md §4.5.
func Parse(raw string) Result {
	env, fail := splitEnvelope(raw)
	if fail != nil {
		return failure(fail.Message)
	}

	ctx := newParseContext()
	scanBody(ctx, env.bodyText)
	if env.hasRemarks {
		ctx.remarks = parseRemarks(env.remarksText)
	}

	obs := ctx.finalize(env)
	obs.RawData = strings.TrimSpace(raw)
	return success(obs)
}

// CanParse reports whether the envelope prefix of raw would pass the checks
// Parse applies before ever touching the body or remarks text: non-empty,
// and either a METAR/SPECI keyword or a bare station ID up front.
func CanParse(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}
	_, _, _, rest := extractIssueDate(trimmed)
	_, _, ok := extractReportType(rest)
	return ok
}
