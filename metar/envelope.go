package metar

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	issueDatePrefix = regexp.MustCompile(`^(\d{4})/(\d{2})/(\d{2}) (\d{2}):(\d{2}) `)
	reportKeyword   = regexp.MustCompile(`^(METAR|SPECI)\s+`)
	stationIDRegex  = regexp.MustCompile(`^[A-Z][A-Z0-9]{3}$`)
	obsTimeRegex    = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})Z$`)
	modifierRegex   = regexp.MustCompile(`^(AUTO|COR|AMD|RTD)$`)
)

// envelope holds the fields extracted by splitEnvelope before the main-body
// scanner and remarks parser run.
type envelope struct {
	reportType     ReportType
	reportModifier ReportModifier
	stationID      string
	obsTime        time.Time
	bodyText       string
	remarksText    string
	hasRemarks     bool
	noSignificantChange bool
}

// splitEnvelope implements spec.md §4.1 steps 1-8.
func splitEnvelope(raw string) (envelope, *Failure) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return envelope{}, &Failure{Message: FailureEmptyInput}
	}

	issueYear, issueMonth, issueDay, rest := extractIssueDate(trimmed)

	reportType, rest, ok := extractReportType(rest)
	if !ok {
		return envelope{}, &Failure{Message: FailureNotMETAR}
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return envelope{}, &Failure{Message: FailureMissingStationID}
	}
	stationID := fields[0]
	if !stationIDRegex.MatchString(stationID) {
		return envelope{}, &Failure{Message: FailureMissingStationID}
	}

	if len(fields) < 2 {
		return envelope{}, &Failure{Message: FailureMissingStationID}
	}
	timeMatch := obsTimeRegex.FindStringSubmatch(fields[1])
	if timeMatch == nil {
		return envelope{}, &Failure{Message: FailureMissingStationID}
	}
	day, _ := strconv.Atoi(timeMatch[1])
	hour, _ := strconv.Atoi(timeMatch[2])
	minute, _ := strconv.Atoi(timeMatch[3])
	obsTime := resolveObservationTime(issueYear, issueMonth, issueDay, day, hour, minute)

	remainderIdx := 2
	modifier := ModifierNone
	if len(fields) > remainderIdx && modifierRegex.MatchString(fields[remainderIdx]) {
		modifier = ReportModifier(fields[remainderIdx])
		remainderIdx++
	}

	remainder := strings.Join(fields[remainderIdx:], " ")
	bodyText, remarksText, hasRemarks := splitRemarks(remainder)

	nosig := false
	bodyFields := strings.Fields(bodyText)
	if len(bodyFields) > 0 && bodyFields[len(bodyFields)-1] == "NOSIG" {
		nosig = true
		bodyFields = bodyFields[:len(bodyFields)-1]
	}

	return envelope{
		reportType:          reportType,
		reportModifier:      modifier,
		stationID:            stationID,
		obsTime:              obsTime,
		bodyText:             strings.Join(bodyFields, " "),
		remarksText:          remarksText,
		hasRemarks:           hasRemarks,
		noSignificantChange:  nosig,
	}, nil
}

func extractIssueDate(s string) (year, month, day int, rest string) {
	if m := issueDatePrefix.FindStringSubmatch(s); m != nil {
		year, _ = strconv.Atoi(m[1])
		monthInt, _ := strconv.Atoi(m[2])
		day, _ = strconv.Atoi(m[3])
		return year, monthInt, day, s[len(m[0]):]
	}
	now := time.Now().UTC()
	return now.Year(), int(now.Month()), now.Day(), s
}

func extractReportType(s string) (ReportType, string, bool) {
	if m := reportKeyword.FindStringSubmatch(s); m != nil {
		rt := ReportType(m[1])
		return rt, s[len(m[0]):], true
	}
	// No keyword: accept only if the remainder looks like it starts with a
	// bare station ID, defaulting to METAR (spec.md §4.1 step 3).
	fields := strings.Fields(s)
	if len(fields) > 0 && stationIDRegex.MatchString(fields[0]) {
		return ReportMETAR, s, true
	}
	return "", s, false
}

// resolveObservationTime applies the month-rollback rule of spec.md §4.1
// step 5: the day-of-month in the obs time is compared against the issue
// date's day; if the obs day is greater, the observation must belong to the
// previous month (the report was issued just after a month boundary).
func resolveObservationTime(issueYear, issueMonth, issueDay, obsDay, hour, minute int) time.Time {
	year, month := issueYear, issueMonth
	if obsDay > issueDay {
		month--
		if month < 1 {
			month = 12
			year--
		}
	}
	return time.Date(year, time.Month(month), obsDay, hour, minute, 0, 0, time.UTC)
}

// splitRemarks splits on the first " RMK " (or a trailing " RMK") per
// spec.md §4.1 step 7.
func splitRemarks(s string) (body, remarks string, hasRemarks bool) {
	idx := strings.Index(s, " RMK ")
	if idx >= 0 {
		return s[:idx], strings.TrimSpace(s[idx+len(" RMK "):]), true
	}
	if strings.HasSuffix(s, " RMK") {
		return s[:len(s)-len(" RMK")], "", true
	}
	return s, "", false
}
