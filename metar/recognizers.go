package metar

import (
	"regexp"
	"strconv"
	"strings"

	"k8s.io/utils/ptr"
)

// Token recognizers: pure functions from a whitespace-delimited token to a
// value type or a non-match. None of them panic; a bad token is simply
// rejected and the scanner moves on (spec.md §4.2, §7).

var (
	windPattern = regexp.MustCompile(`^(?P<dir>\d{3}|VRB)(?P<spd>\d{2,3})(G(?P<gust>\d{2,3}))?(?P<unit>KT|MPS|KMH)$`)

	visWholeFraction = regexp.MustCompile(`^(?P<pre>[MP])?(?P<whole>\d+)SM$`)
	visMixedFraction = regexp.MustCompile(`^(?P<pre>[MP])?(?P<whole>\d+)_(?P<n>\d)/(?P<d>\d)SM$`)
	visPureFraction  = regexp.MustCompile(`^(?P<pre>[MP])?(?P<n>\d)/(?P<d>\d)SM$`)
	visMeters        = regexp.MustCompile(`^(?P<pre>[MP])?(?P<m>\d{4})$`)
	visMissing       = regexp.MustCompile(`^/{4}$`)

	presentWeatherPattern = regexp.MustCompile(
		`^(?P<int>-|\+|VC)?(?P<desc>MI|PR|BC|DR|BL|SH|TS|FZ)?(?P<precip>DZ|RA|SN|SG|IC|PL|GR|GS|UP)?(?P<obs>BR|FG|FU|VA|DU|SA|HZ|PY)?(?P<other>PO|SQ|FC|SS|DS|NSW)?$`)

	skyHeightPattern = regexp.MustCompile(`^(FEW|SCT|BKN|OVC|VV)(\d{3}|///)(CB|TCU)?$`)

	tempPattern = regexp.MustCompile(`^(M)?(\d{2})/((M)?(\d{2}))?$`)

	altimeterInHg = regexp.MustCompile(`^AA?(\d{4})$`)
	altimeterQ    = regexp.MustCompile(`^Q(?:NH)?(\d{3,4})$`)
	altimeterIns  = regexp.MustCompile(`^(\d{4})INS$`)
	altimeterBare = regexp.MustCompile(`^(\d{3})$`)

	rvrPattern = regexp.MustCompile(
		`^R(?P<rwy>\d{2}[LCR]?)/(?:CLRD(?P<clrd>\d{0,2})|(?P<pre1>[MP])?(?P<v1>\d{4})(?:V(?P<pre2>[MP])?(?P<v2>\d{4}))?(?:FT)?(?P<trend>[UDN])?)$`)

	// rvrTrailingDigits matches the numeric-trailing-suffix RVR form
	// (spec.md §4.2, e.g. "R01L/040070"): more than 4 digits after the
	// slash with no V/FT/trend suffix recognizable. The first 4 digits are
	// the range; the rest is discarded.
	rvrTrailingDigits = regexp.MustCompile(`^R(?P<rwy>\d{2}[LCR]?)/(?P<v1>\d{4})\d+$`)
)

func recognizeWind(token string) (Wind, bool) {
	m := matchNamed(windPattern, token)
	if m == nil {
		return Wind{}, false
	}
	w := Wind{Unit: m["unit"]}
	if m["dir"] != "VRB" {
		dir, err := strconv.Atoi(normalizeDigits(m["dir"]))
		if err != nil {
			return Wind{}, false
		}
		w.DirectionDegrees = ptr.To(dir)
	}
	speed, err := strconv.Atoi(normalizeDigits(m["spd"]))
	if err != nil {
		return Wind{}, false
	}
	w.SpeedValue = speed
	if m["gust"] != "" {
		gust, err := strconv.Atoi(normalizeDigits(m["gust"]))
		if err == nil {
			w.GustValue = ptr.To(gust)
		}
	}
	return w, true
}

func recognizeVisibility(token string) (Visibility, bool) {
	switch token {
	case "CAVOK":
		return Visibility{IsCAVOK: true}, true
	case "NDV":
		return Visibility{SpecialCondition: "NDV"}, true
	}
	if visMissing.MatchString(token) {
		return Visibility{}, false
	}

	// "a b/c SM" arrives as two tokens upstream of the scanner in raw text,
	// but the scanner re-joins them with an underscore sentinel before
	// calling this recognizer (see joinFractionalVisibility).
	if m := matchNamed(visMixedFraction, token); m != nil {
		whole, _ := strconv.Atoi(m["whole"])
		n, _ := strconv.Atoi(m["n"])
		d, _ := strconv.Atoi(m["d"])
		if d == 0 {
			return Visibility{}, false
		}
		v := Visibility{DistanceValue: float64(whole) + float64(n)/float64(d), Unit: UnitStatuteMiles}
		applyVisPrefix(&v, m["pre"])
		return v, true
	}
	if m := matchNamed(visPureFraction, token); m != nil {
		n, _ := strconv.Atoi(m["n"])
		d, _ := strconv.Atoi(m["d"])
		if d == 0 {
			return Visibility{}, false
		}
		v := Visibility{DistanceValue: float64(n) / float64(d), Unit: UnitStatuteMiles}
		applyVisPrefix(&v, m["pre"])
		return v, true
	}
	if m := matchNamed(visWholeFraction, token); m != nil {
		whole, err := strconv.Atoi(m["whole"])
		if err != nil {
			return Visibility{}, false
		}
		v := Visibility{DistanceValue: float64(whole), Unit: UnitStatuteMiles}
		applyVisPrefix(&v, m["pre"])
		return v, true
	}
	if m := matchNamed(visMeters, token); m != nil {
		meters, err := strconv.Atoi(normalizeDigits(m["m"]))
		if err != nil {
			return Visibility{}, false
		}
		v := Visibility{DistanceValue: float64(meters), Unit: UnitMeters}
		applyVisPrefix(&v, m["pre"])
		return v, true
	}
	return Visibility{}, false
}

func applyVisPrefix(v *Visibility, prefix string) {
	switch prefix {
	case "M":
		v.LessThan = true
	case "P":
		v.GreaterThan = true
	}
}

// joinFractionalVisibility recognizes the "a b/c SM" two-token form in the
// main-body scanner and reports how many tokens it consumed.
func joinFractionalVisibility(tokens []string, i int) (string, int) {
	if i+1 < len(tokens) && visPureFraction.MatchString(tokens[i+1]) && regexp.MustCompile(`^\d+$`).MatchString(tokens[i]) {
		return tokens[i] + "_" + tokens[i+1], 2
	}
	return tokens[i], 1
}

func recognizePresentWeather(token string) (PresentWeather, bool) {
	if token == "" {
		return PresentWeather{}, false
	}
	m := matchNamed(presentWeatherPattern, token)
	if m == nil {
		return PresentWeather{}, false
	}
	pw := PresentWeather{
		RawCode:       token,
		Intensity:     m["int"],
		Descriptor:    m["desc"],
		Precipitation: m["precip"],
		Obscuration:   m["obs"],
	}
	if m["other"] == "NSW" {
		pw.IsNSW = true
	} else {
		pw.Other = m["other"]
	}
	if pw.Intensity == "" && pw.Descriptor == "" && pw.Precipitation == "" && pw.Obscuration == "" && pw.Other == "" {
		return PresentWeather{}, false
	}
	return pw, true
}

func recognizeSkyCondition(token string) (SkyCondition, bool) {
	token = normalizePrefix(token)
	switch token {
	case "SKC":
		return SkyCondition{Coverage: CoverageSKC}, true
	case "CLR":
		return SkyCondition{Coverage: CoverageCLR}, true
	case "NSC", "NCD":
		// spec.md §9 open question: NCD is deliberately conflated with NSC.
		return SkyCondition{Coverage: CoverageNSC}, true
	}
	groups := skyHeightPattern.FindStringSubmatch(token)
	if groups == nil {
		return SkyCondition{}, false
	}
	sc := SkyCondition{Coverage: SkyCoverage(groups[1]), CloudType: groups[3]}
	if groups[2] == "///" {
		if sc.Coverage == CoverageVV {
			return SkyCondition{}, false // VV requires a non-null height
		}
		return sc, true
	}
	height, err := strconv.Atoi(normalizeDigits(groups[2]))
	if err != nil {
		return SkyCondition{}, false
	}
	sc.HeightFeet = ptr.To(height * 100)
	return sc, true
}

func recognizeTemperature(token string) (Temperature, bool) {
	m := skyTempMatch(token)
	if m == nil {
		return Temperature{}, false
	}
	return *m, true
}

func skyTempMatch(token string) *Temperature {
	groups := tempPattern.FindStringSubmatch(token)
	if groups == nil {
		return nil
	}
	if groups[2] == "" {
		return nil
	}
	if strings.Contains(token, "X") || strings.Contains(token, "//") {
		return nil
	}
	temp, err := strconv.Atoi(groups[2])
	if err != nil {
		return nil
	}
	if groups[1] == "M" {
		temp = -temp
	}
	t := Temperature{Celsius: temp}
	if groups[5] != "" {
		dew, err := strconv.Atoi(groups[5])
		if err == nil {
			if groups[4] == "M" {
				dew = -dew
			}
			t.DewpointCelsius = ptr.To(dew)
		}
	}
	return &t
}

func recognizePressure(token string) (Pressure, bool) {
	if m := altimeterInHg.FindStringSubmatch(token); m != nil {
		val, err := strconv.Atoi(normalizeDigits(m[1]))
		if err != nil {
			return Pressure{}, false
		}
		return Pressure{Value: float64(val) / 100.0, Unit: UnitInchesHg}, true
	}
	if m := altimeterQ.FindStringSubmatch(token); m != nil {
		val, err := strconv.Atoi(normalizeDigits(m[1]))
		if err != nil {
			return Pressure{}, false
		}
		return Pressure{Value: float64(val), Unit: UnitHectopascals}, true
	}
	if m := altimeterIns.FindStringSubmatch(token); m != nil {
		val, err := strconv.Atoi(normalizeDigits(m[1]))
		if err != nil {
			return Pressure{}, false
		}
		return Pressure{Value: float64(val) / 100.0, Unit: UnitInchesHg}, true
	}
	if m := altimeterBare.FindStringSubmatch(token); m != nil {
		val, err := strconv.Atoi(normalizeDigits(m[1]))
		if err != nil {
			return Pressure{}, false
		}
		return Pressure{Value: float64(val), Unit: UnitHectopascals}, true
	}
	return Pressure{}, false
}

func recognizeRVR(token string) (RunwayVisualRange, bool) {
	m := matchNamed(rvrPattern, token)
	if m == nil {
		m = matchNamed(rvrTrailingDigits, token)
		if m == nil {
			return RunwayVisualRange{}, false
		}
		v1, err := strconv.Atoi(normalizeDigits(m["v1"]))
		if err != nil {
			return RunwayVisualRange{}, false
		}
		return RunwayVisualRange{Runway: m["rwy"], VisualRangeFeet: ptr.To(v1)}, true
	}
	r := RunwayVisualRange{Runway: m["rwy"], Prefix: m["pre1"], Trend: m["trend"]}
	if strings.Contains(token, "CLRD") {
		r.IsCleared = true
		r.Prefix = ""
		return r, true
	}
	v1, err := strconv.Atoi(normalizeDigits(m["v1"]))
	if err != nil {
		return RunwayVisualRange{}, false
	}
	if m["v2"] != "" {
		v2, err := strconv.Atoi(normalizeDigits(m["v2"]))
		if err != nil {
			return RunwayVisualRange{}, false
		}
		r.VariableLow = ptr.To(v1)
		r.VariableHigh = ptr.To(v2)
		if m["pre2"] != "" {
			r.Prefix = m["pre2"]
		}
	} else {
		r.VisualRangeFeet = ptr.To(v1)
	}
	return r, true
}

// matchNamed runs re against s and returns the named capture groups, or nil
// on no match.
func matchNamed(re *regexp.Regexp, s string) map[string]string {
	groups := re.FindStringSubmatch(s)
	if groups == nil {
		return nil
	}
	result := make(map[string]string, len(groups))
	for i, name := range re.SubexpNames() {
		if name != "" {
			result[name] = groups[i]
		}
	}
	return result
}
