// Package metar decodes raw NOAA METAR/SPECI surface observation text into
// structured, immutable observations. It is pure: no network, no filesystem,
// no environment lookups, and safe to call concurrently as long as each call
// uses its own internal builder (it does, automatically).
package metar

import (
	"time"

	"k8s.io/utils/ptr"
)

// ReportType distinguishes a routine observation from a special one.
type ReportType string

const (
	ReportMETAR ReportType = "METAR"
	ReportSPECI ReportType = "SPECI"
)

// ReportModifier flags how the observation was produced.
type ReportModifier string

const (
	ModifierNone ReportModifier = ""
	ModifierAUTO ReportModifier = "AUTO"
	ModifierCOR  ReportModifier = "COR"
	ModifierAMD  ReportModifier = "AMD"
	ModifierRTD  ReportModifier = "RTD"
)

// Observation is the fully decoded, immutable result of a successful parse.
type Observation struct {
	StationID        string
	ReportType        ReportType
	ReportModifier    ReportModifier
	ObservationTime   time.Time
	RawData           string
	Wind              *Wind
	Visibility        *Visibility
	Temperature       *Temperature
	Pressure          *Pressure
	PresentWeather    []PresentWeather
	SkyConditions     []SkyCondition
	RunwayVisualRanges []RunwayVisualRange
	NoSignificantChange bool
	Remarks           *Remarks
}

// VisibilityUnit enumerates the units a Visibility value may be reported in.
type VisibilityUnit string

const (
	UnitStatuteMiles VisibilityUnit = "SM"
	UnitMeters       VisibilityUnit = "M"
)

// Wind is the decoded WWWSSGGGuu wind group.
type Wind struct {
	// DirectionDegrees is nil for a variable (VRB) direction.
	DirectionDegrees *int
	SpeedValue       int
	// GustValue is nil when no gust was reported.
	GustValue *int
	Unit       string // KT, MPS, or KMH
}

// IsVariable reports whether the direction was coded VRB.
func (w Wind) IsVariable() bool { return w.DirectionDegrees == nil }

// IsCalm reports whether the group decoded to 00000KT (calm wind).
func (w Wind) IsCalm() bool {
	return !w.IsVariable() && *w.DirectionDegrees == 0 && w.SpeedValue == 0
}

// SpeedKnots converts the reported speed to knots regardless of wire unit.
func (w Wind) SpeedKnots() float64 {
	return convertSpeedToKnots(float64(w.SpeedValue), w.Unit)
}

// SpeedMPH converts the reported speed to miles per hour.
func (w Wind) SpeedMPH() float64 {
	return w.SpeedKnots() * knotsToMPH
}

func convertSpeedToKnots(value float64, unit string) float64 {
	switch unit {
	case "MPS":
		return value * mpsToKnots
	case "KMH":
		return value * kmhToKnots
	default:
		return value
	}
}

// Visibility is the decoded prevailing visibility group.
type Visibility struct {
	DistanceValue    float64
	Unit             VisibilityUnit
	LessThan         bool
	GreaterThan      bool
	IsCAVOK          bool
	SpecialCondition string // e.g. "NDV"; empty when not applicable
}

// StatuteMiles returns the visibility expressed in statute miles.
func (v Visibility) StatuteMiles() float64 {
	if v.Unit == UnitStatuteMiles {
		return v.DistanceValue
	}
	return v.DistanceValue / metersPerStatuteMile
}

// Meters returns the visibility expressed in meters.
func (v Visibility) Meters() float64 {
	if v.Unit == UnitMeters {
		return v.DistanceValue
	}
	return v.DistanceValue * metersPerStatuteMile
}

// SkyCoverage enumerates the coverage codes a SkyCondition may carry.
type SkyCoverage string

const (
	CoverageSKC SkyCoverage = "SKC"
	CoverageCLR SkyCoverage = "CLR"
	CoverageNSC SkyCoverage = "NSC"
	CoverageFEW SkyCoverage = "FEW"
	CoverageSCT SkyCoverage = "SCT"
	CoverageBKN SkyCoverage = "BKN"
	CoverageOVC SkyCoverage = "OVC"
	CoverageVV  SkyCoverage = "VV"
)

// SkyCondition is one layer of the decoded sky-condition sequence.
type SkyCondition struct {
	Coverage SkyCoverage
	// HeightFeet is nil for SKC/CLR/NSC or an unreadable height group.
	HeightFeet *int
	// CloudType is CB, TCU, or empty.
	CloudType string
}

// IsCeiling reports whether this layer is a ceiling-forming layer
// (BKN, OVC, or an indefinite ceiling reported as vertical visibility).
func (s SkyCondition) IsCeiling() bool {
	return s.Coverage == CoverageBKN || s.Coverage == CoverageOVC || s.Coverage == CoverageVV
}

// PresentWeather is a decoded ww group: optional intensity, descriptor, and
// up to one each of precipitation/obscuration/other phenomenon.
type PresentWeather struct {
	RawCode       string
	Intensity     string // "-", "+", "VC", or ""
	Descriptor    string // MI, PR, BC, DR, BL, SH, TS, FZ, or ""
	Precipitation string // DZ, RA, SN, SG, IC, PL, GR, GS, UP, or ""
	Obscuration   string // BR, FG, FU, VA, DU, SA, HZ, PY, or ""
	Other         string // PO, SQ, FC, SS, DS, or ""
	IsNSW         bool   // "no significant weather" sentinel
}

// Temperature is the decoded main-body Ta/Td group, in whole degrees C.
type Temperature struct {
	Celsius int
	// DewpointCelsius is nil when the dewpoint half was missing.
	DewpointCelsius *int
}

// Fahrenheit converts the air temperature to Fahrenheit.
func (t Temperature) Fahrenheit() float64 {
	return celsiusToFahrenheit(float64(t.Celsius))
}

// DewpointFahrenheit converts the dewpoint to Fahrenheit, if present.
func (t Temperature) DewpointFahrenheit() *float64 {
	if t.DewpointCelsius == nil {
		return nil
	}
	return ptr.To(celsiusToFahrenheit(float64(*t.DewpointCelsius)))
}

func celsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }

// PressureUnit enumerates the units a Pressure value may be reported in.
type PressureUnit string

const (
	UnitInchesHg     PressureUnit = "INCHES_HG"
	UnitHectopascals PressureUnit = "HECTOPASCALS"
)

// Pressure is a decoded altimeter setting or sea-level pressure.
type Pressure struct {
	Value float64
	Unit  PressureUnit
}

// Hectopascals returns the pressure expressed in hectopascals.
func (p Pressure) Hectopascals() float64 {
	if p.Unit == UnitHectopascals {
		return p.Value
	}
	return p.Value * inHgToHectopascals
}

// InchesHg returns the pressure expressed in inches of mercury.
func (p Pressure) InchesHg() float64 {
	if p.Unit == UnitInchesHg {
		return p.Value
	}
	return p.Value / inHgToHectopascals
}

// RunwayVisualRange is a decoded Rrr/vvvv RVR group.
type RunwayVisualRange struct {
	Runway             string
	VisualRangeFeet    *int
	VariableLow        *int
	VariableHigh       *int
	Prefix             string // "P", "M", or ""
	Trend              string // "U", "D", "N", or ""
	IsCleared          bool
}

const (
	knotsToMPH           = 1.15078
	mpsToKnots           = 1.94384
	kmhToKnots           = 0.539957
	metersPerStatuteMile = 1609.344
	inHgToHectopascals   = 33.8639
)
