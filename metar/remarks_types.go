package metar

// Remarks is the sparse record produced by the RMK-tail parser. Every field
// is optional; absence means the corresponding group never appeared (or
// appeared malformed and was silently skipped, per spec.md §4.4/§4.5).
type Remarks struct {
	AutomatedStationType string // "AO1", "AO2", or ""

	SeaLevelPressure *Pressure
	PreciseTemperature *PreciseTemperature

	PeakWind *PeakWind
	WindShift *WindShift

	VariableVisibility *VariableVisibility
	TowerVisibility    *Visibility
	SurfaceVisibility  *Visibility

	HourlyPrecipitation         *PrecipitationAmount
	SixHourPrecipitation        *PrecipitationAmount
	TwentyFourHourPrecipitation *PrecipitationAmount
	HailSizeInches              *float64

	WeatherEvents         []WeatherEvent
	ThunderstormLocations []ThunderstormLocation

	PressureTendency *PressureTendency

	SixHourMaxTemperature        *float64
	SixHourMinTemperature        *float64
	TwentyFourHourMaxTemperature *float64
	TwentyFourHourMinTemperature *float64

	VariableCeiling    *VariableCeiling
	CeilingSecondSite  *CeilingSecondSite
	ObscurationLayers  []ObscurationLayer
	CloudTypes         []CloudTypeRemark

	AutomatedMaintenanceIndicators []string
	MaintenanceRequired            bool

	FreeText string
}

// PreciseTemperature is the tenths-of-a-degree T-group remark, distinct from
// the whole-degree main-body Temperature group.
type PreciseTemperature struct {
	Celsius         float64
	DewpointCelsius *float64
}

// PeakWind is the PK WND dddff/hhmm group.
type PeakWind struct {
	DirectionDegrees int
	SpeedKnots       int
	Hour             *int
	Minute           *int
}

// WindShift is the WSHFT hhmm group.
type WindShift struct {
	Hour             *int
	Minute           int
	FrontalPassage   bool
}

// WindDirection8 is one of the eight-point compass directions used by
// variable-visibility remarks.
type WindDirection8 string

// VariableVisibility is the VIS [dir] a/bVc/d group.
type VariableVisibility struct {
	Min       float64
	Max       float64
	Direction WindDirection8 // "" when no direction prefix was given
}

// PrecipitationAmount is a P/6/7-prefixed precipitation group.
type PrecipitationAmount struct {
	Inches  float64
	IsTrace bool
	PeriodHours int
}

// WeatherEvent is one begin/end record inside a chained weather-event remark
// (e.g. RAB15E30).
type WeatherEvent struct {
	Intensity string // "-", "+", or ""
	Code      string // weather phenomenon code, e.g. "RA", "TS"
	BeginHour *int
	BeginMinute *int
	EndHour   *int
	EndMinute *int
}

// ThunderstormLocation is a TS/CBMAM/VIRGA location remark. Location remarks
// led by CB, TCU or ACC are recorded as CloudTypeRemark values instead.
type ThunderstormLocation struct {
	CloudType       string
	Qualifier       string // OHD, VC, DSNT, DSIPTD, TOP, TR, or ""
	Direction       string // e.g. "NE", "" when absent
	DirectionRange  string // e.g. "NE-E", "" when absent
	MovingDirection string // direction after "MOV", "" when absent
}

// PressureTendency is the 5appp 3-hour pressure-tendency group.
type PressureTendency struct {
	Code       int // 0-8
	ChangeHpa  float64
}

// VariableCeiling is the CIG aaaVbbb group.
type VariableCeiling struct {
	MinFeet int
	MaxFeet int
}

// CeilingSecondSite is the CIG aaa [location] group.
type CeilingSecondSite struct {
	HeightFeet int
	Location   string // "" when no second-site location token followed
}

// ObscurationLayer is a coverage+phenomenon+height remark (e.g. FEW FG 002).
type ObscurationLayer struct {
	Coverage   SkyCoverage
	Phenomenon string
	HeightFeet int
}

// CloudTypeRemark is a cloud-type-with-oktas remark (e.g. SF4, CB OHD MOV NE).
type CloudTypeRemark struct {
	Code      string
	Oktas     *int
	Qualifier string
	Location  string
	Movement  string
}
