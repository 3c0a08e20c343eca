package metar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_canonicalExample(t *testing.T) {
	result := Parse("METAR KJFK 121851Z 24008KT 10SM FEW250 23/14 A3012 RMK AO2 SLP201 T02330139")
	require.True(t, result.IsSuccess())
	obs := result.Observation

	assert.Equal(t, "KJFK", obs.StationID)
	assert.Equal(t, ReportMETAR, obs.ReportType)
	require.NotNil(t, obs.Wind)
	assert.Equal(t, 240, *obs.Wind.DirectionDegrees)
	assert.Equal(t, 8, obs.Wind.SpeedValue)
	require.NotNil(t, obs.Visibility)
	assert.Equal(t, 10.0, obs.Visibility.DistanceValue)
	require.Len(t, obs.SkyConditions, 1)
	assert.Equal(t, CoverageFEW, obs.SkyConditions[0].Coverage)
	assert.Equal(t, 25000, *obs.SkyConditions[0].HeightFeet)
	require.NotNil(t, obs.Temperature)
	assert.Equal(t, 23, obs.Temperature.Celsius)
	assert.Equal(t, 14, *obs.Temperature.DewpointCelsius)
	require.NotNil(t, obs.Pressure)
	assert.InDelta(t, 30.12, obs.Pressure.Value, 0.001)

	require.NotNil(t, obs.Remarks)
	assert.Equal(t, "AO2", obs.Remarks.AutomatedStationType)
	require.NotNil(t, obs.Remarks.SeaLevelPressure)
	assert.InDelta(t, 1020.1, obs.Remarks.SeaLevelPressure.Hectopascals(), 0.001)
	require.NotNil(t, obs.Remarks.PreciseTemperature)
	assert.InDelta(t, 23.3, obs.Remarks.PreciseTemperature.Celsius, 0.001)
	assert.InDelta(t, 13.9, *obs.Remarks.PreciseTemperature.DewpointCelsius, 0.001)
}

func TestParse_speci(t *testing.T) {
	result := Parse("SPECI KJFK 251651Z 19005KT 10SM FEW250")
	require.True(t, result.IsSuccess())
	assert.Equal(t, ReportSPECI, result.Observation.ReportType)
	assert.Equal(t, 190, *result.Observation.Wind.DirectionDegrees)
	assert.Equal(t, 5, result.Observation.Wind.SpeedValue)
}

func TestParse_invalidRemarkTokenIsSkippedNotFatal(t *testing.T) {
	result := Parse("METAR KJFK 121853Z 28016KT 10SM A3015 RMK AO9 SLP210")
	require.True(t, result.IsSuccess())
	obs := result.Observation
	assert.Empty(t, obs.Remarks.AutomatedStationType)
	require.NotNil(t, obs.Remarks.SeaLevelPressure)
	assert.InDelta(t, 1021.0, obs.Remarks.SeaLevelPressure.Hectopascals(), 0.001)
	assert.Contains(t, obs.Remarks.FreeText, "AO9")
}

func TestParse_surfaceVisibilityVsCloudType(t *testing.T) {
	result := Parse("METAR KJFK 121853Z 28016KT 10SM A3015 RMK SF4 SFC VIS 1 1/2")
	require.True(t, result.IsSuccess())
	obs := result.Observation
	require.Len(t, obs.Remarks.CloudTypes, 1)
	assert.Equal(t, "SF", obs.Remarks.CloudTypes[0].Code)
	require.NotNil(t, obs.Remarks.CloudTypes[0].Oktas)
	assert.Equal(t, 4, *obs.Remarks.CloudTypes[0].Oktas)
	require.NotNil(t, obs.Remarks.SurfaceVisibility)
	assert.InDelta(t, 1.5, obs.Remarks.SurfaceVisibility.DistanceValue, 0.001)
}

func TestParse_peakWindAndWindShift(t *testing.T) {
	result := Parse("METAR KJFK 121853Z 28016KT 10SM A3015 RMK PK WND 28045/1528 WSHFT 1530 FROPA")
	require.True(t, result.IsSuccess())
	remarks := result.Observation.Remarks
	require.NotNil(t, remarks.PeakWind)
	assert.Equal(t, 280, remarks.PeakWind.DirectionDegrees)
	assert.Equal(t, 45, remarks.PeakWind.SpeedKnots)
	require.NotNil(t, remarks.PeakWind.Hour)
	assert.Equal(t, 15, *remarks.PeakWind.Hour)
	assert.Equal(t, 28, *remarks.PeakWind.Minute)

	require.NotNil(t, remarks.WindShift)
	require.NotNil(t, remarks.WindShift.Hour)
	assert.Equal(t, 15, *remarks.WindShift.Hour)
	assert.Equal(t, 30, remarks.WindShift.Minute)
	assert.True(t, remarks.WindShift.FrontalPassage)
}

func TestParse_envelopeFailures(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"", FailureEmptyInput},
		{"   ", FailureEmptyInput},
		{"TAF KJFK 251651Z 2517/2618", FailureNotMETAR},
	}
	for _, tc := range cases {
		result := Parse(tc.raw)
		require.False(t, result.IsSuccess(), tc.raw)
		assert.Equal(t, tc.want, result.Failure.Message, tc.raw)
	}
}

func TestCanParse(t *testing.T) {
	assert.True(t, CanParse("METAR KJFK 121851Z 24008KT 10SM FEW250 23/14 A3012"))
	assert.True(t, CanParse("KJFK 121851Z 24008KT 10SM FEW250 23/14 A3012"))
	assert.False(t, CanParse(""))
	assert.False(t, CanParse("TAF KJFK 251651Z 2517/2618"))
}

func TestParse_idempotent(t *testing.T) {
	raw := "METAR KJFK 121851Z 24008KT 10SM FEW250 23/14 A3012 RMK AO2 SLP201"
	first := Parse(raw)
	second := Parse(raw)
	require.True(t, first.IsSuccess())
	require.True(t, second.IsSuccess())
	assert.Equal(t, first.Observation.RawData, second.Observation.RawData)
	assert.Equal(t, first.Observation.StationID, second.Observation.StationID)
	assert.Equal(t, first.Observation.Wind, second.Observation.Wind)
}
