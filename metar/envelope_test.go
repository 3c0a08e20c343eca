package metar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEnvelope_issueDatePrefixAndModifier(t *testing.T) {
	env, fail := splitEnvelope("2024/03/31 18:00 METAR KJFK 311751Z AUTO 24008KT 10SM FEW250 23/14 A3012")
	require.Nil(t, fail)
	assert.Equal(t, "KJFK", env.stationID)
	assert.Equal(t, ReportMETAR, env.reportType)
	assert.Equal(t, ModifierAUTO, env.reportModifier)
	assert.Equal(t, time.Date(2024, 3, 31, 17, 51, 0, 0, time.UTC), env.obsTime)
	assert.Equal(t, "24008KT 10SM FEW250 23/14 A3012", env.bodyText)
	assert.False(t, env.hasRemarks)
}

func TestSplitEnvelope_monthRollback(t *testing.T) {
	env, fail := splitEnvelope("2024/04/01 00:30 METAR KJFK 312351Z 24008KT 10SM")
	require.Nil(t, fail)
	assert.Equal(t, time.Date(2024, 3, 31, 23, 51, 0, 0, time.UTC), env.obsTime)
}

func TestSplitEnvelope_yearRollbackAcrossJanuary(t *testing.T) {
	env, fail := splitEnvelope("2024/01/02 00:00 METAR KJFK 312351Z 24008KT 10SM")
	require.Nil(t, fail)
	assert.Equal(t, time.Date(2023, 12, 31, 23, 51, 0, 0, time.UTC), env.obsTime)
}

func TestSplitEnvelope_bareStationIDDefaultsToMETAR(t *testing.T) {
	env, fail := splitEnvelope("KJFK 121851Z 24008KT 10SM")
	require.Nil(t, fail)
	assert.Equal(t, ReportMETAR, env.reportType)
	assert.Equal(t, "KJFK", env.stationID)
}

func TestSplitEnvelope_speciKeyword(t *testing.T) {
	env, fail := splitEnvelope("SPECI KJFK 121851Z 24008KT 10SM")
	require.Nil(t, fail)
	assert.Equal(t, ReportSPECI, env.reportType)
}

func TestSplitEnvelope_trailingRMKWithNoText(t *testing.T) {
	env, fail := splitEnvelope("METAR KJFK 121851Z 24008KT 10SM RMK")
	require.Nil(t, fail)
	assert.True(t, env.hasRemarks)
	assert.Empty(t, env.remarksText)
	assert.Equal(t, "24008KT 10SM", env.bodyText)
}

func TestSplitEnvelope_nosigStripped(t *testing.T) {
	env, fail := splitEnvelope("METAR KJFK 121851Z 24008KT 10SM NOSIG")
	require.Nil(t, fail)
	assert.True(t, env.noSignificantChange)
	assert.Equal(t, "24008KT 10SM", env.bodyText)
}

func TestSplitEnvelope_failures(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", FailureEmptyInput},
		{"blank", "   ", FailureEmptyInput},
		{"notMetar", "TAF KJFK 251651Z 2517/2618", FailureNotMETAR},
		{"noStationID", "METAR 121851Z 24008KT", FailureMissingStationID},
		{"malformedStationID", "METAR K1 121851Z 24008KT", FailureMissingStationID},
		{"malformedObsTime", "METAR KJFK 1218Z 24008KT", FailureMissingStationID},
	}
	for _, tc := range cases {
		_, fail := splitEnvelope(tc.raw)
		require.NotNil(t, fail, tc.name)
		assert.Equal(t, tc.want, fail.Message, tc.name)
	}
}
