package metar

// parseContext is the mutable builder shared by the main-body scanner and
// the remarks parser for one decode call (spec.md §9: replaces the source's
// polymorphic parser hierarchy with free functions over a shared struct).
// It is never shared across calls, so Parse is safe to call concurrently.
type parseContext struct {
	wind           *Wind
	visibility     *Visibility
	temperature    *Temperature
	pressure       *Pressure
	presentWeather []PresentWeather
	skyConditions  []SkyCondition
	rvrs           []RunwayVisualRange
	remarks        *remarksBuilder
}

func newParseContext() *parseContext {
	return &parseContext{}
}

// finalize moves the context's accumulators into an immutable Observation.
func (c *parseContext) finalize(env envelope) *Observation {
	obs := &Observation{
		StationID:           env.stationID,
		ReportType:          env.reportType,
		ReportModifier:      env.reportModifier,
		ObservationTime:     env.obsTime,
		RawData:             "", // set by caller, which knows the trimmed raw string
		Wind:                c.wind,
		Visibility:          c.visibility,
		Temperature:         c.temperature,
		Pressure:            c.pressure,
		PresentWeather:      c.presentWeather,
		SkyConditions:       c.skyConditions,
		RunwayVisualRanges:  c.rvrs,
		NoSignificantChange: env.noSignificantChange,
	}
	if c.remarks != nil {
		obs.Remarks = c.remarks.finalize()
	}
	return obs
}
