package metar

import "strings"

// scanBody walks the whitespace-separated tokens of the body text and
// dispatches each to the first matching recognizer, in the fixed priority
// order spec.md §4.3 mandates: wind, visibility, RVR, present weather, sky
// condition, temperature/dewpoint, pressure. Unmatched tokens are skipped
// silently (logged at warn level per §4.5/§7).
func scanBody(ctx *parseContext, bodyText string) {
	tokens := strings.Fields(bodyText)
	for i := 0; i < len(tokens); {
		token := tokens[i]

		if token == "CAVOK" {
			v, _ := recognizeVisibility(token)
			ctx.visibility = &v
			i++
			continue
		}

		if w, ok := recognizeWind(token); ok {
			ctx.wind = &w
			i++
			continue
		}

		if joined, consumed := joinFractionalVisibility(tokens, i); consumed == 2 {
			if v, ok := recognizeVisibility(joined); ok {
				ctx.visibility = &v
				i += consumed
				continue
			}
		}
		if v, ok := recognizeVisibility(token); ok {
			ctx.visibility = &v
			i++
			continue
		}

		if rvr, ok := recognizeRVR(token); ok {
			ctx.rvrs = append(ctx.rvrs, rvr)
			i++
			continue
		}

		if pw, ok := recognizePresentWeather(token); ok && looksLikeWeather(token) {
			ctx.presentWeather = append(ctx.presentWeather, pw)
			i++
			continue
		}

		if sc, ok := recognizeSkyCondition(token); ok {
			ctx.skyConditions = append(ctx.skyConditions, sc)
			i++
			continue
		}

		if temp, ok := recognizeTemperature(token); ok {
			ctx.temperature = &temp
			i++
			continue
		}

		if p, ok := recognizePressure(token); ok {
			if ctx.pressure == nil {
				ctx.pressure = &p
			}
			i++
			continue
		}

		warnSkip("no recognizer matched", token)
		i++
	}
}

// looksLikeWeather rejects tokens that start with a sky-coverage code
// (SKC/CLR/FEW/SCT/BKN/OVC/VV). The anchored present-weather pattern does not
// match such tokens on its own, so this is a narrow defensive guard, not
// general policy.
func looksLikeWeather(token string) bool {
	switch {
	case strings.HasPrefix(token, "SKC"), strings.HasPrefix(token, "CLR"),
		strings.HasPrefix(token, "FEW"), strings.HasPrefix(token, "SCT"),
		strings.HasPrefix(token, "BKN"), strings.HasPrefix(token, "OVC"),
		strings.HasPrefix(token, "VV"):
		return false
	}
	return true
}
