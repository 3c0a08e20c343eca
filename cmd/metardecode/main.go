// Command metardecode decodes a raw METAR/SPECI report supplied on the
// command line or on stdin, and prints a colorized, human-readable summary.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/aviationwx/metardecode/metar"
)

var (
	labelColor   = color.New(color.FgCyan)
	valueColor   = color.New(color.FgWhite)
	sectionColor = color.New(color.FgBlue)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func main() {
	noColor := flag.Bool("no-color", false, "Disable color output")
	rawOnly := flag.Bool("raw", false, "Print the trimmed raw report and exit, skipping decode")
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}
	metar.Logger.SetOutput(os.Stderr)

	raw, err := readReport(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, errorColor.Sprintf("metardecode: %v", err))
		os.Exit(1)
	}

	if *rawOnly {
		fmt.Println(strings.TrimSpace(raw))
		return
	}

	result := metar.Parse(raw)
	if !result.IsSuccess() {
		fmt.Fprintln(os.Stderr, errorColor.Sprintf("metardecode: %s", result.Failure.Error()))
		os.Exit(1)
	}
	printObservation(result.Observation)
}

// readReport joins the non-flag arguments with single spaces into the
// report, falling back to stdin when no argument was given (so the tool composes in a
// pipeline the same way the teacher's CLI does).
func readReport(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
		return "", fmt.Errorf("no report given: pass it as an argument or pipe it on stdin")
	}
	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("no report given: pass it as an argument or pipe it on stdin")
	}
	return string(data), nil
}

func printObservation(obs *metar.Observation) {
	sectionColor.Println("== " + obs.StationID + " " + string(obs.ReportType) + " ==")
	labelColor.Print("Observed: ")
	valueColor.Println(obs.ObservationTime.Format("2006-01-02 15:04Z"))

	if obs.Wind != nil {
		printWind(*obs.Wind)
	}
	if obs.Visibility != nil {
		printVisibility(*obs.Visibility)
	}
	for _, rvr := range obs.RunwayVisualRanges {
		printRVR(rvr)
	}
	for _, pw := range obs.PresentWeather {
		labelColor.Print("Weather: ")
		valueColor.Println(pw.RawCode)
	}
	for _, sc := range obs.SkyConditions {
		printSkyCondition(sc)
	}
	if obs.Temperature != nil {
		printTemperature(*obs.Temperature)
	}
	if obs.Pressure != nil {
		printPressure(*obs.Pressure)
	}
	if obs.NoSignificantChange {
		labelColor.Println("Trend: no significant change expected")
	}
	if obs.Remarks != nil {
		printRemarks(*obs.Remarks)
	}
}

func printWind(w metar.Wind) {
	labelColor.Print("Wind: ")
	switch {
	case w.IsCalm():
		valueColor.Println("calm")
	case w.IsVariable():
		valueColor.Printf("variable at %d kt", w.SpeedValue)
	default:
		valueColor.Printf("%d° at %d kt", *w.DirectionDegrees, w.SpeedValue)
	}
	if w.GustValue != nil {
		valueColor.Printf(", gusting %d kt", *w.GustValue)
	}
	fmt.Println()
}

func printVisibility(v metar.Visibility) {
	labelColor.Print("Visibility: ")
	switch {
	case v.IsCAVOK:
		valueColor.Println("CAVOK")
	case v.SpecialCondition != "":
		valueColor.Println(v.SpecialCondition)
	default:
		prefix := ""
		if v.LessThan {
			prefix = "less than "
		} else if v.GreaterThan {
			prefix = "greater than "
		}
		unit := "statute miles"
		if v.Unit == metar.UnitMeters {
			unit = "meters"
		}
		valueColor.Printf("%s%.2f %s", prefix, v.DistanceValue, unit)
		fmt.Println()
	}
}

func printRVR(r metar.RunwayVisualRange) {
	labelColor.Printf("RVR %s: ", r.Runway)
	switch {
	case r.IsCleared:
		valueColor.Println("sensor cleared")
	case r.VariableLow != nil:
		valueColor.Printf("%d to %d ft", *r.VariableLow, *r.VariableHigh)
		fmt.Println()
	default:
		valueColor.Printf("%d ft", *r.VisualRangeFeet)
		fmt.Println()
	}
}

func printSkyCondition(sc metar.SkyCondition) {
	labelColor.Print("Sky: ")
	valueColor.Print(string(sc.Coverage))
	if sc.HeightFeet != nil {
		valueColor.Printf(" at %d ft", *sc.HeightFeet)
	}
	if sc.CloudType != "" {
		valueColor.Printf(" (%s)", sc.CloudType)
	}
	fmt.Println()
}

func printTemperature(t metar.Temperature) {
	labelColor.Print("Temperature: ")
	valueColor.Printf("%d°C", t.Celsius)
	if t.DewpointCelsius != nil {
		valueColor.Printf(" / dewpoint %d°C", *t.DewpointCelsius)
	}
	fmt.Println()
}

func printPressure(p metar.Pressure) {
	labelColor.Print("Altimeter: ")
	if p.Unit == metar.UnitHectopascals {
		valueColor.Printf("%.1f hPa", p.Value)
	} else {
		valueColor.Printf("%.2f inHg", p.Value)
	}
	fmt.Println()
}

func printRemarks(r metar.Remarks) {
	sectionColor.Println("-- Remarks --")
	if r.AutomatedStationType != "" {
		labelColor.Print("Station: ")
		valueColor.Println(r.AutomatedStationType)
	}
	if r.SeaLevelPressure != nil {
		labelColor.Print("Sea-level pressure: ")
		valueColor.Printf("%.1f hPa", r.SeaLevelPressure.Hectopascals())
		fmt.Println()
	}
	if r.PreciseTemperature != nil {
		labelColor.Print("Precise temperature: ")
		valueColor.Printf("%.1f°C", r.PreciseTemperature.Celsius)
		if r.PreciseTemperature.DewpointCelsius != nil {
			valueColor.Printf(" / dewpoint %.1f°C", *r.PreciseTemperature.DewpointCelsius)
		}
		fmt.Println()
	}
	if r.PeakWind != nil {
		labelColor.Print("Peak wind: ")
		valueColor.Printf("%d° at %d kt", r.PeakWind.DirectionDegrees, r.PeakWind.SpeedKnots)
		fmt.Println()
	}
	for _, ev := range r.WeatherEvents {
		labelColor.Print("Weather event: ")
		valueColor.Println(ev.Intensity + ev.Code)
	}
	if r.MaintenanceRequired {
		warnColor.Println("Maintenance required")
	}
	if r.FreeText != "" {
		labelColor.Print("Unparsed: ")
		valueColor.Println(r.FreeText)
	}
}
