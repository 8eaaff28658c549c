// Command suntable prints a table of solar event times for a location and
// date range.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"go.ngs.io/solar-api/internal/domain"
)

func main() {
	lat := flag.Float64("lat", 52.02182, "latitude in degrees (north positive)")
	lon := flag.Float64("lon", 8.53509, "longitude in degrees (east positive)")
	dateStr := flag.String("date", "", "first date as YYYY-MM-DD (default: today, UTC)")
	days := flag.Int("days", 1, "number of consecutive days")
	flag.Parse()

	date := time.Now().UTC()
	if *dateStr != "" {
		var err error
		date, err = time.Parse("2006-01-02", *dateStr)
		if err != nil {
			log.Fatalf("invalid date %q: %v", *dateStr, err)
		}
	}
	if *days < 1 {
		log.Fatalf("days must be at least 1, got %d", *days)
	}

	for i := 0; i < *days; i++ {
		d := date.AddDate(0, 0, i)
		st := domain.ComputeSunTimes(*lat, *lon, d)

		fmt.Printf("==== %s  (lat %.5f, lon %.5f) ====\n", d.Format("2006-01-02"), *lat, *lon)
		printOptional(" a. dawn", st.AstroDawn)
		printOptional(" n. dawn", st.NautDawn)
		printOptional(" c. dawn", st.CivilDawn)
		printOptional(" sunrise", st.Sunrise)
		printTime("    noon", st.Noon)
		printOptional("  sunset", st.Sunset)
		printOptional(" c. dusk", st.CivilDusk)
		printOptional(" n. dusk", st.NautDusk)
		printOptional(" a. dusk", st.AstroDusk)
		printTime("midnight", st.Midnight)
	}
}

func printTime(label string, t time.Time) {
	fmt.Printf("%s: %s\n", label, t.Format("2006-01-02 15:04:05 MST"))
}

func printOptional(label string, t *time.Time) {
	if t == nil {
		fmt.Printf("%s: does not happen\n", label)
		return
	}
	printTime(label, *t)
}
