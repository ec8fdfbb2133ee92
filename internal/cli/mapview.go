package cli

import (
	"context"
	"fmt"
	"log"
)

// MapView prints the map feed: only records with real coordinates appear;
// the 0,0 "no coordinates" sentinel is never plotted.
func (a *App) MapView(ctx context.Context) error {
	reps, err := a.registry.Plottable(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	for _, r := range reps {
		fmt.Printf("%-10s %10.4f %10.4f  %-10s %s\n", r.Callsign, r.Latitude, r.Longitude, r.Status, r.Location)
	}
	fmt.Printf("%d plotted\n", len(reps))
	return nil
}
