package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/py2dev/repeatermap/internal/models"
)

func printRepeater(r models.Repeater) {
	coords := "no coordinates"
	if r.HasCoordinates() {
		coords = fmt.Sprintf("%.4f, %.4f", r.Latitude, r.Longitude)
	}
	fmt.Printf("%-14s %-10s %-10s %-7s %-20s %-10s %s\n",
		r.ID, r.Callsign, r.Frequency, r.CTCSS, r.Location, r.Status, coords)
}

// List prints the full collection in insertion order.
func (a *App) List(ctx context.Context) error {
	reps, err := a.registry.All(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	for _, r := range reps {
		printRepeater(r)
	}
	fmt.Printf("%d repeater(s)\n", len(reps))
	return nil
}

// Search prompts for a query and prints the matching records.
func (a *App) Search(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Search (callsign, location, owner or frequency)", os.Stdout)
	if err != nil {
		return err
	}

	reps, err := a.registry.Search(ctx, query)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	for _, r := range reps {
		printRepeater(r)
	}
	fmt.Printf("%d match(es)\n", len(reps))
	return nil
}

// ShowLogs prints the most recent audit entries.
func (a *App) ShowLogs(ctx context.Context) error {
	entries, err := a.audit.Tail(ctx, 20)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	for _, e := range entries {
		if e.RepeaterID != "" {
			fmt.Printf("%s  %-16s %-8s repeater=%s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, e.User, e.RepeaterID)
		} else {
			fmt.Printf("%s  %-16s %s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, e.User)
		}
	}
	return nil
}
