package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/py2dev/repeatermap/internal/models"
)

// getFloat is an indirection over GetFloat, swappable in tests.
var getFloat = GetFloat

// AddRepeater prompts for a new repeater record. Leave latitude and
// longitude empty when the position is unknown; the record is then kept
// off the map.
func (a *App) AddRepeater(ctx context.Context) error {
	var draft models.RepeaterDraft

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Callsign (e.g. PY2ABC/R)", &draft.Callsign},
		{"Frequency (MHz)", &draft.Frequency},
		{"Offset (MHz)", &draft.Offset},
		{"CTCSS tone", &draft.CTCSS},
		{"Location", &draft.Location},
		{"Power", &draft.Power},
		{"Coverage", &draft.Coverage},
		{"Notes", &draft.Notes},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	lat, err := getFloat(a.reader, "Latitude (empty if unknown)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	lon, err := getFloat(a.reader, "Longitude (empty if unknown)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	draft.Latitude = lat
	draft.Longitude = lon

	statusText, err := getSimpleText(a.reader, "Status (Ativa/Inativa/Manutenção, default Ativa)", os.Stdout)
	if err != nil {
		return err
	}
	draft.Status = models.StatusActive
	if st, ok := models.ParseStatus(statusText); ok {
		draft.Status = st
	}

	owner, err := getSimpleText(a.reader, "Owner callsign (empty = you)", os.Stdout)
	if err != nil {
		return err
	}
	if owner == "" {
		if u := a.sessions.Current(); u != nil {
			owner = u.Indicative
		}
	}
	draft.Owner = owner

	rep, err := a.registry.Add(ctx, draft)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("Added repeater %s (id %s)\n", rep.Callsign, rep.ID)
	return nil
}

// EditRepeater prompts for a record id and new values; empty answers keep
// the current value. A nonexistent id changes nothing.
func (a *App) EditRepeater(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter record id to edit", os.Stdout)
	if err != nil {
		return err
	}

	var patch models.RepeaterPatch
	fields := []struct {
		prompt string
		dst    **string
	}{
		{"Callsign", &patch.Callsign},
		{"Frequency", &patch.Frequency},
		{"Offset", &patch.Offset},
		{"CTCSS tone", &patch.CTCSS},
		{"Location", &patch.Location},
		{"Power", &patch.Power},
		{"Coverage", &patch.Coverage},
		{"Owner", &patch.Owner},
		{"Notes", &patch.Notes},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt+" (empty = keep)", os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = &v
		}
	}

	for _, c := range []struct {
		prompt string
		dst    **float64
	}{
		{"Latitude (empty = keep)", &patch.Latitude},
		{"Longitude (empty = keep)", &patch.Longitude},
	} {
		v, err := getSimpleText(a.reader, c.prompt, os.Stdout)
		if err != nil {
			return err
		}
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			log.Printf("error: not a number: %q", v)
			return err
		}
		*c.dst = &f
	}

	statusText, err := getSimpleText(a.reader, "Status (empty = keep)", os.Stdout)
	if err != nil {
		return err
	}
	if st, ok := models.ParseStatus(statusText); ok {
		patch.Status = &st
	}

	if err := a.registry.Update(ctx, id, patch); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Println("Done.")
	return nil
}

// DeleteRepeater prompts for a record id and removes it. Deleting a
// nonexistent id is a quiet no-op.
func (a *App) DeleteRepeater(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter record id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.registry.Delete(ctx, id); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Println("Done.")
	return nil
}
