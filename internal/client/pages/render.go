package pages

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
)

func RenderEvent(w io.Writer, e *models.Event) {
	fmt.Fprintf(w, "%s\n", e.Name)
	if e.Season != nil && e.Season.Name != "" {
		fmt.Fprintf(w, "Season:   %s\n", e.Season.Name)
	}
	fmt.Fprintf(w, "Place:    %s\n", e.Place)
	fmt.Fprintf(w, "Date:     %s\n", FormatDate(e.CreatedAt))
	fmt.Fprintf(w, "Price:    %s\n", FormatPrice(e.Price))
	if e.Description != "" {
		fmt.Fprintf(w, "\n%s\n", e.Description)
	}

	fmt.Fprintln(w, "\nVideos")
	if len(e.Medias) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tTITLE\tPRICE")
	for _, m := range e.Medias {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", m.ID, m.Title, FormatPrice(m.Price))
	}
	tw.Flush()
}

func RenderSeason(w io.Writer, s *models.Season) {
	fmt.Fprintf(w, "%s\n", s.Name)
	fmt.Fprintf(w, "Place:    %s\n", s.Place)
	fmt.Fprintf(w, "Date:     %s\n", FormatDate(s.CreatedAt))
	fmt.Fprintf(w, "Price:    %s\n", FormatPrice(s.Price))
	if s.Description != "" {
		fmt.Fprintf(w, "\n%s\n", s.Description)
	}

	fmt.Fprintln(w, "\nEvents")
	if len(s.Events) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tNAME\tDATE\tVIDEOS\tPRICE")
	for _, e := range s.Events {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%d videos\t%s\n",
			e.ID, e.Name, FormatDate(e.CreatedAt), len(e.Medias), FormatPrice(e.Price))
	}
	tw.Flush()
}

func RenderMedia(w io.Writer, m *models.Media) {
	fmt.Fprintf(w, "%s\n", m.Title)
	if m.Description != "" {
		fmt.Fprintf(w, "%s\n", m.Description)
	}
	fmt.Fprintln(w)

	var eventName, author string
	if m.Event != nil {
		eventName = m.Event.Name
		if m.Event.User != nil {
			author = m.Event.User.FirstName
		}
	}
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "Event name:\t%s\n", eventName)
	fmt.Fprintf(tw, "Author:\t%s\n", author)
	fmt.Fprintf(tw, "Price:\t%s\n", FormatPrice(m.Price))
	fmt.Fprintf(tw, "Resolution:\t%s\n", m.Resolution)
	fmt.Fprintf(tw, "Length:\t%s\n", m.Length)
	fmt.Fprintf(tw, "File Size:\t%s\n", m.FileSize)
	tw.Flush()

	fmt.Fprintf(w, "\nbuy %s  (Buy for %s)\n", m.ID, FormatPrice(m.Price))
}

// RenderSuggestions lists search hits, or a hint when there are none.
func RenderSuggestions(w io.Writer, items []models.Suggestion) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No events found")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range items {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", s.ID, s.Name, s.Place)
	}
	tw.Flush()
}
