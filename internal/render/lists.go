package render

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/klubbsidan/klubbctl/internal/api"
)

// previewLength caps how much free-text content a list row shows.
const previewLength = 100

func preview(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > previewLength {
		return s[:previewLength] + "…"
	}
	return s
}

// orDash substitutes a dash for empty optional fields so columns stay
// readable.
func orDash(s string) string {
	if s == "" {
		return "–"
	}
	return s
}

func table(write func(w *tabwriter.Writer)) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	write(w)
	w.Flush()
	return b.String()
}

// AdminBookings renders the admin booking list with status and requester
// details.
func AdminBookings(items []api.Booking) string {
	if len(items) == 0 {
		return "Inga bokningar än.\n"
	}
	return table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tSTATUS\tDATUM\tTYP\tNAMN\tE-POST\tTELEFON\tTITEL")
		for _, item := range items {
			date := item.Start
			if item.End != "" {
				date += " → " + item.End
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				item.ID, orDash(item.Status), date, orDash(item.BookingType),
				orDash(item.Name), orDash(item.Email), orDash(item.Phone), preview(item.Title))
		}
	})
}

// Messages renders the contact message list.
func Messages(items []api.ContactMessage) string {
	if len(items) == 0 {
		return "Inga meddelanden än.\n"
	}
	return table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tNAMN\tE-POST\tMOTTAGET\tMEDDELANDE")
		for _, item := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				item.ID, item.Name, item.Email, shortTimestamp(item.CreatedAt), preview(item.Message))
		}
	})
}

// Members renders the member signup list.
func Members(items []api.MemberSignup) string {
	if len(items) == 0 {
		return "Inga anmälningar än.\n"
	}
	return table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tMEDLEMSNR\tNAMN\tE-POST\tTELEFON\tANMÄLD")
		for _, item := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				item.ID, orDash(item.MemberNumber), item.Name, item.Email,
				orDash(item.Phone), shortTimestamp(item.CreatedAt))
		}
	})
}

// Board renders the board member list.
func Board(members []api.BoardMember) string {
	if len(members) == 0 {
		return "Inga styrelsemedlemmar inlagda än.\n"
	}
	return table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tROLL\tNAMN\tKONTAKT\tBILD")
		for _, m := range members {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				m.ID, m.Role, m.Name, orDash(m.Contact), orDash(m.ImagePath))
		}
	})
}

// Events renders the event list.
func Events(events []api.Event) string {
	if len(events) == 0 {
		return "Inga event inlagda än.\n"
	}
	return table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tDATUM\tTITEL\tBESKRIVNING\tBILD")
		for _, ev := range events {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				ev.ID, orDash(ev.Date), ev.Title, preview(orDash(ev.Description)), orDash(ev.ImagePath))
		}
	})
}

// Gallery renders the gallery image list.
func Gallery(images []api.GalleryImage) string {
	if len(images) == 0 {
		return "Inga bilder uppladdade än.\n"
	}
	return table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "FILNAMN\tURL")
		for _, img := range images {
			fmt.Fprintf(w, "%s\t%s\n", img.Filename, img.URL)
		}
	})
}

// Sections renders the page section list.
func Sections(sections []api.PageSection) string {
	if len(sections) == 0 {
		return "Inga sektioner inlagda än.\n"
	}
	return table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tRUBRIK\tINNEHÅLL")
		for _, s := range sections {
			fmt.Fprintf(w, "%d\t%s\t%s\n", s.ID, s.Title, preview(s.Content))
		}
	})
}

// Sponsors renders the sponsor list.
func Sponsors(sponsors []api.Sponsor) string {
	if len(sponsors) == 0 {
		return "Inga sponsorer inlagda än.\n"
	}
	return table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "NAMN\tBESKRIVNING\tWEBB")
		for _, s := range sponsors {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, preview(orDash(s.Description)), orDash(s.URL))
		}
	})
}

// HomeLinks renders the start-page link pills: section title is the display
// name, content the URL. An empty list renders nothing, like the hidden
// section on the site.
func HomeLinks(links []api.PageSection) string {
	if len(links) == 0 {
		return ""
	}
	return table(func(w *tabwriter.Writer) {
		for _, link := range links {
			fmt.Fprintf(w, "%s\t%s\n", link.Title, link.Content)
		}
	})
}

// shortTimestamp trims an ISO timestamp to "YYYY-MM-DD HH:MM" the way the
// admin panel shows it.
func shortTimestamp(ts string) string {
	if len(ts) < 16 {
		return orDash(ts)
	}
	return strings.Replace(ts[:16], "T", " ", 1)
}
