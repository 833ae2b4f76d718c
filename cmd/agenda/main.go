// Command agenda renders the weekly appointment grid of a clinic in the
// terminal, talking to a running scheduling API.
//
// Usage:
//
//	AGENDA_API_URL=http://localhost:8080 AGENDA_TOKEN=<jwt> agenda [-date 2024-03-11] [-weeks -1]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/dentalcare/clinic-scheduler/internal/calendar"
	"github.com/dentalcare/clinic-scheduler/internal/client"
	domain "github.com/dentalcare/clinic-scheduler/internal/domain/appointment"
)

func main() {
	godotenv.Load()

	dateFlag := flag.String("date", "", "anchor date (2006-01-02), defaults to today")
	weeksFlag := flag.Int("weeks", 0, "week offset from the anchor date")
	flag.Parse()

	apiURL := os.Getenv("AGENDA_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}
	token := os.Getenv("AGENDA_TOKEN")
	if token == "" {
		log.Fatal("AGENDA_TOKEN es requerido")
	}

	now := time.Now
	if *dateFlag != "" {
		anchor, err := time.ParseInLocation("2006-01-02", *dateFlag, time.Local)
		if err != nil {
			log.Fatalf("fecha inválida %q: %v", *dateFlag, err)
		}
		now = func() time.Time { return anchor }
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	session := calendar.NewSession(client.New(apiURL, token), calendar.WithClock(now))

	for i := 0; i < *weeksFlag; i++ {
		session.Next(ctx)
	}
	for i := 0; i > *weeksFlag; i-- {
		session.Previous(ctx)
	}

	if err := session.Refresh(ctx); err != nil {
		log.Fatalf("error al cargar la agenda: %v", err)
	}

	renderWeek(os.Stdout, session)
}

func renderWeek(out *os.File, session *calendar.Session) {
	days := session.Days()
	fmt.Fprintf(out, "Semana del %s al %s\n\n",
		days[0].Format("02/01/2006"), days[len(days)-1].Format("02/01/2006"))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprint(w, "Hora")
	for _, d := range days {
		fmt.Fprintf(w, "\t%s %s", weekdayES(d.Weekday()), d.Format("02/01"))
	}
	fmt.Fprintln(w)

	for _, hour := range session.Hours() {
		fmt.Fprintf(w, "%02d:00", hour)
		for _, d := range days {
			fmt.Fprintf(w, "\t%s", cell(session.Slot(d, hour)))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}

func cell(appointments []calendar.Appointment) string {
	switch len(appointments) {
	case 0:
		return "·"
	case 1:
		ap := appointments[0]
		name := ap.PatientName
		if name == "" {
			name = ap.PatientID
		}
		return fmt.Sprintf("%s (%s)", name, domain.Info(ap.Status).Label)
	default:
		return fmt.Sprintf("%d citas", len(appointments))
	}
}

func weekdayES(wd time.Weekday) string {
	switch wd {
	case time.Monday:
		return "Lun"
	case time.Tuesday:
		return "Mar"
	case time.Wednesday:
		return "Mié"
	case time.Thursday:
		return "Jue"
	case time.Friday:
		return "Vie"
	case time.Saturday:
		return "Sáb"
	default:
		return "Dom"
	}
}
