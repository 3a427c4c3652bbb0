package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/klubbsidan/klubbctl/internal/api"
	"github.com/klubbsidan/klubbctl/internal/booking"
	"github.com/klubbsidan/klubbctl/internal/config"
	"github.com/klubbsidan/klubbctl/internal/export"
	"github.com/klubbsidan/klubbctl/internal/render"
	"github.com/klubbsidan/klubbctl/internal/upload"
)

func printHelp() {
	fmt.Fprintf(os.Stderr, `klubbctl — Club Website Console

A command-line client for the club website API: the public booking calendar
with slot availability, public pages (events, gallery, sponsors, board,
information), form submissions, and the login-gated admin panel.

USAGE:
    %s [OPTIONS] COMMAND [ARGS]

OPTIONS:
    -h, --help              Show this help message and exit
    --config FILE           Path to JSON config file (optional)
    --base-url URL          Base URL of the club website
                            (overrides config file and KLUBB_BASE_URL env var)
    --session-path PATH     Path to the stored admin session
                            (overrides config file and KLUBB_SESSION_PATH env var)
    --yes                   Skip confirmation prompts for destructive commands

CONFIGURATION PRECEDENCE (highest to lowest):
    1. Command-line flags
    2. Environment variables (a .env file in the working directory is read first)
    3. Config file (--config)
    4. Defaults

ENVIRONMENT VARIABLES:
    KLUBB_BASE_URL          Base URL of the club website (required unless set elsewhere)
    KLUBB_SESSION_PATH      Path to the stored admin session
    KLUBB_REQUEST_TIMEOUT   Request timeout in seconds (default: 30)
    KLUBB_SECTIONS_PAGE     Default page for the sections command (default: "information")

PUBLIC COMMANDS:
    calendar [--month YYYY-MM]        Show the booking month calendar
    availability DATE                 Show slot availability for a date
    book --name N --email E --phone P --date D --type T [--slot HH:MM]
                                      Submit a booking (types: 2h, heldag, helg)
    export --out FILE                 Export the booking calendar as iCalendar
    events                            List events
    gallery list                      List gallery images
    sponsors                          List sponsors
    links                             List the start-page quick links
    board list                        List board members
    sections [--page PAGE] list       List page sections
    member --name N --email E [--phone P]
                                      Submit a membership application
    contact --name N --email E --message M
                                      Send a contact message

ADMIN COMMANDS (require login):
    login                             Log in and store the session
    logout                            Log out and clear the stored session
    bookings list                     List all bookings with status
    bookings approve|pending|deny ID  Change a booking's status
    bookings delete ID                Delete a booking
    bookings add --title T --start D [--end D]
                                      Add a manual, pre-approved booking
    messages list|delete ID           Manage contact messages
    members list|delete ID            Manage member signups (GDPR delete)
    board add --role R --name N [--contact C]
    board edit ID --role R --name N [--contact C]
    board delete ID
    board image ID FILE               Upload a board member photo
    events add --title T [--date D] [--desc TEXT]
    events edit ID --title T [--date D] [--desc TEXT]
    events delete ID
    events image ID FILE              Upload an event photo
    gallery upload FILE...            Upload gallery images (one at a time)
    gallery delete FILENAME
    sections [--page PAGE] add --title T --content TEXT
    sections edit ID --title T --content TEXT
    sections delete ID

EXAMPLES:
    # Show availability and book the first free slot on a date
    %s availability 2026-03-15
    %s book --name "Anna" --email anna@example.com --phone 0701234567 \
        --date 2026-03-15 --type 2h --slot 12:00

    # Log in and approve a booking request
    %s login
    %s bookings approve 12

`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0])
}

func main() {
	helpFlag := flag.Bool("help", false, "Show help message")
	helpFlagShort := flag.Bool("h", false, "Show help message (shorthand)")
	configFile := flag.String("config", "", "Path to JSON config file (optional)")
	baseURL := flag.String("base-url", "", "Base URL of the club website")
	sessionPath := flag.String("session-path", "", "Path to the stored admin session")
	yes := flag.Bool("yes", false, "Skip confirmation prompts for destructive commands")
	flag.Parse()

	if *helpFlag || *helpFlagShort || flag.NArg() == 0 {
		printHelp()
		if flag.NArg() == 0 && !*helpFlag && !*helpFlagShort {
			os.Exit(2)
		}
		os.Exit(0)
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	ctx := context.Background()

	cfg, err := config.Load(*configFile, *baseURL, *sessionPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store := api.NewSessionStore(cfg.SessionPath)
	client, err := api.NewClient(cfg.BaseURL, store, time.Duration(cfg.RequestTimeoutSeconds)*time.Second)
	if err != nil {
		log.Fatalf("Failed to create API client: %v", err)
	}

	app := &app{client: client, cfg: cfg, skipConfirm: *yes}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	if err := app.run(ctx, command, args); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

type app struct {
	client      *api.Client
	cfg         *config.Config
	skipConfirm bool
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "calendar":
		return a.runCalendar(ctx, args)
	case "availability":
		return a.runAvailability(ctx, args)
	case "book":
		return a.runBook(ctx, args)
	case "export":
		return a.runExport(ctx, args)
	case "events":
		return a.runEvents(ctx, args)
	case "gallery":
		return a.runGallery(ctx, args)
	case "sponsors":
		return a.runSponsors(ctx)
	case "links":
		return a.runLinks(ctx)
	case "board":
		return a.runBoard(ctx, args)
	case "sections":
		return a.runSections(ctx, args)
	case "member":
		return a.runMember(ctx, args)
	case "contact":
		return a.runContact(ctx, args)
	case "login":
		return a.runLogin(ctx)
	case "logout":
		return a.runLogout(ctx)
	case "bookings":
		return a.runBookings(ctx, args)
	case "messages":
		return a.runMessages(ctx, args)
	case "members":
		return a.runMembers(ctx, args)
	default:
		printHelp()
		return fmt.Errorf("unknown command %q", command)
	}
}

// userMessage maps an error to what the user should read: server rejections
// verbatim, transport failures replaced with a generic connectivity message,
// local usage errors as-is.
func userMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, api.ErrConnectivity) {
		log.Printf("Warning: %v", err)
		return "Kunde inte ansluta till servern."
	}
	return err.Error()
}

// confirm asks before a destructive action. The --yes flag skips the prompt.
func (a *app) confirm(prompt string) bool {
	if a.skipConfirm {
		return true
	}
	fmt.Printf("%s [j/N]: ", prompt)
	var answer string
	if _, err := fmt.Scanln(&answer); err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "j" || answer == "ja" || answer == "y"
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func (a *app) runCalendar(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("calendar", flag.ExitOnError)
	monthFlag := fs.String("month", "", "Month to show as YYYY-MM (default: current month)")
	fs.Parse(args)

	now := time.Now()
	year, month := now.Year(), now.Month()
	if *monthFlag != "" {
		parsed, err := time.Parse("2006-01", *monthFlag)
		if err != nil {
			return fmt.Errorf("invalid month %q, expected YYYY-MM: %w", *monthFlag, err)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	engine := booking.NewEngine(a.client)
	if err := engine.Refresh(ctx); err != nil {
		return err
	}

	fmt.Print(render.MonthGrid(year, month, engine.Cache()))
	return nil
}

func (a *app) runAvailability(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: availability DATE")
	}
	date := args[0]
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, err)
	}

	engine := booking.NewEngine(a.client)
	if err := engine.Refresh(ctx); err != nil {
		return err
	}

	cache := engine.Cache()
	fmt.Print(render.AvailabilityPanel(cache.Availability(date), ""))
	return nil
}

func (a *app) runBook(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	name := fs.String("name", "", "Requester name")
	email := fs.String("email", "", "Requester email")
	phone := fs.String("phone", "", "Requester phone")
	date := fs.String("date", "", "Booking date as YYYY-MM-DD")
	bookingType := fs.String("type", api.BookingType2H, "Booking type: 2h, heldag or helg")
	slot := fs.String("slot", "", "Slot start time for 2h bookings (default: first free)")
	fs.Parse(args)

	if *name == "" || *email == "" || *date == "" {
		return fmt.Errorf("book requires --name, --email and --date")
	}
	switch *bookingType {
	case api.BookingType2H, api.BookingTypeFullDay, api.BookingTypeWeekend:
	default:
		return fmt.Errorf("invalid booking type %q, expected 2h, heldag or helg", *bookingType)
	}

	engine := booking.NewEngine(a.client)
	if err := engine.Refresh(ctx); err != nil {
		return err
	}
	cache := engine.Cache()

	req := api.BookingRequest{
		Name:        strings.TrimSpace(*name),
		Email:       strings.TrimSpace(*email),
		Phone:       strings.TrimSpace(*phone),
		Date:        *date,
		BookingType: *bookingType,
	}

	av := cache.Availability(*date)
	if *bookingType == api.BookingType2H {
		if av.FullyBooked {
			return &api.APIError{Message: "Datumet är fullbokat."}
		}
		req.TimeSlot = *slot
		if req.TimeSlot == "" {
			for _, opt := range av.Slots {
				if opt.Selected {
					req.TimeSlot = opt.Key
					break
				}
			}
		}
		if !booking.IsSlotKey(req.TimeSlot) {
			return fmt.Errorf("invalid slot %q, expected one of %s", req.TimeSlot, strings.Join(booking.SlotKeys, ", "))
		}
		if cache.TakenSlots(*date)[req.TimeSlot] {
			return &api.APIError{Message: fmt.Sprintf("Tidsluckan %s är redan bokad.", booking.SlotLabels[req.TimeSlot])}
		}
	} else if warning := cache.Warning(*date, *bookingType); warning != "" {
		// Advisory only — the server makes the final call, and the local
		// cache may be stale.
		fmt.Println(warning)
	}

	message, err := engine.Submit(ctx, req)
	if err != nil {
		return err
	}

	if message == "" {
		message = "Bokning bekräftad!"
	}
	fmt.Println(message)
	return nil
}

func (a *app) runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("out", "bokningar.ics", "Output file")
	fs.Parse(args)

	bookings, err := a.client.ListBookings(ctx)
	if err != nil {
		return err
	}

	if err := export.WriteFile(*out, bookings); err != nil {
		return err
	}

	fmt.Printf("Skrev %d bokningar till %s\n", len(bookings), *out)
	return nil
}

func (a *app) runLogin(ctx context.Context) error {
	if a.client.HasSession(ctx) {
		fmt.Println("Du är redan inloggad.")
		return nil
	}

	fmt.Print("Lösenord: ")
	var password string
	if _, err := fmt.Scanln(&password); err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if err := a.client.Login(ctx, password); err != nil {
		return err
	}

	fmt.Println("Inloggad.")
	return nil
}

func (a *app) runLogout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Utloggad.")
	return nil
}

func (a *app) runBookings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: bookings list|approve|pending|deny|delete|add")
	}

	switch args[0] {
	case "list":
		items, err := a.client.ListAdminBookings(ctx)
		if err != nil {
			return err
		}
		fmt.Print(render.AdminBookings(items))
		return nil

	case "approve", "pending", "deny":
		if len(args) != 2 {
			return fmt.Errorf("usage: bookings %s ID", args[0])
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		status := map[string]string{
			"approve": api.StatusApproved,
			"pending": api.StatusPending,
			"deny":    api.StatusDenied,
		}[args[0]]
		if err := a.client.SetBookingStatus(ctx, id, status); err != nil {
			return err
		}
		return a.printBookings(ctx)

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: bookings delete ID")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if !a.confirm("Ta bort bokningen permanent? Detta går inte att ångra.") {
			return nil
		}
		if err := a.client.DeleteBooking(ctx, id); err != nil {
			return err
		}
		return a.printBookings(ctx)

	case "add":
		fs := flag.NewFlagSet("bookings add", flag.ExitOnError)
		title := fs.String("title", "", "Booking title")
		start := fs.String("start", "", "Start date (YYYY-MM-DD)")
		end := fs.String("end", "", "End date, exclusive (optional)")
		fs.Parse(args[1:])
		if *title == "" || *start == "" {
			return fmt.Errorf("bookings add requires --title and --start")
		}
		if err := a.client.AddBooking(ctx, *title, *start, *end); err != nil {
			return err
		}
		fmt.Println("Bokning tillagd!")
		return a.printBookings(ctx)

	default:
		return fmt.Errorf("unknown bookings subcommand %q", args[0])
	}
}

// printBookings re-fetches and re-renders the admin list after a mutation, so
// the output always reflects server state.
func (a *app) printBookings(ctx context.Context) error {
	items, err := a.client.ListAdminBookings(ctx)
	if err != nil {
		return err
	}
	fmt.Print(render.AdminBookings(items))
	return nil
}

func (a *app) runMessages(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: messages list|delete ID")
	}

	switch args[0] {
	case "list":
		items, err := a.client.ListMessages(ctx)
		if err != nil {
			return err
		}
		fmt.Print(render.Messages(items))
		return nil

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: messages delete ID")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if !a.confirm("Ta bort meddelandet permanent?") {
			return nil
		}
		if err := a.client.DeleteMessage(ctx, id); err != nil {
			return err
		}
		items, err := a.client.ListMessages(ctx)
		if err != nil {
			return err
		}
		fmt.Print(render.Messages(items))
		return nil

	default:
		return fmt.Errorf("unknown messages subcommand %q", args[0])
	}
}

func (a *app) runMembers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: members list|delete ID")
	}

	switch args[0] {
	case "list":
		items, err := a.client.ListMembers(ctx)
		if err != nil {
			return err
		}
		fmt.Print(render.Members(items))
		return nil

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: members delete ID")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if !a.confirm("Radera anmälan permanent? (GDPR-radering)") {
			return nil
		}
		if err := a.client.DeleteMember(ctx, id); err != nil {
			return err
		}
		items, err := a.client.ListMembers(ctx)
		if err != nil {
			return err
		}
		fmt.Print(render.Members(items))
		return nil

	default:
		return fmt.Errorf("unknown members subcommand %q", args[0])
	}
}

func (a *app) runMember(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("member", flag.ExitOnError)
	name := fs.String("name", "", "Name")
	email := fs.String("email", "", "Email")
	phone := fs.String("phone", "", "Phone (optional)")
	fs.Parse(args)

	if *name == "" || *email == "" {
		return fmt.Errorf("member requires --name and --email")
	}

	message, err := a.client.SignupMember(ctx, strings.TrimSpace(*name), strings.TrimSpace(*email), strings.TrimSpace(*phone))
	if err != nil {
		return err
	}
	fmt.Println(message)
	return nil
}

func (a *app) runContact(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("contact", flag.ExitOnError)
	name := fs.String("name", "", "Name")
	email := fs.String("email", "", "Email")
	message := fs.String("message", "", "Message text")
	fs.Parse(args)

	if *name == "" || *email == "" || *message == "" {
		return fmt.Errorf("contact requires --name, --email and --message")
	}

	reply, err := a.client.SendContactMessage(ctx, strings.TrimSpace(*name), strings.TrimSpace(*email), strings.TrimSpace(*message))
	if err != nil {
		return err
	}
	if reply == "" {
		reply = "Ditt meddelande är mottaget."
	}
	fmt.Println(reply)
	return nil
}

func (a *app) runBoard(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: board list|add|edit|delete|image")
	}

	switch args[0] {
	case "list":
		members, err := a.client.ListBoard(ctx)
		if err != nil {
			return err
		}
		fmt.Print(render.Board(members))
		return nil

	case "add":
		fs := flag.NewFlagSet("board add", flag.ExitOnError)
		role := fs.String("role", "", "Board role")
		name := fs.String("name", "", "Name")
		contact := fs.String("contact", "", "Contact info (optional)")
		fs.Parse(args[1:])
		if *role == "" || *name == "" {
			return fmt.Errorf("board add requires --role and --name")
		}
		if err := a.client.CreateBoardMember(ctx, *role, *name, *contact); err != nil {
			return err
		}
		fmt.Println("Styrelsemedlem tillagd!")
		return nil

	case "edit":
		if len(args) < 2 {
			return fmt.Errorf("usage: board edit ID --role R --name N [--contact C]")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		fs := flag.NewFlagSet("board edit", flag.ExitOnError)
		role := fs.String("role", "", "Board role")
		name := fs.String("name", "", "Name")
		contact := fs.String("contact", "", "Contact info (optional)")
		fs.Parse(args[2:])
		if *role == "" || *name == "" {
			return fmt.Errorf("board edit requires --role and --name")
		}
		return a.client.UpdateBoardMember(ctx, id, *role, *name, *contact)

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: board delete ID")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if !a.confirm("Ta bort styrelsemedlemmen permanent?") {
			return nil
		}
		return a.client.DeleteBoardMember(ctx, id)

	case "image":
		if len(args) != 3 {
			return fmt.Errorf("usage: board image ID FILE")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		path, err := upload.Prepare(args[2], upload.DefaultMaxWidth)
		if err != nil {
			return err
		}
		task := upload.Task{ID: id, Path: path}
		if err := a.client.UploadBoardImage(ctx, task.ID, task.Path); err != nil {
			return err
		}
		fmt.Println("Bild uppladdad.")
		return nil

	default:
		return fmt.Errorf("unknown board subcommand %q", args[0])
	}
}

func (a *app) runEvents(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		events, err := a.client.ListEvents(ctx)
		if err != nil {
			return err
		}
		fmt.Print(render.Events(events))
		return nil

	case "add":
		fs := flag.NewFlagSet("events add", flag.ExitOnError)
		title := fs.String("title", "", "Event title")
		date := fs.String("date", "", "Event date (YYYY-MM-DD, optional)")
		desc := fs.String("desc", "", "Description (optional)")
		fs.Parse(args[1:])
		if *title == "" {
			return fmt.Errorf("events add requires --title")
		}
		if err := a.client.CreateEvent(ctx, *title, *date, *desc); err != nil {
			return err
		}
		fmt.Println("Event skapat! Ladda nu upp en bild om du vill.")
		return nil

	case "edit":
		if len(args) < 2 {
			return fmt.Errorf("usage: events edit ID --title T [--date D] [--desc TEXT]")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		fs := flag.NewFlagSet("events edit", flag.ExitOnError)
		title := fs.String("title", "", "Event title")
		date := fs.String("date", "", "Event date (YYYY-MM-DD, optional)")
		desc := fs.String("desc", "", "Description (optional)")
		fs.Parse(args[2:])
		if *title == "" {
			return fmt.Errorf("events edit requires --title")
		}
		return a.client.UpdateEvent(ctx, id, *title, *date, *desc)

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: events delete ID")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		if !a.confirm("Ta bort eventet permanent?") {
			return nil
		}
		return a.client.DeleteEvent(ctx, id)

	case "image":
		if len(args) != 3 {
			return fmt.Errorf("usage: events image ID FILE")
		}
		id, err := parseID(args[1])
		if err != nil {
			return err
		}
		path, err := upload.Prepare(args[2], upload.DefaultMaxWidth)
		if err != nil {
			return err
		}
		task := upload.Task{ID: id, Path: path}
		if err := a.client.UploadEventImage(ctx, task.ID, task.Path); err != nil {
			return err
		}
		fmt.Println("Bild uppladdad.")
		return nil

	default:
		return fmt.Errorf("unknown events subcommand %q", args[0])
	}
}

func (a *app) runGallery(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		images, err := a.client.ListGallery(ctx)
		if err != nil {
			return err
		}
		fmt.Print(render.Gallery(images))
		return nil

	case "upload":
		files := args[1:]
		if len(files) == 0 {
			return fmt.Errorf("usage: gallery upload FILE...")
		}
		prepared := make([]string, 0, len(files))
		for _, file := range files {
			path, err := upload.Prepare(file, upload.DefaultMaxWidth)
			if err != nil {
				return err
			}
			prepared = append(prepared, path)
		}
		failed, err := a.client.UploadGalleryImages(ctx, prepared)
		if err != nil {
			return err
		}
		if failed == 0 {
			fmt.Printf("%d bild(er) uppladdade!\n", len(prepared))
		} else {
			fmt.Printf("%d av %d misslyckades.\n", failed, len(prepared))
		}
		images, err := a.client.ListGallery(ctx)
		if err != nil {
			return err
		}
		fmt.Print(render.Gallery(images))
		return nil

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: gallery delete FILENAME")
		}
		filename := args[1]
		if !a.confirm(fmt.Sprintf("Ta bort %q permanent?", filename)) {
			return nil
		}
		return a.client.DeleteGalleryImage(ctx, filename)

	default:
		return fmt.Errorf("unknown gallery subcommand %q", args[0])
	}
}

func (a *app) runSections(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sections", flag.ExitOnError)
	page := fs.String("page", a.cfg.SectionsPage, "Page the sections belong to")
	fs.Parse(args)
	rest := fs.Args()
	if len(rest) == 0 {
		rest = []string{"list"}
	}

	switch rest[0] {
	case "list":
		sections, err := a.client.ListSections(ctx, *page)
		if err != nil {
			return err
		}
		fmt.Print(render.Sections(sections))
		return nil

	case "add":
		sub := flag.NewFlagSet("sections add", flag.ExitOnError)
		title := sub.String("title", "", "Section title")
		content := sub.String("content", "", "Section content")
		sub.Parse(rest[1:])
		if *title == "" || *content == "" {
			return fmt.Errorf("sections add requires --title and --content")
		}
		if err := a.client.CreateSection(ctx, *page, *title, *content); err != nil {
			return err
		}
		fmt.Println("Sektion tillagd!")
		return nil

	case "edit":
		if len(rest) < 2 {
			return fmt.Errorf("usage: sections edit ID --title T --content TEXT")
		}
		id, err := parseID(rest[1])
		if err != nil {
			return err
		}
		sub := flag.NewFlagSet("sections edit", flag.ExitOnError)
		title := sub.String("title", "", "Section title")
		content := sub.String("content", "", "Section content")
		sub.Parse(rest[2:])
		if *title == "" || *content == "" {
			return fmt.Errorf("sections edit requires --title and --content")
		}
		return a.client.UpdateSection(ctx, id, *title, *content)

	case "delete":
		if len(rest) != 2 {
			return fmt.Errorf("usage: sections delete ID")
		}
		id, err := parseID(rest[1])
		if err != nil {
			return err
		}
		if !a.confirm("Ta bort sektionen permanent?") {
			return nil
		}
		return a.client.DeleteSection(ctx, id)

	default:
		return fmt.Errorf("unknown sections subcommand %q", rest[0])
	}
}

func (a *app) runSponsors(ctx context.Context) error {
	sponsors, err := a.client.ListSponsors(ctx)
	if err != nil {
		return err
	}
	fmt.Print(render.Sponsors(sponsors))
	return nil
}

// The quick links are decorative: when the fetch fails the site hides the
// section entirely, so a failure here prints nothing and still exits zero.
func (a *app) runLinks(ctx context.Context) error {
	links, err := a.client.ListSections(ctx, "startsida-lankar")
	if err != nil {
		log.Printf("Warning: failed to load start-page links: %v", err)
		return nil
	}
	fmt.Print(render.HomeLinks(links))
	return nil
}
