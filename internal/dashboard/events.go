package dashboard

type EventKind int

const (
	ControlChanged EventKind = iota
	AddRequested
	EditRequested
	DeleteRequested
)

func (k EventKind) String() string {
	switch k {
	case ControlChanged:
		return "control"
	case AddRequested:
		return "add"
	case EditRequested:
		return "edit"
	case DeleteRequested:
		return "delete"
	}
	return "unknown"
}

// Counters are the cumulative click counts of the three data buttons.
type Counters struct {
	Add    int `json:"add"`
	Edit   int `json:"edit"`
	Delete int `json:"delete"`
}

// Form holds the data-management inputs. A nil or zero Year and empty
// strings count as not supplied. Values are stored exactly as entered.
type Form struct {
	Year     *int   `json:"year"`
	Category string `json:"category"`
	Gender   string `json:"gender"`
	Country  string `json:"country"`
}

func (f Form) year() (int, bool) {
	if f.Year == nil || *f.Year == 0 {
		return 0, false
	}
	return *f.Year, true
}

func (f Form) hasKey() bool {
	_, ok := f.year()
	return ok && supplied(f.Category)
}

func supplied(s string) bool {
	return s != ""
}

// Input is everything the page sends for one cycle.
type Input struct {
	Counters  Counters  `json:"clicks"`
	Form      Form      `json:"form"`
	Selection Selection `json:"selection"`
}

type Event struct {
	Kind EventKind
	Form Form
}

// Plan lists the events one cycle dispatches. ControlChanged comes first,
// then add, edit and delete in that fixed order, each included when its
// counter is positive and the form carries the fields it needs. The checks
// are independent: several mutations may run in the same cycle.
func Plan(in Input) []Event {
	events := []Event{{Kind: ControlChanged, Form: in.Form}}
	f := in.Form

	if in.Counters.Add > 0 && f.hasKey() && supplied(f.Gender) && supplied(f.Country) {
		events = append(events, Event{Kind: AddRequested, Form: f})
	}
	if in.Counters.Edit > 0 && f.hasKey() && (supplied(f.Gender) || supplied(f.Country)) {
		events = append(events, Event{Kind: EditRequested, Form: f})
	}
	if in.Counters.Delete > 0 && f.hasKey() {
		events = append(events, Event{Kind: DeleteRequested, Form: f})
	}
	return events
}
