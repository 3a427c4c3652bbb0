package booking

// The four fixed 2-hour slots. Keys are the start times sent to the API,
// labels are what the user sees. The set is static configuration, not derived
// from server data.

// SlotKeys lists the slot start times in day order.
var SlotKeys = []string{"09:00", "12:00", "15:00", "18:00"}

// SlotLabels maps a slot key to its display label.
var SlotLabels = map[string]string{
	"09:00": "09:00–11:00",
	"12:00": "12:00–14:00",
	"15:00": "15:00–17:00",
	"18:00": "18:00–20:00",
}

// IsSlotKey reports whether t is one of the configured slot start times.
func IsSlotKey(t string) bool {
	_, ok := SlotLabels[t]
	return ok
}
