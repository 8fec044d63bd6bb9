package windows

// Console control event types
const (
	CTRL_C_EVENT        = 0
	CTRL_BREAK_EVENT    = 1
	CTRL_CLOSE_EVENT    = 2
	CTRL_LOGOFF_EVENT   = 5
	CTRL_SHUTDOWN_EVENT = 6
)

var ctrlTypeNames = map[uint32]string{
	CTRL_C_EVENT:        "CTRL_C",
	CTRL_BREAK_EVENT:    "CTRL_BREAK",
	CTRL_CLOSE_EVENT:    "CTRL_CLOSE",
	CTRL_LOGOFF_EVENT:   "CTRL_LOGOFF",
	CTRL_SHUTDOWN_EVENT: "CTRL_SHUTDOWN",
}

// GetCtrlTypeName returns a human-readable name for a control event type
func GetCtrlTypeName(ctrlType uint32) string {
	if name, ok := ctrlTypeNames[ctrlType]; ok {
		return name
	}

	return "UNKNOWN"
}

// EndsSession reports whether the event means the console or the user
// session is going away, rather than an interactive interrupt
func EndsSession(ctrlType uint32) bool {
	switch ctrlType {
	case CTRL_CLOSE_EVENT, CTRL_LOGOFF_EVENT, CTRL_SHUTDOWN_EVENT:
		return true
	default:
		return false
	}
}
