package logging

// ANSI pens for echoing to a terminal.
const (
	normalPen = "\033[0m"
	dimPen    = "\033[2m"
	redPen    = "\033[31m"
	yellowPen = "\033[33m"
	cyanPen   = "\033[36m"
	boldRed   = "\033[1;31m"
)

func pen(level Level) string {
	switch {
	case level >= Critical:
		return boldRed
	case level >= Error:
		return redPen
	case level >= Warning:
		return yellowPen
	case level >= Exp:
		return cyanPen
	default:
		return dimPen
	}
}
