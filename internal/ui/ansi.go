package ui

const (
	ansiBlue  = "\033[34m"
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

func colored(text, color string) string {
	return color + text + ansiReset
}
