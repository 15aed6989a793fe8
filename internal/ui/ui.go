// Package ui renders the terminal menus and routes the session user to
// the flow for their role. All prompting, re-prompt loops and screen
// handling live here; the stores only ever see validated primitives.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tillbox/internal/order"
	"tillbox/internal/session"
	"tillbox/internal/stock"
	"tillbox/internal/user"
)

type UI struct {
	in     *bufio.Scanner
	out    io.Writer
	users  user.Service
	stocks stock.Service
	orders order.Service
	sess   *session.Session
}

func New(in io.Reader, out io.Writer, users user.Service, stocks stock.Service, orders order.Service, sess *session.Session) *UI {
	return &UI{
		in:     bufio.NewScanner(in),
		out:    out,
		users:  users,
		stocks: stocks,
		orders: orders,
		sess:   sess,
	}
}

// Run drives the interactive loop until the user exits. The session
// user decides which menu is shown next.
func (u *UI) Run(ctx context.Context) {
	for {
		cur, ok := u.sess.Current()
		if !ok {
			if !u.mainMenu(ctx) {
				return
			}
			continue
		}

		var keepGoing bool
		switch cur.Role {
		case user.RoleBuyer:
			keepGoing = u.buyerMenu(ctx, cur)
		case user.RoleCashier:
			keepGoing = u.cashierMenu(ctx, cur)
		case user.RoleAdmin:
			keepGoing = u.adminMenu(ctx, cur)
		default:
			// A snapshot may carry a role this build does not know.
			u.warnf("Unknown role %q, logging out.", cur.Role)
			u.sess.Logout()
			continue
		}
		if !keepGoing {
			return
		}
	}
}

func (u *UI) mainMenu(ctx context.Context) bool {
	u.clear()
	choice, ok := u.choose("Welcome to tillbox", []string{"Login", "Register", "Credits"})
	if !ok {
		return false
	}
	switch choice {
	case 0:
		u.loginView(ctx)
	case 1:
		u.registerView(ctx)
	case 2:
		u.creditsView()
	}
	return true
}

func (u *UI) printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

func (u *UI) okf(format string, args ...any) {
	fmt.Fprintln(u.out, colored(fmt.Sprintf(format, args...), ansiGreen))
}

func (u *UI) warnf(format string, args ...any) {
	fmt.Fprintln(u.out, colored(fmt.Sprintf(format, args...), ansiRed))
}

func (u *UI) clear() {
	fmt.Fprint(u.out, "\033[2J\033[H")
}

func (u *UI) pause() {
	u.printf("\nPress enter to continue...")
	u.in.Scan()
}

// readLine prompts with a blue label and returns the trimmed input.
func (u *UI) readLine(label string) string {
	u.printf("%s", colored(label, ansiBlue))
	if !u.in.Scan() {
		return ""
	}
	return strings.TrimSpace(u.in.Text())
}

// readInt re-prompts until the input parses; an empty line aborts.
func (u *UI) readInt(label string) (int, bool) {
	for {
		raw := u.readLine(label)
		if raw == "" {
			return 0, false
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			u.warnf("Please enter a number.")
			continue
		}
		return n, true
	}
}

// choose renders a numbered menu and returns the selected index.
// Entering 0 (or nothing) backs out.
func (u *UI) choose(title string, options []string) (int, bool) {
	u.printf("%s\n\n", title)
	for i, opt := range options {
		u.printf("  %d) %s\n", i+1, opt)
	}
	u.printf("  0) Back\n\n")
	for {
		n, ok := u.readInt("Select: ")
		if !ok || n == 0 {
			return 0, false
		}
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		u.warnf("Pick between 0 and %d.", len(options))
	}
}
