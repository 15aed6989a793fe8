package ui

import (
	"context"
	"errors"

	"tillbox/internal/logger"
	"tillbox/internal/session"
	"tillbox/internal/user"
)

func (u *UI) loginView(ctx context.Context) {
	ctx = logger.NewOp(ctx)
	u.clear()
	u.printf("Login\n\n")

	name := u.readLine("Username: ")
	password := u.readLine("Password: ")

	_, err := u.sess.Login(ctx, name, password)
	switch {
	case err == nil:
		u.okf("Login successful!")
	case errors.Is(err, session.ErrTooManyAttempts):
		u.warnf("Too many attempts, wait a moment and try again.")
	default:
		u.warnf("Invalid username or password!")
	}
	u.pause()
}

func (u *UI) registerView(ctx context.Context) {
	ctx = logger.NewOp(ctx)
	u.clear()
	u.printf("Register\n\n")

	var name string
	for {
		name = u.readLine("Enter a username: ")
		if name == "" {
			return
		}
		if len(name) < user.MinNameLen {
			u.warnf("Username must be at least %d characters long!", user.MinNameLen)
			continue
		}
		if len(name) > user.MaxNameLen {
			u.warnf("Username must be at most %d characters long!", user.MaxNameLen)
			continue
		}
		break
	}

	var password string
	for {
		password = u.readLine("Enter a password: ")
		if password == "" {
			return
		}
		if len(password) < user.MinPasswordLen {
			u.warnf("Password must be at least %d characters long!", user.MinPasswordLen)
			continue
		}
		if len(password) > user.MaxPasswordLen {
			u.warnf("Password must be at most %d characters long!", user.MaxPasswordLen)
			continue
		}
		break
	}

	u.clear()
	labels := make([]string, len(user.Roles))
	for i, r := range user.Roles {
		labels[i] = r.DisplayName()
	}
	choice, ok := u.choose("Select a user type:", labels)
	if !ok {
		return
	}

	_, err := u.users.Register(ctx, name, password, user.Roles[choice])
	switch {
	case errors.Is(err, user.ErrNameExists):
		u.warnf("Username already exists!")
	case err != nil:
		u.warnf("Registration failed: %v", err)
	default:
		u.okf("User registered successfully, you can now login!")
	}
	u.pause()
}

func (u *UI) creditsView() {
	u.clear()
	u.printf("tillbox - a terminal point of sale\n\n")
	u.printf("Created by the tillbox contributors.\n")
	u.pause()
}

// changePasswordView serves every role's "change my password" entry.
func (u *UI) changePasswordView(ctx context.Context, cur *user.User) {
	ctx = logger.NewOp(ctx)
	u.clear()
	u.printf("Change password\n\n")

	current := u.readLine("Current password: ")
	if !user.Verify(cur.HashedPassword, current) {
		u.warnf("Wrong password.")
		u.pause()
		return
	}

	for {
		next := u.readLine("New password: ")
		if next == "" {
			return
		}
		if err := u.users.ChangePassword(ctx, cur.ID, next); err != nil {
			u.warnf("%v", err)
			continue
		}
		u.okf("Password changed.")
		u.pause()
		return
	}
}
