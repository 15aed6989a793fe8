package ui

import (
	"context"

	"tillbox/internal/logger"
	"tillbox/internal/user"
)

// adminMenu serves inventory and account management.
func (u *UI) adminMenu(ctx context.Context, cur *user.User) bool {
	u.clear()
	choice, ok := u.choose("Admin - "+cur.Name, []string{
		"List stock",
		"Add stock",
		"Restock (increment quantity)",
		"Write off (decrement quantity)",
		"Remove stock",
		"List users",
		"Register a user",
		"Remove a user",
		"List orders",
		"Change password",
		"Logout",
	})
	if !ok {
		return false
	}

	switch choice {
	case 0:
		u.clear()
		u.renderStocks(u.stocks.List(logger.NewOp(ctx)))
		u.pause()
	case 1:
		u.addStockView(ctx)
	case 2:
		u.adjustStockView(ctx, true)
	case 3:
		u.adjustStockView(ctx, false)
	case 4:
		u.removeStockView(ctx)
	case 5:
		u.clear()
		u.renderUsers(u.users.List(logger.NewOp(ctx)))
		u.pause()
	case 6:
		u.registerView(ctx)
	case 7:
		u.removeUserView(ctx, cur)
	case 8:
		opCtx := logger.NewOp(ctx)
		u.clear()
		u.renderOrders(opCtx, u.orders.List(opCtx))
		u.pause()
	case 9:
		u.changePasswordView(ctx, cur)
	case 10:
		u.sess.Logout()
	}
	return true
}

func (u *UI) addStockView(ctx context.Context) {
	ctx = logger.NewOp(ctx)
	u.clear()
	u.printf("Add stock\n\n")

	name := u.readLine("Name: ")
	if name == "" {
		return
	}
	price, ok := u.readInt("Price (minor units): ")
	if !ok {
		return
	}
	qty, ok := u.readInt("Quantity: ")
	if !ok {
		return
	}

	st, err := u.stocks.Create(ctx, name, price, qty)
	if err != nil {
		u.warnf("%v", err)
	} else {
		u.okf("Stock %d (%s) added.", st.ID, st.Name)
	}
	u.pause()
}

func (u *UI) adjustStockView(ctx context.Context, increment bool) {
	ctx = logger.NewOp(ctx)
	u.clear()
	u.renderStocks(u.stocks.List(ctx))

	id, ok := u.readInt("\nStock id: ")
	if !ok {
		return
	}
	amount, ok := u.readInt("Amount: ")
	if !ok {
		return
	}

	var err error
	if increment {
		err = u.stocks.Increment(ctx, id, amount)
	} else {
		err = u.stocks.Decrement(ctx, id, amount)
	}
	if err != nil {
		u.warnf("%v", err)
	} else {
		u.okf("Quantity updated.")
	}
	u.pause()
}

func (u *UI) removeStockView(ctx context.Context) {
	ctx = logger.NewOp(ctx)
	u.clear()
	u.renderStocks(u.stocks.List(ctx))

	id, ok := u.readInt("\nStock id to remove: ")
	if !ok {
		return
	}
	u.stocks.Remove(ctx, id)
	u.okf("Stock %d removed. Existing order lines keep the id.", id)
	u.pause()
}

func (u *UI) removeUserView(ctx context.Context, cur *user.User) {
	ctx = logger.NewOp(ctx)
	u.clear()
	u.renderUsers(u.users.List(ctx))

	id, ok := u.readInt("\nUser id to remove: ")
	if !ok {
		return
	}
	if id == cur.ID {
		u.warnf("You cannot remove the account you are logged in with.")
		u.pause()
		return
	}
	u.users.Remove(ctx, id)
	u.okf("User %d removed.", id)
	u.pause()
}
