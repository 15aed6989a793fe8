package ui

import (
	"context"

	"tillbox/internal/logger"
	"tillbox/internal/order"
	"tillbox/internal/user"
)

// buyerMenu serves the Buyer/Chef role: browsing the menu and cooking
// waiting orders. Returns false when the whole program should exit.
func (u *UI) buyerMenu(ctx context.Context, cur *user.User) bool {
	u.clear()
	choice, ok := u.choose("Kitchen - "+cur.Name, []string{
		"Browse menu",
		"View waiting orders",
		"Finish an order",
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
		opCtx := logger.NewOp(ctx)
		u.clear()
		u.renderOrders(opCtx, u.orders.ListByStatus(opCtx, order.StatusWaiting))
		u.pause()
	case 2:
		u.finishOrderView(ctx)
	case 3:
		u.changePasswordView(ctx, cur)
	case 4:
		u.sess.Logout()
	}
	return true
}

func (u *UI) finishOrderView(ctx context.Context) {
	ctx = logger.NewOp(ctx)
	u.clear()
	waiting := u.orders.ListByStatus(ctx, order.StatusWaiting)
	u.renderOrders(ctx, waiting)
	if len(waiting) == 0 {
		u.pause()
		return
	}

	id, ok := u.readInt("\nOrder id to mark completed: ")
	if !ok {
		return
	}
	if err := u.orders.SetStatus(ctx, id, order.StatusCompleted); err != nil {
		u.warnf("%v", err)
	} else {
		u.okf("Order %d completed.", id)
	}
	u.pause()
}
