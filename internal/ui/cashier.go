package ui

import (
	"context"

	"tillbox/internal/logger"
	"tillbox/internal/order"
	"tillbox/internal/user"
)

// cashierMenu serves order intake: opening orders, editing their lines
// and settling or cancelling them.
func (u *UI) cashierMenu(ctx context.Context, cur *user.User) bool {
	u.clear()
	choice, ok := u.choose("Till - "+cur.Name, []string{
		"Open a new order",
		"List orders",
		"Add item to an order",
		"Change item quantity",
		"Cancel an order",
		"Remove an order",
		"Change password",
		"Logout",
	})
	if !ok {
		return false
	}

	switch choice {
	case 0:
		u.openOrderView(ctx, cur)
	case 1:
		opCtx := logger.NewOp(ctx)
		u.clear()
		u.renderOrders(opCtx, u.orders.List(opCtx))
		u.pause()
	case 2:
		u.addItemView(ctx)
	case 3:
		u.modifyItemView(ctx)
	case 4:
		u.setStatusView(ctx, order.StatusCancelled)
	case 5:
		u.removeOrderView(ctx)
	case 6:
		u.changePasswordView(ctx, cur)
	case 7:
		u.sess.Logout()
	}
	return true
}

func (u *UI) openOrderView(ctx context.Context, cur *user.User) {
	ctx = logger.NewOp(ctx)
	u.clear()

	labels := make([]string, len(order.PaymentTypes))
	for i, p := range order.PaymentTypes {
		labels[i] = p.DisplayName()
	}
	choice, ok := u.choose("Payment type:", labels)
	if !ok {
		return
	}

	o, err := u.orders.Open(ctx, cur.ID, order.PaymentTypes[choice])
	if err != nil {
		u.warnf("%v", err)
		u.pause()
		return
	}
	u.okf("Order %d opened.", o.ID)
	u.pause()
}

func (u *UI) addItemView(ctx context.Context) {
	ctx = logger.NewOp(ctx)
	u.clear()
	u.renderStocks(u.stocks.List(ctx))

	orderID, ok := u.readInt("\nOrder id: ")
	if !ok {
		return
	}
	stockID, ok := u.readInt("Stock id: ")
	if !ok {
		return
	}
	qty, ok := u.readInt("Quantity: ")
	if !ok {
		return
	}

	if err := u.orders.AddItem(ctx, orderID, stockID, qty); err != nil {
		u.warnf("%v", err)
	} else {
		u.okf("Item added.")
	}
	u.pause()
}

func (u *UI) modifyItemView(ctx context.Context) {
	ctx = logger.NewOp(ctx)
	u.clear()

	orderID, ok := u.readInt("Order id: ")
	if !ok {
		return
	}
	o, err := u.orders.Get(ctx, orderID)
	if err != nil {
		u.warnf("%v", err)
		u.pause()
		return
	}
	u.renderOrderItems(ctx, o)

	stockID, ok := u.readInt("\nStock id: ")
	if !ok {
		return
	}
	qty, ok := u.readInt("New quantity: ")
	if !ok {
		return
	}

	if err := u.orders.ModifyItem(ctx, orderID, stockID, qty); err != nil {
		u.warnf("%v", err)
	} else {
		u.okf("Quantity updated.")
	}
	u.pause()
}

func (u *UI) setStatusView(ctx context.Context, status order.Status) {
	ctx = logger.NewOp(ctx)
	u.clear()
	u.renderOrders(ctx, u.orders.List(ctx))

	id, ok := u.readInt("\nOrder id: ")
	if !ok {
		return
	}
	if err := u.orders.SetStatus(ctx, id, status); err != nil {
		u.warnf("%v", err)
	} else {
		u.okf("Order %d is now %s.", id, status.DisplayName())
	}
	u.pause()
}

func (u *UI) removeOrderView(ctx context.Context) {
	ctx = logger.NewOp(ctx)
	u.clear()
	u.renderOrders(ctx, u.orders.List(ctx))

	id, ok := u.readInt("\nOrder id to remove: ")
	if !ok {
		return
	}
	u.orders.Remove(ctx, id)
	u.okf("Order %d removed.", id)
	u.pause()
}
