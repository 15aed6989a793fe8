package ui

import (
	"context"
	"fmt"
	"text/tabwriter"

	"tillbox/internal/order"
	"tillbox/internal/stock"
	"tillbox/internal/user"
)

func formatPrice(minor int) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

func (u *UI) renderStocks(stocks []*stock.Stock) {
	if len(stocks) == 0 {
		u.printf("No stock recorded.\n")
		return
	}
	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tQUANTITY")
	for _, st := range stocks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", st.ID, st.Name, formatPrice(st.Price), st.Quantity)
	}
	w.Flush()
}

func (u *UI) renderUsers(users []*user.User) {
	if len(users) == 0 {
		u.printf("No users registered.\n")
		return
	}
	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tROLE")
	for _, usr := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\n", usr.ID, usr.Name, usr.Role.DisplayName())
	}
	w.Flush()
}

func (u *UI) renderOrders(ctx context.Context, orders []*order.Order) {
	if len(orders) == 0 {
		u.printf("No orders.\n")
		return
	}
	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCASHIER\tPAYMENT\tSTATUS\tITEMS\tTOTAL")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
			o.ID,
			u.cashierName(ctx, o.CashierID),
			o.PaymentType.DisplayName(),
			o.Status.DisplayName(),
			o.Items.Len(),
			formatPrice(u.orders.Total(ctx, o)),
		)
	}
	w.Flush()
}

func (u *UI) renderOrderItems(ctx context.Context, o *order.Order) {
	if o.Items.Len() == 0 {
		u.printf("Order has no items yet.\n")
		return
	}
	w := tabwriter.NewWriter(u.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STOCK ID\tNAME\tQUANTITY\tPRICE")
	o.Items.Each(func(it *order.Item) bool {
		name := "(removed)"
		price := "-"
		if st, err := u.stocks.Get(ctx, it.StockID); err == nil {
			name = st.Name
			price = formatPrice(st.Price * it.Quantity)
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", it.StockID, name, it.Quantity, price)
		return true
	})
	w.Flush()
}

// cashierName tolerates a dangling cashier reference.
func (u *UI) cashierName(ctx context.Context, cashierID int) string {
	usr, err := u.users.Get(ctx, cashierID)
	if err != nil {
		return fmt.Sprintf("#%d (gone)", cashierID)
	}
	return usr.Name
}
