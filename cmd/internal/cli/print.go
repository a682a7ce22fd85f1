package cli

import (
	"accountsdesk/cmd/internal/viewstate"
	"fmt"
	"io"
	"text/tabwriter"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func printList(out io.Writer, s viewstate.State) error {
	visible := s.Visible()
	if len(visible) == 0 {
		fmt.Fprintln(out, "No accounts match.")
	} else {
		tw := newTable(out)
		fmt.Fprintln(tw, "ID\tCODE\tNAME\tLOCATION\tSTATUS\tCONTACT")
		for _, acc := range visible {
			contact := ""
			if c, ok := acc.PrimaryContact(); ok {
				contact = c.Name
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				acc.ID, acc.Code, acc.Name, acc.Location(), acc.StatusLabel(), contact)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "%d of %d loaded accounts shown", len(visible), len(s.Accounts()))
	if s.HasMore() {
		fmt.Fprint(out, ", more available")
	}
	fmt.Fprintln(out)
	return nil
}

func printAccount(out io.Writer, acc *viewstate.Account) error {
	fmt.Fprintf(out, "%s  %s  (%s)\n", acc.Code, acc.Name, acc.StatusLabel())
	fmt.Fprintf(out, "ID: %s\n", acc.ID)
	if !acc.CreatedAt.IsZero() {
		fmt.Fprintf(out, "Created: %s\n", acc.CreatedAt.Format("2006-01-02"))
	}

	fmt.Fprintln(out, "\nAddresses:")
	if len(acc.Addresses) == 0 {
		fmt.Fprintln(out, "  none")
	} else {
		tw := newTable(out)
		for _, addr := range acc.Addresses {
			line := addr.Line1
			if addr.Line2 != nil {
				line += ", " + *addr.Line2
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s, %s %s %s\t%s\n",
				addr.Type, line, addr.City, addr.State, addr.PostalCode, addr.Country, primaryMark(addr.IsPrimary))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "\nContacts:")
	if len(acc.Contacts) == 0 {
		fmt.Fprintln(out, "  none")
		return nil
	}
	tw := newTable(out)
	for _, c := range acc.Contacts {
		phone := ""
		if c.Phone != nil {
			phone = *c.Phone
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", c.Name, c.Email, phone, primaryMark(c.IsPrimary))
	}
	return tw.Flush()
}

func printOrders(out io.Writer, entry viewstate.OrderEntry) error {
	if len(entry.Orders) == 0 {
		fmt.Fprintln(out, "No recent orders.")
		return nil
	}

	tw := newTable(out)
	fmt.Fprintln(tw, "ORDER\tDATE\tSTATUS\tSELLER\tBUYER\tDOC\tTOTAL")
	for _, o := range entry.Orders {
		doc := ""
		if o.DocNumber != nil {
			doc = *o.DocNumber
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			o.OrderNo, o.OrderDate.Format("2006-01-02"), o.Status, o.SellerName, o.BuyerName, doc, formatCents(o.TotalAmount))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d outstanding\n", entry.OutstandingCount())
	return nil
}

func primaryMark(primary bool) string {
	if primary {
		return "primary"
	}
	return ""
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
