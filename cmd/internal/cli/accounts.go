package cli

import (
	"accountsdesk/cmd/internal/contract"
	"accountsdesk/cmd/internal/viewstate"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

var (
	statusChoices = []string{string(viewstate.StatusAll), string(viewstate.StatusActive), string(viewstate.StatusInactive)}
	sortChoices   = []string{string(viewstate.SortCode), string(viewstate.SortName), string(viewstate.SortLocation), string(viewstate.SortStatus)}
)

func (a *app) accountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Work with accounts",
	}
	cmd.AddCommand(
		a.listCommand(),
		a.showCommand(),
		a.ordersCommand(),
		a.createCommand(),
		a.addAddressCommand(),
		a.addContactCommand(),
	)
	return cmd
}

type listOptions struct {
	search   string
	code     string
	name     string
	location string
	status   string
	sort     string
	desc     bool
	pages    int
}

func (a *app) listCommand() *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Long: `List loads accounts page by page and prints the rows that pass the
search box and the column filters. The search accepts free text as well as
field tokens such as code:ACME, city:fresno or order:SO-12.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runList(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.search, "search", "s", "", "Search text")
	f.StringVar(&opts.code, "code", "", "Filter on the code column")
	f.StringVar(&opts.name, "name", "", "Filter on the name column")
	f.StringVar(&opts.location, "location", "", "Filter on the location column")
	f.StringVar(&opts.status, "status", string(viewstate.StatusAll), "Status filter: "+strings.Join(statusChoices, ", "))
	f.StringVar(&opts.sort, "sort", "", "Sort column: "+strings.Join(sortChoices, ", "))
	f.BoolVar(&opts.desc, "desc", false, "Sort descending")
	f.IntVar(&opts.pages, "pages", 1, "Number of pages to load")
	return cmd
}

func (a *app) runList(cmd *cobra.Command, opts listOptions) error {
	if !slices.Contains(statusChoices, opts.status) {
		return fmt.Errorf("invalid status %q, expected one of: %s", opts.status, strings.Join(statusChoices, ", "))
	}
	if opts.sort != "" && !slices.Contains(sortChoices, opts.sort) {
		return fmt.Errorf("invalid sort %q, expected one of: %s", opts.sort, strings.Join(sortChoices, ", "))
	}
	if opts.pages < 1 {
		return fmt.Errorf("pages must be at least 1")
	}

	client, err := a.client()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	list := viewstate.NewList(client, client)
	if err = list.Load(ctx); err != nil {
		return err
	}
	for i := 1; i < opts.pages && list.State().HasMore(); i++ {
		if err = list.LoadMore(ctx); err != nil {
			return err
		}
	}

	if err = list.SetQuery(ctx, opts.search); err != nil {
		return err
	}
	list.SetColumns(viewstate.ColumnFilters{
		Code:     opts.code,
		Name:     opts.name,
		Location: opts.location,
	})
	list.SetStatus(viewstate.StatusFilter(opts.status))
	if opts.sort != "" || opts.desc {
		sort := list.State().Sort()
		if opts.sort != "" {
			sort.Field = viewstate.SortField(opts.sort)
		}
		sort.Direction = viewstate.Ascending
		if opts.desc {
			sort.Direction = viewstate.Descending
		}
		list.SetSort(sort)
	}

	return printList(a.out, list.State())
}

func (a *app) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <account-id>",
		Short: "Show an account with its addresses and contacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			detail := viewstate.NewDetail(viewstate.AccountID(args[0]), client)
			if err = detail.Load(cmd.Context()); err != nil {
				return fmt.Errorf("%s: %w", detail.ErrorMessage(), err)
			}
			account, _ := detail.Account()
			return printAccount(a.out, account)
		},
	}
}

func (a *app) ordersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "orders <account-id>",
		Short: "Show the most recent orders of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			id := viewstate.AccountID(args[0])
			list := viewstate.NewList(client, client)
			if err = list.OpenOrders(cmd.Context(), id); err != nil {
				return err
			}
			return printOrders(a.out, list.State().Orders(id))
		},
	}
}

func (a *app) createCommand() *cobra.Command {
	var (
		req    contract.CreateAccountRequest
		code   string
		active bool
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			if code != "" {
				req.Code = &code
			}
			req.Active = &active
			account, err := client.CreateAccount(cmd.Context(), &req)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Created account %s (%s)\n", account.Code, account.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Name, "name", "", "Account name")
	f.StringVar(&code, "code", "", "Account code, generated from the name when empty")
	f.BoolVar(&active, "active", true, "Whether the account is active")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (a *app) addAddressCommand() *cobra.Command {
	var (
		form  viewstate.AddressForm
		kind  string
		line2 string
	)
	cmd := &cobra.Command{
		Use:   "add-address <account-id>",
		Short: "Add an address to an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			form.Type = viewstate.AddressType(kind)
			if line2 != "" {
				form.Line2 = &line2
			}
			detail := viewstate.NewDetail(viewstate.AccountID(args[0]), client)
			if err = detail.AddAddress(cmd.Context(), &form); err != nil {
				return err
			}
			account, _ := detail.Account()
			fmt.Fprintf(a.out, "Added address to %s, %d on file\n", account.Code, len(account.Addresses))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&kind, "type", string(viewstate.AddressBilling), "Address type: billing, shipping, warehouse or pickup")
	f.StringVar(&form.Line1, "line1", "", "Street line")
	f.StringVar(&line2, "line2", "", "Second street line")
	f.StringVar(&form.City, "city", "", "City")
	f.StringVar(&form.State, "state", "", "Two letter state code")
	f.StringVar(&form.PostalCode, "postal-code", "", "Postal code")
	f.StringVar(&form.Country, "country", "", "Two letter country code, US when empty")
	f.BoolVar(&form.IsPrimary, "primary", false, "Make this the primary address")
	return cmd
}

func (a *app) addContactCommand() *cobra.Command {
	var (
		form  viewstate.ContactForm
		phone string
	)
	cmd := &cobra.Command{
		Use:   "add-contact <account-id>",
		Short: "Add a contact to an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}

			if phone != "" {
				form.Phone = &phone
			}
			detail := viewstate.NewDetail(viewstate.AccountID(args[0]), client)
			if err = detail.AddContact(cmd.Context(), &form); err != nil {
				return err
			}
			account, _ := detail.Account()
			fmt.Fprintf(a.out, "Added contact to %s, %d on file\n", account.Code, len(account.Contacts))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&form.Name, "name", "", "Contact name")
	f.StringVar(&form.Email, "email", "", "Contact email")
	f.StringVar(&phone, "phone", "", "Contact phone")
	f.BoolVar(&form.IsPrimary, "primary", false, "Make this the primary contact")
	return cmd
}
