// Package cli is the terminal front end of the accounts dashboard. Every
// command drives the view state against the accounts service over HTTP.
package cli

import (
	"accountsdesk/cmd/internal/infrastructure/accountsapi"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	DefaultAPIURL = "http://localhost:7070"

	keyAPIURL = "api_url"
)

type app struct {
	v   *viper.Viper
	out io.Writer
}

// client builds the service client from the --api flag, the
// ACCOUNTS_API_URL variable or the default, in that order.
func (a *app) client() (*accountsapi.Client, error) {
	return accountsapi.NewClient(a.v.GetString(keyAPIURL))
}

func NewRootCommand(out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out}
	a.v.SetEnvPrefix("ACCOUNTS")
	a.v.SetDefault(keyAPIURL, DefaultAPIURL)
	_ = a.v.BindEnv(keyAPIURL)

	root := &cobra.Command{
		Use:   "accountsctl",
		Short: "Browse and edit the accounts dashboard from the terminal",
		Long: `accountsctl talks to a running accounts service. It lists accounts
with the dashboard's search, filters and sorting, shows an account with its
addresses and contacts, prints recent orders and adds addresses or contacts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().String("api", DefaultAPIURL, "Base URL of the accounts service (env ACCOUNTS_API_URL)")
	_ = a.v.BindPFlag(keyAPIURL, root.PersistentFlags().Lookup("api"))

	root.AddCommand(a.accountsCommand())
	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
