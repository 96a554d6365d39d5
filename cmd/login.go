package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/typerush/typerush/internal/account"
	"github.com/typerush/typerush/internal/config"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your TypeRush account",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		scanner := bufio.NewScanner(os.Stdin)

		fmt.Print("Email: ")
		if !scanner.Scan() {
			return fmt.Errorf("read email: %w", scanner.Err())
		}
		email := strings.TrimSpace(scanner.Text())

		fmt.Print("Password: ")
		if !scanner.Scan() {
			return fmt.Errorf("read password: %w", scanner.Err())
		}
		password := scanner.Text()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		client := account.NewClient(settings.ServerURL, "")
		token, err := client.Login(ctx, email, password)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}

		if err := account.SaveToken(config.DefaultTokenPath(), token); err != nil {
			return fmt.Errorf("save token: %w", err)
		}

		user, err := account.NewClient(settings.ServerURL, token).Me(ctx)
		if err != nil {
			fmt.Println("Signed in.")
			return nil
		}

		tier := "free"
		if user.IsPremium {
			tier = "premium"
		}
		fmt.Printf("Signed in as %s (%s tier).\n", user.Username, tier)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := account.ClearToken(config.DefaultTokenPath()); err != nil {
			return fmt.Errorf("clear token: %w", err)
		}
		fmt.Println("Signed out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		client, err := authedClient(settings)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		user, err := client.Me(ctx)
		if err != nil {
			return fmt.Errorf("fetch profile: %w", err)
		}

		fmt.Printf("%s (@%s)\n", user.Fullname, user.Username)
		fmt.Printf("Email: %s\n", user.Email)
		if user.IsPremium {
			since := ""
			if user.PremiumSince != nil {
				since = " since " + user.PremiumSince.Local().Format("Jan 2, 2006")
			}
			fmt.Printf("Tier:  premium%s\n", since)
		} else {
			fmt.Println("Tier:  free")
		}
		return nil
	},
}

// authedClient builds an API client from the saved token, failing when
// the user is not signed in.
func authedClient(settings config.Settings) (*account.Client, error) {
	token, err := account.LoadToken(config.DefaultTokenPath())
	if err != nil {
		return nil, fmt.Errorf("load token: %w", err)
	}
	if token == "" {
		return nil, fmt.Errorf("not signed in; run \"typerush login\" first")
	}
	return account.NewClient(settings.ServerURL, token), nil
}
