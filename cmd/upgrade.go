package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/typerush/typerush/internal/account"
	"github.com/typerush/typerush/internal/config"
	"github.com/typerush/typerush/internal/payment"
	"github.com/typerush/typerush/internal/store"
)

const (
	premiumProductID = "typerush-premium"
	premiumVariant   = "lifetime"
)

var (
	upgradeOrderID   string
	upgradePaymentID string
	upgradeSignature string
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade to TypeRush Premium",
	Long: `Upgrade to TypeRush Premium.

Run without flags to create a payment order. After completing the payment,
run again with --order, --payment, and --signature to activate premium.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		token, err := account.LoadToken(config.DefaultTokenPath())
		if err != nil {
			return fmt.Errorf("load token: %w", err)
		}
		if token == "" {
			return fmt.Errorf("not signed in; run \"typerush login\" first")
		}
		client := account.NewClient(settings.ServerURL, token)

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if upgradeOrderID == "" {
			me, err := client.Me(ctx)
			if err != nil {
				return fmt.Errorf("fetch profile: %w", err)
			}
			if me.IsPremium {
				fmt.Println("You already have TypeRush Premium.")
				return nil
			}

			order, err := payment.NewClient(settings.ServerURL, token).CreateOrder(ctx, premiumProductID, premiumVariant)
			if err != nil {
				return fmt.Errorf("create order: %w", err)
			}
			if st, err := openStore(cmd); err == nil {
				_, _ = st.RecordOrder(ctx, order.OrderID, order.Amount, order.Currency)
				st.Close()
			}

			fmt.Printf("Order created: %s\n", order.OrderID)
			fmt.Printf("Amount: %d.%02d %s\n", order.Amount/100, order.Amount%100, order.Currency)
			fmt.Println()
			fmt.Println("Complete the payment, then activate premium with:")
			fmt.Printf("  typerush upgrade --order %s --payment <payment-id> --signature <signature>\n", order.OrderID)
			return nil
		}

		if upgradePaymentID == "" || upgradeSignature == "" {
			return fmt.Errorf("--payment and --signature are required with --order")
		}

		// The service verifies the signature authoritatively. Check it
		// locally too when the gateway secret is available.
		if secret := os.Getenv("TYPERUSH_PAYMENT_SECRET"); secret != "" {
			if !payment.VerifySignature(upgradeOrderID, upgradePaymentID, upgradeSignature, secret) {
				return fmt.Errorf("payment signature does not match order %s", upgradeOrderID)
			}
		}

		user, err := client.UpgradePremium(ctx, upgradeOrderID, upgradePaymentID)
		if err != nil {
			if st, serr := openStore(cmd); serr == nil {
				_ = st.UpdateOrderStatus(ctx, upgradeOrderID, store.OrderFailed)
				st.Close()
			}
			return fmt.Errorf("activate premium: %w", err)
		}
		if st, serr := openStore(cmd); serr == nil {
			_ = st.UpdateOrderStatus(ctx, upgradeOrderID, store.OrderPaid)
			st.Close()
		}

		fmt.Printf("Welcome to TypeRush Premium, %s!\n", user.Username)
		return nil
	},
}

func init() {
	upgradeCmd.Flags().StringVar(&upgradeOrderID, "order", "", "order id from a created order")
	upgradeCmd.Flags().StringVar(&upgradePaymentID, "payment", "", "payment id from the gateway")
	upgradeCmd.Flags().StringVar(&upgradeSignature, "signature", "", "payment signature from the gateway")
}
