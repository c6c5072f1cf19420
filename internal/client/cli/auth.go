package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/minahasa-guide/internal/client/api"
	"github.com/iudanet/minahasa-guide/internal/client/auth"
	"github.com/iudanet/minahasa-guide/internal/client/notify"
	"github.com/iudanet/minahasa-guide/internal/client/session"
)

func (c *Cli) newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Long:  "Create a new account. A verification code is sent to your email, confirm it with 'guide verify-otp'.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			c.io.Println("=== Register ===")
			c.io.Println()

			username, err := c.io.ReadInput("Username: ")
			if err != nil {
				return fmt.Errorf("failed to read username: %w", err)
			}
			email, err := c.io.ReadInput("Email: ")
			if err != nil {
				return fmt.Errorf("failed to read email: %w", err)
			}
			password, err := c.io.ReadPassword("Password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			confirm, err := c.io.ReadPassword("Confirm password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			userID, err := c.authService.Register(ctx, auth.RegisterForm{
				Username:        strings.TrimSpace(username),
				Email:           email,
				Password:        password,
				ConfirmPassword: confirm,
			})
			if err != nil {
				return fail(err)
			}

			c.notifier.Success("Registration successful!")
			c.io.Printf("User ID: %s\n", userID)
			c.io.Println()
			c.io.Println("Check your email and confirm the code:")
			c.io.Printf("  guide verify-otp %s\n", userID)
			return nil
		},
	}
}

func (c *Cli) newVerifyOTPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-otp <userId> [otp]",
		Short: "Confirm your email with the code you received",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := args[0]
			var otp string
			if len(args) == 2 {
				otp = args[1]
			} else {
				var err error
				otp, err = c.io.ReadInput("Code: ")
				if err != nil {
					return fmt.Errorf("failed to read code: %w", err)
				}
			}

			if err := c.authService.VerifyOTP(cmd.Context(), userID, otp); err != nil {
				if errors.Is(err, api.ErrInvalidOTP) {
					c.io.Printf("Request a new code with: guide resend-otp %s\n", userID)
				}
				return fail(err)
			}

			c.notifier.Success("Email confirmed, you can log in now.")
			return nil
		},
	}
}

func (c *Cli) newResendOTPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resend-otp <userId>",
		Short: "Send the verification code again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.authService.ResendOTP(cmd.Context(), args[0]); err != nil {
				return fail(err)
			}
			c.notifier.Info("A new code has been sent to your email.")
			return nil
		},
	}
}

func (c *Cli) newLoginCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to your account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			c.io.Println("=== Login ===")
			c.io.Println()

			if email == "" {
				var err error
				email, err = c.io.ReadInput("Email: ")
				if err != nil {
					return fmt.Errorf("failed to read email: %w", err)
				}
			}
			password, err := c.io.ReadPassword("Password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			c.io.Println("Authenticating...")
			user, err := c.authService.Login(ctx, email, password)
			if err != nil {
				return fail(err)
			}

			c.notifier.Success("Login successful!")
			c.io.Printf("Welcome, %s\n", user.DisplayName())
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

func (c *Cli) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			user, err := c.authService.CurrentUser(ctx)
			if errors.Is(err, session.ErrNoSession) {
				c.io.Println("Not logged in")
				return nil
			}
			if err != nil {
				return fail(err)
			}

			if err := c.authService.Logout(ctx); err != nil {
				return fail(err)
			}
			c.notifier.Success(fmt.Sprintf("Logged out %s", user.DisplayName()))
			return nil
		},
	}
}

func (c *Cli) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show account and device status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			c.io.Println("=== Status ===")
			c.io.Println()
			c.io.Printf("Server:   %s\n", c.cfg.ServerURL)
			c.io.Printf("Database: %s (%s)\n", c.cfg.DBPath, c.cfg.StorageBackend)

			user, err := c.authService.CurrentUser(ctx)
			switch {
			case errors.Is(err, session.ErrNoSession):
				c.io.Println("Account:  not logged in")
			case err != nil:
				return fail(err)
			default:
				c.io.Printf("Account:  %s <%s>\n", user.DisplayName(), user.Email)
			}

			c.io.Printf("Saved:    %d places (%s)\n", len(c.bookmarks.Items()), c.bookmarks.State())

			if email, err := c.authService.PendingResetEmail(ctx); err == nil {
				c.io.Printf("Password reset pending for %s\n", email)
			}
			return nil
		},
	}
}

func (c *Cli) newForgotPasswordCmd() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				var err error
				email, err = c.io.ReadInput("Email: ")
				if err != nil {
					return fmt.Errorf("failed to read email: %w", err)
				}
			}

			if err := c.authService.RequestPasswordReset(cmd.Context(), email); err != nil {
				return fail(err)
			}

			c.notifier.Show(notify.LevelInfo, "A reset code has been sent to your email.", 0)
			c.io.Println("Set a new password with: guide reset-password")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	return cmd
}

func (c *Cli) newResetPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password with the reset code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			email, err := c.authService.PendingResetEmail(ctx)
			if err != nil {
				return fail(err)
			}
			c.io.Printf("Resetting password for %s\n", email)

			otp, err := c.io.ReadInput("Code: ")
			if err != nil {
				return fmt.Errorf("failed to read code: %w", err)
			}
			password, err := c.io.ReadPassword("New password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			confirm, err := c.io.ReadPassword("Confirm password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			if err := c.authService.ResetPassword(ctx, auth.ResetForm{
				OTP:             otp,
				NewPassword:     password,
				ConfirmPassword: confirm,
			}); err != nil {
				return fail(err)
			}

			c.notifier.Success("Password changed, log in with your new password.")
			return nil
		},
	}
}
