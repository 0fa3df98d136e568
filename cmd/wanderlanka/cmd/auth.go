package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wanderlanka/planner-cli/internal/bootstrap"
	domainauth "github.com/wanderlanka/planner-cli/internal/domain/auth"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the assistant",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, app *bootstrap.App) error {
			email, password, err := collectCredentials()
			if err != nil {
				return err
			}

			if err := app.Sessions.SignIn(ctx, email, password); err != nil {
				if errors.Is(err, domainauth.ErrInvalidCredentials) {
					return errors.New("invalid email or password")
				}
				return err
			}

			sess := app.Sessions.Current()
			fmt.Printf("Signed in as %s (%s).\n", sess.User.Email, sess.User.Role)
			return nil
		})
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, app *bootstrap.App) error {
			email, password, err := collectCredentials()
			if err != nil {
				return err
			}

			if err := app.Sessions.SignUp(ctx, email, password); err != nil {
				return err
			}

			fmt.Printf("Welcome, %s! You are signed in.\n", email)
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, app *bootstrap.App) error {
			if err := app.Sessions.SignOut(ctx); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, app *bootstrap.App) error {
			app.Sessions.Restore(ctx)

			sess := app.Sessions.Current()
			if sess == nil {
				fmt.Println("Not signed in.")
				return nil
			}
			fmt.Printf("%s (%s)\n", sess.User.Email, sess.User.Role)
			return nil
		})
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, app *bootstrap.App) error {
			app.Sessions.Restore(ctx)
			if app.Sessions.Current() == nil {
				return errors.New("not signed in")
			}

			if err := app.Sessions.RefreshAccess(ctx); err != nil {
				return err
			}
			fmt.Println("Access token refreshed.")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd, refreshCmd)

	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringVar(&loginEmail, "email", "", "Account email")
		c.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
	}
}

// collectCredentials reads the email and password from flags, prompting
// on stdin for anything missing.
func collectCredentials() (string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	email := loginEmail
	if email == "" {
		fmt.Print("Email: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("read email: %w", err)
		}
		email = strings.TrimSpace(line)
	}
	if email == "" {
		return "", "", errors.New("email is required")
	}

	password := loginPassword
	if password == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return "", "", errors.New("password is required")
	}

	return email, password, nil
}
