package main

import (
	"fmt"
	"os"

	"patient-health-api/cmd/bootstrap"
	"patient-health-api/config"
	"patient-health-api/internal/domain/entity"
	"patient-health-api/internal/infrastructure/database"
	"patient-health-api/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "patient-health-api",
		Short:         "Patient health coverages, professional contacts and account links API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		logrus.Errorf("%v", err)
		os.Exit(1)
	}
}

// loadConfig loads the configuration and sets up the logger from it
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	bootstrap.SetupLogger(cfg.Log)
	logrus.Info("Configuration loaded successfully")
	return cfg, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			app, err := bootstrap.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			return app.Run()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	// migrate up
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return database.MigrateUp(cfg.DB)
		},
	})

	// migrate down
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return database.MigrateDown(cfg.DB, steps)
		},
	}
	downCmd.Flags().Int("steps", 1, "Number of migrations to roll back")
	cmd.AddCommand(downCmd)

	return cmd
}

// tokenCmd mints an access token for local development and testing.
func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, _ := cmd.Flags().GetString("account")
			role, _ := cmd.Flags().GetString("role")

			if accountID == "" {
				return fmt.Errorf("--account is required")
			}
			if !entity.IsKnownRole(role) {
				return fmt.Errorf("unknown role %q, expected %s, %s or %s", role, entity.RoleAdmin, entity.RoleDoctor, entity.RolePatient)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.JWT.Secret == "" {
				return fmt.Errorf("JWT_SECRET is not set")
			}

			jwtService := jwt.NewJWTService(cfg.JWT)
			token, _, err := jwtService.GenerateAccessToken(accountID, role)
			if err != nil {
				return fmt.Errorf("failed to generate token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "token for %s (%s) expires in %s\n", accountID, role, jwtService.GetAccessExpiry())
			return nil
		},
	}
	cmd.Flags().String("account", "", "Account id carried in the token")
	cmd.Flags().String("role", entity.RolePatient, "Role carried in the token (ADMIN, DOCTOR or PATIENT)")

	return cmd
}
