package main

import (
	"context"
	"fmt"
	"os"
	"podium-service/internal/app/config"
	"podium-service/internal/app/drivers/database"
	"podium-service/internal/app/drivers/logger"
	"podium-service/internal/app/models"
	"podium-service/internal/app/services/core/blueprints"
	"podium-service/internal/app/services/core/intake"
	"podium-service/internal/app/services/core/staffs"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "podiumctl",
		Short: "Operator tools for the podium clinic service",
	}

	rootCmd.AddCommand(seedAdminCmd())
	rootCmd.AddCommand(blueprintCmd())
	rootCmd.AddCommand(flagsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func seedAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the first admin account when none is active",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			name, _ := cmd.Flags().GetString("name")
			if username == "" || password == "" {
				return fmt.Errorf("--username and --password are required")
			}

			driverConfig := config.NewDriverConfig()
			internalConfig := config.NewInternalConfig()
			log := logger.NewZapLogger(driverConfig, internalConfig)
			defer func() { _ = log.Sync() }()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			client := database.NewMongoDB(driverConfig)
			defer func() { _ = client.Disconnect(context.Background()) }()

			repository := staffs.NewStaffMongoRepository(client, internalConfig.MongoDB.PodiumDBName)
			if err := repository.EnsureIndexes(ctx); err != nil {
				return err
			}

			created, err := staffs.NewStaffUsecase(repository, log).EnsureBootstrapAdmin(ctx, username, password, name)
			if err != nil {
				return err
			}
			if created {
				fmt.Printf("Admin %q is ready.\n", strings.ToLower(strings.TrimSpace(username)))
			} else {
				fmt.Println("An active admin already exists, nothing to do.")
			}
			return nil
		},
	}
	cmd.Flags().String("username", "", "Admin username")
	cmd.Flags().String("password", "", "Admin password")
	cmd.Flags().String("name", "Administrador", "Display name")
	return cmd
}

func blueprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blueprint",
		Short: "Print the exam blueprint for a body region and differential",
		RunE: func(cmd *cobra.Command, args []string) error {
			region, _ := cmd.Flags().GetString("region")
			rawDdx, _ := cmd.Flags().GetStringArray("ddx")

			ddx, err := parseDdx(rawDdx)
			if err != nil {
				return err
			}
			return printJSON(cmd, blueprints.BuildResolved(region, ddx))
		},
	}
	cmd.Flags().String("region", "", "Body region, e.g. \"Hombro derecho\"")
	cmd.Flags().StringArray("ddx", nil, "Differential as label:probability, repeatable")
	return cmd
}

func flagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flags",
		Short: "Print the derived clinical flags for an answers file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("answers")
			if path == "" {
				return fmt.Errorf("--answers is required")
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			answers := models.Answers{}
			if err := json.Unmarshal(raw, &answers); err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}

			flags := intake.DeriveFlags(answers)
			return printJSON(cmd, map[string]interface{}{
				"flags":    flags,
				"red_flag": intake.HasRedFlag(flags),
			})
		},
	}
	cmd.Flags().String("answers", "", "Path to a JSON object of intake answers")
	return cmd
}

// parseDdx splits on the last colon so labels may contain colons.
func parseDdx(raw []string) ([]models.DdxCandidate, error) {
	ddx := make([]models.DdxCandidate, 0, len(raw))
	for _, item := range raw {
		idx := strings.LastIndex(item, ":")
		if idx <= 0 {
			return nil, fmt.Errorf("invalid --ddx %q, expected label:probability", item)
		}
		probability, err := strconv.ParseFloat(strings.TrimSpace(item[idx+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid probability in %q: %w", item, err)
		}
		ddx = append(ddx, models.DdxCandidate{
			Label:       strings.TrimSpace(item[:idx]),
			Probability: probability,
		})
	}
	return ddx, nil
}

func printJSON(cmd *cobra.Command, value interface{}) error {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
