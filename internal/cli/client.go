package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/eld-logs/internal/core/domain"
	"github.com/99minutos/eld-logs/internal/infrastructure/config"
	"github.com/99minutos/eld-logs/internal/infrastructure/db/mongo"
)

// clientWriter is the part of the Mongo registry "client put" needs.
type clientWriter interface {
	PutClient(ctx context.Context, c domain.Client) (bool, error)
}

func newClientCommand(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage API clients.",
	}
	cmd.AddCommand(newClientPutCommand(ctx, nil))
	cmd.AddCommand(newClientHashCommand())
	return cmd
}

// newClientPutCommand writes to w, or to the registry at MONGO_URI when w is nil.
func newClientPutCommand(ctx context.Context, w clientWriter) *cobra.Command {
	var (
		idFlag   string
		roleFlag string
		costFlag int
	)

	cmd := &cobra.Command{
		Use:   "put --id ID [--role admin|client]",
		Short: "Create or update an API client in the Mongo registry.",
		Long:  "put reads the client secret from stdin, hashes it with bcrypt and upserts the client into MONGO_URI/MONGO_DB.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := readSecret(cmd)
			if err != nil {
				return err
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(secret), costFlag)
			if err != nil {
				return fmt.Errorf("hash secret: %w", err)
			}

			writer := w
			if writer == nil {
				cfg, err := config.Load(ctx)
				if err != nil {
					return err
				}
				if cfg.Mongo.URI == "" {
					return errors.New("MONGO_URI is required")
				}
				client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
				if err != nil {
					return err
				}
				defer disconnectMongo(client, commandLogger(cmd.ErrOrStderr()))

				repo := mongo.NewClientRepository(db)
				if err := repo.EnsureIndexes(ctx); err != nil {
					return err
				}
				writer = repo
			}

			created, err := writer.PutClient(ctx, domain.Client{ID: idFlag, SecretHash: string(hash), Role: roleFlag})
			if err != nil {
				return err
			}
			verb := "updated"
			if created {
				verb = "created"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s client %s (%s)\n", verb, idFlag, roleFlag)
			return nil
		},
	}

	cmd.Flags().StringVar(&idFlag, "id", "", "Client id")
	cmd.Flags().StringVar(&roleFlag, "role", domain.RoleClient, "Role: admin or client")
	cmd.Flags().IntVar(&costFlag, "cost", bcrypt.DefaultCost, "bcrypt cost")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

// newClientHashCommand prints an API_CLIENTS entry for deployments without Mongo.
func newClientHashCommand() *cobra.Command {
	var (
		idFlag   string
		costFlag int
	)

	cmd := &cobra.Command{
		Use:   "hash --id ID",
		Short: "Print an API_CLIENTS entry for a secret read from stdin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := readSecret(cmd)
			if err != nil {
				return err
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(secret), costFlag)
			if err != nil {
				return fmt.Errorf("hash secret: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s:%s\n", idFlag, hash)
			return nil
		},
	}

	cmd.Flags().StringVar(&idFlag, "id", "", "Client id")
	cmd.Flags().IntVar(&costFlag, "cost", bcrypt.DefaultCost, "bcrypt cost")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

// readSecret takes the first line of stdin.
func readSecret(cmd *cobra.Command) (string, error) {
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", errors.New("client secret expected on stdin")
	}
	secret := strings.TrimSpace(line)
	if secret == "" {
		return "", errors.New("client secret expected on stdin")
	}
	return secret, nil
}
