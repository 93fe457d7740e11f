package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/reviso-backend/internal/auth"
	"github.com/heartmarshall/reviso-backend/internal/domain"
)

func newTokenCmd(e *env) *cobra.Command {
	var (
		userID    string
		role      string
		companyID string
		ttl       time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for local development and tests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := tokenIdentity(userID, role, companyID)
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = e.cfg.Auth.AccessTokenTTL
			}

			mgr := auth.NewJWTManager(e.cfg.Auth.JWTSecret, e.cfg.Auth.JWTIssuer, ttl)
			token, err := mgr.GenerateAccessToken(id)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id (random when empty)")
	cmd.Flags().StringVar(&role, "role", string(domain.UserRoleAgencyAdmin), "AGENCY_ADMIN, AGENCY_USER or CLIENT_USER")
	cmd.Flags().StringVar(&companyID, "company", "", "company id, required for CLIENT_USER")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to auth.access_token_ttl)")
	return cmd
}

func tokenIdentity(userID, role, companyID string) (auth.Identity, error) {
	id := auth.Identity{UserID: uuid.New(), Role: domain.UserRole(strings.ToUpper(role))}
	if !id.Role.IsValid() {
		return auth.Identity{}, fmt.Errorf("unknown role %q", role)
	}
	if userID != "" {
		u, err := uuid.Parse(userID)
		if err != nil {
			return auth.Identity{}, fmt.Errorf("--user: %w", err)
		}
		id.UserID = u
	}
	if companyID != "" {
		c, err := uuid.Parse(companyID)
		if err != nil {
			return auth.Identity{}, fmt.Errorf("--company: %w", err)
		}
		id.CompanyID = &c
	}
	if id.Role.IsClient() && id.CompanyID == nil {
		return auth.Identity{}, fmt.Errorf("--company is required for %s", id.Role)
	}
	return id, nil
}
