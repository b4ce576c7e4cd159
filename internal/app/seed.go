package app

import (
	"context"
	"errors"

	"github.com/legend1349/USYDSTRATA2025/internal/services"
	"github.com/legend1349/USYDSTRATA2025/internal/utils"
)

// seedAdminAccount creates the bootstrap login when ADMIN_EMAIL and
// ADMIN_PASSWORD are configured and no such account exists yet.
func (a *App) seedAdminAccount(ctx context.Context) error {
	cfg := a.Config
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}
	name := cfg.AdminName
	if name == "" {
		name = "Administrator"
	}

	_, err := a.AuthService.Register(ctx, cfg.AdminEmail, cfg.AdminPassword, name)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return nil
		}
		return err
	}
	utils.Logger.Infof("Seeded admin account %s", cfg.AdminEmail)
	return nil
}
