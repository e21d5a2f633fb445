package seed

import (
	"context"
	"errors"

	"petcare/internal/logger"
	. "petcare/internal/models"
	"petcare/internal/repositories"

	"gorm.io/gorm"
)

const (
	// DefaultAdminEmail is the fixed address of the seeded administrator.
	DefaultAdminEmail = "admin@example.com"

	// The seeded password is fixed and expected to be rotated after the
	// first login.
	defaultAdminPassword = "admin123"
)

// SeedAdmin ensures exactly one administrator account exists. Any user with
// the admin role satisfies the check, so reruns and renamed admins are both
// no-ops.
func SeedAdmin(ctx context.Context, users repositories.UserRepository, log logger.Logger) error {
	log = log.Function("SeedAdmin")

	existing, err := users.GetAdmin(ctx)
	if err == nil {
		log.Info("✅ Tài khoản admin đã tồn tại", "email", existing.Email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return log.Err("failed to check for existing admin", err)
	}

	admin := &User{
		Email:    DefaultAdminEmail,
		FullName: "Quản trị viên",
		Role:     RoleAdmin,
		IsActive: true,
	}
	if err := admin.SetPassword(defaultAdminPassword); err != nil {
		return log.Err("failed to hash admin password", err)
	}

	if err := users.Create(ctx, admin); err != nil {
		return log.Err("❌ Không thể tạo tài khoản admin", err)
	}

	log.Info("📝 Đã tạo tài khoản admin mặc định", "email", DefaultAdminEmail)
	return nil
}
