package initialize

import (
	"petcare/internal/logger"
	. "petcare/internal/models"

	"gorm.io/gorm"
)

// EnsureTables brings the schema to its expected state. Each step is guarded
// by an existence check so reruns are no-ops. The users and service_requests
// tables are required by seeding and are fatal on failure; pets is not, so
// its errors are logged and swallowed.
func EnsureTables(db *gorm.DB, log logger.Logger) error {
	log = log.Function("EnsureTables")
	log.Info("Khởi tạo cơ sở dữ liệu...")

	// Phase 1: table structures without foreign key constraints.
	db.Config.DisableForeignKeyConstraintWhenMigrating = true

	if err := ensureTable(db, log, "users", &User{}); err != nil {
		return log.Err("❌ Không thể tạo bảng users", err)
	}

	petsReady := true
	if err := ensureTable(db, log, "pets", &Pet{}); err != nil {
		// Setup continues without pets; the next bootstrap run retries.
		log.Er("❌ Không thể tạo bảng pets", err)
		petsReady = false
	}

	if err := ensureTable(db, log, "service_requests", &ServiceRequest{}); err != nil {
		return log.Err("❌ Không thể tạo bảng service_requests", err)
	}

	// Phase 2: foreign key constraints and indexes.
	db.Config.DisableForeignKeyConstraintWhenMigrating = false

	if err := db.AutoMigrate(&User{}); err != nil {
		return log.Err("❌ Không thể cập nhật bảng users", err)
	}
	if petsReady {
		if err := db.AutoMigrate(&Pet{}); err != nil {
			log.Er("❌ Không thể cập nhật bảng pets", err)
		}
	}
	if err := db.AutoMigrate(&ServiceRequest{}); err != nil {
		return log.Err("❌ Không thể cập nhật bảng service_requests", err)
	}

	log.Info("✅ Cơ sở dữ liệu đã sẵn sàng")
	return nil
}

func ensureTable(db *gorm.DB, log logger.Logger, name string, model any) error {
	if db.Migrator().HasTable(model) {
		log.Debug("Bảng đã tồn tại", "table", name)
		return nil
	}

	log.Info("📝 Tạo bảng", "table", name)
	return db.Migrator().CreateTable(model)
}
