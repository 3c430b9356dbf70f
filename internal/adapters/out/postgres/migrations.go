package postgres

import (
	"fieldservice/internal/adapters/out/postgres/evidencerepo"
	"fieldservice/internal/adapters/out/postgres/masterrepo"
	"fieldservice/internal/adapters/out/postgres/orderrepo"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// Migrate brings the database schema up to date.
// Safe to run on every startup; applied migrations are skipped.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250810_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&orderrepo.OrderDTO{},
					&masterrepo.MasterDTO{},
					&evidencerepo.EvidenceDTO{},
				)
			},
		},
		{
			ID: "20250810_add_adl_media_order_fk",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(`
					ALTER TABLE adl_media
					ADD CONSTRAINT fk_adl_media_order
					FOREIGN KEY (order_id) REFERENCES orders(id)
					ON DELETE CASCADE
				`).Error
			},
		},
	})

	return m.Migrate()
}
