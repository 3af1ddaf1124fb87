package migrations

import (
	"github.com/go-pg/migrations/v8"
)

func CreateKVBlob(col *migrations.Collection) {
	col.MustRegisterTx(func(db migrations.DB) error {
		_, err := db.Exec(`
			CREATE TABLE IF NOT EXISTS kv_blob (
				key        text PRIMARY KEY,
				value      jsonb NOT NULL,
				updated_at timestamptz NOT NULL DEFAULT now()
			)
		`)
		return err
	}, func(db migrations.DB) error {
		_, err := db.Exec(`DROP TABLE IF EXISTS kv_blob`)
		return err
	})
}
