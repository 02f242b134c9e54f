package iostore

import (
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/coronium/isiscb-jsonld-conversion/pkg/schema"
)

// CreateSchema creates the document store tables using GORM
// AutoMigrate. It is safe to run on an existing store, missing tables
// and columns are added.
func (o *Operator) CreateSchema() error {
	if o.pool == nil {
		return NotConnectedError()
	}

	db := stdlib.OpenDBFromPool(o.pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: db}),
		&gorm.Config{},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}

	return nil
}
