package main

import (
	"places/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates type-safe query helpers for the place table into
// internal/infra/persistence/postgres/query.
func main() {
	gen := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	gen.ApplyBasic(model.PlaceModel{})

	gen.Execute()
}
