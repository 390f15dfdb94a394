// Command gen writes type-safe gorm query helpers for the marketplace models.
package main

import (
	"flag"

	"teka/internal/infra/persistence/postgres"

	"gorm.io/gen"
)

func main() {
	out := flag.String("out", "./internal/infra/persistence/postgres/query", "output directory")
	flag.Parse()

	g := gen.NewGenerator(gen.Config{
		OutPath:       *out,
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(postgres.Models()...)

	g.Execute()
}
