// Command gen writes typed gorm/gen query DAOs for the persistence models.
package main

import (
	"farmhub/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.RefreshTokenModel{},
		model.FarmModel{},
		model.FoodStockModel{},
		model.AnimalModel{},
		model.VaccineModel{},
		model.BreedingModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
