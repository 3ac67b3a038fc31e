package main

import (
	"faranah/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.AccessTokenModel{},
		model.CategoryModel{},
		model.ProductModel{},
		model.CartLineModel{},
		model.OrderModel{},
		model.OrderLineModel{},
		model.ShippingAddressModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
