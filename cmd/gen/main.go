package main

import (
	"cookify/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.RoleModel{},
		model.UserRoleModel{},
		model.ChefProfileModel{},
		model.CategoryModel{},
		model.RecipeModel{},
		model.AddressModel{},
		model.CouponModel{},
		model.MasterOrderModel{},
		model.OrderItemModel{},
		model.PaymentModel{},
		model.RatingModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
