package routes

import (
	"backend/controllers"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	kitchenSvc := services.NewKitchenService(db)
	battleSvc := services.NewBattleService(kitchenSvc, services.NewRandomService())

	kitchen := controllers.NewKitchenController(kitchenSvc)
	battle := controllers.NewBattleController(battleSvc, kitchenSvc)

	api := r.Group("/api")
	{
		api.GET("/health", controllers.HealthCheck)

		meals := api.Group("/meals")
		{
			meals.PUT("", kitchen.CreateMeal)
			meals.GET("/:id", kitchen.GetMealByID)
			meals.GET("/by-name/:name", kitchen.GetMealByName)
			meals.DELETE("/:id", kitchen.DeleteMeal)
			meals.DELETE("", kitchen.ResetMeals)
		}
		api.GET("/leaderboard", kitchen.Leaderboard)

		b := api.Group("/battle")
		{
			b.POST("", battle.Fight)
			b.POST("/combatants", battle.PrepCombatant)
			b.GET("/combatants", battle.GetCombatants)
			b.DELETE("/combatants", battle.ClearCombatants)
		}
	}

	return r
}
