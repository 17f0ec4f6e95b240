package routes

import (
	"github.com/Veda150698/Food-Delivery-System/configs"
	"github.com/Veda150698/Food-Delivery-System/controllers"
	"github.com/Veda150698/Food-Delivery-System/middlewares"
	"github.com/Veda150698/Food-Delivery-System/repository"
	"github.com/Veda150698/Food-Delivery-System/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, store *configs.Store) {
	r.Use(middlewares.CORSMiddleware())

	healthCtl := controllers.NewHealthController(store)
	r.GET("/health", healthCtl.Health)
	r.GET("/ready", healthCtl.Ready)

	// Controllers
	menuRepo := repository.NewMenuRepository(store.Menus())
	menuSvc := services.NewMenuService(menuRepo)
	menuCtl := controllers.NewMenuController(menuSvc)

	menu := r.Group("/menu", middlewares.RequireStore(store))
	{
		menu.GET("", menuCtl.ListAll)
		menu.POST("/:restaurantId", menuCtl.AddItem)
		menu.GET("/:restaurantId", menuCtl.GetMenu)
		menu.PUT("/:restaurantId", menuCtl.UpdateItem)
		menu.DELETE("/:restaurantId/:productName", menuCtl.DeleteItem)
	}
}
