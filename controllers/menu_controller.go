package controllers

import (
	"errors"
	"net/http"

	"github.com/Veda150698/Food-Delivery-System/entity"
	"github.com/Veda150698/Food-Delivery-System/pkg/resp"
	"github.com/Veda150698/Food-Delivery-System/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Service: svc}
}

// POST /menu/:restaurantId
func (ctl *MenuController) AddItem(c *gin.Context) {
	restaurantID, err := primitive.ObjectIDFromHex(c.Param("restaurantId"))
	if err != nil {
		resp.BadRequest(c, "Invalid restaurant id")
		return
	}

	var item entity.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		resp.BadRequest(c, "Missing required fields (product_name, price, detail)")
		return
	}
	// required also rejects a zero price, same as the original falsy check
	if err := validate.Struct(item); err != nil {
		resp.BadRequest(c, "Missing required fields (product_name, price, detail)")
		return
	}

	created, err := ctl.Service.AddItem(c.Request.Context(), restaurantID, item)
	if err != nil {
		log.Error().Err(err).Str("restaurant_id", restaurantID.Hex()).Msg("add menu item")
		resp.ServerError(c, "Error adding menu item", err)
		return
	}

	if created {
		resp.Created(c, "New menu created and item added successfully")
		return
	}
	resp.OK(c, "Menu item added successfully to existing menu")
}

// GET /menu/:restaurantId
func (ctl *MenuController) GetMenu(c *gin.Context) {
	restaurantID, err := primitive.ObjectIDFromHex(c.Param("restaurantId"))
	if err != nil {
		resp.BadRequest(c, "Invalid restaurant id")
		return
	}

	items, err := ctl.Service.GetMenu(c.Request.Context(), restaurantID)
	switch {
	case errors.Is(err, services.ErrMenuNotFound):
		resp.NotFound(c, "No menu found for the given restaurant_id")
	case err != nil:
		log.Error().Err(err).Str("restaurant_id", restaurantID.Hex()).Msg("get menu")
		resp.ServerError(c, "Error retrieving menu", err)
	default:
		c.JSON(http.StatusOK, gin.H{"msg": "Menu retrieved successfully", "menu": items})
	}
}

// PUT /menu/:restaurantId
func (ctl *MenuController) UpdateItem(c *gin.Context) {
	restaurantID, err := primitive.ObjectIDFromHex(c.Param("restaurantId"))
	if err != nil {
		resp.BadRequest(c, "Invalid restaurant id")
		return
	}

	var req struct {
		ProductName string   `json:"product_name"`
		Price       *float64 `json:"price"`
		Detail      *string  `json:"detail"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid request body")
		return
	}

	update := entity.MenuItemUpdate{Price: req.Price, Detail: req.Detail}
	err = ctl.Service.UpdateItem(c.Request.Context(), restaurantID, req.ProductName, update)
	switch {
	case errors.Is(err, services.ErrMenuNotFound):
		resp.NotFound(c, "Restaurant menu not found")
	case errors.Is(err, services.ErrProductNameRequired):
		resp.BadRequest(c, "Product name is required")
	case errors.Is(err, services.ErrItemNotFound):
		resp.NotFound(c, "Product not found in the menu")
	case errors.Is(err, services.ErrNoChange):
		resp.BadRequest(c, "No changes made to the product")
	case err != nil:
		log.Error().Err(err).Str("restaurant_id", restaurantID.Hex()).Msg("update menu item")
		resp.ServerError(c, "Error updating menu", err)
	default:
		resp.OK(c, "Menu item updated successfully")
	}
}

// DELETE /menu/:restaurantId/:productName
func (ctl *MenuController) DeleteItem(c *gin.Context) {
	restaurantID, err := primitive.ObjectIDFromHex(c.Param("restaurantId"))
	if err != nil {
		resp.BadRequest(c, "Invalid restaurant id")
		return
	}

	err = ctl.Service.DeleteItem(c.Request.Context(), restaurantID, c.Param("productName"))
	switch {
	case errors.Is(err, services.ErrMenuNotFound):
		resp.NotFound(c, "Restaurant menu not found")
	case errors.Is(err, services.ErrItemNotFound):
		resp.NotFound(c, "Product not found in the menu")
	case errors.Is(err, services.ErrNoChange):
		resp.BadRequest(c, "No changes made to the menu")
	case err != nil:
		log.Error().Err(err).Str("restaurant_id", restaurantID.Hex()).Msg("delete menu item")
		resp.ServerError(c, "Error deleting menu item", err)
	default:
		resp.OK(c, "Menu item deleted successfully")
	}
}

// GET /menu
func (ctl *MenuController) ListAll(c *gin.Context) {
	menus, err := ctl.Service.ListAll(c.Request.Context())
	switch {
	case errors.Is(err, services.ErrNoMenus):
		resp.NotFound(c, "No menus found")
	case err != nil:
		log.Error().Err(err).Msg("list menus")
		resp.ServerError(c, "Error fetching menus", err)
	default:
		c.JSON(http.StatusOK, gin.H{"msg": "Menus retrieved successfully", "menus": menus})
	}
}
