package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is a single orderable product. product_name is the item's
// natural key within its menu; there is no separate item id.
type MenuItem struct {
	ProductName string  `bson:"product_name" json:"product_name" validate:"required"`
	Price       float64 `bson:"price" json:"price" validate:"required"`
	Detail      string  `bson:"detail" json:"detail" validate:"required"`
}

// Menu holds one restaurant's items, in insertion order.
type Menu struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	RestaurantID primitive.ObjectID `bson:"restaurant_id" json:"restaurant_id"`
	MenuItems    []MenuItem         `bson:"menu_items" json:"menu_items"`
}

// MenuItemUpdate carries the optional fields of a partial item update.
// A nil field is left untouched in storage.
type MenuItemUpdate struct {
	Price  *float64
	Detail *string
}

func (u MenuItemUpdate) Empty() bool {
	return u.Price == nil && u.Detail == nil
}
