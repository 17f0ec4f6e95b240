package services

import "errors"

// Errors the controllers translate into status codes. Anything else coming
// out of a service is a storage fault and maps to a 500.
var (
	ErrMenuNotFound        = errors.New("restaurant menu not found")
	ErrItemNotFound        = errors.New("product not found in the menu")
	ErrProductNameRequired = errors.New("product name is required")
	ErrNoChange            = errors.New("no changes made")
	ErrNoMenus             = errors.New("no menus found")
)
