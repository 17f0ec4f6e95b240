// services/menu_service.go
package services

import (
	"context"

	"github.com/Veda150698/Food-Delivery-System/entity"
	"github.com/Veda150698/Food-Delivery-System/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuService struct {
	Store repository.MenuStore
}

func NewMenuService(store repository.MenuStore) *MenuService {
	return &MenuService{Store: store}
}

// AddItem appends the item to the restaurant's menu, creating the menu
// document on first use. The returned flag is true when a new menu was
// created. Duplicate product names are permitted and not detected here.
func (s *MenuService) AddItem(ctx context.Context, restaurantID primitive.ObjectID, item entity.MenuItem) (created bool, err error) {
	menu, err := s.Store.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return false, err
	}

	if menu != nil {
		return false, s.Store.PushItem(ctx, restaurantID, item)
	}

	newMenu := &entity.Menu{
		RestaurantID: restaurantID,
		MenuItems:    []entity.MenuItem{item},
	}
	if err := s.Store.Insert(ctx, newMenu); err != nil {
		return false, err
	}
	return true, nil
}

// GetMenu returns the restaurant's items in storage order.
func (s *MenuService) GetMenu(ctx context.Context, restaurantID primitive.ObjectID) ([]entity.MenuItem, error) {
	menu, err := s.Store.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, ErrMenuNotFound
	}
	return menu.MenuItems, nil
}

// UpdateItem overwrites only the supplied fields of the named item. Checks
// run in order: menu existence, product name presence, item existence. A
// write that changes nothing in storage is reported as ErrNoChange.
func (s *MenuService) UpdateItem(ctx context.Context, restaurantID primitive.ObjectID, productName string, update entity.MenuItemUpdate) error {
	menu, err := s.Store.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return err
	}
	if menu == nil {
		return ErrMenuNotFound
	}

	if productName == "" {
		return ErrProductNameRequired
	}

	if !menuHasItem(menu, productName) {
		return ErrItemNotFound
	}

	if update.Empty() {
		return ErrNoChange
	}

	modified, err := s.Store.UpdateItem(ctx, restaurantID, productName, update)
	if err != nil {
		return err
	}
	if modified == 0 {
		return ErrNoChange
	}
	return nil
}

// DeleteItem removes every item matching productName from the menu.
func (s *MenuService) DeleteItem(ctx context.Context, restaurantID primitive.ObjectID, productName string) error {
	menu, err := s.Store.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return err
	}
	if menu == nil {
		return ErrMenuNotFound
	}

	if !menuHasItem(menu, productName) {
		return ErrItemNotFound
	}

	modified, err := s.Store.PullItem(ctx, restaurantID, productName)
	if err != nil {
		return err
	}
	if modified == 0 {
		return ErrNoChange
	}
	return nil
}

// ListAll returns every menu in the store. Zero menus is an error, not an
// empty result; callers surface it as a 404.
func (s *MenuService) ListAll(ctx context.Context) ([]entity.Menu, error) {
	menus, err := s.Store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(menus) == 0 {
		return nil, ErrNoMenus
	}
	return menus, nil
}

func menuHasItem(menu *entity.Menu, productName string) bool {
	for _, item := range menu.MenuItems {
		if item.ProductName == productName {
			return true
		}
	}
	return false
}
