// repository/menu_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/Veda150698/Food-Delivery-System/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MenuStore is what the menu service needs from the database.
type MenuStore interface {
	// FindByRestaurant returns nil, nil when the restaurant has no menu.
	FindByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) (*entity.Menu, error)
	Insert(ctx context.Context, menu *entity.Menu) error
	PushItem(ctx context.Context, restaurantID primitive.ObjectID, item entity.MenuItem) error
	// UpdateItem sets the supplied fields on the first item whose
	// product_name matches and reports how many documents changed.
	UpdateItem(ctx context.Context, restaurantID primitive.ObjectID, productName string, update entity.MenuItemUpdate) (int64, error)
	// PullItem removes every item whose product_name matches.
	PullItem(ctx context.Context, restaurantID primitive.ObjectID, productName string) (int64, error)
	FindAll(ctx context.Context) ([]entity.Menu, error)
}

type MenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(col *mongo.Collection) *MenuRepository {
	return &MenuRepository{col: col}
}

func (r *MenuRepository) FindByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) (*entity.Menu, error) {
	var menu entity.Menu
	err := r.col.FindOne(ctx, bson.M{"restaurant_id": restaurantID}).Decode(&menu)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) Insert(ctx context.Context, menu *entity.Menu) error {
	res, err := r.col.InsertOne(ctx, menu)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		menu.ID = id
	}
	return nil
}

func (r *MenuRepository) PushItem(ctx context.Context, restaurantID primitive.ObjectID, item entity.MenuItem) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"restaurant_id": restaurantID},
		bson.M{"$push": bson.M{"menu_items": item}},
	)
	return err
}

func (r *MenuRepository) UpdateItem(ctx context.Context, restaurantID primitive.ObjectID, productName string, update entity.MenuItemUpdate) (int64, error) {
	set := bson.M{}
	if update.Price != nil {
		set["menu_items.$.price"] = *update.Price
	}
	if update.Detail != nil {
		set["menu_items.$.detail"] = *update.Detail
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"restaurant_id": restaurantID, "menu_items.product_name": productName},
		bson.M{"$set": set},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *MenuRepository) PullItem(ctx context.Context, restaurantID primitive.ObjectID, productName string) (int64, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"restaurant_id": restaurantID},
		bson.M{"$pull": bson.M{"menu_items": bson.M{"product_name": productName}}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *MenuRepository) FindAll(ctx context.Context) ([]entity.Menu, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var menus []entity.Menu
	if err := cur.All(ctx, &menus); err != nil {
		return nil, err
	}
	return menus, nil
}
