package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Cart struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID string             `bson:"userId" json:"userId"`
	Items  []CartItem         `bson:"items" json:"items"`
}

type CartItem struct {
	ProductID string `bson:"productId" json:"productId"`
	Qty       int    `bson:"qty" json:"qty"`
}

// NewCart returns a cart holding a single unit of productID.
func NewCart(userID, productID string) *Cart {
	return &Cart{
		UserID: userID,
		Items:  []CartItem{{ProductID: productID, Qty: 1}},
	}
}

// AddProduct bumps the quantity of an existing line or appends a new one.
func (c *Cart) AddProduct(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Qty++
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Qty: 1})
}
