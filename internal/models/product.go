package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	MinOrder    int64              `bson:"minOrder,omitempty" json:"minOrder,omitempty"`
	Quantity    int64              `bson:"quantity,omitempty" json:"quantity,omitempty"`
}

// ProductName is the name-only projection returned by the singleProduct route.
type ProductName struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
