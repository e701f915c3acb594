package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID   string             `bson:"productId" json:"productId"`
	ProductName string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Quantity    int64              `bson:"quantity" json:"quantity"`
	ClientEmail string             `bson:"clientEmail" json:"clientEmail"`
	ClientName  string             `bson:"clientName,omitempty" json:"clientName,omitempty"`
	Address     string             `bson:"address,omitempty" json:"address,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	UnitPrice   float64            `bson:"unitPrice,omitempty" json:"unitPrice,omitempty"`
	Status      string             `bson:"status" json:"status"` // pending, paid, shipped
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

const BookingStatusPending = "pending"

// NaturalKey identifies a booking submission independently of the generated
// document id. Two submissions with the same key are the same order.
type NaturalKey struct {
	ProductID   string `bson:"productId"`
	Quantity    int64  `bson:"quantity"`
	ClientEmail string `bson:"clientEmail"`
}

func (b *Booking) NaturalKey() NaturalKey {
	return NaturalKey{
		ProductID:   b.ProductID,
		Quantity:    b.Quantity,
		ClientEmail: b.ClientEmail,
	}
}
