package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	taxRate               = decimal.RequireFromString("0.15")
	freeShippingThreshold = decimal.NewFromInt(100)
	flatShipping          = decimal.NewFromInt(10)
)

type OrderItem struct {
	Name    string             `bson:"name" json:"name"`
	Qty     int                `bson:"qty" json:"qty"`
	Image   string             `bson:"image" json:"image"`
	Price   float64            `bson:"price" json:"price"`
	Product primitive.ObjectID `bson:"product" json:"product"`
}

type ShippingAddress struct {
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
}

// PaymentResult is recorded as reported by the client after checkout.
type PaymentResult struct {
	ID           string `bson:"id" json:"id"`
	Status       string `bson:"status" json:"status"`
	UpdateTime   string `bson:"update_time" json:"update_time"`
	EmailAddress string `bson:"email_address" json:"email_address"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User            primitive.ObjectID `bson:"user" json:"user"`
	OrderItems      []OrderItem        `bson:"orderItems" json:"orderItems"`
	ShippingAddress ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   string             `bson:"paymentMethod" json:"paymentMethod"`
	PaymentResult   *PaymentResult     `bson:"paymentResult,omitempty" json:"paymentResult,omitempty"`
	ItemsPrice      float64            `bson:"itemsPrice" json:"itemsPrice"`
	TaxPrice        float64            `bson:"taxPrice" json:"taxPrice"`
	ShippingPrice   float64            `bson:"shippingPrice" json:"shippingPrice"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice"`
	IsPaid          bool               `bson:"isPaid" json:"isPaid"`
	PaidAt          *time.Time         `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	IsDelivered     bool               `bson:"isDelivered" json:"isDelivered"`
	DeliveredAt     *time.Time         `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PopulatedOrder is an Order with its user reference resolved.
type PopulatedOrder struct {
	Order
	User *UserRef `json:"user"`
}

// SalesByDate is one row of the paid-orders-per-day report.
type SalesByDate struct {
	Date       string  `bson:"_id" json:"_id"`
	TotalSales float64 `bson:"totalSales" json:"totalSales"`
}

// OrderPrices holds the computed totals of an order, rounded to cents.
type OrderPrices struct {
	ItemsPrice    float64
	TaxPrice      float64
	ShippingPrice float64
	TotalPrice    float64
}

// CalcPrices computes order totals from item prices. Shipping is free above
// 100, tax is 15% of the items subtotal.
func CalcPrices(items []OrderItem) OrderPrices {
	itemsPrice := decimal.Zero
	for _, it := range items {
		itemsPrice = itemsPrice.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	itemsPrice = itemsPrice.Round(2)

	shipping := flatShipping
	if itemsPrice.GreaterThan(freeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := itemsPrice.Mul(taxRate).Round(2)
	total := itemsPrice.Add(shipping).Add(tax).Round(2)

	return OrderPrices{
		ItemsPrice:    itemsPrice.InexactFloat64(),
		TaxPrice:      tax.InexactFloat64(),
		ShippingPrice: shipping.InexactFloat64(),
		TotalPrice:    total.InexactFloat64(),
	}
}

// ApplyPrices copies computed totals onto the order.
func (o *Order) ApplyPrices(p OrderPrices) {
	o.ItemsPrice = p.ItemsPrice
	o.TaxPrice = p.TaxPrice
	o.ShippingPrice = p.ShippingPrice
	o.TotalPrice = p.TotalPrice
}
