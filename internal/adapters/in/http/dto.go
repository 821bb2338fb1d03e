package http

import (
	"time"

	"meatmanager/internal/core/application/usecases/queries"
	"meatmanager/internal/core/domain/model/kernel"
	"meatmanager/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Decimals travel as strings so clients never round through float64.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type RoundRequest struct {
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	TravelKm string `json:"travel_km" validate:"max=20"`
}

type OrderRequest struct {
	CustomerID string            `json:"customer_id" validate:"omitempty,uuid"`
	Source     string            `json:"source" validate:"max=20"`
	Comment    string            `json:"comment" validate:"max=2000"`
	Quantities map[string]string `json:"quantities" validate:"dive,keys,uuid,endkeys,max=20"`
}

type CustomerRequest struct {
	Name   string `json:"name" validate:"max=120"`
	Phone  string `json:"phone" validate:"max=40"`
	Active *bool  `json:"active"`
	Notes  string `json:"notes" validate:"max=2000"`
}

type ProductRequest struct {
	Name      string `json:"name" validate:"max=120"`
	Unit      string `json:"unit" validate:"max=20"`
	SellPrice string `json:"sell_price" validate:"max=20"`
	BuyPrice  string `json:"buy_price" validate:"max=20"`
	Active    *bool  `json:"active"`
}

type Round struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	TravelKm   string `json:"travel_km"`
	IsActive   bool   `json:"is_active"`
	OrderCount int64  `json:"order_count"`
}

type RoundForm struct {
	Date     string `json:"date"`
	TravelKm string `json:"travel_km"`
}

type ShoppingListLine struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Total     string `json:"total"`
}

type Profit struct {
	RoundID  string `json:"round_id"`
	Revenue  string `json:"revenue"`
	Cost     string `json:"cost"`
	TravelKm string `json:"travel_km"`
	KmRate   string `json:"km_rate"`
	Travel   string `json:"travel"`
	Profit   string `json:"profit"`
}

type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Quantity  string `json:"quantity"`
	SellPrice string `json:"sell_price"`
	LineTotal string `json:"line_total"`
}

type PackListOrder struct {
	OrderID      string      `json:"order_id"`
	CustomerID   string      `json:"customer_id"`
	CustomerName string      `json:"customer_name"`
	Phone        string      `json:"phone"`
	Source       string      `json:"source"`
	Comment      string      `json:"comment"`
	Paid         bool        `json:"paid"`
	PickedUp     bool        `json:"picked_up"`
	CreatedAt    time.Time   `json:"created_at"`
	Items        []OrderItem `json:"items"`
	Total        string      `json:"total"`
}

type Dashboard struct {
	Round        Round              `json:"round"`
	ShoppingList []ShoppingListLine `json:"shopping_list"`
	PackList     []PackListOrder    `json:"pack_list"`
	Profit       Profit             `json:"profit"`
}

type Customer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Active bool   `json:"active"`
	Notes  string `json:"notes"`
}

type Product struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	SellPrice string `json:"sell_price"`
	BuyPrice  string `json:"buy_price"`
	Active    bool   `json:"active"`
}

type Order struct {
	ID           string            `json:"id"`
	RoundID      string            `json:"round_id"`
	RoundDate    string            `json:"round_date"`
	CustomerID   string            `json:"customer_id"`
	CustomerName string            `json:"customer_name"`
	Source       string            `json:"source"`
	Comment      string            `json:"comment"`
	Paid         bool              `json:"paid"`
	PickedUp     bool              `json:"picked_up"`
	CreatedAt    time.Time         `json:"created_at"`
	Items        []OrderItem       `json:"items"`
	Total        string            `json:"total"`
	Quantities   map[string]string `json:"quantities"`
}

type OrderForm struct {
	Round     Round      `json:"round"`
	Customers []Customer `json:"customers"`
	Products  []Product  `json:"products"`
	Sources   []string   `json:"sources"`
}

type OrderEditForm struct {
	Order    Order     `json:"order"`
	Products []Product `json:"products"`
	Sources  []string  `json:"sources"`
}

type EditOrderResponse struct {
	ID           string `json:"id"`
	OrderDeleted bool   `json:"order_deleted"`
}

var sources = []string{string(order.SourceCall), string(order.SourceWhatsApp), string(order.SourceSelf)}

func money(d decimal.Decimal) string {
	return d.StringFixed(kernel.Places)
}

func amount(d decimal.Decimal) string {
	return d.String()
}

func toRound(r queries.RoundResponse) Round {
	return Round{
		ID:         r.ID.String(),
		Date:       r.Date.Format(time.DateOnly),
		TravelKm:   amount(r.TravelKm),
		IsActive:   r.IsActive,
		OrderCount: r.OrderCount,
	}
}

func toRounds(rounds []queries.RoundResponse) []Round {
	out := make([]Round, 0, len(rounds))
	for _, r := range rounds {
		out = append(out, toRound(r))
	}
	return out
}

func toShoppingList(lines []queries.ShoppingListLine) []ShoppingListLine {
	out := make([]ShoppingListLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, ShoppingListLine{
			ProductID: line.ProductID.String(),
			Name:      line.Name,
			Unit:      line.Unit,
			Total:     amount(line.Total),
		})
	}
	return out
}

func toProfit(p queries.RoundProfitResponse) Profit {
	return Profit{
		RoundID:  p.RoundID.String(),
		Revenue:  money(p.Revenue),
		Cost:     money(p.Cost),
		TravelKm: amount(p.TravelKm),
		KmRate:   money(p.KmRate),
		Travel:   money(p.Travel),
		Profit:   money(p.Net),
	}
}

func toOrderItems(items []queries.PackListItem) []OrderItem {
	out := make([]OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, OrderItem{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			Unit:      item.Unit,
			Quantity:  amount(item.Quantity),
			SellPrice: money(item.SellPrice),
			LineTotal: money(item.LineTotal),
		})
	}
	return out
}

func toPackList(orders []queries.PackListOrder) []PackListOrder {
	out := make([]PackListOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, PackListOrder{
			OrderID:      o.OrderID.String(),
			CustomerID:   o.CustomerID.String(),
			CustomerName: o.CustomerName,
			Phone:        o.Phone,
			Source:       o.Source,
			Comment:      o.Comment,
			Paid:         o.Paid,
			PickedUp:     o.PickedUp,
			CreatedAt:    o.CreatedAt,
			Items:        toOrderItems(o.Items),
			Total:        money(o.Total),
		})
	}
	return out
}

func toDashboard(d queries.RoundDashboardResponse) Dashboard {
	return Dashboard{
		Round:        toRound(d.Round),
		ShoppingList: toShoppingList(d.ShoppingList),
		PackList:     toPackList(d.PackList),
		Profit:       toProfit(d.Profit),
	}
}

func toCustomer(c queries.CustomerResponse) Customer {
	return Customer{
		ID:     c.ID.String(),
		Name:   c.Name,
		Phone:  c.Phone,
		Active: c.Active,
		Notes:  c.Notes,
	}
}

func toCustomers(customers []queries.CustomerResponse) []Customer {
	out := make([]Customer, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomer(c))
	}
	return out
}

func toProduct(p queries.ProductResponse) Product {
	return Product{
		ID:        p.ID.String(),
		Name:      p.Name,
		Unit:      p.Unit,
		SellPrice: money(p.SellPrice),
		BuyPrice:  money(p.BuyPrice),
		Active:    p.Active,
	}
}

func toProducts(products []queries.ProductResponse) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, toProduct(p))
	}
	return out
}

func toOrder(o queries.OrderResponse) Order {
	quantities := make(map[string]string, len(o.Items))
	for productID, quantity := range o.Quantities() {
		quantities[productID.String()] = amount(quantity)
	}

	return Order{
		ID:           o.ID.String(),
		RoundID:      o.RoundID.String(),
		RoundDate:    o.RoundDate.Format(time.DateOnly),
		CustomerID:   o.CustomerID.String(),
		CustomerName: o.CustomerName,
		Source:       o.Source,
		Comment:      o.Comment,
		Paid:         o.Paid,
		PickedUp:     o.PickedUp,
		CreatedAt:    o.CreatedAt,
		Items:        toOrderItems(o.Items),
		Total:        money(o.Total),
		Quantities:   quantities,
	}
}
