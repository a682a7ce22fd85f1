package contract

const MaxOrderLimit = 100

type PartyResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type OrderLineResponse struct {
	ProductCode string  `json:"product_code"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   int64   `json:"unit_price"`
	LineTotal   int64   `json:"line_total"`
}

type OrderResponse struct {
	ID          string               `json:"id"`
	OrderNo     string               `json:"order_no"`
	OrderDate   string               `json:"order_date"`
	Status      string               `json:"status"`
	Seller      PartyResponse        `json:"seller"`
	Buyer       PartyResponse        `json:"buyer"`
	DocNumber   *string              `json:"doc_number"`
	TotalAmount int64                `json:"total_amount"`
	Lines       []*OrderLineResponse `json:"lines"`
}

// OrderQuery holds the query parameters of GET /api/orders and
// GET /api/invoices. IDs are validated by the service.
type OrderQuery struct {
	AccountID string
	BuyerID   string
	SellerID  string
	Status    string `validate:"omitempty,oneof=draft confirmed posted_to_qb unpaid paid cancelled"`
	Search    string `validate:"max=100"`
	Limit     int
}

type OrdersPage struct {
	Orders []*OrderResponse `json:"orders"`
}
