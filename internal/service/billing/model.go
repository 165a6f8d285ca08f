package billing

// Billing é o consolidado financeiro de um mês
type Billing struct {
	Month              int     `json:"month"`
	Year               int     `json:"year"`
	TotalAmount        float64 `json:"total_amount"`
	TotalExpanses      float64 `json:"total_expanses"`
	PaymentReceived    float64 `json:"payment_received"`
	CashReceived       float64 `json:"cash_received"`
	PixReceived        float64 `json:"pix_received"`
	CreditCardReceived float64 `json:"credit_card_received"`
	DebitCardReceived  float64 `json:"debit_card_received"`
	ZelleReceived      float64 `json:"zelle_received"`
	PendingPayments    float64 `json:"pending_payments"`
}

// IsEmpty indica mês sem movimento
func (b *Billing) IsEmpty() bool {
	return b.TotalAmount == 0 && b.TotalExpanses == 0 && b.PaymentReceived == 0
}

func (b *Billing) round() {
	for _, v := range []*float64{
		&b.TotalAmount, &b.TotalExpanses, &b.PaymentReceived, &b.CashReceived, &b.PixReceived,
		&b.CreditCardReceived, &b.DebitCardReceived, &b.ZelleReceived, &b.PendingPayments,
	} {
		*v = round2(*v)
	}
}

// ProductRanking é a posição de um produto no ranking de vendas
type ProductRanking struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	TotalAmount float64 `json:"total_amount"`
}

// ExpenseCategory agrupa despesas por tag
type ExpenseCategory struct {
	TagID     string  `json:"tag_id,omitempty"`
	Name      string  `json:"name"`
	TotalPaid float64 `json:"total_paid"`
	Count     int     `json:"count"`
}

// ProductProfit é o lucro bruto de um produto no mês
type ProductProfit struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
	Cost      float64 `json:"cost"`
	Profit    float64 `json:"profit"`
}

// DailySale é o total vendido em um dia do mês
type DailySale struct {
	Day         int     `json:"day"`
	Date        string  `json:"date"`
	Orders      int     `json:"orders"`
	TotalAmount float64 `json:"total_amount"`
}
