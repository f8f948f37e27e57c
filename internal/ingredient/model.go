package ingredient

// Ingredient is one purchasable item of the household catalog.
// Unit is free text ("g", "ml", "unit") and doubles as the default
// unit for dish composition lines.
type Ingredient struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Unit          string   `json:"unit"`
	UnitPrice     *float64 `json:"unit_price"`
	PriceCurrency string   `json:"price_currency"`
}
