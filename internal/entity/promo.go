package entity

// CurrencySymbol prefixes every rendered price.
const CurrencySymbol = "₽"

type PromoRequest struct {
	ProductPath string `json:"product_path"`
	Price       string `json:"price"`
	OutputPath  string `json:"output_path,omitempty"`
}

// Placement is an offset on a reference bitmap plus the target size of the
// pasted image. It is recomputed for every card and never stored.
type Placement struct {
	X      int
	Y      int
	Width  int
	Height int
}

// BadgeGeometry describes the price badge. X2 is always the canvas width and
// Y2 the canvas height minus MarginBottom; only the left corners are rounded.
type BadgeGeometry struct {
	X1           int
	Y1           int
	X2           int
	Y2           int
	Width        int
	Height       int
	MarginBottom int
	Radius       float64
}

func PriceLabel(price string) string {
	return CurrencySymbol + price
}
