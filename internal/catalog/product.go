package catalog

import "github.com/shopspring/decimal"

// Product is a catalog item as returned by the remote product API.
type Product struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Title           string           `json:"title"`
	Slug            string           `json:"slug"`
	Description     *string          `json:"description"`
	ProductClass    *string          `json:"product_class"`
	ProductType     string           `json:"product_type"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
	Featured        bool             `json:"featured"`
	Brand           *string          `json:"brand"`
	Media           []Media          `json:"media"`
	ProductVariants []ProductVariant `json:"product_variants"`
	MetaFields      []MetaField      `json:"meta_fields"`
}

// ProductVariant is a purchasable configuration of a product with its own
// price, options, and inventory.
type ProductVariant struct {
	ID                      int64               `json:"id"`
	Name                    string              `json:"name"`
	Type                    string              `json:"type"`
	PricingType             string              `json:"pricing_type"`
	PricingUnit             PricingUnit         `json:"pricing_unit"`
	Price                   Price               `json:"price"`
	VATRate                 VATRate             `json:"vat_rate"`
	VariantTypeOptions      []VariantTypeOption `json:"variant_type_options"`
	Media                   []Media             `json:"media"`
	InventoryItems          []InventoryItem     `json:"inventory_items"`
	CanOrderOutOfStockItems bool                `json:"can_order_out_of_stock_items"`
	CreatedAt               string              `json:"created_at"`
	UpdatedAt               string              `json:"updated_at"`
}

// Price is a monetary amount in minor currency units with a decimal scale.
type Price struct {
	Currency  string `json:"currency"`
	Amount    int64  `json:"amount"`
	Formatted string `json:"formatted"`
	Scale     int32  `json:"scale"`
}

// Decimal converts the minor-unit amount into major units, e.g. amount 1000
// with scale 2 becomes 10.00.
func (p Price) Decimal() decimal.Decimal {
	return decimal.New(p.Amount, -p.Scale)
}

// PricingUnit names the unit a variant is priced by (piece, kg, ...).
type PricingUnit struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VATRate describes the tax rate attached to a variant's price.
type VATRate struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Code  string  `json:"code"`
	Value float64 `json:"value"`
}

// VariantTypeOption is one configured option of a variant, e.g.
// {type: Color, value: Red}.
type VariantTypeOption struct {
	ID          int64       `json:"id"`
	Value       string      `json:"value"`
	VariantType VariantType `json:"variant_type"`
}

// VariantType is the dimension an option varies along (Color, Size, ...).
type VariantType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// InventoryItem records available stock at a location.
type InventoryItem struct {
	ID                string   `json:"id"`
	Location          Location `json:"location"`
	AvailableQuantity int      `json:"available_quantity"`
}

// Location identifies a stock location.
type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Media is an uploaded asset with size-keyed derived URLs.
type Media struct {
	UUID        string            `json:"uuid"`
	Name        string            `json:"name"`
	FileName    string            `json:"file_name"`
	URL         string            `json:"url"`
	Order       int               `json:"order"`
	Type        string            `json:"type"`
	Extension   string            `json:"extension"`
	Size        int64             `json:"size"`
	MimeType    string            `json:"mime_type"`
	Conversions map[string]string `json:"conversions,omitempty"`
	SquareImage *SquareImage      `json:"square_image,omitempty"`
}

// SquareImage is a square-cropped derivative of a media asset.
type SquareImage struct {
	SrcSet string `json:"src_set"`
	Src    string `json:"src"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// MetaField is a free-form key/value attached to a product.
type MetaField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ProductList is one page of the product listing.
type ProductList struct {
	Data []Product `json:"data"`
	Meta Meta      `json:"meta"`
}

// Meta carries listing metadata.
type Meta struct {
	Pagination Pagination `json:"pagination"`
}

// Pagination describes the page window of a listing response.
type Pagination struct {
	TotalPages int `json:"total_pages"`
}
