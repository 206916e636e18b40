package models

import "strings"

// 库存状态
const (
	AvailabilityInStock      = "in_stock"
	AvailabilityLimitedStock = "limited_stock"
	AvailabilityOutOfStock   = "out_of_stock"
)

// Item 商品条目，目录快照中的一行
type Item struct {
	ID          int64   `db:"id" json:"id"`
	Title       string  `db:"title" json:"title"`
	Brand       string  `db:"brand" json:"brand"`
	Category    string  `db:"category" json:"category"`
	Price       float64 `db:"price" json:"price"`
	Rating      float64 `db:"rating" json:"rating"` // 0.0-5.0，缺失时填充中性值3.0
	Description string  `db:"description" json:"description,omitempty"`
	URL         string  `db:"url" json:"url,omitempty"`
	ImageURL    string  `db:"image_url" json:"image_url,omitempty"`
}

// SparePart 备件条目
type SparePart struct {
	PartName         string  `db:"part_name" json:"part_name"`
	PartNumber       string  `db:"part_number" json:"part_number"`
	Brand            string  `db:"company" json:"brand"`
	Category         string  `db:"category" json:"category"`
	Price            float64 `db:"price_usd" json:"price"`
	Rating           float64 `db:"rating" json:"rating"`             // 0.0-5.0，缺失时填充中性值3.0
	Availability     string  `db:"availability" json:"availability"` // in_stock / limited_stock / out_of_stock
	Description      string  `db:"description" json:"description,omitempty"`
	CompatibleModels string  `db:"compatible_models" json:"compatible_models"` // 分号或逗号分隔的兼容机型列表
	ImageURL         string  `db:"image_url" json:"image_url,omitempty"`
}

// ModelTokens 解析兼容机型字段为小写token集合
func (p *SparePart) ModelTokens() []string {
	raw := strings.ReplaceAll(p.CompatibleModels, ",", ";")
	tokens := make([]string, 0)
	for _, t := range strings.Split(raw, ";") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// SupportsModel 判断备件是否兼容指定机型（大小写不敏感的子串匹配）
func (p *SparePart) SupportsModel(deviceModel string) bool {
	m := strings.ToLower(strings.TrimSpace(deviceModel))
	if m == "" {
		return false
	}
	return strings.Contains(strings.ToLower(p.CompatibleModels), m)
}

// Order 历史订单，发票号推荐路径使用
type Order struct {
	InvoiceNumber string `db:"invoice_number" json:"invoice_number"`
	UserName      string `db:"user_name" json:"user_name"`
	Brand         string `db:"company" json:"brand"`
	Category      string `db:"category" json:"category"`
	ProductModel  string `db:"product_model" json:"product_model"`
	PurchaseDate  string `db:"purchase_date" json:"purchase_date"` // YYYY-MM-DD
}
