package repository

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"regexp"
	"strconv"
	"strings"

	"intent_search/models"
)

var priceDigits = regexp.MustCompile(`\d+\.?\d*`)

// 列名别名，兼容不同来源的数据集表头
var itemColumnAliases = map[string]string{
	"product_name":          "title",
	"name":                  "title",
	"product_category_tree": "category",
	"item_id":               "id",
	"discounted_price":      "price",
	"retail_price":          "price",
	"selling_price":         "price",
	"product_rating":        "rating",
	"overall_rating":        "rating",
}

// LoadItemsFromCSV 从CSV加载商品目录，表头做别名归一化
func LoadItemsFromCSV(path string) ([]models.Item, error) {
	records, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	col := indexColumns(header, itemColumnAliases)
	items := make([]models.Item, 0, len(records))
	for i, rec := range records {
		it := models.Item{
			ID:          int64(i + 1),
			Title:       field(rec, col, "title"),
			Brand:       field(rec, col, "brand"),
			Category:    CleanCategory(field(rec, col, "category")),
			Price:       ParsePrice(field(rec, col, "price")),
			Rating:      parseRating(field(rec, col, "rating")),
			Description: field(rec, col, "description"),
			URL:         field(rec, col, "url"),
			ImageURL:    field(rec, col, "image_url"),
		}
		if raw := field(rec, col, "id"); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
				it.ID = id
			}
		}
		if it.Title == "" {
			continue // 无名条目直接丢弃
		}
		if it.Brand == "" {
			it.Brand = "Generic"
		}
		if it.Category == "" {
			it.Category = "General"
		}
		if it.ImageURL == "" {
			it.ImageURL = ProductImageURL(it.Title, it.Category)
		}
		items = append(items, it)
	}
	return items, nil
}

// LoadSparesFromCSV 从CSV加载备件目录
func LoadSparesFromCSV(path string) ([]models.SparePart, error) {
	records, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	col := indexColumns(header, map[string]string{
		"price": "price_usd",
		"brand": "company",
	})
	spares := make([]models.SparePart, 0, len(records))
	for _, rec := range records {
		p := models.SparePart{
			PartName:         field(rec, col, "part_name"),
			PartNumber:       field(rec, col, "part_number"),
			Brand:            field(rec, col, "company"),
			Category:         field(rec, col, "category"),
			Price:            ParsePrice(field(rec, col, "price_usd")),
			Rating:           parseRating(field(rec, col, "rating")),
			Availability:     NormalizeAvailability(field(rec, col, "availability")),
			Description:      field(rec, col, "description"),
			CompatibleModels: field(rec, col, "compatible_models"),
			ImageURL:         field(rec, col, "image_url"),
		}
		// stock数值列兜底：>10现货，>0少量，否则缺货
		if field(rec, col, "availability") == "" {
			if raw := field(rec, col, "stock"); raw != "" {
				if stock, err := strconv.Atoi(raw); err == nil {
					switch {
					case stock > 10:
						p.Availability = models.AvailabilityInStock
					case stock > 0:
						p.Availability = models.AvailabilityLimitedStock
					default:
						p.Availability = models.AvailabilityOutOfStock
					}
				}
			}
		}
		if p.PartName == "" {
			continue
		}
		spares = append(spares, p)
	}
	return spares, nil
}

// LoadOrdersFromCSV 从CSV加载历史订单
func LoadOrdersFromCSV(path string) ([]models.Order, error) {
	records, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	col := indexColumns(header, map[string]string{"brand": "company"})
	orders := make([]models.Order, 0, len(records))
	for _, rec := range records {
		o := models.Order{
			InvoiceNumber: field(rec, col, "invoice_number"),
			UserName:      field(rec, col, "user_name"),
			Brand:         field(rec, col, "company"),
			Category:      field(rec, col, "category"),
			ProductModel:  field(rec, col, "product_model"),
			PurchaseDate:  field(rec, col, "purchase_date"),
		}
		if o.InvoiceNumber == "" {
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// LoadDependencies 从JSON文件加载意图依赖表，保留声明顺序
func LoadDependencies(path string) (models.DependencySet, error) {
	var set models.DependencySet
	data, err := os.ReadFile(path)
	if err != nil {
		return set, err
	}
	if err := json.Unmarshal(data, &set); err != nil {
		return models.DependencySet{}, err
	}
	return set, nil
}

// NormalizeAvailability 库存状态归一化为固定枚举值
func NormalizeAvailability(raw string) string {
	switch strings.ToLower(strings.TrimSpace(strings.ReplaceAll(raw, " ", "_"))) {
	case models.AvailabilityInStock, "available", "instock":
		return models.AvailabilityInStock
	case models.AvailabilityLimitedStock, "limited", "low_stock":
		return models.AvailabilityLimitedStock
	case models.AvailabilityOutOfStock, "unavailable", "outofstock":
		return models.AvailabilityOutOfStock
	case "":
		return models.AvailabilityInStock // 缺失时按现货处理
	default:
		return models.AvailabilityInStock
	}
}

// CleanCategory 清洗类目字段：去掉括号引号，取">>"层级的第一段，截断到40字符
func CleanCategory(raw string) string {
	clean := strings.NewReplacer("[", "", "]", "", `"`, "").Replace(raw)
	if idx := strings.Index(clean, ">>"); idx >= 0 {
		clean = clean[:idx]
	}
	clean = strings.TrimSpace(clean)
	if len(clean) > 40 {
		clean = clean[:40]
	}
	return clean
}

// ParsePrice 解析价格字符串，剥离货币符号和千分位，失败返回0
func ParsePrice(raw string) float64 {
	cleaned := strings.NewReplacer("₹", "", "$", "", ",", "", " ", "").Replace(raw)
	m := priceDigits.FindString(cleaned)
	if m == "" {
		return 0
	}
	price, err := strconv.ParseFloat(m, 64)
	if err != nil || price < 0 {
		return 0
	}
	return price
}

// parseRating 解析评分，超出0-5范围或缺失时返回中性值3.0
func parseRating(raw string) float64 {
	r, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || r < 0 || r > 5 {
		return 3.0
	}
	return r
}

// readCSV 读取CSV文件，返回数据行和小写化的表头
func readCSV(path string) ([][]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // 容忍列数不齐的行
	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, nil
	}

	header := make([]string, len(all[0]))
	for i, h := range all[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return all[1:], header, nil
}

// indexColumns 建立规范列名到列下标的映射，先应用别名再取首个出现的列
func indexColumns(header []string, aliases map[string]string) map[string]int {
	col := make(map[string]int)
	for i, h := range header {
		name := h
		if canonical, ok := aliases[h]; ok {
			name = canonical
		}
		if _, exists := col[name]; !exists {
			col[name] = i
		}
	}
	return col
}

// field 按规范列名取单元格值
func field(rec []string, col map[string]int, name string) string {
	idx, ok := col[name]
	if !ok || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}
