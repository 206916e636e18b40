package repository

import (
	"intent_search/db"
	"intent_search/models"
)

// LoadItemsFromMySQL 从items表加载全量商品目录
func LoadItemsFromMySQL() ([]models.Item, error) {
	rows, err := db.DB.Query(`
		SELECT id, title, brand, category, price, rating,
		       COALESCE(description, ''), COALESCE(url, ''), COALESCE(image_url, '')
		FROM items
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Brand, &it.Category, &it.Price,
			&it.Rating, &it.Description, &it.URL, &it.ImageURL); err != nil {
			continue
		}
		if it.Rating <= 0 {
			it.Rating = 3.0 // 缺失评分填充中性值
		}
		if it.ImageURL == "" {
			it.ImageURL = ProductImageURL(it.Title, it.Category)
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// LoadSparesFromMySQL 从spare_parts表加载全量备件目录
func LoadSparesFromMySQL() ([]models.SparePart, error) {
	rows, err := db.DB.Query(`
		SELECT part_name, part_number, company, category, price_usd,
		       COALESCE(rating, 3.0), COALESCE(availability, ''), COALESCE(description, ''),
		       COALESCE(compatible_models, ''), COALESCE(image_url, '')
		FROM spare_parts
		ORDER BY part_number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	spares := make([]models.SparePart, 0)
	for rows.Next() {
		var p models.SparePart
		if err := rows.Scan(&p.PartName, &p.PartNumber, &p.Brand, &p.Category,
			&p.Price, &p.Rating, &p.Availability, &p.Description, &p.CompatibleModels, &p.ImageURL); err != nil {
			continue
		}
		p.Availability = NormalizeAvailability(p.Availability)
		spares = append(spares, p)
	}

	return spares, rows.Err()
}

// LoadOrdersFromMySQL 从user_orders表加载历史订单
func LoadOrdersFromMySQL() ([]models.Order, error) {
	rows, err := db.DB.Query(`
		SELECT invoice_number, user_name, company, category, product_model,
		       COALESCE(DATE_FORMAT(purchase_date, '%Y-%m-%d'), '')
		FROM user_orders
		ORDER BY purchase_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.InvoiceNumber, &o.UserName, &o.Brand, &o.Category,
			&o.ProductModel, &o.PurchaseDate); err != nil {
			continue
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}
