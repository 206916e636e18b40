package repository

import (
	"os"
	"path/filepath"
	"testing"

	"intent_search/models"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("写入测试文件失败: %v", err)
	}
	return path
}

func TestLoadItemsFromCSV(t *testing.T) {
	csv := `product_name,brand,product_category_tree,discounted_price,product_rating,description
Hiking Boots,Wildcraft,"[""Footwear >> Outdoor Shoes""]",₹1299,4.3,Sturdy boots
Water Bottle,,Accessories,250,No rating available,Insulated bottle
,,Misc,100,3.5,Nameless row skipped
`
	items, err := LoadItemsFromCSV(writeTempFile(t, "items.csv", csv))
	if err != nil {
		t.Fatalf("LoadItemsFromCSV: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("商品数量 = %d, want 2", len(items))
	}

	first := items[0]
	if first.Title != "Hiking Boots" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Category != "Footwear" {
		t.Errorf("Category = %q, want Footwear", first.Category)
	}
	if first.Price != 1299 {
		t.Errorf("Price = %v, want 1299", first.Price)
	}
	if first.Rating != 4.3 {
		t.Errorf("Rating = %v, want 4.3", first.Rating)
	}

	second := items[1]
	if second.Brand != "Generic" {
		t.Errorf("空品牌应回填Generic, got %q", second.Brand)
	}
	if second.Rating != 3.0 {
		t.Errorf("无效评分应回填3.0, got %v", second.Rating)
	}

	// 没有image_url列时回填按品类生成的图片地址
	if first.ImageURL == "" || second.ImageURL == "" {
		t.Error("缺失图片地址应回填生成值")
	}
	if first.ImageURL != ProductImageURL("Hiking Boots", "Footwear") {
		t.Errorf("回填的图片地址不确定: %q", first.ImageURL)
	}
}

func TestProductImageURL(t *testing.T) {
	// 同名同品类总是得到同一个地址
	a := ProductImageURL("Trail Running Shoes", "Footwear")
	b := ProductImageURL("Trail Running Shoes", "Footwear")
	if a != b {
		t.Errorf("同一商品生成了不同地址: %q vs %q", a, b)
	}

	tests := []struct {
		name    string
		product string
		wantTag string
	}{
		{"smartphone", "Samsung Galaxy Phone", "smartphone"},
		{"footwear", "Trail Running Shoes", "sneakers"},
		{"books", "Mountain Climbing Guide", "books"},
		{"generic", "Mystery Widget", "product"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProductImageURL(tt.product, "General")
			want := "https://source.unsplash.com/400x400/?" + tt.wantTag + "&sig="
			if len(got) < len(want) || got[:len(want)] != want {
				t.Errorf("ProductImageURL(%q) = %q, want prefix %q", tt.product, got, want)
			}
		})
	}
}

func TestLoadSparesFromCSV(t *testing.T) {
	csv := `part_name,part_number,company,category,price_usd,rating,availability,compatible_models,stock
Cooling Fan Motor,FAN-200,samsung,ac,45.50,4.2,In Stock,AR12TY;AR09TY,
Door Gasket,GSK-400,whirlpool,refrigerator,25,3.8,,WRX735,4
Compressor Unit,CMP-100,samsung,ac,180,4.6,,AR18XX,0
`
	spares, err := LoadSparesFromCSV(writeTempFile(t, "spares.csv", csv))
	if err != nil {
		t.Fatalf("LoadSparesFromCSV: %v", err)
	}
	if len(spares) != 3 {
		t.Fatalf("备件数量 = %d, want 3", len(spares))
	}

	if spares[0].Availability != models.AvailabilityInStock {
		t.Errorf("In Stock 应归一为 in_stock, got %q", spares[0].Availability)
	}
	// availability缺失时按stock数值兜底
	if spares[1].Availability != models.AvailabilityLimitedStock {
		t.Errorf("stock=4 应为 limited_stock, got %q", spares[1].Availability)
	}
	if spares[2].Availability != models.AvailabilityOutOfStock {
		t.Errorf("stock=0 应为 out_of_stock, got %q", spares[2].Availability)
	}
	if !spares[0].SupportsModel("ar12ty") {
		t.Error("兼容型号匹配应大小写不敏感")
	}
}

func TestLoadOrdersFromCSV(t *testing.T) {
	csv := `invoice_number,user_name,company,category,product_model,purchase_date
INV-1001,Alice,samsung,ac,AR12TY,2023-03-15
,Bob,lg,tv,OLED55,2022-01-01
`
	orders, err := LoadOrdersFromCSV(writeTempFile(t, "orders.csv", csv))
	if err != nil {
		t.Fatalf("LoadOrdersFromCSV: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("无发票号的行应被跳过, got %d", len(orders))
	}
	if orders[0].InvoiceNumber != "INV-1001" || orders[0].ProductModel != "AR12TY" {
		t.Errorf("订单解析错误: %+v", orders[0])
	}
}

func TestLoadDependencies(t *testing.T) {
	raw := `{"make_tea": {"tea_powder": [], "milk": ["tea_powder"]}, "camping": {"tent": []}}`
	set, err := LoadDependencies(writeTempFile(t, "deps.json", raw))
	if err != nil {
		t.Fatalf("LoadDependencies: %v", err)
	}
	names := set.Names()
	if len(names) != 2 || names[0] != "make_tea" || names[1] != "camping" {
		t.Errorf("Names() = %v", names)
	}

	if _, err := LoadDependencies(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("缺失文件应报错")
	}
}

func TestCleanCategory(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`["Clothing >> Men >> T-Shirts"]`, "Clothing"},
		{"Accessories", "Accessories"},
		{`"Footwear >> Boots"`, "Footwear"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanCategory(tt.input); got != tt.want {
			t.Errorf("CleanCategory(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"₹1,299", 1299},
		{"$45.50", 45.5},
		{"180", 180},
		{"free", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := ParsePrice(tt.input); got != tt.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeAvailability(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"In Stock", models.AvailabilityInStock},
		{"limited", models.AvailabilityLimitedStock},
		{"out_of_stock", models.AvailabilityOutOfStock},
		{"UNAVAILABLE", models.AvailabilityOutOfStock},
		{"", models.AvailabilityInStock},
		{"whatever", models.AvailabilityInStock},
	}
	for _, tt := range tests {
		if got := NormalizeAvailability(tt.input); got != tt.want {
			t.Errorf("NormalizeAvailability(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
