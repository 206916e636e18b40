package services

import (
	"testing"

	"intent_search/models"
	"intent_search/repository"
)

func testSnapshot() *repository.Snapshot {
	return &repository.Snapshot{
		Spares: []models.SparePart{
			{
				PartName: "Cooling Fan Motor", PartNumber: "FAN-200", Brand: "samsung",
				Category: "ac", Price: 45, Rating: 4.2,
				Availability: models.AvailabilityInStock, CompatibleModels: "AR12TY;AR09TY",
			},
			{
				PartName: "Compressor Unit", PartNumber: "CMP-100", Brand: "samsung",
				Category: "ac", Price: 180, Rating: 4.6,
				Availability: models.AvailabilityInStock, CompatibleModels: "AR18XX",
			},
			{
				PartName: "Replacement Battery Pack", PartNumber: "BAT-300", Brand: "lg",
				Category: "smartphone", Price: 35, Rating: 4.0,
				Availability: models.AvailabilityInStock, CompatibleModels: "G7THIN",
			},
			{
				PartName: "Door Gasket", PartNumber: "GSK-400", Brand: "whirlpool",
				Category: "refrigerator", Price: 25, Rating: 3.8,
				Availability: models.AvailabilityLimitedStock,
			},
		},
		Orders: []models.Order{
			{InvoiceNumber: "INV-1001", UserName: "Alice", Brand: "samsung", Category: "ac",
				ProductModel: "AR12TY", PurchaseDate: "2023-03-15"},
			{InvoiceNumber: "INV-1002", UserName: "Bob", Brand: "lg", Category: "smartphone",
				ProductModel: "G7THIN", PurchaseDate: "2022-11-02"},
			{InvoiceNumber: "INV-1003", UserName: "Carol", Brand: "samsung", Category: "ac",
				ProductModel: "AR18XX", PurchaseDate: "2024-01-20"},
		},
	}
}

func testSparePartService() *SparePartService {
	return NewSparePartService(testSnapshot(), NewClassifier(nil), testPipeline())
}

func TestRecommendForProblem(t *testing.T) {
	s := testSparePartService()

	resp := s.RecommendForProblem("my phone battery is draining fast", nil, 5)
	if !containsString(resp.DetectedIssue.DetectedIssues, "battery") {
		t.Fatalf("DetectedIssues = %v", resp.DetectedIssue.DetectedIssues)
	}
	if resp.DetectedIssue.Urgency != models.UrgencyHigh {
		t.Errorf("Urgency = %q, want high", resp.DetectedIssue.Urgency)
	}
	if resp.TotalFound == 0 || len(resp.Recommendations) == 0 {
		t.Fatal("期望非空推荐结果")
	}
	if resp.Recommendations[0].Part.PartName != "Replacement Battery Pack" {
		t.Errorf("首位推荐 = %q, want Replacement Battery Pack", resp.Recommendations[0].Part.PartName)
	}
	if resp.PersonalizedMessage == "" {
		t.Error("应生成提示语")
	}
}

func TestRecommendForProblemWithProfile(t *testing.T) {
	s := testSparePartService()

	profile := &models.UserProfile{
		PreferredBrands: []string{"samsung"},
		SpendingTier:    models.TierBudget,
		DeviceModel:     "AR12TY",
	}
	resp := s.RecommendForProblem("ac making loud rattling noise", profile, 5)
	if len(resp.Recommendations) == 0 {
		t.Fatal("期望非空推荐结果")
	}
	// 噪音问题关联fan/motor，叠加品牌和型号偏好后风扇电机应排第一
	if resp.Recommendations[0].Part.PartName != "Cooling Fan Motor" {
		t.Errorf("首位推荐 = %q, want Cooling Fan Motor", resp.Recommendations[0].Part.PartName)
	}
}

func TestRecommendStructured(t *testing.T) {
	s := testSparePartService()

	results := s.RecommendStructured(&models.SparePartRequest{
		Brand:            "samsung",
		DeviceModel:      "AR12TY",
		IssueDescription: "loud noise from the outdoor unit",
		MaxResults:       3,
	}, nil)
	if len(results) == 0 {
		t.Fatal("期望非空结果")
	}
	if results[0].Part.PartName != "Cooling Fan Motor" {
		t.Errorf("首位推荐 = %q, want Cooling Fan Motor", results[0].Part.PartName)
	}
}

func TestRecommendByInvoice(t *testing.T) {
	s := testSparePartService()

	results, found := s.RecommendByInvoice("INV-1001", "fan", 3)
	if !found {
		t.Fatal("已知发票号应能找到订单")
	}
	if len(results) == 0 {
		t.Fatal("期望非空结果")
	}
	// 品牌+型号+故障词全命中: 0.4+0.4+0.2
	if results[0].Part.PartNumber != "FAN-200" {
		t.Errorf("首位推荐 = %q, want FAN-200", results[0].Part.PartNumber)
	}
	if results[0].Score != 1.0 {
		t.Errorf("全命中得分 = %v, want 1.0", results[0].Score)
	}

	if _, found := s.RecommendByInvoice("INV-9999", "fan", 3); found {
		t.Error("未知发票号不应找到订单")
	}
}

func TestRecommendByInvoiceTopN(t *testing.T) {
	s := testSparePartService()

	results, found := s.RecommendByInvoice("INV-1003", "", 1)
	if !found {
		t.Fatal("已知发票号应能找到订单")
	}
	if len(results) != 1 {
		t.Errorf("top_n=1 时结果数量 = %d", len(results))
	}
	// INV-1003 对应 AR18XX，压缩机是唯一兼容该型号的备件
	if results[0].Part.PartNumber != "CMP-100" {
		t.Errorf("首位推荐 = %q, want CMP-100", results[0].Part.PartNumber)
	}
}

func TestParseFreeText(t *testing.T) {
	s := testSparePartService()

	tests := []struct {
		name string
		msg  string
		want models.ParsedQuery
	}{
		{
			name: "完整报修文本",
			msg:  "my samsung microwave from March 2023 has a broken magnetron",
			want: models.ParsedQuery{Fault: "magnetron", Category: "microwave", Brand: "samsung", Year: 2023, Month: 3},
		},
		{
			name: "ac归一为air conditioner",
			msg:  "LG ac compressor failed",
			want: models.ParsedQuery{Fault: "compressor", Category: "air conditioner", Brand: "lg"},
		},
		{
			name: "fridge归一为refrigerator",
			msg:  "whirlpool fridge fan is noisy",
			want: models.ParsedQuery{Fault: "fan", Category: "refrigerator", Brand: "whirlpool"},
		},
		{
			name: "提取设备型号但跳过年份",
			msg:  "bought AR12TY in 2023, display broken",
			want: models.ParsedQuery{Fault: "display", Brand: "", DeviceModel: "AR12TY", Year: 2023},
		},
		{
			name: "空文本",
			msg:  "   ",
			want: models.ParsedQuery{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ParseFreeText(tt.msg)
			if got != tt.want {
				t.Errorf("ParseFreeText(%q) = %+v, want %+v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestCandidateOrders(t *testing.T) {
	s := testSparePartService()

	// 品牌过滤，购买日期降序
	got := s.CandidateOrders(models.ParsedQuery{Brand: "samsung"}, "", 10)
	if len(got) != 2 {
		t.Fatalf("结果数量 = %d, want 2", len(got))
	}
	if got[0].InvoiceNumber != "INV-1003" || got[1].InvoiceNumber != "INV-1001" {
		t.Errorf("订单未按日期降序: %v, %v", got[0].InvoiceNumber, got[1].InvoiceNumber)
	}

	// 年月过滤
	got = s.CandidateOrders(models.ParsedQuery{Year: 2023, Month: 3}, "", 10)
	if len(got) != 1 || got[0].InvoiceNumber != "INV-1001" {
		t.Errorf("年月过滤结果 = %+v", got)
	}

	// 用户名模糊匹配
	got = s.CandidateOrders(models.ParsedQuery{}, "ali", 10)
	if len(got) != 1 || got[0].UserName != "Alice" {
		t.Errorf("用户名过滤结果 = %+v", got)
	}
}

func TestCandidateOrdersMixedDateFormats(t *testing.T) {
	snap := &repository.Snapshot{
		Orders: []models.Order{
			{InvoiceNumber: "INV-A", UserName: "Alice", Brand: "samsung", Category: "ac",
				PurchaseDate: "2023-12-01"},
			{InvoiceNumber: "INV-B", UserName: "Bob", Brand: "samsung", Category: "ac",
				PurchaseDate: "15-06-2024"},
			{InvoiceNumber: "INV-C", UserName: "Carol", Brand: "samsung", Category: "ac",
				PurchaseDate: "2024/02/10"},
		},
	}
	s := NewSparePartService(snap, NewClassifier(nil), testPipeline())

	// 不同日期写法混排时必须按解析后的时间降序，而不是字符串比较
	got := s.CandidateOrders(models.ParsedQuery{Brand: "samsung"}, "", 10)
	if len(got) != 3 {
		t.Fatalf("结果数量 = %d, want 3", len(got))
	}
	want := []string{"INV-B", "INV-C", "INV-A"}
	for i, inv := range want {
		if got[i].InvoiceNumber != inv {
			t.Errorf("第%d位 = %s, want %s", i, got[i].InvoiceNumber, inv)
		}
	}
}

func TestBrandsAndModels(t *testing.T) {
	s := testSparePartService()

	brands := s.Brands()
	if len(brands) != 3 {
		t.Fatalf("Brands() = %v", brands)
	}
	// 首次出现顺序
	if brands[0] != "samsung" || brands[1] != "lg" || brands[2] != "whirlpool" {
		t.Errorf("品牌顺序 = %v", brands)
	}

	deviceModels := s.ModelsForBrand("samsung")
	if len(deviceModels) != 2 {
		t.Fatalf("ModelsForBrand(samsung) = %v", deviceModels)
	}
	if len(s.ModelsForBrand("unknown")) != 0 {
		t.Error("未知品牌应返回空型号列表")
	}
}
