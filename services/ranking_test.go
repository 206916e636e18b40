package services

import (
	"testing"

	"intent_search/models"
)

func testPipeline() *RankingPipeline {
	return NewRankingPipeline(NewCompatibilityScorer(DefaultScoreWeights(), nil), DefaultMinScore, 10)
}

func testSpares() []models.SparePart {
	return []models.SparePart{
		{PartName: "LG Fan Motor", Brand: "lg", Category: "noise", Rating: 4.0, Availability: models.AvailabilityInStock},
		{PartName: "Samsung Compressor", Brand: "samsung", Category: "cooling", Rating: 4.5, Availability: models.AvailabilityInStock},
		{PartName: "Bosch Filter Mesh", Brand: "bosch", Category: "filter", Rating: 3.5, Availability: models.AvailabilityLimitedStock},
		{PartName: "Samsung Battery Pack", Brand: "samsung", Category: "battery", Rating: 4.0, Availability: models.AvailabilityInStock},
		{PartName: "Haier Door Gasket", Brand: "haier", Category: "leak", Rating: 3.0, Availability: models.AvailabilityOutOfStock},
	}
}

func TestSelectPoolBrandPriority(t *testing.T) {
	p := testPipeline()
	ctx := &models.QueryContext{
		Classification: models.ClassificationResult{BrandMentioned: "samsung", Urgency: models.UrgencyMedium},
	}
	profile := &models.UserProfile{PreferredBrands: []string{"bosch"}}

	pool := p.SelectPool(testSpares(), ctx, profile)
	if len(pool) != 5 {
		t.Fatalf("候选池数量 = %d, want 5", len(pool))
	}

	// 提到的品牌最前，偏好品牌次之，其余按目录顺序
	wantBrands := []string{"samsung", "samsung", "bosch", "lg", "haier"}
	for i, want := range wantBrands {
		if pool[i].Brand != want {
			t.Errorf("pool[%d].Brand = %q, want %q", i, pool[i].Brand, want)
		}
	}
}

func TestSelectPoolNoDuplicates(t *testing.T) {
	p := testPipeline()
	ctx := &models.QueryContext{
		Brand:          "samsung",
		Classification: models.ClassificationResult{BrandMentioned: "samsung", Urgency: models.UrgencyMedium},
	}
	// 偏好品牌与提到的品牌相同，不应重复进池
	profile := &models.UserProfile{PreferredBrands: []string{"samsung"}}

	pool := p.SelectPool(testSpares(), ctx, profile)
	if len(pool) != 5 {
		t.Fatalf("候选池数量 = %d, want 5", len(pool))
	}
	seen := make(map[string]bool)
	for _, part := range pool {
		if seen[part.PartName] {
			t.Errorf("备件 %q 重复进池", part.PartName)
		}
		seen[part.PartName] = true
	}
}

func TestRankFiltersLowScores(t *testing.T) {
	p := testPipeline()
	ctx := &models.QueryContext{
		Classification: models.ClassificationResult{
			DetectedIssues: []string{"battery"},
			Urgency:        models.UrgencyMedium,
		},
	}

	ranked := p.Rank(testSpares(), ctx, nil, 10)
	for _, r := range ranked {
		if r.Score < DefaultMinScore {
			t.Errorf("低于阈值的备件 %q (%v) 不应出现在结果里", r.Part.PartName, r.Score)
		}
	}
	// 缺货且无任何命中的备件评分为负后截断到0，应被过滤
	for _, r := range ranked {
		if r.Part.PartName == "Haier Door Gasket" {
			t.Error("无命中的缺货备件不应进入结果")
		}
	}
}

func TestRankOrderAndLimit(t *testing.T) {
	p := testPipeline()
	ctx := &models.QueryContext{
		Classification: models.ClassificationResult{
			DetectedIssues: []string{"battery"},
			Urgency:        models.UrgencyHigh,
		},
	}

	ranked := p.Rank(testSpares(), ctx, nil, 10)
	if len(ranked) == 0 {
		t.Fatal("期望非空结果")
	}
	if ranked[0].Part.PartName != "Samsung Battery Pack" {
		t.Errorf("得分最高的应是电池备件, got %q", ranked[0].Part.PartName)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("结果未按得分降序: ranked[%d]=%v > ranked[%d]=%v",
				i, ranked[i].Score, i-1, ranked[i-1].Score)
		}
		if ranked[i].Score == ranked[i-1].Score && ranked[i].Part.Rating > ranked[i-1].Part.Rating {
			t.Errorf("同分未按评分降序: %q 在 %q 之后", ranked[i].Part.PartName, ranked[i-1].Part.PartName)
		}
	}

	if got := p.Rank(testSpares(), ctx, nil, 1); len(got) != 1 {
		t.Errorf("limit=1 时结果数量 = %d", len(got))
	}
}

func TestRankDefaultLimit(t *testing.T) {
	p := NewRankingPipeline(NewCompatibilityScorer(DefaultScoreWeights(), nil), DefaultMinScore, 2)
	ctx := &models.QueryContext{
		Classification: models.ClassificationResult{Urgency: models.UrgencyMedium},
	}

	// limit<=0 时退回构造时的默认条数
	ranked := p.Rank(testSpares(), ctx, nil, 0)
	if len(ranked) > 2 {
		t.Errorf("默认limit=2, 结果数量 = %d", len(ranked))
	}
}
