package services

import (
	"strings"

	"intent_search/models"
)

// ScoreWeights 兼容性打分的各信号权重
// 权重刻意不归一化：问题匹配是主导信号，其余信号只做排序微调，总分最后截断到[0,1]
type ScoreWeights struct {
	IssueMatch          float64 // 备件类目命中检测到的问题类别
	DeviceMatch         float64 // 兼容型号列表包含用户设备型号
	BrandAffinity       float64 // 品牌在用户偏好列表中
	PriceBand           float64 // 价格落在消费档位区间内
	PriceBandPartial    float64 // 价格落在相邻档位区间
	AvailabilityInStock float64
	AvailabilityLimited float64
	RatingUnit          float64 // 评分每高于中性值1分的加成
	UrgencyBonus        float64 // 高紧急度问题下现货备件的加成
	RatingNeutral       float64 // 评分的中性基准
}

// DefaultScoreWeights 默认权重
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		IssueMatch:          0.6,
		DeviceMatch:         0.3,
		BrandAffinity:       0.2,
		PriceBand:           0.1,
		PriceBandPartial:    0.05,
		AvailabilityInStock: 0.05,
		AvailabilityLimited: 0.02,
		RatingUnit:          0.02,
		UrgencyBonus:        0.05,
		RatingNeutral:       3.0,
	}
}

// 消费档位的价格区间（美元）
const (
	budgetCeiling = 50.0
	premiumFloor  = 150.0
)

// CompatibilityScorer 备件兼容性打分器
// 输入只读，不修改备件和上下文；同样的输入永远得到同样的分数
type CompatibilityScorer struct {
	weights  ScoreWeights
	taxonomy *models.Taxonomy
}

// NewCompatibilityScorer 创建打分器
func NewCompatibilityScorer(weights ScoreWeights, taxonomy *models.Taxonomy) *CompatibilityScorer {
	if taxonomy == nil {
		taxonomy = models.DefaultTaxonomy()
	}
	return &CompatibilityScorer{weights: weights, taxonomy: taxonomy}
}

// Score 计算备件与查询上下文的兼容性得分和匹配理由
// 各信号独立累加，最后截断到[0,1]
func (s *CompatibilityScorer) Score(part *models.SparePart, ctx *models.QueryContext, profile *models.UserProfile) (float64, string) {
	score := 0.0
	reasons := make([]string, 0, 4)

	// 问题类别匹配：备件类目等于问题名，或备件名包含问题关联的备件关键词
	if issue := s.matchedIssue(part, ctx); issue != "" {
		score += s.weights.IssueMatch
		reasons = append(reasons, "匹配问题类别 "+issue)
	}

	// 设备型号匹配
	deviceModel := ctx.DeviceModel
	if deviceModel == "" && profile != nil {
		deviceModel = profile.DeviceModel
	}
	if deviceModel != "" && part.SupportsModel(deviceModel) {
		score += s.weights.DeviceMatch
		reasons = append(reasons, "兼容设备型号 "+deviceModel)
	}

	// 品牌偏好
	if profile != nil && brandPreferred(part.Brand, profile.PreferredBrands) {
		score += s.weights.BrandAffinity
		reasons = append(reasons, "偏好品牌 "+part.Brand)
	}

	// 价格档位：完全落在档位内给满分，相邻档位给部分分
	if profile != nil && profile.SpendingTier != "" {
		switch priceBandAffinity(part.Price, profile.SpendingTier) {
		case bandFull:
			score += s.weights.PriceBand
			reasons = append(reasons, "价格符合消费档位")
		case bandAdjacent:
			score += s.weights.PriceBandPartial
		}
	}

	// 库存状态
	switch part.Availability {
	case models.AvailabilityInStock:
		score += s.weights.AvailabilityInStock
	case models.AvailabilityLimitedStock:
		score += s.weights.AvailabilityLimited
	}

	// 评分加成，低于中性值时为负向调整
	score += s.weights.RatingUnit * (part.Rating - s.weights.RatingNeutral)

	// 高紧急度问题优先推现货
	if ctx.Classification.Urgency == models.UrgencyHigh && part.Availability == models.AvailabilityInStock {
		score += s.weights.UrgencyBonus
		reasons = append(reasons, "现货，可立即解决紧急问题")
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, strings.Join(reasons, "；")
}

// matchedIssue 返回备件命中的第一个检测到的问题类别名，未命中返回空串
func (s *CompatibilityScorer) matchedIssue(part *models.SparePart, ctx *models.QueryContext) string {
	nameLower := strings.ToLower(part.PartName)
	categoryLower := strings.ToLower(part.Category)
	for _, issueName := range ctx.Classification.DetectedIssues {
		if strings.EqualFold(part.Category, issueName) {
			return issueName
		}
		for _, issue := range s.taxonomy.Issues {
			if issue.Name != issueName {
				continue
			}
			for _, kw := range issue.RelatedParts {
				if strings.Contains(nameLower, kw) || strings.Contains(categoryLower, kw) {
					return issueName
				}
			}
		}
	}
	// 结构化请求里显式给了故障关键词时也算问题匹配
	if ctx.IssueKeyword != "" && strings.Contains(nameLower, strings.ToLower(ctx.IssueKeyword)) {
		return ctx.IssueKeyword
	}
	return ""
}

type bandMatch int

const (
	bandNone bandMatch = iota
	bandAdjacent
	bandFull
)

// priceBandAffinity 判断价格与消费档位的匹配程度
func priceBandAffinity(price float64, tier string) bandMatch {
	if price <= 0 {
		return bandNone
	}
	switch tier {
	case models.TierBudget:
		if price <= budgetCeiling {
			return bandFull
		}
		if price <= premiumFloor {
			return bandAdjacent
		}
	case models.TierMid:
		if price > budgetCeiling && price <= premiumFloor {
			return bandFull
		}
		return bandAdjacent
	case models.TierPremium:
		if price > premiumFloor {
			return bandFull
		}
		if price > budgetCeiling {
			return bandAdjacent
		}
	}
	return bandNone
}

func brandPreferred(brand string, preferred []string) bool {
	for _, p := range preferred {
		if strings.EqualFold(brand, p) {
			return true
		}
	}
	return false
}
