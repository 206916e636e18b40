package models

// 紧急程度
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// 消费档位
const (
	TierBudget  = "budget"
	TierMid     = "mid"
	TierPremium = "premium"
)

// ClassificationResult 文本分类结果
type ClassificationResult struct {
	Theme          string   `json:"theme,omitempty"`           // 最佳匹配主题，无匹配时为空
	DetectedIssues []string `json:"detected_issues"`           // 全部命中的问题类别
	KeywordsFound  []string `json:"keywords_found"`            // 命中的触发关键词
	BrandMentioned string   `json:"brand_mentioned,omitempty"` // 文本中出现的品牌
	Urgency        string   `json:"urgency"`                   // low / medium / high
}

// QueryContext 单次请求的查询上下文，响应后即丢弃
type QueryContext struct {
	RawQuery       string
	Brand          string // 结构化指定的品牌，优先于文本识别结果
	DeviceModel    string
	IssueKeyword   string
	MaxResults     int
	Classification ClassificationResult
}

// MentionedBrand 返回生效的品牌：结构化字段优先，其次取分类结果
func (q *QueryContext) MentionedBrand() string {
	if q.Brand != "" {
		return q.Brand
	}
	return q.Classification.BrandMentioned
}

// UserProfile 用户偏好画像，打分与候选池构建使用
type UserProfile struct {
	PreferredBrands []string `json:"preferred_brands"`
	SpendingTier    string   `json:"spending_tier"` // budget / mid / premium
	DeviceModel     string   `json:"device_model,omitempty"`
}

// ScoredPart 备件与其相关性得分的临时配对，仅在排序期间存在
type ScoredPart struct {
	Part   SparePart `json:"part"`
	Score  float64   `json:"compatibility_score"`
	Reason string    `json:"match_reason,omitempty"`
}
