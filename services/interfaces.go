package services

import (
	"intent_search/models"
)

// Searcher 意图搜索服务接口
type Searcher interface {
	// 按查询文本检索商品
	Search(query string, maxResults int) *models.SearchResponse

	// 按关键词列表检索商品
	SearchByKeywords(keywords []string, limit int) []models.Item

	// 按物品名列表检索商品，保持输入顺序
	SearchByNames(names []string) []models.Item

	// 清空缓存
	ClearCaches() int
}

// PartRecommender 备件推荐服务接口
type PartRecommender interface {
	// 自由文本问题推荐
	RecommendForProblem(problem string, profile *models.UserProfile, limit int) *models.ProblemResponse

	// 结构化请求推荐
	RecommendStructured(req *models.SparePartRequest, profile *models.UserProfile) []models.ScoredPart

	// 发票号推荐
	RecommendByInvoice(invoiceNumber, faultKeyword string, topN int) ([]models.ScoredPart, bool)

	// 自由文本解析
	ParseFreeText(message string) models.ParsedQuery
}

// IntentResolver 意图依赖解析接口
type IntentResolver interface {
	// 解析意图的物品依赖顺序
	Resolve(intent string) ([]string, bool)

	// 从查询文本识别意图
	IntentForQuery(query string) string
}
