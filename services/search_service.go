package services

import (
	"sort"
	"strings"
	"sync"
	"time"

	"intent_search/logger"
	"intent_search/models"
	"intent_search/utils"
)

// 主题搜索内部参数
const (
	maxSearchResults = 50 // 单次请求返回数量的硬上限
	themePoolSize    = 60 // 每个主题预取的候选商品数

	primaryKeywordScore = 5 // 主题前2个触发关键词的命中加分
	relatedItemScore    = 2 // 主题前5个关联商品词的命中加分
	queryWordScore      = 3 // 查询词直接命中标题的加分
)

// SearchService 意图搜索服务
// 商品目录启动时全量加载，查询路径只做内存扫描；两级缓存分别存最终结果和主题候选池
type SearchService struct {
	items      []models.Item
	classifier *Classifier
	cache      *ResultCache // 查询结果缓存，键为规整后查询文本的MD5
	themeCache *ResultCache // 主题候选池缓存，键为主题名
	defaultMax int
}

// NewSearchService 创建搜索服务
func NewSearchService(items []models.Item, classifier *Classifier, cacheCapacity, defaultMax int) *SearchService {
	if classifier == nil {
		classifier = NewClassifier(nil)
	}
	if defaultMax <= 0 {
		defaultMax = 10
	}
	return &SearchService{
		items:      items,
		classifier: classifier,
		cache:      NewResultCache(cacheCapacity),
		themeCache: NewResultCache(cacheCapacity),
		defaultMax: defaultMax,
	}
}

// Search 意图搜索入口：分类查询文本，按主题或关键词检索商品
// 同样的查询文本和数量参数命中缓存时直接返回，响应中的cached标记为true
func (s *SearchService) Search(query string, maxResults int) *models.SearchResponse {
	limit := maxResults
	if limit <= 0 {
		limit = s.defaultMax
	}
	if limit > maxSearchResults {
		limit = maxSearchResults
	}

	normalized := utils.NormalizeQuery(utils.FilterSpecialSymbols(query))
	if normalized == "" {
		return &models.SearchResponse{Items: []models.Item{}}
	}

	key := utils.CacheKey(normalized, limit)
	if cached, ok := s.cache.Get(key); ok {
		resp := cached.(models.SearchResponse)
		resp.Cached = true
		return &resp
	}

	classification := s.classifier.Classify(normalized)

	var items []models.Item
	if classification.Theme != "" {
		items = s.searchByTheme(classification.Theme, normalized, limit)
	} else {
		items = s.SearchByKeywords(utils.Tokenize(normalized), limit)
	}

	resp := models.SearchResponse{
		Items:        items,
		Theme:        classification.Theme,
		TotalResults: len(items),
	}
	s.cache.Put(key, resp)
	logger.Debug("搜索完成", "query", normalized, "theme", classification.Theme, "results", len(items))
	return &resp
}

// SearchByKeywords 关键词检索：商品标题或类目包含任一关键词即命中
// 只取前3个长度大于1的关键词，按标题去重，保持目录顺序
func (s *SearchService) SearchByKeywords(keywords []string, limit int) []models.Item {
	if limit <= 0 {
		limit = s.defaultMax
	}

	terms := make([]string, 0, 3)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if len(kw) > 1 {
			terms = append(terms, kw)
		}
		if len(terms) == 3 {
			break
		}
	}
	if len(terms) == 0 {
		return []models.Item{}
	}

	matched := make([]models.Item, 0, limit)
	seen := make(map[string]bool)
	for i := range s.items {
		title := strings.ToLower(s.items[i].Title)
		category := strings.ToLower(s.items[i].Category)
		for _, term := range terms {
			if strings.Contains(title, term) || strings.Contains(category, term) {
				if !seen[title] {
					seen[title] = true
					matched = append(matched, s.items[i])
				}
				break
			}
		}
		if len(matched) >= limit {
			break
		}
	}
	return matched
}

// SearchByNames 按物品名列表检索商品，保持输入顺序
// 物品名里的下划线当作空格处理，每个名字最多取2件，跨名字去重
func (s *SearchService) SearchByNames(names []string) []models.Item {
	matched := make([]models.Item, 0, len(names)*2)
	seen := make(map[string]bool)

	for _, name := range names {
		tokens := utils.Tokenize(strings.ReplaceAll(name, "_", " "))
		found := 0
		for i := range s.items {
			if found >= 2 {
				break
			}
			title := strings.ToLower(s.items[i].Title)
			if seen[title] || !containsAllTokens(title, tokens) {
				continue
			}
			seen[title] = true
			matched = append(matched, s.items[i])
			found++
		}
		// 全词匹配不到时退化为首词匹配
		if found == 0 && len(tokens) > 0 {
			for i := range s.items {
				title := strings.ToLower(s.items[i].Title)
				if seen[title] || !strings.Contains(title, tokens[0]) {
					continue
				}
				seen[title] = true
				matched = append(matched, s.items[i])
				break
			}
		}
	}
	return matched
}

// WarmThemeCache 并发预热全部主题的候选池，供启动阶段调用
func (s *SearchService) WarmThemeCache(concurrency int) {
	if concurrency <= 0 {
		concurrency = 4
	}
	start := time.Now()

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	for _, theme := range s.classifier.Taxonomy().Themes {
		wg.Add(1)
		sem <- struct{}{}
		go func(name string) {
			defer wg.Done()
			defer func() { <-sem }()
			s.themePool(name)
		}(theme.Name)
	}
	wg.Wait()

	logger.Info("主题缓存预热完成", "themes", len(s.classifier.Taxonomy().Themes),
		"duration", time.Since(start).String())
}

// CacheStats 返回结果缓存和主题缓存的统计
func (s *SearchService) CacheStats() (models.CacheStats, models.CacheStats) {
	return s.cache.Stats(), s.themeCache.Stats()
}

// ClearCaches 清空两级缓存，返回清除的条目总数
func (s *SearchService) ClearCaches() int {
	return s.cache.Clear() + s.themeCache.Clear()
}

// searchByTheme 主题检索：先取主题候选池，再按查询文本算相关性分排序
func (s *SearchService) searchByTheme(themeName, query string, limit int) []models.Item {
	theme := s.themeByName(themeName)
	if theme == nil {
		return s.SearchByKeywords(utils.Tokenize(query), limit)
	}

	pool := s.themePool(themeName)

	type scoredItem struct {
		item  models.Item
		score int
	}
	scored := make([]scoredItem, 0, len(pool))
	queryWords := utils.Tokenize(query)

	for i := range pool {
		title := strings.ToLower(pool[i].Title)
		category := strings.ToLower(pool[i].Category)
		score := 0

		// 主题核心关键词权重最高，关联商品词次之
		for _, kw := range theme.Keywords[:utils.Min(2, len(theme.Keywords))] {
			if strings.Contains(title, kw) || strings.Contains(category, kw) {
				score += primaryKeywordScore
			}
		}
		for _, kw := range theme.RelatedItems[:utils.Min(5, len(theme.RelatedItems))] {
			if strings.Contains(title, kw) || strings.Contains(category, kw) {
				score += relatedItemScore
			}
		}
		for _, word := range queryWords {
			if len(word) > 2 && strings.Contains(title, word) {
				score += queryWordScore
			}
		}

		if score > 0 {
			scored = append(scored, scoredItem{item: pool[i], score: score})
		}
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].score > scored[b].score
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	items := make([]models.Item, 0, len(scored))
	for _, sc := range scored {
		items = append(items, sc.item)
	}
	return items
}

// themePool 获取主题候选池，优先走主题缓存
func (s *SearchService) themePool(themeName string) []models.Item {
	if cached, ok := s.themeCache.Get(themeName); ok {
		return cached.([]models.Item)
	}

	theme := s.themeByName(themeName)
	if theme == nil {
		return []models.Item{}
	}

	// 触发关键词和关联商品词一起构成候选池的检索词
	terms := make([]string, 0, len(theme.Keywords)+len(theme.RelatedItems))
	terms = append(terms, theme.Keywords...)
	terms = append(terms, theme.RelatedItems...)

	pool := make([]models.Item, 0, themePoolSize)
	seen := make(map[string]bool)
	for i := range s.items {
		title := strings.ToLower(s.items[i].Title)
		category := strings.ToLower(s.items[i].Category)
		for _, term := range terms {
			if strings.Contains(title, term) || strings.Contains(category, term) {
				if !seen[title] {
					seen[title] = true
					pool = append(pool, s.items[i])
				}
				break
			}
		}
		if len(pool) >= themePoolSize {
			break
		}
	}

	s.themeCache.Put(themeName, pool)
	return pool
}

func (s *SearchService) themeByName(name string) *models.Theme {
	themes := s.classifier.Taxonomy().Themes
	for i := range themes {
		if themes[i].Name == name {
			return &themes[i]
		}
	}
	return nil
}

func containsAllTokens(text string, tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	for _, tok := range tokens {
		if !strings.Contains(text, tok) {
			return false
		}
	}
	return true
}

// Classify 暴露分类结果，供处理器在响应里附带主题信息
func (s *SearchService) Classify(query string) models.ClassificationResult {
	return s.classifier.Classify(utils.NormalizeQuery(query))
}

// ItemCount 目录内商品总数
func (s *SearchService) ItemCount() int {
	return len(s.items)
}
