package services

import (
	"strings"

	"intent_search/logger"
	"intent_search/models"
)

// DependencyResolver 意图依赖图解析器
// 对每个意图的物品依赖关系做拓扑排序，保证前置物品排在依赖它的物品之前
type DependencyResolver struct {
	set      models.DependencySet
	taxonomy *models.Taxonomy
}

// NewDependencyResolver 创建解析器
func NewDependencyResolver(set models.DependencySet, taxonomy *models.Taxonomy) *DependencyResolver {
	if taxonomy == nil {
		taxonomy = models.DefaultTaxonomy()
	}
	return &DependencyResolver{set: set, taxonomy: taxonomy}
}

// Intents 返回全部已注册意图名，保持声明顺序
func (r *DependencyResolver) Intents() []string {
	return r.set.Names()
}

// Has 判断意图是否存在
func (r *DependencyResolver) Has(intent string) bool {
	_, ok := r.set.Get(intent)
	return ok
}

// ItemsForIntent 返回意图声明的全部物品，保持声明顺序，不做排序
func (r *DependencyResolver) ItemsForIntent(intent string) []string {
	deps, ok := r.set.Get(intent)
	if !ok {
		return []string{}
	}
	return deps.Items()
}

// DirectDependencies 返回物品的直接前置列表，物品不存在时返回空
func (r *DependencyResolver) DirectDependencies(intent, item string) []string {
	deps, ok := r.set.Get(intent)
	if !ok {
		return []string{}
	}
	return deps.Requires(item)
}

// Resolve 对意图的依赖图做拓扑排序
// 多个物品同时可选时取声明顺序靠前的；检测到环时回退为声明顺序并返回acyclic=false
// 指向未声明物品的前置直接忽略，不影响排序
func (r *DependencyResolver) Resolve(intent string) ([]string, bool) {
	deps, ok := r.set.Get(intent)
	if !ok {
		return []string{}, true
	}

	order := deps.Items()
	present := make(map[string]bool, len(order))
	for _, item := range order {
		present[item] = true
	}

	// indegree只统计声明过的前置，dependents是反向边表
	indegree := make(map[string]int, len(order))
	dependents := make(map[string][]string, len(order))
	for _, item := range order {
		seen := make(map[string]bool)
		for _, req := range deps.Requires(item) {
			if req == item || !present[req] || seen[req] {
				continue
			}
			seen[req] = true
			indegree[item]++
			dependents[req] = append(dependents[req], item)
		}
	}

	resolved := make([]string, 0, len(order))
	done := make(map[string]bool, len(order))
	for len(resolved) < len(order) {
		picked := ""
		for _, item := range order {
			if !done[item] && indegree[item] == 0 {
				picked = item
				break
			}
		}
		if picked == "" {
			// 剩余物品构成环，整体回退为声明顺序
			logger.Warn("依赖图存在循环，回退为声明顺序", "intent", intent)
			return order, false
		}
		done[picked] = true
		resolved = append(resolved, picked)
		for _, dep := range dependents[picked] {
			indegree[dep]--
		}
	}

	return resolved, true
}

// IntentForQuery 从查询文本识别意图：按触发关键词命中数打分，取最高分意图
// 词表没有该意图的关键词时，用意图名按下划线拆词兜底；无任何命中返回空串
func (r *DependencyResolver) IntentForQuery(query string) string {
	lowered := strings.ToLower(strings.TrimSpace(query))
	if lowered == "" {
		return ""
	}

	best, bestHits := "", 0
	for _, intent := range r.set.Names() {
		keywords, ok := r.taxonomy.Intents[intent]
		if !ok || len(keywords) == 0 {
			keywords = strings.Split(strings.ReplaceAll(intent, "_", " "), " ")
		}
		hits := 0
		for _, kw := range keywords {
			if len(kw) > 1 && strings.Contains(lowered, kw) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			best = intent
		}
	}
	return best
}
