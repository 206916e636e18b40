package services

import (
	"sort"
	"strings"

	"intent_search/models"
)

// DefaultMinScore 进入推荐结果的最低兼容性得分
const DefaultMinScore = 0.05

// RankingPipeline 备件候选池构建与排序流水线
// 候选池按品牌优先级分层：文本提到的品牌最前，其次偏好品牌，最后其余全部
type RankingPipeline struct {
	scorer       *CompatibilityScorer
	minScore     float64
	defaultLimit int
}

// NewRankingPipeline 创建排序流水线
func NewRankingPipeline(scorer *CompatibilityScorer, minScore float64, defaultLimit int) *RankingPipeline {
	if minScore <= 0 {
		minScore = DefaultMinScore
	}
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &RankingPipeline{scorer: scorer, minScore: minScore, defaultLimit: defaultLimit}
}

// SelectPool 从全量备件构建候选池
// 品牌分层去重：同一备件只出现在最高优先级的层里，层内保持目录顺序
func (p *RankingPipeline) SelectPool(spares []models.SparePart, ctx *models.QueryContext, profile *models.UserProfile) []models.SparePart {
	mentioned := ctx.MentionedBrand()
	preferred := []string{}
	if profile != nil {
		preferred = profile.PreferredBrands
	}

	pool := make([]models.SparePart, 0, len(spares))
	taken := make(map[int]bool, len(spares))

	appendBrand := func(brand string) {
		for i := range spares {
			if !taken[i] && strings.EqualFold(spares[i].Brand, brand) {
				taken[i] = true
				pool = append(pool, spares[i])
			}
		}
	}

	if mentioned != "" {
		appendBrand(mentioned)
	}
	for _, brand := range preferred {
		appendBrand(brand)
	}
	for i := range spares {
		if !taken[i] {
			pool = append(pool, spares[i])
		}
	}
	return pool
}

// Rank 对候选池打分、过滤低分项并排序
// 得分降序，同分按评分降序，仍同分保持候选池顺序；limit<=0时使用默认条数
func (p *RankingPipeline) Rank(pool []models.SparePart, ctx *models.QueryContext, profile *models.UserProfile, limit int) []models.ScoredPart {
	if limit <= 0 {
		limit = p.defaultLimit
	}

	scored := make([]models.ScoredPart, 0, len(pool))
	for i := range pool {
		score, reason := p.scorer.Score(&pool[i], ctx, profile)
		if score < p.minScore {
			continue
		}
		scored = append(scored, models.ScoredPart{Part: pool[i], Score: score, Reason: reason})
	}

	sort.SliceStable(scored, func(a, b int) bool {
		if scored[a].Score != scored[b].Score {
			return scored[a].Score > scored[b].Score
		}
		return scored[a].Part.Rating > scored[b].Part.Rating
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// Recommend 一步完成候选池构建与排序
func (p *RankingPipeline) Recommend(spares []models.SparePart, ctx *models.QueryContext, profile *models.UserProfile, limit int) []models.ScoredPart {
	return p.Rank(p.SelectPool(spares, ctx, profile), ctx, profile, limit)
}
