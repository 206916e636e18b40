package repository

import (
	"fmt"
	"strings"

	"intent_search/config"
	"intent_search/logger"
	"intent_search/models"
)

// Snapshot 进程生命周期内只加载一次的静态数据快照
// 加载完成后只读，核心引擎不做任何写操作
type Snapshot struct {
	Items        []models.Item
	Spares       []models.SparePart
	Orders       []models.Order
	Dependencies models.DependencySet
}

// LoadSnapshot 按配置的数据源加载全量快照
func LoadSnapshot(cfg *config.Config) (*Snapshot, error) {
	snap := &Snapshot{}
	var err error

	switch cfg.Catalog.Source {
	case "mysql":
		snap.Items, err = LoadItemsFromMySQL()
		if err != nil {
			return nil, fmt.Errorf("加载商品目录失败: %v", err)
		}
		snap.Spares, err = LoadSparesFromMySQL()
		if err != nil {
			return nil, fmt.Errorf("加载备件目录失败: %v", err)
		}
		snap.Orders, err = LoadOrdersFromMySQL()
		if err != nil {
			return nil, fmt.Errorf("加载历史订单失败: %v", err)
		}
	default:
		snap.Items, err = LoadItemsFromCSV(cfg.Catalog.ItemsCSV)
		if err != nil {
			return nil, fmt.Errorf("加载商品CSV失败: %v", err)
		}
		snap.Spares, err = LoadSparesFromCSV(cfg.Catalog.SparesCSV)
		if err != nil {
			// 备件数据缺失不阻塞启动，备件路径返回空结果即可
			logger.Warn("备件CSV加载失败，备件推荐将返回空结果", "path", cfg.Catalog.SparesCSV, "error", err)
			snap.Spares = []models.SparePart{}
		}
		snap.Orders, err = LoadOrdersFromCSV(cfg.Catalog.OrdersCSV)
		if err != nil {
			logger.Warn("订单CSV加载失败，发票号推荐将返回空结果", "path", cfg.Catalog.OrdersCSV, "error", err)
			snap.Orders = []models.Order{}
		}
	}

	deps, err := LoadDependencies(cfg.Catalog.DependenciesFile)
	if err != nil {
		// 依赖数据属于增强功能，缺失时依赖解析返回空序列
		logger.Warn("意图依赖文件加载失败", "path", cfg.Catalog.DependenciesFile, "error", err)
		deps = models.DependencySet{}
	}
	snap.Dependencies = deps

	logger.Info("数据快照加载完成",
		"items", len(snap.Items),
		"spares", len(snap.Spares),
		"orders", len(snap.Orders),
		"intents", len(snap.Dependencies.Intents),
	)
	return snap, nil
}

// Brands 返回备件目录中出现的全部品牌，保持首次出现顺序
func (s *Snapshot) Brands() []string {
	seen := make(map[string]bool)
	brands := make([]string, 0)
	for _, p := range s.Spares {
		b := p.Brand
		if b != "" && !seen[b] {
			brands = append(brands, b)
			seen[b] = true
		}
	}
	return brands
}

// ModelsForBrand 返回指定品牌的全部已知机型（来自订单数据）
func (s *Snapshot) ModelsForBrand(brand string) []string {
	seen := make(map[string]bool)
	ms := make([]string, 0)
	for _, o := range s.Orders {
		if !strings.EqualFold(o.Brand, brand) {
			continue
		}
		if o.ProductModel != "" && !seen[o.ProductModel] {
			ms = append(ms, o.ProductModel)
			seen[o.ProductModel] = true
		}
	}
	return ms
}

// OrderByInvoice 按发票号查找订单
func (s *Snapshot) OrderByInvoice(invoice string) (*models.Order, bool) {
	for i := range s.Orders {
		if s.Orders[i].InvoiceNumber == invoice {
			return &s.Orders[i], true
		}
	}
	return nil, false
}
