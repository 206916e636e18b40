package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // 不从配置文件读取，而是在加载后计算
	} `yaml:"server"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	DB struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		Database        string `yaml:"database"`
		Charset         string `yaml:"charset"`
		ParseTime       bool   `yaml:"parse_time"`
		DSN             string `yaml:"-"`                 // 不从配置文件读取，而是在加载后计算
		MaxOpenConns    int    `yaml:"max_open_conns"`    // 最大打开连接数
		MaxIdleConns    int    `yaml:"max_idle_conns"`    // 最大空闲连接数
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // 连接最大生命周期（分钟）
	} `yaml:"database"`
	Catalog struct {
		Source           string `yaml:"source"`            // mysql 或 file
		ItemsCSV         string `yaml:"items_csv"`         // file模式下的商品CSV路径
		SparesCSV        string `yaml:"spares_csv"`        // file模式下的备件CSV路径
		OrdersCSV        string `yaml:"orders_csv"`        // file模式下的订单CSV路径
		DependenciesFile string `yaml:"dependencies_file"` // 意图依赖JSON路径
	} `yaml:"catalog"`
	Search struct {
		DefaultMaxResults int     `yaml:"default_max_results"` // 未指定时的返回数量
		MinScore          float64 `yaml:"min_score"`           // 最低相关性阈值
		CacheCapacity     int     `yaml:"cache_capacity"`      // 结果缓存最大条目数
		WarmThemes        bool    `yaml:"warm_themes"`         // 启动时是否预热主题缓存
		WarmConcurrency   int     `yaml:"warm_concurrency"`    // 主题预热并发数
	} `yaml:"search"`
	Timeouts struct {
		RequestSec  int `yaml:"request_sec"`  // 请求超时，单位：秒
		ResponseSec int `yaml:"response_sec"` // 响应超时，单位：秒
		IdleSec     int `yaml:"idle_sec"`     // 空闲超时，单位：秒
	} `yaml:"timeouts"`
}

func Load() *Config {
	// 首先尝试加载.env文件中的环境变量
	_ = godotenv.Load() // 忽略错误，如果.env文件不存在，继续使用系统环境变量

	var cfg Config

	// 尝试从config.yaml文件加载配置
	if data, err := os.ReadFile("config.yaml"); err == nil {
		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			log.Printf("Error loading config.yaml: %v, falling back to environment variables", err)
			yamlFailed := loadFromEnv()
			return yamlFailed
		}
		log.Println("Loading configuration from config.yaml")

		// 计算 Server.Addr 字段
		cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

		// 从环境变量中加载敏感信息和用户名
		// 数据库用户名和密码
		if envUsername := os.Getenv("DATABASE_USERNAME"); envUsername != "" {
			cfg.DB.Username = envUsername
		}
		if envPassword := os.Getenv("DATABASE_PASSWORD"); envPassword != "" {
			cfg.DB.Password = envPassword
		}

		// 计算 DB.DSN 字段
		if cfg.DB.DSN == "" {
			// 设置默认值
			if cfg.DB.Charset == "" {
				cfg.DB.Charset = "utf8mb4"
			}

			// 构建DSN
			parseTime := ""
			if cfg.DB.ParseTime {
				parseTime = "&parseTime=true"
			}

			cfg.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s%s",
				cfg.DB.Username,
				cfg.DB.Password,
				cfg.DB.Host,
				cfg.DB.Port,
				cfg.DB.Database,
				cfg.DB.Charset,
				parseTime)
		}

		applyDefaults(&cfg)
		return &cfg
	}

	// 如果config.yaml不存在，则完全从环境变量加载配置
	return loadFromEnv()
}

// applyDefaults 填充目录和搜索配置的默认值
func applyDefaults(cfg *Config) {
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = "file"
	}
	if cfg.Catalog.ItemsCSV == "" {
		cfg.Catalog.ItemsCSV = "data/items.csv"
	}
	if cfg.Catalog.SparesCSV == "" {
		cfg.Catalog.SparesCSV = "data/spares.csv"
	}
	if cfg.Catalog.OrdersCSV == "" {
		cfg.Catalog.OrdersCSV = "data/orders.csv"
	}
	if cfg.Catalog.DependenciesFile == "" {
		cfg.Catalog.DependenciesFile = "data/dependencies.json"
	}
	if cfg.Search.DefaultMaxResults <= 0 {
		cfg.Search.DefaultMaxResults = 10
	}
	if cfg.Search.MinScore <= 0 {
		cfg.Search.MinScore = 0.05
	}
	if cfg.Search.CacheCapacity <= 0 {
		cfg.Search.CacheCapacity = 200
	}
	if cfg.Search.WarmConcurrency <= 0 {
		cfg.Search.WarmConcurrency = 4
	}
}

func loadFromEnv() *Config {
	// 当config.yaml加载失败时，创建一个最小配置
	var cfg Config

	// 设置服务器地址
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

	// 只从环境变量中加载敏感信息
	// 数据库配置
	if username := os.Getenv("DATABASE_USERNAME"); username != "" {
		cfg.DB.Username = username
	}
	if password := os.Getenv("DATABASE_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DB.DSN = dsn
	} else if cfg.DB.Host != "" {
		// 只有在没有直接提供DSN且有主机信息时才构建DSN
		parseTime := ""
		if cfg.DB.ParseTime {
			parseTime = "&parseTime=true"
		}
		cfg.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s%s",
			cfg.DB.Username,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Database,
			cfg.DB.Charset,
			parseTime)
	}

	// 目录数据源
	if source := os.Getenv("CATALOG_SOURCE"); source != "" {
		cfg.Catalog.Source = source
	}
	if path := os.Getenv("ITEMS_CSV"); path != "" {
		cfg.Catalog.ItemsCSV = path
	}
	if path := os.Getenv("SPARES_CSV"); path != "" {
		cfg.Catalog.SparesCSV = path
	}
	if path := os.Getenv("ORDERS_CSV"); path != "" {
		cfg.Catalog.OrdersCSV = path
	}
	if path := os.Getenv("DEPENDENCIES_FILE"); path != "" {
		cfg.Catalog.DependenciesFile = path
	}

	applyDefaults(&cfg)
	log.Println("配置从环境变量加载，部分配置可能缺失")
	return &cfg
}
