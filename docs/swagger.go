package docs

// @title 意图搜索与备件推荐 API
// @version 1.0
// @description 基于意图理解的商品搜索、依赖解析与备件兼容性推荐服务
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https
