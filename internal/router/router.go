package router

import (
	"time"

	"makarios/internal/config"
	"makarios/internal/handler"
	"makarios/internal/middleware"
	"makarios/internal/repository"
	"makarios/internal/service"
	"makarios/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	materialRepo := repository.NewMaterialRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	confeccaoRepo := repository.NewConfeccaoRepository(db)
	movimentoRepo := repository.NewMovimentoEstoqueRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	materialSvc := service.NewMaterialService(materialRepo, movimentoRepo)
	produtoSvc := service.NewProdutoService(produtoRepo, materialRepo)
	confeccaoSvc := service.NewConfeccaoService(confeccaoRepo, produtoRepo, materialRepo, movimentoRepo, dispatcher)
	dashboardSvc := service.NewDashboardService(materialRepo, produtoRepo, confeccaoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	materiaisH := handler.NewMateriaisHandler(materialSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc, rdb)
	confeccoesH := handler.NewConfeccoesHandler(confeccaoSvc)
	movimentosH := handler.NewMovimentosHandler(movimentoRepo)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		materiais := v1.Group("/materiais")
		{
			materiais.POST("", materiaisH.Criar)
			materiais.GET("", materiaisH.Listar)
			materiais.GET("/:id", materiaisH.Obter)
			materiais.PUT("/:id", materiaisH.Atualizar)
			materiais.DELETE("/:id", materiaisH.Remover)
			materiais.PATCH("/:id/estoque", materiaisH.AjustarEstoque)
		}

		produtos := v1.Group("/produtos")
		{
			produtos.POST("", produtosH.Criar)
			produtos.GET("", produtosH.Listar)
			produtos.GET("/:id", produtosH.Obter)
			produtos.PUT("/:id", produtosH.Atualizar)
			produtos.DELETE("/:id", produtosH.Remover)
			produtos.GET("/:id/custo", produtosH.Custo)
			produtos.GET("/:id/max-produzivel", produtosH.MaxProduzivel)
		}

		confeccoes := v1.Group("/confeccoes")
		{
			confeccoes.POST("", confeccoesH.Registrar)
			confeccoes.GET("", confeccoesH.Listar)
			confeccoes.DELETE("/:id", confeccoesH.Remover)
		}

		v1.GET("/movimentos", movimentosH.Listar)
		v1.GET("/dashboard", dashboardH.Resumo)
	}

	return r
}
