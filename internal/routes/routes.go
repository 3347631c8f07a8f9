package routes

import (
	"propostasrest/internal/config"
	"propostasrest/internal/middleware"
	"propostasrest/internal/service/audit"
	"propostasrest/internal/service/auth"
	"propostasrest/internal/service/cadastros"
	"propostasrest/internal/service/fornecedores"
	"propostasrest/internal/service/healthcheck"
	"propostasrest/internal/service/licitacoes"
	"propostasrest/internal/service/municipios"
	"propostasrest/internal/service/produtos"
	"propostasrest/internal/service/propostas"
	"propostasrest/internal/service/relatorios"
	"propostasrest/internal/service/upload"
	"propostasrest/internal/service/users"
	"propostasrest/internal/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// InitiateRoutes registra todas as rotas da aplicação
func InitiateRoutes(engine *gin.Engine, cfg *config.App) {

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// arquivos de proposta enviados pelo front
	engine.Static("/uploads", utils.GetUploadDir())

	healthGroup := engine.Group("/healthcheck")
	{
		healthGroup.GET("/", healthcheck.Health(cfg))
	}

	authRoutes := engine.Group("/auth")
	{
		authRoutes.POST("/login", auth.Login(cfg))
	}

	licitacoesGroup := engine.Group("/licitacoes", middleware.Auth())
	{
		licitacoesGroup.GET("", licitacoes.ListLicitacoes(cfg))
		licitacoesGroup.POST("", licitacoes.CreateLicitacao(cfg))
		licitacoesGroup.PUT("/:id", licitacoes.UpdateLicitacao(cfg))
		licitacoesGroup.DELETE("/:id", licitacoes.DeleteLicitacao(cfg))
	}

	fornecedoresGroup := engine.Group("/fornecedores", middleware.Auth())
	{
		fornecedoresGroup.GET("", fornecedores.ListFornecedores(cfg))
		fornecedoresGroup.POST("", fornecedores.CreateFornecedor(cfg))
		fornecedoresGroup.PUT("/:id", fornecedores.UpdateFornecedor(cfg))
		fornecedoresGroup.DELETE("/:id", fornecedores.DeleteFornecedor(cfg))
	}

	produtosGroup := engine.Group("/produtos", middleware.Auth())
	{
		produtosGroup.GET("", produtos.ListProdutos(cfg))
		produtosGroup.POST("", produtos.CreateProduto(cfg))
		produtosGroup.PUT("/:id", produtos.UpdateProduto(cfg))
		produtosGroup.DELETE("/:id", produtos.DeleteProduto(cfg))
	}

	categoriasGroup := engine.Group("/categorias", middleware.Auth())
	{
		categoriasGroup.GET("", cadastros.ListCategorias(cfg))
		categoriasGroup.POST("", cadastros.CreateCategoria(cfg))
		categoriasGroup.DELETE("/:id", cadastros.DeleteCategoria(cfg))
	}

	unidadesGroup := engine.Group("/unidades", middleware.Auth())
	{
		unidadesGroup.GET("", cadastros.ListUnidades(cfg))
		unidadesGroup.POST("", cadastros.CreateUnidade(cfg))
		unidadesGroup.DELETE("/:id", cadastros.DeleteUnidade(cfg))
	}

	propostasGroup := engine.Group("/propostas", middleware.Auth())
	{
		propostasGroup.GET("", propostas.ListPropostas(cfg))
		propostasGroup.GET("/:id", propostas.GetProposta(cfg))
		propostasGroup.POST("", propostas.CreateProposta(cfg))
		propostasGroup.PUT("/:id", propostas.UpdateProposta(cfg))
		propostasGroup.DELETE("/:id", propostas.DeleteProposta(cfg))
	}

	itensGroup := engine.Group("/itens", middleware.Auth())
	{
		itensGroup.POST("", propostas.CreateItem(cfg))
		itensGroup.PUT("/:id", propostas.UpdateItem(cfg))
		itensGroup.DELETE("/:id", propostas.DeleteItem(cfg))
	}

	municipiosGroup := engine.Group("/municipios", middleware.Auth())
	{
		municipiosGroup.GET("", municipios.Search(cfg))
	}

	relatoriosGroup := engine.Group("/relatorios", middleware.Auth())
	{
		relatoriosGroup.GET("/geral", relatorios.Geral(cfg))
	}

	// o front consome a planilha direto da raiz
	engine.GET("/export", middleware.Auth(), relatorios.Export(cfg))

	uploadGroup := engine.Group("/upload", middleware.Auth())
	{
		uploadGroup.POST("", upload.Upload(cfg))
	}

	usersGroup := engine.Group("/users", middleware.Auth())
	{
		usersGroup.GET("", users.ListUsers(cfg))
		usersGroup.POST("", users.CreateUser(cfg))
		usersGroup.DELETE("/:id", middleware.AdminOnly(), users.DeleteUser(cfg))
	}

	auditGroup := engine.Group("/audit", middleware.Auth(), middleware.AdminOnly())
	{
		auditGroup.GET("", audit.ListLogs(cfg))
	}
}
