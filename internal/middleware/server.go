package middleware

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"propostasrest/internal/config"
	"propostasrest/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// SetupServer monta o engine do gin com a cadeia de middlewares da API
func SetupServer(cfg *config.App) (engine *gin.Engine) {

	gin.SetMode(gin.ReleaseMode)
	engine = gin.New()

	setupSemaphore(engine)
	setupCors(engine)
	setupRedisDB(engine, cfg)
	setupLogger(engine, cfg.Logger)
	setupIds(engine)

	certFile, keyFile := utils.GetCertFiles()
	if certFile != "" && keyFile != "" {
		setupSSL(engine)
	}

	engine.Use(gin.Recovery())

	return engine
}

// setupCors libera as origens configuradas em CORS_ALLOWED_ORIGINS,
// ou qualquer origem quando a variável está vazia
func setupCors(engine *gin.Engine) {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	origins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if origins == "" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	}

	engine.Use(cors.New(corsConfig))
}

// setupSSL redireciona requisições HTTP para HTTPS quando o servidor
// sobe com certificado
func setupSSL(engine *gin.Engine) {
	engine.Use(func(c *gin.Context) {
		secureMiddleware := secure.New(secure.Options{
			SSLRedirect: true,
			SSLHost:     ":" + utils.GetPort(),
		})
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			log.Println("error enforcing https: " + err.Error())
			return
		}
		c.Next()
	})
}

func getEnvAsInt64(name string, defaultValue int64) int64 {
	valueStr := os.Getenv(name)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return int64(value)
}
