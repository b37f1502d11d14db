package delivery

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"catalog_service/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouterConfig struct {
	Categories usecase.CategoryUseCase
	Products   usecase.ProductUseCase
	Dashboard  usecase.DashboardUseCase
	Reports    usecase.ReportUseCase

	AllowOrigins []string
	StaticDir    string
	Logger       *logrus.Logger
}

// NewRouter builds the gin engine with every catalog route registered.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(cfg.Logger))
	router.Use(cors.New(corsConfig(cfg.AllowOrigins)))

	NewCategoryHandler(cfg.Categories, cfg.Products, cfg.Logger).RegisterRoutes(router)
	NewProductHandler(cfg.Products, cfg.Logger).RegisterRoutes(router)
	NewDashboardHandler(cfg.Dashboard, cfg.Logger).RegisterRoutes(router)
	NewReportHandler(cfg.Reports, cfg.Logger).RegisterRoutes(router)

	router.NoRoute(staticFallback(cfg.StaticDir))
	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader, "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// staticFallback serves files from dir for GET requests that match no API route.
// Directories without an index.html answer 404.
func staticFallback(dir string) gin.HandlerFunc {
	fileServer := http.FileServer(http.Dir(dir))
	return func(c *gin.Context) {
		if dir == "" || c.Request.Method != http.MethodGet {
			FailResponse(c, http.StatusNotFound, "Route non trouvée")
			return
		}
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+c.Request.URL.Path)))
		info, err := os.Stat(name)
		if err != nil {
			FailResponse(c, http.StatusNotFound, "Route non trouvée")
			return
		}
		if info.IsDir() {
			if _, err := os.Stat(filepath.Join(name, "index.html")); err != nil {
				FailResponse(c, http.StatusNotFound, "Route non trouvée")
				return
			}
		}
		fileServer.ServeHTTP(c.Writer, c.Request)
	}
}
