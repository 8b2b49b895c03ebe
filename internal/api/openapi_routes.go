package api

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/anima-counter/docs"
)

const openAPIPath = "/openapi.json"

// registerOpenAPIRoutes 提供 /openapi.json 与 /docs/redoc
func registerOpenAPIRoutes(engine *gin.Engine) {
	engine.GET(openAPIPath, serveOpenAPI)
	engine.GET("/docs/redoc", serveRedoc)
}

func serveOpenAPI(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(docs.SwaggerInfo.ReadDoc()))
}

func serveRedoc(c *gin.Context) {
	// 优先使用本地 redoc 资源，离线可用；否则回退到 CDN
	script := "https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"
	if _, err := os.Stat("static/vendors/redoc/redoc.standalone.js"); err == nil {
		script = "/static/vendors/redoc/redoc.standalone.js"
	}

	html := `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Anima Counter API - Redoc</title>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>body{margin:0;padding:0}</style>
  </head>
  <body>
    <redoc spec-url="` + openAPIPath + `" expand-responses="200,201"></redoc>
    <script src="` + script + `"></script>
  </body>
</html>`
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
