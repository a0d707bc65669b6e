package network

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"bounce/game"
	"bounce/protocol"
)

//go:embed web
var webFS embed.FS

// NewRouter wires every route against a fixed world. Recovery is always on;
// extra middleware (the access logger in production) is appended after it.
func NewRouter(world game.World, middleware ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(middleware...)

	tmpl := template.Must(template.ParseFS(webFS, "web/templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(webFS, "web/static")
	if err != nil {
		panic(err)
	}
	r.StaticFS(protocol.PathStatic, http.FS(static))

	r.GET(protocol.PathIndex, indexHandler(world))
	r.GET(protocol.PathHealth, healthHandler)
	r.POST(protocol.PathUpdateBall, limitBody(protocol.MaxBodyBytes), updateBallHandler(world))

	return r
}

func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
