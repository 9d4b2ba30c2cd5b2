package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
)

// AppWebHandler serves the built browser client from dir, mounted at
// prefix. Unknown paths get index.html so client-side routing works.
type AppWebHandler struct {
	dir    string
	prefix string
}

func NewAppWebHandler(dir, prefix string) *AppWebHandler {
	return &AppWebHandler{dir: dir, prefix: prefix}
}

// Available reports whether the build directory exists.
func (h *AppWebHandler) Available() bool {
	info, err := os.Stat(h.dir)
	return err == nil && info.IsDir()
}

func (h *AppWebHandler) Serve(c *gin.Context) {
	p := c.Request.URL.Path

	if strings.HasPrefix(p, "/api/") || p == "/api" {
		httperr.NotFound(c, "Not found")
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		httperr.NotFound(c, "Not found")
		return
	}

	base := strings.TrimSuffix(h.prefix, "/")
	if base != "" && p != base && !strings.HasPrefix(p, base+"/") {
		httperr.NotFound(c, "Not found")
		return
	}

	rel := path.Clean("/" + strings.TrimPrefix(p, base))

	if rel != "/" {
		file := filepath.Join(h.dir, filepath.FromSlash(rel))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
	}

	c.File(filepath.Join(h.dir, "index.html"))
}
