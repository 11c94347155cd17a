package gin

import (
	"fmt"
	"net/http"
	"time"

	ginlib "github.com/gin-gonic/gin"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/config"
)

type Server struct {
	srv *http.Server
}

func NewEngine() *ginlib.Engine {
	r := ginlib.New()
	r.Use(ginlib.Recovery())
	return r
}

func NewServer(cfg config.ServerConfig, engine *ginlib.Engine) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              cfg.Address(),
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *Server) Run() error {
	if s.srv.Handler == nil {
		return fmt.Errorf("gin engine is nil")
	}
	return s.srv.ListenAndServe()
}
