package http

import (
	"github.com/gin-gonic/gin"
)

// Server owns the gin engine built from a RouterConfig. The engine is
// exported so tests can drive it with httptest without binding a port.
type Server struct {
	Engine *gin.Engine
}

func NewServer(cfg RouterConfig) *Server {
	return &Server{Engine: NewRouter(cfg)}
}

func (s *Server) Run(address string) error {
	return s.Engine.Run(address)
}
