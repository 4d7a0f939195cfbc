package httpserver

import "net/http"

// Server 把 /api/ 交给 Handler，其余路径交给静态文件目录（webDir 为空时不挂）
type Server struct {
	mux *http.ServeMux
	api *Handler
}

func NewServer(api *Handler, webDir string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/api/", api)
	if webDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(webDir)))
	}
	return &Server{mux: mux, api: api}
}

func (s *Server) API() *Handler {
	return s.api
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
