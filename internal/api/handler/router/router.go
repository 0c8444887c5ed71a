// Package router registra as rotas da API sobre o httprouter
package router

import (
	"net/http"
	"sort"

	"github.com/goworksistemas/matriz-sub000/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
)

// Route é um endpoint com a cadeia de middlewares própria dele, aplicada na ordem da lista
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []alice.Constructor
}

type ConfigRouter func(router *Router)

// WithRoutes registra um grupo de rotas de um módulo
func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

// Router responde rota inexistente e método errado no formato de erro da API.
// O preflight de CORS é tratado antes de chegar aqui.
type Router struct {
	mux    *httprouter.Router
	routes []string
}

func New(configs ...ConfigRouter) *Router {
	mux := httprouter.New()
	mux.HandleOPTIONS = false
	mux.NotFound = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
	})
	mux.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", nil)
	})

	router := &Router{mux: mux}
	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.mux.Handler(route.Method, route.Path, alice.New(route.Middlewares...).Then(route.Handler))
		r.routes = append(r.routes, route.Method+" "+route.Path)
	}
}

// Routes lista as rotas registradas como "MÉTODO caminho", em ordem alfabética
func (r *Router) Routes() []string {
	routes := append([]string(nil), r.routes...)
	sort.Strings(routes)
	return routes
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
