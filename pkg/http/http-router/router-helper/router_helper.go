package router_helper

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup mounts handlers under a shared path prefix.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	return &RouteGroup{router: router, prefix: prefix}
}

func (group *RouteGroup) GET(path string, handle httprouter.Handle) {
	group.router.GET(group.prefix+path, handle)
}

func (group *RouteGroup) POST(path string, handle httprouter.Handle) {
	group.router.POST(group.prefix+path, handle)
}

func (group *RouteGroup) DELETE(path string, handle httprouter.Handle) {
	group.router.DELETE(group.prefix+path, handle)
}

func (group *RouteGroup) Handler(method, path string, handler http.Handler) {
	group.router.Handler(method, group.prefix+path, handler)
}
