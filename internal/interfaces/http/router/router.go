package router

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
)

// RouteRegistrar mounts its routes on a versioned API group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router mounts registrars under /api/<version>
type Router struct {
	engine     *gin.Engine
	apiVersion string
	registrars []RouteRegistrar
}

// RouterOption configures a Router
type RouterOption func(*Router)

// WithAPIVersion replaces the default "v1" prefix
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) { r.apiVersion = version }
}

// NewRouter wraps engine
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{engine: engine, apiVersion: "v1"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register queues registrars until Setup
func (r *Router) Register(registrars ...RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrars...)
	return r
}

// BasePath is /api/<version>
func (r *Router) BasePath() string {
	return "/api/" + r.apiVersion
}

// Setup mounts the queued registrars in registration order
func (r *Router) Setup() {
	api := r.engine.Group(r.BasePath())
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}

// Route is one endpoint of a DomainGroup
type Route struct {
	Method string
	Path   string
}

type endpoint struct {
	Route
	handlers []gin.HandlerFunc
}

// DomainGroup is a tree of routes sharing a prefix and middleware. Nothing
// touches gin until RegisterRoutes, so groups can be built and inspected
// without an engine.
type DomainGroup struct {
	prefix     string
	middleware []gin.HandlerFunc
	endpoints  []endpoint
	children   []*DomainGroup
}

// NewDomainGroup starts a group at prefix
func NewDomainGroup(prefix string) *DomainGroup {
	return &DomainGroup{prefix: prefix}
}

// Use appends middleware for this group and everything below it
func (dg *DomainGroup) Use(middleware ...gin.HandlerFunc) *DomainGroup {
	dg.middleware = append(dg.middleware, middleware...)
	return dg
}

// Handle adds an endpoint
func (dg *DomainGroup) Handle(method, relativePath string, handlers ...gin.HandlerFunc) *DomainGroup {
	dg.endpoints = append(dg.endpoints, endpoint{
		Route:    Route{Method: method, Path: relativePath},
		handlers: handlers,
	})
	return dg
}

// GET adds a GET endpoint
func (dg *DomainGroup) GET(p string, h ...gin.HandlerFunc) *DomainGroup {
	return dg.Handle(http.MethodGet, p, h...)
}

// POST adds a POST endpoint
func (dg *DomainGroup) POST(p string, h ...gin.HandlerFunc) *DomainGroup {
	return dg.Handle(http.MethodPost, p, h...)
}

// PUT adds a PUT endpoint
func (dg *DomainGroup) PUT(p string, h ...gin.HandlerFunc) *DomainGroup {
	return dg.Handle(http.MethodPut, p, h...)
}

// DELETE adds a DELETE endpoint
func (dg *DomainGroup) DELETE(p string, h ...gin.HandlerFunc) *DomainGroup {
	return dg.Handle(http.MethodDelete, p, h...)
}

// Group nests a child group below dg. An empty prefix is useful to attach
// extra middleware to a few routes.
func (dg *DomainGroup) Group(prefix string) *DomainGroup {
	child := NewDomainGroup(prefix)
	dg.children = append(dg.children, child)
	return child
}

// RegisterRoutes mounts the tree on rg
func (dg *DomainGroup) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group(dg.prefix, dg.middleware...)
	for _, e := range dg.endpoints {
		group.Handle(e.Method, e.Path, e.handlers...)
	}
	for _, child := range dg.children {
		child.RegisterRoutes(group)
	}
}

// Routes flattens the tree, paths relative to the group's parent
func (dg *DomainGroup) Routes() []Route {
	var out []Route
	for _, e := range dg.endpoints {
		out = append(out, Route{Method: e.Method, Path: dg.join(e.Path)})
	}
	for _, child := range dg.children {
		for _, r := range child.Routes() {
			out = append(out, Route{Method: r.Method, Path: dg.join(r.Path)})
		}
	}
	return out
}

func (dg *DomainGroup) join(p string) string {
	switch {
	case p == "":
		return dg.prefix
	case dg.prefix == "" || dg.prefix == "/":
		return p
	}
	return path.Join(dg.prefix, p)
}
