package shop

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/mchmarny/storefront/pkg/fulfillment"
	"github.com/mchmarny/storefront/pkg/metric"
	"github.com/mchmarny/storefront/pkg/navigation"
)

// Storefront hosts the navigation drawer and fulfillment views.
type Storefront struct {
	catalog  *Catalog
	registry *prometheus.Registry
	metrics  *metric.Storefront

	// mu serializes every touch of the drawer state; the view components
	// themselves are single-threaded.
	mu     sync.Mutex
	menu   *navigation.Menu
	router *requestRouter
}

// New creates a storefront over catalog with its own metrics registry.
func New(catalog *Catalog) *Storefront {
	if catalog == nil {
		catalog = &Catalog{}
	}

	reg := prometheus.NewRegistry()
	s := &Storefront{
		catalog:  catalog,
		registry: reg,
		metrics:  metric.NewStorefront(reg),
		router:   &requestRouter{},
	}

	title := catalog.Title
	if title == "" {
		title = "Menu"
	}

	s.menu = navigation.NewMenu(catalog.Navigation,
		navigation.WithTitle(title),
		navigation.WithAction(activatePath),
		navigation.WithNodeOptions(
			navigation.WithRouter(s.router),
			navigation.WithObserver(func(_ navigation.Item, out navigation.Outcome) {
				s.metrics.Activations.Increment(out.String())
			}),
		),
	)

	return s
}

// Registry returns the registry the storefront metrics are recorded in.
func (s *Storefront) Registry() *prometheus.Registry { return s.registry }

func activatePath(addr string) string {
	return "/menu/activate?" + url.Values{NodeParam: {addr}}.Encode()
}

// Routes returns the storefront handlers keyed by ServeMux pattern.
func (s *Storefront) Routes() map[string]http.Handler {
	return map[string]http.Handler{
		"GET /{$}":                                http.RedirectHandler("/menu", http.StatusFound),
		"GET /menu":                               http.HandlerFunc(s.handleMenu),
		"POST /menu/activate":                     http.HandlerFunc(s.handleActivate),
		"POST /menu/open":                         http.HandlerFunc(s.handleOpen),
		"POST /menu/close":                        http.HandlerFunc(s.handleClose),
		"GET /tag/{slug}":                         http.HandlerFunc(s.handleTag),
		"GET /groups/{id}":                        http.HandlerFunc(s.handleGroup),
		"POST /groups/{id}/more":                  http.HandlerFunc(s.handleLoadMore),
		"POST /groups/{id}/items/{item}/quantity": http.HandlerFunc(s.handleQuantity),
		"POST /groups/{id}/items/{item}/remove":   http.HandlerFunc(s.handleRemove),
	}
}

func (s *Storefront) handleMenu(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	body := s.menu.Render()
	s.mu.Unlock()

	s.writePage(w, "menu", "Menu", body)
}

func (s *Storefront) handleActivate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	addr := q.Get(NodeParam)

	s.mu.Lock()
	s.router.reset(q)
	out, err := s.menu.Activate(addr)
	target := s.router.target
	query := s.router.query
	s.mu.Unlock()

	if err != nil {
		if errors.Is(err, navigation.ErrUnknownNode) {
			slog.Warn("activation of unknown node", "node", addr)
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		slog.Error("activation failed", "node", addr, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	slog.Info("menu activation", "node", addr, "outcome", out.String())

	if target == "" {
		target = "/menu"
		if query != "" {
			target += "?" + query
		}
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Storefront) handleOpen(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.menu.Open()
	s.mu.Unlock()

	http.Redirect(w, r, "/menu", http.StatusSeeOther)
}

func (s *Storefront) handleClose(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.menu.CloseMenu()
	s.mu.Unlock()

	http.Redirect(w, r, "/menu", http.StatusSeeOther)
}

func (s *Storefront) handleTag(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	s.writePage(w, "tag", slug, html.Div(
		html.Class("tag-page"),
		html.H1(g.Text(slug)),
		g.If(r.URL.RawQuery != "", html.P(html.Class("tag-query"), g.Text(r.URL.RawQuery))),
		html.A(html.Href("/menu"), g.Text("Back to menu")),
	))
}

func (s *Storefront) group(w http.ResponseWriter, r *http.Request) (string, *fulfillment.Group, bool) {
	id := r.PathValue("id")

	group, ok := s.catalog.Groups[id]
	if !ok {
		http.Error(w, "fulfillment group not found", http.StatusNotFound)
		return id, nil, false
	}

	return id, group, true
}

func groupPath(id string) string {
	return "/groups/" + url.PathEscape(id)
}

// groupView builds the view for group id, relaying intents to the
// storefront's metrics and log. The group itself is never changed.
func (s *Storefront) groupView(id string) *fulfillment.View {
	return fulfillment.NewView(
		fulfillment.RowList{LoadMoreURL: groupPath(id) + "/more"},
		fulfillment.CountSummary{},
		fulfillment.WithCallbacks(fulfillment.Callbacks{
			OnLoadMore: func() {
				s.metrics.Intents.Increment("load_more")
				slog.Info("load more items requested", "group", id)
			},
			OnQuantityChange: func(c fulfillment.QuantityChange) {
				s.metrics.Intents.Increment("quantity")
				slog.Info("item quantity change requested",
					"group", id, "item", c.CartItemID, "quantity", c.Quantity)
			},
			OnRemove: func(itemID string) {
				s.metrics.Intents.Increment("remove")
				slog.Info("item removal requested", "group", id, "item", itemID)
			},
		}),
	)
}

func (s *Storefront) handleGroup(w http.ResponseWriter, r *http.Request) {
	id, group, ok := s.group(w, r)
	if !ok {
		return
	}

	s.writePage(w, "fulfillment", "Order", s.groupView(id).Render(group))
}

func (s *Storefront) handleLoadMore(w http.ResponseWriter, r *http.Request) {
	id, _, ok := s.group(w, r)
	if !ok {
		return
	}

	s.groupView(id).LoadMore()
	http.Redirect(w, r, groupPath(id), http.StatusSeeOther)
}

func (s *Storefront) handleQuantity(w http.ResponseWriter, r *http.Request) {
	id, _, ok := s.group(w, r)
	if !ok {
		return
	}

	qty, err := strconv.Atoi(r.URL.Query().Get("value"))
	if err != nil || qty < 0 {
		http.Error(w, "invalid quantity", http.StatusBadRequest)
		return
	}

	s.groupView(id).ChangeQuantity(qty, r.PathValue("item"))
	http.Redirect(w, r, groupPath(id), http.StatusSeeOther)
}

func (s *Storefront) handleRemove(w http.ResponseWriter, r *http.Request) {
	id, _, ok := s.group(w, r)
	if !ok {
		return
	}

	s.groupView(id).RemoveItem(r.PathValue("item"))
	http.Redirect(w, r, groupPath(id), http.StatusSeeOther)
}

func (s *Storefront) writePage(w http.ResponseWriter, view, title string, body g.Node) {
	page := html.Doctype(html.HTML(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(g.Text(title)),
		),
		html.Body(html.Main(body)),
	))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if err := page.Render(w); err != nil {
		slog.Error("failed to render page", "view", view, "error", err)
		return
	}

	s.metrics.Renders.Increment(view)
}
