package shop

import (
	"log/slog"
	"net/url"
)

// NodeParam is the query parameter carrying the address of the activated node.
const NodeParam = "node"

// requestRouter is the routing collaborator for one activation request.
// It records the navigation target instead of performing it, so the HTTP
// handler can answer with a redirect.
type requestRouter struct {
	query  string
	target string
	params map[string]string
}

// reset prepares the router for a request with the given query, dropping
// the node address so only the shopper's own parameters carry over.
func (r *requestRouter) reset(q url.Values) {
	kept := url.Values{}
	for k, v := range q {
		if k != NodeParam {
			kept[k] = v
		}
	}

	r.query = kept.Encode()
	r.target = ""
	r.params = nil
}

func (r *requestRouter) NavigateTo(path string, params map[string]string) {
	slog.Debug("navigating", "path", path, "params", params)
	r.target = path
	r.params = params
}

func (r *requestRouter) QueryString() string { return r.query }
