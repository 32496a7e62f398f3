package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// IncrementalCounter counts events partitioned by label values.
type IncrementalCounter interface {
	Increment(val ...string)
}

// Counter is a Prometheus counter vector behind IncrementalCounter.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

// Increment adds one to the series identified by val.
func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// NewCounterWithRegistry creates a counter and registers it with reg.
// It panics if a counter with the same name is already registered.
func NewCounterWithRegistry(reg prometheus.Registerer, name, help string, labels ...string) *Counter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)

	reg.MustRegister(counter)

	return &Counter{
		Name: name,
		Help: help,
		vec:  counter,
	}
}

// Storefront holds the counters recorded by the storefront views.
type Storefront struct {
	// Activations counts navigation activations by outcome.
	Activations IncrementalCounter
	// Intents counts relayed cart intents by kind.
	Intents IncrementalCounter
	// Renders counts rendered pages by view.
	Renders IncrementalCounter
}

// NewStorefront registers the storefront counters with reg.
func NewStorefront(reg prometheus.Registerer) *Storefront {
	return &Storefront{
		Activations: NewCounterWithRegistry(reg,
			"storefront_nav_activations_total",
			"Navigation item activations by outcome.",
			"outcome"),
		Intents: NewCounterWithRegistry(reg,
			"storefront_cart_intents_total",
			"Cart item intents relayed from fulfillment views.",
			"intent"),
		Renders: NewCounterWithRegistry(reg,
			"storefront_renders_total",
			"Rendered storefront views.",
			"view"),
	}
}

// GetHandlerForRegistry returns an HTTP handler for serving Prometheus metrics from a custom registry.
func GetHandlerForRegistry(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
