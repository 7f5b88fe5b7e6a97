package pen

// Option configures a Pen during creation.
//
// Example:
//
//	// No renderer yet: drawing blocks are silent no-ops until one is attached.
//	p := pen.New()
//
//	// Renderer injected up front.
//	p := pen.New(pen.WithRenderer(r))
type Option func(*options)

// options holds optional configuration for Pen creation.
type options struct {
	renderer Renderer
	layer    string
	store    *Store
}

// DefaultPenLayer is the renderer layer the pen surface is drawn on.
const DefaultPenLayer = "pen"

func defaultOptions() options {
	return options{
		renderer: nil, // drawing is skipped until AttachRenderer
		layer:    DefaultPenLayer,
		store:    nil, // created in New
	}
}

// WithRenderer sets the renderer that receives drawing instructions.
func WithRenderer(r Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithPenLayer sets the layer name passed to Renderer.CreateDrawable when
// the pen surface is created.
func WithPenLayer(layer string) Option {
	return func(o *options) {
		if layer != "" {
			o.layer = layer
		}
	}
}

// WithStore makes the Pen keep actor records in s instead of a private
// store. Useful when the host wants to inspect or persist pen state.
func WithStore(s *Store) Option {
	return func(o *options) {
		o.store = s
	}
}
