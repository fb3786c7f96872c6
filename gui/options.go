package gui

// Option configures a single widget call.
type Option func(*options)

// options maps option key names to values set by the caller.
type options struct {
	values map[string]any
}

// OptKey names a widget option of type T and carries its default. Widgets
// outside this package define their own keys the same way:
//
//	var OptTint = gui.NewOptKey("tint", gui.White)
//	ctx.Button("save", "Save", bounds, gui.WithOpt(OptTint, gui.Red))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey returns a key whose unset value is defaultValue.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// WithOpt sets key to value.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.values == nil {
			o.values = make(map[string]any, 4)
		}
		o.values[key.name] = value
	}
}

// GetOpt returns the value set for key, or its default when it is unset
// or was set with another type under the same name.
func GetOpt[T any](o options, key OptKey[T]) T {
	if v, ok := o.values[key.name].(T); ok {
		return v
	}
	return key.def
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Built-in keys.
var (
	OptDisabled    = NewOptKey("disabled", false)
	OptInputBlock  = NewOptKey("inputBlock", true) // false lets the widget ignore an open popup
	OptStyle       = NewOptKey("style", "")
	OptIcon        = NewOptKey("icon", NoIcon)
	OptPlaceholder = NewOptKey("placeholder", "")

	OptFormat = NewOptKey("format", "%.2f") // numeric fields
	OptLabel  = NewOptKey("label", "")

	OptImageFit = NewOptKey("imageFit", FitStretch)
	OptFlipY    = NewOptKey("flipY", false)
)

// WithDisabled disables the widget (grayed out, no interaction).
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithoutInputBlock lets the widget receive input while a popup is open.
// Popup menu items use it; ordinary widgets should not.
func WithoutInputBlock() Option { return WithOpt(OptInputBlock, false) }

// WithStyleName overrides the stylesheet entry a widget draws with.
func WithStyleName(name string) Option { return WithOpt(OptStyle, name) }

// WithIcon draws an icon next to the widget's text.
func WithIcon(icon Icon) Option { return WithOpt(OptIcon, icon) }

// WithPlaceholder sets the text shown by an empty, unfocused text field.
func WithPlaceholder(text string) Option { return WithOpt(OptPlaceholder, text) }

// WithFormat sets the fmt verb used to display numeric values.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithLabel prefixes a numeric field's value with a dimmed label.
func WithLabel(label string) Option { return WithOpt(OptLabel, label) }

// WithImageFit chooses how an image is scaled into its bounds.
func WithImageFit(fit ImageFit) Option { return WithOpt(OptImageFit, fit) }

// WithFlipY draws an image upside down, for render-target textures.
func WithFlipY() Option { return WithOpt(OptFlipY, true) }
