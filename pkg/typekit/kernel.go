package typekit

import (
	"context"

	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/port/option"
)

// Host describes the environment the kernel classifies values for.
// A Host may expose a special global value, a native array test and its own class tags.
type Host interface {
	// Global returns the host's global object, or nil when the host has none.
	// The global is never reported as a plain Object, and never as empty.
	Global() any
	// NativeIsArray returns the host's own array test, or nil when it has none.
	NativeIsArray() Predicate
	// Tag returns the class tag the host assigns to v.
	// It reports false to fall back to TagOf.
	Tag(v any) (string, bool)
}

// BareHost is a Host without a global, a native array test or custom tags.
type BareHost struct{}

func (BareHost) Global() any              { return nil }
func (BareHost) NativeIsArray() Predicate { return nil }
func (BareHost) Tag(any) (string, bool)   { return "", false }

// Config collects what New builds a Kernel from.
// A nil Logger sends the construction log to the package level logger.
type Config struct {
	Host   Host
	Logger *logging.Logger
}

// Init sets the defaults, a BareHost.
func (c *Config) Init() {
	c.Host = BareHost{}
}

func (c Config) debug(ctx context.Context, msg string, ds ...logging.Detail) {
	if c.Logger != nil {
		c.Logger.Debug(ctx, msg, ds...)
		return
	}
	logger.Debug(ctx, msg, ds...)
}

// Option configures New.
type Option interface {
	option.Option[Config]
}

// WithHost sets the Host the kernel probes while it is built.
func WithHost(h Host) Option {
	return option.Func[Config](func(c *Config) {
		if h != nil {
			c.Host = h
		}
	})
}

// WithLogger makes the kernel report its construction to l instead of the default logger.
func WithLogger(l *logging.Logger) Option {
	return option.Func[Config](func(c *Config) { c.Logger = l })
}

// Kernel is an immutable set of classification strategies.
// The strategies are chosen once, when the kernel is built, by probing its Host.
// A Kernel is safe for concurrent use.
type Kernel struct {
	host      Host
	global    any
	hasGlobal bool

	isArray      Predicate
	isObject     Predicate
	isArguments  Predicate
	isFunction   Predicate
	isBoolean    Predicate
	isNumber     Predicate
	isString     Predicate
	isObjectKind Predicate
	isNaN        Predicate
	isUndefined  Predicate
	isDefined    Predicate
	isRegExp     Predicate
	isElement    Predicate
}

// New builds a Kernel.
func New(opts ...Option) *Kernel {
	var (
		c   = option.ToConfig[Config](opts)
		ctx = context.Background()
		k   = &Kernel{host: c.Host}
	)
	if global := c.Host.Global(); global != nil {
		k.global, k.hasGlobal = global, true
	}

	if native := c.Host.NativeIsArray(); native != nil {
		k.isArray = native
		c.debug(ctx, "typekit: array test uses the host's native implementation")
	} else {
		k.isArray = k.Automate(TagName("Array"), false)
		c.debug(ctx, "typekit: array test uses the Array class tag")
	}

	if k.hasGlobal && k.Is(k.global, "Object") {
		var (
			global   = k.global
			isObject = k.Automate(TagName("Object"), false)
		)
		k.isObject = func(v any) bool { return !StrictEqual(v, global) && isObject(v) }
		c.debug(ctx, "typekit: object test excludes the host global",
			logging.Field("global", TagString(global)))
	} else {
		k.isObject = k.Automate(TagName("Object"), false)
	}

	if k.Is(Arguments{}, "Arguments") {
		k.isArguments = k.Automate(TagName("Arguments"), false)
	} else {
		k.isArguments = func(v any) bool { return Truthy(v) && HasOwn(v, "callee") }
		c.debug(ctx, "typekit: arguments test falls back to the own callee property")
	}

	k.isFunction = k.Automate(KindFunction, false)
	k.isBoolean = k.Automate(KindBoolean, false)
	k.isNumber = k.Automate(KindNumber, false)
	k.isString = k.Automate(KindString, false)
	k.isObjectKind = k.Automate(KindObject, false)
	k.isNaN = k.Automate(ToNumber(struct{}{}), false)
	k.isUndefined = k.Automate(Literal{}, false)
	k.isDefined = k.Automate(Literal{}, true)
	k.isRegExp = k.Automate(TagName("RegExp"), false)
	k.isElement = MustAutomateNode(1)

	c.debug(ctx, "typekit: kernel ready", logging.Field("global", k.hasGlobal))
	return k
}

func (k *Kernel) isGlobal(v any) bool {
	return k.hasGlobal && StrictEqual(v, k.global)
}

// IsArray reports whether v is an array or slice, or what the host calls an array.
func (k *Kernel) IsArray(v any) bool { return k.isArray(v) }

// IsObject reports whether v carries the Object class tag.
// The host global is never an Object.
func (k *Kernel) IsObject(v any) bool { return k.isObject(v) }

// IsArguments reports whether v is a captured argument list.
func (k *Kernel) IsArguments(v any) bool { return k.isArguments(v) }

// IsFunction reports whether v is of the function kind.
func (k *Kernel) IsFunction(v any) bool { return k.isFunction(v) }

// IsBoolean reports whether v is of the boolean kind. Boxed booleans are objects.
func (k *Kernel) IsBoolean(v any) bool { return k.isBoolean(v) }

// IsNumber reports whether v is of the number kind, NaN included.
func (k *Kernel) IsNumber(v any) bool { return k.isNumber(v) }

// IsString reports whether v is of the string kind.
func (k *Kernel) IsString(v any) bool { return k.isString(v) }

// IsObjectKind reports whether v is of the object kind, null included.
func (k *Kernel) IsObjectKind(v any) bool { return k.isObjectKind(v) }

// IsNaN reports whether v is the NaN sentinel itself.
// Values that merely coerce to NaN, such as "abc", are not NaN.
func (k *Kernel) IsNaN(v any) bool { return k.isNaN(v) }

// IsUndefined reports whether v is nil.
func (k *Kernel) IsUndefined(v any) bool { return k.isUndefined(v) }

// IsDefined is the negation of IsUndefined. Null is defined.
func (k *Kernel) IsDefined(v any) bool { return k.isDefined(v) }

// IsRegExp reports whether v is tagged RegExp.
func (k *Kernel) IsRegExp(v any) bool { return k.isRegExp(v) }

// IsElement reports whether v is a node of node type 1.
func (k *Kernel) IsElement(v any) bool { return k.isElement(v) }
