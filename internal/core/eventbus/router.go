package eventbus

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"

	"github.com/hay-kot/chime/internal/core/notify"
)

// Rule maps event topics to a notification kind. Pattern is a
// doublestar glob matched against the topic ("sync/**", "*/failed").
type Rule struct {
	Pattern string
	Kind    notify.Kind
	Title   string
}

// Router turns bus events into toasts. Rules are evaluated in order and
// the first match wins; unmatched topics surface as plain info toasts so
// no event disappears silently.
type Router struct {
	store *notify.Store
	rules []Rule
}

// NewRouter constructs a router pushing to the given store.
func NewRouter(store *notify.Store, rules []Rule) *Router {
	return &Router{store: store, rules: rules}
}

// Register subscribes the router to bus.
func (r *Router) Register(bus *Bus) {
	if r == nil || bus == nil {
		return
	}
	bus.Subscribe(r.route)
}

func (r *Router) route(e Event) {
	if r.store == nil || e.Message == "" {
		return
	}

	for _, rule := range r.rules {
		ok, err := doublestar.Match(rule.Pattern, e.Topic)
		if err != nil {
			log.Warn().Err(err).Str("pattern", rule.Pattern).Msg("invalid routing pattern")
			continue
		}
		if !ok {
			continue
		}

		kind := rule.Kind
		if !kind.Valid() {
			kind = notify.KindInfo
		}

		var opts []notify.Option
		if rule.Title != "" {
			opts = append(opts, notify.WithTitle(rule.Title))
		}
		r.store.Push(kind, e.Message, opts...)
		return
	}

	r.store.Push(notify.KindInfo, e.Message)
}
