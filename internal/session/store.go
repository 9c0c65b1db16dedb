package session

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"azure-cost-planner/internal/catalog"
	"azure-cost-planner/internal/estimate"
)

const (
	keyRegion   = "region"
	keyVMSize   = "vmSize"
	keyOS       = "os"
	keyHours    = "hours"
	keyCurrency = "currency"
)

// StoreOptions configures the cookie-backed session store.
type StoreOptions struct {
	// Secret signs the cookie. Empty generates a random key, so sessions do not survive restarts.
	Secret     string
	CookieName string
	MaxAge     int
	Currency   string
	// Hours seeds new sessions. Zero uses the standard month.
	Hours int
	// Logger receives debug output about unreadable cookies. Nil discards it.
	Logger *slog.Logger
}

// Store keeps Defaults in a signed cookie, one per browser session.
type Store struct {
	cookies  *sessions.CookieStore
	name     string
	regions  []string
	vmSizes  []string
	currency string
	hours    int
	logger   *slog.Logger
}

// NewStore builds a cookie store whose defaults are bounded by regions and vmSizes.
func NewStore(opts StoreOptions, regions, vmSizes []string) (*Store, error) {
	secret := []byte(opts.Secret)
	if len(secret) == 0 {
		secret = securecookie.GenerateRandomKey(32)
		if secret == nil {
			return nil, fmt.Errorf("generate session key")
		}
	}
	name := opts.CookieName
	if name == "" {
		name = "planner-session"
	}

	cookies := sessions.NewCookieStore(secret)
	if opts.MaxAge > 0 {
		cookies.MaxAge(opts.MaxAge)
	}
	cookies.Options.HttpOnly = true
	cookies.Options.SameSite = http.SameSiteLaxMode

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Store{
		cookies:  cookies,
		name:     name,
		regions:  append([]string(nil), regions...),
		vmSizes:  append([]string(nil), vmSizes...),
		currency: opts.Currency,
		hours:    opts.Hours,
		logger:   logger,
	}, nil
}

// Load returns the session defaults for the request. Missing or tampered cookies
// yield freshly seeded defaults.
func (s *Store) Load(r *http.Request) Defaults {
	d := s.seed()
	sess, err := s.cookies.Get(r, s.name)
	if err != nil || sess.IsNew {
		return d
	}
	if v, ok := sess.Values[keyRegion].(string); ok {
		d.Region = v
	}
	if v, ok := sess.Values[keyVMSize].(string); ok {
		d.VMSize = v
	}
	if v, ok := sess.Values[keyOS].(string); ok {
		d.OS = catalog.OS(v)
	}
	if v, ok := sess.Values[keyHours].(int); ok {
		d.Hours = v
	}
	if v, ok := sess.Values[keyCurrency].(string); ok {
		d.Currency = v
	}
	d.Sanitize(s.regions, s.vmSizes)
	return d
}

func (s *Store) seed() Defaults {
	d := NewDefaults(s.regions, s.vmSizes, s.currency)
	if estimate.ValidateHours(s.hours) == nil {
		d.Hours = s.hours
	}
	return d
}

// Save writes the defaults back to the response cookie.
func (s *Store) Save(w http.ResponseWriter, r *http.Request, d Defaults) error {
	// Get only fails on decode errors; the returned session is still usable.
	sess, err := s.cookies.Get(r, s.name)
	if err != nil {
		s.logger.Debug("replacing unreadable session cookie",
			slog.String("cookie", s.name),
			slog.String("error", err.Error()),
		)
	}
	sess.Values[keyRegion] = d.Region
	sess.Values[keyVMSize] = d.VMSize
	sess.Values[keyOS] = string(d.OS)
	sess.Values[keyHours] = d.Hours
	sess.Values[keyCurrency] = d.Currency
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
