package transforms

import (
	"github.com/Tieqiong/diffpy.utils/pkg/log"
)

// NoticeCode identifies an advisory condition.
type NoticeCode int

const (
	// NoticeMissingWavelength signals that a wavelength-dependent conversion
	// ran without a wavelength and degraded to the index axis.
	NoticeMissingWavelength NoticeCode = iota
)

// Notice is a non-fatal advisory raised during a conversion. Notices never
// abort the call; they report degraded behavior the caller may want to
// surface or suppress.
type Notice struct {
	Code    NoticeCode
	Message string
}

// NoticeFunc receives advisory notices.
type NoticeFunc func(Notice)

const missingWavelengthMsg = "No wavelength has been specified. You can continue to use the DiffractionObject, but " +
	"some of its powerful features will not be available. " +
	"To specify a wavelength, if you have do = DiffractionObject(xarray, yarray, 'tth'), " +
	"you may set do.wavelength = 1.54 for a wavelength of 1.54 angstroms."

// DefaultLogger receives notices when no NoticeFunc or per-call logger is
// configured. Replace it to redirect advisory output module-wide.
var DefaultLogger log.Logger = log.NewZerologAdapter()

type config struct {
	notify NoticeFunc
	logger log.Logger
}

// Option adjusts how a conversion reports advisory notices.
type Option func(*config)

// WithNoticeFunc routes advisory notices to fn instead of a logger.
func WithNoticeFunc(fn NoticeFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.notify = fn
		}
	}
}

// WithLogger routes advisory notices to l.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (c config) emit(n Notice) {
	if c.notify != nil {
		c.notify(n)
		return
	}
	logger := c.logger
	if logger == nil {
		logger = DefaultLogger
	}
	logger.Warn(n.Message, log.Int("code", int(n.Code)))
}
