package bind

import (
	"errors"

	"github.com/dbsmedya/dbmeta/internal/logger"
	"github.com/dbsmedya/dbmeta/internal/types"
)

// Session binds records for one traversal run. It owns the source handle,
// the suppression registry, the options and the diagnostics collected so
// far. A session is not safe for concurrent use.
type Session struct {
	source      Source
	opts        Options
	suppressed  *Suppressions
	log         *logger.Logger
	diagnostics Diagnostics
	stats       types.Stats
}

// NewSession starts a session over src. A nil source is a FatalError.
func NewSession(src Source, opts Options, log *logger.Logger) (*Session, error) {
	if src == nil {
		return nil, &FatalError{Op: "acquire source", Err: errors.New("source is nil")}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Session{
		source:     src,
		opts:       opts,
		suppressed: NewSuppressions(opts.Suppressions...),
		log:        log,
	}, nil
}

// Options returns the session options.
func (s *Session) Options() Options {
	return s.opts
}

// Suppressions returns the session's suppression registry.
func (s *Session) Suppressions() *Suppressions {
	return s.suppressed
}

// Suppressed reports whether path is suppressed.
func (s *Session) Suppressed(path string) bool {
	return s.suppressed.IsSuppressed(path)
}

// Diagnostics returns a copy of the diagnostics recorded so far.
func (s *Session) Diagnostics() Diagnostics {
	out := make(Diagnostics, len(s.diagnostics))
	copy(out, s.diagnostics)
	return out
}

// Stats returns the counters of the session.
func (s *Session) Stats() types.Stats {
	return s.stats
}

// Logger returns the session logger.
func (s *Session) Logger() *logger.Logger {
	return s.log
}

// report records d and logs it. It returns a StrictError when the options
// turn d's code into a failure.
func (s *Session) report(d Diagnostic) error {
	s.diagnostics = append(s.diagnostics, d)

	log := s.log.WithPath(d.Path)
	kv := []interface{}{"code", d.Code}
	if d.Label != "" {
		kv = append(kv, "label", d.Label)
	}
	if d.Operation != "" {
		kv = append(kv, "operation", d.Operation, "args", d.Args)
	}
	if d.Err != nil {
		kv = append(kv, "error", d.Err)
	}

	switch {
	case d.Severity == SeveritySevere:
		log.Errorw("Binding problem", kv...)
	case d.Code == CodeUnknownColumn || d.Code == CodeUnknownField:
		log.Debugw("Binding problem", kv...)
	default:
		log.Warnw("Binding problem", kv...)
	}

	if s.opts.strict(d.Code) {
		return &StrictError{Diagnostic: d}
	}
	return nil
}
