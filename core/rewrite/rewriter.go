package rewrite

import (
	"errors"

	"go.uber.org/zap"

	"github.com/gaurav-prasanna/easyread/core"
)

// Rewriter wraps Text and HTML with logging. The zero value is not usable;
// create one with New.
type Rewriter struct {
	log *zap.Logger
}

// New creates a Rewriter. A nil logger disables logging.
func New(log *zap.Logger) *Rewriter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Rewriter{log: log.Named("rewrite")}
}

// RewriteText rewrites plain text at level.
func (r *Rewriter) RewriteText(text string, level core.Difficulty) (string, error) {
	out, err := Text(text, level)
	if err != nil {
		return "", err
	}
	r.log.Debug("rewrote text",
		zap.Stringer("level", level),
		zap.Int("in_bytes", len(text)),
		zap.Int("out_bytes", len(out)),
	)
	return out, nil
}

// RewriteHTML rewrites an HTML fragment at level, returning the fragment
// unchanged if it cannot be parsed.
func (r *Rewriter) RewriteHTML(fragment string, level core.Difficulty) (string, error) {
	out, err := rewriteHTML(fragment, level)
	switch {
	case errors.Is(err, core.ErrInvalidDifficulty):
		return "", err
	case err != nil:
		r.log.Warn("html rewrite failed, serving original", zap.Error(err), zap.Stringer("level", level))
		return fragment, nil
	}
	r.log.Debug("rewrote html",
		zap.Stringer("level", level),
		zap.Int("in_bytes", len(fragment)),
		zap.Int("out_bytes", len(out)),
	)
	return out, nil
}

var _ core.Rewriter = (*Rewriter)(nil)
