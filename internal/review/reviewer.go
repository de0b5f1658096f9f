package review

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-review/internal/docpath"
	"github.com/jonathan/resume-review/internal/types"
)

// Action is the terminal state a suggestion was resolved to
type Action string

const (
	ActionApproved  Action = "approved"
	ActionDismissed Action = "dismissed"
)

// Resolution records one resolved suggestion
type Resolution struct {
	SuggestionID string `json:"suggestion_id"`
	Aspect       string `json:"aspect"`
	Path         string `json:"path"`
	Action       Action `json:"action"`
	// Applied is true when approval wrote a value into the document.
	Applied bool `json:"applied"`
}

// Option configures a Reviewer
type Option func(*Reviewer)

// WithLogger sets the logger used to report resolutions.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Reviewer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithStrictIndex makes overlapping suggestion paths an error instead of
// letting the later suggestion win.
func WithStrictIndex(strict bool) Option {
	return func(r *Reviewer) {
		r.strict = strict
	}
}

// Reviewer holds a document and its pending suggestions and moves both forward
// together. Each operation computes the next document, registry and index
// before replacing the current ones, so a failed operation leaves all three
// untouched. Documents handed out are never modified by the Reviewer.
//
// A Reviewer is not safe for concurrent use.
type Reviewer struct {
	document any
	registry types.Registry
	index    Index
	history  []Resolution

	logger *zap.Logger
	strict bool
}

// NewReviewer creates a Reviewer over document with the given pending suggestions.
func NewReviewer(document any, registry types.Registry, opts ...Option) (*Reviewer, error) {
	r := &Reviewer{
		document: document,
		registry: registry.Clone(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	index, err := BuildIndex(r.registry, r.strict)
	if err != nil {
		return nil, err
	}
	r.index = index

	r.logger.Debug("review started",
		zap.Int("suggestions", r.registry.Remaining()),
		zap.Int("aspects", len(r.registry)),
		zap.Bool("strict", r.strict))

	return r, nil
}

// Document returns the current document. Treat it as read-only.
func (r *Reviewer) Document() any {
	return r.document
}

// Registry returns a copy of the pending suggestions.
func (r *Reviewer) Registry() types.Registry {
	return r.registry.Clone()
}

// Index returns a copy of the current path index.
func (r *Reviewer) Index() Index {
	out := make(Index, len(r.index))
	for k, v := range r.index {
		out[k] = v
	}
	return out
}

// Pending returns the suggestion targeting path, if one is pending.
func (r *Reviewer) Pending(path string) (types.Suggestion, bool) {
	return r.index.Lookup(path)
}

// Get reads the current document at path.
func (r *Reviewer) Get(path string, defaultValue any) any {
	return docpath.Get(r.document, path, defaultValue)
}

// Remaining returns the number of pending suggestions across all aspects.
func (r *Reviewer) Remaining() int {
	return r.registry.Remaining()
}

// Complete reports whether no suggestions are pending.
func (r *Reviewer) Complete() bool {
	return r.Remaining() == 0
}

// History returns the resolutions made so far, oldest first.
func (r *Reviewer) History() []Resolution {
	return append([]Resolution(nil), r.history...)
}

// Approve merges the value implied by suggestion id into the document and
// removes the suggestion from every aspect. A suggestion without a
// suggestion-kind segment is only removed. Approving an id that is not pending
// is a no-op and reports false.
func (r *Reviewer) Approve(id string) (bool, error) {
	s, aspect, ok := r.registry.Find(id)
	if !ok {
		r.logger.Debug("suggestion not pending", zap.String("suggestion_id", id))
		return false, nil
	}

	document := r.document
	value, applied := ResolveValue(s)
	if applied {
		updated, err := docpath.Set(r.document, s.Path, value)
		if err != nil {
			return false, &ApplyError{
				Message: fmt.Sprintf("failed to apply suggestion %s at %s", id, s.Path),
				Cause:   err,
			}
		}
		document = updated
	}

	if err := r.commit(document, r.registry.Without(id)); err != nil {
		return false, err
	}
	r.record(Resolution{SuggestionID: id, Aspect: aspect, Path: s.Path, Action: ActionApproved, Applied: applied})
	return true, nil
}

// Dismiss removes suggestion id from every aspect without touching the
// document. It reports whether the suggestion was pending.
func (r *Reviewer) Dismiss(id string) bool {
	s, aspect, ok := r.registry.Find(id)
	if !ok {
		r.logger.Debug("suggestion not pending", zap.String("suggestion_id", id))
		return false
	}

	r.commitPruned(r.registry.Without(id))
	r.record(Resolution{SuggestionID: id, Aspect: aspect, Path: s.Path, Action: ActionDismissed})
	return true
}

// Edit writes value at path directly, bypassing suggestions.
func (r *Reviewer) Edit(path string, value any) error {
	updated, err := docpath.Set(r.document, path, value)
	if err != nil {
		return &ApplyError{
			Message: fmt.Sprintf("failed to edit %s", path),
			Cause:   err,
		}
	}
	r.document = updated
	r.logger.Info("document edited", zap.String("path", path))
	return nil
}

// ApproveAspect approves every suggestion pending under aspect, in order.
// It stops at the first failure and returns how many were approved before it.
func (r *Reviewer) ApproveAspect(aspect string) (int, error) {
	approved := 0
	for _, id := range r.bucketIDs(aspect) {
		ok, err := r.Approve(id)
		if err != nil {
			return approved, fmt.Errorf("aspect %s: %w", aspect, err)
		}
		if ok {
			approved++
		}
	}
	return approved, nil
}

// DismissAspect dismisses every suggestion pending under aspect and returns
// how many were dismissed.
func (r *Reviewer) DismissAspect(aspect string) int {
	dismissed := 0
	for _, id := range r.bucketIDs(aspect) {
		if r.Dismiss(id) {
			dismissed++
		}
	}
	return dismissed
}

func (r *Reviewer) bucketIDs(aspect string) []string {
	bucket := r.registry[aspect]
	ids := make([]string, 0, len(bucket))
	for _, s := range bucket {
		ids = append(ids, s.ID)
	}
	return ids
}

func (r *Reviewer) commit(document any, registry types.Registry) error {
	index, err := BuildIndex(registry, r.strict)
	if err != nil {
		return err
	}
	r.document = document
	r.registry = registry
	r.index = index
	return nil
}

// commitPruned installs a registry that only lost suggestions. A subset of an
// overlap-free registry is overlap-free, so no strict check is needed.
func (r *Reviewer) commitPruned(registry types.Registry) {
	r.registry = registry
	r.index = foldIndex(registry)
}

func (r *Reviewer) record(res Resolution) {
	r.history = append(r.history, res)
	r.logger.Info("suggestion resolved",
		zap.String("suggestion_id", res.SuggestionID),
		zap.String("aspect", res.Aspect),
		zap.String("path", res.Path),
		zap.String("action", string(res.Action)),
		zap.Bool("applied", res.Applied),
		zap.Int("remaining", r.registry.Remaining()))
}
