package service

import (
	"context"
	"encoding/json"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	apperrors "github.com/hajzi/admin-console/internal/errors"
)

// JMESPathEvaluator abstracts JMESPath operations for testability.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// Analytics serves the charts screen. The backend returns one large nested
// document per time range; screens pull individual series out of it with
// JMESPath expressions instead of a bespoke struct per chart.
type Analytics struct {
	api  API
	jems JMESPathEvaluator
}

// AnalyticsOptions configures the analytics service.
type AnalyticsOptions struct {
	API API
	// Evaluator overrides the JMESPath engine. Defaults to the library one.
	Evaluator JMESPathEvaluator
}

// NewAnalytics constructs the analytics service.
func NewAnalytics(opts AnalyticsOptions) *Analytics {
	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	return &Analytics{api: opts.API, jems: jems}
}

// Snapshot is one fetched analytics document.
type Snapshot struct {
	jems JMESPathEvaluator
	doc  any
}

// Fetch loads the analytics document for a time range ("7d", "30d", "90d").
func (s *Analytics) Fetch(ctx context.Context, timeRange string) (*Snapshot, error) {
	res, err := s.api.Get(ctx, "/admin/analytics?range="+timeRange)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := res.Decode(&raw); err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, apperrors.Decode(err)
	}
	return &Snapshot{jems: s.jems, doc: doc}, nil
}

// Validate checks a chart expression without fetching anything.
func (s *Analytics) Validate(expr string) error {
	if err := s.jems.Validate(expr); err != nil {
		return apperrors.Validationf("invalid chart expression: %v", err)
	}
	return nil
}

// Series extracts one chart series from the document.
func (s *Snapshot) Series(expr string) ([]float64, error) {
	value, err := s.jems.Evaluate(expr, s.doc)
	if err != nil {
		return nil, apperrors.Validationf("evaluate chart expression: %v", err)
	}
	raw, ok := value.([]any)
	if !ok {
		return nil, apperrors.Validationf("expression %q did not select a series", expr)
	}
	out := make([]float64, 0, len(raw))
	for _, v := range raw {
		n, ok := v.(float64)
		if !ok {
			return nil, apperrors.Validationf("expression %q selected non-numeric points", expr)
		}
		out = append(out, n)
	}
	return out, nil
}

// Value extracts one scalar metric from the document.
func (s *Snapshot) Value(expr string) (float64, error) {
	value, err := s.jems.Evaluate(expr, s.doc)
	if err != nil {
		return 0, apperrors.Validationf("evaluate metric expression: %v", err)
	}
	n, ok := value.(float64)
	if !ok {
		return 0, apperrors.Validationf("expression %q did not select a number", expr)
	}
	return n, nil
}
