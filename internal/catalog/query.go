package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
	apperrors "github.com/target/academic-suite/internal/errors"
)

// Project applies a JMESPath expression to records as they appear on the wire
// (JSON field names). An empty expression returns records unchanged.
func Project(expr string, records any) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return records, nil
	}
	if _, err := jmespath.Compile(expr); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid query expression")
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("marshal records: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("unmarshal records: %w", err)
	}

	out, err := jmespath.Search(expr, generic)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "query evaluation failed")
	}
	return out, nil
}
