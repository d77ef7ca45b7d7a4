// Package batch runs one bend calculation per item of a submitted list.
// Items are independent; the whole batch is rejected on the first invalid
// item so callers never get a partially trustworthy result set.
package batch

import (
	"fmt"

	"TubeBend/internal/calc/bend"
	"TubeBend/internal/materials"
)

type BendBatchInput struct {
	Items []bend.Input `json:"items"`
}

type BendBatchResult struct {
	Results []bend.Result `json:"results"`
}

func CalculateBend(in BendBatchInput) (BendBatchResult, error) {
	if len(in.Items) == 0 {
		return BendBatchResult{}, fmt.Errorf("no items")
	}
	out := BendBatchResult{Results: make([]bend.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		mat, err := materials.Lookup(item.MaterialName)
		if err != nil {
			return BendBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		if err := item.Validate(); err != nil {
			return BendBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, bend.Calculate(item, mat))
	}
	return out, nil
}
