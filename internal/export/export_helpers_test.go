package export

import (
	"testing"

	"github.com/piwi3910/WallPanel/internal/engine"
	"github.com/piwi3910/WallPanel/internal/model"
)

// buildTestResult plans the default wall: 6 m x 3 m with a centered door.
func buildTestResult(t *testing.T) model.LayoutResult {
	t.Helper()
	req := model.DefaultRequest()
	req.MergeHeaders = true
	req.SidePanels = true
	result, err := engine.New(req).Plan()
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if len(result.Pieces) == 0 {
		t.Fatal("expected pieces in the test layout")
	}
	return result
}
