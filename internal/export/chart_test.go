package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/WallPanel/internal/model"
)

func TestRenderChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderChart(&buf, buildTestResult(t)))

	html := buf.String()
	assert.Contains(t, html, "Layout efficiency by mode")
	assert.Contains(t, html, "Vertical")
	assert.Contains(t, html, "Hybrid")
}

func TestRenderChart_NoData(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, RenderChart(&buf, model.LayoutResult{}))
}

func TestExportChart_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.html")
	require.NoError(t, ExportChart(path, buildTestResult(t)))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
