package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// hclCatalogFile is the top-level schema of a catalog file.
type hclCatalogFile struct {
	Cities []*hclCity `hcl:"city,block"`
}

// hclCity is a single `city "<name>" { file = "..." }` block.
type hclCity struct {
	Name string `hcl:"name,label"`
	File string `hcl:"file"`
}

// LoadFile parses an HCL catalog file. The absolute data directory is exposed
// to expressions as the `data_dir` variable, and relative file paths are
// resolved against it.
func LoadFile(ctx context.Context, path, dataDir string) (*Catalog, error) {
	logger := ctxlog.FromContext(ctx).With("catalog_path", path)
	logger.Debug("Loading city catalog file.")

	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory %s: %w", dataDir, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"data_dir": cty.StringVal(absDataDir),
		},
	}

	var root hclCatalogFile
	diags = gohcl.DecodeBody(file.Body, evalCtx, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", path, diags)
	}

	entries := make([]Entry, 0, len(root.Cities))
	for _, c := range root.Cities {
		entries = append(entries, Entry{City: c.Name, File: c.File})
	}

	cat, err := New(absDataDir, entries...)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}
	logger.Debug("City catalog loaded.", "cities", cat.Len())
	return cat, nil
}
