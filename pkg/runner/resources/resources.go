// Package resources holds the runner logic behind the resource catalog
// commands.
package resources

import (
	"context"

	"tableflip.dev/goalsync/pkg/catalog"
	"tableflip.dev/goalsync/pkg/pipeline"
	"tableflip.dev/goalsync/pkg/printers"
)

// Browse prints catalog resources filtered by category and search query.
// Select marks ids as picked so the printed list shows a running study-time
// total.
type Browse struct {
	CatalogPath string
	Category    catalog.Category
	Query       string
	Select      []string
}

func (n *Browse) Do(ctx context.Context) error {
	all, err := catalog.LoadFile(n.CatalogPath)
	if err != nil {
		return err
	}

	filters := []pipeline.Predicate[*catalog.Resource]{
		pipeline.Equals(string(n.Category), func(r *catalog.Resource) string { return string(r.Category) }),
		pipeline.Search(n.Query,
			func(r *catalog.Resource) string { return r.Title },
			func(r *catalog.Resource) string { return r.Description },
			func(r *catalog.Resource) string { return r.Subject }),
	}
	visible := pipeline.Apply(all, filters, nil)

	sel := catalog.NewSelection()
	for _, id := range n.Select {
		sel.Toggle(id)
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Resources")
	pp.Resources(visible, sel)
	return nil
}
