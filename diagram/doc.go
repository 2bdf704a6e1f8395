// Package diagram renders annotated type anatomy diagrams.
//
// A Host lays words out with real fonts so the anatomy pipeline can measure
// them, Draw turns a pipeline result into a recording, and a Renderer ties
// the two together:
//
//	r, err := diagram.NewRenderer()
//	if err != nil {
//	    return err
//	}
//	res, err := r.RenderFile(ctx, "Sphinx", "sphinx.svg")
//
// The raster ("raster", PNG) and SVG ("svg") backends are registered by
// importing this package.
package diagram
