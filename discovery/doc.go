// Package discovery defines the boundary to external causal-discovery
// services and a small pipeline composing them with graph construction and
// serialization.
//
// Discovery algorithms themselves (LiNGAM, PC, GES, …) are external
// collaborators: this package only represents the capability they share — fit
// a dataset, return an adjacency-like weight matrix — so interchangeable
// service variants can be plugged in behind one interface.
//
// Pipeline wires the three steps every caller performs in sequence:
//
//	weights, labels := svc.Predict(ctx, data)
//	graph           := adjacency.BuildGraph(weights, labels, …)
//	text            := dot.Marshal(graph)
//
// Predict is the only step that may block (it usually crosses a process
// boundary), so it alone takes a context.Context.
package discovery
