// Package recording provides a pure Go ngx engine that records what it is
// asked to do instead of running a neural network.
//
// The engine keeps the features it created, answers capability and
// optimal settings queries from the published DLSS scaling ratios, and
// stores a snapshot of every evaluated parameter store. It checks the
// inputs the way the NGX runtime does (missing mandatory inputs, output
// without the read/write flag, unknown feature handles) so that bridge
// errors surface without a GPU.
//
// It is the default engine when the native engine is not compiled in, and
// backs cmd/ngxdump and the package tests.
//
//	e := recording.New(recording.WithDriverUpdate(ngx.FeatureRayReconstruction, 545, 84))
//	sys, err := ngx.NewSystem(e, ngx.DefaultConfig())
//
// Use FailNext to make the next engine call fail with a given code.
package recording
