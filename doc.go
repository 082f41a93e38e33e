// Package ngx bridges per-frame DLSS evaluation requests to the NVIDIA NGX
// engine on Vulkan.
//
// # Overview
//
// An evaluation is described by a descriptor ([SuperSamplingEval] or
// [RayReconstructionEval]) holding resource bindings, scalar controls and
// subrects. A [Marshaller] validates the mandatory bindings, resolves
// unspecified scalars to their defaults and populates a fresh
// [ParameterStore]. A [Dispatcher] hands the store, a feature handle and a
// command buffer to the [Engine].
//
// # Quick Start
//
//	sys, err := ngx.NewSystem(engine, cfg, ngx.WithVulkan(inst, phys, dev))
//	if err != nil {
//	    return err
//	}
//	defer sys.Close()
//
//	settings, err := sys.QueryOptimalSettings(3840, 2160, ngx.QualityBalanced)
//	if err != nil {
//	    return err
//	}
//	dlss, err := sys.CreateSuperSamplingFeature(cmd, ngx.SuperSamplingFromSettings(settings))
//	if err != nil {
//	    return err
//	}
//	defer dlss.Release()
//
//	p := dlss.EvaluationParameters()
//	p.Color = &color
//	p.Output = &output
//	p.SetMotionVectors(&motion, nil)
//	p.SetJitterOffsets(jx, jy)
//	err = dlss.Evaluate(cmd)
//
// # Handles
//
// Vulkan objects are carried as opaque, non-owning uint64 handles so the
// package stays free of cgo. The vkres sub-package converts goki/vulkan
// handles; backend/native converts them back for the C API.
//
// # Engines
//
// Engines register themselves with the backend package. backend/native
// wraps the NGX SDK and needs the "ngx" build tag and cgo;
// backend/recording is a pure Go engine that records what it is given.
package ngx

// Version information.
const (
	Version = "0.1.0"

	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)
