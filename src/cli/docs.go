// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli implements the addin-diag command line interface.
//
// addin-diag is the development harness that stands in for a hosting
// process: it raises the add-in lifecycle against the real diagnostic
// writer and inspects the sidecar logs the add-in produces.
//
// Commands:
//   - simulate: drive a full lifecycle (attach, concurrent thread
//     attach/detach pairs, registration, detach) against a module path,
//     writing its sidecar log for real
//   - show: parse a sidecar log and print it raw or as a markdown table
//
// Simulation scenarios can be described in a YAML config file; flags
// override file values and sensible defaults cover the rest.
package cli
