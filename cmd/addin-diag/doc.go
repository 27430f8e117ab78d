// Copyright (c) 2026 knutkj All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// addin-diag is a command-line harness for the OneNote debug add-in's
// sidecar diagnostics. It stands in for a hosting process: it raises the
// add-in lifecycle against the real diagnostic writer and inspects the
// sidecar logs the add-in produces next to its module file.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/knutkj/onenote-debug-add-in/cmd/addin-diag@latest
//
// # Usage
//
//	addin-diag simulate [FLAGS]
//	addin-diag show LOG_FILE [FLAGS]
//
// # Flags
//
//	simulate:
//	  -c, --config   Scenario config file (YAML)
//	  -m, --module   Hosting module path (default: this executable)
//	  -t, --threads  Concurrent thread attach/detach pairs
//
//	show:
//	      --table    Render entries as a markdown table
//
// # Examples
//
// Drive the default lifecycle against a module path:
//
//	addin-diag simulate -m /tmp/plugin.dll
//
// Run a scripted scenario:
//
//	addin-diag simulate -c scenario.yaml
//
// Display the resulting sidecar log as a table:
//
//	addin-diag show /tmp/plugin.log --table
package main
