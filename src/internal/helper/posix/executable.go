// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// Basename returns the last component of path, treating both "/" and "\"
// as separators regardless of the host platform. Diagnostic entries carry
// module and executable paths recorded on either convention, so the split
// cannot rely on filepath.Separator alone.
//
// An empty path or a path ending in a separator yields the text after the
// last separator, which may be empty.
func Basename(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// GetExecutableName returns the executable name without extension, cross-platform compatible.
// It extracts the base name from os.Args[0] and removes common executable extensions
// (.exe on Windows) to provide a clean name for CLI usage strings.
//
// This ensures consistent behavior across all operating systems:
//   - Linux/macOS: "addin-diag" from "/usr/local/bin/addin-diag"
//   - Windows: "addin-diag" from "C:\bin\addin-diag.exe"
//   - Fallback: Uses "addin-diag" if os.Args[0] is unavailable
//
// Returns:
//   - string: Clean executable name suitable for CLI usage
func GetExecutableName() string {
	// This literally never happens. If it happens, then it's not an operating system.
	if len(os.Args) == 0 || os.Args[0] == "" {
		return "addin-diag" // fallback name
	}

	name := Basename(os.Args[0])
	if name == "" {
		return "addin-diag"
	}

	// Remove common executable extensions for clean CLI display
	// This handles .exe on Windows while preserving other extensions
	return strings.TrimSuffix(name, ".exe")
}
