// This file is used to detect build on unsupported GOOS combinations when the
// strict unsupported-platform policy (the default) is in effect. Build with
// the permissive tag to get no-op stubs instead.

//go:build !linux && !darwin && !windows && !permissive

package your_operating_system_is_not_supported_by_antidebug
