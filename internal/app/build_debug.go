//go:build ftypedebug

package app

// DebugBuild reports whether this binary was built with the ftypedebug tag.
// Debug builds stop on unsupported placeholders by default.
const DebugBuild = true
