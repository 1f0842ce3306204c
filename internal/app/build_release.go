//go:build !ftypedebug

package app

// DebugBuild reports whether this binary was built with the ftypedebug tag.
const DebugBuild = false
