package profile

import (
	"runtime"

	"github.com/spf13/viper"

	"github.com/lumenworks/visgen/vis"
)

// SetDefaults configures default values derived from the host: shared
// build, the host's platform family and its conventional compiler. No
// role defaults exist, so every module starts as a consumer.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("build", string(vis.BuildShared))
	v.SetDefault("platform", HostPlatform())
	v.SetDefault("compiler", HostCompiler())
}

// BindProfileEnvVars explicitly binds the scalar facts to environment
// variables, so VISGEN_BUILD=static works with no profile file at all.
func BindProfileEnvVars(v *viper.Viper) {
	v.BindEnv("build", "VISGEN_BUILD")
	v.BindEnv("platform", "VISGEN_PLATFORM")
	v.BindEnv("compiler", "VISGEN_COMPILER")
}

// HostPlatform maps the running OS onto a platform family.
func HostPlatform() string {
	if runtime.GOOS == "windows" {
		return string(vis.PlatformWindows)
	}
	return string(vis.PlatformUnix)
}

// HostCompiler is the conventional compiler family for the host OS.
func HostCompiler() string {
	if runtime.GOOS == "windows" {
		return string(vis.CompilerMSVC)
	}
	return string(vis.CompilerGNU)
}
