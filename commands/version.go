package commands

// version is set at build time with -ldflags "-X".
var version = "dev"

func Version() string {
	return version
}
