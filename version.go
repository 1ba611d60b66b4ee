package easel

// Version is the release of easel. Overridden at build time with -ldflags "-X".
var Version = "0.1.0"
